// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"encoding/binary"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
	"github.com/shadowpool/shadowd/vkey"
)

// VerifyBalance - prove a hidden balance meets a floor
//
// stateless: the ledger is never touched.  The floor rides the proof
// as a 32 byte big endian field element so it always parses as a
// canonical public input.
func VerifyBalance(
	trans storage.Transaction,
	pool account.Address,
	proof []byte,
	minBalance uint64,
	balanceCommitment shield.Commitment,
) error {

	key, err := vkey.Fetch(trans, pool, circuit.Balance)
	if nil != err {
		return err
	}

	var floor [32]byte
	binary.BigEndian.PutUint64(floor[24:], minBalance)

	publicInputs := [][32]byte{floor, balanceCommitment}
	ok, err := verifier.VerifyProof(key, proof, publicInputs)
	if nil != err {
		return err
	}
	if !ok {
		return fault.ErrInvalidProof
	}
	return nil
}

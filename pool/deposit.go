// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
)

// Deposit - shield value into the pool
//
// the amount must be exactly the pool denomination so every note in
// the accumulator is indistinguishable by size
func Deposit(
	trans storage.Transaction,
	pool account.Address,
	depositor account.Address,
	depositorSigned bool,
	commitment shield.Commitment,
	amount uint64,
) error {

	ledger, err := ReadLedger(trans, pool)
	if nil != err {
		return err
	}

	if !depositorSigned {
		return fault.ErrUnauthorized
	}

	if amount != ledger.Denomination {
		return fault.ErrInvalidAmount
	}

	// the zero value is the "no change output" sentinel in withdraw
	// public inputs, so it can never stand for a real note
	if commitment.IsZero() {
		return fault.ErrInvalidCommitment
	}

	err = trans.TransferBalance(depositor.Bytes(), ledger.Vault.Bytes(), amount)
	if nil != err {
		return err
	}

	appendCommitment(ledger, commitment)
	ledger.TVL += amount

	return writeLedger(trans, pool, ledger)
}

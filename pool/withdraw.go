// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/guard"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
	"github.com/shadowpool/shadowd/vkey"
)

// Withdraw - unshield value to a transparent recipient
//
// the proof is checked against the pool's transfer circuit key with
// public inputs [root, nullifier, change commitment]; an all zero
// change commitment means the note was spent in full and no change
// output joins the accumulator
func Withdraw(
	trans storage.Transaction,
	pool account.Address,
	recipient account.Address,
	proof []byte,
	root shield.Root,
	nullifier shield.Nullifier,
	newCommitment shield.Commitment,
	amount uint64,
	txTag []byte,
	now uint64,
) error {

	ledger, err := ReadLedger(trans, pool)
	if nil != err {
		return err
	}

	if guard.IsNullifierUsed(trans, pool, nullifier) {
		return fault.ErrNullifierAlreadyUsed
	}

	// the presented root must be the pool's current accumulator value:
	// a proof over any other root is stale or foreign
	if root != ledger.Root {
		return fault.ErrInvalidMerkleRoot
	}

	key, err := vkey.Fetch(trans, pool, circuit.Transfer)
	if nil != err {
		return err
	}

	publicInputs := [][32]byte{root, nullifier, newCommitment}
	ok, err := verifier.VerifyProof(key, proof, publicInputs)
	if nil != err {
		return err
	}
	if !ok {
		return fault.ErrInvalidProof
	}

	err = guard.RecordNullifier(trans, pool, nullifier, txTag, now)
	if nil != err {
		return err
	}
	cacheNullifier(ledger, nullifier)

	if !newCommitment.IsZero() {
		appendCommitment(ledger, newCommitment)
	}

	err = trans.DebitBalance(ledger.Vault.Bytes(), amount)
	if nil != err {
		return err
	}
	trans.CreditBalance(recipient.Bytes(), amount)

	if ledger.TVL < amount {
		return fault.ErrInvalidPoolState
	}
	ledger.TVL -= amount

	return writeLedger(trans, pool, ledger)
}

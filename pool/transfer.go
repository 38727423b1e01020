// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/guard"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
)

// Transfer - spend inside the pool behind a ring of decoys
//
// no transparent value moves: the spent note is retired by its key
// image and the recipient's commitment joins the accumulator.  The
// encrypted amount is an opaque note payload for the recipient's
// wallet scan; the engine never interprets it.
func Transfer(
	trans storage.Transaction,
	pool account.Address,
	ringSignature []byte,
	keyImage shield.KeyImage,
	ringMembers [][32]byte,
	newCommitment shield.Commitment,
	encryptedAmount []byte,
	txTag []byte,
	now uint64,
) error {

	ledger, err := ReadLedger(trans, pool)
	if nil != err {
		return err
	}

	// key image before any signature work so a reused spend fails
	// without burning verification time
	if guard.IsKeyImageUsed(trans, pool, keyImage) {
		return fault.ErrKeyImageAlreadyUsed
	}

	ok, err := verifier.VerifyRingSignature(ringSignature, keyImage, ringMembers)
	if nil != err {
		return err
	}
	if !ok {
		return fault.ErrInvalidRingSignature
	}

	if newCommitment.IsZero() {
		return fault.ErrInvalidCommitment
	}

	err = guard.RecordKeyImage(trans, pool, keyImage, txTag, now)
	if nil != err {
		return err
	}
	cacheKeyImage(ledger, keyImage)

	appendCommitment(ledger, newCommitment)

	return writeLedger(trans, pool, ledger)
}

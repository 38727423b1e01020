// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package guard - double spend enforcement
//
// One existence record per spent id, in its own cell at an address
// derived from the owning pool or asset.  Membership is a single
// storage probe no matter how many ids have ever been spent; the
// bounded caches inside the ledger records are statistics only and
// are never consulted here.
package guard

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
)

// derivation seed labels
var (
	nullifierSeed = []byte("nullifier")
	keyImageSeed  = []byte("key_image")
)

// NullifierAddress - the existence record cell of one nullifier
func NullifierAddress(base account.Address, nullifier shield.Nullifier) account.Address {
	return account.DeriveAddress(nullifierSeed, base.Bytes(), nullifier[:])
}

// KeyImageAddress - the existence record cell of one key image
func KeyImageAddress(base account.Address, keyImage shield.KeyImage) account.Address {
	return account.DeriveAddress(keyImageSeed, base.Bytes(), keyImage[:])
}

// IsNullifierUsed - check for spend evidence, staged writes included
func IsNullifierUsed(trans storage.Transaction, base account.Address, nullifier shield.Nullifier) bool {
	address := NullifierAddress(base, nullifier)
	return trans.Has(storage.Pool.Nullifiers, address.Bytes())
}

// RecordNullifier - write the spend evidence for one nullifier
//
// fails if the nullifier already has a record under the same base
func RecordNullifier(
	trans storage.Transaction,
	base account.Address,
	nullifier shield.Nullifier,
	txTag []byte,
	now uint64,
) error {

	address := NullifierAddress(base, nullifier)
	if trans.Has(storage.Pool.Nullifiers, address.Bytes()) {
		return fault.ErrNullifierAlreadyUsed
	}

	mark := ledgerrecord.NullifierMark{
		Nullifier: nullifier,
		Base:      base,
		TxTag:     txTag,
		Timestamp: now,
	}
	packed, err := mark.Pack()
	if nil != err {
		return err
	}

	trans.Put(storage.Pool.Nullifiers, address.Bytes(), packed)
	return nil
}

// IsKeyImageUsed - check for ring spend evidence, staged writes included
func IsKeyImageUsed(trans storage.Transaction, base account.Address, keyImage shield.KeyImage) bool {
	address := KeyImageAddress(base, keyImage)
	return trans.Has(storage.Pool.KeyImages, address.Bytes())
}

// RecordKeyImage - write the spend evidence for one key image
//
// fails if the key image already has a record under the same base
func RecordKeyImage(
	trans storage.Transaction,
	base account.Address,
	keyImage shield.KeyImage,
	txTag []byte,
	now uint64,
) error {

	address := KeyImageAddress(base, keyImage)
	if trans.Has(storage.Pool.KeyImages, address.Bytes()) {
		return fault.ErrKeyImageAlreadyUsed
	}

	mark := ledgerrecord.KeyImageMark{
		KeyImage:  keyImage,
		Base:      base,
		TxTag:     txTag,
		Timestamp: now,
	}
	packed, err := mark.Pack()
	if nil != err {
		return err
	}

	trans.Put(storage.Pool.KeyImages, address.Bytes(), packed)
	return nil
}

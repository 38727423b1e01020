// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pool - shielded pool state transitions
//
// Each operation runs inside the request's storage transaction: it
// loads the pool ledger, walks its gates in a fixed order and stages
// the mutated record back.  Nothing here commits; the engine owns the
// transaction boundary, so a failed gate leaves the ledger exactly as
// it was.
//
// A pool shields one fixed denomination.  Value enters by a Deposit
// that moves transparent funds into the pool's vault cell and appends
// a commitment to the accumulator; it leaves by a Withdraw that proves
// membership in zero knowledge and pays a transparent recipient from
// the vault.  Transfers inside the pool never touch the vault.
package pool

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/limitedset"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
)

// vault derivation seed label
var vaultSeed = []byte("vault")

// VaultAddress - the balance cell holding a pool's locked funds
func VaultAddress(pool account.Address) account.Address {
	return account.DeriveAddress(vaultSeed, pool.Bytes())
}

// Initialise - create one shielded pool at a fixed denomination
//
// the vault address is re-derived and compared so a caller cannot
// point a pool at a cell it controls
func Initialise(
	trans storage.Transaction,
	pool account.Address,
	authority account.Address,
	authoritySigned bool,
	vault account.Address,
	treeDepth uint8,
	denomination uint64,
) error {

	if !authoritySigned {
		return fault.ErrUnauthorized
	}

	if vault != VaultAddress(pool) {
		return fault.ErrInvalidAddress
	}

	if trans.Has(storage.Pool.Pools, pool.Bytes()) {
		return fault.ErrPoolAlreadyInitialised
	}

	// a zero depth tree has no leaves to commit to
	if 0 == treeDepth {
		return fault.ErrInvalidAccountData
	}

	if 0 == denomination {
		return fault.ErrInvalidAmount
	}

	ledger := &ledgerrecord.PoolLedger{
		Authority:    authority,
		TreeDepth:    treeDepth,
		Denomination: denomination,
		Vault:        vault,
		Initialised:  true,
	}

	// the vault starts empty
	trans.PutN(storage.Pool.Balances, vault.Bytes(), 0)

	return writeLedger(trans, pool, ledger)
}

// UpdateRoot - replace the accumulator root
//
// used by the pool authority after batching commitment insertions in
// an off ledger tree build
func UpdateRoot(
	trans storage.Transaction,
	pool account.Address,
	authority account.Address,
	authoritySigned bool,
	newRoot shield.Root,
) error {

	if !authoritySigned {
		return fault.ErrUnauthorized
	}

	ledger, err := ReadLedger(trans, pool)
	if nil != err {
		return err
	}

	if authority != ledger.Authority {
		return fault.ErrUnauthorized
	}

	ledger.Root = newRoot

	return writeLedger(trans, pool, ledger)
}

// ReadLedger - load one initialised pool ledger
func ReadLedger(trans storage.Transaction, pool account.Address) (*ledgerrecord.PoolLedger, error) {
	packed := trans.Get(storage.Pool.Pools, pool.Bytes())
	if nil == packed {
		return nil, fault.ErrPoolNotInitialised
	}
	ledger, err := ledgerrecord.Packed(packed).PoolLedger()
	if nil != err {
		return nil, err
	}
	if !ledger.Initialised {
		return nil, fault.ErrPoolNotInitialised
	}
	return ledger, nil
}

// internal: pack and stage one pool ledger
func writeLedger(trans storage.Transaction, pool account.Address, ledger *ledgerrecord.PoolLedger) error {
	packed, err := ledger.Pack()
	if nil != err {
		return err
	}
	trans.Put(storage.Pool.Pools, pool.Bytes(), packed)
	return nil
}

// internal: append one commitment to the accumulator
func appendCommitment(ledger *ledgerrecord.PoolLedger, commitment shield.Commitment) {
	ledger.CommitmentCount += 1
	ledger.Root = shield.NextRoot(ledger.Root, commitment)
}

// internal: note a spent nullifier in the in-record statistics
//
// the cache stops growing at its limit but the counter never does;
// enforcement is the guard existence records, never this cache
func cacheNullifier(ledger *ledgerrecord.PoolLedger, nullifier shield.Nullifier) {
	items := make([][limitedset.IdSize]byte, len(ledger.NullifierCache))
	for i := 0; i < len(ledger.NullifierCache); i += 1 {
		items[i] = ledger.NullifierCache[i]
	}
	cache := limitedset.NewFromItems(ledgerrecord.CacheLimit, items)
	if cache.Add(nullifier) {
		ledger.NullifierCache = append(ledger.NullifierCache, nullifier)
	}
	ledger.NullifierCount += 1
}

// internal: note a spent key image in the in-record statistics
func cacheKeyImage(ledger *ledgerrecord.PoolLedger, keyImage shield.KeyImage) {
	items := make([][limitedset.IdSize]byte, len(ledger.KeyImageCache))
	for i := 0; i < len(ledger.KeyImageCache); i += 1 {
		items[i] = ledger.KeyImageCache[i]
	}
	cache := limitedset.NewFromItems(ledgerrecord.CacheLimit, items)
	if cache.Add(keyImage) {
		ledger.KeyImageCache = append(ledger.KeyImageCache, keyImage)
	}
	ledger.KeyImageCount += 1
}

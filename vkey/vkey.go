// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vkey - the verifying key registry
//
// Exactly one entry exists per (pool, circuit kind) at an address
// derived from the kind's seed label and the pool.  Only the pool's
// authority may create or overwrite an entry; anyone may read.
package vkey

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/storage"
)

// EntryAddress - the registry cell of one (pool, kind) pair
func EntryAddress(pool account.Address, kind circuit.Kind) account.Address {
	return account.DeriveAddress(kind.Seed(), pool.Bytes())
}

// Store - create or overwrite the verifying key of one circuit kind
//
// the caller must be the governing pool's authority and must have
// signed the request; the new entry address is returned
func Store(
	trans storage.Transaction,
	pool account.Address,
	authority account.Address,
	authoritySigned bool,
	kind circuit.Kind,
	key []byte,
	now uint64,
) (account.Address, error) {

	var entry account.Address

	if !authoritySigned {
		return entry, fault.ErrUnauthorized
	}

	packed := trans.Get(storage.Pool.Pools, pool.Bytes())
	if nil == packed {
		return entry, fault.ErrPoolNotInitialised
	}
	poolLedger, err := ledgerrecord.Packed(packed).PoolLedger()
	if nil != err {
		return entry, err
	}
	if !poolLedger.Initialised {
		return entry, fault.ErrPoolNotInitialised
	}
	if authority != poolLedger.Authority {
		return entry, fault.ErrUnauthorized
	}

	if 0 == len(key) || len(key) > ledgerrecord.MaxKeyLength {
		return entry, fault.ErrInvalidVerificationKey
	}
	if !kind.IsValid() {
		return entry, fault.ErrInvalidAccountData
	}

	record := ledgerrecord.StoredKey{
		CircuitKind: kind,
		Pool:        pool,
		Authority:   authority,
		Key:         key,
		StoredAt:    now,
	}
	packedRecord, err := record.Pack()
	if nil != err {
		return entry, err
	}

	entry = EntryAddress(pool, kind)
	trans.Put(storage.Pool.VerificationKeys, entry.Bytes(), packedRecord)

	return entry, nil
}

// Fetch - the verifying key bytes of one circuit kind
func Fetch(trans storage.Transaction, pool account.Address, kind circuit.Kind) ([]byte, error) {
	stored, err := ReadEntry(trans, pool, kind)
	if nil != err {
		return nil, err
	}
	return stored.Key, nil
}

// ReadEntry - the whole registry record, for status surfaces
func ReadEntry(trans storage.Transaction, pool account.Address, kind circuit.Kind) (*ledgerrecord.StoredKey, error) {
	if !kind.IsValid() {
		return nil, fault.ErrInvalidAccountData
	}

	entry := EntryAddress(pool, kind)
	packed := trans.Get(storage.Pool.VerificationKeys, entry.Bytes())
	if nil == packed {
		return nil, fault.ErrVerificationKeyNotFound
	}
	return ledgerrecord.Packed(packed).StoredKey()
}

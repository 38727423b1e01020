// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vkey_test

import (
	"bytes"
	"testing"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/vkey"
)

// internal: a verifying key stand-in of a given size
func makeKey(size int) []byte {
	key := make([]byte, size)
	for i := 0; i < size; i += 1 {
		key[i] = byte(0xe0 + i)
	}
	return key
}

func TestStoreAndFetch(t *testing.T) {
	setup(t)
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}

	pool := makeAddress(0x10)
	authority := makeAddress(0x50)
	writePool(t, trans, pool, authority, true)

	key := makeKey(64)
	entry, err := vkey.Store(trans, pool, authority, true, circuit.Transfer, key, 1700000000)
	if nil != err {
		t.Fatalf("store error: %s", err)
	}

	expected := account.DeriveAddress([]byte("vk_transfer"), pool.Bytes())
	if expected != entry {
		t.Errorf("entry address: actual: %s  expected: %s", entry, expected)
	}

	fetched, err := vkey.Fetch(trans, pool, circuit.Transfer)
	if nil != err {
		t.Fatalf("fetch error: %s", err)
	}
	if !bytes.Equal(key, fetched) {
		t.Errorf("key: actual: %x  expected: %x", fetched, key)
	}

	// each kind is a separate entry
	_, err = vkey.Fetch(trans, pool, circuit.Balance)
	if fault.ErrVerificationKeyNotFound != err {
		t.Errorf("balance kind: actual: %v  expected: %v", err, fault.ErrVerificationKeyNotFound)
	}

	err = trans.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}

	// the entry survives the transaction
	trans, err = storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	stored, err := vkey.ReadEntry(trans, pool, circuit.Transfer)
	if nil != err {
		t.Fatalf("read entry error: %s", err)
	}
	if circuit.Transfer != stored.CircuitKind {
		t.Errorf("kind: actual: %s  expected: %s", stored.CircuitKind, circuit.Transfer)
	}
	if pool != stored.Pool {
		t.Errorf("pool: actual: %s  expected: %s", stored.Pool, pool)
	}
	if authority != stored.Authority {
		t.Errorf("authority: actual: %s  expected: %s", stored.Authority, authority)
	}
	if !bytes.Equal(key, stored.Key) {
		t.Errorf("key: actual: %x  expected: %x", stored.Key, key)
	}
	if 1700000000 != stored.StoredAt {
		t.Errorf("stored at: actual: %d  expected: %d", stored.StoredAt, 1700000000)
	}
}

func TestStoreAuthority(t *testing.T) {
	setup(t)
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	pool := makeAddress(0x10)
	authority := makeAddress(0x50)
	writePool(t, trans, pool, authority, true)

	key := makeKey(32)

	// request not signed by the authority
	_, err = vkey.Store(trans, pool, authority, false, circuit.Transfer, key, 1)
	if fault.ErrUnauthorized != err {
		t.Errorf("unsigned: actual: %v  expected: %v", err, fault.ErrUnauthorized)
	}

	// signed by somebody else
	intruder := makeAddress(0x90)
	_, err = vkey.Store(trans, pool, intruder, true, circuit.Transfer, key, 1)
	if fault.ErrUnauthorized != err {
		t.Errorf("intruder: actual: %v  expected: %v", err, fault.ErrUnauthorized)
	}

	// no pool record at all
	ghost := makeAddress(0xd0)
	_, err = vkey.Store(trans, ghost, authority, true, circuit.Transfer, key, 1)
	if fault.ErrPoolNotInitialised != err {
		t.Errorf("missing pool: actual: %v  expected: %v", err, fault.ErrPoolNotInitialised)
	}

	// pool record exists but is not initialised
	dormant := makeAddress(0x70)
	writePool(t, trans, dormant, authority, false)
	_, err = vkey.Store(trans, dormant, authority, true, circuit.Transfer, key, 1)
	if fault.ErrPoolNotInitialised != err {
		t.Errorf("dormant pool: actual: %v  expected: %v", err, fault.ErrPoolNotInitialised)
	}
}

func TestStoreKeySize(t *testing.T) {
	setup(t)
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	pool := makeAddress(0x10)
	authority := makeAddress(0x50)
	writePool(t, trans, pool, authority, true)

	_, err = vkey.Store(trans, pool, authority, true, circuit.Transfer, []byte{}, 1)
	if fault.ErrInvalidVerificationKey != err {
		t.Errorf("empty key: actual: %v  expected: %v", err, fault.ErrInvalidVerificationKey)
	}

	_, err = vkey.Store(trans, pool, authority, true, circuit.Transfer, makeKey(3000), 1)
	if fault.ErrInvalidVerificationKey != err {
		t.Errorf("oversize key: actual: %v  expected: %v", err, fault.ErrInvalidVerificationKey)
	}

	// the cap itself is fine
	_, err = vkey.Store(trans, pool, authority, true, circuit.Transfer, makeKey(2048), 1)
	if nil != err {
		t.Errorf("maximum key: unexpected error: %s", err)
	}
}

func TestStoreBadKind(t *testing.T) {
	setup(t)
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	pool := makeAddress(0x10)
	authority := makeAddress(0x50)
	writePool(t, trans, pool, authority, true)

	_, err = vkey.Store(trans, pool, authority, true, circuit.Kind(7), makeKey(32), 1)
	if fault.ErrInvalidAccountData != err {
		t.Errorf("bad kind: actual: %v  expected: %v", err, fault.ErrInvalidAccountData)
	}

	// size is checked before the kind
	_, err = vkey.Store(trans, pool, authority, true, circuit.Kind(7), makeKey(3000), 1)
	if fault.ErrInvalidVerificationKey != err {
		t.Errorf("bad kind and size: actual: %v  expected: %v", err, fault.ErrInvalidVerificationKey)
	}

	_, err = vkey.Fetch(trans, pool, circuit.Kind(7))
	if fault.ErrInvalidAccountData != err {
		t.Errorf("fetch bad kind: actual: %v  expected: %v", err, fault.ErrInvalidAccountData)
	}
}

func TestStoreOverwrite(t *testing.T) {
	setup(t)
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	pool := makeAddress(0x10)
	authority := makeAddress(0x50)
	writePool(t, trans, pool, authority, true)

	first := makeKey(48)
	_, err = vkey.Store(trans, pool, authority, true, circuit.Balance, first, 1000)
	if nil != err {
		t.Fatalf("store error: %s", err)
	}

	second := makeKey(96)
	_, err = vkey.Store(trans, pool, authority, true, circuit.Balance, second, 2000)
	if nil != err {
		t.Fatalf("store error: %s", err)
	}

	stored, err := vkey.ReadEntry(trans, pool, circuit.Balance)
	if nil != err {
		t.Fatalf("read entry error: %s", err)
	}
	if !bytes.Equal(second, stored.Key) {
		t.Errorf("key: actual: %x  expected: %x", stored.Key, second)
	}
	if 2000 != stored.StoredAt {
		t.Errorf("stored at: actual: %d  expected: %d", stored.StoredAt, 2000)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"

	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/guard"
	"github.com/shadowpool/shadowd/pool"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
)

// internal: a ring of distinct members
func makeRing(size int) [][32]byte {
	ring := make([][32]byte, size)
	for i := 0; i < size; i += 1 {
		ring[i] = makeWord(uint64(0x2000 + i))
	}
	return ring
}

// internal: a structurally valid signature for a ring of the given size
func makeSignature(size int) []byte {
	signature := make([]byte, shield.Size*(size+1))
	for i := 0; i < len(signature); i += 1 {
		signature[i] = byte(i)
	}
	return signature
}

// a spent key image is refused before any signature inspection
func TestTransferKeyImagePrecedence(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	poolAccount := makeAddress(0x10)
	authority := makeAddress(0x30)
	keyImage := shield.KeyImage(makeWord(0xee))

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	createPool(t, trans, poolAccount, authority)

	err = guard.RecordKeyImage(trans, poolAccount, keyImage, nil, 1700000000)
	if nil != err {
		t.Fatalf("record error: %s", err)
	}

	// a signature too short to even parse: the reuse gate fires first
	err = pool.Transfer(trans, poolAccount, []byte{0x01}, keyImage, makeRing(3), shield.Commitment(makeWord(0xc001)), nil, nil, 1700000001)
	if fault.ErrKeyImageAlreadyUsed != err {
		t.Fatalf("reused key image: error: %s  expected: %s", err, fault.ErrKeyImageAlreadyUsed)
	}
}

// ring structure errors pass through unchanged
func TestTransferRingStructure(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	poolAccount := makeAddress(0x10)
	authority := makeAddress(0x30)
	keyImage := shield.KeyImage(makeWord(0xee))
	commitment := shield.Commitment(makeWord(0xc001))

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	createPool(t, trans, poolAccount, authority)

	err = pool.Transfer(trans, poolAccount, makeSignature(0), keyImage, makeRing(0), commitment, nil, nil, 1700000000)
	if fault.ErrInvalidRingSize != err {
		t.Fatalf("empty ring: error: %s  expected: %s", err, fault.ErrInvalidRingSize)
	}

	err = pool.Transfer(trans, poolAccount, makeSignature(verifier.MaximumRingSize+1), keyImage, makeRing(verifier.MaximumRingSize+1), commitment, nil, nil, 1700000000)
	if fault.ErrInvalidRingSize != err {
		t.Fatalf("oversize ring: error: %s  expected: %s", err, fault.ErrInvalidRingSize)
	}

	err = pool.Transfer(trans, poolAccount, []byte{0x01, 0x02}, keyImage, makeRing(3), commitment, nil, nil, 1700000000)
	if fault.ErrInvalidSignature != err {
		t.Fatalf("short signature: error: %s  expected: %s", err, fault.ErrInvalidSignature)
	}

	// structurally sound but the challenge chain cannot close
	err = pool.Transfer(trans, poolAccount, makeSignature(3), keyImage, makeRing(3), commitment, nil, nil, 1700000000)
	if fault.ErrInvalidRingSignature != err {
		t.Fatalf("open chain: error: %s  expected: %s", err, fault.ErrInvalidRingSignature)
	}

	// no failure above may have touched the ledger or the guard
	ledger, err := pool.ReadLedger(trans, poolAccount)
	if nil != err {
		t.Fatalf("read ledger error: %s", err)
	}
	if 0 != ledger.KeyImageCount || 0 != ledger.CommitmentCount {
		t.Fatal("failed transfers mutated the ledger")
	}
	if guard.IsKeyImageUsed(trans, poolAccount, keyImage) {
		t.Fatal("failed transfer recorded the key image")
	}
}

func TestTransferGhostPool(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	err = pool.Transfer(trans, makeAddress(0x10), makeSignature(3), shield.KeyImage(makeWord(0xee)), makeRing(3), shield.Commitment(makeWord(0xc001)), nil, nil, 1700000000)
	if fault.ErrPoolNotInitialised != err {
		t.Fatalf("ghost pool: error: %s  expected: %s", err, fault.ErrPoolNotInitialised)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"

	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/pool"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
)

func TestDeposit(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	poolAccount := makeAddress(0x10)
	authority := makeAddress(0x30)
	depositor := makeAddress(0x50)
	commitment := shield.Commitment(makeWord(0xc001))

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	vault := createPool(t, trans, poolAccount, authority)
	trans.CreditBalance(depositor.Bytes(), 3*testDenomination)

	err = pool.Deposit(trans, poolAccount, depositor, true, commitment, testDenomination)
	if nil != err {
		t.Fatalf("deposit error: %s", err)
	}

	if balance := trans.Balance(depositor.Bytes()); 2*testDenomination != balance {
		t.Fatalf("depositor balance: actual: %d  expected: %d", balance, 2*testDenomination)
	}
	if balance := trans.Balance(vault.Bytes()); testDenomination != balance {
		t.Fatalf("vault balance: actual: %d  expected: %d", balance, testDenomination)
	}

	ledger, err := pool.ReadLedger(trans, poolAccount)
	if nil != err {
		t.Fatalf("read ledger error: %s", err)
	}
	if 1 != ledger.CommitmentCount {
		t.Fatalf("commitment count: actual: %d  expected: %d", ledger.CommitmentCount, 1)
	}
	if testDenomination != ledger.TVL {
		t.Fatalf("tvl: actual: %d  expected: %d", ledger.TVL, testDenomination)
	}

	// the accumulator chains from the zero root
	var zeroRoot shield.Root
	expected := shield.NextRoot(zeroRoot, commitment)
	if ledger.Root != expected {
		t.Fatalf("root: actual: %#v  expected: %#v", ledger.Root, expected)
	}

	// a second note chains from the first
	second := shield.Commitment(makeWord(0xc002))
	err = pool.Deposit(trans, poolAccount, depositor, true, second, testDenomination)
	if nil != err {
		t.Fatalf("deposit error: %s", err)
	}
	ledger, err = pool.ReadLedger(trans, poolAccount)
	if nil != err {
		t.Fatalf("read ledger error: %s", err)
	}
	expected = shield.NextRoot(expected, second)
	if ledger.Root != expected {
		t.Fatalf("chained root: actual: %#v  expected: %#v", ledger.Root, expected)
	}
	if 2 != ledger.CommitmentCount {
		t.Fatalf("commitment count: actual: %d  expected: %d", ledger.CommitmentCount, 2)
	}
}

func TestDepositGates(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	poolAccount := makeAddress(0x10)
	authority := makeAddress(0x30)
	depositor := makeAddress(0x50)
	commitment := shield.Commitment(makeWord(0xc001))

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	// pool must exist
	err = pool.Deposit(trans, poolAccount, depositor, true, commitment, testDenomination)
	if fault.ErrPoolNotInitialised != err {
		t.Fatalf("ghost pool: error: %s  expected: %s", err, fault.ErrPoolNotInitialised)
	}

	createPool(t, trans, poolAccount, authority)
	trans.CreditBalance(depositor.Bytes(), 10*testDenomination)

	// depositor must sign
	err = pool.Deposit(trans, poolAccount, depositor, false, commitment, testDenomination)
	if fault.ErrUnauthorized != err {
		t.Fatalf("unsigned: error: %s  expected: %s", err, fault.ErrUnauthorized)
	}

	// only the exact denomination can enter
	err = pool.Deposit(trans, poolAccount, depositor, true, commitment, testDenomination-1)
	if fault.ErrInvalidAmount != err {
		t.Fatalf("short amount: error: %s  expected: %s", err, fault.ErrInvalidAmount)
	}
	err = pool.Deposit(trans, poolAccount, depositor, true, commitment, testDenomination+1)
	if fault.ErrInvalidAmount != err {
		t.Fatalf("long amount: error: %s  expected: %s", err, fault.ErrInvalidAmount)
	}

	// the zero commitment is reserved
	var zero shield.Commitment
	err = pool.Deposit(trans, poolAccount, depositor, true, zero, testDenomination)
	if fault.ErrInvalidCommitment != err {
		t.Fatalf("zero commitment: error: %s  expected: %s", err, fault.ErrInvalidCommitment)
	}

	// nothing above may have touched the ledger
	ledger, err := pool.ReadLedger(trans, poolAccount)
	if nil != err {
		t.Fatalf("read ledger error: %s", err)
	}
	if 0 != ledger.CommitmentCount || 0 != ledger.TVL {
		t.Fatal("failed deposits mutated the ledger")
	}
}

func TestDepositUnderfunded(t *testing.T) {
	setup(t, "strict")
	defer teardown(t)

	poolAccount := makeAddress(0x10)
	authority := makeAddress(0x30)
	pauper := makeAddress(0x50)
	commitment := shield.Commitment(makeWord(0xc001))

	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()

	vault := createPool(t, trans, poolAccount, authority)
	trans.CreditBalance(pauper.Bytes(), testDenomination-1)

	err = pool.Deposit(trans, poolAccount, pauper, true, commitment, testDenomination)
	if fault.ErrInsufficientFunds != err {
		t.Fatalf("underfunded: error: %s  expected: %s", err, fault.ErrInsufficientFunds)
	}

	if balance := trans.Balance(pauper.Bytes()); testDenomination-1 != balance {
		t.Fatalf("failed deposit changed the depositor balance: %d", balance)
	}
	if balance := trans.Balance(vault.Bytes()); 0 != balance {
		t.Fatalf("failed deposit funded the vault: %d", balance)
	}
}

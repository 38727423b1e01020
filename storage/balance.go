// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/shadowpool/shadowd/fault"
)

// balance cells are 8 byte big endian records in the Balances pool,
// one cell per address; they model the transparent funds the engine
// moves when value enters or leaves a shielded pool

// Balance - read the balance of a cell, staged writes included
//
// an absent cell reads as zero
func (t *TransactionData) Balance(address []byte) uint64 {
	value, _ := t.GetN(Pool.Balances, address)
	return value
}

// CreditBalance - add to a cell balance, creating the cell if absent
func (t *TransactionData) CreditBalance(address []byte, amount uint64) {
	t.PutN(Pool.Balances, address, t.Balance(address)+amount)
}

// DebitBalance - remove from a cell balance
//
// fails without staging anything if the cell holds less than amount
func (t *TransactionData) DebitBalance(address []byte, amount uint64) error {
	current := t.Balance(address)
	if current < amount {
		return fault.ErrInsufficientFunds
	}
	t.PutN(Pool.Balances, address, current-amount)
	return nil
}

// TransferBalance - debit one cell and credit another
func (t *TransactionData) TransferBalance(from []byte, to []byte, amount uint64) error {
	err := t.DebitBalance(from, amount)
	if nil != err {
		return err
	}
	t.CreditBalance(to, amount)
	return nil
}

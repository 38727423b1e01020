// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// Transaction - staged batch over the database
//
// all writes issued through a transaction become visible to reads
// issued through the same transaction, but only reach the database
// when Commit is called; Abort discards the staged writes
type Transaction interface {
	Abort()
	Balance([]byte) uint64
	Begin() error
	Commit() error
	CreditBalance([]byte, uint64)
	DebitBalance([]byte, uint64) error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	TransferBalance([]byte, []byte, uint64) error
}

type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - mark the transaction in use
//
// returns an error if a transaction is already in progress
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// InUse - whether a transaction is in progress
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Put - stage a key/value bytes pair
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.access.Put(p.prefixKey(key), value)
}

// PutN - stage a big endian uint64 as an 8 byte record
func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.access.Put(p.prefixKey(key), buffer)
}

// Delete - stage a removal
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	t.access.Delete(p.prefixKey(key))
}

// Get - read a value, staged writes included
//
// returns nil if the key is not present
func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	value, err := t.access.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists, staged writes included
func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	value, err := t.access.Has(p.prefixKey(key))
	logger.PanicIfError("transaction.Has", err)
	return value
}

// Commit - write the staged batch to the database
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard the staged batch
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/shadowpool/shadowd/fault"
)

// Access - staged access to the underlying database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte)
	DirectPut([]byte, []byte) error
	DirectDelete([]byte) error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
}

type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newAccess(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: batch,
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.inUse = true
	return nil
}

// Put - stage a key/value pair
//
// visible to Get and Has before commit
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - stage a removal
func (d *AccessData) Delete(key []byte) {
	d.cache.Set(dbDelete, string(key), []byte{})
	d.batch.Delete(key)
}

// DirectPut - bypass staging and write straight to the database
//
// only for use outside a transaction
func (d *AccessData) DirectPut(key []byte, value []byte) error {
	d.cache.Set(dbPut, string(key), value)
	return d.db.Put(key, value, nil)
}

// DirectDelete - bypass staging and delete straight from the database
func (d *AccessData) DirectDelete(key []byte) error {
	d.cache.Set(dbDelete, string(key), []byte{})
	return d.db.Delete(key, nil)
}

// Commit - write the staged batch and reset it
//
// staged cache entries are retained as a short lived read cache
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.inUse = false
	return err
}

func (d *AccessData) Get(key []byte) ([]byte, error) {
	op, value, found := d.cache.Lookup(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return value, nil
	}
	return d.db.Get(key, nil)
}

func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *AccessData) Has(key []byte) (bool, error) {
	op, _, found := d.cache.Lookup(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	return d.inUse
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

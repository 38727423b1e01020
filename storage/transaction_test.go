// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/storage"
)

func TestTransactionBegin(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first Begin should not return any error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second Begin should be refused")

	trx.Abort()

	_, err = storage.NewDBTransaction()
	assert.Nil(t, err, "Begin after Abort should not return any error")
}

// staged writes must be visible to reads inside the same transaction
// and invisible to the database until commit
func TestTransactionStagedVisibility(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")

	trx.Put(pool, testKey, []byte(testData))

	assert.True(t, trx.Has(pool, testKey), "staged key not visible in transaction")
	assert.Equal(t, []byte(testData), trx.Get(pool, testKey), "staged data not visible in transaction")

	err = trx.Commit()
	assert.Nil(t, err, "transaction commit error")

	assert.Equal(t, []byte(testData), pool.Get(testKey), "committed data missing")
}

// a staged delete must hide a committed value inside the transaction
func TestTransactionStagedDelete(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData
	pool.Put(testKey, []byte(testData))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")

	trx.Delete(pool, testKey)

	assert.False(t, trx.Has(pool, testKey), "deleted key still visible in transaction")
	assert.Nil(t, trx.Get(pool, testKey), "deleted data still visible in transaction")

	err = trx.Commit()
	assert.Nil(t, err, "transaction commit error")

	assert.False(t, pool.Has(testKey), "deleted key survived commit")
}

// aborted writes must never reach the database
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")

	trx.Put(pool, testKey, []byte(testData))
	trx.Abort()

	assert.Nil(t, pool.Get(testKey), "aborted data reached the database")
	assert.False(t, pool.Has(testKey), "aborted key reached the database")
}

func TestTransactionPutNGetN(t *testing.T) {
	setup(t)
	defer teardown(t)

	pool := storage.Pool.Balances

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")

	n, found := trx.GetN(pool, testKey)
	assert.False(t, found, "missing key reported present")
	assert.Equal(t, uint64(0), n, "wrong default value")

	trx.PutN(pool, testKey, 500)

	n, found = trx.GetN(pool, testKey)
	assert.True(t, found, "staged value not found")
	assert.Equal(t, uint64(500), n, "wrong staged value")

	err = trx.Commit()
	assert.Nil(t, err, "transaction commit error")

	n, found = pool.GetN(testKey)
	assert.True(t, found, "committed value not found")
	assert.Equal(t, uint64(500), n, "wrong committed value")
}

// writes to several pools inside one transaction commit atomically
func TestTransactionSpansPools(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")

	trx.Put(storage.Pool.Pools, testKey, []byte("pool"))
	trx.Put(storage.Pool.Relayers, testKey, []byte("relayer"))
	trx.PutN(storage.Pool.Balances, testKey, 42)

	err = trx.Commit()
	assert.Nil(t, err, "transaction commit error")

	assert.Equal(t, []byte("pool"), storage.Pool.Pools.Get(testKey), "wrong pool data")
	assert.Equal(t, []byte("relayer"), storage.Pool.Relayers.Get(testKey), "wrong relayer data")

	n, found := storage.Pool.Balances.GetN(testKey)
	assert.True(t, found, "balance not found")
	assert.Equal(t, uint64(42), n, "wrong balance")
}

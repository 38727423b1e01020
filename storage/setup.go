// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Pools            *PoolHandle `prefix:"P"`
	Assets           *PoolHandle `prefix:"A"`
	Nullifiers       *PoolHandle `prefix:"N"`
	KeyImages        *PoolHandle `prefix:"K"`
	VerificationKeys *PoolHandle `prefix:"V"`
	Relayers         *PoolHandle `prefix:"R"`
	Balances         *PoolHandle `prefix:"B"`
	TestData         *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentLedgerDBVersion = 0x101

// holds the database handle
var poolData struct {
	sync.RWMutex
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	ledgerDatabase := database + "-ledger.leveldb"

	db, ledgerVersion, err := getDB(ledgerDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.db = db

	// ensure no database downgrade
	if ledgerVersion > currentLedgerDBVersion {
		logger.Criticalf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
		return fmt.Errorf("ledger database version: %d > current version: %d", ledgerVersion, currentLedgerDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && ledgerVersion != currentLedgerDBVersion {
		logger.Criticalf("database is inconsistent: ledger: %d  current: %d", ledgerVersion, currentLedgerDBVersion)
		return fmt.Errorf("database is inconsistent: ledger: %d  current: %d", ledgerVersion, currentLedgerDBVersion)
	}

	if 0 == ledgerVersion {
		// database was empty so tag as current version
		err = putVersion(poolData.db, currentLedgerDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// single staged access shared by every pool
	poolData.access = newAccess(poolData.db, new(leveldb.Batch), newCache())
	poolData.trx = newTransaction(poolData.access)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
			access: poolData.access,
		}

		newPool := reflect.ValueOf(p)
		poolValue.Field(i).Set(newPool)
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
		poolData.access = nil
		poolData.trx = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// IsInitialised - check the database connection is open
func IsInitialised() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// NewDBTransaction - begin a staged batch over the database
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.trx {
		return nil, fault.ErrNotInitialised
	}
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// return:
//
//	database handle
//	version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

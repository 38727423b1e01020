// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/pool"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
	"github.com/shadowpool/shadowd/vkey"
)

// test database file
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing with an explicit verification mode
func setup(t *testing.T, modeName string) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = verifier.Initialise(modeName)
	if nil != err {
		t.Fatalf("verifier initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	verifier.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// internal: an address from 32 ascending bytes
func makeAddress(start byte) account.Address {
	var address account.Address
	for i := 0; i < len(address); i += 1 {
		address[i] = start + byte(i)
	}
	return address
}

// internal: a 32 byte big endian word from a small value
func makeWord(value uint64) [32]byte {
	var word [32]byte
	binary.BigEndian.PutUint64(word[24:], value)
	return word
}

// internal: a governing pool holding the given transfer circuit key
func createGoverningPool(t *testing.T, trans storage.Transaction, poolAccount account.Address, authority account.Address, key []byte) {
	t.Helper()

	vault := pool.VaultAddress(poolAccount)
	err := pool.Initialise(trans, poolAccount, authority, true, vault, 20, 1000000000)
	if nil != err {
		t.Fatalf("pool initialise error: %s", err)
	}

	_, err = vkey.Store(trans, poolAccount, authority, true, circuit.Transfer, key, 1700000000)
	if nil != err {
		t.Fatalf("store key error: %s", err)
	}
}

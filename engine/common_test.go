// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/engine"
	"github.com/shadowpool/shadowd/storage"
)

// test data directory
const testingDirName = "testing"

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
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

	err := engine.Initialise(testingDirName, modeName)
	if nil != err {
		t.Fatalf("engine initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = engine.Finalise()
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

// internal: credit a balance cell outside any request
func fund(t *testing.T, address account.Address, amount uint64) {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	trans.CreditBalance(address.Bytes(), amount)
	err = trans.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

// internal: read one committed balance cell
func readBalance(t *testing.T, address account.Address) uint64 {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	defer trans.Abort()
	return trans.Balance(address.Bytes())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package relayer_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/storage"
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

// configure for testing
func setup(t *testing.T) {
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
}

// post test cleanup
func teardown(t *testing.T) {
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

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

// test log directory
const testingDirName = "testing"

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
}

// post test cleanup
func teardown(t *testing.T) {
	logger.Finalise()
	removeFiles()
}

// internal: 32 ascending bytes from a starting value
func sequence(start byte) []byte {
	buffer := make([]byte, 32)
	for i := 0; i < len(buffer); i += 1 {
		buffer[i] = start + byte(i)
	}
	return buffer
}

// internal: a 32 byte array from a slice
func toWord(buffer []byte) [32]byte {
	var word [32]byte
	copy(word[:], buffer)
	return word
}

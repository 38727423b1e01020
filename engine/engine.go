// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - request dispatch for the shielded ledger
//
// One request runs at a time under the engine lock, matching the
// total ordering the surrounding environment provides.  Each request
// executes inside a single storage transaction: the first refused
// check aborts the transaction, so later requests never observe a
// partial mutation.
package engine

import (
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/counter"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
)

// prefix for the ledger database inside the data directory
const databaseName = "shadow"

var globalData struct {
	sync.Mutex
	log *logger.L

	requests [requestTagCount]counter.Counter
	failures counter.Counter

	initialised bool
}

// Initialise - open the ledger database and set the verification mode
//
// the mode name is passed through to the verifier unchanged; an
// unknown name refuses to start
func Initialise(dataDirectory string, modeName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("engine")
	globalData.log.Info("starting…")

	err := storage.Initialise(filepath.Join(dataDirectory, databaseName), storage.ReadWrite)
	if nil != err {
		return err
	}

	err = verifier.Initialise(modeName)
	if nil != err {
		storage.Finalise()
		return err
	}

	// fresh accounting for this run
	globalData.requests = [requestTagCount]counter.Counter{}
	globalData.failures = 0

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the engine
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	err := verifier.Finalise()
	storage.Finalise()

	globalData.log.Flush()
	globalData.initialised = false

	return err
}

// Counters - snapshot of the request accounting
type Counters struct {
	Requests map[string]uint64 `json:"requests"`
	Failures uint64            `json:"failures"`
}

// ReadCounters - current request totals
//
// counters are atomic so no lock is taken; a snapshot during a
// dispatch may be one request stale
func ReadCounters() Counters {
	result := Counters{
		Requests: make(map[string]uint64),
	}
	for tag := Tag(0); tag < requestTagCount; tag += 1 {
		result.Requests[tag.String()] = globalData.requests[tag].Uint64()
	}
	result.Failures = globalData.failures.Uint64()
	return result
}

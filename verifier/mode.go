// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/fault"
)

// type to hold the mode
type Mode int

// all possible modes
const (
	Strict Mode = iota
	Permissive
	maximum
)

var globalData struct {
	sync.RWMutex
	log  *logger.L
	mode Mode

	// set once during initialise
	initialised bool
}

// set up the verification mode
//
// the mode name must be given explicitly; there is no default so a
// deployment cannot silently run with proof checking disabled
func Initialise(modeName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("verifier")
	globalData.log.Info("starting…")

	switch modeName {
	case "strict":
		globalData.mode = Strict
	case "permissive":
		globalData.mode = Permissive
		globalData.log.Warn("****************************************************")
		globalData.log.Warn("permissive mode: Groth16 proofs are NOT being checked")
		globalData.log.Warn("****************************************************")
	default:
		globalData.log.Criticalf("verifier cannot handle mode: %q", modeName)
		return fault.ErrInvalidVerificationMode
	}

	globalData.log.Infof("mode: %s", globalData.mode)

	// all data initialised
	globalData.initialised = true

	return nil
}

// shutdown mode handling
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// back to the safe default
	globalData.Lock()
	globalData.mode = Strict
	globalData.initialised = false
	globalData.Unlock()

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// detect mode
func Is(mode Mode) bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return mode == globalData.mode
}

// current mode represented as a string
func String() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.mode.String()
}

// current mode represented as a string
func (m Mode) String() string {
	switch m {
	case Strict:
		return "Strict"
	case Permissive:
		return "Permissive"
	default:
		return "*Unknown*"
	}
}

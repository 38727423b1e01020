// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/shadowpool/shadowd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var accepted counter.Counter

	if !accepted.IsZero() {
		t.Errorf("counter is not zero at start: %d", accepted.Uint64())
	}

	for i := 0; i < 5; i += 1 {
		accepted.Increment()
	}

	if 5 != accepted.Uint64() {
		t.Errorf("counter is not 5 after incrementing: %d", accepted.Uint64())
	}

	accepted.Decrement()

	if 4 != accepted.Uint64() {
		t.Errorf("counter is not 4 after decrementing: %d", accepted.Uint64())
	}

	for i := 0; i < 4; i += 1 {
		accepted.Decrement()
	}

	if !accepted.IsZero() {
		t.Errorf("counter did not return to zero: %d", accepted.Uint64())
	}

	accepted.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != accepted.Uint64() {
		t.Errorf("counter did not underflow: %d", accepted.Uint64())
	}
}

// concurrent increments must not lose updates
func TestCounterConcurrent(t *testing.T) {

	var processed counter.Counter
	var wg sync.WaitGroup

	workers := 8
	each := 1000

	wg.Add(workers)
	for i := 0; i < workers; i += 1 {
		go func() {
			defer wg.Done()
			for j := 0; j < each; j += 1 {
				processed.Increment()
			}
		}()
	}
	wg.Wait()

	if uint64(workers*each) != processed.Uint64() {
		t.Errorf("lost updates: actual: %d  expected: %d", processed.Uint64(), workers*each)
	}
}

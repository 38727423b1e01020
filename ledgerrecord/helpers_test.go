// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord_test

// fill a 32 byte buffer with an ascending pattern
func sequence(start byte) []byte {
	buffer := make([]byte, 32)
	for i := 0; i < len(buffer); i += 1 {
		buffer[i] = start + byte(i)
	}
	return buffer
}

// copy of a packed record with no spare capacity
//
// slicing a packed record leaves the original array reachable, so
// truncation tests need a tight copy to detect over-reads
func tight(buffer []byte) []byte {
	c := make([]byte, len(buffer))
	copy(c, buffer)
	return c
}

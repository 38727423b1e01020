// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shield

import (
	"golang.org/x/crypto/sha3"
)

// Root - running accumulator over all commitments in a pool
//
// a fresh pool starts from the all zero root; every append replaces
// the root with Keccak-256(root ‖ commitment)
type Root [Size]byte

// NextRoot - the accumulator after appending one commitment
//
// legacy Keccak-256, matching the off-ledger tree builder
func NextRoot(root Root, commitment Commitment) Root {
	h := sha3.NewLegacyKeccak256()
	h.Write(root[:])
	h.Write(commitment[:])

	var next Root
	copy(next[:], h.Sum(nil))
	return next
}

// RootFromBytes - convert and validate a byte slice
func RootFromBytes(root *Root, buffer []byte) error {
	return fromBytes(root[:], buffer)
}

// IsZero - true for the fresh pool root
func (root Root) IsZero() bool {
	return isZero(root[:])
}

// String - hex string for use by the fmt package (for %s)
func (root Root) String() string {
	return string(toHex(root[:]))
}

// GoString - hex string for use by the fmt package (for %#v)
func (root Root) GoString() string {
	return "<root:" + string(toHex(root[:])) + ">"
}

// MarshalText - convert a root to hex text
func (root Root) MarshalText() ([]byte, error) {
	return toHex(root[:]), nil
}

// UnmarshalText - convert hex text into a root
func (root *Root) UnmarshalText(s []byte) error {
	return fromHex(root[:], s)
}

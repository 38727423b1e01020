// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shield

// Nullifier - one time tag revealed when a commitment is spent
type Nullifier [Size]byte

// NullifierFromBytes - convert and validate a byte slice
func NullifierFromBytes(nullifier *Nullifier, buffer []byte) error {
	return fromBytes(nullifier[:], buffer)
}

// IsZero - true for the all zero nullifier
func (nullifier Nullifier) IsZero() bool {
	return isZero(nullifier[:])
}

// String - hex string for use by the fmt package (for %s)
func (nullifier Nullifier) String() string {
	return string(toHex(nullifier[:]))
}

// GoString - hex string for use by the fmt package (for %#v)
func (nullifier Nullifier) GoString() string {
	return "<nullifier:" + string(toHex(nullifier[:])) + ">"
}

// MarshalText - convert a nullifier to hex text
func (nullifier Nullifier) MarshalText() ([]byte, error) {
	return toHex(nullifier[:]), nil
}

// UnmarshalText - convert hex text into a nullifier
func (nullifier *Nullifier) UnmarshalText(s []byte) error {
	return fromHex(nullifier[:], s)
}

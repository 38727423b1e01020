// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shield

// Commitment - opaque binding to a hidden deposited value
type Commitment [Size]byte

// CommitmentFromBytes - convert and validate a byte slice
func CommitmentFromBytes(commitment *Commitment, buffer []byte) error {
	return fromBytes(commitment[:], buffer)
}

// IsZero - true for the all zero commitment
//
// the zero value is reserved as the "no change output" sentinel in
// withdraw public inputs and is never a valid commitment
func (commitment Commitment) IsZero() bool {
	return isZero(commitment[:])
}

// String - hex string for use by the fmt package (for %s)
func (commitment Commitment) String() string {
	return string(toHex(commitment[:]))
}

// GoString - hex string for use by the fmt package (for %#v)
func (commitment Commitment) GoString() string {
	return "<commitment:" + string(toHex(commitment[:])) + ">"
}

// MarshalText - convert a commitment to hex text
func (commitment Commitment) MarshalText() ([]byte, error) {
	return toHex(commitment[:]), nil
}

// UnmarshalText - convert hex text into a commitment
func (commitment *Commitment) UnmarshalText(s []byte) error {
	return fromHex(commitment[:], s)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shield

// KeyImage - linkability tag revealed by a ring signature spend
type KeyImage [Size]byte

// KeyImageFromBytes - convert and validate a byte slice
func KeyImageFromBytes(keyImage *KeyImage, buffer []byte) error {
	return fromBytes(keyImage[:], buffer)
}

// IsZero - true for the all zero key image
func (keyImage KeyImage) IsZero() bool {
	return isZero(keyImage[:])
}

// String - hex string for use by the fmt package (for %s)
func (keyImage KeyImage) String() string {
	return string(toHex(keyImage[:]))
}

// GoString - hex string for use by the fmt package (for %#v)
func (keyImage KeyImage) GoString() string {
	return "<key-image:" + string(toHex(keyImage[:])) + ">"
}

// MarshalText - convert a key image to hex text
func (keyImage KeyImage) MarshalText() ([]byte, error) {
	return toHex(keyImage[:]), nil
}

// UnmarshalText - convert hex text into a key image
func (keyImage *KeyImage) UnmarshalText(s []byte) error {
	return fromHex(keyImage[:], s)
}

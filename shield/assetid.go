// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shield

// AssetID - identifier of one shielded asset class
type AssetID [Size]byte

// AssetIDFromBytes - convert and validate a byte slice
func AssetIDFromBytes(assetID *AssetID, buffer []byte) error {
	return fromBytes(assetID[:], buffer)
}

// IsZero - true for the all zero asset id
func (assetID AssetID) IsZero() bool {
	return isZero(assetID[:])
}

// String - hex string for use by the fmt package (for %s)
func (assetID AssetID) String() string {
	return string(toHex(assetID[:]))
}

// GoString - hex string for use by the fmt package (for %#v)
func (assetID AssetID) GoString() string {
	return "<asset:" + string(toHex(assetID[:])) + ">"
}

// MarshalText - convert an asset id to hex text
func (assetID AssetID) MarshalText() ([]byte, error) {
	return toHex(assetID[:]), nil
}

// UnmarshalText - convert hex text into an asset id
func (assetID *AssetID) UnmarshalText(s []byte) error {
	return fromHex(assetID[:], s)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shield - the 32 byte protocol values
//
// Commitments, nullifiers, key images, accumulator roots and asset
// ids are all opaque 32 byte strings.  They are stored and hashed
// exactly as supplied and printed as plain hex.
package shield

import (
	"encoding/hex"

	"github.com/shadowpool/shadowd/fault"
)

// number of bytes in every protocol value
const Size = 32

// internal: hex encode a value
func toHex(value []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(value)))
	hex.Encode(buffer, value)
	return buffer
}

// internal: decode hex text into a fixed 32 byte value
func fromHex(destination []byte, s []byte) error {
	if hex.DecodedLen(len(s)) != len(destination) {
		return fault.ErrInvalidRequest
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidRequest
	}
	copy(destination, buffer[:byteCount])
	return nil
}

// internal: copy and length check a byte slice
func fromBytes(destination []byte, buffer []byte) error {
	if len(destination) != len(buffer) {
		return fault.ErrInvalidRequest
	}
	copy(destination, buffer)
	return nil
}

// internal: true if all bytes are zero
func isZero(value []byte) bool {
	for _, b := range value {
		if 0 != b {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - the varint codec shared by all record layouts
package util

// Varint64MaximumBytes - maximum possible number of bytes in a Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to a Varint64
//
// seven value bits per byte, high bit set on all but the last byte;
// the ninth byte, when present, carries a full eight value bits
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)

	for {
		if len(result) == Varint64MaximumBytes-1 {
			result = append(result, byte(value))
			return result
		}
		b := byte(value & 0x7f)
		value >>= 7
		if 0 == value {
			result = append(result, b)
			return result
		}
		result = append(result, b|0x80)
	}
}

// FromVarint64 - decode a Varint64 from the beginning of a buffer
//
// also returns the number of bytes consumed as second value
// returns 0, 0 if the buffer holds a truncated varint
func FromVarint64(buffer []byte) (uint64, int) {
	value := uint64(0)
	shift := uint(0)

	for count, b := range buffer {
		if count == Varint64MaximumBytes-1 {
			value |= uint64(b) << shift
			return value, count + 1
		}
		value |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return value, count + 1
		}
		shift += 7
	}
	return 0, 0
}

// ClippedVarint64 - decode a positive clipped value as an int
//
// any value outside the range minimum..maximum is an error,
// signalled by a zero byte count
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}

	clipped := int(value)
	if clipped < minimum || clipped > maximum {
		return 0, 0
	}
	return clipped, count
}

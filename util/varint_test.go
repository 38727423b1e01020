// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/shadowpool/shadowd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xfffffffffffffffe, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var varint64TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
}

func TestToVarint64(t *testing.T) {

	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {

	for i, item := range varint64Tests {
		result, count := util.FromVarint64(item.encoded)
		if result != item.value {
			t.Errorf("%d: FromVarint64(%x) -> %d  expected: %d", i, item.encoded, result, item.value)
		}
		if count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) consumed %d bytes  expected: %d", i, item.encoded, count, len(item.encoded))
		}

		// trailing bytes must not disturb the decode
		suffixed := append(append([]byte{}, item.encoded...), 0xff, 0x97, 0x23)
		result, count = util.FromVarint64(suffixed)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d",
				i, suffixed, result, count, item.value, len(item.encoded))
		}
	}

	for i, item := range varint64TruncatedTests {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {

	buffer := util.ToVarint64(137)

	value, count := util.ClippedVarint64(buffer, 1, 2048)
	if 137 != value || len(buffer) != count {
		t.Errorf("ClippedVarint64 -> %d, %d  expected: 137, %d", value, count, len(buffer))
	}

	// out of range
	value, count = util.ClippedVarint64(buffer, 1, 100)
	if 0 != value || 0 != count {
		t.Errorf("over maximum: -> %d, %d  expected: 0, 0", value, count)
	}
	value, count = util.ClippedVarint64(buffer, 200, 2048)
	if 0 != value || 0 != count {
		t.Errorf("under minimum: -> %d, %d  expected: 0, 0", value, count)
	}

	// inverted limits
	value, count = util.ClippedVarint64(buffer, 10, 10)
	if 0 != value || 0 != count {
		t.Errorf("bad limits: -> %d, %d  expected: 0, 0", value, count)
	}
}

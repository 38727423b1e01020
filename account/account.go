// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - storage cell addresses
//
// Every ledger and registry record lives in a storage cell named by a
// 32 byte address.  Text form is base58 over the address followed by
// a four byte SHA3-256 checksum.
package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/shadowpool/shadowd/fault"
)

// miscellaneous constants
const (
	AddressLength  = 32
	checksumLength = 4
)

// Address - a storage cell address
type Address [AddressLength]byte

// AddressFromBase58 - convert a Base58 encoded string to an address
//
// the trailing checksum must match
func AddressFromBase58(addressBase58Encoded string) (Address, error) {
	var address Address

	decoded, err := base58.Decode(addressBase58Encoded)
	if nil != err {
		return address, fault.ErrInvalidAddress
	}
	if AddressLength+checksumLength != len(decoded) {
		return address, fault.ErrInvalidAddress
	}

	digest := sha3.Sum256(decoded[:AddressLength])
	if !bytes.Equal(digest[:checksumLength], decoded[AddressLength:]) {
		return address, fault.ErrChecksumMismatch
	}

	copy(address[:], decoded[:AddressLength])
	return address, nil
}

// AddressFromBytes - convert and validate a byte slice
func AddressFromBytes(address *Address, buffer []byte) error {
	if AddressLength != len(buffer) {
		return fault.ErrInvalidAddress
	}
	copy(address[:], buffer)
	return nil
}

// IsZero - true for the all zero address
func (address Address) IsZero() bool {
	for _, b := range address {
		if 0 != b {
			return false
		}
	}
	return true
}

// Bytes - the raw address bytes
func (address Address) Bytes() []byte {
	return address[:]
}

// String - base58 with checksum for use by the fmt package (for %s)
func (address Address) String() string {
	buffer := make([]byte, 0, AddressLength+checksumLength)
	buffer = append(buffer, address[:]...)
	digest := sha3.Sum256(address[:])
	buffer = append(buffer, digest[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + address.String() + ">"
}

// MarshalText - convert an address to base58 text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert base58 text into an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

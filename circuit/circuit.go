// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package circuit - enumeration of the proving circuits
//
// Each pool stores one verifying key per circuit kind; the kind also
// selects the derivation seed of the registry entry's address.
package circuit

import (
	"fmt"
	"strings"

	"github.com/shadowpool/shadowd/fault"
)

// Kind - circuit kind enumeration
//
// the numeric values are fixed by the external request encoding
type Kind uint64

// possible circuit kinds
const (
	Transfer      Kind = 0
	Balance       Kind = 1
	RingSignature Kind = 2
	maximumValue  Kind = iota
	Count         int  = int(maximumValue)
)

// internal conversion
func toString(kind Kind) ([]byte, error) {
	switch kind {
	case Transfer:
		return []byte("transfer"), nil
	case Balance:
		return []byte("balance"), nil
	case RingSignature:
		return []byte("ring-signature"), nil
	default:
		return []byte{}, fault.ErrInvalidAccountData
	}
}

// FromString - convert a string to a circuit kind
func FromString(in string) (Kind, error) {
	switch strings.ToLower(in) {
	case "transfer":
		return Transfer, nil
	case "balance":
		return Balance, nil
	case "ring-signature", "ringsignature", "ring_sig":
		return RingSignature, nil
	default:
		return maximumValue, fault.ErrInvalidAccountData
	}
}

// FromUint64 - convert a request or record value to a circuit kind
func FromUint64(value uint64) (Kind, error) {
	kind := Kind(value)
	if !kind.IsValid() {
		return maximumValue, fault.ErrInvalidAccountData
	}
	return kind, nil
}

// Uint64 - the numeric wire value
func (kind Kind) Uint64() uint64 {
	return uint64(kind)
}

// IsValid - true for a recognized kind
func (kind Kind) IsValid() bool {
	return kind < maximumValue
}

// Seed - the derivation seed label of this kind's registry entry
func (kind Kind) Seed() []byte {
	switch kind {
	case Transfer:
		return []byte("vk_transfer")
	case Balance:
		return []byte("vk_balance")
	case RingSignature:
		return []byte("vk_ring_sig")
	default:
		return nil
	}
}

// String - the kind name for use by the fmt package (for %s)
func (kind Kind) String() string {
	s, err := toString(kind)
	if nil != err {
		return fmt.Sprintf("*unknown-circuit-%d*", uint64(kind))
	}
	return string(s)
}

// GoString - enum value and name, for debugging
func (kind Kind) GoString() string {
	return fmt.Sprintf("<Circuit#%d:%q>", uint64(kind), kind.String())
}

// MarshalText - convert a kind to text
func (kind Kind) MarshalText() ([]byte, error) {
	return toString(kind)
}

// UnmarshalText - convert text into a kind
func (kind *Kind) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*kind = parsed
	return nil
}

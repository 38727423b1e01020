// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgerrecord - packed storage cell records
//
// Every record is a Varint64 tag followed by its fields in struct
// order; variable length fields carry a Varint64 length prefix, fixed
// 32 byte values are length prefixed too so layouts stay self
// describing.  Packed records are the only bytes ever written to the
// cell store.
package ledgerrecord

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/shield"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	PoolLedgerTag    = TagType(iota) // one shielded pool
	AssetLedgerTag   = TagType(iota) // one shielded asset class
	NullifierMarkTag = TagType(iota) // per id spend evidence
	KeyImageMarkTag  = TagType(iota) // per id ring spend evidence
	StoredKeyTag     = TagType(iota) // verifying key registry entry
	RelayerTag       = TagType(iota) // relay operator registry entry

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	CacheLimit        = 100 // in-record nullifier/key image caches
	MaxKeyLength      = 2048
	MaxEndpointLength = 128
	MaxNameLength     = 64
	MaxSymbolLength   = 16
	MaxTxTagLength    = 64 // optional originating transaction tag
)

// PoolLedger - one shielded pool at a fixed denomination
type PoolLedger struct {
	Authority       account.Address    `json:"authority"`
	Root            shield.Root        `json:"root"`
	TreeDepth       uint8              `json:"treeDepth"`
	CommitmentCount uint64             `json:"commitmentCount,string"`
	Denomination    uint64             `json:"denomination,string"`
	TVL             uint64             `json:"tvl,string"`
	NullifierCache  []shield.Nullifier `json:"nullifierCache"`
	KeyImageCache   []shield.KeyImage  `json:"keyImageCache"`
	NullifierCount  uint64             `json:"nullifierCount,string"`
	KeyImageCount   uint64             `json:"keyImageCount,string"`
	Vault           account.Address    `json:"vault"`
	Initialised     bool               `json:"initialised"`
}

// AssetLedger - one shielded asset class
type AssetLedger struct {
	AssetID           shield.AssetID     `json:"assetId"`
	Issuer            account.Address    `json:"issuer"`
	Name              string             `json:"name"`
	Symbol            string             `json:"symbol"`
	Decimals          uint8              `json:"decimals"`
	TotalSupply       uint64             `json:"totalSupply,string"`
	CirculatingSupply uint64             `json:"circulatingSupply,string"`
	NoteRoot          shield.Root        `json:"noteRoot"`
	NoteCount         uint64             `json:"noteCount,string"`
	NullifierCache    []shield.Nullifier `json:"nullifierCache"`
	Initialised       bool               `json:"initialised"`
}

// NullifierMark - evidence that one nullifier was spent
//
// lives in its own cell at the derived existence record address, so
// membership is a single storage probe regardless of pool age
type NullifierMark struct {
	Nullifier shield.Nullifier `json:"nullifier"`
	Base      account.Address  `json:"base"` // owning pool or asset cell
	TxTag     []byte           `json:"txTag"`
	Timestamp uint64           `json:"timestamp,string"`
}

// KeyImageMark - evidence that one key image was spent
type KeyImageMark struct {
	KeyImage  shield.KeyImage `json:"keyImage"`
	Base      account.Address `json:"base"`
	TxTag     []byte          `json:"txTag"`
	Timestamp uint64          `json:"timestamp,string"`
}

// StoredKey - one verifying key registry entry
type StoredKey struct {
	CircuitKind circuit.Kind    `json:"circuitKind"`
	Pool        account.Address `json:"pool"`
	Authority   account.Address `json:"authority"`
	Key         []byte          `json:"key"`
	StoredAt    uint64          `json:"storedAt,string"`
}

// Relayer - one registered relay operator
type Relayer struct {
	Wallet        account.Address `json:"wallet"`
	Stake         uint64          `json:"stake,string"`
	SuccessCount  uint64          `json:"successCount,string"`
	FailCount     uint64          `json:"failCount,string"`
	LastHeartbeat uint64          `json:"lastHeartbeat,string"`
	Active        bool            `json:"active"`
	RegisteredAt  uint64          `json:"registeredAt,string"`
	Endpoint      string          `json:"endpoint"`
}

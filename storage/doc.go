// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = derived cell address as 32 byte SHA3-256(tag ++ seeds)
// 4. id       = opaque 32 byte value (commitment, nullifier, key image, asset id)
// 5. balance  = big endian uint64 (8 bytes)
// 6. *others* = byte values of various length
//
// Pools:
//
//   P ++ address               - pool ledger cells
//                                data: packed PoolLedger record
//
// Assets:
//
//   A ++ address               - shielded asset ledger cells
//                                data: packed AssetLedger record
//
// Spend guards:
//
//   N ++ address               - per nullifier existence marks
//                                data: packed NullifierMark record
//   K ++ address               - per key image existence marks
//                                data: packed KeyImageMark record
//
// Verification keys:
//
//   V ++ address               - registered verification keys
//                                data: packed StoredKey record
//
// Relayers:
//
//   R ++ address               - relayer registry entries
//                                data: packed Relayer record
//
// Balances:
//
//   B ++ address               - transparent funds held per address
//                                data: balance
//
// Testing:
//   Z ++ key                   - testing data
package storage

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limitedset - capacity limited set of 32 byte ids
//
// The pool and asset ledger records embed a small cache of recently
// used nullifiers and key images.  The cache keeps insertion order so
// it can be packed into the record layout and must never grow past
// its limit: once full, new ids are silently not cached.  Exhaustive
// double spend enforcement is the guard package's existence records,
// never this cache.
package limitedset

// IdSize - number of bytes in a stored id
const IdSize = 32

// LimitedSet - ordered set with a hard capacity
//
// not safe for concurrent use; a set is owned by exactly one ledger
// record under the engine's per-request serialization
type LimitedSet struct {
	limit int
	items [][IdSize]byte
}

// New - create an empty set that holds up to limit items
func New(limit int) *LimitedSet {
	return &LimitedSet{
		limit: limit,
		items: make([][IdSize]byte, 0, limit),
	}
}

// NewFromItems - rebuild a set from a packed record
//
// items beyond the limit are dropped, duplicates are kept out
func NewFromItems(limit int, items [][IdSize]byte) *LimitedSet {
	ls := New(limit)
	for _, item := range items {
		ls.Add(item)
	}
	return ls
}

// Add - insert an id keeping insertion order
//
// returns false if the id is already present or the set is full
func (ls *LimitedSet) Add(item [IdSize]byte) bool {
	if ls.Exists(item) {
		return false
	}
	if len(ls.items) >= ls.limit {
		return false
	}
	ls.items = append(ls.items, item)
	return true
}

// Exists - check whether an id is in the set
func (ls *LimitedSet) Exists(item [IdSize]byte) bool {
	for _, existing := range ls.items {
		if item == existing {
			return true
		}
	}
	return false
}

// Items - insertion ordered snapshot for record packing
func (ls *LimitedSet) Items() [][IdSize]byte {
	snapshot := make([][IdSize]byte, len(ls.items))
	copy(snapshot, ls.items)
	return snapshot
}

// Len - number of ids currently cached
func (ls *LimitedSet) Len() int {
	return len(ls.items)
}

// Limit - the capacity this set was created with
func (ls *LimitedSet) Limit() int {
	return ls.limit
}

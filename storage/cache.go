// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read overlay recording staged puts and deletes
//
// entries written during a transaction are visible to reads before
// the batch is committed; a delete entry hides the underlying value
type Cache interface {
	Lookup(string) (int, []byte, bool)
	Set(int, string, []byte)
	Clear()
}

// staged operation markers
const (
	dbPut = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

// Lookup - fetch a staged entry and the operation that staged it
func (c *dbCache) Lookup(key string) (int, []byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return dbPut, []byte{}, false
	}

	data := obj.(cacheData)
	return data.op, data.value, true
}

// Set - stage an entry
func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, defaultExpiration)
}

// Clear - drop every staged entry
func (c *dbCache) Clear() {
	c.cache.Flush()
}

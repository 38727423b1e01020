// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/asset"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/pool"
	"github.com/shadowpool/shadowd/relayer"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
)

// checkAddress - parse a required base58 account address
func checkAddress(name string, s string) (account.Address, error) {
	if "" == s {
		return account.Address{}, fmt.Errorf("%s is required", name)
	}
	address, err := account.AddressFromBase58(s)
	if nil != err {
		return address, fmt.Errorf("%s: %q: %s", name, s, err)
	}
	return address, nil
}

// checkWord - parse a required 32 byte hex value
func checkWord(name string, s string) ([32]byte, error) {
	var word [32]byte
	if "" == s {
		return word, fmt.Errorf("%s is required", name)
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return word, fmt.Errorf("%s: %q: %s", name, s, err)
	}
	if shield.Size != len(b) {
		return word, fmt.Errorf("%s: expected %d bytes, got %d", name, shield.Size, len(b))
	}
	copy(word[:], b)
	return word, nil
}

// checkOptionalWord - parse a 32 byte hex value, zero when absent
func checkOptionalWord(name string, s string) ([32]byte, error) {
	var word [32]byte
	if "" == s {
		return word, nil
	}
	return checkWord(name, s)
}

// checkHexBytes - parse a required variable length hex value
func checkHexBytes(name string, s string) ([]byte, error) {
	if "" == s {
		return nil, fmt.Errorf("%s is required", name)
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %q: %s", name, s, err)
	}
	return b, nil
}

// checkOptionalHexBytes - parse a variable length hex value, nil when absent
func checkOptionalHexBytes(name string, s string) ([]byte, error) {
	if "" == s {
		return nil, nil
	}
	return checkHexBytes(name, s)
}

// checkRing - parse the ring member list
func checkRing(members []string) ([][32]byte, error) {
	if 0 == len(members) {
		return nil, fmt.Errorf("at least one ring member is required")
	}
	ring := make([][32]byte, len(members))
	for i, s := range members {
		word, err := checkWord("member", s)
		if nil != err {
			return nil, err
		}
		ring[i] = word
	}
	return ring, nil
}

// checkFileExists - whether a path exists, and is it a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// tagBytes - optional transaction tag as bytes
func tagBytes(s string) []byte {
	if "" == s {
		return nil
	}
	return []byte(s)
}

// readPoolLedger - committed ledger state of one pool
func readPoolLedger(poolAccount account.Address) (*ledgerrecord.PoolLedger, error) {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trans.Abort()
	return pool.ReadLedger(trans, poolAccount)
}

// readAccountBalance - committed balance of one cell
func readAccountBalance(address account.Address) (uint64, error) {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	defer trans.Abort()
	return trans.Balance(address.Bytes()), nil
}

// readAssetLedger - committed ledger state of one asset class
func readAssetLedger(assetID shield.AssetID) (*ledgerrecord.AssetLedger, error) {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trans.Abort()
	return asset.ReadLedger(trans, assetID)
}

// readRelayerRecord - committed registry entry of one relay operator
func readRelayerRecord(wallet account.Address) (*ledgerrecord.Relayer, error) {
	trans, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	defer trans.Abort()
	return relayer.ReadRecord(trans, wallet)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/util"
)

// turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   ledger, ok := result.(*ledgerrecord.PoolLedger)
// or:
//   switch record := result.(type) {
//   case *ledgerrecord.PoolLedger:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if p := recover(); nil != p {
			e = fault.ErrCannotDecodeRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrCannotDecodeRecord
	}

unpack_switch:
	switch TagType(recordType) {

	case PoolLedgerTag:

		// authority
		authorityLength, authorityOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == authorityOffset {
			break unpack_switch
		}
		n += authorityOffset
		var authority account.Address
		err := account.AddressFromBytes(&authority, record[n:n+authorityLength])
		if nil != err {
			return nil, 0, err
		}
		n += authorityLength

		// accumulated root
		rootLength, rootOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == rootOffset {
			break unpack_switch
		}
		n += rootOffset
		var root shield.Root
		err = shield.RootFromBytes(&root, record[n:n+rootLength])
		if nil != err {
			return nil, 0, err
		}
		n += rootLength

		// tree depth
		// full byte range: the decoder accepts whatever Pack wrote
		treeDepth, treeDepthLength := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == treeDepthLength {
			break unpack_switch
		}
		n += treeDepthLength

		// commitment count
		commitmentCount, commitmentCountLength := util.FromVarint64(record[n:])
		if 0 == commitmentCountLength {
			break unpack_switch
		}
		n += commitmentCountLength

		// denomination
		denomination, denominationLength := util.FromVarint64(record[n:])
		if 0 == denominationLength {
			break unpack_switch
		}
		n += denominationLength

		// total value locked
		tvl, tvlLength := util.FromVarint64(record[n:])
		if 0 == tvlLength {
			break unpack_switch
		}
		n += tvlLength

		// nullifier cache
		nullifierCacheCount, nullifierCacheOffset := util.ClippedVarint64(record[n:], 0, CacheLimit)
		if 0 == nullifierCacheOffset {
			break unpack_switch
		}
		n += nullifierCacheOffset
		nullifierCache := make([]shield.Nullifier, nullifierCacheCount)
		for i := 0; i < nullifierCacheCount; i += 1 {
			err = shield.NullifierFromBytes(&nullifierCache[i], record[n:n+shield.Size])
			if nil != err {
				return nil, 0, err
			}
			n += shield.Size
		}

		// key image cache
		keyImageCacheCount, keyImageCacheOffset := util.ClippedVarint64(record[n:], 0, CacheLimit)
		if 0 == keyImageCacheOffset {
			break unpack_switch
		}
		n += keyImageCacheOffset
		keyImageCache := make([]shield.KeyImage, keyImageCacheCount)
		for i := 0; i < keyImageCacheCount; i += 1 {
			err = shield.KeyImageFromBytes(&keyImageCache[i], record[n:n+shield.Size])
			if nil != err {
				return nil, 0, err
			}
			n += shield.Size
		}

		// lifetime counters
		nullifierCount, nullifierCountLength := util.FromVarint64(record[n:])
		if 0 == nullifierCountLength {
			break unpack_switch
		}
		n += nullifierCountLength

		keyImageCount, keyImageCountLength := util.FromVarint64(record[n:])
		if 0 == keyImageCountLength {
			break unpack_switch
		}
		n += keyImageCountLength

		// vault
		vaultLength, vaultOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == vaultOffset {
			break unpack_switch
		}
		n += vaultOffset
		var vault account.Address
		err = account.AddressFromBytes(&vault, record[n:n+vaultLength])
		if nil != err {
			return nil, 0, err
		}
		n += vaultLength

		// initialised flag
		initialised, n, err := unpackBool(record, n)
		if nil != err {
			return nil, 0, err
		}

		r := &PoolLedger{
			Authority:       authority,
			Root:            root,
			TreeDepth:       uint8(treeDepth),
			CommitmentCount: commitmentCount,
			Denomination:    denomination,
			TVL:             tvl,
			NullifierCache:  nullifierCache,
			KeyImageCache:   keyImageCache,
			NullifierCount:  nullifierCount,
			KeyImageCount:   keyImageCount,
			Vault:           vault,
			Initialised:     initialised,
		}
		return r, n, nil

	case AssetLedgerTag:

		// asset id
		assetIDLength, assetIDOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == assetIDOffset {
			break unpack_switch
		}
		n += assetIDOffset
		var assetID shield.AssetID
		err := shield.AssetIDFromBytes(&assetID, record[n:n+assetIDLength])
		if nil != err {
			return nil, 0, err
		}
		n += assetIDLength

		// issuer
		issuerLength, issuerOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == issuerOffset {
			break unpack_switch
		}
		n += issuerOffset
		var issuer account.Address
		err = account.AddressFromBytes(&issuer, record[n:n+issuerLength])
		if nil != err {
			return nil, 0, err
		}
		n += issuerLength

		// name
		nameLength, nameOffset := util.ClippedVarint64(record[n:], 1, MaxNameLength)
		if 0 == nameOffset {
			break unpack_switch
		}
		n += nameOffset
		name := string(record[n : n+nameLength])
		n += nameLength

		// symbol
		symbolLength, symbolOffset := util.ClippedVarint64(record[n:], 1, MaxSymbolLength)
		if 0 == symbolOffset {
			break unpack_switch
		}
		n += symbolOffset
		symbol := string(record[n : n+symbolLength])
		n += symbolLength

		// decimals
		decimals, decimalsLength := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == decimalsLength {
			break unpack_switch
		}
		n += decimalsLength

		// supply figures
		totalSupply, totalSupplyLength := util.FromVarint64(record[n:])
		if 0 == totalSupplyLength {
			break unpack_switch
		}
		n += totalSupplyLength

		circulatingSupply, circulatingSupplyLength := util.FromVarint64(record[n:])
		if 0 == circulatingSupplyLength {
			break unpack_switch
		}
		n += circulatingSupplyLength

		// note root
		noteRootLength, noteRootOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == noteRootOffset {
			break unpack_switch
		}
		n += noteRootOffset
		var noteRoot shield.Root
		err = shield.RootFromBytes(&noteRoot, record[n:n+noteRootLength])
		if nil != err {
			return nil, 0, err
		}
		n += noteRootLength

		// note count
		noteCount, noteCountLength := util.FromVarint64(record[n:])
		if 0 == noteCountLength {
			break unpack_switch
		}
		n += noteCountLength

		// nullifier cache
		nullifierCacheCount, nullifierCacheOffset := util.ClippedVarint64(record[n:], 0, CacheLimit)
		if 0 == nullifierCacheOffset {
			break unpack_switch
		}
		n += nullifierCacheOffset
		nullifierCache := make([]shield.Nullifier, nullifierCacheCount)
		for i := 0; i < nullifierCacheCount; i += 1 {
			err = shield.NullifierFromBytes(&nullifierCache[i], record[n:n+shield.Size])
			if nil != err {
				return nil, 0, err
			}
			n += shield.Size
		}

		// initialised flag
		initialised, n, err := unpackBool(record, n)
		if nil != err {
			return nil, 0, err
		}

		r := &AssetLedger{
			AssetID:           assetID,
			Issuer:            issuer,
			Name:              name,
			Symbol:            symbol,
			Decimals:          uint8(decimals),
			TotalSupply:       totalSupply,
			CirculatingSupply: circulatingSupply,
			NoteRoot:          noteRoot,
			NoteCount:         noteCount,
			NullifierCache:    nullifierCache,
			Initialised:       initialised,
		}
		return r, n, nil

	case NullifierMarkTag:

		// nullifier
		nullifierLength, nullifierOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == nullifierOffset {
			break unpack_switch
		}
		n += nullifierOffset
		var nullifier shield.Nullifier
		err := shield.NullifierFromBytes(&nullifier, record[n:n+nullifierLength])
		if nil != err {
			return nil, 0, err
		}
		n += nullifierLength

		// base cell
		baseLength, baseOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == baseOffset {
			break unpack_switch
		}
		n += baseOffset
		var base account.Address
		err = account.AddressFromBytes(&base, record[n:n+baseLength])
		if nil != err {
			return nil, 0, err
		}
		n += baseLength

		// transaction tag (can be zero length)
		txTagLength, txTagOffset := util.ClippedVarint64(record[n:], 0, MaxTxTagLength)
		if 0 == txTagOffset {
			break unpack_switch
		}
		txTag := make([]byte, txTagLength)
		n += txTagOffset
		copy(txTag, record[n:n+txTagLength])
		n += txTagLength

		// timestamp
		timestamp, timestampLength := util.FromVarint64(record[n:])
		if 0 == timestampLength {
			break unpack_switch
		}
		n += timestampLength

		r := &NullifierMark{
			Nullifier: nullifier,
			Base:      base,
			TxTag:     txTag,
			Timestamp: timestamp,
		}
		return r, n, nil

	case KeyImageMarkTag:

		// key image
		keyImageLength, keyImageOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == keyImageOffset {
			break unpack_switch
		}
		n += keyImageOffset
		var keyImage shield.KeyImage
		err := shield.KeyImageFromBytes(&keyImage, record[n:n+keyImageLength])
		if nil != err {
			return nil, 0, err
		}
		n += keyImageLength

		// base cell
		baseLength, baseOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == baseOffset {
			break unpack_switch
		}
		n += baseOffset
		var base account.Address
		err = account.AddressFromBytes(&base, record[n:n+baseLength])
		if nil != err {
			return nil, 0, err
		}
		n += baseLength

		// transaction tag (can be zero length)
		txTagLength, txTagOffset := util.ClippedVarint64(record[n:], 0, MaxTxTagLength)
		if 0 == txTagOffset {
			break unpack_switch
		}
		txTag := make([]byte, txTagLength)
		n += txTagOffset
		copy(txTag, record[n:n+txTagLength])
		n += txTagLength

		// timestamp
		timestamp, timestampLength := util.FromVarint64(record[n:])
		if 0 == timestampLength {
			break unpack_switch
		}
		n += timestampLength

		r := &KeyImageMark{
			KeyImage:  keyImage,
			Base:      base,
			TxTag:     txTag,
			Timestamp: timestamp,
		}
		return r, n, nil

	case StoredKeyTag:

		// circuit kind
		kindValue, kindLength := util.FromVarint64(record[n:])
		if 0 == kindLength {
			break unpack_switch
		}
		n += kindLength
		kind, err := circuit.FromUint64(kindValue)
		if nil != err {
			return nil, 0, err
		}

		// governing pool
		poolLength, poolOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == poolOffset {
			break unpack_switch
		}
		n += poolOffset
		var pool account.Address
		err = account.AddressFromBytes(&pool, record[n:n+poolLength])
		if nil != err {
			return nil, 0, err
		}
		n += poolLength

		// authority
		authorityLength, authorityOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == authorityOffset {
			break unpack_switch
		}
		n += authorityOffset
		var authority account.Address
		err = account.AddressFromBytes(&authority, record[n:n+authorityLength])
		if nil != err {
			return nil, 0, err
		}
		n += authorityLength

		// verification key material
		keyLength, keyOffset := util.ClippedVarint64(record[n:], 1, MaxKeyLength)
		if 0 == keyOffset {
			break unpack_switch
		}
		key := make([]byte, keyLength)
		n += keyOffset
		copy(key, record[n:n+keyLength])
		n += keyLength

		// timestamp
		storedAt, storedAtLength := util.FromVarint64(record[n:])
		if 0 == storedAtLength {
			break unpack_switch
		}
		n += storedAtLength

		r := &StoredKey{
			CircuitKind: kind,
			Pool:        pool,
			Authority:   authority,
			Key:         key,
			StoredAt:    storedAt,
		}
		return r, n, nil

	case RelayerTag:

		// wallet
		walletLength, walletOffset := util.ClippedVarint64(record[n:], 1, 8192)
		if 0 == walletOffset {
			break unpack_switch
		}
		n += walletOffset
		var wallet account.Address
		err := account.AddressFromBytes(&wallet, record[n:n+walletLength])
		if nil != err {
			return nil, 0, err
		}
		n += walletLength

		// stake
		stake, stakeLength := util.FromVarint64(record[n:])
		if 0 == stakeLength {
			break unpack_switch
		}
		n += stakeLength

		// relay counters
		successCount, successCountLength := util.FromVarint64(record[n:])
		if 0 == successCountLength {
			break unpack_switch
		}
		n += successCountLength

		failCount, failCountLength := util.FromVarint64(record[n:])
		if 0 == failCountLength {
			break unpack_switch
		}
		n += failCountLength

		// last heartbeat timestamp
		lastHeartbeat, lastHeartbeatLength := util.FromVarint64(record[n:])
		if 0 == lastHeartbeatLength {
			break unpack_switch
		}
		n += lastHeartbeatLength

		// active flag
		active, n, err := unpackBool(record, n)
		if nil != err {
			return nil, 0, err
		}

		// registration timestamp
		registeredAt, registeredAtLength := util.FromVarint64(record[n:])
		if 0 == registeredAtLength {
			break unpack_switch
		}
		n += registeredAtLength

		// endpoint
		endpointLength, endpointOffset := util.ClippedVarint64(record[n:], 1, MaxEndpointLength)
		if 0 == endpointOffset {
			break unpack_switch
		}
		n += endpointOffset
		endpoint := string(record[n : n+endpointLength])
		n += endpointLength

		r := &Relayer{
			Wallet:        wallet,
			Stake:         stake,
			SuccessCount:  successCount,
			FailCount:     failCount,
			LastHeartbeat: lastHeartbeat,
			Active:        active,
			RegisteredAt:  registeredAt,
			Endpoint:      endpoint,
		}
		return r, n, nil

	default: // also InvalidTag
	}
	return nil, 0, fault.ErrCannotDecodeRecord
}

// read a single flag byte
func unpackBool(record []byte, n int) (bool, int, error) {
	switch record[n] {
	case 0:
		return false, n + 1, nil
	case 1:
		return true, n + 1, nil
	default:
		return false, 0, fault.ErrCannotDecodeRecord
	}
}

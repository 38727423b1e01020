// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/util"
)

// pack PoolLedger
//
// Pack Varint64(tag) followed by fields in order as struct above
func (ledger *PoolLedger) Pack() (Packed, error) {
	if len(ledger.NullifierCache) > CacheLimit || len(ledger.KeyImageCache) > CacheLimit {
		return nil, fault.ErrInvalidPoolState
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(PoolLedgerTag))
	message = appendBytes(message, ledger.Authority[:])
	message = appendBytes(message, ledger.Root[:])
	message = appendUint64(message, uint64(ledger.TreeDepth))
	message = appendUint64(message, ledger.CommitmentCount)
	message = appendUint64(message, ledger.Denomination)
	message = appendUint64(message, ledger.TVL)

	message = appendUint64(message, uint64(len(ledger.NullifierCache)))
	for _, nullifier := range ledger.NullifierCache {
		message = append(message, nullifier[:]...)
	}

	message = appendUint64(message, uint64(len(ledger.KeyImageCache)))
	for _, keyImage := range ledger.KeyImageCache {
		message = append(message, keyImage[:]...)
	}

	message = appendUint64(message, ledger.NullifierCount)
	message = appendUint64(message, ledger.KeyImageCount)
	message = appendBytes(message, ledger.Vault[:])
	message = appendBool(message, ledger.Initialised)

	return message, nil
}

// pack AssetLedger
//
// Pack Varint64(tag) followed by fields in order as struct above
func (ledger *AssetLedger) Pack() (Packed, error) {
	// byte lengths: the record layout and the decoder count bytes,
	// not runes
	if len(ledger.Name) < 1 || len(ledger.Name) > MaxNameLength {
		return nil, fault.ErrInvalidAccountData
	}
	if len(ledger.Symbol) < 1 || len(ledger.Symbol) > MaxSymbolLength {
		return nil, fault.ErrInvalidAccountData
	}
	if len(ledger.NullifierCache) > CacheLimit {
		return nil, fault.ErrInvalidAccountData
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(AssetLedgerTag))
	message = appendBytes(message, ledger.AssetID[:])
	message = appendBytes(message, ledger.Issuer[:])
	message = appendString(message, ledger.Name)
	message = appendString(message, ledger.Symbol)
	message = appendUint64(message, uint64(ledger.Decimals))
	message = appendUint64(message, ledger.TotalSupply)
	message = appendUint64(message, ledger.CirculatingSupply)
	message = appendBytes(message, ledger.NoteRoot[:])
	message = appendUint64(message, ledger.NoteCount)

	message = appendUint64(message, uint64(len(ledger.NullifierCache)))
	for _, nullifier := range ledger.NullifierCache {
		message = append(message, nullifier[:]...)
	}

	message = appendBool(message, ledger.Initialised)

	return message, nil
}

// pack NullifierMark
//
// Pack Varint64(tag) followed by fields in order as struct above
func (mark *NullifierMark) Pack() (Packed, error) {
	if len(mark.TxTag) > MaxTxTagLength {
		return nil, fault.ErrInvalidAccountData
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(NullifierMarkTag))
	message = appendBytes(message, mark.Nullifier[:])
	message = appendBytes(message, mark.Base[:])
	message = appendBytes(message, mark.TxTag)
	message = appendUint64(message, mark.Timestamp)

	return message, nil
}

// pack KeyImageMark
//
// Pack Varint64(tag) followed by fields in order as struct above
func (mark *KeyImageMark) Pack() (Packed, error) {
	if len(mark.TxTag) > MaxTxTagLength {
		return nil, fault.ErrInvalidAccountData
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(KeyImageMarkTag))
	message = appendBytes(message, mark.KeyImage[:])
	message = appendBytes(message, mark.Base[:])
	message = appendBytes(message, mark.TxTag)
	message = appendUint64(message, mark.Timestamp)

	return message, nil
}

// pack StoredKey
//
// Pack Varint64(tag) followed by fields in order as struct above
func (stored *StoredKey) Pack() (Packed, error) {
	if !stored.CircuitKind.IsValid() {
		return nil, fault.ErrInvalidAccountData
	}
	if len(stored.Key) < 1 || len(stored.Key) > MaxKeyLength {
		return nil, fault.ErrInvalidVerificationKey
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(StoredKeyTag))
	message = appendUint64(message, stored.CircuitKind.Uint64())
	message = appendBytes(message, stored.Pool[:])
	message = appendBytes(message, stored.Authority[:])
	message = appendBytes(message, stored.Key)
	message = appendUint64(message, stored.StoredAt)

	return message, nil
}

// pack Relayer
//
// Pack Varint64(tag) followed by fields in order as struct above
func (relayer *Relayer) Pack() (Packed, error) {
	if len(relayer.Endpoint) < 1 || len(relayer.Endpoint) > MaxEndpointLength {
		return nil, fault.ErrInvalidAccountData
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(RelayerTag))
	message = appendBytes(message, relayer.Wallet[:])
	message = appendUint64(message, relayer.Stake)
	message = appendUint64(message, relayer.SuccessCount)
	message = appendUint64(message, relayer.FailCount)
	message = appendUint64(message, relayer.LastHeartbeat)
	message = appendBool(message, relayer.Active)
	message = appendUint64(message, relayer.RegisteredAt)
	message = appendString(message, relayer.Endpoint)

	return message, nil
}

// append a length prefixed string to a buffer
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append length prefixed bytes to a buffer
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to a buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append a single flag byte to a buffer
func appendBool(buffer Packed, flag bool) Packed {
	b := byte(0)
	if flag {
		b = 1
	}
	return append(buffer, b)
}

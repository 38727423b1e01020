// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - shielded asset classes
//
// An asset class is a parallel note ledger governed by a pool: its
// notes are commitments in their own accumulator and its transfers
// are proved against the governing pool's transfer circuit.  No
// transparent funds ever move here; supply lives entirely inside the
// note commitments.
package asset

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/guard"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/limitedset"
	"github.com/shadowpool/shadowd/shield"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/verifier"
	"github.com/shadowpool/shadowd/vkey"
)

// derivation seed label
var assetSeed = []byte("asset")

// CellAddress - the ledger cell of one asset class
func CellAddress(assetID shield.AssetID) account.Address {
	return account.DeriveAddress(assetSeed, assetID[:])
}

// Issue - create one shielded asset class
//
// the asset id is chosen by the issuer; the cell address is derived
// from it so one id can only ever be issued once
func Issue(
	trans storage.Transaction,
	issuer account.Address,
	issuerSigned bool,
	name string,
	symbol string,
	decimals uint8,
	totalSupply uint64,
	assetID shield.AssetID,
) (account.Address, error) {

	if !issuerSigned {
		return account.Address{}, fault.ErrUnauthorized
	}

	if 0 == len(name) || len(name) > ledgerrecord.MaxNameLength {
		return account.Address{}, fault.ErrInvalidAccountData
	}
	if 0 == len(symbol) || len(symbol) > ledgerrecord.MaxSymbolLength {
		return account.Address{}, fault.ErrInvalidAccountData
	}

	cell := CellAddress(assetID)
	if trans.Has(storage.Pool.Assets, cell.Bytes()) {
		return account.Address{}, fault.ErrAssetAlreadyIssued
	}

	ledger := &ledgerrecord.AssetLedger{
		AssetID:     assetID,
		Issuer:      issuer,
		Name:        name,
		Symbol:      symbol,
		Decimals:    decimals,
		TotalSupply: totalSupply,
		Initialised: true,
	}
	err := writeLedger(trans, cell, ledger)
	if nil != err {
		return account.Address{}, err
	}

	return cell, nil
}

// Transfer - move asset notes in zero knowledge
//
// the proof is checked against the governing pool's transfer circuit
// key with public inputs [asset id, nullifier, new commitment]; the
// encrypted data is an opaque note payload the engine never reads
func Transfer(
	trans storage.Transaction,
	assetID shield.AssetID,
	governingPool account.Address,
	proof []byte,
	nullifier shield.Nullifier,
	newCommitment shield.Commitment,
	encryptedData []byte,
	txTag []byte,
	now uint64,
) error {

	cell := CellAddress(assetID)

	ledger, err := ReadLedger(trans, assetID)
	if nil != err {
		return err
	}

	// the record is bound to the id that derived its address
	if ledger.AssetID != assetID {
		return fault.ErrInvalidAccountData
	}

	if guard.IsNullifierUsed(trans, cell, nullifier) {
		return fault.ErrNullifierAlreadyUsed
	}

	key, err := vkey.Fetch(trans, governingPool, circuit.Transfer)
	if nil != err {
		return err
	}

	publicInputs := [][32]byte{assetID, nullifier, newCommitment}
	ok, err := verifier.VerifyProof(key, proof, publicInputs)
	if nil != err {
		return err
	}
	if !ok {
		return fault.ErrInvalidProof
	}

	if newCommitment.IsZero() {
		return fault.ErrInvalidCommitment
	}

	err = guard.RecordNullifier(trans, cell, nullifier, txTag, now)
	if nil != err {
		return err
	}
	cacheNullifier(ledger, nullifier)

	ledger.NoteCount += 1
	ledger.NoteRoot = shield.NextRoot(ledger.NoteRoot, newCommitment)

	return writeLedger(trans, cell, ledger)
}

// ReadLedger - load one issued asset ledger
func ReadLedger(trans storage.Transaction, assetID shield.AssetID) (*ledgerrecord.AssetLedger, error) {
	cell := CellAddress(assetID)
	packed := trans.Get(storage.Pool.Assets, cell.Bytes())
	if nil == packed {
		return nil, fault.ErrAssetNotInitialised
	}
	ledger, err := ledgerrecord.Packed(packed).AssetLedger()
	if nil != err {
		return nil, err
	}
	if !ledger.Initialised {
		return nil, fault.ErrAssetNotInitialised
	}
	return ledger, nil
}

// internal: pack and stage one asset ledger
func writeLedger(trans storage.Transaction, cell account.Address, ledger *ledgerrecord.AssetLedger) error {
	packed, err := ledger.Pack()
	if nil != err {
		return err
	}
	trans.Put(storage.Pool.Assets, cell.Bytes(), packed)
	return nil
}

// internal: note a spent nullifier in the in-record statistics
//
// the asset ledger keeps no separate counter; the cache simply stops
// growing at its limit
func cacheNullifier(ledger *ledgerrecord.AssetLedger, nullifier shield.Nullifier) {
	items := make([][limitedset.IdSize]byte, len(ledger.NullifierCache))
	for i := 0; i < len(ledger.NullifierCache); i += 1 {
		items[i] = ledger.NullifierCache[i]
	}
	cache := limitedset.NewFromItems(ledgerrecord.CacheLimit, items)
	if cache.Add(nullifier) {
		ledger.NullifierCache = append(ledger.NullifierCache, nullifier)
	}
}

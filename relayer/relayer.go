// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package relayer - relay operator registry
//
// Relayers submit shielded requests on behalf of users so the fee
// payer is not the note owner.  Registration locks a stake in the
// record cell; liveness is a heartbeat and usefulness is a success
// counter reported by pool authorities.  Nothing here verifies
// proofs; the registry only scores operators.
package relayer

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/storage"
)

// registry parameters
const (
	MinimumStake    = 100000000 // smallest acceptable stake lock
	HeartbeatWindow = 300       // seconds before a relayer counts as offline
	NeutralScore    = 50        // reputation with no history
	MaximumScore    = 100
)

// derivation seed label
var relayerSeed = []byte("relayer")

// RecordAddress - the registry cell of one relayer wallet
func RecordAddress(wallet account.Address) account.Address {
	return account.DeriveAddress(relayerSeed, wallet.Bytes())
}

// Register - add one relay operator to the registry
//
// the stake moves from the wallet into the record cell and stays
// locked there; the record starts active with a fresh heartbeat
func Register(
	trans storage.Transaction,
	relayerCell account.Address,
	wallet account.Address,
	walletSigned bool,
	endpoint string,
	stake uint64,
	now uint64,
) error {

	if !walletSigned {
		return fault.ErrUnauthorized
	}

	if 0 == len(endpoint) || len(endpoint) > ledgerrecord.MaxEndpointLength {
		return fault.ErrInvalidAccountData
	}

	if stake < MinimumStake {
		return fault.ErrInvalidAmount
	}

	cell := RecordAddress(wallet)
	if relayerCell != cell {
		return fault.ErrInvalidAddress
	}

	if trans.Has(storage.Pool.Relayers, cell.Bytes()) {
		return fault.ErrRelayerAlreadyRegistered
	}

	err := trans.TransferBalance(wallet.Bytes(), cell.Bytes(), stake)
	if nil != err {
		return err
	}

	record := &ledgerrecord.Relayer{
		Wallet:        wallet,
		Stake:         stake,
		LastHeartbeat: now,
		Active:        true,
		RegisteredAt:  now,
		Endpoint:      endpoint,
	}
	return writeRecord(trans, cell, record)
}

// Heartbeat - refresh a relayer's liveness timestamp
func Heartbeat(trans storage.Transaction, wallet account.Address, walletSigned bool, now uint64) error {
	if !walletSigned {
		return fault.ErrUnauthorized
	}

	cell := RecordAddress(wallet)
	record, err := readRecord(trans, cell)
	if nil != err {
		return err
	}

	if record.Wallet != wallet {
		return fault.ErrUnauthorized
	}

	record.LastHeartbeat = now

	return writeRecord(trans, cell, record)
}

// Report - record the outcome of one relayed request
//
// any signer may report: outcomes are attested by the engine's
// request plumbing, not by the relayer itself
func Report(trans storage.Transaction, wallet account.Address, reporterSigned bool, success bool) error {
	if !reporterSigned {
		return fault.ErrUnauthorized
	}

	cell := RecordAddress(wallet)
	record, err := readRecord(trans, cell)
	if nil != err {
		return err
	}

	if success {
		record.SuccessCount += 1
	} else {
		record.FailCount += 1
	}

	return writeRecord(trans, cell, record)
}

// ReadRecord - load one relayer registry record
func ReadRecord(trans storage.Transaction, wallet account.Address) (*ledgerrecord.Relayer, error) {
	return readRecord(trans, RecordAddress(wallet))
}

// ReputationScore - success ratio in [0,100], neutral with no history
func ReputationScore(record *ledgerrecord.Relayer) uint64 {
	if 0 == record.SuccessCount && 0 == record.FailCount {
		return NeutralScore
	}

	total := record.SuccessCount + record.FailCount
	score := record.SuccessCount * 100 / total
	if score > MaximumScore {
		return MaximumScore
	}
	return score
}

// IsOnline - active with a heartbeat inside the liveness window
func IsOnline(record *ledgerrecord.Relayer, now uint64) bool {
	return record.Active && now < record.LastHeartbeat+HeartbeatWindow
}

// ListRecords - page through the committed registry in cell address order
//
// start is the first cell address to consider, nil for the beginning
// of the registry; count limits the page size.  Staged writes of an
// open transaction are not visible here.
func ListRecords(start []byte, count int) ([]*ledgerrecord.Relayer, error) {

	cursor := storage.Pool.Relayers.NewFetchCursor()
	if nil != start {
		cursor.Seek(start)
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]*ledgerrecord.Relayer, len(elements))
	for i, element := range elements {
		record, err := ledgerrecord.Packed(element.Value).Relayer()
		if nil != err {
			return nil, err
		}
		records[i] = record
	}
	return records, nil
}

// internal: load and unpack one registry record
func readRecord(trans storage.Transaction, cell account.Address) (*ledgerrecord.Relayer, error) {
	packed := trans.Get(storage.Pool.Relayers, cell.Bytes())
	if nil == packed {
		return nil, fault.ErrRelayerNotRegistered
	}
	return ledgerrecord.Packed(packed).Relayer()
}

// internal: pack and stage one registry record
func writeRecord(trans storage.Transaction, cell account.Address, record *ledgerrecord.Relayer) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trans.Put(storage.Pool.Relayers, cell.Bytes(), packed)
	return nil
}

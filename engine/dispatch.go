// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"time"

	"github.com/shadowpool/shadowd/asset"
	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/pool"
	"github.com/shadowpool/shadowd/relayer"
	"github.com/shadowpool/shadowd/storage"
	"github.com/shadowpool/shadowd/vkey"
)

// Dispatch - run one request to completion
//
// the request executes inside its own storage transaction which is
// committed only if every check passes; any error aborts the whole
// transaction and nothing is written
func Dispatch(request Request) error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	tag := request.RequestTag()
	if tag < 0 || tag >= requestTagCount {
		globalData.failures.Increment()
		globalData.log.Warnf("unknown request tag: %d", int(tag))
		return fault.ErrInvalidRequest
	}
	globalData.requests[tag].Increment()

	now := uint64(time.Now().Unix())

	trans, err := storage.NewDBTransaction()
	if nil != err {
		globalData.failures.Increment()
		globalData.log.Errorf("%s: transaction error: %s", tag, err)
		return err
	}

	err = route(trans, request, now)
	if nil != err {
		trans.Abort()
		globalData.failures.Increment()
		globalData.log.Warnf("%s refused: %s", tag, err)
		return err
	}

	err = trans.Commit()
	if nil != err {
		globalData.failures.Increment()
		globalData.log.Errorf("%s: commit error: %s", tag, err)
		return err
	}

	globalData.log.Infof("%s applied", tag)
	return nil
}

// internal: run the checks for one request inside its transaction
func route(trans storage.Transaction, request Request, now uint64) error {

	switch req := request.(type) {

	case InitializePool:
		return pool.Initialise(trans, req.Pool, req.Authority, req.AuthoritySigned,
			req.Vault, req.TreeDepth, req.Denomination)

	case Deposit:
		return pool.Deposit(trans, req.Pool, req.Depositor, req.DepositorSigned,
			req.Commitment, req.Amount)

	case Withdraw:
		return pool.Withdraw(trans, req.Pool, req.Recipient, req.Proof, req.Root,
			req.Nullifier, req.NewCommitment, req.Amount, req.TxTag, now)

	case PrivateTransfer:
		return pool.Transfer(trans, req.Pool, req.RingSignature, req.KeyImage,
			req.RingMembers, req.NewCommitment, req.EncryptedAmount, req.TxTag, now)

	case VerifyBalance:
		return pool.VerifyBalance(trans, req.Pool, req.Proof, req.MinBalance,
			req.BalanceCommitment)

	case IssueAsset:
		_, err := asset.Issue(trans, req.Issuer, req.IssuerSigned, req.Name,
			req.Symbol, req.Decimals, req.TotalSupply, req.AssetID)
		return err

	case TransferAsset:
		return asset.Transfer(trans, req.AssetID, req.GoverningPool, req.Proof,
			req.Nullifier, req.NewCommitment, req.EncryptedData, req.TxTag, now)

	case StoreVerificationKey:
		_, err := vkey.Store(trans, req.Pool, req.Authority, req.AuthoritySigned,
			req.Kind, req.Key, now)
		return err

	case RegisterRelayer:
		return relayer.Register(trans, req.RelayerCell, req.Wallet, req.WalletSigned,
			req.Endpoint, req.Stake, now)

	case UpdateHeartbeat:
		return relayer.Heartbeat(trans, req.Wallet, req.WalletSigned, now)

	case ReportRelay:
		return relayer.Report(trans, req.Wallet, req.ReporterSigned, req.Success)

	case UpdateRoot:
		return pool.UpdateRoot(trans, req.Pool, req.Authority, req.AuthoritySigned,
			req.NewRoot)

	default:
		return fault.ErrInvalidRequest
	}
}

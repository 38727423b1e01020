// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/shadowpool/shadowd/account"
	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/shield"
)

// Tag - request discriminator used for counters and logging
type Tag int

// tags for each request kind
const (
	InitializePoolTag Tag = iota
	DepositTag
	WithdrawTag
	PrivateTransferTag
	VerifyBalanceTag
	IssueAssetTag
	TransferAssetTag
	StoreVerificationKeyTag
	RegisterRelayerTag
	UpdateHeartbeatTag
	ReportRelayTag
	UpdateRootTag
	requestTagCount // count of valid tags, add new tags above this line
)

var tagNames = [requestTagCount]string{
	InitializePoolTag:       "initialize-pool",
	DepositTag:              "deposit",
	WithdrawTag:             "withdraw",
	PrivateTransferTag:      "private-transfer",
	VerifyBalanceTag:        "verify-balance",
	IssueAssetTag:           "issue-asset",
	TransferAssetTag:        "transfer-asset",
	StoreVerificationKeyTag: "store-verification-key",
	RegisterRelayerTag:      "register-relayer",
	UpdateHeartbeatTag:      "update-heartbeat",
	ReportRelayTag:          "report-relay",
	UpdateRootTag:           "update-root",
}

// String - request name for use by the fmt package (for %s)
func (tag Tag) String() string {
	if tag < 0 || tag >= requestTagCount {
		return "*unknown*"
	}
	return tagNames[tag]
}

// Request - one ledger request ready for dispatch
//
// signer flags are host attested: the surrounding environment has
// already checked the signatures, the engine only reads the result
type Request interface {
	RequestTag() Tag
}

// InitializePool - create one shielded pool ledger
type InitializePool struct {
	Pool            account.Address
	Authority       account.Address
	AuthoritySigned bool
	Vault           account.Address
	TreeDepth       uint8
	Denomination    uint64
}

// Deposit - shield one fixed denomination note
type Deposit struct {
	Pool            account.Address
	Depositor       account.Address
	DepositorSigned bool
	Commitment      shield.Commitment
	Amount          uint64
}

// Withdraw - unshield funds against a membership proof
type Withdraw struct {
	Pool          account.Address
	Recipient     account.Address
	Proof         []byte
	Root          shield.Root
	Nullifier     shield.Nullifier
	NewCommitment shield.Commitment
	Amount        uint64
	TxTag         []byte
}

// PrivateTransfer - move value inside the pool under a ring signature
type PrivateTransfer struct {
	Pool            account.Address
	RingSignature   []byte
	KeyImage        shield.KeyImage
	RingMembers     [][32]byte
	NewCommitment   shield.Commitment
	EncryptedAmount []byte
	TxTag           []byte
}

// VerifyBalance - prove a floor on a committed balance
type VerifyBalance struct {
	Pool              account.Address
	Proof             []byte
	MinBalance        uint64
	BalanceCommitment shield.Commitment
}

// IssueAsset - create one shielded asset ledger
type IssueAsset struct {
	Issuer       account.Address
	IssuerSigned bool
	Name         string
	Symbol       string
	Decimals     uint8
	TotalSupply  uint64
	AssetID      shield.AssetID
}

// TransferAsset - move one shielded asset note
type TransferAsset struct {
	AssetID       shield.AssetID
	GoverningPool account.Address
	Proof         []byte
	Nullifier     shield.Nullifier
	NewCommitment shield.Commitment
	EncryptedData []byte
	TxTag         []byte
}

// StoreVerificationKey - install a Groth16 verifying key for a pool
type StoreVerificationKey struct {
	Pool            account.Address
	Authority       account.Address
	AuthoritySigned bool
	Kind            circuit.Kind
	Key             []byte
}

// RegisterRelayer - add one relay operator with a locked stake
type RegisterRelayer struct {
	RelayerCell  account.Address
	Wallet       account.Address
	WalletSigned bool
	Endpoint     string
	Stake        uint64
}

// UpdateHeartbeat - refresh a relayer's liveness timestamp
type UpdateHeartbeat struct {
	Wallet       account.Address
	WalletSigned bool
}

// ReportRelay - record the outcome of one relayed request
type ReportRelay struct {
	Wallet         account.Address
	ReporterSigned bool
	Success        bool
}

// UpdateRoot - replace the stored commitment tree root
type UpdateRoot struct {
	Pool            account.Address
	Authority       account.Address
	AuthoritySigned bool
	NewRoot         shield.Root
}

// RequestTag - tag for each request kind

func (InitializePool) RequestTag() Tag       { return InitializePoolTag }
func (Deposit) RequestTag() Tag              { return DepositTag }
func (Withdraw) RequestTag() Tag             { return WithdrawTag }
func (PrivateTransfer) RequestTag() Tag      { return PrivateTransferTag }
func (VerifyBalance) RequestTag() Tag        { return VerifyBalanceTag }
func (IssueAsset) RequestTag() Tag           { return IssueAssetTag }
func (TransferAsset) RequestTag() Tag        { return TransferAssetTag }
func (StoreVerificationKey) RequestTag() Tag { return StoreVerificationKeyTag }
func (RegisterRelayer) RequestTag() Tag      { return RegisterRelayerTag }
func (UpdateHeartbeat) RequestTag() Tag      { return UpdateHeartbeatTag }
func (ReportRelay) RequestTag() Tag          { return ReportRelayTag }
func (UpdateRoot) RequestTag() Tag           { return UpdateRootTag }

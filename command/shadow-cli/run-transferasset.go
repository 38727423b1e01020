// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/engine"
)

func runTransferAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	assetID, err := checkWord("asset-id", c.String("asset-id"))
	if nil != err {
		return err
	}

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	proof, err := checkHexBytes("proof", c.String("proof"))
	if nil != err {
		return err
	}

	nullifier, err := checkWord("nullifier", c.String("nullifier"))
	if nil != err {
		return err
	}

	commitment, err := checkWord("commitment", c.String("commitment"))
	if nil != err {
		return err
	}

	payload, err := checkOptionalHexBytes("payload", c.String("payload"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "asset id: %x\n", assetID)
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "nullifier: %x\n", nullifier)
	}

	err = engine.Dispatch(engine.TransferAsset{
		AssetID:       assetID,
		GoverningPool: poolAccount,
		Proof:         proof,
		Nullifier:     nullifier,
		NewCommitment: commitment,
		EncryptedData: payload,
		TxTag:         tagBytes(c.String("tag")),
	})
	if nil != err {
		return err
	}

	ledger, err := readAssetLedger(assetID)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		AssetID   string `json:"assetId"`
		NoteRoot  string `json:"noteRoot"`
		NoteCount uint64 `json:"noteCount,string"`
	}{
		AssetID:   fmt.Sprintf("%x", assetID),
		NoteRoot:  ledger.NoteRoot.String(),
		NoteCount: ledger.NoteCount,
	})
}

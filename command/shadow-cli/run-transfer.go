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

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	signature, err := checkHexBytes("signature", c.String("signature"))
	if nil != err {
		return err
	}

	keyImage, err := checkWord("key-image", c.String("key-image"))
	if nil != err {
		return err
	}

	ring, err := checkRing(c.StringSlice("member"))
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
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "key image: %x\n", keyImage)
		fmt.Fprintf(m.e, "ring size: %d\n", len(ring))
		fmt.Fprintf(m.e, "commitment: %x\n", commitment)
	}

	err = engine.Dispatch(engine.PrivateTransfer{
		Pool:            poolAccount,
		RingSignature:   signature,
		KeyImage:        keyImage,
		RingMembers:     ring,
		NewCommitment:   commitment,
		EncryptedAmount: payload,
		TxTag:           tagBytes(c.String("tag")),
	})
	if nil != err {
		return err
	}

	ledger, err := readPoolLedger(poolAccount)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool            string `json:"pool"`
		Root            string `json:"root"`
		CommitmentCount uint64 `json:"commitmentCount,string"`
		KeyImageCount   uint64 `json:"keyImageCount,string"`
	}{
		Pool:            poolAccount.String(),
		Root:            ledger.Root.String(),
		CommitmentCount: ledger.CommitmentCount,
		KeyImageCount:   ledger.KeyImageCount,
	})
}

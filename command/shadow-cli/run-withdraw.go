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

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	recipient, err := checkAddress("recipient", c.String("recipient"))
	if nil != err {
		return err
	}

	proof, err := checkHexBytes("proof", c.String("proof"))
	if nil != err {
		return err
	}

	root, err := checkWord("root", c.String("root"))
	if nil != err {
		return err
	}

	nullifier, err := checkWord("nullifier", c.String("nullifier"))
	if nil != err {
		return err
	}

	// change commitment is optional, zero means withdraw in full
	change, err := checkOptionalWord("change", c.String("change"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "recipient: %s\n", recipient)
		fmt.Fprintf(m.e, "root: %x\n", root)
		fmt.Fprintf(m.e, "nullifier: %x\n", nullifier)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = engine.Dispatch(engine.Withdraw{
		Pool:          poolAccount,
		Recipient:     recipient,
		Proof:         proof,
		Root:          root,
		Nullifier:     nullifier,
		NewCommitment: change,
		Amount:        amount,
		TxTag:         tagBytes(c.String("tag")),
	})
	if nil != err {
		return err
	}

	balance, err := readAccountBalance(recipient)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool      string `json:"pool"`
		Recipient string `json:"recipient"`
		Amount    uint64 `json:"amount,string"`
		Balance   uint64 `json:"balance,string"`
	}{
		Pool:      poolAccount.String(),
		Recipient: recipient.String(),
		Amount:    amount,
		Balance:   balance,
	})
}

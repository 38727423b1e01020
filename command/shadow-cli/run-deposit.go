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

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	depositor, err := checkAddress("depositor", c.String("depositor"))
	if nil != err {
		return err
	}

	commitment, err := checkWord("commitment", c.String("commitment"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "depositor: %s\n", depositor)
		fmt.Fprintf(m.e, "commitment: %x\n", commitment)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	err = engine.Dispatch(engine.Deposit{
		Pool:            poolAccount,
		Depositor:       depositor,
		DepositorSigned: true,
		Commitment:      commitment,
		Amount:          amount,
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
		TVL             uint64 `json:"tvl,string"`
	}{
		Pool:            poolAccount.String(),
		Root:            ledger.Root.String(),
		CommitmentCount: ledger.CommitmentCount,
		TVL:             ledger.TVL,
	})
}

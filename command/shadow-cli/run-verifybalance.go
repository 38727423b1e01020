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

func runVerifyBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	proof, err := checkHexBytes("proof", c.String("proof"))
	if nil != err {
		return err
	}

	commitment, err := checkWord("commitment", c.String("commitment"))
	if nil != err {
		return err
	}

	minBalance := c.Uint64("min")

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "minimum balance: %d\n", minBalance)
		fmt.Fprintf(m.e, "commitment: %x\n", commitment)
	}

	err = engine.Dispatch(engine.VerifyBalance{
		Pool:              poolAccount,
		Proof:             proof,
		MinBalance:        minBalance,
		BalanceCommitment: commitment,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool       string `json:"pool"`
		Verified   bool   `json:"verified"`
		MinBalance uint64 `json:"minBalance,string"`
	}{
		Pool:       poolAccount.String(),
		Verified:   true,
		MinBalance: minBalance,
	})
}

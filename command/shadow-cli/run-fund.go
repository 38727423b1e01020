// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/storage"
)

// local faucet: credit a balance cell directly, outside any request
func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	target, err := checkAddress("account", c.String("account"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("amount is required")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", target)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	trans, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trans.CreditBalance(target.Bytes(), amount)
	err = trans.Commit()
	if nil != err {
		return err
	}

	trans, err = storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trans.Abort()

	return printJson(m.w, struct {
		Account string `json:"account"`
		Balance uint64 `json:"balance,string"`
	}{
		Account: target.String(),
		Balance: trans.Balance(target.Bytes()),
	})
}

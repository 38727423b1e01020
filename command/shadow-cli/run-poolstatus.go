// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/ledgerrecord"
	"github.com/shadowpool/shadowd/pool"
)

func runPoolStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	ledger, err := readPoolLedger(poolAccount)
	if nil != err {
		return err
	}

	vault := pool.VaultAddress(poolAccount)
	vaultBalance, err := readAccountBalance(vault)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool         string                   `json:"pool"`
		Vault        string                   `json:"vault"`
		VaultBalance uint64                   `json:"vaultBalance,string"`
		Ledger       *ledgerrecord.PoolLedger `json:"ledger"`
	}{
		Pool:         poolAccount.String(),
		Vault:        vault.String(),
		VaultBalance: vaultBalance,
		Ledger:       ledger,
	})
}

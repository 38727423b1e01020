// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/engine"
	"github.com/shadowpool/shadowd/relayer"
)

func runRelayerRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := checkAddress("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	endpoint := c.String("endpoint")
	if "" == endpoint {
		return fmt.Errorf("endpoint is required")
	}

	stake := c.Uint64("stake")

	cell := relayer.RecordAddress(wallet)

	if m.verbose {
		fmt.Fprintf(m.e, "wallet: %s\n", wallet)
		fmt.Fprintf(m.e, "record cell: %s\n", cell)
		fmt.Fprintf(m.e, "endpoint: %q\n", endpoint)
		fmt.Fprintf(m.e, "stake: %d\n", stake)
	}

	err = engine.Dispatch(engine.RegisterRelayer{
		RelayerCell:  cell,
		Wallet:       wallet,
		WalletSigned: true,
		Endpoint:     endpoint,
		Stake:        stake,
	})
	if nil != err {
		return err
	}

	balance, err := readAccountBalance(wallet)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Wallet   string `json:"wallet"`
		Cell     string `json:"cell"`
		Endpoint string `json:"endpoint"`
		Stake    uint64 `json:"stake,string"`
		Balance  uint64 `json:"balance,string"`
	}{
		Wallet:   wallet.String(),
		Cell:     cell.String(),
		Endpoint: endpoint,
		Stake:    stake,
		Balance:  balance,
	})
}

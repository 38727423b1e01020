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

func runRelayerHeartbeat(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := checkAddress("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "wallet: %s\n", wallet)
	}

	err = engine.Dispatch(engine.UpdateHeartbeat{
		Wallet:       wallet,
		WalletSigned: true,
	})
	if nil != err {
		return err
	}

	record, err := readRelayerRecord(wallet)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Wallet        string `json:"wallet"`
		LastHeartbeat uint64 `json:"lastHeartbeat,string"`
	}{
		Wallet:        wallet.String(),
		LastHeartbeat: record.LastHeartbeat,
	})
}

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

func runRelayerReport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := checkAddress("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	success := !c.Bool("failed")

	if m.verbose {
		fmt.Fprintf(m.e, "wallet: %s\n", wallet)
		fmt.Fprintf(m.e, "success: %t\n", success)
	}

	err = engine.Dispatch(engine.ReportRelay{
		Wallet:         wallet,
		ReporterSigned: true,
		Success:        success,
	})
	if nil != err {
		return err
	}

	record, err := readRelayerRecord(wallet)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Wallet       string `json:"wallet"`
		SuccessCount uint64 `json:"successCount,string"`
		FailCount    uint64 `json:"failCount,string"`
		Reputation   uint64 `json:"reputation,string"`
	}{
		Wallet:       wallet.String(),
		SuccessCount: record.SuccessCount,
		FailCount:    record.FailCount,
		Reputation:   relayer.ReputationScore(record),
	})
}

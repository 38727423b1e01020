// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/relayer"
)

func runRelayerStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	wallet, err := checkAddress("wallet", c.String("wallet"))
	if nil != err {
		return err
	}

	record, err := readRelayerRecord(wallet)
	if nil != err {
		return err
	}

	now := uint64(time.Now().Unix())

	return printJson(m.w, struct {
		Wallet        string `json:"wallet"`
		Endpoint      string `json:"endpoint"`
		Stake         uint64 `json:"stake,string"`
		SuccessCount  uint64 `json:"successCount,string"`
		FailCount     uint64 `json:"failCount,string"`
		Reputation    uint64 `json:"reputation,string"`
		LastHeartbeat uint64 `json:"lastHeartbeat,string"`
		RegisteredAt  uint64 `json:"registeredAt,string"`
		Active        bool   `json:"active"`
		Online        bool   `json:"online"`
	}{
		Wallet:        wallet.String(),
		Endpoint:      record.Endpoint,
		Stake:         record.Stake,
		SuccessCount:  record.SuccessCount,
		FailCount:     record.FailCount,
		Reputation:    relayer.ReputationScore(record),
		LastHeartbeat: record.LastHeartbeat,
		RegisteredAt:  record.RegisteredAt,
		Active:        record.Active,
		Online:        relayer.IsOnline(record, now),
	})
}

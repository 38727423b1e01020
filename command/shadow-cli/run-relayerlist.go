// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/relayer"
)

func runRelayerList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("count must be positive: %d", count)
	}

	records, err := relayer.ListRecords(nil, count)
	if nil != err {
		return err
	}

	now := uint64(time.Now().Unix())

	type item struct {
		Wallet     string `json:"wallet"`
		Endpoint   string `json:"endpoint"`
		Stake      uint64 `json:"stake,string"`
		Reputation uint64 `json:"reputation,string"`
		Online     bool   `json:"online"`
	}

	items := make([]item, len(records))
	for i, record := range records {
		items[i] = item{
			Wallet:     record.Wallet.String(),
			Endpoint:   record.Endpoint,
			Stake:      record.Stake,
			Reputation: relayer.ReputationScore(record),
			Online:     relayer.IsOnline(record, now),
		}
	}

	return printJson(m.w, struct {
		Relayers []item `json:"relayers"`
	}{
		Relayers: items,
	})
}

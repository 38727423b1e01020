// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/engine"
	"github.com/shadowpool/shadowd/verifier"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// counters cover this process only, the cell store keeps no totals
	return printJson(m.w, struct {
		Mode     string          `json:"mode"`
		Counters engine.Counters `json:"counters"`
	}{
		Mode:     verifier.String(),
		Counters: engine.ReadCounters(),
	})
}

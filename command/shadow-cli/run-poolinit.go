// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/engine"
	"github.com/shadowpool/shadowd/pool"
)

func runPoolInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	authority, err := checkAddress("authority", c.String("authority"))
	if nil != err {
		return err
	}

	depth := c.Int("depth")
	if depth < 1 || depth > 255 {
		return fmt.Errorf("invalid tree depth: %d", depth)
	}

	denomination := c.Uint64("denomination")

	vault := pool.VaultAddress(poolAccount)

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "authority: %s\n", authority)
		fmt.Fprintf(m.e, "vault: %s\n", vault)
		fmt.Fprintf(m.e, "depth: %d\n", depth)
		fmt.Fprintf(m.e, "denomination: %d\n", denomination)
	}

	err = engine.Dispatch(engine.InitializePool{
		Pool:            poolAccount,
		Authority:       authority,
		AuthoritySigned: true,
		Vault:           vault,
		TreeDepth:       uint8(depth),
		Denomination:    denomination,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool         string `json:"pool"`
		Vault        string `json:"vault"`
		Authority    string `json:"authority"`
		TreeDepth    int    `json:"treeDepth"`
		Denomination uint64 `json:"denomination,string"`
	}{
		Pool:         poolAccount.String(),
		Vault:        vault.String(),
		Authority:    authority.String(),
		TreeDepth:    depth,
		Denomination: denomination,
	})
}

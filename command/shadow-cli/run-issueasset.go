// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/asset"
	"github.com/shadowpool/shadowd/engine"
)

func runIssueAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	issuer, err := checkAddress("issuer", c.String("issuer"))
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("name is required")
	}

	symbol := c.String("symbol")
	if "" == symbol {
		return fmt.Errorf("symbol is required")
	}

	decimals := c.Int("decimals")
	if decimals < 0 || decimals > 255 {
		return fmt.Errorf("decimals: %d out of range", decimals)
	}

	assetID, err := checkWord("asset-id", c.String("asset-id"))
	if nil != err {
		return err
	}

	supply := c.Uint64("supply")

	if m.verbose {
		fmt.Fprintf(m.e, "issuer: %s\n", issuer)
		fmt.Fprintf(m.e, "name: %q\n", name)
		fmt.Fprintf(m.e, "symbol: %q\n", symbol)
		fmt.Fprintf(m.e, "asset id: %x\n", assetID)
	}

	err = engine.Dispatch(engine.IssueAsset{
		Issuer:       issuer,
		IssuerSigned: true,
		Name:         name,
		Symbol:       symbol,
		Decimals:     uint8(decimals),
		TotalSupply:  supply,
		AssetID:      assetID,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		AssetID     string `json:"assetId"`
		Cell        string `json:"cell"`
		Name        string `json:"name"`
		Symbol      string `json:"symbol"`
		TotalSupply uint64 `json:"totalSupply,string"`
	}{
		AssetID:     fmt.Sprintf("%x", assetID),
		Cell:        asset.CellAddress(assetID).String(),
		Name:        name,
		Symbol:      symbol,
		TotalSupply: supply,
	})
}

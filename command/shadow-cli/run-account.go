// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/account"
)

// generate a random address; runs without configuration or engine
func runAccount(c *cli.Context) error {

	var address account.Address
	_, err := rand.Read(address[:])
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, struct {
		Address string `json:"address"`
	}{
		Address: address.String(),
	})
}

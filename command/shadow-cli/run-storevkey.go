// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/circuit"
	"github.com/shadowpool/shadowd/engine"
	"github.com/shadowpool/shadowd/vkey"
)

func runStoreVkey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	poolAccount, err := checkAddress("pool", c.String("pool"))
	if nil != err {
		return err
	}

	authority, err := checkAddress("authority", c.String("authority"))
	if nil != err {
		return err
	}

	kind, err := circuit.FromString(c.String("type"))
	if nil != err {
		return err
	}

	key, err := checkHexBytes("key", c.String("key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "pool: %s\n", poolAccount)
		fmt.Fprintf(m.e, "type: %s\n", kind)
		fmt.Fprintf(m.e, "key size: %d\n", len(key))
	}

	err = engine.Dispatch(engine.StoreVerificationKey{
		Pool:            poolAccount,
		Authority:       authority,
		AuthoritySigned: true,
		Kind:            kind,
		Key:             key,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Pool    string `json:"pool"`
		Kind    string `json:"kind"`
		Entry   string `json:"entry"`
		KeySize int    `json:"keySize"`
	}{
		Pool:    poolAccount.String(),
		Kind:    kind.String(),
		Entry:   vkey.EntryAddress(poolAccount, kind).String(),
		KeySize: len(key),
	})
}

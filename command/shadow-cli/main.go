// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/configuration"
	"github.com/shadowpool/shadowd/engine"
)

type metadata struct {
	file    string // configuration file path
	config  *configuration.Configuration
	online  bool // engine is running
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "shadow-cli"
	app.Usage = "drive a local shielded pool ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration file `PATH`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "write a sample configuration file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: "strict",
					Usage: " verification mode [strict|permissive]",
				},
			},
			Action: runSetup,
		},
		{
			Name:   "account",
			Usage:  "generate a random account address",
			Flags:  []cli.Flag{},
			Action: runAccount,
		},
		{
			Name:      "fund",
			Usage:     "credit an account balance (local faucet)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*account to credit `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*amount to credit `UNITS`",
				},
			},
			Action: runFund,
		},
		{
			Name:      "pool-init",
			Usage:     "create a new shielded pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*pool authority `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "depth, d",
					Value: 20,
					Usage: " commitment tree depth `N`",
				},
				cli.Uint64Flag{
					Name:  "denomination, n",
					Value: 0,
					Usage: "*fixed note denomination `UNITS`",
				},
			},
			Action: runPoolInit,
		},
		{
			Name:      "store-vkey",
			Usage:     "install a Groth16 verifying key for a pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: "*pool authority `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*circuit type [transfer|balance|ring_sig]",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*verifying key `HEX`",
				},
			},
			Action: runStoreVkey,
		},
		{
			Name:      "deposit",
			Usage:     "shield one fixed denomination note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "depositor, d",
					Value: "",
					Usage: "*funding account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "commitment, c",
					Value: "",
					Usage: "*note commitment `HEX32`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount, must equal the pool denomination `UNITS`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "unshield funds against a membership proof",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*receiving account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "proof, f",
					Value: "",
					Usage: "*Groth16 proof `HEX`",
				},
				cli.StringFlag{
					Name:  "root, m",
					Value: "",
					Usage: "*merkle root the proof was built against `HEX32`",
				},
				cli.StringFlag{
					Name:  "nullifier, n",
					Value: "",
					Usage: "*spent note nullifier `HEX32`",
				},
				cli.StringFlag{
					Name:  "change, g",
					Value: "",
					Usage: " change note commitment, omit for none `HEX32`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to withdraw `UNITS`",
				},
				cli.StringFlag{
					Name:  "tag, t",
					Value: "",
					Usage: " transaction tag recorded with the nullifier `TEXT`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "transfer",
			Usage:     "move value inside the pool under a ring signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*ring signature `HEX`",
				},
				cli.StringFlag{
					Name:  "key-image, k",
					Value: "",
					Usage: "*spent note key image `HEX32`",
				},
				cli.StringSliceFlag{
					Name:  "member, m",
					Usage: "*ring member public key `HEX32`, repeatable",
				},
				cli.StringFlag{
					Name:  "commitment, c",
					Value: "",
					Usage: "*new note commitment `HEX32`",
				},
				cli.StringFlag{
					Name:  "payload, y",
					Value: "",
					Usage: " encrypted amount for the recipient `HEX`",
				},
				cli.StringFlag{
					Name:  "tag, t",
					Value: "",
					Usage: " transaction tag recorded with the key image `TEXT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "verify-balance",
			Usage:     "check a proof that a committed balance meets a floor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "proof, f",
					Value: "",
					Usage: "*Groth16 proof `HEX`",
				},
				cli.Uint64Flag{
					Name:  "min, m",
					Value: 0,
					Usage: "*minimum balance floor `UNITS`",
				},
				cli.StringFlag{
					Name:  "commitment, c",
					Value: "",
					Usage: "*balance commitment `HEX32`",
				},
			},
			Action: runVerifyBalance,
		},
		{
			Name:      "issue-asset",
			Usage:     "create a new shielded asset class",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, i",
					Value: "",
					Usage: "*issuing account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*asset symbol `STRING`",
				},
				cli.IntFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " display decimals `N`",
				},
				cli.Uint64Flag{
					Name:  "supply, q",
					Value: 0,
					Usage: " total supply `UNITS`",
				},
				cli.StringFlag{
					Name:  "asset-id, a",
					Value: "",
					Usage: "*asset identifier `HEX32`",
				},
			},
			Action: runIssueAsset,
		},
		{
			Name:      "transfer-asset",
			Usage:     "move one shielded asset note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset-id, a",
					Value: "",
					Usage: "*asset identifier `HEX32`",
				},
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*governing pool account `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "proof, f",
					Value: "",
					Usage: "*Groth16 proof `HEX`",
				},
				cli.StringFlag{
					Name:  "nullifier, n",
					Value: "",
					Usage: "*spent note nullifier `HEX32`",
				},
				cli.StringFlag{
					Name:  "commitment, c",
					Value: "",
					Usage: "*new note commitment `HEX32`",
				},
				cli.StringFlag{
					Name:  "payload, y",
					Value: "",
					Usage: " encrypted note data for the recipient `HEX`",
				},
				cli.StringFlag{
					Name:  "tag, t",
					Value: "",
					Usage: " transaction tag recorded with the nullifier `TEXT`",
				},
			},
			Action: runTransferAsset,
		},
		{
			Name:      "relayer-register",
			Usage:     "register a relay operator with a locked stake",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*relayer wallet `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "endpoint, e",
					Value: "",
					Usage: "*relay service endpoint `URL`",
				},
				cli.Uint64Flag{
					Name:  "stake, s",
					Value: 0,
					Usage: "*stake to lock `UNITS`",
				},
			},
			Action: runRelayerRegister,
		},
		{
			Name:      "relayer-heartbeat",
			Usage:     "refresh a relayer's liveness timestamp",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*relayer wallet `ADDRESS`",
				},
			},
			Action: runRelayerHeartbeat,
		},
		{
			Name:      "relayer-report",
			Usage:     "record the outcome of one relayed request",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*relayer wallet `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "failed, f",
					Usage: " report a failed relay (default success)",
				},
			},
			Action: runRelayerReport,
		},
		{
			Name:      "relayer-list",
			Usage:     "page through the relayer registry",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to show `N`",
				},
			},
			Action: runRelayerList,
		},
		{
			Name:      "relayer-status",
			Usage:     "show one relayer's registry record and score",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*relayer wallet `ADDRESS`",
				},
			},
			Action: runRelayerStatus,
		},
		{
			Name:      "pool-status",
			Usage:     "show one pool's ledger and vault balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "pool, p",
					Value: "",
					Usage: "*pool account `ADDRESS`",
				},
			},
			Action: runPoolStatus,
		},
		{
			Name:   "status",
			Usage:  "show engine mode and request counters",
			Flags:  []cli.Flag{},
			Action: runStatus,
		},
		{
			Name:  "version",
			Usage: "display shadow-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start the engine
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// commands that run without a configuration
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "account":
			return nil
		}

		file := c.GlobalString("config")
		if "" == file {
			return fmt.Errorf("configuration file is required, use: --config PATH")
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup over an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		err = logger.Initialise(config.Logging)
		if nil != err {
			return err
		}

		err = engine.Initialise(config.DataDirectory, config.VerificationMode)
		if nil != err {
			logger.Finalise()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			online:  true,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// stop the engine if it was started
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.online {
			return nil
		}
		err := engine.Finalise()
		logger.Finalise()
		return err
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

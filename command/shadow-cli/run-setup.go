// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/urfave/cli"

	"github.com/shadowpool/shadowd/templates"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mode := c.String("mode")
	switch mode {
	case "strict", "permissive":
	default:
		return fmt.Errorf("mode: %q can only be strict/permissive", mode)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "mode: %s\n", mode)
	}

	// create the folder hierarchy for configuration if not existing
	configDir := filepath.Dir(m.file)
	dir, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !dir {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	// the default log directory must exist before the first run
	err = os.MkdirAll(filepath.Join(configDir, "log"), 0o750)
	if nil != err {
		return err
	}

	tmpl, err := template.New("configuration").Parse(templates.ConfigurationTemplate)
	if nil != err {
		return err
	}

	f, err := os.OpenFile(m.file, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if nil != err {
		return err
	}
	defer f.Close()

	err = tmpl.Execute(f, struct {
		VerificationMode string
	}{
		VerificationMode: mode,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		File string `json:"file"`
		Mode string `json:"mode"`
	}{
		File: m.file,
		Mode: mode,
	})
}

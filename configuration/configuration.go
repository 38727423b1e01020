// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/util"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "shadowd.log"
	defaultLogCount     = 10          // number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var defaultLogLevels = map[string]string{
	logger.DefaultTag: "critical",
}

// Configuration - shadowd settings
//
// verification_mode has no default: a deployment must choose proof
// checking explicitly and can never fall back to permissive silently
type Configuration struct {
	DataDirectory    string               `gluamapper:"data_directory" json:"data_directory"`
	VerificationMode string               `gluamapper:"verification_mode" json:"verification_mode"`
	Logging          logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:    defaultDataDirectory,
		VerificationMode: "", // forces an explicit choice

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	err = ParseConfigurationFile(configurationFileName, options)
	if nil != err {
		return nil, err
	}

	if "" == options.VerificationMode {
		return nil, fault.ErrInvalidVerificationMode
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	fileInfo, err := os.Stat(options.DataDirectory)
	if nil != err {
		return nil, err
	}
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a simple name, the directory becomes absolute
	if strings.ContainsRune(options.Logging.File, os.PathSeparator) {
		return nil, fmt.Errorf("log file: %q must not contain a path separator", options.Logging.File)
	}
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - embedded sample configuration
package templates

// ConfigurationTemplate - sample shadowd.conf written by "shadow-cli setup"
//
// executed as a Go template; the only substitution is the
// verification mode chosen on the command line
const ConfigurationTemplate = `-- shadowd.conf  -*- mode: lua -*-

local M = {}

-- set the directory for data and log files
-- "." means the same directory as this configuration file
M.data_directory = "."

-- proof verification mode: "strict" or "permissive"
-- there is no default: the engine refuses to start without one
-- permissive skips Groth16 pairing checks and is for testing only
M.verification_mode = "{{.VerificationMode}}"

-- logging configuration
M.logging = {
    size = 1048576,
    count = 10,

    -- set to true to log to console as well as file
    console = false,

    -- set the logging level for various modules
    levels = {
        DEFAULT = "info",

        -- some specific logging channels
        -- engine = "info",
        -- verifier = "info",
        -- storage = "info",
    },
}

return M
`

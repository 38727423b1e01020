// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line interface to a local shielded pool ledger
//
// The engine runs inside this process: each command opens the ledger
// database named by the configuration file, applies or inspects one
// request and shuts the engine down again.
//
// e.g. create a pool and shield one note:
//
//	shadow-cli --config shadowd.conf pool-init -p POOL -a AUTH -n 1000000000
//	shadow-cli --config shadowd.conf fund -a PAYER -n 1000000000
//	shadow-cli --config shadowd.conf deposit -p POOL -d PAYER -c HEX32 -a 1000000000
package main

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/sha3"

	"github.com/shadowpool/shadowd/util"
)

// domain separation tag for sub-account derivation
const derivationTag = "shadowpool.subaccount.v1"

// DeriveAddress - deterministic sub-account derivation
//
// SHA3-256 over the domain tag and the length prefixed seeds.  The
// engine exclusively controls any cell at a derived address; callers
// supplying a derived address are always checked against a fresh
// recomputation and never trusted on the label alone.
func DeriveAddress(seeds ...[]byte) Address {
	h := sha3.New256()
	h.Write([]byte(derivationTag))
	for _, seed := range seeds {
		h.Write(util.ToVarint64(uint64(len(seed))))
		h.Write(seed)
	}

	var address Address
	copy(address[:], h.Sum(nil))
	return address
}

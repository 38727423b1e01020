// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verifier - the proof checking layer
//
// Two independent verification paths are provided:
//
// 1. Groth16 zero knowledge proofs over BN254.  The verifying key is
//    an opaque byte string held by the vkey registry, the proof is an
//    opaque byte string supplied by the caller and the public inputs
//    are 32 byte big endian field elements.
//
// 2. MLSAG style ring signatures.  The signature carries an initial
//    challenge followed by one response scalar per ring member; the
//    Keccak-256 challenge chain must close back onto the initial
//    value.  This is a structure check over raw scalars, not a full
//    group operation, and it runs identically in every mode.
//
// The mode must be selected explicitly at start up.  Strict mode
// performs the full Groth16 pairing check; permissive mode accepts
// any well formed proof and is only for development networks.  There
// is no default: a configuration that does not name a mode fails to
// start.
package verifier

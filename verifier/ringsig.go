// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/shadowpool/shadowd/fault"
	"github.com/shadowpool/shadowd/shield"
)

// ring size bounds enforced by VerifyRingSignature
const (
	MinimumRingSize = 1
	MaximumRingSize = 16
)

// VerifyRingSignature - check an MLSAG style signature
//
// layout: initial challenge (32 bytes) followed by one 32 byte
// response scalar per ring member.  The Keccak-256 challenge chain
// over (challenge, response, member, key image) must close back onto
// the initial value.  This runs in every mode, permissive included.
func VerifyRingSignature(signature []byte, keyImage shield.KeyImage, ring [][32]byte) (bool, error) {

	ringSize := len(ring)
	if ringSize < MinimumRingSize || ringSize > MaximumRingSize {
		return false, fault.ErrInvalidRingSize
	}

	if len(signature) != shield.Size*(ringSize+1) {
		return false, fault.ErrInvalidSignature
	}

	initial := signature[:shield.Size]
	final := ringChallengeChain(signature, keyImage, ring)

	return bytes.Equal(final, initial), nil
}

// internal: run the challenge chain over the whole ring
//
// the chain starts from the initial challenge in the signature and
// each step hashes the running challenge, the member's response
// scalar, the member's public key and the shared key image
func ringChallengeChain(signature []byte, keyImage shield.KeyImage, ring [][32]byte) []byte {

	challenge := signature[:shield.Size]

	for i := 0; i < len(ring); i += 1 {
		response := signature[(i+1)*shield.Size : (i+2)*shield.Size]

		h := sha3.NewLegacyKeccak256()
		h.Write(challenge)
		h.Write(response)
		h.Write(ring[i][:])
		h.Write(keyImage[:])
		challenge = h.Sum(nil)
	}

	return challenge
}

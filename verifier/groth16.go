// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verifier

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"

	"github.com/shadowpool/shadowd/fault"
)

// Curve - all protocol circuits are compiled over BN254
const Curve = ecc.BN254

// VerifyProof - check a Groth16 proof against a verifying key
//
// vk and proof are the gnark binary serializations; each public
// input is a 32 byte big endian canonical field element.  The bool
// reports whether the pairing check passed, the error reports a
// malformed argument.  In permissive mode any well formed proof is
// accepted without being checked.
func VerifyProof(vk []byte, proof []byte, publicInputs [][32]byte) (bool, error) {

	if 0 == len(vk) {
		return false, fault.ErrInvalidVerificationKey
	}
	if 0 == len(proof) {
		return false, fault.ErrInvalidProof
	}

	if Is(Permissive) {
		globalData.log.Warn("proof accepted without verification")
		return true, nil
	}

	key := groth16.NewVerifyingKey(Curve)
	if _, err := key.ReadFrom(bytes.NewReader(vk)); nil != err {
		return false, fault.ErrInvalidVerificationKey
	}

	p := groth16.NewProof(Curve)
	if _, err := p.ReadFrom(bytes.NewReader(proof)); nil != err {
		return false, fault.ErrInvalidProof
	}

	if len(publicInputs) != key.NbPublicWitness() {
		return false, fault.ErrInvalidPublicInputs
	}

	w, err := publicWitness(publicInputs)
	if nil != err {
		return false, err
	}

	if err := groth16.Verify(p, key, w); nil != err {
		return false, nil
	}
	return true, nil
}

// internal: build a schema free public witness from raw field elements
func publicWitness(publicInputs [][32]byte) (witness.Witness, error) {

	values := make(chan any, len(publicInputs))
	for i := range publicInputs {
		var element fr.Element
		if err := element.SetBytesCanonical(publicInputs[i][:]); nil != err {
			return nil, fault.ErrInvalidPublicInputs
		}
		values <- element.BigInt(new(big.Int))
	}
	close(values)

	w, err := witness.New(Curve.ScalarField())
	if nil != err {
		return nil, err
	}
	if err := w.Fill(len(publicInputs), 0, values); nil != err {
		return nil, fault.ErrInvalidPublicInputs
	}
	return w, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrAssetAlreadyIssued       = ExistsError("asset already issued")
	ErrAssetNotInitialised      = NotFoundError("asset not initialised")
	ErrCannotDecodeRecord       = RecordError("cannot decode record")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrInsufficientFunds        = ProcessError("insufficient funds")
	ErrInvalidAccountData       = RecordError("invalid account data")
	ErrInvalidAddress           = InvalidError("invalid address")
	ErrInvalidAmount            = InvalidError("invalid amount")
	ErrInvalidCommitment        = InvalidError("invalid commitment")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidMerkleRoot        = InvalidError("invalid merkle root")
	ErrInvalidPoolState         = RecordError("invalid pool state")
	ErrInvalidProof             = ProcessError("invalid proof")
	ErrInvalidPublicInputs      = InvalidError("invalid public inputs")
	ErrInvalidRequest           = InvalidError("invalid request")
	ErrInvalidRingSignature     = ProcessError("invalid ring signature")
	ErrInvalidRingSize          = LengthError("invalid ring size")
	ErrInvalidSignature         = LengthError("invalid signature length")
	ErrInvalidVerificationKey   = InvalidError("invalid verification key")
	ErrInvalidVerificationMode  = InvalidError("invalid verification mode")
	ErrKeyImageAlreadyUsed      = ExistsError("key image already used")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrNullifierAlreadyUsed     = ExistsError("nullifier already used")
	ErrPoolAlreadyInitialised   = ExistsError("pool already initialised")
	ErrPoolNotInitialised       = NotFoundError("pool not initialised")
	ErrRelayerAlreadyRegistered = ExistsError("relayer already registered")
	ErrRelayerNotRegistered     = NotFoundError("relayer not registered")
	ErrTransactionInUse         = ProcessError("transaction already in use")
	ErrUnauthorized             = AuthorizationError("unauthorized")
	ErrVerificationKeyNotFound  = NotFoundError("verification key not found")
	ErrWrongRecordTag           = RecordError("wrong record tag")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }

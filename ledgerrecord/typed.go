// SPDX-License-Identifier: ISC
// Copyright (c) 2022-2026 Shadowpool Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledgerrecord

import (
	"github.com/shadowpool/shadowd/fault"
)

// unpack a packed record expected to hold exactly one PoolLedger
//
// the stored form is a single record, so trailing bytes are an error
func (record Packed) PoolLedger() (*PoolLedger, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	ledger, ok := r.(*PoolLedger)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return ledger, nil
}

// unpack a packed record expected to hold exactly one AssetLedger
func (record Packed) AssetLedger() (*AssetLedger, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	ledger, ok := r.(*AssetLedger)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return ledger, nil
}

// unpack a packed record expected to hold exactly one NullifierMark
func (record Packed) NullifierMark() (*NullifierMark, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	mark, ok := r.(*NullifierMark)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return mark, nil
}

// unpack a packed record expected to hold exactly one KeyImageMark
func (record Packed) KeyImageMark() (*KeyImageMark, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	mark, ok := r.(*KeyImageMark)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return mark, nil
}

// unpack a packed record expected to hold exactly one StoredKey
func (record Packed) StoredKey() (*StoredKey, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	stored, ok := r.(*StoredKey)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return stored, nil
}

// unpack a packed record expected to hold exactly one Relayer
func (record Packed) Relayer() (*Relayer, error) {
	r, n, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	if len(record) != n {
		return nil, fault.ErrCannotDecodeRecord
	}
	relayer, ok := r.(*Relayer)
	if !ok {
		return nil, fault.ErrWrongRecordTag
	}
	return relayer, nil
}

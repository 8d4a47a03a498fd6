// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"encoding/binary"
	"encoding/json"

	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/util"
)

// Box - an unspent ledger entry
//
// never modify a box after Materialize: the Id is derived from the
// other fields
type Box struct {
	Id    Identifier
	Data  Data
	Nonce int64
}

// Materialize - fix the identity of some data with a nonce
func Materialize(d Data, nonce int64) *Box {
	return &Box{
		Id:    identity(d, nonce),
		Data:  d,
		Nonce: nonce,
	}
}

// Proposition - the lock on the box
func (b *Box) Proposition() Proposition {
	return b.Data.Proposition()
}

// Value - value declared by the box data
func (b *Box) Value() int64 {
	return b.Data.Value()
}

// Tag - box type
func (b *Box) Tag() TypeTag {
	return b.Data.Tag()
}

// Pack - 8 byte big endian nonce followed by the packed data
func (b *Box) Pack() []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(b.Nonce))
	return append(buffer, PackData(b.Data)...)
}

// UnpackBox - recreate a box from its packed form
//
// the identity is recomputed, so a box can never be decoded with an
// identity that does not match its content
func UnpackBox(buffer []byte) (*Box, error) {
	r := util.NewReader(buffer)
	nonce, err := r.Int64()
	if nil != err {
		return nil, err
	}
	d, err := UnpackData(buffer[r.Offset():])
	if nil != err {
		return nil, err
	}
	return Materialize(d, nonce), nil
}

// MarshalJSON - show the box with its derived fields
func (b *Box) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id    Identifier `json:"id"`
		Type  TypeTag    `json:"type"`
		Nonce int64      `json:"nonce"`
		Value int64      `json:"value"`
		Data  Data       `json:"data"`
	}{
		Id:    b.Id,
		Type:  b.Tag(),
		Nonce: b.Nonce,
		Value: b.Value(),
		Data:  b.Data,
	})
}

// UnmarshalJSON - rebuild a box from its JSON form
//
// the identity is recomputed and must match the id given
func (b *Box) UnmarshalJSON(s []byte) error {
	var raw struct {
		Id    Identifier      `json:"id"`
		Type  TypeTag         `json:"type"`
		Nonce int64           `json:"nonce"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(s, &raw); nil != err {
		return err
	}

	var d Data
	switch raw.Type {
	case RegularTag:
		d = &RegularData{}
	case AssetTag:
		d = &AssetData{}
	case SellOrderTag:
		d = &SellOrderData{}
	default:
		return fault.InvalidBoxType
	}
	if err := json.Unmarshal(raw.Data, d); nil != err {
		return err
	}

	*b = *Materialize(d, raw.Nonce)
	if b.Id != raw.Id {
		return fault.ReferencedBoxMismatch
	}
	return nil
}

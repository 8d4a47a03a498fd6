// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Bytes - the transaction encoding without the leading type tag
//
//   fee 8 | timestamp 8 |
//   int32 length | input ids |
//   int32 length | proofs |
//   int32 length | regular outputs |
//   int32 length | extra field
//
// all fixed width integers are big endian
func (t *Transaction) Bytes() []byte {
	return t.encode(false)
}

// MessageToSign - the bytes every proof in this transaction signs
//
// this is the encoding with the proofs section empty and the extra
// field signatures empty so it is identical for the signed and
// unsigned forms
func (t *Transaction) MessageToSign() []byte {
	return t.encode(true)
}

// Pack - the tagged record form used for storage and transaction ids
//
// only a semantically valid transaction can be packed
func (t *Transaction) Pack() (Packed, error) {
	if err := t.Check(); nil != err {
		return nil, err
	}
	record := util.ToVarint64(uint64(t.Tag()))
	return append(record, t.Bytes()...), nil
}

func (t *Transaction) encode(signing bool) []byte {
	buffer := make([]byte, 16, 256)
	binary.BigEndian.PutUint64(buffer[0:], uint64(t.fee))
	binary.BigEndian.PutUint64(buffer[8:], uint64(t.timestamp))

	ids := make([]byte, 0, len(t.inputIds)*box.IdentifierLength)
	for _, id := range t.inputIds {
		ids = append(ids, id[:]...)
	}
	buffer = appendSection(buffer, ids)

	var proofs []byte
	if !signing {
		for _, p := range t.proofs {
			proofs = appendBytes(proofs, p)
		}
	}
	buffer = appendSection(buffer, proofs)

	var outputs []byte
	for _, o := range t.outputs {
		outputs = appendBytes(outputs, box.PackData(o))
	}
	buffer = appendSection(buffer, outputs)

	return appendSection(buffer, packExtra(t.extra, signing))
}

func packExtra(extra Extra, signing bool) []byte {
	switch e := extra.(type) {

	case *AssetDeclaration:
		return box.PackData(e.Asset)

	case *SellOrderInfo:
		buffer := appendBytes(nil, e.AssetBox.Pack())
		if signing {
			buffer = appendBytes(buffer, nil)
		} else {
			buffer = appendBytes(buffer, e.Proof)
		}
		buffer = append(buffer, util.ToVarint64(uint64(e.Price))...)
		return appendAccount(buffer, e.Buyer)

	case *BuyOrderInfo:
		buffer := appendBytes(nil, e.SellOrderBox.Pack())
		if signing {
			buffer = appendBytes(buffer, nil)
		} else {
			buffer = appendBytes(buffer, e.Proof.Signature)
		}
		role := byte(buyerRole)
		if e.Proof.IsSeller {
			role = sellerRole
		}
		return append(buffer, role)

	default:
		return nil
	}
}

// settlement role flag values
const (
	buyerRole  = 0
	sellerRole = 1
)

// append a int32 length prefixed section
func appendSection(buffer []byte, section []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(section)))
	buffer = append(buffer, length[:]...)
	return append(buffer, section...)
}

// append a bytes field to a buffer
func appendBytes(buffer []byte, data []byte) []byte {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append an account field to a buffer, an absent account is empty
func appendAccount(buffer []byte, a *account.Account) []byte {
	if nil == a || nil == a.AccountInterface {
		return appendBytes(buffer, nil)
	}
	return appendBytes(buffer, a.Bytes())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/util"
)

// Unpack - turn a record into a transaction
//
// returns the transaction and the number of bytes consumed; bytes
// after the last section are left to the caller
func (record Packed) Unpack() (*Transaction, int, error) {
	tag, n, err := util.CanonicalVarint64(record)
	if nil != err {
		return nil, 0, err
	}
	if TagType(tag) <= NullTag || TagType(tag) >= InvalidTag {
		return nil, 0, fault.UnknownTransactionType
	}

	t, m, err := Parse(TagType(tag), record[n:])
	if nil != err {
		return nil, 0, err
	}
	return t, n + m, nil
}

// Parse - decode the untagged transaction encoding of the given type
//
// every section must be consumed exactly; returns the transaction and
// the number of bytes consumed
func Parse(tag TagType, buffer []byte) (*Transaction, int, error) {
	r := util.NewReader(buffer)

	fee, err := r.Int64()
	if nil != err {
		return nil, 0, err
	}
	timestamp, err := r.Int64()
	if nil != err {
		return nil, 0, err
	}

	idsSection, err := r.Section()
	if nil != err {
		return nil, 0, err
	}
	inputIds, err := parseIds(idsSection)
	if nil != err {
		return nil, 0, err
	}

	proofsSection, err := r.Section()
	if nil != err {
		return nil, 0, err
	}
	proofs, err := parseProofs(proofsSection)
	if nil != err {
		return nil, 0, err
	}

	outputsSection, err := r.Section()
	if nil != err {
		return nil, 0, err
	}
	outputs, err := parseOutputs(outputsSection)
	if nil != err {
		return nil, 0, err
	}

	extraSection, err := r.Section()
	if nil != err {
		return nil, 0, err
	}
	extra, err := parseExtra(tag, extraSection)
	if nil != err {
		return nil, 0, err
	}

	t, err := New(inputIds, proofs, outputs, fee, timestamp, extra)
	if nil != err {
		return nil, 0, err
	}
	return t, r.Offset(), nil
}

func parseIds(section []byte) ([]box.Identifier, error) {
	if 0 != len(section)%box.IdentifierLength {
		return nil, fault.InvalidIdLength
	}
	var ids []box.Identifier
	for i := 0; i < len(section); i += box.IdentifierLength {
		var id box.Identifier
		copy(id[:], section[i:])
		ids = append(ids, id)
	}
	return ids, nil
}

func parseProofs(section []byte) ([]account.Signature, error) {
	r := util.NewReader(section)
	var proofs []account.Signature
	for r.Remaining() > 0 {
		p, err := r.VarBytes(maxSignatureLength)
		if nil != err {
			return nil, err
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

func parseOutputs(section []byte) ([]*box.RegularData, error) {
	r := util.NewReader(section)
	var outputs []*box.RegularData
	for r.Remaining() > 0 {
		packed, err := r.VarBytes(maxOutputLength)
		if nil != err {
			return nil, err
		}
		d, err := box.UnpackData(packed)
		if nil != err {
			return nil, err
		}
		regular, ok := d.(*box.RegularData)
		if !ok {
			return nil, fault.InvalidBoxType
		}
		outputs = append(outputs, regular)
	}
	return outputs, nil
}

func parseExtra(tag TagType, section []byte) (Extra, error) {
	switch tag {

	case AssetDeclarationTag:
		d, err := box.UnpackData(section)
		if nil != err {
			return nil, err
		}
		asset, ok := d.(*box.AssetData)
		if !ok {
			return nil, fault.InvalidBoxType
		}
		return &AssetDeclaration{
			Asset: asset,
		}, nil

	case SellOrderTag:
		r := util.NewReader(section)
		assetBox, signature, err := parseBoxAndSignature(r)
		if nil != err {
			return nil, err
		}
		price, err := r.Varint64()
		if nil != err {
			return nil, err
		}
		buyerBytes, err := r.VarBytes(maxAccountLength)
		if nil != err {
			return nil, err
		}
		buyer, err := account.AccountFromBytes(buyerBytes)
		if nil != err {
			return nil, fault.CannotDecodeAccount
		}
		if err := r.Done(); nil != err {
			return nil, err
		}
		return &SellOrderInfo{
			AssetBox: assetBox,
			Proof:    signature,
			Price:    int64(price),
			Buyer:    buyer,
		}, nil

	case BuyOrderTag:
		r := util.NewReader(section)
		orderBox, signature, err := parseBoxAndSignature(r)
		if nil != err {
			return nil, err
		}
		role, err := r.Byte()
		if nil != err {
			return nil, err
		}
		if buyerRole != role && sellerRole != role {
			return nil, fault.InvalidRoleFlag
		}
		if err := r.Done(); nil != err {
			return nil, err
		}
		return &BuyOrderInfo{
			SellOrderBox: orderBox,
			Proof: &box.SellOrderProof{
				Signature: signature,
				IsSeller:  sellerRole == role,
			},
		}, nil

	default:
		return nil, fault.UnknownTransactionType
	}
}

func parseBoxAndSignature(r *util.Reader) (*box.Box, account.Signature, error) {
	packed, err := r.VarBytes(maxBoxLength)
	if nil != err {
		return nil, nil, err
	}
	b, err := box.UnpackBox(packed)
	if nil != err {
		return nil, nil, err
	}
	signature, err := r.VarBytes(maxSignatureLength)
	if nil != err {
		return nil, nil, err
	}
	if 0 == len(signature) {
		signature = nil
	}
	return b, signature, nil
}

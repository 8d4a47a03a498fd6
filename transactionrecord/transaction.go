// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sync"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AssetDeclarationTag = TagType(iota) // declare a new asset
	SellOrderTag        = TagType(iota) // offer an asset to a buyer
	BuyOrderTag         = TagType(iota) // settle or cancel a sell order

	// this item must be last
	InvalidTag = TagType(iota)
)

// byte sizes for various fields
const (
	maxSignatureLength = 1024
	maxAccountLength   = 64
	maxBoxLength       = 16384
	maxOutputLength    = 1024
)

// String - name of the transaction type
func (tag TagType) String() string {
	switch tag {
	case AssetDeclarationTag:
		return "assetDeclaration"
	case SellOrderTag:
		return "sellOrder"
	case BuyOrderTag:
		return "buyOrder"
	default:
		return "unknown"
	}
}

// Extra - the variant specific part of a transaction
//
// the set of implementations is closed: AssetDeclaration,
// SellOrderInfo and BuyOrderInfo
type Extra interface {
	Tag() TagType
	isExtra()
}

// AssetDeclaration - the extra field of a declare asset transaction
type AssetDeclaration struct {
	Asset *box.AssetData `json:"asset"`
}

// SellOrderInfo - the extra field of a create sell order transaction
//
// the asset box is spent by this transaction using Proof, the
// owner's signature
type SellOrderInfo struct {
	AssetBox *box.Box          `json:"assetBox"`
	Proof    account.Signature `json:"proof"`
	Price    int64             `json:"price"`
	Buyer    *account.Account  `json:"buyer"`
}

// BuyOrderInfo - the extra field of a settlement transaction
//
// Proof.IsSeller selects cancellation by the seller, otherwise the
// buyer is accepting the offer
type BuyOrderInfo struct {
	SellOrderBox *box.Box            `json:"sellOrderBox"`
	Proof        *box.SellOrderProof `json:"proof"`
}

// Tag - transaction type of a declaration
func (*AssetDeclaration) Tag() TagType { return AssetDeclarationTag }

// Tag - transaction type of a sell order
func (*SellOrderInfo) Tag() TagType { return SellOrderTag }

// Tag - transaction type of a settlement
func (*BuyOrderInfo) Tag() TagType { return BuyOrderTag }

func (*AssetDeclaration) isExtra() {}
func (*SellOrderInfo) isExtra()    {}
func (*BuyOrderInfo) isExtra()     {}

// Transaction - a set of spent boxes, regular outputs, a fee and
// one variant specific extra field
//
// a transaction is immutable once created; the derived unlockers and
// new boxes are computed on first use and cached
type Transaction struct {
	inputIds  []box.Identifier
	proofs    []account.Signature
	outputs   []*box.RegularData
	fee       int64
	timestamp int64
	extra     Extra

	unlockersOnce sync.Once
	unlockers     []Unlocker

	newBoxesOnce sync.Once
	newBoxes     []*box.Box
}

// New - create a transaction
//
// proofs may be nil for an unsigned transaction, which is only useful
// to obtain MessageToSign
func New(inputIds []box.Identifier, proofs []account.Signature, outputs []*box.RegularData, fee int64, timestamp int64, extra Extra) (*Transaction, error) {

	switch e := extra.(type) {
	case *AssetDeclaration:
		if nil == e || nil == e.Asset {
			return nil, fault.MissingParameters
		}
	case *SellOrderInfo:
		if nil == e || nil == e.AssetBox || nil == e.AssetBox.Data {
			return nil, fault.MissingParameters
		}
	case *BuyOrderInfo:
		if nil == e || nil == e.SellOrderBox || nil == e.SellOrderBox.Data || nil == e.Proof {
			return nil, fault.MissingParameters
		}
	default:
		return nil, fault.MissingParameters
	}

	for _, o := range outputs {
		if nil == o {
			return nil, fault.MissingParameters
		}
	}

	t := &Transaction{
		inputIds:  append([]box.Identifier(nil), inputIds...),
		proofs:    copySignatures(proofs),
		outputs:   copyOutputs(outputs),
		fee:       fee,
		timestamp: timestamp,
		extra:     copyExtra(extra),
	}
	return t, nil
}

// Tag - the transaction type, taken from its extra field
func (t *Transaction) Tag() TagType {
	return t.extra.Tag()
}

// Fee - amount paid to the network
func (t *Transaction) Fee() int64 {
	return t.fee
}

// Timestamp - creation time in milliseconds
func (t *Transaction) Timestamp() int64 {
	return t.timestamp
}

// InputIds - ids of the regular boxes spent
func (t *Transaction) InputIds() []box.Identifier {
	return append([]box.Identifier(nil), t.inputIds...)
}

// Proofs - signatures matching InputIds position by position
func (t *Transaction) Proofs() []account.Signature {
	return copySignatures(t.proofs)
}

// Outputs - explicit regular outputs
func (t *Transaction) Outputs() []*box.RegularData {
	return copyOutputs(t.outputs)
}

// Extra - the variant specific field
func (t *Transaction) Extra() Extra {
	return copyExtra(t.extra)
}

// IsSigned - true if a proof is present for every input and for the
// extra field
func (t *Transaction) IsSigned() bool {
	return nil == t.checkProofsPresent()
}

func copySignatures(signatures []account.Signature) []account.Signature {
	if 0 == len(signatures) {
		return nil
	}
	c := make([]account.Signature, len(signatures))
	for i, s := range signatures {
		c[i] = append(account.Signature(nil), s...)
	}
	return c
}

func copyOutputs(outputs []*box.RegularData) []*box.RegularData {
	if 0 == len(outputs) {
		return nil
	}
	c := make([]*box.RegularData, len(outputs))
	for i, o := range outputs {
		r := *o
		c[i] = &r
	}
	return c
}

func copyExtra(extra Extra) Extra {
	switch e := extra.(type) {
	case *AssetDeclaration:
		a := *e.Asset
		return &AssetDeclaration{
			Asset: &a,
		}
	case *SellOrderInfo:
		c := *e
		b := *e.AssetBox
		c.AssetBox = &b
		c.Proof = append(account.Signature(nil), e.Proof...)
		return &c
	case *BuyOrderInfo:
		b := *e.SellOrderBox
		p := *e.Proof
		p.Signature = append(account.Signature(nil), e.Proof.Signature...)
		return &BuyOrderInfo{
			SellOrderBox: &b,
			Proof:        &p,
		}
	default:
		return nil
	}
}

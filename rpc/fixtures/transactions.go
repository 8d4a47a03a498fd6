// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

const timestamp = 1547798549470

// fixed keys
var (
	Seller = keyFromSeed(0x71)
	Buyer  = keyFromSeed(0x72)
)

func keyFromSeed(b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return k
}

// Asset - an asset owned by Seller
func Asset() *box.AssetData {
	return &box.AssetData{
		Owner:       Seller.Account(),
		Name:        "Blue Coupe",
		Fingerprint: "VIN:2T1BURHE0JC034461",
		Metadata:    "year\x002018",
	}
}

// Coin - a regular box
func Coin(key *account.PrivateKey, amount int64, nonce int64) *box.Box {
	return box.Materialize(&box.RegularData{
		Owner:  key.Account(),
		Amount: amount,
	}, nonce)
}

// AssetBox - a box holding Asset
func AssetBox() *box.Box {
	return box.Materialize(Asset(), 41)
}

// SellOrderBox - Asset offered to Buyer
func SellOrderBox(price int64) *box.Box {
	return box.Materialize(box.NewSellOrder(Asset(), Buyer.Account(), price), 42)
}

// Declaration - Seller declares Asset from one coin of 100, fee 10
func Declaration() *transactionrecord.Transaction {
	inputs := []*box.Box{Coin(Seller, 100, 1)}
	outputs := []*box.RegularData{{Owner: Seller.Account(), Amount: 90}}
	extra := &transactionrecord.AssetDeclaration{Asset: Asset()}
	return sign(inputs, Seller, outputs, 10, extra, nil)
}

// SellOrder - Seller offers AssetBox to Buyer for 500, fee 5
func SellOrder() *transactionrecord.Transaction {
	inputs := []*box.Box{Coin(Seller, 5, 2)}
	extra := &transactionrecord.SellOrderInfo{
		AssetBox: AssetBox(),
		Price:    500,
		Buyer:    Buyer.Account(),
	}
	return sign(inputs, Seller, nil, 5, extra, Seller)
}

// Settlement - Buyer accepts or Seller cancels SellOrderBox(500), fee 5
func Settlement(isSeller bool) *transactionrecord.Transaction {
	extra := &transactionrecord.BuyOrderInfo{
		SellOrderBox: SellOrderBox(500),
		Proof: &box.SellOrderProof{
			IsSeller: isSeller,
		},
	}
	if isSeller {
		return sign([]*box.Box{Coin(Seller, 5, 3)}, Seller, nil, 5, extra, Seller)
	}
	return sign([]*box.Box{Coin(Buyer, 505, 4)}, Buyer, nil, 5, extra, Buyer)
}

// Info - what the reservoir returns on storing tx
func Info(tx *transactionrecord.Transaction) *reservoir.TransactionInfo {
	packed, err := tx.Pack()
	if nil != err {
		panic(err)
	}
	newBoxes := tx.NewBoxes()
	info := &reservoir.TransactionInfo{
		TxId:     packed.MakeLink(),
		Packed:   packed,
		NewBoxes: make([]box.Identifier, len(newBoxes)),
	}
	for i, b := range newBoxes {
		info.NewBoxes[i] = b.Id
	}
	return info
}

// build unsigned, sign with key, then rebuild
func sign(inputs []*box.Box, key *account.PrivateKey, outputs []*box.RegularData, fee int64, extra transactionrecord.Extra, extraKey *account.PrivateKey) *transactionrecord.Transaction {
	ids := make([]box.Identifier, len(inputs))
	for i, b := range inputs {
		ids[i] = b.Id
	}

	unsigned, err := transactionrecord.New(ids, nil, outputs, fee, timestamp, extra)
	if nil != err {
		panic(err)
	}
	message := unsigned.MessageToSign()

	proofs := make([]account.Signature, len(inputs))
	for i := range inputs {
		proofs[i] = key.Sign(message)
	}

	switch e := extra.(type) {
	case *transactionrecord.SellOrderInfo:
		e.Proof = extraKey.Sign(message)
	case *transactionrecord.BuyOrderInfo:
		e.Proof.Signature = extraKey.Sign(message)
	}

	tx, err := transactionrecord.New(ids, proofs, outputs, fee, timestamp, extra)
	if nil != err {
		panic(err)
	}
	return tx
}

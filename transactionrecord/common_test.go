// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

var (
	ownerKey = keyFromSeed(0x11)
	buyerKey = keyFromSeed(0x22)
	otherKey = keyFromSeed(0x33)
)

const testTimestamp = 1547798549470

func keyFromSeed(b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return k
}

func testAsset() *box.AssetData {
	return &box.AssetData{
		Owner:       ownerKey.Account(),
		Name:        "Red Roadster",
		Fingerprint: "VIN:1HGCM82633A004352",
		Metadata:    "year\x002019\x00colour\x00red",
	}
}

func coin(key *account.PrivateKey, amount int64, nonce int64) *box.Box {
	return box.Materialize(&box.RegularData{
		Owner:  key.Account(),
		Amount: amount,
	}, nonce)
}

func assetBox() *box.Box {
	return box.Materialize(testAsset(), 77)
}

func sellOrderBox(price int64) *box.Box {
	return box.Materialize(box.NewSellOrder(testAsset(), buyerKey.Account(), price), 99)
}

func ids(boxes []*box.Box) []box.Identifier {
	result := make([]box.Identifier, len(boxes))
	for i, b := range boxes {
		result[i] = b.Id
	}
	return result
}

// build unsigned, sign the message with the given keys, then rebuild
func signed(t *testing.T, inputs []*box.Box, keys []*account.PrivateKey, outputs []*box.RegularData, fee int64, extra transactionrecord.Extra, extraKey *account.PrivateKey) *transactionrecord.Transaction {
	unsigned, err := transactionrecord.New(ids(inputs), nil, outputs, fee, testTimestamp, extra)
	if !assert.NoError(t, err, "unsigned") {
		t.FailNow()
	}
	message := unsigned.MessageToSign()

	proofs := make([]account.Signature, len(keys))
	for i, k := range keys {
		proofs[i] = k.Sign(message)
	}

	switch e := extra.(type) {
	case *transactionrecord.SellOrderInfo:
		e.Proof = extraKey.Sign(message)
	case *transactionrecord.BuyOrderInfo:
		e.Proof.Signature = extraKey.Sign(message)
	}

	tx, err := transactionrecord.New(ids(inputs), proofs, outputs, fee, testTimestamp, extra)
	if !assert.NoError(t, err, "signed") {
		t.FailNow()
	}
	return tx
}

func declaration(t *testing.T) *transactionrecord.Transaction {
	inputs := []*box.Box{coin(ownerKey, 100, 1), coin(ownerKey, 50, 2)}
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 140},
	}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	return signed(t, inputs, []*account.PrivateKey{ownerKey, ownerKey}, outputs, 10, extra, nil)
}

func sellOrder(t *testing.T) *transactionrecord.Transaction {
	inputs := []*box.Box{coin(ownerKey, 20, 3)}
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 15},
	}
	extra := &transactionrecord.SellOrderInfo{
		AssetBox: assetBox(),
		Price:    500,
		Buyer:    buyerKey.Account(),
	}
	return signed(t, inputs, []*account.PrivateKey{ownerKey}, outputs, 5, extra, ownerKey)
}

func settlement(t *testing.T, isSeller bool) *transactionrecord.Transaction {
	extra := &transactionrecord.BuyOrderInfo{
		SellOrderBox: sellOrderBox(500),
		Proof: &box.SellOrderProof{
			IsSeller: isSeller,
		},
	}
	if isSeller {
		inputs := []*box.Box{coin(ownerKey, 5, 4)}
		return signed(t, inputs, []*account.PrivateKey{ownerKey}, nil, 5, extra, ownerKey)
	}
	inputs := []*box.Box{coin(buyerKey, 400, 5), coin(buyerKey, 200, 6)}
	outputs := []*box.RegularData{
		{Owner: buyerKey.Account(), Amount: 95},
	}
	return signed(t, inputs, []*account.PrivateKey{buyerKey, buyerKey}, outputs, 5, extra, buyerKey)
}

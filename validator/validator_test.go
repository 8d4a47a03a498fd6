// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/transactionrecord"
	"github.com/bitmark-inc/boxledger/validator"
)

var (
	sellerKey = keyFromSeed(0x51)
	buyerKey  = keyFromSeed(0x52)
	otherKey  = keyFromSeed(0x53)
)

const testTimestamp = 1547798549470

func keyFromSeed(b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return k
}

type fakeState struct {
	boxes map[box.Identifier]*box.Box
	spent map[box.Identifier]bool
}

func newState(boxes ...*box.Box) *fakeState {
	s := &fakeState{
		boxes: make(map[box.Identifier]*box.Box),
		spent: make(map[box.Identifier]bool),
	}
	for _, b := range boxes {
		s.boxes[b.Id] = b
	}
	return s
}

func (s *fakeState) GetUnspentBox(id box.Identifier) (*box.Box, error) {
	if s.spent[id] {
		return nil, fault.BoxAlreadySpent
	}
	b, ok := s.boxes[id]
	if !ok {
		return nil, fault.BoxNotFound
	}
	return b, nil
}

func coin(key *account.PrivateKey, amount int64, nonce int64) *box.Box {
	return box.Materialize(&box.RegularData{
		Owner:  key.Account(),
		Amount: amount,
	}, nonce)
}

func testAsset() *box.AssetData {
	return &box.AssetData{
		Owner:       sellerKey.Account(),
		Name:        "Green Hatchback",
		Fingerprint: "VIN:JH4KA7561PC008269",
		Metadata:    "doors\x005",
	}
}

func ids(boxes []*box.Box) []box.Identifier {
	result := make([]box.Identifier, len(boxes))
	for i, b := range boxes {
		result[i] = b.Id
	}
	return result
}

// inputs are signed by inputKey and the extra field by extraKey
func build(t *testing.T, inputs []*box.Box, inputKey *account.PrivateKey, outputs []*box.RegularData, fee int64, extra transactionrecord.Extra, extraKey *account.PrivateKey) *transactionrecord.Transaction {
	unsigned, err := transactionrecord.New(ids(inputs), nil, outputs, fee, testTimestamp, extra)
	if nil != err {
		t.Fatalf("unsigned error: %s", err)
	}
	message := unsigned.MessageToSign()

	proofs := make([]account.Signature, len(inputs))
	for i := range inputs {
		proofs[i] = inputKey.Sign(message)
	}
	switch e := extra.(type) {
	case *transactionrecord.SellOrderInfo:
		e.Proof = extraKey.Sign(message)
	case *transactionrecord.BuyOrderInfo:
		e.Proof.Signature = extraKey.Sign(message)
	}

	tx, err := transactionrecord.New(ids(inputs), proofs, outputs, fee, testTimestamp, extra)
	if nil != err {
		t.Fatalf("signed error: %s", err)
	}
	return tx
}

func declare(t *testing.T, inputs []*box.Box, key *account.PrivateKey, change int64) *transactionrecord.Transaction {
	outputs := []*box.RegularData{
		{Owner: sellerKey.Account(), Amount: change},
	}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	return build(t, inputs, key, outputs, 10, extra, nil)
}

func TestVerifyDeclaration(t *testing.T) {
	inputs := []*box.Box{coin(sellerKey, 100, 1), coin(sellerKey, 50, 2)}
	state := newState(inputs...)

	v, err := validator.Verify(state, declare(t, inputs, sellerKey, 140))
	assert.Nil(t, err, "verify")
	if assert.NotNil(t, v, "verified") {
		assert.Equal(t, ids(inputs), ids(v.Inputs), "resolved inputs")
		assert.Nil(t, v.Implicit, "declaration has no implicit box")
	}
}

func TestVerifyFailures(t *testing.T) {
	inputs := []*box.Box{coin(sellerKey, 100, 1), coin(sellerKey, 50, 2)}

	spentState := newState(inputs...)
	spentState.spent[inputs[1].Id] = true

	items := []struct {
		title    string
		state    *fakeState
		tx       *transactionrecord.Transaction
		expected error
	}{
		{"missing box", newState(inputs[0]), declare(t, inputs, sellerKey, 140), fault.BoxNotFound},
		{"spent box", spentState, declare(t, inputs, sellerKey, 140), fault.BoxAlreadySpent},
		{"wrong signer", newState(inputs...), declare(t, inputs, otherKey, 140), fault.ProofInvalid},
		{"too much change", newState(inputs...), declare(t, inputs, sellerKey, 141), fault.ValueImbalance},
		{"too little change", newState(inputs...), declare(t, inputs, sellerKey, 139), fault.ValueImbalance},
	}

	for _, item := range items {
		v, err := validator.Verify(item.state, item.tx)
		assert.Equal(t, item.expected, err, item.title)
		assert.Nil(t, v, item.title)
	}
}

func TestVerifyMissingParameters(t *testing.T) {
	_, err := validator.Verify(newState(), nil)
	assert.Equal(t, fault.MissingParameters, err, "nil transaction")
}

func sellOrderFixture(t *testing.T, signer *account.PrivateKey) (*fakeState, *transactionrecord.Transaction) {
	asset := box.Materialize(testAsset(), 77)
	funding := coin(sellerKey, 20, 3)
	state := newState(asset, funding)

	outputs := []*box.RegularData{
		{Owner: sellerKey.Account(), Amount: 15},
	}
	extra := &transactionrecord.SellOrderInfo{
		AssetBox: asset,
		Price:    500,
		Buyer:    buyerKey.Account(),
	}
	return state, build(t, []*box.Box{funding}, sellerKey, outputs, 5, extra, signer)
}

func TestVerifySellOrder(t *testing.T) {
	state, tx := sellOrderFixture(t, sellerKey)

	v, err := validator.Verify(state, tx)
	assert.Nil(t, err, "verify")
	if assert.NotNil(t, v, "verified") && assert.NotNil(t, v.Implicit, "implicit box") {
		assert.Equal(t, box.AssetTag, v.Implicit.Tag(), "implicit box type")
	}
}

func TestVerifySellOrderNotOwner(t *testing.T) {
	state, tx := sellOrderFixture(t, buyerKey)

	_, err := validator.Verify(state, tx)
	assert.Equal(t, fault.ProofInvalid, err, "buyer signed the asset box")
}

func TestVerifyEmbeddedBoxMismatch(t *testing.T) {
	state, tx := sellOrderFixture(t, sellerKey)

	// same id, different content in state
	extra := tx.Extra().(*transactionrecord.SellOrderInfo)
	changed := testAsset()
	changed.Metadata = "doors\x003"
	state.boxes[extra.AssetBox.Id] = &box.Box{
		Id:    extra.AssetBox.Id,
		Data:  changed,
		Nonce: extra.AssetBox.Nonce,
	}

	_, err := validator.Verify(state, tx)
	assert.Equal(t, fault.ReferencedBoxMismatch, err, "embedded box differs from state")
}

func settlementFixture(t *testing.T, isSeller bool, signer *account.PrivateKey) (*fakeState, *transactionrecord.Transaction) {
	order := box.Materialize(box.NewSellOrder(testAsset(), buyerKey.Account(), 500), 99)
	extra := &transactionrecord.BuyOrderInfo{
		SellOrderBox: order,
		Proof: &box.SellOrderProof{
			IsSeller: isSeller,
		},
	}
	if isSeller {
		funding := coin(sellerKey, 5, 4)
		return newState(order, funding), build(t, []*box.Box{funding}, sellerKey, nil, 5, extra, signer)
	}
	inputs := []*box.Box{coin(buyerKey, 400, 5), coin(buyerKey, 200, 6)}
	outputs := []*box.RegularData{
		{Owner: buyerKey.Account(), Amount: 95},
	}
	return newState(append(inputs, order)...), build(t, inputs, buyerKey, outputs, 5, extra, signer)
}

func TestVerifySettlement(t *testing.T) {
	state, tx := settlementFixture(t, false, buyerKey)
	_, err := validator.Verify(state, tx)
	assert.Nil(t, err, "buyer accepts")

	state, tx = settlementFixture(t, true, sellerKey)
	_, err = validator.Verify(state, tx)
	assert.Nil(t, err, "seller cancels")
}

func TestVerifySettlementWrongRole(t *testing.T) {
	// buyer role claimed with the seller's signature
	state, tx := settlementFixture(t, false, sellerKey)
	_, err := validator.Verify(state, tx)
	assert.Equal(t, fault.ProofInvalid, err, "seller signing as buyer")

	state, tx = settlementFixture(t, true, buyerKey)
	_, err = validator.Verify(state, tx)
	assert.Equal(t, fault.ProofInvalid, err, "buyer signing as seller")
}

func TestVerifySettlementOrderSpent(t *testing.T) {
	state, tx := settlementFixture(t, false, buyerKey)
	extra := tx.Extra().(*transactionrecord.BuyOrderInfo)
	state.spent[extra.SellOrderBox.Id] = true

	_, err := validator.Verify(state, tx)
	assert.Equal(t, fault.BoxAlreadySpent, err, "settled twice")
}

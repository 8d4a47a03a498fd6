// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

func TestNewMissingParameters(t *testing.T) {
	_, err := transactionrecord.New(nil, nil, nil, 0, 0, nil)
	assert.Equal(t, fault.MissingParameters, err, "nil extra")

	_, err = transactionrecord.New(nil, nil, nil, 0, 0, &transactionrecord.AssetDeclaration{})
	assert.Equal(t, fault.MissingParameters, err, "nil asset")

	_, err = transactionrecord.New(nil, nil, nil, 0, 0, &transactionrecord.SellOrderInfo{})
	assert.Equal(t, fault.MissingParameters, err, "nil asset box")

	_, err = transactionrecord.New(nil, nil, nil, 0, 0, &transactionrecord.BuyOrderInfo{SellOrderBox: sellOrderBox(1)})
	assert.Equal(t, fault.MissingParameters, err, "nil role proof")

	outputs := []*box.RegularData{nil}
	_, err = transactionrecord.New(nil, nil, outputs, 0, 0, &transactionrecord.AssetDeclaration{Asset: testAsset()})
	assert.Equal(t, fault.MissingParameters, err, "nil output")
}

func TestAccessorsReturnCopies(t *testing.T) {
	tx := declaration(t)

	inputIds := tx.InputIds()
	inputIds[0][0] ^= 0xff
	assert.NotEqual(t, inputIds[0], tx.InputIds()[0], "input ids")

	proofs := tx.Proofs()
	proofs[0][0] ^= 0xff
	assert.NotEqual(t, proofs[0], tx.Proofs()[0], "proofs")

	outputs := tx.Outputs()
	outputs[0].Amount = 1
	assert.Equal(t, int64(140), tx.Outputs()[0].Amount, "outputs")

	extra := tx.Extra().(*transactionrecord.AssetDeclaration)
	extra.Asset.Name = "changed"
	assert.Equal(t, "Red Roadster", tx.Extra().(*transactionrecord.AssetDeclaration).Asset.Name, "extra")

	boxes := tx.NewBoxes()
	boxes[0].Nonce = 0
	assert.NotEqual(t, int64(0), tx.NewBoxes()[0].Nonce, "new boxes")
}

func TestTags(t *testing.T) {
	assert.Equal(t, transactionrecord.AssetDeclarationTag, declaration(t).Tag())
	assert.Equal(t, transactionrecord.SellOrderTag, sellOrder(t).Tag())
	assert.Equal(t, transactionrecord.BuyOrderTag, settlement(t, true).Tag())
	assert.Equal(t, "buyOrder", transactionrecord.BuyOrderTag.String())
	assert.Equal(t, "unknown", transactionrecord.InvalidTag.String())
}

func TestUnlockers(t *testing.T) {
	tx := sellOrder(t)
	unlockers := tx.Unlockers()
	if !assert.Len(t, unlockers, 2) {
		return
	}
	assert.Equal(t, tx.InputIds()[0], unlockers[0].ClosedBoxId, "regular input")
	assert.Equal(t, assetBox().Id, unlockers[1].ClosedBoxId, "implicit asset box")
	assert.Equal(t, tx.SpentIds(), []box.Identifier{unlockers[0].ClosedBoxId, unlockers[1].ClosedBoxId})

	// declarations have no implicit unlocker
	assert.Len(t, declaration(t).Unlockers(), 2)
}

func TestUnlockersUnsigned(t *testing.T) {
	inputs := []*box.Box{coin(ownerKey, 20, 3), coin(ownerKey, 30, 4)}
	extra := &transactionrecord.BuyOrderInfo{
		SellOrderBox: sellOrderBox(500),
		Proof:        &box.SellOrderProof{IsSeller: true},
	}
	tx, err := transactionrecord.New(ids(inputs), []account.Signature{{1, 2}}, nil, 0, 0, extra)
	assert.NoError(t, err)

	unlockers := tx.Unlockers()
	if !assert.Len(t, unlockers, 2, "zipped to the shorter list") {
		return
	}
	assert.Equal(t, inputs[0].Id, unlockers[0].ClosedBoxId)
	assert.Equal(t, sellOrderBox(500).Id, unlockers[1].ClosedBoxId)
	assert.Len(t, tx.SpentIds(), 3)
}

func TestNewBoxesOrder(t *testing.T) {
	tx := declaration(t)
	boxes := tx.NewBoxes()
	if assert.Len(t, boxes, 2, "declaration") {
		assert.Equal(t, box.RegularTag, boxes[0].Tag())
		assert.Equal(t, box.AssetTag, boxes[1].Tag())
		assert.Equal(t, int64(0), boxes[1].Value())
	}

	tx = sellOrder(t)
	boxes = tx.NewBoxes()
	if assert.Len(t, boxes, 2, "sell order") {
		assert.Equal(t, box.RegularTag, boxes[0].Tag())
		assert.Equal(t, box.SellOrderTag, boxes[1].Tag())
		order := boxes[1].Data.(*box.SellOrderData)
		assert.Equal(t, int64(500), order.Price)
		assert.True(t, buyerKey.Account().Equal(order.Buyer))
	}
}

func TestSettlementRoles(t *testing.T) {
	seller := settlement(t, true).NewBoxes()
	if assert.Len(t, seller, 1, "cancellation") {
		asset := seller[0].Data.(*box.AssetData)
		assert.True(t, ownerKey.Account().Equal(asset.Owner), "asset returned to seller")
	}

	buyer := settlement(t, false).NewBoxes()
	if assert.Len(t, buyer, 3, "acceptance") {
		assert.Equal(t, box.RegularTag, buyer[0].Tag(), "change")
		asset := buyer[1].Data.(*box.AssetData)
		assert.True(t, buyerKey.Account().Equal(asset.Owner), "asset delivered to buyer")
		payment := buyer[2].Data.(*box.RegularData)
		assert.True(t, ownerKey.Account().Equal(payment.Owner), "payment to seller")
		assert.Equal(t, int64(500), payment.Amount)
	}
}

func TestNonceDeterminism(t *testing.T) {
	a := declaration(t).NewBoxes()
	b := declaration(t).NewBoxes()
	assert.Equal(t, a, b, "same transaction gives the same boxes")

	inputs := []*box.Box{coin(ownerKey, 50, 2), coin(ownerKey, 100, 1)}
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 140},
	}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	reordered := signed(t, inputs, []*account.PrivateKey{ownerKey, ownerKey}, outputs, 10, extra, nil).NewBoxes()

	for i := range a {
		assert.NotEqual(t, a[i].Nonce, reordered[i].Nonce, "nonce %d depends on input order", i)
		assert.NotEqual(t, a[i].Id, reordered[i].Id, "id %d depends on input order", i)
	}
	assert.NotEqual(t, a[0].Nonce, a[1].Nonce, "position")
}

func TestOutputOrderChangesBoxes(t *testing.T) {
	inputs := ids([]*box.Box{coin(ownerKey, 100, 1), coin(ownerKey, 50, 2)})
	first := &box.RegularData{Owner: ownerKey.Account(), Amount: 90}
	second := &box.RegularData{Owner: buyerKey.Account(), Amount: 50}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}

	a, err := transactionrecord.New(inputs, nil, []*box.RegularData{first, second}, 10, 0, extra)
	assert.NoError(t, err)
	b, err := transactionrecord.New(inputs, nil, []*box.RegularData{second, first}, 10, 0, extra)
	assert.NoError(t, err)

	boxesA := a.NewBoxes()
	boxesB := b.NewBoxes()
	if !assert.Len(t, boxesB, len(boxesA), "box count") {
		return
	}

	changed := false
	for i := range boxesA {
		if boxesA[i].Id != boxesB[i].Id {
			changed = true
		}
	}
	assert.True(t, changed, "box ids depend on output order")
}

func TestIsSigned(t *testing.T) {
	tx := declaration(t)
	assert.True(t, tx.IsSigned(), "declaration")

	unsigned, err := transactionrecord.New(tx.InputIds(), nil, tx.Outputs(), tx.Fee(), tx.Timestamp(), tx.Extra())
	assert.NoError(t, err)
	assert.False(t, unsigned.IsSigned(), "no proofs")

	partial := tx.Proofs()
	partial[1] = nil
	unsigned, err = transactionrecord.New(tx.InputIds(), partial, tx.Outputs(), tx.Fee(), tx.Timestamp(), tx.Extra())
	assert.NoError(t, err)
	assert.False(t, unsigned.IsSigned(), "missing proof")
}

func TestNewBoxesIndependentOfProofs(t *testing.T) {
	tx := sellOrder(t)
	unsigned, err := transactionrecord.New(tx.InputIds(), nil, tx.Outputs(), tx.Fee(), tx.Timestamp(), tx.Extra())
	assert.NoError(t, err)

	assert.Equal(t, tx.NewBoxes(), unsigned.NewBoxes())
}

func TestSemanticValidity(t *testing.T) {
	assert.True(t, declaration(t).SemanticValidity(), "declaration")
	assert.True(t, sellOrder(t).SemanticValidity(), "sell order")
	assert.True(t, settlement(t, true).SemanticValidity(), "cancel")
	assert.True(t, settlement(t, false).SemanticValidity(), "accept")
}

func TestCheckFailures(t *testing.T) {
	base := declaration(t)
	declare := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	two := []box.Identifier{{1}, {2}}
	twoProofs := []account.Signature{{1}, {2}}
	good := []*box.RegularData{{Owner: ownerKey.Account(), Amount: 1}}

	badAsset := testAsset()
	badAsset.Fingerprint = ""

	tests := []struct {
		name     string
		inputIds []box.Identifier
		proofs   []account.Signature
		outputs  []*box.RegularData
		fee      int64
		time     int64
		extra    transactionrecord.Extra
		expected error
	}{
		{"negative fee", two, twoProofs, good, -1, 0, declare, fault.FeeIsNegative},
		{"negative timestamp", two, twoProofs, good, 0, -1, declare, fault.InvalidTimestamp},
		{"unsigned", two, nil, good, 0, 0, declare, fault.ProofCountMismatch},
		{"empty proof", two, []account.Signature{{1}, {}}, good, 0, 0, declare, fault.MissingProof},
		{"duplicate input", []box.Identifier{{1}, {1}}, twoProofs, good, 0, 0, declare, fault.DuplicateInput},
		{"zero output", two, twoProofs, []*box.RegularData{{Owner: ownerKey.Account(), Amount: 0}}, 0, 0, declare, fault.InvalidAmount},
		{"ownerless output", two, twoProofs, []*box.RegularData{{Amount: 3}}, 0, 0, declare, fault.MissingParameters},
		{"bad asset", two, twoProofs, good, 0, 0, &transactionrecord.AssetDeclaration{Asset: badAsset}, fault.FingerprintTooShort},
		{
			"sell order of a coin", nil, nil, nil, 0, 0,
			&transactionrecord.SellOrderInfo{AssetBox: coin(ownerKey, 1, 1), Proof: account.Signature{1}, Price: 5, Buyer: buyerKey.Account()},
			fault.NotAssetBox,
		},
		{
			"zero price", nil, nil, nil, 0, 0,
			&transactionrecord.SellOrderInfo{AssetBox: assetBox(), Proof: account.Signature{1}, Price: 0, Buyer: buyerKey.Account()},
			fault.InvalidPrice,
		},
		{
			"no buyer", nil, nil, nil, 0, 0,
			&transactionrecord.SellOrderInfo{AssetBox: assetBox(), Proof: account.Signature{1}, Price: 5},
			fault.MissingParameters,
		},
		{
			"unsigned sell order", nil, nil, nil, 0, 0,
			&transactionrecord.SellOrderInfo{AssetBox: assetBox(), Price: 5, Buyer: buyerKey.Account()},
			fault.MissingProof,
		},
		{
			"settle an asset box", nil, nil, nil, 0, 0,
			&transactionrecord.BuyOrderInfo{SellOrderBox: assetBox(), Proof: &box.SellOrderProof{Signature: account.Signature{1}}},
			fault.NotSellOrderBox,
		},
		{
			"unsigned settlement", nil, nil, nil, 0, 0,
			&transactionrecord.BuyOrderInfo{SellOrderBox: sellOrderBox(5), Proof: &box.SellOrderProof{}},
			fault.MissingProof,
		},
		{
			"spend implicit box twice", []box.Identifier{assetBox().Id}, []account.Signature{{1}}, nil, 0, 0,
			&transactionrecord.SellOrderInfo{AssetBox: assetBox(), Proof: account.Signature{1}, Price: 5, Buyer: buyerKey.Account()},
			fault.DuplicateInput,
		},
	}

	for _, test := range tests {
		tx, err := transactionrecord.New(test.inputIds, test.proofs, test.outputs, test.fee, test.time, test.extra)
		if !assert.NoError(t, err, test.name) {
			continue
		}
		assert.Equal(t, test.expected, tx.Check(), test.name)
		assert.False(t, tx.SemanticValidity(), test.name)
	}

	assert.NoError(t, base.Check())
}

func TestCheckOverflow(t *testing.T) {
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 1 << 62},
		{Owner: ownerKey.Account(), Amount: 1 << 62},
	}
	tx, err := transactionrecord.New([]box.Identifier{{1}}, []account.Signature{{1}}, outputs, 0, 0, &transactionrecord.AssetDeclaration{Asset: testAsset()})
	assert.NoError(t, err)
	assert.Equal(t, fault.ValueOverflow, tx.Check())
}

func TestBalance(t *testing.T) {
	inputs := []*box.Box{coin(ownerKey, 100, 1), coin(ownerKey, 50, 2)}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	keys := []*account.PrivateKey{ownerKey, ownerKey}

	for _, change := range []int64{139, 140, 141} {
		outputs := []*box.RegularData{
			{Owner: ownerKey.Account(), Amount: change},
		}
		tx := signed(t, inputs, keys, outputs, 10, extra, nil)
		if 140 == change {
			assert.True(t, tx.BalanceValidity(inputs), "exact")
		} else {
			assert.False(t, tx.BalanceValidity(inputs), "change: %d", change)
			assert.Equal(t, fault.ValueImbalance, tx.CheckBalance(inputs), "change: %d", change)
		}
	}
}

func TestBalanceFee(t *testing.T) {
	inputs := []*box.Box{coin(ownerKey, 100, 1), coin(ownerKey, 50, 2)}
	extra := &transactionrecord.AssetDeclaration{Asset: testAsset()}
	keys := []*account.PrivateKey{ownerKey, ownerKey}
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 140},
	}

	for _, fee := range []int64{9, 11} {
		tx := signed(t, inputs, keys, outputs, fee, extra, nil)
		assert.False(t, tx.BalanceValidity(inputs), "fee: %d", fee)
	}
}

func TestBalanceSettlement(t *testing.T) {
	buyer := settlement(t, false)
	inputs := []*box.Box{coin(buyerKey, 400, 5), coin(buyerKey, 200, 6)}
	assert.NoError(t, buyer.CheckBalance(inputs), "sell order value is not counted")

	seller := settlement(t, true)
	assert.NoError(t, seller.CheckBalance([]*box.Box{coin(ownerKey, 5, 4)}))
}

func TestBalanceInputMismatch(t *testing.T) {
	tx := declaration(t)
	inputs := []*box.Box{coin(ownerKey, 100, 1), coin(ownerKey, 50, 2)}

	assert.Equal(t, fault.InvalidCount, tx.CheckBalance(inputs[:1]), "count")
	assert.Equal(t, fault.ReferencedBoxMismatch, tx.CheckBalance([]*box.Box{inputs[1], inputs[0]}), "order")
	assert.Equal(t, fault.ReferencedBoxMismatch, tx.CheckBalance([]*box.Box{inputs[0], nil}), "nil")

	// an asset box cannot fund a transaction
	asset := assetBox()
	withAsset, err := transactionrecord.New([]box.Identifier{asset.Id}, []account.Signature{{1}}, nil, 0, 0, &transactionrecord.AssetDeclaration{Asset: testAsset()})
	assert.NoError(t, err)
	assert.Equal(t, fault.InvalidBoxType, withAsset.CheckBalance([]*box.Box{asset}))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/boxledger/box"
)

// NewBoxes - the boxes created by this transaction
//
// regular outputs come first in their given order followed by the
// boxes produced by the extra field's output source; each nonce is
// derived from the spent ids and the box position
func (t *Transaction) NewBoxes() []*box.Box {
	t.newBoxesOnce.Do(func() {
		spent := t.SpentIds()

		data := make([]box.Data, 0, len(t.outputs)+2)
		for _, o := range t.outputs {
			data = append(data, o)
		}
		source, context := outputSource(t.extra)
		data = append(data, source.Outputs(context)...)

		boxes := make([]*box.Box, len(data))
		for i, d := range data {
			boxes[i] = box.Materialize(d, box.Nonce(spent, i, d.Proposition()))
		}
		t.newBoxes = boxes
	})

	boxes := make([]*box.Box, len(t.newBoxes))
	for i, b := range t.newBoxes {
		c := *b
		boxes[i] = &c
	}
	return boxes
}

func outputSource(extra Extra) (box.Source, box.SourceContext) {
	switch e := extra.(type) {

	case *AssetDeclaration:
		return box.DeclarationSource, box.SourceContext{
			Asset: e.Asset,
		}

	case *SellOrderInfo:
		asset, ok := e.AssetBox.Data.(*box.AssetData)
		if !ok {
			return box.NoSource, box.SourceContext{}
		}
		return box.SellOrderSource, box.SourceContext{
			Asset: asset,
			Buyer: e.Buyer,
			Price: e.Price,
		}

	case *BuyOrderInfo:
		order, ok := e.SellOrderBox.Data.(*box.SellOrderData)
		if !ok {
			return box.NoSource, box.SourceContext{}
		}
		return box.SettlementSource, box.SourceContext{
			SellOrder: order,
			IsSeller:  e.Proof.IsSeller,
		}

	default:
		return box.NoSource, box.SourceContext{}
	}
}

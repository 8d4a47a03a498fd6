// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"github.com/bitmark-inc/boxledger/account"
)

// Source - selects how an economic action turns into box data
type Source int

// enumerate the output sources
const (
	NoSource          Source = iota
	DeclarationSource        // one asset box
	SellOrderSource          // one sell order box
	SettlementSource         // one asset box, plus a payment box when a buyer settles
)

// SourceContext - everything an output source may need
//
// only the fields relevant to the selected source are read
type SourceContext struct {
	Asset     *AssetData
	Buyer     *account.Account
	Price     int64
	SellOrder *SellOrderData
	IsSeller  bool
}

// Outputs - the ordered box data produced by a source
//
// a pure function of the context; a context missing the data its
// source needs produces nothing
func (s Source) Outputs(c SourceContext) []Data {
	switch s {
	case DeclarationSource:
		if nil == c.Asset {
			return nil
		}
		return []Data{c.Asset}

	case SellOrderSource:
		if nil == c.Asset {
			return nil
		}
		return []Data{NewSellOrder(c.Asset, c.Buyer, c.Price)}

	case SettlementSource:
		return Settlement(c.SellOrder, c.IsSeller)

	default:
		return nil
	}
}

// Settlement - outputs of spending a sell order
//
// the seller cancelling gets the asset back; a buyer accepting gets
// the asset and the seller is paid the asking price
func Settlement(order *SellOrderData, isSeller bool) []Data {
	if nil == order {
		return nil
	}
	if isSeller {
		return []Data{
			order.Asset(order.Owner),
		}
	}
	return []Data{
		order.Asset(order.Buyer),
		&RegularData{
			Owner:  order.Owner,
			Amount: order.Price,
		},
	}
}

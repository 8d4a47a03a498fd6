// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/rpc/sellorders"
)

// SellData - asset box offered to a buyer
type SellData struct {
	AssetBox string
	Buyer    string
	Price    int64
	Fee      int64
}

// SettleData - sell order to accept or cancel
type SettleData struct {
	SellOrder string
	Fee       int64
}

// CreateSellOrder - offer an asset box to a buyer
func (client *Client) CreateSellOrder(sellConfig *SellData) (*sellorders.Reply, error) {

	assetBox, err := box.IdentifierFromString(sellConfig.AssetBox)
	if nil != err {
		return nil, err
	}
	buyer, err := account.AccountFromBase58(sellConfig.Buyer)
	if nil != err {
		return nil, err
	}

	createArgs := sellorders.CreateArguments{
		AssetBox: assetBox,
		Buyer:    buyer,
		Price:    sellConfig.Price,
		Fee:      sellConfig.Fee,
	}

	var reply sellorders.Reply
	if err := client.call("SellOrders.Create", &createArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AcceptSellOrder - pay for a sell order as its buyer
func (client *Client) AcceptSellOrder(settleConfig *SettleData) (*sellorders.Reply, error) {
	return client.settle("SellOrders.Accept", settleConfig)
}

// CancelSellOrder - withdraw a sell order as its seller
func (client *Client) CancelSellOrder(settleConfig *SettleData) (*sellorders.Reply, error) {
	return client.settle("SellOrders.Cancel", settleConfig)
}

func (client *Client) settle(method string, settleConfig *SettleData) (*sellorders.Reply, error) {

	sellOrder, err := box.IdentifierFromString(settleConfig.SellOrder)
	if nil != err {
		return nil, err
	}

	settleArgs := sellorders.SettleArguments{
		SellOrder: sellOrder,
		Fee:       settleConfig.Fee,
	}

	var reply sellorders.Reply
	if err := client.call(method, &settleArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

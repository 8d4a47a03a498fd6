// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sellorders

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/mode"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/ratelimit"
	"github.com/bitmark-inc/boxledger/rpc/rpcerror"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

const (
	rateLimitSellOrders = 200
	rateBurstSellOrders = 100
)

// Builder - constructs signed sell order and settlement transactions
type Builder interface {
	CreateSellOrder(assetBoxId box.Identifier, buyer *account.Account, price int64, fee int64) (*transactionrecord.Transaction, error)
	AcceptSellOrder(sellOrderId box.Identifier, fee int64) (*transactionrecord.Transaction, error)
	CancelSellOrder(sellOrderId box.Identifier, fee int64) (*transactionrecord.Transaction, error)
}

// SellOrders - type for the RPC
type SellOrders struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Builder      Builder
	Pool         reservoir.Reservoir
	IsNormalMode func(mode.Mode) bool
}

// New - create the SellOrders RPC
func New(log *logger.L, builder Builder, pool reservoir.Reservoir, isNormalMode func(mode.Mode) bool) *SellOrders {
	return &SellOrders{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitSellOrders, rateBurstSellOrders),
		Builder:      builder,
		Pool:         pool,
		IsNormalMode: isNormalMode,
	}
}

// Reply - results from every sell order RPC
//
// Box is the id of the sell order created, or of the asset box
// produced by a settlement
type Reply struct {
	TxId     merkle.Digest    `json:"txId"`
	Packed   string           `json:"packed"`
	Box      box.Identifier   `json:"box"`
	NewBoxes []box.Identifier `json:"newBoxes"`
}

// CreateArguments - arguments for Create
type CreateArguments struct {
	AssetBox box.Identifier   `json:"assetBox"`
	Buyer    *account.Account `json:"buyer"`
	Price    int64            `json:"price"`
	Fee      int64            `json:"fee"`
}

// Create - offer an asset the node owns to a buyer
func (s *SellOrders) Create(arguments *CreateArguments, reply *Reply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if nil == arguments || nil == arguments.Buyer || nil == arguments.Buyer.AccountInterface {
		return fault.MissingParameters
	}

	s.Log.Infof("SellOrders.Create: asset box: %s  buyer: %s  price: %d", arguments.AssetBox, arguments.Buyer, arguments.Price)

	s.Pool.Lock()
	defer s.Pool.Unlock()

	tx, err := s.Builder.CreateSellOrder(arguments.AssetBox, arguments.Buyer, arguments.Price, arguments.Fee)
	if nil != err {
		return rpcerror.New(rpcerror.DeclareOrSell, "error during sell order creation", err)
	}
	return s.submit(tx, box.SellOrderTag, rpcerror.DeclareOrSell, "error during sell order creation", reply)
}

// SettleArguments - arguments for Accept and Cancel
type SettleArguments struct {
	SellOrder box.Identifier `json:"sellOrder"`
	Fee       int64          `json:"fee"`
}

// Accept - the buyer pays the price and takes the asset
func (s *SellOrders) Accept(arguments *SettleArguments, reply *Reply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	s.Log.Infof("SellOrders.Accept: sell order: %s", arguments.SellOrder)

	s.Pool.Lock()
	defer s.Pool.Unlock()

	tx, err := s.Builder.AcceptSellOrder(arguments.SellOrder, arguments.Fee)
	if nil != err {
		return rpcerror.New(rpcerror.AcceptOrCancel, "error during sell order acceptance", err)
	}
	return s.submit(tx, box.AssetTag, rpcerror.AcceptOrCancel, "error during sell order acceptance", reply)
}

// Cancel - the seller withdraws the offer and recovers the asset
func (s *SellOrders) Cancel(arguments *SettleArguments, reply *Reply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if !s.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	s.Log.Infof("SellOrders.Cancel: sell order: %s", arguments.SellOrder)

	s.Pool.Lock()
	defer s.Pool.Unlock()

	tx, err := s.Builder.CancelSellOrder(arguments.SellOrder, arguments.Fee)
	if nil != err {
		return rpcerror.New(rpcerror.AcceptOrCancel, "error during sell order cancellation", err)
	}
	return s.submit(tx, box.AssetTag, rpcerror.AcceptOrCancel, "error during sell order cancellation", reply)
}

// store the transaction and fill the reply
func (s *SellOrders) submit(tx *transactionrecord.Transaction, tag box.TypeTag, code rpcerror.Code, description string, reply *Reply) error {
	info, err := s.Pool.Store(tx)
	if nil != err {
		return rpcerror.New(code, description, err)
	}

	s.Log.Infof("stored: %s  type: %s", info.TxId, tx.Tag())

	reply.TxId = info.TxId
	reply.Packed = hex.EncodeToString(info.Packed)
	reply.NewBoxes = info.NewBoxes

	for _, b := range tx.NewBoxes() {
		if tag == b.Tag() {
			reply.Box = b.Id
			break
		}
	}
	return nil
}

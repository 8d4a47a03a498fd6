// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builder - construct and sign transactions from the boxes a
// node's wallet controls
//
// construction is two phase: an unsigned transaction is built to
// obtain the message to sign, then every proof is produced and the
// transaction is rebuilt with them
package builder

import (
	"time"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

// State - read access to the unspent boxes of the ledger
type State interface {
	GetUnspentBox(id box.Identifier) (*box.Box, error)
}

// Funding - the boxes a wallet controls, less the excluded ids
type Funding interface {
	BoxesOfType(tag box.TypeTag, exclude []box.Identifier) ([]*box.Box, error)
}

// Signer - holds the secrets for some accounts
//
// Sign returns fault.SecretNotOwned for an account without a secret
type Signer interface {
	Owns(owner *account.Account) bool
	Sign(owner *account.Account, message []byte) (account.Signature, error)
}

// Mempool - ids already claimed by pending transactions
type Mempool interface {
	PendingSpends() []box.Identifier
}

// Builder - creates the signed transactions of each type
type Builder struct {
	state   State
	funding Funding
	signer  Signer
	mempool Mempool
	now     func() time.Time
}

// New - create a builder
func New(state State, funding Funding, signer Signer, mempool Mempool) *Builder {
	return &Builder{
		state:   state,
		funding: funding,
		signer:  signer,
		mempool: mempool,
		now:     time.Now,
	}
}

// DeclareAsset - declare a new asset owned by asset.Owner, paying fee
func (b *Builder) DeclareAsset(asset *box.AssetData, fee int64) (*transactionrecord.Transaction, error) {
	if nil == asset {
		return nil, fault.MissingParameters
	}
	if err := asset.Validate(); nil != err {
		return nil, err
	}
	if fee < 0 {
		return nil, fault.FeeIsNegative
	}

	p, err := b.selectCoins(fee)
	if nil != err {
		return nil, err
	}

	extra := &transactionrecord.AssetDeclaration{
		Asset: asset,
	}
	return b.build(p, fee, extra, nil)
}

// CreateSellOrder - offer the asset in an unspent asset box to buyer
func (b *Builder) CreateSellOrder(assetBoxId box.Identifier, buyer *account.Account, price int64, fee int64) (*transactionrecord.Transaction, error) {
	if nil == buyer || nil == buyer.AccountInterface {
		return nil, fault.MissingParameters
	}
	if price <= 0 {
		return nil, fault.InvalidPrice
	}
	if fee < 0 {
		return nil, fault.FeeIsNegative
	}

	assetBox, err := b.referencedBox(assetBoxId)
	if nil != err {
		return nil, err
	}
	asset, ok := assetBox.Data.(*box.AssetData)
	if !ok {
		return nil, fault.NotAssetBox
	}
	if !b.signer.Owns(asset.Owner) {
		return nil, fault.SecretNotOwned
	}

	p, err := b.selectCoins(fee)
	if nil != err {
		return nil, err
	}

	extra := &transactionrecord.SellOrderInfo{
		AssetBox: assetBox,
		Price:    price,
		Buyer:    buyer,
	}
	sign := func(message []byte) error {
		signature, err := b.signer.Sign(asset.Owner, message)
		extra.Proof = signature
		return err
	}
	return b.build(p, fee, extra, sign)
}

// AcceptSellOrder - the buyer pays the price plus fee and receives the asset
func (b *Builder) AcceptSellOrder(sellOrderId box.Identifier, fee int64) (*transactionrecord.Transaction, error) {
	return b.settle(sellOrderId, fee, false)
}

// CancelSellOrder - the seller pays the fee and the asset returns to them
func (b *Builder) CancelSellOrder(sellOrderId box.Identifier, fee int64) (*transactionrecord.Transaction, error) {
	return b.settle(sellOrderId, fee, true)
}

func (b *Builder) settle(sellOrderId box.Identifier, fee int64, isSeller bool) (*transactionrecord.Transaction, error) {
	if fee < 0 {
		return nil, fault.FeeIsNegative
	}

	orderBox, err := b.referencedBox(sellOrderId)
	if nil != err {
		return nil, err
	}
	order, ok := orderBox.Data.(*box.SellOrderData)
	if !ok {
		return nil, fault.NotSellOrderBox
	}

	signer := order.Buyer
	amount := order.Price + fee
	if isSeller {
		signer = order.Owner
		amount = fee
	}
	if !b.signer.Owns(signer) {
		return nil, fault.SecretNotOwned
	}
	if amount < fee {
		return nil, fault.ValueOverflow
	}

	p, err := b.selectCoins(amount)
	if nil != err {
		return nil, err
	}

	extra := &transactionrecord.BuyOrderInfo{
		SellOrderBox: orderBox,
		Proof: &box.SellOrderProof{
			IsSeller: isSeller,
		},
	}
	sign := func(message []byte) error {
		signature, err := b.signer.Sign(signer, message)
		extra.Proof.Signature = signature
		return err
	}
	return b.build(p, fee, extra, sign)
}

func (b *Builder) referencedBox(id box.Identifier) (*box.Box, error) {
	bx, err := b.state.GetUnspentBox(id)
	if nil != err {
		if fault.IsErrNotFound(err) {
			return nil, fault.ReferencedBoxNotFound
		}
		return nil, err
	}
	return bx, nil
}

// build unsigned, sign the message, then build again with the proofs
func (b *Builder) build(p *payment, fee int64, extra transactionrecord.Extra, signExtra func(message []byte) error) (*transactionrecord.Transaction, error) {
	timestamp := b.now().UnixNano() / int64(time.Millisecond)

	inputIds := make([]box.Identifier, len(p.inputs))
	for i, in := range p.inputs {
		inputIds[i] = in.Id
	}

	unsigned, err := transactionrecord.New(inputIds, nil, p.outputs, fee, timestamp, extra)
	if nil != err {
		return nil, err
	}
	message := unsigned.MessageToSign()

	proofs := make([]account.Signature, len(p.inputs))
	for i, in := range p.inputs {
		owner, ok := in.Proposition().(*account.Account)
		if !ok {
			return nil, fault.InvalidBoxType
		}
		proofs[i], err = b.signer.Sign(owner, message)
		if nil != err {
			return nil, err
		}
	}

	if nil != signExtra {
		if err := signExtra(message); nil != err {
			return nil, err
		}
	}

	tx, err := transactionrecord.New(inputIds, proofs, p.outputs, fee, timestamp, extra)
	if nil != err {
		return nil, err
	}
	if err := tx.Check(); nil != err {
		return nil, err
	}
	return tx, nil
}

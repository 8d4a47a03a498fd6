// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
)

// SemanticValidity - true if every check that needs no ledger access passes
func (t *Transaction) SemanticValidity() bool {
	return nil == t.Check()
}

// Check - the local checks behind SemanticValidity, returning the
// first failure
func (t *Transaction) Check() error {
	if t.fee < 0 {
		return fault.FeeIsNegative
	}
	if t.timestamp < 0 {
		return fault.InvalidTimestamp
	}

	if err := t.checkProofsPresent(); nil != err {
		return err
	}

	seen := make(map[box.Identifier]struct{})
	for _, id := range t.SpentIds() {
		if _, ok := seen[id]; ok {
			return fault.DuplicateInput
		}
		seen[id] = struct{}{}
	}

	for _, o := range t.outputs {
		if err := o.Validate(); nil != err {
			return err
		}
	}

	if err := validateExtra(t.extra); nil != err {
		return err
	}

	total := t.fee
	for _, b := range t.NewBoxes() {
		if !box.IsFungible(b.Data) {
			continue
		}
		if b.Value() > math.MaxInt64-total {
			return fault.ValueOverflow
		}
		total += b.Value()
	}
	return nil
}

// BalanceValidity - true if CheckBalance passes
func (t *Transaction) BalanceValidity(inputs []*box.Box) bool {
	return nil == t.CheckBalance(inputs)
}

// CheckBalance - inputs are the resolved boxes of InputIds in the same
// order; their total must exactly equal the fungible new boxes plus the fee
//
// the boxes spent through the extra field carry no fungible value and
// are not part of inputs
func (t *Transaction) CheckBalance(inputs []*box.Box) error {
	if len(inputs) != len(t.inputIds) {
		return fault.InvalidCount
	}

	in := int64(0)
	for i, b := range inputs {
		if nil == b || b.Id != t.inputIds[i] {
			return fault.ReferencedBoxMismatch
		}
		if box.RegularTag != b.Tag() {
			return fault.InvalidBoxType
		}
		v := b.Value()
		if v < 0 || v > math.MaxInt64-in {
			return fault.ValueOverflow
		}
		in += v
	}

	out := t.fee
	if out < 0 {
		return fault.FeeIsNegative
	}
	for _, b := range t.NewBoxes() {
		if !box.IsFungible(b.Data) {
			continue
		}
		v := b.Value()
		if v < 0 || v > math.MaxInt64-out {
			return fault.ValueOverflow
		}
		out += v
	}

	if in != out {
		return fault.ValueImbalance
	}
	return nil
}

func (t *Transaction) checkProofsPresent() error {
	if len(t.proofs) != len(t.inputIds) {
		return fault.ProofCountMismatch
	}
	for _, p := range t.proofs {
		if 0 == len(p) {
			return fault.MissingProof
		}
	}
	switch e := t.extra.(type) {
	case *SellOrderInfo:
		if 0 == len(e.Proof) {
			return fault.MissingProof
		}
	case *BuyOrderInfo:
		if 0 == len(e.Proof.Signature) {
			return fault.MissingProof
		}
	}
	return nil
}

func validateExtra(extra Extra) error {
	switch e := extra.(type) {

	case *AssetDeclaration:
		return e.Asset.Validate()

	case *SellOrderInfo:
		asset, ok := e.AssetBox.Data.(*box.AssetData)
		if !ok {
			return fault.NotAssetBox
		}
		return box.NewSellOrder(asset, e.Buyer, e.Price).Validate()

	case *BuyOrderInfo:
		order, ok := e.SellOrderBox.Data.(*box.SellOrderData)
		if !ok {
			return fault.NotSellOrderBox
		}
		return order.Validate()

	default:
		return fault.UnknownTransactionType
	}
}

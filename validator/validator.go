// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validator - checks a transaction against the ledger state
//
// local checks are done by the transaction itself; this package adds
// the parts that need the boxes being spent: existence, proofs over
// the signing message and value balance
package validator

import (
	"bytes"

	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

// State - source of unspent boxes
type State interface {
	GetUnspentBox(id box.Identifier) (*box.Box, error)
}

// Verified - the boxes a transaction closes, resolved from state
type Verified struct {
	Inputs   []*box.Box // regular inputs in InputIds order
	Implicit *box.Box   // box spent through the extra field, or nil
}

// Verify - full check of a transaction against state
func Verify(state State, tx *transactionrecord.Transaction) (*Verified, error) {
	if nil == state || nil == tx {
		return nil, fault.MissingParameters
	}

	if err := tx.Check(); nil != err {
		return nil, err
	}

	result := &Verified{}

	inputIds := tx.InputIds()
	result.Inputs = make([]*box.Box, 0, len(inputIds))
	for _, id := range inputIds {
		b, err := state.GetUnspentBox(id)
		if nil != err {
			return nil, err
		}
		result.Inputs = append(result.Inputs, b)
	}

	if embedded := implicitBox(tx.Extra()); nil != embedded {
		b, err := state.GetUnspentBox(embedded.Id)
		if nil != err {
			return nil, err
		}
		if !bytes.Equal(b.Pack(), embedded.Pack()) {
			return nil, fault.ReferencedBoxMismatch
		}
		result.Implicit = b
	}

	// proofs are checked against the stored boxes, not the copies
	// carried inside the transaction
	closed := make(map[box.Identifier]*box.Box, len(result.Inputs)+1)
	for _, b := range result.Inputs {
		closed[b.Id] = b
	}
	if nil != result.Implicit {
		closed[result.Implicit.Id] = result.Implicit
	}

	message := tx.MessageToSign()
	unlockers := tx.Unlockers()
	if len(unlockers) != len(closed) {
		return nil, fault.ProofCountMismatch
	}
	for _, u := range unlockers {
		b, ok := closed[u.ClosedBoxId]
		if !ok {
			return nil, fault.ReferencedBoxMismatch
		}
		if err := box.CheckProof(b.Proposition(), u.Proof, message); nil != err {
			return nil, err
		}
	}

	if err := tx.CheckBalance(result.Inputs); nil != err {
		return nil, err
	}

	return result, nil
}

func implicitBox(extra transactionrecord.Extra) *box.Box {
	switch e := extra.(type) {
	case *transactionrecord.SellOrderInfo:
		return e.AssetBox
	case *transactionrecord.BuyOrderInfo:
		return e.SellOrderBox
	default:
		return nil
	}
}

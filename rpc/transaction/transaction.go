// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/ratelimit"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Ledger - confirmed transactions
type Ledger interface {
	GetTransaction(txId merkle.Digest) (transactionrecord.Packed, error)
}

// Transaction - type for the RPC
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
	Pool    reservoir.Reservoir
}

// New - create the Transaction RPC
func New(log *logger.L, ledger Ledger, pool reservoir.Reservoir) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Ledger:  ledger,
		Pool:    pool,
	}
}

// ---

// DecodeArguments - a hex encoded packed transaction
type DecodeArguments struct {
	Packed string `json:"packed"`
}

// DecodeReply - the transaction in readable form
type DecodeReply struct {
	TxId        merkle.Digest                  `json:"txId"`
	Type        transactionrecord.TagType      `json:"type"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

// Decode - unpack a transaction without reference to any state
func (t *Transaction) Decode(arguments *DecodeArguments, reply *DecodeReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Packed {
		return fault.MissingParameters
	}

	packed, err := hex.DecodeString(arguments.Packed)
	if nil != err {
		return err
	}

	tx, n, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fault.TrailingData
	}

	// the id of the canonical encoding, the one storage records
	txId, err := tx.Id()
	if nil != err {
		return err
	}
	reply.TxId = txId
	reply.Type = tx.Tag()
	reply.Transaction = tx
	return nil
}

// ---

// StatusArguments - arguments for Status and Get
type StatusArguments struct {
	TxId merkle.Digest `json:"txId"`
}

// StatusReply - where a transaction is
type StatusReply struct {
	Status reservoir.TransactionStatus `json:"status"`
}

// Status - pending, confirmed or not found
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	reply.Status = t.Pool.Status(arguments.TxId)
	return nil
}

// GetReply - a transaction and its status
type GetReply struct {
	Status      reservoir.TransactionStatus    `json:"status"`
	Packed      string                         `json:"packed"`
	Transaction *transactionrecord.Transaction `json:"transaction"`
}

// Get - fetch a pending or confirmed transaction
func (t *Transaction) Get(arguments *StatusArguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	tx, status := t.Pool.Get(arguments.TxId)
	switch status {
	case reservoir.StatePending:
		packed, err := tx.Pack()
		if nil != err {
			return err
		}
		reply.Packed = hex.EncodeToString(packed)

	case reservoir.StateConfirmed:
		packed, err := t.Ledger.GetTransaction(arguments.TxId)
		if nil != err {
			return err
		}
		tx, _, err = packed.Unpack()
		if nil != err {
			return err
		}
		reply.Packed = hex.EncodeToString(packed)

	default:
		return fault.TransactionNotFound
	}

	reply.Status = status
	reply.Transaction = tx
	return nil
}

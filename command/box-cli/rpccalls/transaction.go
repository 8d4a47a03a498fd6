// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/transaction"
)

// DecodeReply - decoded transaction kept as the server's JSON
type DecodeReply struct {
	TxId        merkle.Digest   `json:"txId"`
	Type        string          `json:"type"`
	Transaction json.RawMessage `json:"transaction"`
}

// GetReply - a transaction kept as the server's JSON
type GetReply struct {
	Status      reservoir.TransactionStatus `json:"status"`
	Packed      string                      `json:"packed"`
	Transaction json.RawMessage             `json:"transaction"`
}

// Decode - have the node decode a hex packed transaction
func (client *Client) Decode(packed string) (*DecodeReply, error) {

	decodeArgs := transaction.DecodeArguments{
		Packed: packed,
	}

	var reply DecodeReply
	if err := client.call("Transaction.Decode", &decodeArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransactionStatus - perform a status request
func (client *Client) GetTransactionStatus(txId string) (*transaction.StatusReply, error) {

	statusArgs, err := statusArguments(txId)
	if nil != err {
		return nil, err
	}

	var reply transaction.StatusReply
	if err := client.call("Transaction.Status", statusArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetTransaction - fetch a pending or confirmed transaction
func (client *Client) GetTransaction(txId string) (*GetReply, error) {

	getArgs, err := statusArguments(txId)
	if nil != err {
		return nil, err
	}

	var reply GetReply
	if err := client.call("Transaction.Get", getArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func statusArguments(txId string) (*transaction.StatusArguments, error) {
	var id merkle.Digest
	if err := id.UnmarshalText([]byte(txId)); nil != err {
		return nil, err
	}
	return &transaction.StatusArguments{
		TxId: id,
	}, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/rpc/boxes"
)

// OwnedData - account and optional type filter
type OwnedData struct {
	Owner string
	Type  string
	Count int
}

// GetBox - fetch a box by id
func (client *Client) GetBox(id string) (*boxes.GetReply, error) {

	boxId, err := box.IdentifierFromString(id)
	if nil != err {
		return nil, err
	}

	getArgs := boxes.GetArguments{
		Id: boxId,
	}

	var reply boxes.GetReply
	if err := client.call("Boxes.Get", &getArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Owned - list unspent boxes of an account
func (client *Client) Owned(ownedConfig *OwnedData) (*boxes.OwnedReply, error) {

	owner, err := account.AccountFromBase58(ownedConfig.Owner)
	if nil != err {
		return nil, err
	}

	ownedArgs := boxes.OwnedArguments{
		Owner: owner,
		Type:  ownedConfig.Type,
		Count: ownedConfig.Count,
	}

	var reply boxes.OwnedReply
	if err := client.call("Boxes.Owned", &ownedArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

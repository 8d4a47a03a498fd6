// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"strings"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/rpc/assets"
)

// DeclareData - asset to declare
//
// Metadata is "key1=value1,key2=value2"
type DeclareData struct {
	Owner       string
	Name        string
	Fingerprint string
	Metadata    string
	Fee         int64
}

// Declare - ask the node to declare an asset it holds the owner key for
func (client *Client) Declare(declareConfig *DeclareData) (*assets.DeclareReply, error) {

	owner, err := account.AccountFromBase58(declareConfig.Owner)
	if nil != err {
		return nil, err
	}

	metadata, err := splitMetadata(declareConfig.Metadata)
	if nil != err {
		return nil, err
	}

	declareArgs := assets.DeclareArguments{
		Owner:       owner,
		Name:        declareConfig.Name,
		Fingerprint: declareConfig.Fingerprint,
		Metadata:    metadata,
		Fee:         declareConfig.Fee,
	}

	var reply assets.DeclareReply
	if err := client.call("Assets.Declare", &declareArgs, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// "k1=v1,k2=v2" → ["k1", "v1", "k2", "v2"]
func splitMetadata(s string) ([]string, error) {
	if "" == s {
		return []string{}, nil
	}
	pairs := strings.Split(s, ",")
	metadata := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		kv := strings.SplitN(p, "=", 2)
		if 2 != len(kv) || "" == kv[0] {
			return nil, fault.MetadataIsNotMap
		}
		metadata = append(metadata, kv[0], kv[1])
	}
	return metadata, nil
}

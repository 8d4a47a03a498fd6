// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box_test

import (
	"bytes"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
)

var (
	ownerKey = keyFromSeed(0x11)
	buyerKey = keyFromSeed(0x22)
	otherKey = keyFromSeed(0x33)
)

func keyFromSeed(b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return k
}

func testAsset() *box.AssetData {
	return &box.AssetData{
		Owner:       ownerKey.Account(),
		Name:        "Red Roadster",
		Fingerprint: "VIN:1HGCM82633A004352",
		Metadata:    "year\x002019\x00colour\x00red",
	}
}

func testSellOrder() *box.SellOrderData {
	return box.NewSellOrder(testAsset(), buyerKey.Account(), 500)
}

func testIds(n int) []box.Identifier {
	ids := make([]box.Identifier, n)
	for i := range ids {
		ids[i][0] = byte(i + 1)
		ids[i][31] = 0xee
	}
	return ids
}

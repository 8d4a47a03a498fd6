// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxes_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/rpc/boxes"
	"github.com/bitmark-inc/boxledger/rpc/fixtures"
	"github.com/bitmark-inc/boxledger/rpc/mocks"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	p := mocks.NewMockReservoir(ctl)

	coin := fixtures.Coin(fixtures.Seller, 100, 1)

	l.EXPECT().GetUnspentBox(coin.Id).Return(coin, nil).Times(1)
	p.EXPECT().PendingSpends().Return([]box.Identifier{coin.Id}).Times(1)

	b := boxes.New(logger.New(fixtures.LogCategory), l, p)

	var reply boxes.GetReply
	err := b.Get(&boxes.GetArguments{Id: coin.Id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, coin, reply.Box, "wrong box")
	assert.False(t, reply.Spent, "wrong spent")
	assert.True(t, reply.Pending, "wrong pending")
}

func TestGetSpent(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	p := mocks.NewMockReservoir(ctl)

	coin := fixtures.Coin(fixtures.Seller, 100, 1)
	txId := merkle.NewDigest([]byte("spender"))

	l.EXPECT().GetUnspentBox(coin.Id).Return(nil, fault.BoxAlreadySpent).Times(1)
	l.EXPECT().SpentBy(coin.Id).Return(txId, true).Times(1)

	b := boxes.New(logger.New(fixtures.LogCategory), l, p)

	var reply boxes.GetReply
	err := b.Get(&boxes.GetArguments{Id: coin.Id}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Nil(t, reply.Box, "spent box returned")
	assert.True(t, reply.Spent, "wrong spent")
	if assert.NotNil(t, reply.SpentBy, "missing spender") {
		assert.Equal(t, txId, *reply.SpentBy, "wrong spender")
	}
}

func TestGetNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	p := mocks.NewMockReservoir(ctl)

	l.EXPECT().GetUnspentBox(gomock.Any()).Return(nil, fault.BoxNotFound).Times(1)

	b := boxes.New(logger.New(fixtures.LogCategory), l, p)

	var reply boxes.GetReply
	err := b.Get(&boxes.GetArguments{}, &reply)
	assert.Equal(t, fault.BoxNotFound, err, "wrong error")
}

func TestOwned(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	p := mocks.NewMockReservoir(ctl)

	coins := []*box.Box{
		fixtures.Coin(fixtures.Seller, 100, 1),
		fixtures.Coin(fixtures.Seller, 50, 2),
		fixtures.Coin(fixtures.Seller, 25, 3),
	}

	owner := fixtures.Seller.Account()
	l.EXPECT().BoxesOwnedBy(owner, box.RegularTag, nil).Return(coins, nil).Times(1)
	p.EXPECT().PendingSpends().Return([]box.Identifier{coins[1].Id, coins[2].Id}).Times(1)

	b := boxes.New(logger.New(fixtures.LogCategory), l, p)

	args := boxes.OwnedArguments{
		Owner: owner,
		Type:  "regular",
		Count: 2,
	}
	var reply boxes.OwnedReply
	err := b.Owned(&args, &reply)
	assert.Nil(t, err, "wrong Owned")
	assert.Equal(t, coins[:2], reply.Boxes, "wrong boxes")
	assert.Equal(t, []box.Identifier{coins[1].Id}, reply.Pending, "wrong pending")
}

func TestOwnedInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	p := mocks.NewMockReservoir(ctl)

	b := boxes.New(logger.New(fixtures.LogCategory), l, p)

	var reply boxes.OwnedReply

	err := b.Owned(&boxes.OwnedArguments{Count: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing owner")

	err = b.Owned(&boxes.OwnedArguments{Owner: fixtures.Seller.Account(), Count: 0}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	err = b.Owned(&boxes.OwnedArguments{Owner: fixtures.Seller.Account(), Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "oversize count")

	err = b.Owned(&boxes.OwnedArguments{Owner: fixtures.Seller.Account(), Type: "car", Count: 1}, &reply)
	assert.Equal(t, fault.InvalidBoxType, err, "unknown type")
}

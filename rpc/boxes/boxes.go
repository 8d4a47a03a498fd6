// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boxes

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/ratelimit"
)

const (
	rateLimitBoxes = 200
	rateBurstBoxes = 100
	maximumBoxes   = 100
)

// Ledger - confirmed boxes
type Ledger interface {
	GetUnspentBox(id box.Identifier) (*box.Box, error)
	SpentBy(id box.Identifier) (merkle.Digest, bool)
	BoxesOwnedBy(owner *account.Account, tag box.TypeTag, exclude []box.Identifier) ([]*box.Box, error)
}

// Boxes - type for the RPC
type Boxes struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  Ledger
	Pool    reservoir.Reservoir
}

// New - create the Boxes RPC
func New(log *logger.L, ledger Ledger, pool reservoir.Reservoir) *Boxes {
	return &Boxes{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBoxes, rateBurstBoxes),
		Ledger:  ledger,
		Pool:    pool,
	}
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Id box.Identifier `json:"id"`
}

// GetReply - a box and where it stands
//
// a spent box is not returned, only the id of the spending transaction
type GetReply struct {
	Box     *box.Box       `json:"box,omitempty"`
	Spent   bool           `json:"spent"`
	SpentBy *merkle.Digest `json:"spentBy,omitempty"`
	Pending bool           `json:"pending"`
}

// Get - fetch one box
func (b *Boxes) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	b.Log.Debugf("Boxes.Get: %s", arguments.Id)

	bx, err := b.Ledger.GetUnspentBox(arguments.Id)
	if fault.BoxAlreadySpent == err {
		txId, ok := b.Ledger.SpentBy(arguments.Id)
		reply.Spent = true
		if ok {
			reply.SpentBy = &txId
		}
		return nil
	}
	if nil != err {
		return err
	}

	reply.Box = bx
	reply.Pending = claimed(b.Pool.PendingSpends(), arguments.Id)
	return nil
}

// ---

// OwnedArguments - arguments for Owned
//
// Type is a box type name, empty for every type
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
	Type  string           `json:"type"`
	Count int              `json:"count"`
}

// OwnedReply - unspent boxes of an account
type OwnedReply struct {
	Boxes   []*box.Box       `json:"boxes"`
	Pending []box.Identifier `json:"pending"`
}

// Owned - list the unspent boxes whose proposition includes an account
func (b *Boxes) Owned(arguments *OwnedArguments, reply *OwnedReply) error {

	if nil == arguments || nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(b.Limiter, arguments.Count, maximumBoxes); nil != err {
		return err
	}

	tag := box.NullTag
	if "" != arguments.Type {
		t, err := box.TypeTagFromString(arguments.Type)
		if nil != err {
			return err
		}
		tag = t
	}

	b.Log.Debugf("Boxes.Owned: %s  type: %s", arguments.Owner, tag)

	owned, err := b.Ledger.BoxesOwnedBy(arguments.Owner, tag, nil)
	if nil != err {
		return err
	}
	if len(owned) > arguments.Count {
		owned = owned[:arguments.Count]
	}

	pending := b.Pool.PendingSpends()
	reply.Boxes = owned
	reply.Pending = make([]box.Identifier, 0, len(owned))
	for _, bx := range owned {
		if claimed(pending, bx.Id) {
			reply.Pending = append(reply.Pending, bx.Id)
		}
	}
	return nil
}

func claimed(ids []box.Identifier, id box.Identifier) bool {
	for _, c := range ids {
		if c == id {
			return true
		}
	}
	return false
}

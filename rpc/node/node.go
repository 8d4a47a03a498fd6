// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/counter"
	"github.com/bitmark-inc/boxledger/mode"
	"github.com/bitmark-inc/boxledger/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Reservoir - pending transaction counts
type Reservoir interface {
	ReadCounters() (int, int)
}

// Wallet - accounts the node can sign for
type Wallet interface {
	Accounts() []*account.Account
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Pool    Reservoir
	Wallet  Wallet
	counter *counter.Counter
}

// New - create the Node RPC
func New(log *logger.L, pool Reservoir, wallet Wallet, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Pool:    pool,
		Wallet:  wallet,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain               string             `json:"chain"`
	Mode                string             `json:"mode"`
	RPCs                uint64             `json:"rpcs"`
	TransactionCounters Counters           `json:"transactionCounters"`
	Accounts            []*account.Account `json:"accounts"`
	Version             string             `json:"version"`
	Uptime              string             `json:"uptime"`
}

// Counters - transaction counters
type Counters struct {
	Pending int `json:"pending"`
	Claimed int `json:"claimed"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.TransactionCounters.Pending, reply.TransactionCounters.Claimed = node.Pool.ReadCounters()
	reply.Accounts = node.Wallet.Accounts()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

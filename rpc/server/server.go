// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/builder"
	"github.com/bitmark-inc/boxledger/counter"
	"github.com/bitmark-inc/boxledger/mode"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/assets"
	"github.com/bitmark-inc/boxledger/rpc/boxes"
	"github.com/bitmark-inc/boxledger/rpc/node"
	"github.com/bitmark-inc/boxledger/rpc/sellorders"
	"github.com/bitmark-inc/boxledger/rpc/transaction"
)

// Ledger - confirmed state as used by the RPCs
type Ledger interface {
	builder.State
	assets.Ledger
	boxes.Ledger
	transaction.Ledger
}

// Wallet - keys and funds of the node
type Wallet interface {
	builder.Funding
	builder.Signer
	node.Wallet
}

// Create - an rpc server with every service registered
func Create(log *logger.L, version string, ledger Ledger, wallet Wallet, pool reservoir.Reservoir, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	b := builder.New(ledger, wallet, wallet, pool)

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, b, pool, ledger, mode.Is))
	_ = server.Register(sellorders.New(log, b, pool, mode.Is))
	_ = server.Register(boxes.New(log, ledger, pool))
	_ = server.Register(transaction.New(log, ledger, pool))
	_ = server.Register(node.New(log, pool, wallet, start, version, rpcCount))

	return server
}

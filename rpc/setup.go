// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/counter"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/certificate"
	"github.com/bitmark-inc/boxledger/rpc/handler"
	"github.com/bitmark-inc/boxledger/rpc/listeners"
	"github.com/bitmark-inc/boxledger/rpc/node"
	"github.com/bitmark-inc/boxledger/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpsConfiguration *listeners.HTTPSConfiguration,
	version string,
	ledger server.Ledger,
	wallet server.Wallet,
	pool reservoir.Reservoir,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	s := server.Create(log, version, ledger, wallet, pool, &connectionCountRPC)

	tlsConfig, fingerprint, err := certificate.Get(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsConfiguration && 0 != len(httpsConfiguration.Listen) {
		httpsListener, err := startHTTPS(httpsConfiguration, log, s, version, wallet, pool)
		if nil != err {
			_ = rpcListener.Close()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	globalData.initialised = true

	return nil
}

func startHTTPS(
	configuration *listeners.HTTPSConfiguration,
	log *logger.L,
	s *rpc.Server,
	version string,
	wallet server.Wallet,
	pool reservoir.Reservoir,
) (listeners.Listener, error) {
	tlsConfig, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	info := node.New(log, pool, wallet, time.Now().UTC(), version, &connectionCountRPC)
	hdlr := handler.New(log, s, info, configuration.MaximumConnections)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		_ = l.Close()
		return nil, err
	}
	return l, nil
}

// Finalise - stop accepting requests
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Errorf("listener close error: %s", err)
		}
	}
	globalData.listeners = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS endpoints serving the RPC server
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/fault"
)

const (
	minConnectionCount = 1
)

// Listener - accept connections until closed
type Listener interface {
	Serve() error
	Close() error
}

// close every listener, returning the first error
func closeAll(listeners []net.Listener) error {
	var first error
	for _, l := range listeners {
		if err := l.Close(); nil != err && nil == first {
			first = err
		}
	}
	return first
}

// determine the network type for each listen address
//
// "*:PORT" is rewritten in place to "[::]:PORT" and listens on both
// tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("empty listen address")
			return nil, fault.InvalidIpAddress
		}
		host, _, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, fault.InvalidIpAddress
		}

		switch {
		case "*" == host:
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			host = "::"
			parsed[i] = "tcp"
		case '[' == listen[0]:
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, err
		}
	}

	return parsed, nil
}

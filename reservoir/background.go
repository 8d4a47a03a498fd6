// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/validator"
)

type committer struct {
	log *logger.L
}

// background process loop
func (state *committer) Run(args interface{}, shutdown <-chan struct{}) {

	state.log = logger.New("committer")
	globalData := args.(*globalDataType)

	globalData.RLock()
	interval := globalData.commitInterval
	globalData.RUnlock()

	state.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(interval):
			n := state.process()
			if n > 0 {
				state.log.Infof("committed: %d", n)
			}
		}
	}
	state.log.Info("stopped")
}

// apply pending transactions in arrival order
func (state *committer) process() int {
	globalData.Lock()
	defer globalData.Unlock()

	return commit(state.log)
}

// Commit - apply everything pending now instead of waiting for the
// committer, returns the count applied
func Commit() int {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0
	}
	return commit(globalData.log)
}

// hold lock before calling
func commit(log *logger.L) int {
	n := 0
	for _, item := range pendingInOrder() {

		// an earlier commit may have changed the boxes this spends
		if _, err := validator.Verify(globalData.ledger, item.tx); nil != err {
			log.Warnf("drop: %s  error: %s", item.txId, err)
			internalDelete(item)
			continue
		}

		txId, err := globalData.ledger.Apply(item.tx)
		if nil != err {
			log.Errorf("apply: %s  error: %s", item.txId, err)
		} else {
			log.Debugf("applied: %s", txId)
			n += 1
		}
		internalDelete(item)
	}
	return n
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/logger"
)

type cleaner struct {
	log *logger.L
}

func (c *cleaner) Run(args interface{}, shutdown <-chan struct{}) {

	c.log = logger.New("expiration")

	ticker := time.NewTicker(cleanupInterval)
	for {
		select {
		case <-ticker.C:
			c.deleteExpiredItems()
		case <-shutdown:
			ticker.Stop()
			return
		}
	}
}

func (c *cleaner) deleteExpiredItems() {
	globalData.Lock()
	n := releaseExpired()
	globalData.Unlock()

	if n > 0 {
		c.log.Infof("released claims: %d", n)
	}
}

// hold lock before calling
// remove claims whose transaction is no longer pending
func releaseExpired() int {
	n := 0
	for id, txId := range globalData.spends {
		if _, ok := globalData.pending.Get(key(txId)); !ok {
			delete(globalData.spends, id)
			n += 1
		}
	}
	for assetId, txId := range globalData.assets {
		if _, ok := globalData.pending.Get(key(txId)); !ok {
			delete(globalData.assets, assetId)
			n += 1
		}
	}
	globalData.pending.DeleteExpired()
	return n
}

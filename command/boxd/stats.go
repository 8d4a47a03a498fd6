// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/reservoir"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use and the size of the pending pool
func memstats(shutdown <-chan struct{}) {

	log := logger.New("memory")

loop:
	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Infof("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		pending, claimed := reservoir.ReadCounters()
		log.Infof("reservoir pending: %d  claimed boxes: %d", pending, claimed)

		select {
		case <-shutdown:
			break loop
		case <-time.After(statsDelay):
		}
	}
}

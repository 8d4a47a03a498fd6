// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"os"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/background"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/transactionrecord"
	"github.com/bitmark-inc/boxledger/validator"
)

const (
	defaultExpiry         = 2 * time.Hour
	defaultCommitInterval = 10 * time.Second
	cleanupInterval       = 5 * time.Minute
)

// Configuration - reservoir settings
//
// durations are Go duration strings, empty selects the default
type Configuration struct {
	Expiry         string `gluamapper:"expiry" json:"expiry"`
	CommitInterval string `gluamapper:"commit_interval" json:"commit_interval"`
	File           string `gluamapper:"file" json:"file"`
}

// Ledger - the confirmed state pending transactions are checked
// against and finally applied to
type Ledger interface {
	validator.State
	TransactionExists(txId merkle.Digest) bool
	AssetDeclared(fingerprint string) bool
	Apply(tx *transactionrecord.Transaction) (merkle.Digest, error)
}

// globals
type globalDataType struct {
	sync.RWMutex

	// held by callers across coin selection and Store
	construct sync.Mutex

	log         *logger.L
	initialised bool
	enabled     bool

	ledger         Ledger
	filename       string
	expiry         time.Duration
	commitInterval time.Duration

	// tx id → *pendingItem, entries expire after expiry
	pending  *cache.Cache
	sequence uint64

	// claims of live pending transactions; an entry whose
	// transaction has expired is stale and is ignored
	spends map[box.Identifier]merkle.Digest
	assets map[box.AssetIdentifier]merkle.Digest

	background *background.T
}

type pendingItem struct {
	txId     merkle.Digest
	tx       *transactionrecord.Transaction
	packed   transactionrecord.Packed
	sequence uint64
}

// gobal storage
var globalData globalDataType

// Initialise - create the pending store and start the committer
func Initialise(configuration *Configuration, ledger Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if nil == configuration || nil == ledger {
		return fault.MissingParameters
	}

	globalData.log = logger.New("reservoir")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	expiry, err := parseDuration(configuration.Expiry, defaultExpiry)
	if nil != err {
		return err
	}
	commitInterval, err := parseDuration(configuration.CommitInterval, defaultCommitInterval)
	if nil != err {
		return err
	}

	globalData.ledger = ledger
	globalData.filename = configuration.File
	globalData.expiry = expiry
	globalData.commitInterval = commitInterval
	globalData.pending = cache.New(expiry, cleanupInterval)
	globalData.sequence = 0
	globalData.spends = make(map[box.Identifier]merkle.Digest)
	globalData.assets = make(map[box.AssetIdentifier]merkle.Digest)

	globalData.initialised = true
	globalData.enabled = true

	if "" != globalData.filename {
		if _, err := os.Stat(globalData.filename); nil == err {
			loadFromFile()
		}
	}

	globalData.log.Info("start background…")

	processes := background.Processes{
		&committer{},
		&cleaner{},
	}
	globalData.background = background.Start(processes, &globalData)

	return nil
}

// Finalise - stop the background processes and save anything still
// pending
func Finalise() error {
	globalData.Lock()
	if !globalData.initialised {
		globalData.Unlock()
		return fault.NotInitialised
	}
	globalData.enabled = false
	bg := globalData.background
	globalData.Unlock()

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// background processes take the lock
	bg.Stop()

	globalData.Lock()
	defer globalData.Unlock()

	if "" != globalData.filename {
		if err := saveToFile(); nil != err {
			globalData.log.Errorf("save to file: %q  error: %s", globalData.filename, err)
		}
	}

	globalData.pending.Flush()
	globalData.spends = nil
	globalData.assets = nil
	globalData.ledger = nil
	globalData.background = nil
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Lock - hold while selecting coins and storing the result so that
// two constructions cannot pick the same boxes
func Lock() {
	globalData.construct.Lock()
}

// Unlock - release the construction lock
func Unlock() {
	globalData.construct.Unlock()
}

// ReadCounters - number of live pending transactions and claimed boxes
func ReadCounters() (int, int) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, 0
	}
	return len(globalData.pending.Items()), len(liveSpends())
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if "" == s {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if nil != err {
		return 0, err
	}
	if d <= 0 {
		return 0, fault.InvalidCount
	}
	return d, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

// Reservoir - the pending store as seen by its clients
type Reservoir interface {
	Store(*transactionrecord.Transaction) (*TransactionInfo, error)
	Get(merkle.Digest) (*transactionrecord.Transaction, TransactionStatus)
	Status(merkle.Digest) TransactionStatus
	PendingSpends() []box.Identifier
	ReadCounters() (int, int)
	Lock()
	Unlock()
}

type reservoir struct{}

// Handle - the package level reservoir as an interface
func Handle() Reservoir {
	return reservoir{}
}

func (reservoir) Store(tx *transactionrecord.Transaction) (*TransactionInfo, error) {
	return Store(tx)
}

func (reservoir) Get(txId merkle.Digest) (*transactionrecord.Transaction, TransactionStatus) {
	return Get(txId)
}

func (reservoir) Status(txId merkle.Digest) TransactionStatus {
	return Status(txId)
}

func (reservoir) PendingSpends() []box.Identifier {
	return PendingSpends()
}

func (reservoir) ReadCounters() (int, int) {
	return ReadCounters()
}

func (reservoir) Lock() {
	Lock()
}

func (reservoir) Unlock() {
	Unlock()
}

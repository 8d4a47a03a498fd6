// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a batch of writes across pools committed atomically
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionData - the single batch over one database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start the batch
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - add a write to the batch
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

// Delete - add a delete to the batch
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

// Get - read including writes pending in the batch
func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

// Has - check including writes pending in the batch
func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

// Commit - write the batch
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard the batch
func (t *TransactionData) Abort() {
	t.access.Abort()
}

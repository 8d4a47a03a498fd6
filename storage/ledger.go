// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

// Ledger - the confirmed box state held in the pools
type Ledger struct {
	sync.Mutex
}

// NewLedger - ledger over the initialised pools
func NewLedger() *Ledger {
	return &Ledger{}
}

// GetUnspentBox - fetch a box that exists and has not been spent
func (l *Ledger) GetUnspentBox(id box.Identifier) (*box.Box, error) {
	if Pool.Spent.Has(id[:]) {
		return nil, fault.BoxAlreadySpent
	}
	packed := Pool.Boxes.Get(id[:])
	if nil == packed {
		return nil, fault.BoxNotFound
	}
	b, err := box.UnpackBox(packed)
	if nil != err {
		return nil, err
	}
	if b.Id != id {
		logger.Criticalf("box: %s stored under id: %s", b.Id, id)
		return nil, fault.ReferencedBoxMismatch
	}
	return b, nil
}

// SpentBy - the transaction that spent a box
func (l *Ledger) SpentBy(id box.Identifier) (merkle.Digest, bool) {
	var txId merkle.Digest
	value := Pool.Spent.Get(id[:])
	if nil == value {
		return txId, false
	}
	if err := merkle.DigestFromBytes(&txId, value); nil != err {
		return txId, false
	}
	return txId, true
}

// BoxesOwnedBy - unspent boxes whose proposition includes owner
//
// box.NullTag selects every type; excluded ids are skipped
func (l *Ledger) BoxesOwnedBy(owner *account.Account, tag box.TypeTag, exclude []box.Identifier) ([]*box.Box, error) {
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.MissingParameters
	}

	skip := make(map[box.Identifier]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	ownerBytes := owner.Bytes()
	ids := make([]box.Identifier, 0, 8)
	cursor := Pool.OwnerIndex.NewFetchCursor().Prefix(ownerBytes)
	err := cursor.Map(func(key []byte, value []byte) error {
		if 1 != len(value) || len(key) != len(ownerBytes)+box.IdentifierLength {
			return fault.MalformedEncoding
		}
		if box.NullTag != tag && tag != box.TypeTag(value[0]) {
			return nil
		}
		var id box.Identifier
		copy(id[:], key[len(ownerBytes):])
		if _, ok := skip[id]; !ok {
			ids = append(ids, id)
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	boxes := make([]*box.Box, 0, len(ids))
	for _, id := range ids {
		b, err := l.GetUnspentBox(id)
		if nil != err {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// TransactionExists - true if a transaction is confirmed
func (l *Ledger) TransactionExists(txId merkle.Digest) bool {
	return Pool.Transactions.Has(txId[:])
}

// GetTransaction - packed record of a confirmed transaction
func (l *Ledger) GetTransaction(txId merkle.Digest) (transactionrecord.Packed, error) {
	packed := Pool.Transactions.Get(txId[:])
	if nil == packed {
		return nil, fault.TransactionNotFound
	}
	return transactionrecord.Packed(packed), nil
}

// AssetDeclared - true if an asset with this fingerprint exists
func (l *Ledger) AssetDeclared(fingerprint string) bool {
	assetId := box.NewAssetIdentifier([]byte(fingerprint))
	return Pool.Assets.Has(assetId[:])
}

// Apply - confirm a transaction in one batch
//
// spent boxes are marked with the spending tx id and leave the owner
// index, new boxes are added to it; the caller must already have
// verified the transaction
func (l *Ledger) Apply(tx *transactionrecord.Transaction) (merkle.Digest, error) {
	l.Lock()
	defer l.Unlock()

	packed, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	txId := packed.MakeLink()

	if l.TransactionExists(txId) {
		return txId, fault.TransactionAlreadyExists
	}

	spent := make([]*box.Box, 0, len(tx.SpentIds()))
	for _, id := range tx.SpentIds() {
		b, err := l.GetUnspentBox(id)
		if nil != err {
			return txId, err
		}
		spent = append(spent, b)
	}

	var assetId box.AssetIdentifier
	declaration, isDeclaration := tx.Extra().(*transactionrecord.AssetDeclaration)
	if isDeclaration {
		assetId = declaration.Asset.AssetIdentifier()
		if Pool.Assets.Has(assetId[:]) {
			return txId, fault.AssetAlreadyDeclared
		}
	}

	trx, err := NewDBTransaction()
	if nil != err {
		return txId, err
	}

	for _, b := range spent {
		trx.Put(Pool.Spent, b.Id[:], txId[:])
		for _, key := range ownerKeys(b) {
			trx.Delete(Pool.OwnerIndex, key)
		}
	}

	for _, b := range tx.NewBoxes() {
		trx.Put(Pool.Boxes, b.Id[:], b.Pack())
		for _, key := range ownerKeys(b) {
			trx.Put(Pool.OwnerIndex, key, []byte{byte(b.Tag())})
		}
		if isDeclaration && box.AssetTag == b.Tag() {
			trx.Put(Pool.Assets, assetId[:], b.Id[:])
		}
	}

	trx.Put(Pool.Transactions, txId[:], packed)

	if err := trx.Commit(); nil != err {
		return txId, err
	}
	return txId, nil
}

// owner index keys of a box, one per account in its proposition
func ownerKeys(b *box.Box) [][]byte {
	var accounts []*account.Account
	switch d := b.Data.(type) {
	case *box.RegularData:
		accounts = []*account.Account{d.Owner}
	case *box.AssetData:
		accounts = []*account.Account{d.Owner}
	case *box.SellOrderData:
		accounts = []*account.Account{d.Owner, d.Buyer}
	}

	keys := make([][]byte, 0, len(accounts))
	for _, a := range accounts {
		if nil == a || nil == a.AccountInterface {
			continue
		}
		key := append(a.Bytes(), b.Id[:]...)
		keys = append(keys, key)
	}
	return keys
}

// AddGenesis - add boxes that no transaction created
//
// used once to fund a new ledger; a box that already exists is an error
func (l *Ledger) AddGenesis(boxes []*box.Box) error {
	l.Lock()
	defer l.Unlock()

	for _, b := range boxes {
		if nil == b || nil == b.Data {
			return fault.MissingParameters
		}
		if err := b.Data.Validate(); nil != err {
			return err
		}
		if Pool.Boxes.Has(b.Id[:]) {
			return fault.BoxAlreadyExists
		}
	}

	trx, err := NewDBTransaction()
	if nil != err {
		return err
	}
	for _, b := range boxes {
		trx.Put(Pool.Boxes, b.Id[:], b.Pack())
		for _, key := range ownerKeys(b) {
			trx.Put(Pool.OwnerIndex, key, []byte{byte(b.Tag())})
		}
	}
	return trx.Commit()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sort"

	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/transactionrecord"
	"github.com/bitmark-inc/boxledger/validator"
)

// TransactionInfo - result returned by Store
type TransactionInfo struct {
	TxId     merkle.Digest
	Packed   transactionrecord.Packed
	NewBoxes []box.Identifier
}

// Store - verify a transaction and hold it until it is committed
func Store(tx *transactionrecord.Transaction) (*TransactionInfo, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.enabled {
		return nil, fault.NotAvailableDuringShutdown
	}
	return store(tx)
}

// hold lock before calling
func store(tx *transactionrecord.Transaction) (*TransactionInfo, error) {
	if nil == tx {
		return nil, fault.MissingParameters
	}

	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	txId := packed.MakeLink()

	if _, ok := globalData.pending.Get(key(txId)); ok {
		return nil, fault.TransactionAlreadyExists
	}
	if globalData.ledger.TransactionExists(txId) {
		return nil, fault.TransactionAlreadyExists
	}

	spentIds := tx.SpentIds()
	for _, id := range spentIds {
		if claimedBox(id) {
			return nil, fault.DoubleSpend
		}
	}

	var assetId box.AssetIdentifier
	declaration, isDeclaration := tx.Extra().(*transactionrecord.AssetDeclaration)
	if isDeclaration {
		assetId = declaration.Asset.AssetIdentifier()
		if claimedAsset(assetId) || globalData.ledger.AssetDeclared(declaration.Asset.Fingerprint) {
			return nil, fault.AssetAlreadyDeclared
		}
	}

	if _, err := validator.Verify(globalData.ledger, tx); nil != err {
		return nil, err
	}

	globalData.sequence += 1
	item := &pendingItem{
		txId:     txId,
		tx:       tx,
		packed:   packed,
		sequence: globalData.sequence,
	}
	globalData.pending.Set(key(txId), item, globalData.expiry)

	for _, id := range spentIds {
		globalData.spends[id] = txId
	}
	if isDeclaration {
		globalData.assets[assetId] = txId
	}

	globalData.log.Infof("stored: %s  type: %s", txId, tx.Tag())

	newBoxes := tx.NewBoxes()
	result := &TransactionInfo{
		TxId:     txId,
		Packed:   packed,
		NewBoxes: make([]box.Identifier, len(newBoxes)),
	}
	for i, b := range newBoxes {
		result.NewBoxes[i] = b.Id
	}
	return result, nil
}

// Get - a pending transaction, or the status of a non-pending one
func Get(txId merkle.Digest) (*transactionrecord.Transaction, TransactionStatus) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, StateNotFound
	}
	if obj, ok := globalData.pending.Get(key(txId)); ok {
		return obj.(*pendingItem).tx, StatePending
	}
	if globalData.ledger.TransactionExists(txId) {
		return nil, StateConfirmed
	}
	return nil, StateNotFound
}

// Status - where a transaction is
func Status(txId merkle.Digest) TransactionStatus {
	_, status := Get(txId)
	return status
}

// PendingSpends - every box claimed by a live pending transaction
//
// coin selection must exclude these
func PendingSpends() []box.Identifier {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil
	}
	return liveSpends()
}

// hold lock before calling
func liveSpends() []box.Identifier {
	ids := make([]box.Identifier, 0, len(globalData.spends))
	for id, txId := range globalData.spends {
		if _, ok := globalData.pending.Get(key(txId)); ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		return string(ids[i][:]) < string(ids[j][:])
	})
	return ids
}

// hold lock before calling
func claimedBox(id box.Identifier) bool {
	txId, ok := globalData.spends[id]
	if !ok {
		return false
	}
	_, live := globalData.pending.Get(key(txId))
	return live
}

// hold lock before calling
func claimedAsset(assetId box.AssetIdentifier) bool {
	txId, ok := globalData.assets[assetId]
	if !ok {
		return false
	}
	_, live := globalData.pending.Get(key(txId))
	return live
}

// hold lock before calling
// live pending items in arrival order
func pendingInOrder() []*pendingItem {
	items := globalData.pending.Items()
	result := make([]*pendingItem, 0, len(items))
	for _, obj := range items {
		result = append(result, obj.Object.(*pendingItem))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].sequence < result[j].sequence
	})
	return result
}

// hold lock before calling
// drop a pending transaction and its claims
func internalDelete(item *pendingItem) {
	globalData.pending.Delete(key(item.txId))
	for _, id := range item.tx.SpentIds() {
		if txId, ok := globalData.spends[id]; ok && txId == item.txId {
			delete(globalData.spends, id)
		}
	}
	if declaration, ok := item.tx.Extra().(*transactionrecord.AssetDeclaration); ok {
		assetId := declaration.Asset.AssetIdentifier()
		if txId, ok := globalData.assets[assetId]; ok && txId == item.txId {
			delete(globalData.assets, assetId)
		}
	}
}

func key(txId merkle.Digest) string {
	return string(txId[:])
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/boxledger/box"
)

// Unlocker - pairs a spent box id with the proof that opens it
type Unlocker struct {
	ClosedBoxId box.Identifier `json:"closedBoxId"`
	Proof       box.Proof      `json:"proof"`
}

// Unlockers - regular inputs paired with their proofs followed by the
// unlocker implied by the extra field, if any
//
// input ids without a matching proof are not included
func (t *Transaction) Unlockers() []Unlocker {
	t.unlockersOnce.Do(func() {
		n := len(t.inputIds)
		if len(t.proofs) < n {
			n = len(t.proofs)
		}
		unlockers := make([]Unlocker, 0, n+1)
		for i := 0; i < n; i += 1 {
			unlockers = append(unlockers, Unlocker{
				ClosedBoxId: t.inputIds[i],
				Proof:       t.proofs[i],
			})
		}
		if u := implicitUnlocker(t.extra); nil != u {
			unlockers = append(unlockers, *u)
		}
		t.unlockers = unlockers
	})
	return append([]Unlocker(nil), t.unlockers...)
}

// SpentIds - every box id this transaction closes, in unlocker order
//
// unlike Unlockers this does not depend on proofs, so it is the same
// for the signed and unsigned forms of a transaction
func (t *Transaction) SpentIds() []box.Identifier {
	ids := append([]box.Identifier(nil), t.inputIds...)
	if id, ok := implicitBoxId(t.extra); ok {
		ids = append(ids, id)
	}
	return ids
}

func implicitUnlocker(extra Extra) *Unlocker {
	switch e := extra.(type) {
	case *SellOrderInfo:
		return &Unlocker{
			ClosedBoxId: e.AssetBox.Id,
			Proof:       e.Proof,
		}
	case *BuyOrderInfo:
		return &Unlocker{
			ClosedBoxId: e.SellOrderBox.Id,
			Proof:       e.Proof,
		}
	default:
		return nil
	}
}

func implicitBoxId(extra Extra) (box.Identifier, bool) {
	switch e := extra.(type) {
	case *SellOrderInfo:
		return e.AssetBox.Id, true
	case *BuyOrderInfo:
		return e.SellOrderBox.Id, true
	default:
		return box.Identifier{}, false
	}
}

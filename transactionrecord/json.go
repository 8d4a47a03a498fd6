// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/json"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
)

// MarshalText - types are shown by name
func (tag TagType) MarshalText() ([]byte, error) {
	return []byte(tag.String()), nil
}

// MarshalJSON - show a transaction with its derived new boxes and
// whether every proof is present
func (t *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      TagType             `json:"type"`
		InputIds  []box.Identifier    `json:"inputIds"`
		Proofs    []account.Signature `json:"proofs"`
		Outputs   []*box.RegularData  `json:"outputs"`
		Fee       int64               `json:"fee"`
		Timestamp int64               `json:"timestamp"`
		Extra     Extra               `json:"extra"`
		NewBoxes  []*box.Box          `json:"newBoxes"`
		Signed    bool                `json:"signed"`
	}{
		Type:      t.Tag(),
		InputIds:  t.inputIds,
		Proofs:    t.proofs,
		Outputs:   t.outputs,
		Fee:       t.fee,
		Timestamp: t.timestamp,
		Extra:     t.extra,
		NewBoxes:  t.NewBoxes(),
		Signed:    t.IsSigned(),
	})
}

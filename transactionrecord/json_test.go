// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/transactionrecord"
)

func TestMarshalJSON(t *testing.T) {
	tx := declaration(t)

	buffer, err := json.Marshal(tx)
	if !assert.Nil(t, err, "marshal") {
		return
	}

	var view struct {
		Type     string                   `json:"type"`
		InputIds []string                 `json:"inputIds"`
		Fee      int64                    `json:"fee"`
		Extra    map[string]interface{}   `json:"extra"`
		NewBoxes []map[string]interface{} `json:"newBoxes"`
		Signed   bool                     `json:"signed"`
	}
	err = json.Unmarshal(buffer, &view)
	if !assert.Nil(t, err, "unmarshal") {
		return
	}

	assert.Equal(t, "assetDeclaration", view.Type, "wrong type")
	assert.Equal(t, 2, len(view.InputIds), "wrong input count")
	assert.Equal(t, tx.InputIds()[0].String(), view.InputIds[0], "wrong input id")
	assert.Equal(t, int64(10), view.Fee, "wrong fee")
	assert.True(t, view.Signed, "declaration is signed")
	assert.Contains(t, view.Extra, "asset", "missing asset")

	boxes := tx.NewBoxes()
	if assert.Equal(t, len(boxes), len(view.NewBoxes), "wrong new box count") {
		assert.Equal(t, boxes[0].Id.String(), view.NewBoxes[0]["id"], "wrong box id")
		assert.Equal(t, "asset", view.NewBoxes[1]["type"], "wrong box type")
	}
}

func TestMarshalJSONUnsigned(t *testing.T) {
	tx := declaration(t)
	unsigned, err := transactionrecord.New(tx.InputIds(), nil, tx.Outputs(), tx.Fee(), tx.Timestamp(), tx.Extra())
	if !assert.Nil(t, err, "new") {
		return
	}

	buffer, err := json.Marshal(unsigned)
	if !assert.Nil(t, err, "marshal") {
		return
	}

	var view struct {
		Proofs []string `json:"proofs"`
		Signed bool     `json:"signed"`
	}
	err = json.Unmarshal(buffer, &view)
	if !assert.Nil(t, err, "unmarshal") {
		return
	}
	assert.False(t, view.Signed, "no proofs")
	assert.Empty(t, view.Proofs, "no proofs")
}

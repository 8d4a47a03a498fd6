// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/boxledger/merkle"
)

// MakeLink - create a link (tx id) from a packed record
func (record Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(record)
}

// Id - pack the transaction and return its tx id
func (t *Transaction) Id() (merkle.Digest, error) {
	record, err := t.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return record.MakeLink(), nil
}

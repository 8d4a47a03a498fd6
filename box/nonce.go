// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Nonce - derive the nonce of the output at a position in a transaction
//
//   first 8 bytes (big endian) of BLAKE2b-256(ids ‖ int32(position) ‖ proposition)
//
// where ids are the identifiers of every box the transaction spends,
// in unlocker order
func Nonce(spent []Identifier, position int, proposition Proposition) int64 {
	p := propositionBytes(proposition)

	buffer := make([]byte, 0, len(spent)*IdentifierLength+4+len(p))
	for _, id := range spent {
		buffer = append(buffer, id[:]...)
	}
	var index [4]byte
	binary.BigEndian.PutUint32(index[:], uint32(int32(position)))
	buffer = append(buffer, index[:]...)
	buffer = append(buffer, p...)

	digest := blake2b.Sum256(buffer)
	return int64(binary.BigEndian.Uint64(digest[:8]))
}

// derive the identity of a box from its content
//
//   BLAKE2b-256(int64(nonce) ‖ proposition ‖ tag ‖ BLAKE2b-256(contents))
func identity(d Data, nonce int64) Identifier {
	p := propositionBytes(d.Proposition())
	contentsHash := blake2b.Sum256(d.contents())

	buffer := make([]byte, 8, 8+len(p)+1+len(contentsHash))
	binary.BigEndian.PutUint64(buffer, uint64(nonce))
	buffer = append(buffer, p...)
	buffer = append(buffer, byte(d.Tag()))
	buffer = append(buffer, contentsHash[:]...)

	return Identifier(blake2b.Sum256(buffer))
}

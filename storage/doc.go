// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. box id       = 32 byte blake2b-256 box identity
// 4. txId         = transaction digest as 32 byte SHA3-256(packed record)
// 5. asset index  = fingerprint digest as 64 byte SHA3-512(data)
// 6. owner        = account bytes (key variant ++ public key)
// 7. tag          = box type tag (1 byte)
//
// Boxes:
//
//   B ++ box id                - every box ever created
//                                data: nonce ++ tag ++ packed box data
//   S ++ box id                - boxes already spent
//                                data: txId of the spending transaction
//
// Transactions:
//
//   T ++ txId                  - confirmed transactions
//                                data: packed transaction record
//
// Ownership:
//
//   O ++ owner ++ box id       - unspent boxes whose proposition includes owner
//                                data: tag
//
// Assets:
//
//   A ++ asset index           - declared assets
//                                data: box id of the declaring asset box
//
// Testing:
//   Z ++ key                   - testing data
package storage

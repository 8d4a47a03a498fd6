// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package box - unspent ledger entries
//
// A box is an immutable record locked by a proposition. Before it has
// an identity a box is described by its Data: fungible value
// (RegularData), a declared asset (AssetData) or an offer to sell an
// asset (SellOrderData).  Data becomes a Box once a nonce is assigned:
//
//   nonce = first 8 bytes of BLAKE2b-256(ids ‖ int32(position) ‖ proposition)
//   id    = BLAKE2b-256(nonce ‖ proposition ‖ tag ‖ BLAKE2b-256(contents))
//
// so the identity of every box is a pure function of the transaction
// that created it.
package box

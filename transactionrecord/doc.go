// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - box transactions and their binary form
//
// a transaction spends regular boxes by id, creates regular outputs,
// pays a fee and carries one extra field that selects its type:
//
//   AssetDeclaration - creates an asset box
//   SellOrderInfo    - spends an asset box, creates a sell order box
//   BuyOrderInfo     - spends a sell order box, either returning the
//                      asset to the seller or delivering it to the
//                      buyer together with a payment box
//
// decoding is strict: every length is checked before use and every
// section must be consumed exactly
package transactionrecord

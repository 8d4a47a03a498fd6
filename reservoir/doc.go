// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - storage for pending transactions
//
// a transaction is verified against the confirmed ledger when it is
// stored and then held until the committer applies it to the ledger
// or it expires; while pending it claims every box it spends and, for
// a declaration, its asset identifier
package reservoir

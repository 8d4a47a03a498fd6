// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/boxledger/fault"
)

// IdentifierLength - number of bytes in a box identifier
const IdentifierLength = 32

// Identifier - the type for a box identifier
//
// to get bytes value just use id[:]
type Identifier [IdentifierLength]byte

// String - hex string for use by the fmt package (for %s)
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<box:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - convert a hex text representation to an identifier for use by the format package scan routines
func (id *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(IdentifierLength))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(IdentifierLength) {
		return fault.InvalidIdLength
	}
	var i Identifier
	if _, err := hex.Decode(i[:], s); nil != err {
		return err
	}
	*id = i
	return nil
}

// IdentifierFromBytes - convert and validate a binary byte slice to an identifier
func IdentifierFromBytes(id *Identifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.InvalidIdLength
	}
	copy(id[:], buffer)
	return nil
}

// IdentifierFromString - parse a hex identifier
func IdentifierFromString(s string) (Identifier, error) {
	var id Identifier
	err := id.UnmarshalText([]byte(s))
	return id, err
}

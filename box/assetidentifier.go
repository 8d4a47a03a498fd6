// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/boxledger/fault"
)

// AssetIdentifierLength - bytes in an asset identifier
const AssetIdentifierLength = 64

// AssetIdentifier - the type for an asset identifier
//
// SHA3-512 of the fingerprint: two declarations of the same
// fingerprint describe the same asset
type AssetIdentifier [AssetIdentifierLength]byte

// NewAssetIdentifier - create an asset id from a fingerprint
func NewAssetIdentifier(fingerprint []byte) AssetIdentifier {
	return AssetIdentifier(sha3.Sum512(fingerprint))
}

// String - hex string for use by the fmt package (for %s)
func (assetId AssetIdentifier) String() string {
	return hex.EncodeToString(assetId[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (assetId AssetIdentifier) GoString() string {
	return "<asset:" + hex.EncodeToString(assetId[:]) + ">"
}

// MarshalText - convert assetId to hex text
func (assetId AssetIdentifier) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(AssetIdentifierLength))
	hex.Encode(buffer, assetId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an assetId
func (assetId *AssetIdentifier) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(AssetIdentifierLength) {
		return fault.InvalidIdLength
	}
	var a AssetIdentifier
	if _, err := hex.Decode(a[:], s); nil != err {
		return err
	}
	*assetId = a
	return nil
}

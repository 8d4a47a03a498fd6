// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/fault"
)

// TypeTag - type code for box data
//
// written as a single byte in front of every packed data record
type TypeTag byte

// enumerate the possible box data types
const (
	// null marks beginning of list - not used as a box type
	NullTag = TypeTag(iota)

	RegularTag   = TypeTag(iota) // fungible value
	AssetTag     = TypeTag(iota) // declared asset
	SellOrderTag = TypeTag(iota) // asset offered for a price

	// this item must be last
	InvalidTag = TypeTag(iota)
)

// byte sizes for various fields
const (
	maxNameLength        = 64
	maxMetadataLength    = 2048
	minFingerprintLength = 1
	maxFingerprintLength = 1024
	maxAccountLength     = 64
)

// Data - the template of a box before its nonce is known
//
// the set of implementations is closed: RegularData, AssetData and
// SellOrderData
type Data interface {
	Tag() TypeTag
	Proposition() Proposition
	Value() int64
	Validate() error

	// packed contents without the leading tag
	contents() []byte
}

// RegularData - fungible value owned by an account
type RegularData struct {
	Owner  *account.Account `json:"owner"`
	Amount int64            `json:"amount"`
}

// AssetData - a declared asset owned by an account
type AssetData struct {
	Owner       *account.Account `json:"owner"`
	Name        string           `json:"name"`
	Fingerprint string           `json:"fingerprint"`
	Metadata    string           `json:"metadata"`
}

// SellOrderData - an asset offered to a specific buyer for a price
//
// the asset fields are carried so that settling the order can
// recreate the asset box without a ledger lookup
type SellOrderData struct {
	Owner       *account.Account `json:"owner"`
	Buyer       *account.Account `json:"buyer"`
	Price       int64            `json:"price"`
	Name        string           `json:"name"`
	Fingerprint string           `json:"fingerprint"`
	Metadata    string           `json:"metadata"`
}

// String - readable name of a tag
func (tag TypeTag) String() string {
	switch tag {
	case RegularTag:
		return "regular"
	case AssetTag:
		return "asset"
	case SellOrderTag:
		return "sellOrder"
	default:
		return "unknown"
	}
}

// MarshalText - tags are shown by name
func (tag TypeTag) MarshalText() ([]byte, error) {
	return []byte(tag.String()), nil
}

// UnmarshalText - parse a tag name
func (tag *TypeTag) UnmarshalText(s []byte) error {
	t, err := TypeTagFromString(string(s))
	if nil != err {
		return err
	}
	*tag = t
	return nil
}

// TypeTagFromString - parse a tag name
func TypeTagFromString(s string) (TypeTag, error) {
	for tag := RegularTag; tag < InvalidTag; tag += 1 {
		if tag.String() == s {
			return tag, nil
		}
	}
	return NullTag, fault.InvalidBoxType
}

// RegularData
// -----------

// Tag - box type
func (d *RegularData) Tag() TypeTag {
	return RegularTag
}

// Proposition - the owner
func (d *RegularData) Proposition() Proposition {
	return d.Owner
}

// Value - the amount held
func (d *RegularData) Value() int64 {
	return d.Amount
}

// Validate - owner present and a positive amount
func (d *RegularData) Validate() error {
	if !validAccount(d.Owner) {
		return fault.MissingParameters
	}
	if d.Amount <= 0 {
		return fault.InvalidAmount
	}
	return nil
}

// AssetData
// ---------

// Tag - box type
func (d *AssetData) Tag() TypeTag {
	return AssetTag
}

// Proposition - the owner
func (d *AssetData) Proposition() Proposition {
	return d.Owner
}

// Value - assets carry no fungible value
func (d *AssetData) Value() int64 {
	return 0
}

// Validate - owner present and well formed asset fields
func (d *AssetData) Validate() error {
	if !validAccount(d.Owner) {
		return fault.MissingParameters
	}
	return validateAsset(d.Name, d.Fingerprint, d.Metadata)
}

// AssetIdentifier - identity of the declared asset
func (d *AssetData) AssetIdentifier() AssetIdentifier {
	return NewAssetIdentifier([]byte(d.Fingerprint))
}

// SellOrderData
// -------------

// NewSellOrder - offer an asset to a buyer
func NewSellOrder(asset *AssetData, buyer *account.Account, price int64) *SellOrderData {
	return &SellOrderData{
		Owner:       asset.Owner,
		Buyer:       buyer,
		Price:       price,
		Name:        asset.Name,
		Fingerprint: asset.Fingerprint,
		Metadata:    asset.Metadata,
	}
}

// Tag - box type
func (d *SellOrderData) Tag() TypeTag {
	return SellOrderTag
}

// Proposition - spendable by owner or buyer
func (d *SellOrderData) Proposition() Proposition {
	return &SellOrderProposition{
		Owner: d.Owner,
		Buyer: d.Buyer,
	}
}

// Value - the asking price
//
// this is not fungible value: a sell order box is never counted when
// balancing a transaction
func (d *SellOrderData) Value() int64 {
	return d.Price
}

// Validate - both parties present, positive price and well formed asset fields
func (d *SellOrderData) Validate() error {
	if !validAccount(d.Owner) || !validAccount(d.Buyer) {
		return fault.MissingParameters
	}
	if d.Price <= 0 {
		return fault.InvalidPrice
	}
	return validateAsset(d.Name, d.Fingerprint, d.Metadata)
}

// Asset - the offered asset assigned to a new owner
func (d *SellOrderData) Asset(owner *account.Account) *AssetData {
	return &AssetData{
		Owner:       owner,
		Name:        d.Name,
		Fingerprint: d.Fingerprint,
		Metadata:    d.Metadata,
	}
}

// AssetIdentifier - identity of the offered asset
func (d *SellOrderData) AssetIdentifier() AssetIdentifier {
	return NewAssetIdentifier([]byte(d.Fingerprint))
}

// IsFungible - only regular data takes part in value balance
func IsFungible(d Data) bool {
	_, ok := d.(*RegularData)
	return ok
}

func validAccount(a *account.Account) bool {
	return nil != a && nil != a.AccountInterface && !a.IsZero()
}

// check the asset fields
//
// metadata must be a map:
//   key1 <NUL> value1 <NUL> key2 <NUL> value2 <NUL> … keyN <NUL> valueN
// with no NUL after the last value and no empty key or value
func validateAsset(name string, fingerprint string, metadata string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return fault.NameTooLong
	}

	if utf8.RuneCountInString(fingerprint) < minFingerprintLength {
		return fault.FingerprintTooShort
	}
	if utf8.RuneCountInString(fingerprint) > maxFingerprintLength {
		return fault.FingerprintTooLong
	}

	if utf8.RuneCountInString(metadata) > maxMetadataLength {
		return fault.MetadataTooLong
	}

	if 0 != len(metadata) {
		splitMetadata := strings.Split(metadata, "\u0000")
		if 1 == len(splitMetadata)%2 {
			return fault.MetadataIsNotMap
		}
		for _, v := range splitMetadata {
			if 0 == len(v) {
				return fault.MetadataIsNotMap
			}
		}
	}
	return nil
}

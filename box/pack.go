// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/util"
)

// largest string field accepted by the decoder, the
// individual field limits are applied by Validate
const maxStringLength = 8192

// PackData - tag byte followed by the data fields in struct order
//
// every variable length field is prefixed by Varint64(length) and
// integers are Varint64
func PackData(d Data) []byte {
	return append([]byte{byte(d.Tag())}, d.contents()...)
}

func (d *RegularData) contents() []byte {
	buffer := appendAccount(nil, d.Owner)
	return appendUint64(buffer, uint64(d.Amount))
}

func (d *AssetData) contents() []byte {
	buffer := appendAccount(nil, d.Owner)
	buffer = appendString(buffer, d.Name)
	buffer = appendString(buffer, d.Fingerprint)
	return appendString(buffer, d.Metadata)
}

func (d *SellOrderData) contents() []byte {
	buffer := appendAccount(nil, d.Owner)
	buffer = appendAccount(buffer, d.Buyer)
	buffer = appendUint64(buffer, uint64(d.Price))
	buffer = appendString(buffer, d.Name)
	buffer = appendString(buffer, d.Fingerprint)
	return appendString(buffer, d.Metadata)
}

// UnpackData - turn a packed data record back into Data
//
// the whole buffer must be consumed
func UnpackData(buffer []byte) (Data, error) {
	r := util.NewReader(buffer)

	tag, err := r.Byte()
	if nil != err {
		return nil, err
	}

	var d Data

	switch TypeTag(tag) {

	case RegularTag:
		owner, err := readAccount(r)
		if nil != err {
			return nil, err
		}
		amount, err := r.Varint64()
		if nil != err {
			return nil, err
		}
		d = &RegularData{
			Owner:  owner,
			Amount: int64(amount),
		}

	case AssetTag:
		owner, err := readAccount(r)
		if nil != err {
			return nil, err
		}
		fields, err := readStrings(r, 3)
		if nil != err {
			return nil, err
		}
		d = &AssetData{
			Owner:       owner,
			Name:        fields[0],
			Fingerprint: fields[1],
			Metadata:    fields[2],
		}

	case SellOrderTag:
		owner, err := readAccount(r)
		if nil != err {
			return nil, err
		}
		buyer, err := readAccount(r)
		if nil != err {
			return nil, err
		}
		price, err := r.Varint64()
		if nil != err {
			return nil, err
		}
		fields, err := readStrings(r, 3)
		if nil != err {
			return nil, err
		}
		d = &SellOrderData{
			Owner:       owner,
			Buyer:       buyer,
			Price:       int64(price),
			Name:        fields[0],
			Fingerprint: fields[1],
			Metadata:    fields[2],
		}

	default:
		return nil, fault.InvalidBoxType
	}

	if err := r.Done(); nil != err {
		return nil, err
	}
	return d, nil
}

func readAccount(r *util.Reader) (*account.Account, error) {
	b, err := r.VarBytes(maxAccountLength)
	if nil != err {
		return nil, err
	}
	a, err := account.AccountFromBytes(b)
	if nil != err {
		return nil, fault.CannotDecodeAccount
	}
	return a, nil
}

func readStrings(r *util.Reader, count int) ([]string, error) {
	fields := make([]string, count)
	for i := range fields {
		b, err := r.VarBytes(maxStringLength)
		if nil != err {
			return nil, err
		}
		fields[i] = string(b)
	}
	return fields, nil
}

// append a single string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer []byte, s string) []byte {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length), a missing account
// is written as an empty field
func appendAccount(buffer []byte, a *account.Account) []byte {
	var data []byte
	if nil != a && nil != a.AccountInterface {
		data = a.Bytes()
	}
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, util.ToVarint64(value)...)
}

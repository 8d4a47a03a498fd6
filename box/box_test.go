// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
)

func TestMaterializeIsDeterministic(t *testing.T) {
	d := &box.RegularData{
		Owner:  ownerKey.Account(),
		Amount: 1000,
	}
	b1 := box.Materialize(d, 42)
	b2 := box.Materialize(d, 42)

	assert.Equal(t, b1.Id, b2.Id, "same content gives the same id")
	assert.Equal(t, int64(1000), b1.Value(), "value")
	assert.Equal(t, box.RegularTag, b1.Tag(), "tag")
	assert.Equal(t, ownerKey.Account().Bytes(), b1.Proposition().Bytes(), "proposition")

	b3 := box.Materialize(d, 43)
	assert.NotEqual(t, b1.Id, b3.Id, "nonce changes id")

	d2 := &box.RegularData{
		Owner:  ownerKey.Account(),
		Amount: 1001,
	}
	assert.NotEqual(t, b1.Id, box.Materialize(d2, 42).Id, "value changes id")

	d3 := &box.RegularData{
		Owner:  buyerKey.Account(),
		Amount: 1000,
	}
	assert.NotEqual(t, b1.Id, box.Materialize(d3, 42).Id, "owner changes id")
}

func TestIdentityDependsOnType(t *testing.T) {
	a := testAsset()
	s := testSellOrder()
	assert.NotEqual(t, box.Materialize(a, 7).Id, box.Materialize(s, 7).Id, "type changes id")

	a2 := testAsset()
	a2.Fingerprint = "VIN:OTHER"
	assert.NotEqual(t, box.Materialize(a, 7).Id, box.Materialize(a2, 7).Id, "payload changes id")
}

func TestBoxPackRoundTrip(t *testing.T) {
	items := []box.Data{
		&box.RegularData{Owner: ownerKey.Account(), Amount: 1},
		&box.RegularData{Owner: ownerKey.Account(), Amount: 1 << 62},
		testAsset(),
		&box.AssetData{Owner: ownerKey.Account(), Fingerprint: "x"},
		testSellOrder(),
	}

	for i, d := range items {
		for _, nonce := range []int64{0, 1, -1, 1 << 40} {
			b := box.Materialize(d, nonce)
			packed := b.Pack()

			b2, err := box.UnpackBox(packed)
			if !assert.Nil(t, err, "%d: unpack", i) {
				continue
			}
			assert.Equal(t, b.Id, b2.Id, "%d: id", i)
			assert.Equal(t, b.Nonce, b2.Nonce, "%d: nonce", i)
			assert.Equal(t, packed, b2.Pack(), "%d: repack", i)
		}
	}
}

func TestUnpackBoxTruncated(t *testing.T) {
	packed := box.Materialize(testSellOrder(), 99).Pack()

	for n := 0; n < len(packed); n += 1 {
		_, err := box.UnpackBox(packed[:n])
		assert.True(t, fault.IsErrMalformed(err), "truncated to %d: %v", n, err)
	}

	_, err := box.UnpackBox(append(packed, 0x00))
	assert.Equal(t, fault.TrailingData, err, "trailing byte")
}

func TestUnpackDataInvalidTag(t *testing.T) {
	for _, tag := range []byte{0x00, byte(box.InvalidTag), 0xff} {
		_, err := box.UnpackData([]byte{tag, 0x00})
		assert.Equal(t, fault.InvalidBoxType, err, "tag: %d", tag)
	}
}

func TestUnpackDataBadAccount(t *testing.T) {
	packed := box.PackData(&box.RegularData{Owner: ownerKey.Account(), Amount: 5})
	// corrupt the key variant byte after tag and length
	packed[2] = 0x00
	_, err := box.UnpackData(packed)
	assert.Equal(t, fault.CannotDecodeAccount, err, "bad account")
}

func TestUnpackDataOverlongLength(t *testing.T) {
	packed := box.PackData(&box.RegularData{Owner: ownerKey.Account(), Amount: 5})
	length := packed[1]

	// the account length written with a redundant zero group
	overlong := append([]byte{packed[0], length | 0x80, 0x00}, packed[2:]...)
	_, err := box.UnpackData(overlong)
	assert.Equal(t, fault.NonCanonicalVarint, err, "overlong account length")
	assert.True(t, fault.IsErrMalformed(err), "malformed")

	// amount 5 written as two bytes
	amount := append(append([]byte{}, packed[:len(packed)-1]...), 0x85, 0x00)
	_, err = box.UnpackData(amount)
	assert.Equal(t, fault.NonCanonicalVarint, err, "overlong amount")
}

func TestBoxJSON(t *testing.T) {
	b := box.Materialize(testAsset(), 5)
	buffer, err := json.Marshal(b)
	assert.Nil(t, err, "marshal")

	var m map[string]interface{}
	assert.Nil(t, json.Unmarshal(buffer, &m), "unmarshal")
	assert.Equal(t, b.Id.String(), m["id"], "id")
	assert.Equal(t, "asset", m["type"], "type")
	assert.Equal(t, float64(0), m["value"], "value")
}

func TestBoxJSONDecode(t *testing.T) {
	b := box.Materialize(testAsset(), 5)
	buffer, err := json.Marshal(b)
	assert.Nil(t, err, "marshal")

	var decoded box.Box
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, b.Id, decoded.Id, "id")
	assert.Equal(t, box.AssetTag, decoded.Tag(), "type")
	assert.Equal(t, b.Pack(), decoded.Pack(), "content")

	tampered := strings.Replace(string(buffer), `"nonce":5`, `"nonce":6`, 1)
	err = json.Unmarshal([]byte(tampered), &decoded)
	assert.Equal(t, fault.ReferencedBoxMismatch, err, "tampered nonce")

	err = json.Unmarshal([]byte(`{"type":"car","data":{}}`), &decoded)
	assert.Equal(t, fault.InvalidBoxType, err, "bad type")
}

func TestIdentifierText(t *testing.T) {
	b := box.Materialize(testAsset(), 5)
	id, err := box.IdentifierFromString(b.Id.String())
	assert.Nil(t, err, "parse")
	assert.Equal(t, b.Id, id, "round trip")

	_, err = box.IdentifierFromString("abcd")
	assert.Equal(t, fault.InvalidIdLength, err, "short")

	var id2 box.Identifier
	assert.Equal(t, fault.InvalidIdLength, box.IdentifierFromBytes(&id2, []byte{1}), "short bytes")
}

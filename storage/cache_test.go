// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := c.Get(key)
	assert.False(t, found, "key already exists")

	c.Set(dbPut, key, expected)
	actual, found := c.Get(key)

	assert.True(t, found, "key not found after set")
	assert.Equal(t, expected, actual, "wrong value")
	assert.False(t, c.Deleted(key), "put marked as deleted")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "one", []byte{1})
	c.Set(dbDelete, "two", []byte{})
	c.Clear()

	_, found := c.Get("one")
	assert.False(t, found, "clear left put")
	assert.False(t, c.Deleted("two"), "clear left delete")
}

func TestCacheDeleteOperation(t *testing.T) {
	c := newCache()

	key := "test"
	c.Set(dbPut, key, []byte{'a'})
	c.Set(dbDelete, key, []byte{})

	_, found := c.Get(key)
	assert.False(t, found, "deleted key returned a value")
	assert.True(t, c.Deleted(key), "delete not recorded")
}

func TestCacheDeletedUnknownKey(t *testing.T) {
	c := newCache()
	assert.False(t, c.Deleted("unknown"), "unknown key reported deleted")
}

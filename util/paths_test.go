// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/boxd/log", util.EnsureAbsolute("/data/boxd", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data/boxd", "/var/log/"), "absolute")
	assert.Equal(t, "/data/wallet.db", util.EnsureAbsolute("/data/boxd", "../wallet.db"), "parent")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxledger-util-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	path, err := util.EnsureDirectory(dir, "a/b")
	assert.Nil(t, err, "create")
	assert.Equal(t, filepath.Join(dir, "a", "b"), path, "path")

	info, err := os.Stat(path)
	assert.Nil(t, err, "stat")
	assert.True(t, info.IsDir(), "not a directory")

	assert.False(t, util.EnsureFileExists(path), "directory is not a file")

	file := filepath.Join(path, "x.conf")
	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "write")
	assert.True(t, util.EnsureFileExists(file), "file")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/boxledger/storage"
)

// per test database, set by setup
var (
	testDirectory    string
	databaseFileName string
)

// open a fresh database in its own temporary directory
func setup(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxledger-storage-")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	testDirectory = dir
	databaseFileName = filepath.Join(dir, "ledger.leveldb")

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	if "" != testDirectory {
		os.RemoveAll(testDirectory)
	}
	testDirectory = ""
}

func elements(pairs ...string) []storage.Element {
	output := make([]storage.Element, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		output = append(output, storage.Element{
			Key:   []byte(pairs[i]),
			Value: []byte(pairs[i+1]),
		})
	}
	return output
}

// TestPool leaves these in key order
var expectedElements = elements(
	"key-five", "data-five",
	"key-four", "data-four",
	"key-one", "data-one(NEW)",
	"key-seven", "data-seven",
	"key-six", "data-six",
	"key-three", "data-three",
	"key-two", "data-two",
)

var (
	nonExistentKey = []byte("/nonexistent")
	testKey        = []byte("key-two")
	testData       = "data-two"
)

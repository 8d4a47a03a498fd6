// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir_test

import (
	"bytes"
	"os"
	"path"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/storage"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

const (
	testingDirName = "testing"
	testTimestamp  = 1547798549470
)

var (
	databaseFileName = path.Join(testingDirName, "test.leveldb")
	reservoirFile    = path.Join(testingDirName, "reservoir.cache")

	ownerKey = keyFromSeed(0x61)
	otherKey = keyFromSeed(0x62)
)

// boxes present in the ledger at the start of every test
var genesis = []*box.Box{
	coin(ownerKey, 100, 1),
	coin(ownerKey, 50, 2),
	coin(ownerKey, 100, 3),
	coin(ownerKey, 50, 4),
}

func keyFromSeed(b byte) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		panic(err)
	}
	return k
}

func coin(key *account.PrivateKey, amount int64, nonce int64) *box.Box {
	return box.Materialize(&box.RegularData{
		Owner:  key.Account(),
		Amount: amount,
	}, nonce)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T, configuration *reservoir.Configuration) *storage.Ledger {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	ledger := storage.NewLedger()
	if err := ledger.AddGenesis(genesis); nil != err {
		t.Fatalf("genesis error: %s", err)
	}

	err = reservoir.Initialise(configuration, ledger)
	if nil != err {
		t.Fatalf("reservoir initialise error: %s", err)
	}
	return ledger
}

// post test cleanup
func teardown(t *testing.T) {
	_ = reservoir.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// a declaration of fingerprint paid for by two genesis coins
func declaration(t *testing.T, inputs []*box.Box, key *account.PrivateKey, fingerprint string) *transactionrecord.Transaction {
	outputs := []*box.RegularData{
		{Owner: ownerKey.Account(), Amount: 140},
	}
	extra := &transactionrecord.AssetDeclaration{
		Asset: &box.AssetData{
			Owner:       ownerKey.Account(),
			Name:        "Silver Coupe",
			Fingerprint: fingerprint,
			Metadata:    "seats\x002",
		},
	}

	inputIds := make([]box.Identifier, len(inputs))
	for i, b := range inputs {
		inputIds[i] = b.Id
	}

	unsigned, err := transactionrecord.New(inputIds, nil, outputs, 10, testTimestamp, extra)
	if nil != err {
		t.Fatalf("unsigned error: %s", err)
	}
	message := unsigned.MessageToSign()
	proofs := make([]account.Signature, len(inputs))
	for i := range inputs {
		proofs[i] = key.Sign(message)
	}

	tx, err := transactionrecord.New(inputIds, proofs, outputs, 10, testTimestamp, extra)
	if nil != err {
		t.Fatalf("signed error: %s", err)
	}
	return tx
}

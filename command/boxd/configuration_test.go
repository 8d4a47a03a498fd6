// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/chain"
	"github.com/bitmark-inc/boxledger/fault"
)

func TestGetConfigurationSample(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxd")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	sample, err := ioutil.ReadFile("boxd.conf.sample")
	assert.Nil(t, err, "read sample")

	name := filepath.Join(dir, "boxd.conf")
	err = ioutil.WriteFile(name, sample, 0600)
	assert.Nil(t, err, "write configuration")

	c, err := getConfiguration(name, map[string]string{"chain": "testing"})
	if !assert.Nil(t, err, "getConfiguration") {
		return
	}

	assert.Equal(t, chain.Testing, c.Chain, "chain")
	assert.Equal(t, filepath.Join(dir, "data", chain.Testing+".leveldb"), c.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "wallet.db"), c.Wallet.File, "wallet")
	assert.Equal(t, filepath.Join(dir, "reservoir.cache"), c.Reservoir.File, "reservoir")
	assert.Equal(t, "1h", c.Reservoir.Expiry, "expiry")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, float64(25000000), c.ClientRPC.Bandwidth, "rpc bandwidth")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), c.ClientRPC.Certificate, "rpc certificate")
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, c.HttpsRPC.Allow["details"], "https allow")
	assert.Equal(t, "", c.PidFile, "pid file")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory created")
	assert.True(t, info.IsDir(), "database directory")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "boxd")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	_, err = getConfiguration(filepath.Join(dir, "missing.conf"), nil)
	assert.Equal(t, fault.ConfigurationFileMissing, err, "missing file")

	name := filepath.Join(dir, "bad.conf")
	err = ioutil.WriteFile(name, []byte(`return { data_directory = ".", chain = "mainnet" }`), 0600)
	assert.Nil(t, err, "write configuration")
	_, err = getConfiguration(name, nil)
	assert.NotNil(t, err, "unknown chain")

	err = ioutil.WriteFile(name, []byte(`return { chain = "local" }`), 0600)
	assert.Nil(t, err, "write configuration")
	_, err = getConfiguration(name, nil)
	assert.NotNil(t, err, "no data directory")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/boxledger/configuration"
	"github.com/bitmark-inc/boxledger/fault"
)

type listen struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	ClientRPC     listen            `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const script = `
local M = {}
M.data_directory = "."
M.chain = vars.chain or "local"
M.client_rpc = {
    maximum_connections = 50,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
M.levels = { main = "info", ["DEFAULT"] = "critical" }
return M
`

func writeScript(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	name := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(name, []byte(text), 0600)
	assert.Nil(t, err, "write script")
	return name, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := writeScript(t, script)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, map[string]string{"chain": "testing"})
	assert.Nil(t, err, "parse")
	assert.Equal(t, ".", c.DataDirectory, "data directory")
	assert.Equal(t, "testing", c.Chain, "chain from variables")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, "info", c.Levels["main"], "levels")
}

func TestParseConfigurationFileDefaults(t *testing.T) {
	name, cleanup := writeScript(t, script)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, nil)
	assert.Nil(t, err, "parse")
	assert.Equal(t, "local", c.Chain, "default chain")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	name, cleanup := writeScript(t, "return 42")
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, nil)
	assert.Equal(t, fault.ConfigurationNotTable, err, "not a table")

	err = configuration.ParseConfigurationFile(name, c, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "not a pointer")

	err = configuration.ParseConfigurationFile(filepath.Join(filepath.Dir(name), "missing.conf"), &c, nil)
	assert.NotNil(t, err, "missing file")

	bad, cleanupBad := writeScript(t, "return {")
	defer cleanupBad()
	err = configuration.ParseConfigurationFile(bad, &c, nil)
	assert.NotNil(t, err, "syntax error")
}

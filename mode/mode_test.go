// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/chain"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/mode"
)

const testingDirName = "testing"

func setupLogger(t *testing.T) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	err := logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		t.Fatalf("logger setup failed: %s", err)
	}
}

func teardownLogger() {
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
}

func TestModeLifecycle(t *testing.T) {
	setupLogger(t)
	defer teardownLogger()

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "wrong Initialise")

	assert.Equal(t, fault.AlreadyInitialised, mode.Initialise(chain.Testing), "initialised twice")

	assert.True(t, mode.Is(mode.Starting), "not starting")
	assert.True(t, mode.IsTesting(), "testing chain not testing")
	assert.Equal(t, chain.Testing, mode.ChainName(), "wrong chain")

	mode.Set(mode.Normal)
	assert.True(t, mode.Is(mode.Normal), "not normal")
	assert.Equal(t, "Normal", mode.String(), "wrong mode string")

	assert.Nil(t, mode.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, mode.Finalise(), "finalised twice")
}

func TestModeInvalidChain(t *testing.T) {
	setupLogger(t)
	defer teardownLogger()

	assert.Equal(t, fault.InvalidChain, mode.Initialise("nonsense"), "accepted invalid chain")
}

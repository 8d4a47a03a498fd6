// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/rpc/certificate"
	"github.com/bitmark-inc/boxledger/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.Certificate()
	assert.Nil(t, err, "wrong certificate fixture")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a cert", "not a key")
	assert.NotNil(t, err, "invalid pair accepted")
}

func TestMakeSelfSigned(t *testing.T) {
	dir, err := ioutil.TempDir("", "certificate")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)

	cert := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("test", cert, key, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong MakeSelfSigned")

	_, err = tls.LoadX509KeyPair(cert, key)
	assert.Nil(t, err, "written pair does not load")

	err = certificate.MakeSelfSigned("test", cert, key, nil)
	assert.Equal(t, fault.CertificateFileAlreadyExists, err, "overwrote certificate")

	_ = os.Remove(cert)
	err = certificate.MakeSelfSigned("test", cert, key, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrote key")
}

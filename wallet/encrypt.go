// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/boxledger/fault"
)

const (
	saltLength  = 32
	keyLength   = 32
	nonceLength = 24

	minimumPasswordLength = 8

	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

// known text sealed under the wallet key, to detect a wrong password
var passwordCheck = []byte("boxledger wallet v1")

func makeSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); nil != err {
		return nil, err
	}
	return salt, nil
}

func deriveKey(password string, salt []byte) (*[keyLength]byte, error) {
	if len(password) < minimumPasswordLength {
		return nil, fault.PasswordTooShort
	}
	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, keyLength)
	key := new([keyLength]byte)
	copy(key[:], hash)
	return key, nil
}

// nonce followed by the sealed box
func seal(plaintext []byte, key *[keyLength]byte) ([]byte, error) {
	var nonce [nonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); nil != err {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, key), nil
}

func open(ciphertext []byte, key *[keyLength]byte) ([]byte, error) {
	if len(ciphertext) < nonceLength+secretbox.Overhead {
		return nil, fault.InvalidPassword
	}
	var nonce [nonceLength]byte
	copy(nonce[:], ciphertext[:nonceLength])
	plaintext, ok := secretbox.Open(nil, ciphertext[nonceLength:], &nonce, key)
	if !ok {
		return nil, fault.InvalidPassword
	}
	return plaintext, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - password protected key store
//
// each ed25519 seed is sealed with a key derived from the password and
// stored in a bbolt file keyed by the account bytes; the wallet signs
// for its accounts and lists the boxes they own
package wallet

import (
	"bytes"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
)

var (
	bucketKeys = []byte("keys")
	bucketInfo = []byte("info")

	infoSalt  = []byte("salt")
	infoCheck = []byte("check")
)

// BoxSource - unspent boxes by owner
type BoxSource interface {
	BoxesOwnedBy(owner *account.Account, tag box.TypeTag, exclude []box.Identifier) ([]*box.Box, error)
}

// Wallet - an open key store
type Wallet struct {
	sync.RWMutex
	log  *logger.L
	db   *bolt.DB
	test bool
	key  *[keyLength]byte

	// decrypted keys indexed by account bytes
	keys map[string]*account.PrivateKey

	boxes BoxSource
}

// Open - open or create a wallet file
//
// a new file takes the given password, an existing one must match it
func Open(filename string, password string, test bool, boxes BoxSource) (*Wallet, error) {
	log := logger.New("wallet")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	db, err := bolt.Open(filename, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if nil != err {
		return nil, err
	}

	w := &Wallet{
		log:   log,
		db:    db,
		test:  test,
		keys:  make(map[string]*account.PrivateKey),
		boxes: boxes,
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketKeys, bucketInfo} {
			if _, err := tx.CreateBucketIfNotExists(b); nil != err {
				return err
			}
		}

		info := tx.Bucket(bucketInfo)
		salt := info.Get(infoSalt)
		if nil == salt {
			log.Infof("new wallet: %s", filename)
			salt, err := makeSalt()
			if nil != err {
				return err
			}
			key, err := deriveKey(password, salt)
			if nil != err {
				return err
			}
			check, err := seal(passwordCheck, key)
			if nil != err {
				return err
			}
			if err := info.Put(infoSalt, salt); nil != err {
				return err
			}
			w.key = key
			return info.Put(infoCheck, check)
		}

		key, err := deriveKey(password, salt)
		if nil != err {
			return err
		}
		check, err := open(info.Get(infoCheck), key)
		if nil != err || !bytes.Equal(passwordCheck, check) {
			return fault.InvalidPassword
		}
		w.key = key

		return tx.Bucket(bucketKeys).ForEach(func(k []byte, v []byte) error {
			seed, err := open(v, key)
			if nil != err {
				return err
			}
			privateKey, err := account.PrivateKeyFromSeed(seed, test)
			if nil != err {
				return err
			}
			if !bytes.Equal(k, privateKey.Account().Bytes()) {
				log.Criticalf("key: %x does not match its account", k)
				return fault.CannotDecodePrivateKey
			}
			w.keys[string(k)] = privateKey
			return nil
		})
	})
	if nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("opened: %s  accounts: %d", filename, len(w.keys))
	return w, nil
}

// Close - close the wallet file and forget the keys
func (w *Wallet) Close() error {
	w.Lock()
	defer w.Unlock()

	if nil == w.db {
		return nil
	}
	err := w.db.Close()
	w.db = nil
	w.key = nil
	w.keys = nil
	return err
}

// Generate - create and store a new random key
func (w *Wallet) Generate() (*account.Account, error) {
	privateKey, err := account.NewPrivateKey(w.test)
	if nil != err {
		return nil, err
	}
	return w.store(privateKey)
}

// Import - store an existing key
func (w *Wallet) Import(privateKey *account.PrivateKey) (*account.Account, error) {
	if nil == privateKey || nil == privateKey.PrivateKeyInterface {
		return nil, fault.MissingParameters
	}
	if privateKey.IsTesting() != w.test {
		return nil, fault.WrongNetworkForAccount
	}
	return w.store(privateKey)
}

func (w *Wallet) store(privateKey *account.PrivateKey) (*account.Account, error) {
	w.Lock()
	defer w.Unlock()

	if nil == w.db {
		return nil, fault.WalletIsLocked
	}

	a := privateKey.Account()
	k := a.Bytes()
	if _, ok := w.keys[string(k)]; ok {
		return nil, fault.KeyFileAlreadyExists
	}

	sealed, err := seal(privateKey.Seed(), w.key)
	if nil != err {
		return nil, err
	}
	err = w.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketKeys).Put(k, sealed)
	})
	if nil != err {
		return nil, err
	}

	w.keys[string(k)] = privateKey
	w.log.Infof("added account: %s", a)
	return a, nil
}

// Accounts - every account held, in byte order
func (w *Wallet) Accounts() []*account.Account {
	w.RLock()
	defer w.RUnlock()

	keys := make([]string, 0, len(w.keys))
	for k := range w.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	accounts := make([]*account.Account, len(keys))
	for i, k := range keys {
		accounts[i] = w.keys[k].Account()
	}
	return accounts
}

// Owns - true if the wallet holds the key for an account
func (w *Wallet) Owns(owner *account.Account) bool {
	if nil == owner || nil == owner.AccountInterface {
		return false
	}
	w.RLock()
	defer w.RUnlock()
	_, ok := w.keys[string(owner.Bytes())]
	return ok
}

// Sign - sign a message as owner
func (w *Wallet) Sign(owner *account.Account, message []byte) (account.Signature, error) {
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.SecretNotOwned
	}
	w.RLock()
	privateKey, ok := w.keys[string(owner.Bytes())]
	w.RUnlock()
	if !ok {
		return nil, fault.SecretNotOwned
	}
	return privateKey.Sign(message), nil
}

// BoxesOfType - unspent boxes of every held account
//
// a box visible to two held accounts is returned once
func (w *Wallet) BoxesOfType(tag box.TypeTag, exclude []box.Identifier) ([]*box.Box, error) {
	if nil == w.boxes {
		return nil, fault.DatabaseIsNotSet
	}

	seen := make(map[box.Identifier]struct{})
	result := make([]*box.Box, 0, 16)
	for _, a := range w.Accounts() {
		boxes, err := w.boxes.BoxesOwnedBy(a, tag, exclude)
		if nil != err {
			return nil, err
		}
		for _, b := range boxes {
			if _, ok := seen[b.Id]; ok {
				continue
			}
			seen[b.Id] = struct{}{}
			result = append(result, b)
		}
	}
	return result, nil
}

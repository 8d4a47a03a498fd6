// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/merkle"
	"github.com/bitmark-inc/boxledger/mode"
	"github.com/bitmark-inc/boxledger/reservoir"
	"github.com/bitmark-inc/boxledger/rpc/ratelimit"
	"github.com/bitmark-inc/boxledger/rpc/rpcerror"
	"github.com/bitmark-inc/boxledger/transactionrecord"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Builder - constructs a signed declaration
type Builder interface {
	DeclareAsset(asset *box.AssetData, fee int64) (*transactionrecord.Transaction, error)
}

// Ledger - confirmed declarations
type Ledger interface {
	AssetDeclared(fingerprint string) bool
}

// Assets - type for the RPC
type Assets struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Builder      Builder
	Pool         reservoir.Reservoir
	Ledger       Ledger
	IsNormalMode func(mode.Mode) bool
}

// New - create the Assets RPC
func New(log *logger.L, builder Builder, pool reservoir.Reservoir, ledger Ledger, isNormalMode func(mode.Mode) bool) *Assets {
	return &Assets{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Builder:      builder,
		Pool:         pool,
		Ledger:       ledger,
		IsNormalMode: isNormalMode,
	}
}

// DeclareArguments - arguments for RPC request
//
// metadata is a flat list of key, value pairs
type DeclareArguments struct {
	Owner       *account.Account `json:"owner"`
	Name        string           `json:"name"`
	Fingerprint string           `json:"fingerprint"`
	Metadata    []string         `json:"metadata"`
	Fee         int64            `json:"fee"`
}

// DeclareReply - results from a construction RPC
type DeclareReply struct {
	TxId     merkle.Digest       `json:"txId"`
	Packed   string              `json:"packed"`
	AssetId  box.AssetIdentifier `json:"assetId"`
	NewBoxes []box.Identifier    `json:"newBoxes"`
}

// Declare - build, sign and submit an asset declaration
func (assets *Assets) Declare(arguments *DeclareArguments, reply *DeclareReply) error {

	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return err
	}

	if !assets.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringStartup
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingParameters
	}

	log := assets.Log
	log.Infof("Assets.Declare: name: %q  fingerprint: %q", arguments.Name, arguments.Fingerprint)

	metadata, err := JoinMetadata(arguments.Metadata)
	if nil != err {
		return rpcerror.New(rpcerror.DeclareOrSell, "error during asset declaration", err)
	}

	asset := &box.AssetData{
		Owner:       arguments.Owner,
		Name:        arguments.Name,
		Fingerprint: arguments.Fingerprint,
		Metadata:    metadata,
	}

	assets.Pool.Lock()
	defer assets.Pool.Unlock()

	if assets.Ledger.AssetDeclared(asset.Fingerprint) {
		return rpcerror.New(rpcerror.DeclareOrSell, "error during asset declaration", fault.AssetAlreadyDeclared)
	}

	tx, err := assets.Builder.DeclareAsset(asset, arguments.Fee)
	if nil != err {
		return rpcerror.New(rpcerror.DeclareOrSell, "error during asset declaration", err)
	}

	info, err := assets.Pool.Store(tx)
	if nil != err {
		return rpcerror.New(rpcerror.DeclareOrSell, "error during asset declaration", err)
	}

	log.Infof("declared: %s  tx: %s", asset.AssetIdentifier(), info.TxId)

	reply.TxId = info.TxId
	reply.Packed = hex.EncodeToString(info.Packed)
	reply.AssetId = asset.AssetIdentifier()
	reply.NewBoxes = info.NewBoxes
	return nil
}

// JoinMetadata - key, value pairs to the NUL separated form
func JoinMetadata(pairs []string) (string, error) {
	if 1 == len(pairs)%2 {
		return "", fault.MetadataIsNotMap
	}
	s := ""
	for i, item := range pairs {
		if 0 != i {
			s += "\u0000"
		}
		s += item
	}
	return s, nil
}

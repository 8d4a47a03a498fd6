// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/boxledger/command/box-cli/rpccalls"
	"github.com/bitmark-inc/boxledger/fault"
)

// connect with the settings from the global flags
func connect(c *cli.Context) (*metadata, *rpccalls.Client, error) {
	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return m, client, nil
}

// a required string flag
func checkRequired(c *cli.Context, name string) (string, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}

func runDeclare(c *cli.Context) error {

	owner, err := checkRequired(c, "owner")
	if nil != err {
		return err
	}
	name, err := checkRequired(c, "name")
	if nil != err {
		return err
	}
	fingerprint, err := checkRequired(c, "fingerprint")
	if nil != err {
		return err
	}
	fee := c.Int64("fee")
	if fee < 0 {
		return fault.FeeIsNegative
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Declare(&rpccalls.DeclareData{
		Owner:       owner,
		Name:        name,
		Fingerprint: fingerprint,
		Metadata:    c.String("metadata"),
		Fee:         fee,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSell(c *cli.Context) error {

	assetBox, err := checkRequired(c, "asset")
	if nil != err {
		return err
	}
	buyer, err := checkRequired(c, "buyer")
	if nil != err {
		return err
	}
	price := c.Int64("price")
	if price <= 0 {
		return fault.InvalidPrice
	}
	fee := c.Int64("fee")
	if fee < 0 {
		return fault.FeeIsNegative
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.CreateSellOrder(&rpccalls.SellData{
		AssetBox: assetBox,
		Buyer:    buyer,
		Price:    price,
		Fee:      fee,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAccept(c *cli.Context) error {
	return runSettle(c, true)
}

func runCancel(c *cli.Context) error {
	return runSettle(c, false)
}

func runSettle(c *cli.Context, accept bool) error {

	order, err := checkRequired(c, "order")
	if nil != err {
		return err
	}
	fee := c.Int64("fee")
	if fee < 0 {
		return fault.FeeIsNegative
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	settle := &rpccalls.SettleData{
		SellOrder: order,
		Fee:       fee,
	}

	var response interface{}
	if accept {
		response, err = client.AcceptSellOrder(settle)
	} else {
		response, err = client.CancelSellOrder(settle)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBox(c *cli.Context) error {

	id, err := checkRequired(c, "id")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBox(id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runOwned(c *cli.Context) error {

	owner, err := checkRequired(c, "owner")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Owned(&rpccalls.OwnedData{
		Owner: owner,
		Type:  c.String("type"),
		Count: c.Int("count"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDecode(c *cli.Context) error {

	packed, err := checkRequired(c, "transaction")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Decode(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runStatus(c *cli.Context) error {

	txId, err := checkRequired(c, "txid")
	if nil != err {
		return err
	}

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if c.Bool("full") {
		response, err := client.GetTransaction(txId)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	response, err := client.GetTransactionStatus(txId)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runInfo(c *cli.Context) error {

	m, client, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

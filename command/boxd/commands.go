// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/chain"
	"github.com/bitmark-inc/boxledger/fault"
	"github.com/bitmark-inc/boxledger/rpc/certificate"
	"github.com/bitmark-inc/boxledger/storage"
	"github.com/bitmark-inc/boxledger/wallet"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "generate-identity", "gen", "accounts", "acc", "fund":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  generate-identity          (gen)    - add a new signing key to the wallet\n")
		fmt.Printf("\n")

		fmt.Printf("  accounts                   (acc)    - list wallet accounts and their regular box totals\n")
		fmt.Printf("\n")

		fmt.Printf("  fund AMOUNT [ACCOUNT]               - add a genesis regular box owned by ACCOUNT\n")
		fmt.Printf("                                        (default: first wallet account), not on the live chain\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger and wallet are open so these commands can access and/or
// change them
func processDataCommand(log *logger.L, arguments []string, options *Configuration, ledger *storage.Ledger, w *wallet.Wallet) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "generate-identity", "gen":
		a, err := w.Generate()
		if nil != err {
			exitwithstatus.Message("generate identity error: %s", err)
		}
		log.Infof("generated account: %s", a)
		fmt.Printf("account: %s\n", a)

	case "accounts", "acc":
		for _, a := range w.Accounts() {
			boxes, err := ledger.BoxesOwnedBy(a, box.RegularTag, nil)
			if nil != err {
				exitwithstatus.Message("account: %s  error: %s", a, err)
			}
			total := int64(0)
			for _, b := range boxes {
				total += b.Value()
			}
			fmt.Printf("%s  boxes: %d  amount: %d\n", a, len(boxes), total)
		}

	case "fund":
		if chain.Live == options.Chain {
			exitwithstatus.Message("fund error: %s", fault.GenesisNotAllowed)
		}
		if len(arguments) < 1 {
			exitwithstatus.Message("missing amount argument")
		}
		amount, err := strconv.ParseInt(arguments[0], 10, 64)
		if nil != err || amount <= 0 {
			exitwithstatus.Message("error: invalid amount: %q", arguments[0])
		}

		owner, err := fundingAccount(arguments[1:], w)
		if nil != err {
			exitwithstatus.Message("fund error: %s", err)
		}

		b := box.Materialize(&box.RegularData{
			Owner:  owner,
			Amount: amount,
		}, time.Now().UnixNano())
		if err := ledger.AddGenesis([]*box.Box{b}); nil != err {
			exitwithstatus.Message("fund error: %s", err)
		}
		log.Infof("genesis box: %s  owner: %s  amount: %d", b.Id, owner, amount)
		fmt.Printf("box: %s  owner: %s  amount: %d\n", b.Id, owner, amount)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// the account named on the command line or the first wallet account
func fundingAccount(arguments []string, w *wallet.Wallet) (*account.Account, error) {
	if len(arguments) > 0 {
		return account.AccountFromBase58(arguments[0])
	}
	accounts := w.Accounts()
	if 0 == len(accounts) {
		return nil, fault.SecretNotOwned
	}
	return accounts[0], nil
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

const (
	defaultConnect = "127.0.0.1:2130"
	connectEnv     = "BOX_CLI_CONNECT"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "box-cli"
	app.Usage = "declare, sell and settle assets through a boxd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			EnvVar: connectEnv,
			Usage:  " boxd RPC `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "declare",
			Usage:     "declare a new asset owned by a node account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: "*asset fingerprint `STRING`",
				},
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: " asset metadata `KEY=VALUE,...`",
				},
				cli.Int64Flag{
					Name:  "fee",
					Value: 0,
					Usage: " transaction `FEE`",
				},
			},
			Action: runDeclare,
		},
		{
			Name:      "sell",
			Usage:     "offer an asset box to a buyer for a price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `BOX-ID`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer `ACCOUNT`",
				},
				cli.Int64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*sale `PRICE`",
				},
				cli.Int64Flag{
					Name:  "fee",
					Value: 0,
					Usage: " transaction `FEE`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "accept",
			Usage:     "pay for a sell order and take the asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     settleFlags(),
			Action:    runAccept,
		},
		{
			Name:      "cancel",
			Usage:     "withdraw a sell order and recover the asset",
			ArgsUsage: "\n   (* = required)",
			Flags:     settleFlags(),
			Action:    runCancel,
		},
		{
			Name:      "box",
			Usage:     "show a box by id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*box `ID`",
				},
			},
			Action: runBox,
		},
		{
			Name:      "owned",
			Usage:     "list the unspent boxes of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owning `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " box `TYPE` [regular|asset|sellOrder]",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 20,
					Usage: " maximum boxes to list `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "decode",
			Usage:     "decode a hex packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `TXID`",
				},
				cli.BoolFlag{
					Name:  "full, f",
					Usage: " include the transaction",
				},
			},
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display boxd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display box-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func settleFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "order, o",
			Value: "",
			Usage: "*sell order `BOX-ID`",
		},
		cli.Int64Flag{
			Name:  "fee",
			Value: 0,
			Usage: " transaction `FEE`",
		},
	}
}

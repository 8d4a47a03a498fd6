// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// trace - show one side of an exchange in verbose mode
func (client *Client) trace(method string, direction string, message interface{}) {
	if !client.verbose || nil == client.handle {
		return
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s %s: marshal error: %s\n", method, direction, err)
		return
	}
	fmt.Fprintf(client.handle, "%s %s:\n%s\n", method, direction, b)
}

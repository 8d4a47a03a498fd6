// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcerror - coded errors returned by the construction RPCs
//
// a failure is reported as a code plus a description of the operation,
// with the underlying fault appended as detail
package rpcerror

import (
	"github.com/bitmark-inc/boxledger/fault"
)

// Code - the error class a client can test for
type Code string

// error codes
const (
	NotOwned       Code = "0100" // the node holds no secret for a required account
	DeclareOrSell  Code = "0102" // declaration or sell order construction failed
	AcceptOrCancel Code = "0103" // settlement construction failed
)

// Error - an RPC failure
type Error struct {
	Code        Code   `json:"code"`
	Description string `json:"description"`
	Detail      string `json:"detail,omitempty"`
}

// Error - text form: "code: description: detail"
func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Description
	if "" != e.Detail {
		s += ": " + e.Detail
	}
	return s
}

// New - wrap the error from an operation
//
// a missing secret is always reported as NotOwned, anything else uses
// the code given for the operation
func New(code Code, description string, err error) error {
	if nil == err {
		return nil
	}
	if fault.SecretNotOwned == err {
		return &Error{
			Code:        NotOwned,
			Description: "required proposition is not owned by the node",
			Detail:      err.Error(),
		}
	}
	return &Error{
		Code:        code,
		Description: description,
		Detail:      err.Error(),
	}
}

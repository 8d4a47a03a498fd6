// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

// TransactionStatus - where a transaction is
type TransactionStatus int

// possible status values
const (
	StateNotFound  TransactionStatus = iota
	StatePending   TransactionStatus = iota
	StateConfirmed TransactionStatus = iota
)

// String - convert the status value for printf
func (ts TransactionStatus) String() string {
	switch ts {
	case StateNotFound:
		return "NotFound"
	case StatePending:
		return "Pending"
	case StateConfirmed:
		return "Confirmed"
	default:
		return "*Unknown*"
	}
}

// MarshalText - convert the status value for JSON
func (ts TransactionStatus) MarshalText() ([]byte, error) {
	buffer := []byte(ts.String())
	return buffer, nil
}

// UnmarshalText - convert the status value from JSON to enumeration
func (ts *TransactionStatus) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Pending":
		*ts = StatePending
	case "Confirmed":
		*ts = StateConfirmed
	default:
		*ts = StateNotFound
	}
	return nil
}

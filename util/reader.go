// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/boxledger/fault"
)

// Reader - sequential bounds checked reads from a byte slice
//
// every read either succeeds completely or leaves the offset
// unchanged and returns a length or record error
type Reader struct {
	buffer []byte
	offset int
}

// NewReader - create a reader positioned at the start of buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Offset - number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining - number of bytes not yet consumed
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Byte - read a single byte
func (r *Reader) Byte() (byte, error) {
	if r.Remaining() < 1 {
		return 0, fault.NotEnoughData
	}
	b := r.buffer[r.offset]
	r.offset += 1
	return b, nil
}

// Int32 - read a 4 byte big endian signed integer
func (r *Reader) Int32() (int32, error) {
	if r.Remaining() < 4 {
		return 0, fault.NotEnoughData
	}
	v := binary.BigEndian.Uint32(r.buffer[r.offset:])
	r.offset += 4
	return int32(v), nil
}

// Int64 - read an 8 byte big endian signed integer
func (r *Reader) Int64() (int64, error) {
	if r.Remaining() < 8 {
		return 0, fault.NotEnoughData
	}
	v := binary.BigEndian.Uint64(r.buffer[r.offset:])
	r.offset += 8
	return int64(v), nil
}

// Varint64 - read a Varint64
func (r *Reader) Varint64() (uint64, error) {
	v, n, err := CanonicalVarint64(r.buffer[r.offset:])
	if nil != err {
		return 0, err
	}
	r.offset += n
	return v, nil
}

// Bytes - read exactly n bytes
//
// the result is a copy so it does not alias the buffer
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fault.NegativeLength
	}
	if r.Remaining() < n {
		return nil, fault.NotEnoughData
	}
	b := make([]byte, n)
	copy(b, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return b, nil
}

// VarBytes - read a Varint64 length prefixed field of at most maximum bytes
func (r *Reader) VarBytes(maximum int) ([]byte, error) {
	start := r.offset
	length, err := r.Varint64()
	if nil != err {
		return nil, err
	}
	if length > uint64(maximum) {
		r.offset = start
		return nil, fault.SectionOverrun
	}
	b, err := r.Bytes(int(length))
	if nil != err {
		r.offset = start
		return nil, err
	}
	return b, nil
}

// Section - read an int32 length prefixed section
//
// a negative length or one running past the end of the buffer
// is rejected before any of the section is consumed
func (r *Reader) Section() ([]byte, error) {
	start := r.offset
	length, err := r.Int32()
	if nil != err {
		return nil, err
	}
	if length < 0 {
		r.offset = start
		return nil, fault.NegativeLength
	}
	if int64(length) > int64(r.Remaining()) {
		r.offset = start
		return nil, fault.SectionOverrun
	}
	return r.Bytes(int(length))
}

// Done - check that the whole buffer was consumed
func (r *Reader) Done() error {
	if 0 != r.Remaining() {
		return fault.TrailingData
	}
	return nil
}

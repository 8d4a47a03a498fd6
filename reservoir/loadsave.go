// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/boxledger/transactionrecord"
)

type tagType byte

// record types in cache file
const (
	taggedBOF         tagType = iota
	taggedEOF         tagType = iota
	taggedTransaction tagType = iota
)

// the BOF tag to check file version
// exact match is required
var bofData = []byte("boxledger-reservoir v1.0")

const maximumRecordLength = 1 << 20

// hold lock before calling
// restore pending transactions, each is verified again
func loadFromFile() {
	log := globalData.log

	f, err := os.Open(globalData.filename)
	if nil != err {
		log.Errorf("open: %q  error: %s", globalData.filename, err)
		return
	}
	defer f.Close()

	n, err := readPending(bufio.NewReader(f), func(packed transactionrecord.Packed) {
		tx, _, err := packed.Unpack()
		if nil != err {
			log.Errorf("unable to unpack transaction: %s", err)
			return
		}
		if _, err := store(tx); nil != err {
			log.Warnf("restore transaction: %x  error: %s", packed, err)
		}
	})
	if nil != err {
		log.Errorf("restore from file: %q  error: %s", globalData.filename, err)
	}
	log.Infof("restored: %d  from file: %s", n, globalData.filename)
}

// hold lock before calling
func saveToFile() error {
	log := globalData.log

	items := pendingInOrder()
	log.Infof("saving: %d  to file: %s", len(items), globalData.filename)

	f, err := os.OpenFile(globalData.filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if nil != err {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	packed := make([]transactionrecord.Packed, len(items))
	for i, item := range items {
		packed[i] = item.packed
	}
	if err := writePending(w, packed); nil != err {
		return err
	}
	return w.Flush()
}

// BOF, transactions, EOF
func writePending(w io.Writer, packed []transactionrecord.Packed) error {
	if err := writeRecord(w, taggedBOF, bofData); nil != err {
		return err
	}
	for _, p := range packed {
		if err := writeRecord(w, taggedTransaction, p); nil != err {
			return err
		}
	}
	return writeRecord(w, taggedEOF, nil)
}

// read a file written by writePending and pass each transaction to f
func readPending(r io.Reader, f func(transactionrecord.Packed)) (int, error) {

	// must have BOF record first
	tag, packed, err := readRecord(r)
	if nil != err {
		return 0, err
	}
	if taggedBOF != tag {
		return 0, fmt.Errorf("expected BOF: %d but read: %d", taggedBOF, tag)
	}
	if !bytes.Equal(bofData, packed) {
		return 0, fmt.Errorf("expected BOF: %q but read: %q", bofData, packed)
	}

	n := 0
restore_loop:
	for {
		tag, packed, err := readRecord(r)
		if nil != err {
			return n, err
		}
		switch tag {

		case taggedEOF:
			break restore_loop

		case taggedTransaction:
			f(packed)
			n += 1

		default:
			return n, fmt.Errorf("read invalid tag: 0x%02x", tag)
		}
	}
	return n, nil
}

// write a tagged record
func writeRecord(w io.Writer, tag tagType, packed []byte) error {

	if len(packed) > maximumRecordLength {
		return fmt.Errorf("write record packed length: %d > %d", len(packed), maximumRecordLength)
	}

	header := make([]byte, 5)
	header[0] = byte(tag)
	binary.BigEndian.PutUint32(header[1:], uint32(len(packed)))
	if _, err := w.Write(header); nil != err {
		return err
	}
	_, err := w.Write(packed)
	return err
}

func readRecord(r io.Reader) (tagType, transactionrecord.Packed, error) {

	header := make([]byte, 5)
	if _, err := io.ReadFull(r, header); nil != err {
		return taggedEOF, nil, err
	}

	count := binary.BigEndian.Uint32(header[1:])
	if count > maximumRecordLength {
		return taggedEOF, nil, fmt.Errorf("read record length: %d > %d", count, maximumRecordLength)
	}

	buffer := make([]byte, count)
	if _, err := io.ReadFull(r, buffer); nil != err {
		return taggedEOF, nil, err
	}
	return tagType(header[0]), buffer, nil
}

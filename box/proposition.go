// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package box

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/fault"
)

// Proposition - the locking condition of a box
//
// either a plain *account.Account or a *SellOrderProposition
type Proposition interface {
	Bytes() []byte
	String() string
}

// Proof - a witness that satisfies a proposition over some message
//
// either an account.Signature or a *SellOrderProof
type Proof interface {
	Bytes() []byte
}

// SellOrderProposition - a sell order can be spent by either party
//
// the owner to cancel, the buyer to accept
type SellOrderProposition struct {
	Owner *account.Account `json:"owner"`
	Buyer *account.Account `json:"buyer"`
}

// Bytes - owner then buyer encoded accounts
func (p *SellOrderProposition) Bytes() []byte {
	return append(accountBytes(p.Owner), accountBytes(p.Buyer)...)
}

// String - both accounts in Base58
func (p *SellOrderProposition) String() string {
	return p.Owner.String() + "/" + p.Buyer.String()
}

// SellOrderProof - signature over a sell order spend with the role of the signer
type SellOrderProof struct {
	Signature account.Signature `json:"signature"`
	IsSeller  bool              `json:"isSeller"`
}

// Bytes - role byte followed by the signature
func (p *SellOrderProof) Bytes() []byte {
	role := byte(0)
	if p.IsSeller {
		role = 1
	}
	return append([]byte{role}, p.Signature...)
}

// CheckProof - verify a proof against the proposition that locks a box
//
// pure function; any mismatch between the kind of proposition and the
// kind of proof is reported as an invalid proof
func CheckProof(proposition Proposition, proof Proof, message []byte) error {
	if nil == proposition || nil == proof {
		return fault.ProofInvalid
	}

	switch lock := proposition.(type) {

	case *account.Account:
		signature, ok := proof.(account.Signature)
		if !ok {
			return fault.ProofInvalid
		}
		if nil == lock.AccountInterface || nil != lock.CheckSignature(message, signature) {
			return fault.ProofInvalid
		}
		return nil

	case *SellOrderProposition:
		p, ok := proof.(*SellOrderProof)
		if !ok || nil == p {
			return fault.ProofInvalid
		}
		signer := lock.Buyer
		if p.IsSeller {
			signer = lock.Owner
		}
		if nil == signer || nil != signer.CheckSignature(message, p.Signature) {
			return fault.ProofInvalid
		}
		return nil

	default:
		return fault.UnsupportedProposition
	}
}

// encoded form of a proposition, empty if it is missing
func propositionBytes(p Proposition) []byte {
	switch lock := p.(type) {
	case nil:
		return nil
	case *account.Account:
		return accountBytes(lock)
	case *SellOrderProposition:
		if nil == lock {
			return nil
		}
		return lock.Bytes()
	default:
		return p.Bytes()
	}
}

func accountBytes(a *account.Account) []byte {
	if nil == a || nil == a.AccountInterface {
		return nil
	}
	return a.Bytes()
}

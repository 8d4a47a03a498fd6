// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builder

import (
	"github.com/bitmark-inc/boxledger/account"
	"github.com/bitmark-inc/boxledger/box"
	"github.com/bitmark-inc/boxledger/fault"
)

// the regular boxes chosen to pay an amount and the change returned
type payment struct {
	inputs  []*box.Box
	outputs []*box.RegularData
}

// take regular boxes in wallet order until amount is covered
//
// any excess goes back to the owner of the first box taken; no change
// output is made when the amount is matched exactly
func (b *Builder) selectCoins(amount int64) (*payment, error) {
	exclude := b.mempool.PendingSpends()
	candidates, err := b.funding.BoxesOfType(box.RegularTag, exclude)
	if nil != err {
		return nil, err
	}

	p := &payment{}
	remaining := amount
	for _, c := range candidates {
		if remaining <= 0 {
			break
		}
		if box.RegularTag != c.Tag() || excluded(c.Id, exclude) {
			continue
		}
		p.inputs = append(p.inputs, c)
		remaining -= c.Value()
	}

	if remaining > 0 {
		return nil, fault.InsufficientFunds
	}

	if change := -remaining; change > 0 {
		owner, ok := p.inputs[0].Proposition().(*account.Account)
		if !ok {
			return nil, fault.InvalidBoxType
		}
		p.outputs = []*box.RegularData{
			{
				Owner:  owner,
				Amount: change,
			},
		}
	}
	return p, nil
}

func excluded(id box.Identifier, exclude []box.Identifier) bool {
	for _, e := range exclude {
		if id == e {
			return true
		}
	}
	return false
}

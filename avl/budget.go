// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avltree/fault"
)

// Budget - the backing memory system as seen by the allocator
//
// Reserve is called before a slab of nodes is allocated, an error
// refuses the slab and the insert that needed it fails.  Return is
// called after Reclaim has released a slab.
type Budget interface {
	Reserve(nodes int) error
	Return(nodes int)
}

type unlimited struct{}

func (unlimited) Reserve(int) error { return nil }
func (unlimited) Return(int)        {}

// Unlimited - a budget that never refuses
var Unlimited Budget = unlimited{}

// Limit - a budget with a fixed maximum number of nodes, it may be
// shared by several trees
type Limit struct {
	sync.Mutex
	maximum int
	inUse   int
}

// NewLimit - create a budget of up to maximum nodes
func NewLimit(maximum int) (*Limit, error) {
	if maximum < 1 {
		return nil, fault.ErrInvalidLimit
	}
	return &Limit{
		maximum: maximum,
	}, nil
}

// Reserve - claim nodes from the budget
func (l *Limit) Reserve(nodes int) error {
	l.Lock()
	defer l.Unlock()
	if l.inUse+nodes > l.maximum {
		return fault.ErrBudgetExhausted
	}
	l.inUse += nodes
	return nil
}

// Return - give nodes back to the budget
func (l *Limit) Return(nodes int) {
	l.Lock()
	l.inUse -= nodes
	if l.inUse < 0 {
		l.Unlock()
		fault.Panicf("avl: budget returned more than reserved: %d", l.inUse)
	}
	l.Unlock()
}

// InUse - nodes currently reserved
func (l *Limit) InUse() int {
	l.Lock()
	defer l.Unlock()
	return l.inUse
}

// Maximum - the size of the budget
func (l *Limit) Maximum() int {
	return l.maximum
}

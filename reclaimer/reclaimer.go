// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reclaimer

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Configuration - reclaim settings
type Configuration struct {
	Interval    string `gluamapper:"interval" json:"interval"`
	MinimumFree int    `gluamapper:"minimum_free" json:"minimum_free"`
}

// Duration - the parsed interval
func (c *Configuration) Duration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if nil != err || d <= 0 {
		return 0, fault.ErrInvalidInterval
	}
	return d, nil
}

// Reclaimable - the part of a tree used by the reclaimer
type Reclaimable interface {
	FreeNodes() uint64
	Reclaim() int
}

// Reclaimer - background process to release unused slabs
type Reclaimer struct {
	tree        Reclaimable
	lock        sync.Locker
	interval    time.Duration
	minimumFree uint64
	log         *logger.L

	runs     counter.Counter
	released counter.Counter
}

// New - create a reclaimer for a tree
//
// lock must be the lock that serialises every other use of the tree
func New(tree Reclaimable, lock sync.Locker, config *Configuration, log *logger.L) (*Reclaimer, error) {
	if nil == tree {
		return nil, fault.ErrMissingTree
	}
	if nil == lock {
		return nil, fault.ErrMissingLock
	}
	interval, err := config.Duration()
	if nil != err {
		return nil, err
	}
	if config.MinimumFree < 0 {
		return nil, fault.ErrNegativeMinimumFree
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	return &Reclaimer{
		tree:        tree,
		lock:        lock,
		interval:    interval,
		minimumFree: uint64(config.MinimumFree),
		log:         log,
	}, nil
}

// Run - the background process loop
func (r *Reclaimer) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Infof("starting, interval: %s  minimum free: %d", r.interval, r.minimumFree)

	ticker := time.NewTicker(r.interval)
	for {
		select {
		case <-ticker.C:
			r.reclaimIfWorthwhile()
		case <-shutdown:
			ticker.Stop()
			r.log.Infof("stopped, runs: %d  nodes released: %d", r.runs.Uint64(), r.released.Uint64())
			return
		}
	}
}

// only take the lock once enough nodes are idle, the free node
// count is safe to read without it
func (r *Reclaimer) reclaimIfWorthwhile() {
	free := r.tree.FreeNodes()
	if free < r.minimumFree || 0 == free {
		r.log.Debugf("free nodes: %d  below: %d", free, r.minimumFree)
		return
	}
	r.ReclaimNow()
}

// ReclaimNow - reclaim immediately under the lock, returns the
// number of nodes released
func (r *Reclaimer) ReclaimNow() int {
	r.lock.Lock()
	n := r.tree.Reclaim()
	r.lock.Unlock()

	r.runs.Increment()
	r.released.Add(uint64(n))
	r.log.Debugf("released nodes: %d", n)
	return n
}

// Runs - number of reclaims performed
func (r *Reclaimer) Runs() uint64 {
	return r.runs.Uint64()
}

// Released - total nodes released by this reclaimer
func (r *Reclaimer) Released() uint64 {
	return r.released.Uint64()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/background"
)

const (
	finalCount1 = 987654321
	finalCount2 = 897645312
)

type spinner struct {
	count  uint64
	final  uint64
	args   interface{}
	exited bool
}

func (state *spinner) Run(args interface{}, shutdown <-chan struct{}) {
	state.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddUint64(&state.count, 9)
		time.Sleep(time.Millisecond)
	}

	// only visible if Stop waits for the return
	atomic.StoreUint64(&state.count, state.final)
	state.exited = true
}

func TestStartStop(t *testing.T) {
	proc1 := &spinner{final: finalCount1}
	proc2 := &spinner{final: finalCount2}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(50 * time.Millisecond)
	assert.NotZero(t, atomic.LoadUint64(&proc1.count), "process 1 did not run")
	assert.NotZero(t, atomic.LoadUint64(&proc2.count), "process 2 did not run")

	p.Stop()

	assert.True(t, proc1.exited)
	assert.True(t, proc2.exited)
	assert.Equal(t, uint64(finalCount1), proc1.count)
	assert.Equal(t, uint64(finalCount2), proc2.count)
	assert.Equal(t, t, proc1.args)
	assert.Equal(t, t, proc2.args)
}

func TestStopTwice(t *testing.T) {
	proc := &spinner{final: 1}
	p := background.Start(background.Processes{proc}, nil)

	p.Stop()
	assert.NotPanics(t, p.Stop)
	assert.True(t, proc.exited)
}

func TestStopNil(t *testing.T) {
	var p *background.T
	assert.NotPanics(t, p.Stop)
}

func TestNoProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	assert.NotPanics(t, p.Stop)
}

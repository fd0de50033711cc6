// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "github.com/goki/ki/kit"

// oscnet.Time contains the simulation clock: accumulated simulated
// time, cycle counters, the fixed step size, and the run state
// machine.  The engine has no timer of its own: an external caller
// triggers each tick, and ticks only advance while Running.
type Time struct {

	// accumulated amount of simulated time, in time units
	// (nominally msec)
	Time float32

	// cycle counter: number of ticks since the last Reset
	Cycle int

	// total cycle counter across all runs and resets
	CycleTot int

	// amount of time to increment per cycle -- the step size dt.
	// Fixed for a run: changing it requires a Reset.
	TimePerCyc float32 `def:"1"`

	// current run state -- ticks advance only while Running
	State RunState
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerCyc = 1
}

// Reset resets the counters back to zero and stops the clock
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	tm.State = Stopped
	if tm.TimePerCyc == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.CycleTot++
	tm.Time += tm.TimePerCyc
}

// Start transitions Stopped or Paused to Running
func (tm *Time) Start() {
	if tm.State == Stopped || tm.State == Paused {
		tm.State = Running
	}
}

// Pause transitions Running to Paused; no-op otherwise
func (tm *Time) Pause() {
	if tm.State == Running {
		tm.State = Paused
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  RunState

// RunState is the simulation clock state machine
type RunState int

//go:generate stringer -type=RunState

var KiT_RunState = kit.Enums.AddEnum(RunStateN, kit.NotBitFlag, nil)

func (ev RunState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RunState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The run states
const (
	// Stopped is the initial and post-Reset state: no state retained
	// from any prior run, ticks do not advance
	Stopped RunState = iota

	// Running advances one dt per external tick trigger
	Running

	// Paused retains all state but does not advance
	Paused

	RunStateN
)

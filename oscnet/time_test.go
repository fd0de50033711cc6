// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "testing"

func TestRunStateTransitions(t *testing.T) {
	tm := NewTime()
	if tm.State != Stopped {
		t.Errorf("initial state: %v != Stopped\n", tm.State)
	}

	// Pause from Stopped is a no-op
	tm.Pause()
	if tm.State != Stopped {
		t.Errorf("Pause from Stopped: %v != Stopped\n", tm.State)
	}

	tm.Start()
	if tm.State != Running {
		t.Errorf("Start from Stopped: %v != Running\n", tm.State)
	}

	// Start while Running is a no-op
	tm.Start()
	if tm.State != Running {
		t.Errorf("Start from Running: %v != Running\n", tm.State)
	}

	tm.Pause()
	if tm.State != Paused {
		t.Errorf("Pause from Running: %v != Paused\n", tm.State)
	}

	tm.Start()
	if tm.State != Running {
		t.Errorf("Start from Paused: %v != Running\n", tm.State)
	}

	tm.Reset()
	if tm.State != Stopped || tm.Time != 0 || tm.Cycle != 0 {
		t.Errorf("Reset: state %v time %v cycle %v\n", tm.State, tm.Time, tm.Cycle)
	}
}

func TestTimeCycleInc(t *testing.T) {
	tm := NewTime()
	tm.TimePerCyc = 0.5
	for i := 0; i < 10; i++ {
		tm.CycleInc()
	}
	if tm.Cycle != 10 {
		t.Errorf("Cycle: %d != 10\n", tm.Cycle)
	}
	dif := tm.Time - 5
	if dif < -difTol || dif > difTol {
		t.Errorf("Time: %v != 5\n", tm.Time)
	}
}

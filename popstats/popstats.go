// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package popstats reduces per-neuron spike events into a population
level oscillation signal: a sliding-window instantaneous firing rate,
an exponentially smoothed amplitude trace, and a frequency estimate
derived from counting peaks of the smoothed trace over a longer
secondary window.

Everything here is deterministic given the same spike counts and
window parameters, and is recomputed from the retained window only --
no state persists beyond the configured windows.
*/
package popstats

import (
	"fmt"

	"github.com/goki/ki/ints"
)

// Params are the population signal window and smoothing parameters.
type Params struct {
	Window     float32 `def:"50" min:"1" desc:"sliding window duration for the instantaneous rate, in time units: rate = spikes in window / (window * n neurons)"`
	SmoothTau  float32 `def:"4" min:"1" desc:"time constant for the exponential moving average producing the oscillation amplitude trace"`
	FreqWindow float32 `def:"500" min:"1" desc:"secondary window for the frequency estimate: peaks of the smoothed trace are counted over this duration -- estimate is undetermined until one full window has elapsed"`
	PeakThr    float32 `def:"0.0005" min:"0" desc:"minimum smoothed rate for a local maximum to count as an oscillation peak -- rejects silence-level jitter"`

	SmoothDt float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / SmoothTau"`
}

func (pp *Params) Defaults() {
	pp.Window = 50
	pp.SmoothTau = 4
	pp.FreqWindow = 500
	pp.PeakThr = 0.0005
	pp.Update()
}

// Update must be called after any changes to parameters
func (pp *Params) Update() {
	pp.SmoothDt = 1 / pp.SmoothTau
}

// Validate returns an error if the window parameters are not usable
// with the given step size.
func (pp *Params) Validate(dt float32) error {
	if pp.Window < dt {
		return fmt.Errorf("popstats.Params: Window %v must be >= dt %v", pp.Window, dt)
	}
	if pp.FreqWindow < pp.Window {
		return fmt.Errorf("popstats.Params: FreqWindow %v must be >= Window %v", pp.FreqWindow, pp.Window)
	}
	if pp.SmoothTau <= 0 {
		return fmt.Errorf("popstats.Params: SmoothTau must be > 0, is: %v", pp.SmoothTau)
	}
	return nil
}

// Stats maintains the population signal state across ticks.
// Config (or Init after a config) must be called before Update.
type Stats struct {
	Prm Params `desc:"window and smoothing parameters"`

	N  int     `inactive:"+" desc:"number of neurons the rate is normalized by"`
	Dt float32 `inactive:"+" desc:"step size, fixed for a run"`

	Rate   float32 `inactive:"+" desc:"instantaneous population firing rate: spikes per neuron per time unit over the sliding window"`
	Smooth float32 `inactive:"+" desc:"exponentially smoothed rate: the oscillation amplitude trace"`

	counts   []int32 // per-step spike counts, ring of window length
	sum      int
	pos      int
	filled   int
	prev     float32 // smoothed trace one and two steps back, for peak detection
	prev2    float32
	peaks    []float32 // peak times within FreqWindow, oldest first
	time     float32
	started  bool
	startTim float32
}

// Config sets the neuron count and step size and initializes all state.
func (ps *Stats) Config(n int, dt float32) error {
	if n <= 0 {
		return fmt.Errorf("popstats.Stats: neuron count must be > 0, is: %v", n)
	}
	if dt <= 0 {
		return fmt.Errorf("popstats.Stats: dt must be > 0, is: %v", dt)
	}
	if err := ps.Prm.Validate(dt); err != nil {
		return err
	}
	ps.N = n
	ps.Dt = dt
	wsteps := ints.MaxInt(int(ps.Prm.Window/dt), 1)
	ps.counts = make([]int32, wsteps)
	ps.Init()
	return nil
}

// Init clears all accumulated state, keeping the configuration.
func (ps *Stats) Init() {
	for i := range ps.counts {
		ps.counts[i] = 0
	}
	ps.sum = 0
	ps.pos = 0
	ps.filled = 0
	ps.Rate = 0
	ps.Smooth = 0
	ps.prev = 0
	ps.prev2 = 0
	ps.peaks = ps.peaks[:0]
	ps.time = 0
	ps.started = false
	ps.startTim = 0
}

// Update consumes this tick's spike count at the given simulation time,
// updating rate, smoothed trace, and the peak record.
func (ps *Stats) Update(nspikes int, time float32) {
	if !ps.started {
		ps.started = true
		ps.startTim = time
	}
	ps.time = time

	ps.sum -= int(ps.counts[ps.pos])
	ps.counts[ps.pos] = int32(nspikes)
	ps.sum += nspikes
	ps.pos = (ps.pos + 1) % len(ps.counts)
	if ps.filled < len(ps.counts) {
		ps.filled++
	}

	dur := float32(ps.filled) * ps.Dt
	ps.Rate = float32(ps.sum) / (dur * float32(ps.N))

	ps.prev2 = ps.prev
	ps.prev = ps.Smooth
	ps.Smooth += ps.Dt * ps.Prm.SmoothDt * (ps.Rate - ps.Smooth)

	// local maximum of the smoothed trace one step back
	if ps.filled > 2 && ps.prev > ps.Prm.PeakThr && ps.prev2 <= ps.prev && ps.Smooth < ps.prev {
		ps.peaks = append(ps.peaks, time-ps.Dt)
	}
	// evict peaks older than the secondary window
	cut := time - ps.Prm.FreqWindow
	np := 0
	for np < len(ps.peaks) && ps.peaks[np] < cut {
		np++
	}
	if np > 0 {
		ps.peaks = append(ps.peaks[:0], ps.peaks[np:]...)
	}
}

// Freq returns the current oscillation frequency estimate in cycles
// per time unit, and whether it is determined: false until at least
// one full FreqWindow has elapsed since Init.
func (ps *Stats) Freq() (float32, bool) {
	if !ps.started || ps.time-ps.startTim < ps.Prm.FreqWindow {
		return 0, false
	}
	return float32(len(ps.peaks)) / ps.Prm.FreqWindow, true
}

// NPeaks returns the number of oscillation peaks currently retained
// within the secondary window.
func (ps *Stats) NPeaks() int {
	return len(ps.peaks)
}

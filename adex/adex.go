// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package adex provides the adaptive exponential (AdEx) spike-initiation
and adaptation currents of Brette & Gerstner (2005), as an optional
add-on to the basic leaky integrate-and-fire membrane update.

The exponential term drives the membrane potential rapidly upward once
it passes the soft threshold VT, producing a realistic spike upswing,
while the adaptation current w accumulates with activity and pulls the
neuron back down, producing spike-frequency adaptation and bursting
depending on the A, B, TauW parameters.

All values are in the engine's normalized units: resting potential = 0,
spike cutoff = 1, time in dt-units (nominally msec).
*/
package adex

import "github.com/goki/mat32"

// expClip bounds the argument of the exponential term, matching the
// standard AdEx practice of clipping to avoid float overflow before
// the cutoff threshold catches the spike.
const expClip = float32(20)

// Params are the AdEx channel parameters, added into the basic LIF
// membrane update when On.
type Params struct {
	On     bool    `desc:"enable the exponential spike-initiation and adaptation currents"`
	VT     float32 `viewif:"On" def:"0.4" desc:"soft spike-initiation threshold: point where the exponential upswing engages -- distinct from the hard cutoff threshold where the spike is registered"`
	DeltaT float32 `viewif:"On" def:"0.04" min:"0.001" desc:"slope factor of the exponential upswing -- smaller = sharper, more LIF-like threshold"`
	A      float32 `viewif:"On" def:"0.2" desc:"subthreshold adaptation coupling: how strongly the adaptation current w tracks deviations of Vm from rest -- negative values produce rebound / bursting dynamics"`
	B      float32 `viewif:"On" def:"0.2" min:"0" desc:"spike-triggered adaptation increment added to w after each spike -- larger = stronger spike-frequency adaptation"`
	TauW   float32 `viewif:"On" def:"120" min:"1" desc:"adaptation time constant: how slowly w decays back to its subthreshold value"`

	WDt float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / TauW"`
}

func (ap *Params) Defaults() {
	ap.VT = 0.4
	ap.DeltaT = 0.04
	ap.A = 0.2
	ap.B = 0.2
	ap.TauW = 120
	ap.Update()
}

// Update must be called after any changes to parameters
func (ap *Params) Update() {
	if ap.TauW < 1 {
		ap.TauW = 1
	}
	ap.WDt = 1 / ap.TauW
}

// ExpCurrent returns the exponential spike-initiation current for the
// given membrane potential, scaled for a membrane with time constant
// tau so it can be added directly into the LIF dVm/dt sum.
// Returns 0 when Off.
func (ap *Params) ExpCurrent(vm, tau float32) float32 {
	if !ap.On {
		return 0
	}
	x := (vm - ap.VT) / ap.DeltaT
	if x > expClip {
		x = expClip
	} else if x < -expClip {
		x = -expClip
	}
	return (ap.DeltaT / tau) * mat32.FastExp(x)
}

// WFmVm advances the adaptation current w one step of size dt, given
// the current membrane potential relative to the resting potential.
func (ap *Params) WFmVm(w *float32, vm, rest, dt float32) {
	if !ap.On {
		return
	}
	*w += dt * ap.WDt * (ap.A*(vm-rest) - *w)
}

// WFmSpike applies the spike-triggered adaptation increment.
func (ap *Params) WFmSpike(w *float32) {
	if !ap.On {
		return
	}
	*w += ap.B
}

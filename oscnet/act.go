// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/minmax"
	"github.com/goki/ki/kit"

	"github.com/oscilab/oscnet/adex"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the membrane integration params and functions

// oscnet.ActParams contains all the neuron-level integration
// parameters and functions: leaky integrate-and-fire with explicit
// Euler updating, spike threshold / reset / refractory policy, and the
// optional AdEx channel.  Shared across the homogeneous population;
// per-neuron overrides are configured sparsely in SimConfig.
type ActParams struct {
	Tau        float32        `def:"20" min:"0.001" desc:"membrane time constant in time units (nominally msec): how slowly Vm decays back to Rest -- explicit Euler updating is stable only for dt sufficiently small relative to Tau"`
	Rest       float32        `def:"0" desc:"resting potential that Vm decays toward in the absence of input"`
	Thr        float32        `def:"1" desc:"spike threshold: an updated Vm at or above this emits a spike"`
	Reset      float32        `def:"0" desc:"post-spike reset potential: Vm is clamped here immediately after a spike"`
	Refrac     float32        `def:"2" min:"0" desc:"refractory period in time units after a spike, during which the neuron cannot fire regardless of input"`
	RefracHold bool           `def:"true" desc:"hold Vm fixed at Reset during the refractory period; if false, Vm decays toward Rest instead"`
	ISITau     float32        `def:"5" min:"1" desc:"time constant for the running-average inter-spike interval used for rate readout"`
	AdEx       adex.Params    `view:"inline" desc:"optional AdEx exponential spike-initiation and adaptation currents"`
	Noise      ActNoiseParams `view:"inline" desc:"how and where to add membrane noise"`
	Init       ActInitParams  `view:"inline" desc:"initial values for neuron state, applied at (re)initialization"`
	VmRange    minmax.F32     `view:"inline" desc:"valid range for Vm outside of a spike: a non-spiking Vm beyond this range after a step surfaces a DivergenceError rather than being clamped"`

	ISIDt float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / ISITau"`
}

func (ac *ActParams) Defaults() {
	ac.Tau = 20
	ac.Rest = 0
	ac.Thr = 1
	ac.Reset = 0
	ac.Refrac = 2
	ac.RefracHold = true
	ac.ISITau = 5
	ac.AdEx.Defaults()
	ac.AdEx.On = false
	ac.Noise.Defaults()
	ac.Init.Defaults()
	ac.VmRange.Set(-10, 10)
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	if ac.ISITau < 1 {
		ac.ISITau = 1
	}
	ac.ISIDt = 1 / ac.ISITau
	ac.AdEx.Update()
	ac.Noise.Update()
	ac.Init.Update()
}

// Validate returns a ConfigError if the integration parameters are
// not usable.
func (ac *ActParams) Validate() error {
	if ac.Tau <= 0 {
		return &ConfigError{Field: "Act.Tau", Msg: "must be > 0"}
	}
	if ac.Refrac < 0 {
		return &ConfigError{Field: "Act.Refrac", Msg: "must be >= 0"}
	}
	if ac.Thr <= ac.Reset {
		return &ConfigError{Field: "Act.Thr", Msg: "must be above Reset"}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////
//  Init

// InitActs initializes all neuron state, including optional gaussian
// jitter of the initial membrane potential.
func (ac *ActParams) InitActs(nrn *Neuron) {
	nrn.Vm = ac.Init.Vm
	if ac.Init.VmVar > 0 {
		nrn.Vm += float32(ac.Init.Rnd(float64(ac.Init.VmVar)))
	}
	nrn.Inet = 0
	nrn.Ge = 0
	nrn.Ext = 0
	nrn.Spike = 0
	nrn.RefracLeft = 0
	nrn.AdaptW = 0
	nrn.ISI = -1
	nrn.ISIAvg = -1
	nrn.LastSpike = -1
}

///////////////////////////////////////////////////////////////////////
//  Cycle

// CycleNeuron advances the neuron one step of size dt given its total
// input current (synaptic + injected stimulus), at the given
// simulation time.  Mutates the neuron in place and reports whether it
// spiked this tick.
func (ac *ActParams) CycleNeuron(nrn *Neuron, input, dt, time float32) bool {
	nrn.Spike = 0

	if nrn.RefracLeft > 0 {
		nrn.RefracLeft = math32.Max(nrn.RefracLeft-dt, 0)
		if !ac.RefracHold {
			nrn.Vm += dt * (ac.Rest - nrn.Vm) / ac.Tau
		}
		nrn.Inet = 0
		ac.AdEx.WFmVm(&nrn.AdaptW, nrn.Vm, ac.Rest, dt)
		ac.isiFmCycle(nrn, dt)
		return false
	}

	var noise float32
	if ac.Noise.Type != NoNoise {
		noise = float32(ac.Noise.Gen(-1))
	}

	inet := (ac.Rest-nrn.Vm)/ac.Tau + input
	inet += ac.AdEx.ExpCurrent(nrn.Vm, ac.Tau)
	if ac.AdEx.On {
		inet -= nrn.AdaptW
	}
	if ac.Noise.Type == GeNoise {
		inet += noise
	}
	nrn.Inet = inet
	nrn.Vm += dt * inet
	if ac.Noise.Type == VmNoise {
		nrn.Vm += noise
	}
	ac.AdEx.WFmVm(&nrn.AdaptW, nrn.Vm, ac.Rest, dt)

	if nrn.Vm >= ac.Thr {
		nrn.Spike = 1
		nrn.Vm = ac.Reset
		nrn.RefracLeft = ac.Refrac
		ac.AdEx.WFmSpike(&nrn.AdaptW)
		if nrn.ISI >= 0 {
			ac.AvgFmISI(&nrn.ISIAvg, nrn.ISI+dt)
		}
		nrn.ISI = 0
		nrn.LastSpike = time
		return true
	}
	ac.isiFmCycle(nrn, dt)
	return false
}

// VmValid reports whether the membrane potential is finite and within
// the configured valid range.  Checked after each non-spiking update;
// a false result surfaces as a DivergenceError.
func (ac *ActParams) VmValid(vm float32) bool {
	if math32.IsNaN(vm) || math32.IsInf(vm, 0) {
		return false
	}
	return vm >= ac.VmRange.Min && vm <= ac.VmRange.Max
}

// isiFmCycle advances the inter-spike interval counter on a
// non-spiking cycle.
func (ac *ActParams) isiFmCycle(nrn *Neuron, dt float32) {
	if nrn.ISI >= 0 {
		nrn.ISI += dt
	}
}

// AvgFmISI updates the running-average inter-spike interval from the
// latest measured interval.
func (ac *ActParams) AvgFmISI(avg *float32, isi float32) {
	if *avg <= 0 {
		*avg = isi
	} else if isi < 0.8**avg {
		*avg = isi // if significantly less than we take that
	} else {
		*avg += ac.ISIDt * (isi - *avg) // integrate on slower
	}
}

//////////////////////////////////////////////////////////////////////////////////////
//  ActInitParams

// ActInitParams are initial values for neuron state, applied at
// (re)initialization.
type ActInitParams struct {
	Vm    float32 `def:"0" desc:"initial membrane potential"`
	VmVar float32 `def:"0" min:"0" desc:"standard deviation of gaussian jitter added to the initial membrane potential, for desynchronizing a population at startup"`
}

func (ai *ActInitParams) Update() {
}

func (ai *ActInitParams) Defaults() {
	ai.Vm = 0
	ai.VmVar = 0
}

// Rnd draws one gaussian sample with the given standard deviation.
func (ai *ActInitParams) Rnd(sd float64) float64 {
	rp := erand.RndParams{Dist: erand.Gaussian, Mean: 0, Var: sd}
	return rp.Gen(-1)
}

//////////////////////////////////////////////////////////////////////////////////////
//  Noise

// NoiseType are different locations for adding random noise during integration
type NoiseType int

//go:generate stringer -type=NoiseType

var KiT_NoiseType = kit.Enums.AddEnum(NoiseTypeN, kit.NotBitFlag, nil)

func (ev NoiseType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NoiseType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The noise types
const (
	// NoNoise means no noise added
	NoNoise NoiseType = iota

	// VmNoise means noise is added directly to the membrane potential after the update
	VmNoise

	// GeNoise means noise is added to the input current before integration
	GeNoise

	NoiseTypeN
)

// ActNoiseParams contains parameters for integration-level noise
type ActNoiseParams struct {
	erand.RndParams
	Type NoiseType `desc:"where to add processing noise"`
}

func (an *ActNoiseParams) Update() {
}

func (an *ActNoiseParams) Defaults() {
	an.Type = NoNoise
	an.Dist = erand.Gaussian
	an.Mean = 0
	an.Var = 0.001
}

// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"

	"github.com/chewxy/math32"
)

///////////////////////////////////////////////////////////////////////
//  control.go: the interactive parameter controller

// oscnet.ParamDelta is a requested interactive parameter change from
// the external UI layer.  Nil fields are left unchanged.  A later
// Apply of the same field before the next tick supersedes the earlier
// one.
type ParamDelta struct {

	// population-wide additive stimulus current (SimConfig.StimBase)
	Stimulus *float32

	// global multiplier on all synaptic weights (Coupling.Scale)
	CouplingScale *float32

	// target population size -- implies a full rebuild of neuron and
	// synapse state at the tick boundary
	NeuronCount *int

	// step size -- implies a full rebuild at the tick boundary
	Dt *float32
}

// ControlBounds are the limits enforced on interactive parameter
// changes.  Changes beyond these are rejected with a ValidationError
// and the running simulation is unaffected.
type ControlBounds struct {
	StimMax  float32 `def:"10" min:"0" desc:"maximum magnitude of the interactive stimulus current"`
	ScaleMax float32 `def:"10" min:"0" desc:"maximum coupling scale multiplier (minimum is 0)"`
	NMax     int     `def:"100000" min:"1" desc:"maximum neuron count"`
	DtMax    float32 `def:"10" min:"0" desc:"maximum step size"`
}

func (cb *ControlBounds) Defaults() {
	cb.StimMax = 10
	cb.ScaleMax = 10
	cb.NMax = 100000
	cb.DtMax = 10
}

// oscnet.Controller validates interactive parameter changes and
// stages valid ones for atomic application at the next tick boundary,
// so the integration never observes a partially-updated
// configuration.  Single threaded with the simulation loop.
type Controller struct {
	Bounds ControlBounds `desc:"limits on requested changes"`

	pending ParamDelta
	dirty   bool
}

// Init clears any staged change.
func (ct *Controller) Init() {
	ct.pending = ParamDelta{}
	ct.dirty = false
}

// Validate checks every field of the delta against the bounds,
// returning a ValidationError naming the violated bound for the first
// invalid field.  Nothing is staged on error.
func (ct *Controller) Validate(dl *ParamDelta) error {
	if dl.Stimulus != nil && math32.Abs(*dl.Stimulus) > ct.Bounds.StimMax {
		return &ValidationError{Option: "stimulus", Msg: fmt.Sprintf("magnitude %v exceeds bound %v", math32.Abs(*dl.Stimulus), ct.Bounds.StimMax)}
	}
	if dl.CouplingScale != nil && (*dl.CouplingScale < 0 || *dl.CouplingScale > ct.Bounds.ScaleMax) {
		return &ValidationError{Option: "coupling_scale", Msg: fmt.Sprintf("%v outside [0,%v]", *dl.CouplingScale, ct.Bounds.ScaleMax)}
	}
	if dl.NeuronCount != nil && (*dl.NeuronCount < 1 || *dl.NeuronCount > ct.Bounds.NMax) {
		return &ValidationError{Option: "neuron_count", Msg: fmt.Sprintf("%v outside [1,%v]", *dl.NeuronCount, ct.Bounds.NMax)}
	}
	if dl.Dt != nil && (*dl.Dt <= 0 || *dl.Dt > ct.Bounds.DtMax) {
		return &ValidationError{Option: "dt", Msg: fmt.Sprintf("%v outside (0,%v]", *dl.Dt, ct.Bounds.DtMax)}
	}
	return nil
}

// Apply validates the requested change and, if every field is valid,
// stages it for application at the next tick boundary.  Invalid
// changes are rejected whole: no field of an invalid delta is staged.
func (ct *Controller) Apply(dl ParamDelta) error {
	if err := ct.Validate(&dl); err != nil {
		return err
	}
	if dl.Stimulus != nil {
		ct.pending.Stimulus = dl.Stimulus
	}
	if dl.CouplingScale != nil {
		ct.pending.CouplingScale = dl.CouplingScale
	}
	if dl.NeuronCount != nil {
		ct.pending.NeuronCount = dl.NeuronCount
	}
	if dl.Dt != nil {
		ct.pending.Dt = dl.Dt
	}
	ct.dirty = true
	return nil
}

// HasPending reports whether a staged change is waiting for the next
// tick boundary.
func (ct *Controller) HasPending() bool {
	return ct.dirty
}

// TakePending returns and clears the staged change.
func (ct *Controller) TakePending() (ParamDelta, bool) {
	if !ct.dirty {
		return ParamDelta{}, false
	}
	dl := ct.pending
	ct.Init()
	return dl, true
}

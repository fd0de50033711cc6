// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"

	"github.com/emer/emergent/prjn"

	"github.com/oscilab/oscnet/popstats"
)

// oscnet.SimConfig is the full static configuration of a run: neuron
// count, step size, integration and coupling parameters, topology,
// and control bounds.  Mutable only through Build/Reset or the
// Controller's atomic apply, never mid-tick.  Neuron and synapse
// counts are fixed for the duration of a run: topology changes
// require a full Reset.
type SimConfig struct {
	N        int     `def:"100" min:"1" desc:"number of neurons in the population"`
	Dt       float32 `def:"1" desc:"integration step size in time units (nominally msec) -- fixed for a run, changing it triggers a reset"`
	RndSeed  int64   `def:"1" desc:"random seed applied at every (re)initialization, so Reset reproduces a fresh Build exactly even with noise on"`
	StimBase float32 `def:"0" desc:"population-wide additive stimulus current -- the interactive stimulus control"`

	Act      ActParams      `view:"add-fields" desc:"membrane integration parameters shared by the population"`
	Coupling CouplingParams `view:"add-fields" desc:"synaptic coupling parameters"`
	Pop      popstats.Params `view:"add-fields" desc:"population signal window parameters"`
	Bounds   ControlBounds  `view:"add-fields" desc:"limits on interactive parameter changes"`

	// sparse per-neuron overrides of the shared Act parameters,
	// keyed by neuron index (e.g., an inhibitory subpopulation with
	// its own preset)
	Overrides map[int32]*ActParams `view:"-"`

	// per-neuron baseline drive currents (Neuron.Ext); nil = all zero.
	// Length must equal N when set.
	Drives []float32 `view:"-"`

	// generated topology: projection pattern connecting the
	// population to itself.  Ignored when Syns is set; nil with no
	// Syns = uncoupled population.
	Pat prjn.Pattern `view:"-"`

	// explicit topology as a synapse list, overriding Pat
	Syns []Synapse `view:"-"`
}

func (cf *SimConfig) Defaults() {
	cf.N = 100
	cf.Dt = 1
	cf.RndSeed = 1
	cf.StimBase = 0
	cf.Act.Defaults()
	cf.Coupling.Defaults()
	cf.Pop.Defaults()
	cf.Bounds.Defaults()
	cf.Overrides = nil
	cf.Drives = nil
	cf.Pat = prjn.NewFull()
	cf.Syns = nil
}

// Update must be called after any changes to parameters
func (cf *SimConfig) Update() {
	cf.Act.Update()
	cf.Coupling.Update()
	cf.Pop.Update()
	for _, ov := range cf.Overrides {
		ov.Update()
	}
}

// Validate returns a ConfigError for any unusable static parameter.
// It does not touch any existing simulation state.
func (cf *SimConfig) Validate() error {
	if cf.N <= 0 {
		return &ConfigError{Field: "N", Msg: "neuron count must be > 0"}
	}
	if cf.Dt <= 0 {
		return &ConfigError{Field: "Dt", Msg: "step size must be > 0"}
	}
	if err := cf.Act.Validate(); err != nil {
		return err
	}
	if err := cf.Coupling.Validate(); err != nil {
		return err
	}
	if err := cf.Pop.Validate(cf.Dt); err != nil {
		return &ConfigError{Field: "Pop", Msg: err.Error()}
	}
	if cf.Drives != nil && len(cf.Drives) != cf.N {
		return &ConfigError{Field: "Drives", Msg: fmt.Sprintf("length %d != N %d", len(cf.Drives), cf.N)}
	}
	for ni, ov := range cf.Overrides {
		if ni < 0 || ni >= int32(cf.N) {
			return &ConfigError{Field: "Overrides", Msg: fmt.Sprintf("neuron index %d outside [0,%d)", ni, cf.N)}
		}
		if err := ov.Validate(); err != nil {
			return err
		}
	}
	return nil
}

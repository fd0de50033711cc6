// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "github.com/emer/etable/minmax"

// Pool contains computed avg/max statistics over the whole population
// for the current tick: membrane potential, spiking fraction, and
// synaptic input.  Recomputed every tick for the external display
// layer; carries no state across ticks.
type Pool struct {
	Vm    minmax.AvgMax32 `desc:"avg and max membrane potential"`
	Spike minmax.AvgMax32 `desc:"avg = fraction of neurons spiking this tick"`
	Ge    minmax.AvgMax32 `desc:"avg and max synaptic input current"`
}

func (pl *Pool) Init() {
	pl.Vm.Init()
	pl.Spike.Init()
	pl.Ge.Init()
}

// UpdateNeuron folds one neuron's state into the running stats.
func (pl *Pool) UpdateNeuron(nrn *Neuron, ni int32) {
	pl.Vm.UpdateVal(nrn.Vm, int(ni))
	pl.Spike.UpdateVal(nrn.Spike, int(ni))
	pl.Ge.UpdateVal(nrn.Ge, int(ni))
}

// CalcAvg finalizes the averages after all neurons are folded in.
func (pl *Pool) CalcAvg() {
	pl.Vm.CalcAvg()
	pl.Spike.CalcAvg()
	pl.Ge.CalcAvg()
}

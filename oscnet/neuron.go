// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"
	"unsafe"
)

// NeuronVarStart is the byte offset of fields in the Neuron structure
// where the float32 named variables start.
// Note: all non-float32 infrastructure variables must be at the start!
const NeuronVarStart = 0

// oscnet.Neuron holds all of the neuron (unit) level state variables.
// All variables accessible via the generic Var interface must be
// float32 and start at the top, in contiguous order.
type Neuron struct {

	// membrane potential -- integrates Inet current over time, in
	// normalized units: resting = 0, spike threshold = 1 by default
	Vm float32

	// net current driving the Vm update this tick: leak + synaptic +
	// injected + AdEx terms
	Inet float32

	// synaptic input current received this tick from the coupling
	// computation over the retained spike history
	Ge float32

	// per-neuron injected stimulus current (baseline drive); the
	// population-wide interactive stimulus offset is added on top
	Ext float32

	// whether neuron has spiked this tick (0 or 1)
	Spike float32

	// remaining refractory time, in time units -- never negative;
	// 0 = excitable
	RefracLeft float32

	// AdEx adaptation current w -- 0 unless the AdEx channel is on
	AdaptW float32

	// current inter-spike interval: counts up since last spike.
	// Starts at -1 when initialized, before any spike.
	ISI float32

	// running-average inter-spike interval.  Starts at -1 when
	// initialized, valid after the second spike.
	ISIAvg float32

	// time of the last spike, -1 if the neuron has never spiked
	LastSpike float32
}

var NeuronVars = []string{"Vm", "Inet", "Ge", "Ext", "Spike", "RefracLeft", "AdaptW", "ISI", "ISIAvg", "LastSpike"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIdxByName returns the index of the variable in the Neuron, or error
func NeuronVarIdxByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(NeuronVarStart+4*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIdxByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}

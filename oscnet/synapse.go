// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "fmt"

// oscnet.Synapse is an explicit directed connection used when the
// topology is given as a list rather than generated from a
// prjn.Pattern.  Weight sign determines excitatory (+) vs
// inhibitory (-) effect; weight magnitude is bounded by
// CouplingParams.WtMax.
type Synapse struct {

	// sending (source) neuron index
	Si int32

	// receiving (target) neuron index
	Ri int32

	// signed synaptic weight
	Wt float32

	// conduction delay in time units -- the spike's kernel only
	// begins contributing this long after the spike
	Delay float32
}

var SynapseVars = []string{"Wt", "Delay"}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	switch varNm {
	case "Wt":
		return sy.Wt, nil
	case "Delay":
		return sy.Delay, nil
	}
	return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
}

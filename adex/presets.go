// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

// Preset is a named AdEx configuration together with the membrane
// constants it was tuned against.  Voltage values are normalized so
// that the biological resting potential (-70 mV) maps to 0 and the
// spike cutoff (-20 mV) maps to 1; time constants are in msec.
type Preset struct {
	Name  string  `desc:"display name"`
	Desc  string  `desc:"one-line description of the firing pattern"`
	Tau   float32 `desc:"membrane time constant = C / gL"`
	Reset float32 `desc:"post-spike reset potential"`
	AdEx  Params  `desc:"AdEx channel parameters"`
}

// Presets are standard cortical firing patterns, with constants
// derived from the usual AdEx parameterizations of these cell types
// (C, gL, V_T, Delta_T, V_r, a, b, tau_w), normalized to engine units.
var Presets = map[string]*Preset{
	"RegularSpiking": {
		Name:  "Regular Spiking (Excitatory)",
		Desc:  "Pyramidal neuron: moderate spike-frequency adaptation.",
		Tau:   20,
		Reset: 0.24,
		AdEx:  Params{On: true, VT: 0.4, DeltaT: 0.04, A: 0.2, B: 0.2, TauW: 120},
	},
	"FastSpiking": {
		Name:  "Fast Spiking (PV Interneuron)",
		Desc:  "PV interneuron: no adaptation, sustains very high rates.",
		Tau:   15,
		Reset: 0.24,
		AdEx:  Params{On: true, VT: 0.4, DeltaT: 0.01, A: 0, B: 0, TauW: 10},
	},
	"LowThreshold": {
		Name:  "Low-Threshold Spiking (SOM Interneuron)",
		Desc:  "SOM interneuron: strong adaptation with slow decay.",
		Tau:   20,
		Reset: 0.2,
		AdEx:  Params{On: true, VT: 0.3, DeltaT: 0.04, A: 0.4, B: 0.3, TauW: 300},
	},
	"Tonic": {
		Name:  "Tonic Spiking",
		Desc:  "Sustained regular firing, constant inter-spike interval.",
		Tau:   20,
		Reset: 0.3,
		AdEx:  Params{On: true, VT: 0.4, DeltaT: 0.04, A: 0, B: 0.12, TauW: 30},
	},
	"Adapting": {
		Name:  "Adapting",
		Desc:  "Starts fast, gradually slows: classic spike-frequency adaptation.",
		Tau:   20,
		Reset: 0.3,
		AdEx:  Params{On: true, VT: 0.4, DeltaT: 0.04, A: 0, B: 0.1, TauW: 100},
	},
	"Bursting": {
		Name:  "Bursting",
		Desc:  "Rhythmic bursts of spikes from a high reset and rebound adaptation.",
		Tau:   5,
		Reset: 0.48,
		AdEx:  Params{On: true, VT: 0.4, DeltaT: 0.04, A: -0.025, B: 0.07, TauW: 100},
	},
}

// PresetNames lists the presets in a stable order for UI menus.
var PresetNames = []string{
	"RegularSpiking", "FastSpiking", "LowThreshold", "Tonic", "Adapting", "Bursting",
}

func init() {
	for _, pr := range Presets {
		pr.AdEx.Update()
	}
}

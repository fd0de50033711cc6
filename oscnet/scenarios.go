// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/erand"

	"github.com/oscilab/oscnet/adex"
)

///////////////////////////////////////////////////////////////////////
//  scenarios.go: named multi-population configurations

// PopSpec describes one subpopulation of a scenario: its size, the
// AdEx preset its neurons use, and its baseline drive distribution.
type PopSpec struct {
	Name     string  `desc:"population name, e.g. E, PV, SOM"`
	N        int     `desc:"number of neurons"`
	Preset   string  `desc:"adex.Presets key for the firing pattern of this population"`
	Drive    float32 `desc:"mean baseline drive current per neuron"`
	DriveVar float32 `desc:"standard deviation of gaussian per-neuron drive jitter"`
}

// BlockSpec describes the connectivity from one population to another:
// a uniform connection probability and a signed weight.  Inhibitory
// populations carry negative weights.
type BlockSpec struct {
	Send  string  `desc:"sending population name"`
	Recv  string  `desc:"receiving population name"`
	Prob  float32 `desc:"connection probability per (send, recv) pair"`
	Wt    float32 `desc:"signed connection weight"`
	Delay float32 `desc:"conduction delay in time units"`
}

// Scenario is a named ready-to-run configuration: subpopulations with
// their presets and drives, plus the block connectivity between them.
// Config materializes it into a SimConfig (overrides, drives, and an
// explicit synapse list).
type Scenario struct {
	Name   string      `desc:"scenario name"`
	Desc   string      `desc:"one-line description"`
	Pops   []PopSpec   `desc:"subpopulations, laid out contiguously in index order"`
	Blocks []BlockSpec `desc:"between-population connectivity"`
}

// Scenarios are the built-in population configurations: a single
// excitatory population, E with fast-spiking (PV-like) inhibition
// producing ING/PING style oscillations, E with low-threshold
// (SOM-like) inhibition, and the full E / PV / SOM circuit.
var Scenarios = map[string]*Scenario{
	"E": {
		Name: "E", Desc: "single excitatory population, recurrent excitation only",
		Pops: []PopSpec{
			{Name: "E", N: 100, Preset: "RegularSpiking", Drive: 0.06, DriveVar: 0.01},
		},
		Blocks: []BlockSpec{
			{Send: "E", Recv: "E", Prob: 0.1, Wt: 0.05, Delay: 1},
		},
	},
	"EPV": {
		Name: "EPV", Desc: "excitatory population with fast-spiking inhibition",
		Pops: []PopSpec{
			{Name: "E", N: 80, Preset: "RegularSpiking", Drive: 0.07, DriveVar: 0.01},
			{Name: "PV", N: 20, Preset: "FastSpiking", Drive: 0.04, DriveVar: 0.01},
		},
		Blocks: []BlockSpec{
			{Send: "E", Recv: "E", Prob: 0.1, Wt: 0.04, Delay: 1},
			{Send: "E", Recv: "PV", Prob: 0.3, Wt: 0.08, Delay: 1},
			{Send: "PV", Recv: "E", Prob: 0.3, Wt: -0.12, Delay: 1},
			{Send: "PV", Recv: "PV", Prob: 0.3, Wt: -0.08, Delay: 1},
		},
	},
	"ESOM": {
		Name: "ESOM", Desc: "excitatory population with low-threshold inhibition",
		Pops: []PopSpec{
			{Name: "E", N: 80, Preset: "RegularSpiking", Drive: 0.07, DriveVar: 0.01},
			{Name: "SOM", N: 20, Preset: "LowThreshold", Drive: 0.03, DriveVar: 0.01},
		},
		Blocks: []BlockSpec{
			{Send: "E", Recv: "E", Prob: 0.1, Wt: 0.04, Delay: 1},
			{Send: "E", Recv: "SOM", Prob: 0.3, Wt: 0.06, Delay: 2},
			{Send: "SOM", Recv: "E", Prob: 0.3, Wt: -0.1, Delay: 2},
		},
	},
	"EPVSOM": {
		Name: "EPVSOM", Desc: "full circuit: E with both PV and SOM inhibition",
		Pops: []PopSpec{
			{Name: "E", N: 80, Preset: "RegularSpiking", Drive: 0.07, DriveVar: 0.01},
			{Name: "PV", N: 12, Preset: "FastSpiking", Drive: 0.04, DriveVar: 0.01},
			{Name: "SOM", N: 8, Preset: "LowThreshold", Drive: 0.03, DriveVar: 0.01},
		},
		Blocks: []BlockSpec{
			{Send: "E", Recv: "E", Prob: 0.1, Wt: 0.04, Delay: 1},
			{Send: "E", Recv: "PV", Prob: 0.3, Wt: 0.08, Delay: 1},
			{Send: "E", Recv: "SOM", Prob: 0.3, Wt: 0.06, Delay: 2},
			{Send: "PV", Recv: "E", Prob: 0.3, Wt: -0.12, Delay: 1},
			{Send: "PV", Recv: "PV", Prob: 0.3, Wt: -0.08, Delay: 1},
			{Send: "PV", Recv: "SOM", Prob: 0.2, Wt: -0.06, Delay: 1},
			{Send: "SOM", Recv: "E", Prob: 0.3, Wt: -0.1, Delay: 2},
			{Send: "SOM", Recv: "PV", Prob: 0.2, Wt: -0.06, Delay: 2},
		},
	},
}

// ScenarioNames is the display order of the built-in scenarios.
var ScenarioNames = []string{"E", "EPV", "ESOM", "EPVSOM"}

// NTotal returns the total neuron count across all populations.
func (sc *Scenario) NTotal() int {
	n := 0
	for _, ps := range sc.Pops {
		n += ps.N
	}
	return n
}

// PopRange returns the [start, end) neuron index range of the named
// population, laid out contiguously in Pops order.
func (sc *Scenario) PopRange(name string) (int, int, error) {
	st := 0
	for _, ps := range sc.Pops {
		if ps.Name == name {
			return st, st + ps.N, nil
		}
		st += ps.N
	}
	return 0, 0, fmt.Errorf("Scenario %s: population name %s not found", sc.Name, name)
}

// Config materializes the scenario into the given config: neuron
// count, per-population parameter overrides, baseline drives, and an
// explicit synapse list sampled from the block probabilities.
// Generation is deterministic for a given cfg.RndSeed.
func (sc *Scenario) Config(cfg *SimConfig) error {
	n := sc.NTotal()
	if n <= 0 {
		return &ConfigError{Field: "Scenario.Pops", Msg: "total neuron count must be > 0"}
	}
	rand.Seed(cfg.RndSeed)

	cfg.N = n
	cfg.Pat = nil
	cfg.Overrides = make(map[int32]*ActParams, n)
	cfg.Drives = make([]float32, n)

	st := 0
	for _, ps := range sc.Pops {
		pr, ok := adex.Presets[ps.Preset]
		if !ok {
			return &ConfigError{Field: "Scenario.Pops", Msg: fmt.Sprintf("population %s: unknown preset %s", ps.Name, ps.Preset)}
		}
		ac := &ActParams{}
		ac.Defaults()
		ac.Tau = pr.Tau
		ac.Reset = pr.Reset
		ac.AdEx = pr.AdEx
		ac.Init.VmVar = 0.05 // desynchronize within each population
		ac.Update()
		for i := st; i < st+ps.N; i++ {
			cfg.Overrides[int32(i)] = ac
			dr := ps.Drive
			if ps.DriveVar > 0 {
				rp := erand.RndParams{Dist: erand.Gaussian, Mean: float64(ps.Drive), Var: float64(ps.DriveVar)}
				dr = float32(rp.Gen(-1))
			}
			cfg.Drives[i] = dr
		}
		st += ps.N
	}

	cfg.Syns = cfg.Syns[:0]
	for _, bl := range sc.Blocks {
		sst, sed, err := sc.PopRange(bl.Send)
		if err != nil {
			return &ConfigError{Field: "Scenario.Blocks", Msg: err.Error()}
		}
		rst, red, err := sc.PopRange(bl.Recv)
		if err != nil {
			return &ConfigError{Field: "Scenario.Blocks", Msg: err.Error()}
		}
		for si := sst; si < sed; si++ {
			for ri := rst; ri < red; ri++ {
				if si == ri && !cfg.Coupling.SelfCon {
					continue
				}
				if rand.Float32() >= bl.Prob {
					continue
				}
				cfg.Syns = append(cfg.Syns, Synapse{Si: int32(si), Ri: int32(ri), Wt: bl.Wt, Delay: bl.Delay})
			}
		}
	}
	return nil
}

// RateHint returns a short tuning suggestion comparing the measured
// population rate against a target rate, for the interactive display.
func RateHint(rate, target float32) string {
	if target <= 0 {
		return ""
	}
	switch {
	case rate == 0:
		return "population is silent: increase the stimulus current or reduce inhibitory coupling"
	case rate < 0.5*target:
		return fmt.Sprintf("rate %.4g well below target %.4g: increase the stimulus current", rate, target)
	case rate < 0.9*target:
		return fmt.Sprintf("rate %.4g below target %.4g: nudge the stimulus current up", rate, target)
	case rate > 2*target:
		return fmt.Sprintf("rate %.4g well above target %.4g: reduce the stimulus current or strengthen inhibition", rate, target)
	case rate > 1.1*target:
		return fmt.Sprintf("rate %.4g above target %.4g: nudge the stimulus current down", rate, target)
	}
	return fmt.Sprintf("rate %.4g near target %.4g", rate, target)
}

// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/ints"
	"github.com/goki/mat32"

	"github.com/oscilab/oscnet/synkern"
)

///////////////////////////////////////////////////////////////////////
//  coupling.go: synaptic coupling params and connectivity

// oscnet.CouplingParams govern how past spikes are turned into input
// currents for their targets: a kernel shape with a hard horizon, a
// global interactive scale, and weight bounds.
type CouplingParams struct {
	Scale   float32        `def:"1" min:"0" desc:"global multiplier on all synaptic weights -- the interactive coupling-strength control"`
	Wt      float32        `def:"0.05" desc:"signed weight given to every connection generated from a prjn.Pattern -- explicit Synapse lists carry their own weights"`
	Delay   float32        `def:"0" min:"0" desc:"conduction delay in time units for pattern-generated connections"`
	WtMax   float32        `def:"5" min:"0" desc:"bound on weight magnitude, preventing runaway coupling -- a config with |Wt| beyond this fails validation"`
	SelfCon bool           `desc:"allow self-loop connections -- off by default"`
	Kern    synkern.Params `view:"inline" desc:"post-spike current time course and its horizon"`
}

func (cp *CouplingParams) Defaults() {
	cp.Scale = 1
	cp.Wt = 0.05
	cp.Delay = 0
	cp.WtMax = 5
	cp.SelfCon = false
	cp.Kern.Defaults()
	cp.Update()
}

// Update must be called after any changes to parameters
func (cp *CouplingParams) Update() {
	cp.Kern.Update()
}

// Validate returns a ConfigError if the coupling parameters are not
// usable.
func (cp *CouplingParams) Validate() error {
	if err := cp.Kern.Validate(); err != nil {
		return &ConfigError{Field: "Coupling.Kern", Msg: err.Error()}
	}
	if cp.WtMax <= 0 {
		return &ConfigError{Field: "Coupling.WtMax", Msg: "must be > 0"}
	}
	if math32.Abs(cp.Wt) > cp.WtMax {
		return &ConfigError{Field: "Coupling.Wt", Msg: fmt.Sprintf("magnitude %v exceeds WtMax %v", math32.Abs(cp.Wt), cp.WtMax)}
	}
	if cp.Delay < 0 {
		return &ConfigError{Field: "Coupling.Delay", Msg: "must be >= 0"}
	}
	if cp.Scale < 0 {
		return &ConfigError{Field: "Coupling.Scale", Msg: "must be >= 0"}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////
//  Conns

// oscnet.Conns holds the network connectivity in send-major compact
// index lists, so a spike fans out to its targets with one contiguous
// scan.  Built once per (re)initialization; fixed for the run.
type Conns struct {

	// number of neurons the indexes refer to
	N int

	// number of sending connections per neuron
	SConN []int32

	// starting offset of each neuron's sending connections in the
	// flat lists below
	SConIdxSt []int32

	// flat list of receiver indexes, grouped by sender
	SConIdx []int32

	// signed weight per connection, parallel to SConIdx
	SWt []float32

	// conduction delay per connection, parallel to SConIdx
	SDelay []float32

	// largest conduction delay across all connections
	MaxDelay float32
}

// NSyns returns the total number of connections.
func (cs *Conns) NSyns() int {
	return len(cs.SConIdx)
}

// BuildFmPattern generates connectivity for n neurons from the given
// projection pattern, with uniform weight and delay from cp.
func (cs *Conns) BuildFmPattern(pat prjn.Pattern, cp *CouplingParams, n int) error {
	if pat == nil {
		cs.zero(n)
		return nil
	}
	shp := etensor.NewShape([]int{n}, nil, nil)
	sendn, _, cons := pat.Connect(shp, shp, true)

	cs.N = n
	cs.SConN = make([]int32, n)
	cs.SConIdxSt = make([]int32, n)
	tot := int32(0)
	for si := 0; si < n; si++ {
		nc := sendn.Values[si]
		cs.SConN[si] = nc
		cs.SConIdxSt[si] = tot
		tot += nc
	}
	cs.SConIdx = make([]int32, tot)
	cs.SWt = make([]float32, tot)
	cs.SDelay = make([]float32, tot)

	cbits := cons.Values
	idx := make([]int32, n) // current fill position per sender
	for ri := 0; ri < n; ri++ {
		rbi := ri * n // recv-major bit index, as produced by prjn
		for si := 0; si < n; si++ {
			if !cbits.Index(rbi + si) {
				continue
			}
			off := cs.SConIdxSt[si] + idx[si]
			cs.SConIdx[off] = int32(ri)
			cs.SWt[off] = cp.Wt
			cs.SDelay[off] = cp.Delay
			idx[si]++
		}
	}
	cs.MaxDelay = cp.Delay
	return nil
}

// BuildFmSyns builds connectivity for n neurons from an explicit
// synapse list, validating every reference.  Returns TopologyError
// for indexes outside [0,n) or self-loops when cp.SelfCon is off, and
// ConfigError for weights beyond cp.WtMax or negative delays.
func (cs *Conns) BuildFmSyns(syns []Synapse, cp *CouplingParams, n int) error {
	for i := range syns {
		sy := &syns[i]
		if sy.Si < 0 || sy.Si >= int32(n) || sy.Ri < 0 || sy.Ri >= int32(n) {
			return &TopologyError{Synapse: i, Msg: fmt.Sprintf("(%d -> %d) outside [0,%d)", sy.Si, sy.Ri, n)}
		}
		if sy.Si == sy.Ri && !cp.SelfCon {
			return &TopologyError{Synapse: i, Msg: fmt.Sprintf("self-loop on neuron %d not configured", sy.Si)}
		}
		if math32.Abs(sy.Wt) > cp.WtMax {
			return &ConfigError{Field: "Syns", Msg: fmt.Sprintf("synapse %d weight magnitude %v exceeds WtMax %v", i, math32.Abs(sy.Wt), cp.WtMax)}
		}
		if sy.Delay < 0 {
			return &ConfigError{Field: "Syns", Msg: fmt.Sprintf("synapse %d delay %v is negative", i, sy.Delay)}
		}
	}

	cs.N = n
	cs.SConN = make([]int32, n)
	cs.SConIdxSt = make([]int32, n)
	for i := range syns {
		cs.SConN[syns[i].Si]++
	}
	tot := int32(0)
	for si := 0; si < n; si++ {
		cs.SConIdxSt[si] = tot
		tot += cs.SConN[si]
	}
	cs.SConIdx = make([]int32, tot)
	cs.SWt = make([]float32, tot)
	cs.SDelay = make([]float32, tot)

	cs.MaxDelay = 0
	idx := make([]int32, n)
	for i := range syns {
		sy := &syns[i]
		off := cs.SConIdxSt[sy.Si] + idx[sy.Si]
		cs.SConIdx[off] = sy.Ri
		cs.SWt[off] = sy.Wt
		cs.SDelay[off] = sy.Delay
		idx[sy.Si]++
		if sy.Delay > cs.MaxDelay {
			cs.MaxDelay = sy.Delay
		}
	}
	return nil
}

// zero configures an empty (uncoupled) connectivity for n neurons.
func (cs *Conns) zero(n int) {
	cs.N = n
	cs.SConN = make([]int32, n)
	cs.SConIdxSt = make([]int32, n)
	cs.SConIdx = nil
	cs.SWt = nil
	cs.SDelay = nil
	cs.MaxDelay = 0
}

// HistSteps returns the history depth in steps needed so that every
// spike still within kernel horizon + conduction delay is retained.
func (cs *Conns) HistSteps(kern *synkern.Params, dt float32) int {
	if dt <= 0 {
		return 1
	}
	return ints.MaxInt(kern.HorizonSteps(dt)+int(mat32.Ceil(cs.MaxDelay/dt)), 1)
}

// InputsFmHistory accumulates synaptic input currents into inputs
// (which must be zeroed by the caller) from all retained spikes still
// within the kernel horizon.  Pure function of history, connectivity,
// and elapsed time: a spike age ticks back contributes
// Scale * Wt * kern((age-1)*dt - delay) to each of its targets, so an
// undelayed spike at tick T drives its targets starting at tick T+1,
// evaluated at the start of the kernel.
func (cs *Conns) InputsFmHistory(inputs []float32, hist *SpikeHistory, cp *CouplingParams, dt float32) {
	depth := ints.MinInt(hist.Len(), cs.HistSteps(&cp.Kern, dt))
	for age := 1; age <= depth; age++ {
		spks := hist.Spikes(age)
		if len(spks) == 0 {
			continue
		}
		elapsed := float32(age-1) * dt
		for _, si := range spks {
			st := cs.SConIdxSt[si]
			nc := cs.SConN[si]
			for ci := int32(0); ci < nc; ci++ {
				v := cp.Kern.Eval(elapsed - cs.SDelay[st+ci])
				if v != 0 {
					inputs[cs.SConIdx[st+ci]] += cp.Scale * cs.SWt[st+ci] * v
				}
			}
		}
	}
}

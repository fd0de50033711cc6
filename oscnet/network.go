// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"

	"github.com/oscilab/oscnet/popstats"
)

// oscnet.Network is the complete simulation: the neuron population,
// its connectivity, the bounded spike history, population statistics,
// the clock, and the interactive controller.  All per-tick work
// happens in Step, in strict pipeline order, on a single goroutine.
type Network struct {
	Nm string `desc:"network name"`

	Cfg     SimConfig     `desc:"static configuration, applied at Build / Reset"`
	Neurons []Neuron      `desc:"the neuron population, indexed 0..N-1"`
	Cons    Conns         `desc:"send-major connectivity"`
	Hist    *SpikeHistory `view:"-" desc:"retained spike events, sized to the coupling horizon"`
	Pool    Pool          `desc:"population avg/max stats for the current tick"`
	Stats   popstats.Stats `desc:"population rate signal and frequency estimate"`
	Ctx     Time          `desc:"simulation clock and run state"`
	Ctrl    Controller    `desc:"staged interactive parameter changes"`

	// optional monitors, recorded at the end of every tick when set
	SpikeMon *SpikeMon `view:"-"`
	StateMon *StateMon `view:"-"`
	RateMon  *RateMon  `view:"-"`

	inputs []float32 // per-neuron input current scratch
	spikes []int32   // this tick's spikes, ascending neuron index
	built  bool
}

// TickOutput is the observable result of one tick, consumed by the
// external display layer.
type TickOutput struct {
	Cycle  int     `desc:"cycle counter after this tick"`
	Time   float32 `desc:"simulated time after this tick"`
	Spikes []int32 `desc:"neuron indexes that fired this tick, ascending"`
	Rate   float32 `desc:"instantaneous population rate"`
	Smooth float32 `desc:"smoothed oscillation amplitude trace"`
	Freq   float32 `desc:"oscillation frequency estimate, valid only when FreqOK"`
	FreqOK bool    `desc:"false while the frequency estimate is undetermined"`
}

// NewNetwork returns a new network with the given name and default
// configuration.  Call Build before stepping.
func NewNetwork(name string) *Network {
	nt := &Network{Nm: name}
	nt.Cfg.Defaults()
	return nt
}

// Build (re)constructs all simulation state from the given config
// (nil = the network's current config).  Validation and topology
// building happen before any existing state is touched, so a failed
// Build leaves the prior valid state fully intact.  After a
// successful Build the clock is Stopped at time zero.
func (nt *Network) Build(cfg *SimConfig) error {
	if cfg == nil {
		cfg = &nt.Cfg
	}
	cfg.Update()
	if err := cfg.Validate(); err != nil {
		log.Println(err)
		return err
	}

	var cons Conns
	var err error
	if cfg.Syns != nil {
		err = cons.BuildFmSyns(cfg.Syns, &cfg.Coupling, cfg.N)
	} else {
		err = cons.BuildFmPattern(cfg.Pat, &cfg.Coupling, cfg.N)
	}
	if err != nil {
		log.Println(err)
		return err
	}

	var stats popstats.Stats
	stats.Prm = cfg.Pop
	if err = stats.Config(cfg.N, cfg.Dt); err != nil {
		err = &ConfigError{Field: "Pop", Msg: err.Error()}
		log.Println(err)
		return err
	}

	// validation is done: swap in the new state atomically
	if cfg != &nt.Cfg {
		nt.Cfg = *cfg
	}
	rand.Seed(nt.Cfg.RndSeed)
	nt.Cons = cons
	nt.Stats = stats
	nt.Neurons = make([]Neuron, nt.Cfg.N)
	nt.Hist = NewSpikeHistory(cons.HistSteps(&nt.Cfg.Coupling.Kern, nt.Cfg.Dt), nt.Cfg.N)
	nt.inputs = make([]float32, nt.Cfg.N)
	nt.spikes = make([]int32, 0, nt.Cfg.N)
	nt.Ctx.Reset()
	nt.Ctx.TimePerCyc = nt.Cfg.Dt
	nt.Ctrl.Bounds = nt.Cfg.Bounds
	nt.Ctrl.Init()
	nt.InitActs()
	nt.Pool.Init()
	if nt.SpikeMon != nil {
		nt.SpikeMon.Init()
	}
	if nt.StateMon != nil {
		nt.StateMon.Init()
	}
	if nt.RateMon != nil {
		nt.RateMon.Init()
	}
	nt.built = true
	return nil
}

// InitActs initializes all neuron state from the integration params,
// applying per-neuron overrides and baseline drives.
func (nt *Network) InitActs() {
	for i := range nt.Neurons {
		nrn := &nt.Neurons[i]
		ac := nt.ActFor(int32(i))
		ac.InitActs(nrn)
		if nt.Cfg.Drives != nil {
			nrn.Ext = nt.Cfg.Drives[i]
		}
	}
}

// ActFor returns the integration params for the given neuron:
// the sparse per-neuron override if one exists, else the shared
// population params.
func (nt *Network) ActFor(ni int32) *ActParams {
	if ov, ok := nt.Cfg.Overrides[ni]; ok {
		return ov
	}
	return &nt.Cfg.Act
}

// Reset rebuilds all simulation state from the current config and
// stops the clock.  Given the same config (including RndSeed) the
// resulting state is identical to a fresh Build.  A ConfigError
// leaves the prior valid state untouched and still running.
func (nt *Network) Reset() error {
	return nt.Build(nil)
}

// Start transitions the clock from Stopped or Paused to Running.
func (nt *Network) Start() {
	if nt.built {
		nt.Ctx.Start()
	}
}

// Pause transitions the clock from Running to Paused.
func (nt *Network) Pause() {
	nt.Ctx.Pause()
}

// SetExt sets the baseline drive current of one neuron.
func (nt *Network) SetExt(ni int32, ext float32) {
	nt.Neurons[ni].Ext = ext
}

// Step advances the simulation by exactly one dt if Running, and is a
// no-op returning (nil, nil) while Stopped or Paused.  The per-tick
// pipeline is: commit staged controller changes, compute synaptic
// inputs from the retained spike history, integrate every neuron in
// index order, push this tick's spikes into history, update
// population statistics, increment the clock, record monitors
// (stamped with the end-of-tick time).
func (nt *Network) Step() (*TickOutput, error) {
	if !nt.built {
		return nil, &ConfigError{Field: "Network", Msg: "Build must be called before Step"}
	}
	if nt.Ctx.State != Running {
		return nil, nil
	}
	if err := nt.commitPending(); err != nil {
		return nil, err
	}

	dt := nt.Ctx.TimePerCyc
	time := nt.Ctx.Time + dt // spikes this tick are stamped with end-of-tick time

	for i := range nt.inputs {
		nt.inputs[i] = 0
	}
	nt.Cons.InputsFmHistory(nt.inputs, nt.Hist, &nt.Cfg.Coupling, dt)

	nt.spikes = nt.spikes[:0]
	nt.Pool.Init()
	for i := range nt.Neurons {
		nrn := &nt.Neurons[i]
		ac := nt.ActFor(int32(i))
		nrn.Ge = nt.inputs[i]
		input := nrn.Ge + nrn.Ext + nt.Cfg.StimBase
		if ac.CycleNeuron(nrn, input, dt, time) {
			nt.spikes = append(nt.spikes, int32(i))
		} else if !ac.VmValid(nrn.Vm) {
			return nil, &DivergenceError{Neuron: int32(i), Vm: nrn.Vm, Cycle: nt.Ctx.Cycle}
		}
		nt.Pool.UpdateNeuron(nrn, int32(i))
	}
	nt.Pool.CalcAvg()

	nt.Hist.Push(nt.spikes)
	nt.Stats.Update(len(nt.spikes), time)
	nt.Ctx.CycleInc()

	if nt.SpikeMon != nil {
		nt.SpikeMon.Record(nt.spikes, time)
	}
	if nt.StateMon != nil {
		nt.StateMon.Record(nt)
	}
	if nt.RateMon != nil {
		nt.RateMon.Record(nt)
	}

	out := &TickOutput{
		Cycle:  nt.Ctx.Cycle,
		Time:   time,
		Spikes: append([]int32(nil), nt.spikes...),
		Rate:   nt.Stats.Rate,
		Smooth: nt.Stats.Smooth,
	}
	out.Freq, out.FreqOK = nt.Stats.Freq()
	return out, nil
}

// commitPending applies any staged controller change atomically at
// the tick boundary.  Count and step-size changes rebuild the full
// state (the implicit reset) while preserving the run state, so an
// interactive resize keeps the simulation running.
func (nt *Network) commitPending() error {
	dl, ok := nt.Ctrl.TakePending()
	if !ok {
		return nil
	}
	if dl.Stimulus != nil {
		nt.Cfg.StimBase = *dl.Stimulus
	}
	if dl.CouplingScale != nil {
		nt.Cfg.Coupling.Scale = *dl.CouplingScale
	}
	rebuild := false
	if dl.NeuronCount != nil && *dl.NeuronCount != nt.Cfg.N {
		nt.Cfg.N = *dl.NeuronCount
		// per-neuron config is sized to the old count
		nt.Cfg.Drives = nil
		nt.Cfg.Overrides = nil
		nt.Cfg.Syns = nil
		rebuild = true
	}
	if dl.Dt != nil && *dl.Dt != nt.Cfg.Dt {
		nt.Cfg.Dt = *dl.Dt
		rebuild = true
	}
	if rebuild {
		st := nt.Ctx.State
		if err := nt.Build(nil); err != nil {
			return err
		}
		nt.Ctx.State = st
	}
	return nil
}

// SizeReport returns a human-readable report of memory used by the
// neuron, connection, and history state.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	nmem := len(nt.Neurons) * int(unsafe.Sizeof(Neuron{}))
	smem := nt.Cons.NSyns() * (4 + 4 + 4) // SConIdx + SWt + SDelay
	hmem := 0
	if nt.Hist != nil {
		hmem = (len(nt.Hist.buf) + len(nt.Hist.cnt)) * 4
	}
	fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v\t Syns: %d\t SynMem: %v\t HistMem: %v\n",
		nt.Nm, len(nt.Neurons), (datasize.ByteSize)(nmem).HumanReadable(),
		nt.Cons.NSyns(), (datasize.ByteSize)(smem).HumanReadable(),
		(datasize.ByteSize)(hmem).HumanReadable())
	return b.String()
}

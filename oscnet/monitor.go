// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"fmt"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

///////////////////////////////////////////////////////////////////////
//  monitor.go: optional per-tick recorders feeding etable.Table logs

// SpikeMon records every spike event as a (Time, Neuron) row -- the
// raster.  Attach to Network.SpikeMon; rows accumulate until Init.
type SpikeMon struct {
	Table *etable.Table `desc:"spike raster: one row per spike event"`
}

func NewSpikeMon() *SpikeMon {
	sm := &SpikeMon{Table: &etable.Table{}}
	sm.Config()
	return sm
}

func (sm *SpikeMon) Config() {
	sch := etable.Schema{
		{"Time", etensor.FLOAT32, nil, nil},
		{"Neuron", etensor.INT32, nil, nil},
	}
	sm.Table.SetFromSchema(sch, 0)
}

// Init clears all recorded rows.
func (sm *SpikeMon) Init() {
	sm.Table.SetNumRows(0)
}

// Record appends one row per spike from this tick.
func (sm *SpikeMon) Record(spikes []int32, time float32) {
	for _, ni := range spikes {
		row := sm.Table.Rows
		sm.Table.AddRows(1)
		sm.Table.SetCellFloat("Time", row, float64(time))
		sm.Table.SetCellFloat("Neuron", row, float64(ni))
	}
}

///////////////////////////////////////////////////////////////////////
//  StateMon

// StateMon records selected state variables of selected neurons every
// tick, one row per tick with a column per (neuron, variable) pair
// named e.g. "Vm_12".  Attach to Network.StateMon.
type StateMon struct {
	Units []int32       `desc:"neuron indexes to record"`
	Vars  []string      `desc:"neuron variable names to record, e.g. Vm, Ge, AdaptW"`
	Table *etable.Table `desc:"one row per tick"`
}

// NewStateMon returns a monitor recording the given variables of the
// given neurons.  An unknown variable name surfaces on the first
// Record as a zero column, not an error; use NeuronVarIdxByName to
// check names up front.
func NewStateMon(units []int32, vars []string) *StateMon {
	sm := &StateMon{Units: units, Vars: vars, Table: &etable.Table{}}
	sm.Config()
	return sm
}

func (sm *StateMon) Config() {
	sch := etable.Schema{
		{"Time", etensor.FLOAT32, nil, nil},
	}
	for _, vr := range sm.Vars {
		for _, ui := range sm.Units {
			sch = append(sch, etable.Column{fmt.Sprintf("%s_%d", vr, ui), etensor.FLOAT32, nil, nil})
		}
	}
	sm.Table.SetFromSchema(sch, 0)
}

// Init clears all recorded rows.
func (sm *StateMon) Init() {
	sm.Table.SetNumRows(0)
}

// Record appends one row with the current values of the monitored
// variables.  Units beyond the current population are skipped.
func (sm *StateMon) Record(nt *Network) {
	row := sm.Table.Rows
	sm.Table.AddRows(1)
	sm.Table.SetCellFloat("Time", row, float64(nt.Ctx.Time))
	for _, vr := range sm.Vars {
		vi, err := NeuronVarIdxByName(vr)
		if err != nil {
			continue
		}
		for _, ui := range sm.Units {
			if int(ui) >= len(nt.Neurons) {
				continue
			}
			v := nt.Neurons[ui].VarByIndex(vi)
			sm.Table.SetCellFloat(fmt.Sprintf("%s_%d", vr, ui), row, float64(v))
		}
	}
}

///////////////////////////////////////////////////////////////////////
//  RateMon

// RateMon records the population signal every tick: rate, smoothed
// trace, and the frequency estimate (NaN-free: 0 while undetermined,
// with FreqOK flagging validity).  Attach to Network.RateMon.
type RateMon struct {
	Table *etable.Table `desc:"one row per tick"`
}

func NewRateMon() *RateMon {
	rm := &RateMon{Table: &etable.Table{}}
	rm.Config()
	return rm
}

func (rm *RateMon) Config() {
	sch := etable.Schema{
		{"Time", etensor.FLOAT32, nil, nil},
		{"Rate", etensor.FLOAT32, nil, nil},
		{"Smooth", etensor.FLOAT32, nil, nil},
		{"Freq", etensor.FLOAT32, nil, nil},
		{"FreqOK", etensor.FLOAT32, nil, nil},
	}
	rm.Table.SetFromSchema(sch, 0)
}

// Init clears all recorded rows.
func (rm *RateMon) Init() {
	rm.Table.SetNumRows(0)
}

// Record appends one row with the current population signal.
func (rm *RateMon) Record(nt *Network) {
	row := rm.Table.Rows
	rm.Table.AddRows(1)
	rm.Table.SetCellFloat("Time", row, float64(nt.Ctx.Time))
	rm.Table.SetCellFloat("Rate", row, float64(nt.Stats.Rate))
	rm.Table.SetCellFloat("Smooth", row, float64(nt.Stats.Smooth))
	fq, ok := nt.Stats.Freq()
	rm.Table.SetCellFloat("Freq", row, float64(fq))
	if ok {
		rm.Table.SetCellFloat("FreqOK", row, 1)
	} else {
		rm.Table.SetCellFloat("FreqOK", row, 0)
	}
}

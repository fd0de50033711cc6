// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "testing"

func TestSpikeMonRaster(t *testing.T) {
	nt := NewNetwork("TestNet")
	nt.Cfg.N = 1
	nt.Cfg.Pat = nil
	nt.Cfg.StimBase = 0.1
	nt.SpikeMon = NewSpikeMon()
	if err := nt.Build(nil); err != nil {
		t.Fatalf("Build: %v\n", err)
	}
	nt.Start()

	nspk := 0
	for i := 0; i < 50; i++ {
		out, err := nt.Step()
		if err != nil {
			t.Fatalf("Step: %v\n", err)
		}
		nspk += len(out.Spikes)
	}
	if nt.SpikeMon.Table.Rows != nspk {
		t.Errorf("raster rows %d != total spikes %d\n", nt.SpikeMon.Table.Rows, nspk)
	}
	if nspk == 0 {
		t.Fatalf("no spikes recorded\n")
	}
	// first spike of the driven neuron is at cycle 14, time 14
	tm := nt.SpikeMon.Table.CellFloat("Time", 0)
	if tm != 14 {
		t.Errorf("first raster time %v != 14\n", tm)
	}
	ni := nt.SpikeMon.Table.CellFloat("Neuron", 0)
	if ni != 0 {
		t.Errorf("first raster neuron %v != 0\n", ni)
	}

	nt.SpikeMon.Init()
	if nt.SpikeMon.Table.Rows != 0 {
		t.Errorf("Init did not clear the raster\n")
	}
}

func TestStateMonVars(t *testing.T) {
	nt := NewNetwork("TestNet")
	nt.Cfg.N = 3
	nt.Cfg.Pat = nil
	nt.Cfg.StimBase = 0.1
	nt.StateMon = NewStateMon([]int32{0, 2}, []string{"Vm", "Ge"})
	if err := nt.Build(nil); err != nil {
		t.Fatalf("Build: %v\n", err)
	}
	nt.Start()

	for i := 0; i < 10; i++ {
		if _, err := nt.Step(); err != nil {
			t.Fatalf("Step: %v\n", err)
		}
	}
	if nt.StateMon.Table.Rows != 10 {
		t.Errorf("state rows %d != 10\n", nt.StateMon.Table.Rows)
	}
	// last row matches live neuron state
	row := nt.StateMon.Table.Rows - 1
	got := float32(nt.StateMon.Table.CellFloat("Vm_2", row))
	if got != nt.Neurons[2].Vm {
		t.Errorf("Vm_2 last row %v != live %v\n", got, nt.Neurons[2].Vm)
	}
}

func TestRateMonRows(t *testing.T) {
	nt := NewNetwork("TestNet")
	nt.Cfg.N = 5
	nt.Cfg.Pat = nil
	nt.Cfg.StimBase = 0.1
	nt.RateMon = NewRateMon()
	if err := nt.Build(nil); err != nil {
		t.Fatalf("Build: %v\n", err)
	}
	nt.Start()

	for i := 0; i < 20; i++ {
		if _, err := nt.Step(); err != nil {
			t.Fatalf("Step: %v\n", err)
		}
	}
	if nt.RateMon.Table.Rows != 20 {
		t.Errorf("rate rows %d != 20\n", nt.RateMon.Table.Rows)
	}
	row := nt.RateMon.Table.Rows - 1
	if float32(nt.RateMon.Table.CellFloat("Rate", row)) != nt.Stats.Rate {
		t.Errorf("Rate last row %v != live %v\n", nt.RateMon.Table.CellFloat("Rate", row), nt.Stats.Rate)
	}
	// frequency is undetermined this early
	if nt.RateMon.Table.CellFloat("FreqOK", row) != 0 {
		t.Errorf("FreqOK should be 0 before a full frequency window\n")
	}
}

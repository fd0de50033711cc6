// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing expected
// and computed values
const difTol = float32(1.0e-6)

func TestVmDecay(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Update()

	nrn := &Neuron{}
	ac.InitActs(nrn)
	nrn.Vm = 0.5

	prev := nrn.Vm
	for i := 0; i < 200; i++ {
		spk := ac.CycleNeuron(nrn, 0, 1, float32(i+1))
		if spk {
			t.Errorf("neuron spiked with no input at cycle %d\n", i)
		}
		if nrn.Vm > prev {
			t.Errorf("cycle %d: Vm %v rose above previous %v with no input\n", i, nrn.Vm, prev)
		}
		if nrn.Vm < ac.Rest {
			t.Errorf("cycle %d: Vm %v decayed below Rest %v\n", i, nrn.Vm, ac.Rest)
		}
		prev = nrn.Vm
	}
	if math32.Abs(nrn.Vm-ac.Rest) > 1.0e-3 {
		t.Errorf("Vm did not decay to Rest: %v vs %v\n", nrn.Vm, ac.Rest)
	}
}

func TestVmCharge(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Update()

	nrn := &Neuron{}
	ac.InitActs(nrn)

	// tau = 20, dt = 1, input = 0.1: Vm_{k+1} = 0.95 Vm_k + 0.1
	ex := float32(0)
	for i := 0; i < 10; i++ {
		ac.CycleNeuron(nrn, 0.1, 1, float32(i+1))
		ex = 0.95*ex + 0.1
		dif := math32.Abs(nrn.Vm - ex)
		if dif > difTol {
			t.Errorf("cycle %d: Vm %v != expected %v, dif: %v\n", i, nrn.Vm, ex, dif)
		}
	}
}

func TestSpikeResetRefrac(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Update()

	nrn := &Neuron{}
	ac.InitActs(nrn)

	// constant input 0.1 drives Vm toward fixed point 2: first crossing
	// of Thr = 1 is on cycle 14
	spkCyc := -1
	for i := 1; i <= 20 && spkCyc < 0; i++ {
		if ac.CycleNeuron(nrn, 0.1, 1, float32(i)) {
			spkCyc = i
		}
	}
	if spkCyc != 14 {
		t.Errorf("first spike at cycle %d, expected 14\n", spkCyc)
	}
	if nrn.Vm != ac.Reset {
		t.Errorf("Vm after spike: %v != Reset %v\n", nrn.Vm, ac.Reset)
	}
	if nrn.Spike != 1 {
		t.Errorf("Spike flag not set after spike\n")
	}
	if nrn.RefracLeft != ac.Refrac {
		t.Errorf("RefracLeft after spike: %v != Refrac %v\n", nrn.RefracLeft, ac.Refrac)
	}
	if nrn.LastSpike != float32(spkCyc) {
		t.Errorf("LastSpike: %v != %v\n", nrn.LastSpike, float32(spkCyc))
	}

	// huge input during refractory period must not produce a spike, and
	// RefracHold keeps Vm at Reset
	for i := 0; i < 2; i++ {
		if ac.CycleNeuron(nrn, 100, 1, float32(spkCyc+1+i)) {
			t.Errorf("neuron spiked during refractory period\n")
		}
		if nrn.Vm != ac.Reset {
			t.Errorf("Vm moved during refractory hold: %v\n", nrn.Vm)
		}
	}
	if nrn.RefracLeft != 0 {
		t.Errorf("RefracLeft not exhausted: %v\n", nrn.RefracLeft)
	}

	// periodic spiking: 2 refractory ticks + 14 charging ticks = period 16
	n := 0
	last := float32(spkCyc)
	for i := spkCyc + 3; i <= 200; i++ {
		if ac.CycleNeuron(nrn, 0.1, 1, float32(i)) {
			if n > 0 {
				if float32(i)-last != 16 {
					t.Errorf("inter-spike interval %v != 16 at cycle %d\n", float32(i)-last, i)
				}
			}
			last = float32(i)
			n++
		}
	}
	if n < 10 {
		t.Errorf("too few periodic spikes: %d\n", n)
	}
}

func TestVmValid(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Update()

	if !ac.VmValid(0.5) {
		t.Errorf("0.5 should be valid\n")
	}
	if ac.VmValid(math32.NaN()) {
		t.Errorf("NaN should be invalid\n")
	}
	if ac.VmValid(math32.Inf(1)) {
		t.Errorf("+Inf should be invalid\n")
	}
	if ac.VmValid(ac.VmRange.Max + 1) {
		t.Errorf("value beyond VmRange.Max should be invalid\n")
	}
	if ac.VmValid(ac.VmRange.Min - 1) {
		t.Errorf("value below VmRange.Min should be invalid\n")
	}
}

func TestActValidate(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	if err := ac.Validate(); err != nil {
		t.Errorf("defaults should validate: %v\n", err)
	}

	ac.Tau = 0
	if err := ac.Validate(); err == nil {
		t.Errorf("Tau = 0 should fail validation\n")
	}
	ac.Defaults()
	ac.Thr = ac.Reset
	var cerr *ConfigError
	err := ac.Validate()
	if err == nil {
		t.Errorf("Thr == Reset should fail validation\n")
	} else if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError, got %T\n", err)
	}
}

// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synkern provides synaptic kernel functions: the time course of
the postsynaptic current contributed by a single presynaptic spike.

Every kernel is monotonically non-increasing in elapsed time and is
exactly zero at and beyond the Horizon, so the contribution of any one
spike is bounded and eventually vanishes -- spikes older than the
horizon can be evicted from history without changing any result.
*/
package synkern

import (
	"fmt"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// KernelType are the different shapes of the post-spike current time course
type KernelType int32

//go:generate stringer -type=KernelType

var KiT_KernelType = kit.Enums.AddEnum(KernelTypeN, kit.NotBitFlag, nil)

func (ev KernelType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *KernelType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The kernel types
const (
	// Pulse is a fixed-height pulse lasting Width time units after the spike
	Pulse KernelType = iota

	// ExpDecay decays exponentially from Gain with time constant Tau,
	// truncated to zero at the Horizon
	ExpDecay

	KernelTypeN
)

// Params specifies the kernel shape and its hard horizon.
type Params struct {
	Type    KernelType `desc:"shape of the post-spike current time course"`
	Gain    float32    `def:"1" min:"0" desc:"peak height of the kernel at zero elapsed time"`
	Width   float32    `viewif:"Type=Pulse" def:"1" min:"0" desc:"duration of the fixed-height pulse, in time units -- typically one step"`
	Tau     float32    `viewif:"Type=ExpDecay" def:"5" min:"0.001" desc:"decay time constant for the exponential kernel"`
	Horizon float32    `def:"10" min:"0.001" desc:"hard horizon: elapsed times at or beyond this contribute exactly zero, and such spikes are eligible for eviction"`

	Dt float32 `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / Tau"`
}

func (kp *Params) Defaults() {
	kp.Type = Pulse
	kp.Gain = 1
	kp.Width = 1
	kp.Tau = 5
	kp.Horizon = 10
	kp.Update()
}

// Update must be called after any changes to parameters
func (kp *Params) Update() {
	kp.Dt = 1 / kp.Tau
}

// Validate returns an error if the kernel parameters are not usable.
func (kp *Params) Validate() error {
	if kp.Horizon <= 0 {
		return fmt.Errorf("synkern.Params: Horizon must be > 0, is: %v", kp.Horizon)
	}
	if kp.Type == ExpDecay && kp.Tau <= 0 {
		return fmt.Errorf("synkern.Params: Tau must be > 0, is: %v", kp.Tau)
	}
	if kp.Gain < 0 {
		return fmt.Errorf("synkern.Params: Gain must be >= 0, is: %v", kp.Gain)
	}
	return nil
}

// Eval returns the kernel value for given elapsed time since the
// spike arrived (i.e., spike time + conduction delay).  Negative
// elapsed times (delayed spikes not yet arrived) and times at or
// beyond the Horizon return exactly 0.
func (kp *Params) Eval(elapsed float32) float32 {
	if elapsed < 0 || elapsed >= kp.Horizon {
		return 0
	}
	switch kp.Type {
	case Pulse:
		if elapsed < kp.Width {
			return kp.Gain
		}
		return 0
	case ExpDecay:
		return kp.Gain * mat32.FastExp(-elapsed*kp.Dt)
	}
	return 0
}

// HorizonSteps returns the number of discrete steps of size dt that
// fully cover the horizon: history this many steps deep is sufficient
// for exact coupling computation.
func (kp *Params) HorizonSteps(dt float32) int {
	if dt <= 0 {
		return 0
	}
	return int(mat32.Ceil(kp.Horizon / dt))
}

// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "fmt"

// ConfigError reports an invalid static simulation parameter.  It is
// fatal to the Build or Reset call that detected it: the prior valid
// state, if any, is left untouched.
type ConfigError struct {
	Field string // parameter that failed validation
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("oscnet: config: %s: %s", e.Field, e.Msg)
}

// TopologyError reports a malformed synapse: a reference to a
// nonexistent neuron index, or a self-loop where none is configured.
// It is fatal at initialization.
type TopologyError struct {
	Synapse int // index of the offending synapse
	Msg     string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("oscnet: topology: synapse %d: %s", e.Synapse, e.Msg)
}

// ValidationError reports an out-of-bounds interactive parameter
// change.  It is recoverable: the change is rejected and the running
// simulation is unaffected.
type ValidationError struct {
	Option string // which ParamDelta option was rejected
	Msg    string // the violated bound
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("oscnet: control: %s: %s", e.Option, e.Msg)
}

// DivergenceError reports a membrane potential that became non-finite
// or left the configured valid range after a step, typically from a
// dt too large relative to Tau.  It is surfaced, never silently
// clamped, since clamping would hide the misconfiguration.
type DivergenceError struct {
	Neuron int32
	Vm     float32
	Cycle  int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("oscnet: divergence: neuron %d Vm = %v at cycle %d (dt too large for Tau?)", e.Neuron, e.Vm, e.Cycle)
}

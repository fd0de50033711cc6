// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package oscnet implements a discrete-time spiking neural network engine
for interactively exploring population oscillations.

The engine advances leaky integrate-and-fire neurons (optionally with
AdEx spike-initiation and adaptation currents) one fixed step at a
time, applies delayed synaptic coupling from a bounded spike history,
and aggregates spikes into a population rate signal with a frequency
estimate.  It has no timer, renderer, or persistence of its own: an
external loop triggers each tick and consumes the TickOutput, and the
Controller stages parameter changes that are applied atomically at
tick boundaries.

The per-tick pipeline is strictly ordered and single threaded:
controller commit, coupling inputs from history, neuron integration in
index order, spike history push, population statistics, clock
increment, monitors.
*/
package oscnet

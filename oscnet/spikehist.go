// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import "github.com/goki/ki/ints"

// SpikeHistory is a fixed-capacity arena of per-tick spike index
// lists, indexed by tick modulo capacity.  Capacity is sized to the
// coupling horizon at build time, so eviction of stale spikes is the
// ring overwrite itself: O(1), no allocation after construction.
type SpikeHistory struct {

	// number of ticks retained
	Cap int

	// maximum spikes per tick (= number of neurons)
	NMax int

	// total ticks pushed since Init
	Ticks int

	buf []int32 // flat arena: Cap slots of NMax entries
	cnt []int32 // spikes recorded per slot
}

// NewSpikeHistory returns a history retaining cap ticks of up to
// nmax spikes each.
func NewSpikeHistory(cap, nmax int) *SpikeHistory {
	sh := &SpikeHistory{}
	sh.Config(cap, nmax)
	return sh
}

// Config allocates the arena.  cap and nmax are clamped to >= 1.
func (sh *SpikeHistory) Config(cap, nmax int) {
	sh.Cap = ints.MaxInt(cap, 1)
	sh.NMax = ints.MaxInt(nmax, 1)
	sh.buf = make([]int32, sh.Cap*sh.NMax)
	sh.cnt = make([]int32, sh.Cap)
	sh.Init()
}

// Init clears all retained spikes.
func (sh *SpikeHistory) Init() {
	sh.Ticks = 0
	for i := range sh.cnt {
		sh.cnt[i] = 0
	}
}

// Push records the spikes of the just-completed tick, overwriting the
// oldest slot once the ring is full.
func (sh *SpikeHistory) Push(spikes []int32) {
	slot := sh.Ticks % sh.Cap
	n := ints.MinInt(len(spikes), sh.NMax)
	copy(sh.buf[slot*sh.NMax:], spikes[:n])
	sh.cnt[slot] = int32(n)
	sh.Ticks++
}

// Len returns the number of ticks currently retained.
func (sh *SpikeHistory) Len() int {
	return ints.MinInt(sh.Ticks, sh.Cap)
}

// Spikes returns the neuron indexes that spiked age ticks ago
// (age = 1 is the most recently pushed tick).  Returns nil if that
// tick is not retained.  The returned slice aliases the arena and is
// valid until the slot is overwritten.
func (sh *SpikeHistory) Spikes(age int) []int32 {
	if age < 1 || age > sh.Len() {
		return nil
	}
	slot := (sh.Ticks - age) % sh.Cap
	return sh.buf[slot*sh.NMax : slot*sh.NMax+int(sh.cnt[slot])]
}

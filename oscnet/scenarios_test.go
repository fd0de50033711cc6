// Copyright (c) 2025, The Oscnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oscnet

import (
	"strings"
	"testing"
)

func TestScenarioConfigBuilds(t *testing.T) {
	for _, nm := range ScenarioNames {
		sc := Scenarios[nm]
		if sc == nil {
			t.Fatalf("scenario %s missing\n", nm)
		}
		nt := NewNetwork(nm)
		if err := sc.Config(&nt.Cfg); err != nil {
			t.Fatalf("%s Config: %v\n", nm, err)
		}
		if nt.Cfg.N != sc.NTotal() {
			t.Errorf("%s: N %d != NTotal %d\n", nm, nt.Cfg.N, sc.NTotal())
		}
		if err := nt.Build(nil); err != nil {
			t.Fatalf("%s Build: %v\n", nm, err)
		}
		nt.Start()
		for i := 0; i < 50; i++ {
			if _, err := nt.Step(); err != nil {
				t.Fatalf("%s Step %d: %v\n", nm, i, err)
			}
		}
	}
}

func TestScenarioPopRange(t *testing.T) {
	sc := Scenarios["EPVSOM"]
	st, ed, err := sc.PopRange("E")
	if err != nil || st != 0 || ed != 80 {
		t.Errorf("E range: [%d,%d) err %v\n", st, ed, err)
	}
	st, ed, err = sc.PopRange("PV")
	if err != nil || st != 80 || ed != 92 {
		t.Errorf("PV range: [%d,%d) err %v\n", st, ed, err)
	}
	st, ed, err = sc.PopRange("SOM")
	if err != nil || st != 92 || ed != 100 {
		t.Errorf("SOM range: [%d,%d) err %v\n", st, ed, err)
	}
	if _, _, err = sc.PopRange("VIP"); err == nil {
		t.Errorf("unknown population should error\n")
	}
}

func TestScenarioDeterministic(t *testing.T) {
	sc := Scenarios["EPV"]

	cfg1 := SimConfig{}
	cfg1.Defaults()
	cfg1.RndSeed = 7
	if err := sc.Config(&cfg1); err != nil {
		t.Fatalf("Config: %v\n", err)
	}
	cfg2 := SimConfig{}
	cfg2.Defaults()
	cfg2.RndSeed = 7
	if err := sc.Config(&cfg2); err != nil {
		t.Fatalf("Config: %v\n", err)
	}

	if len(cfg1.Syns) != len(cfg2.Syns) {
		t.Fatalf("synapse counts differ: %d vs %d\n", len(cfg1.Syns), len(cfg2.Syns))
	}
	for i := range cfg1.Syns {
		if cfg1.Syns[i] != cfg2.Syns[i] {
			t.Fatalf("synapse %d differs: %v vs %v\n", i, cfg1.Syns[i], cfg2.Syns[i])
		}
	}
	for i := range cfg1.Drives {
		if cfg1.Drives[i] != cfg2.Drives[i] {
			t.Fatalf("drive %d differs: %v vs %v\n", i, cfg1.Drives[i], cfg2.Drives[i])
		}
	}
}

func TestScenarioSigns(t *testing.T) {
	sc := Scenarios["EPV"]
	cfg := SimConfig{}
	cfg.Defaults()
	if err := sc.Config(&cfg); err != nil {
		t.Fatalf("Config: %v\n", err)
	}
	est, eed, _ := sc.PopRange("E")
	for _, sy := range cfg.Syns {
		exc := int(sy.Si) >= est && int(sy.Si) < eed
		if exc && sy.Wt <= 0 {
			t.Errorf("excitatory synapse %d -> %d has weight %v\n", sy.Si, sy.Ri, sy.Wt)
		}
		if !exc && sy.Wt >= 0 {
			t.Errorf("inhibitory synapse %d -> %d has weight %v\n", sy.Si, sy.Ri, sy.Wt)
		}
	}
}

func TestRateHint(t *testing.T) {
	if RateHint(0, 0.01) == "" {
		t.Errorf("silent population should get a hint\n")
	}
	if !strings.Contains(RateHint(0.001, 0.01), "below") {
		t.Errorf("low rate hint: %s\n", RateHint(0.001, 0.01))
	}
	if !strings.Contains(RateHint(0.05, 0.01), "above") {
		t.Errorf("high rate hint: %s\n", RateHint(0.05, 0.01))
	}
	if !strings.Contains(RateHint(0.01, 0.01), "near") {
		t.Errorf("on-target hint: %s\n", RateHint(0.01, 0.01))
	}
	if RateHint(0.01, 0) != "" {
		t.Errorf("no target should give no hint\n")
	}
}

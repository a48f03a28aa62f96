// This file is part of gba-core.
//
// gba-core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gba-core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gba-core.  If not, see <https://www.gnu.org/licenses/>.

// Package config collects the small set of runtime tunables this emulator
// core exposes, following the teacher's prefs.Preferences shape: a plain
// struct of fields plus a binder onto a stdlib flag.FlagSet, rather than a
// third-party configuration library (the teacher's own entry point,
// gopher2600.go, binds its options with stdlib flag too).
package config

import "flag"

// DMAPriority fixes the evaluation order used when more than one DMA
// channel is eligible to trigger on the same peripheral step (spec.md §9
// open question, resolved channel 0 > 1 > 2 > 3), grounded directly on
// original_source/src/core/dma.rs's DmaController::step/notify_vblank/
// notify_hblank, all of which loop `for ch in 0..4` with no separate
// priority field.
var DMAPriority = [4]int{0, 1, 2, 3}

// Config holds the tunables that affect observable timing or diagnostics,
// but never game-visible instruction semantics.
type Config struct {
	// CycleAccurateRefill charges one extra internal cycle for the pipeline
	// refill after any instruction other than B/BL/BX that flushes the
	// pipeline, such as an LDM that loads PC (SPEC_FULL.md's Open Questions
	// decision 1). Disabling it charges a flat cost instead; useful for
	// deterministic cycle-count tests.
	CycleAccurateRefill bool

	// LogBusErrors controls whether unmapped bus access (spec.md §7's
	// BusError) is recorded to the shared logger. Reads/writes still behave
	// identically either way; this only affects diagnostics.
	LogBusErrors bool

	// Instrumentation enables the internal/monitor stats dashboard.
	Instrumentation bool

	// InstrumentationAddr is the listen address for the dashboard, only
	// consulted when Instrumentation is true.
	InstrumentationAddr string
}

// Default returns the configuration this core runs with unless overridden.
func Default() Config {
	return Config{
		CycleAccurateRefill: true,
		LogBusErrors:        true,
		Instrumentation:     false,
		InstrumentationAddr: "localhost:18086",
	}
}

// BindFlags registers the config's fields onto fs, using c's current values
// as defaults. Call before fs.Parse.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.CycleAccurateRefill, "cycle-accurate-refill", c.CycleAccurateRefill, "charge pipeline-refill cycle cost for instructions that flush the pipeline, such as LDM-with-PC")
	fs.BoolVar(&c.LogBusErrors, "log-bus-errors", c.LogBusErrors, "log unmapped bus access")
	fs.BoolVar(&c.Instrumentation, "instrument", c.Instrumentation, "enable the stats dashboard")
	fs.StringVar(&c.InstrumentationAddr, "instrument-addr", c.InstrumentationAddr, "listen address for the stats dashboard")
}

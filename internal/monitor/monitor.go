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

// Package monitor wires github.com/go-echarts/statsview into a live
// dashboard of a running GBA instance, gated behind Config.Instrumentation
// the way the teacher gates its own optional subsystems behind command
// line flags (spec.md and SPEC_FULL.md's DOMAIN STACK section). Counters
// are plain fields this package's owner increments directly; statsview
// itself only serves the runtime charts (goroutines, heap, GC pause) that
// come for free with the library, the same "point it at a port and watch
// it" usage the teacher's own optional subsystems favour.
package monitor

import (
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Counters are the emulator-level rates a caller increments once per
// Step/transfer/IRQ; Monitor only exposes their current totals, leaving
// rate computation to whatever reads them (e.g. a periodic diff).
type Counters struct {
	Cycles       uint64
	Frames       uint64
	DMATransfers uint64
	IRQsBySource [14]uint64
}

func (c *Counters) AddCycles(n uint64)       { atomic.AddUint64(&c.Cycles, n) }
func (c *Counters) AddFrame()                { atomic.AddUint64(&c.Frames, 1) }
func (c *Counters) AddDMATransfer()          { atomic.AddUint64(&c.DMATransfers, 1) }
func (c *Counters) AddIRQ(sourceBit int) {
	if sourceBit >= 0 && sourceBit < len(c.IRQsBySource) {
		atomic.AddUint64(&c.IRQsBySource[sourceBit], 1)
	}
}

// Monitor owns a statsview.ViewManager and this core's own Counters.
type Monitor struct {
	Counters Counters
	mgr      *statsview.ViewManager
}

// New constructs a Monitor that will serve its dashboard at addr once
// Start is called.
func New(addr string) *Monitor {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	return &Monitor{mgr: mgr}
}

// Start launches the dashboard's HTTP server in a background goroutine.
// It does not block; call Stop to shut it down.
func (m *Monitor) Start() {
	go m.mgr.Start()
}

// Stop shuts down the dashboard's HTTP server.
func (m *Monitor) Stop() {
	m.mgr.Stop()
}

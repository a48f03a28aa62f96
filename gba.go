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

// Package gbacore wires the CPU, bus and peripherals into a single
// runnable machine, the role the teacher's root gopher2600.go package
// plays for its VCS (there: TIA+RIOT+6502 behind a debugger/GUI launch
// shell; here: GPU+DMA+timers+interrupt+keypad behind a plain Frame
// loop, since this core has no debugger/GUI surface of its own).
package gbacore

import (
	"github.com/pixelscan/gba-core/hardware/bus"
	"github.com/pixelscan/gba-core/hardware/controller"
	"github.com/pixelscan/gba-core/hardware/cpu"
	"github.com/pixelscan/gba-core/hardware/dma"
	"github.com/pixelscan/gba-core/hardware/gpu"
	"github.com/pixelscan/gba-core/hardware/interrupt"
	"github.com/pixelscan/gba-core/hardware/timer"
	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/logger"
)

// GBA is the whole machine: one CPU, one bus, and the fixed peripheral
// set the main loop steps in spec.md §4.9's order (timers -> GPU -> DMA,
// then an IRQ check).
type GBA struct {
	cfg config.Config
	log *logger.Log

	Bus       *bus.Bus
	CPU       *cpu.CPU
	GPU       *gpu.GPU
	DMA       *dma.Controller
	Timers    *timer.Bank
	Interrupt *interrupt.Controller
	Keypad    *controller.Keypad
}

// New assembles a machine from a BIOS image and a cartridge ROM image,
// attaching every peripheral to the bus in the fixed order spec.md §5
// assumes for overlapping OwnsIO ranges to never arise (they don't here:
// each peripheral owns a disjoint register window).
func New(cfg config.Config, log *logger.Log, bios, rom []byte) *GBA {
	b := bus.New(cfg, log, bios, rom)

	irq := interrupt.New()
	timers := timer.New(irq)
	dmaCtl := dma.New(b, irq, cfg, log)
	gpuCore := gpu.New(b, irq, dmaCtl)
	keypad := controller.New(irq)

	b.Attach(irq)
	b.Attach(timers)
	b.Attach(dmaCtl)
	b.Attach(gpuCore)
	b.Attach(keypad)

	g := &GBA{
		cfg:       cfg,
		log:       log,
		Bus:       b,
		CPU:       cpu.New(b, cfg),
		GPU:       gpuCore,
		DMA:       dmaCtl,
		Timers:    timers,
		Interrupt: irq,
		Keypad:    keypad,
	}
	return g
}

// Step executes exactly one CPU instruction, advances every peripheral by
// the cycles it cost, and checks for a pending IRQ, in the fixed order
// spec.md §4.9 requires: "every peripheral always advances by the same
// instruction's cycle cost before the next instruction fetches, and the
// CPU's IRQ-pending check happens only after all peripherals for that
// step have run." Returns the cycle cost charged.
func (g *GBA) Step() uint64 {
	cost := g.CPU.Step()

	g.Timers.Step(cost)
	g.GPU.Step(cost)
	g.DMA.Step(cost)

	g.CPU.IRQPending(g.Interrupt.Pending() != 0)

	return cost
}

// Frame runs Step until the GPU has entered VBlank and returned to HDraw
// at scanline 0, i.e. until exactly one new frame has been rendered, and
// returns the framebuffer for that frame (spec.md §6's render() argument
// shape: Width*Height Rgb15 values, row-major).
func (g *GBA) Frame() []gpu.Rgb15 {
	start := g.GPU.FrameCount()
	for g.GPU.FrameCount() == start {
		g.Step()
	}
	for g.GPU.State() == gpu.VBlank {
		g.Step()
	}
	return g.GPU.Framebuffer()
}

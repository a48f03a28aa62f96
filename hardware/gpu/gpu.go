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

// Package gpu implements the scanline state machine of spec.md §4.8: a
// fixed HDraw -> HBlank -> HDraw -> ... cycle that, at scanline 160, gives
// way to a 68-scanline VBlank before wrapping back to scanline 0. No
// implementation file for the teacher's own scanline chip (TIA) survived
// retrieval into this pack — only its package-level test files did — so
// this package is grounded on spec.md §4.8 directly, following the
// constants-block-plus-New-constructor shape the teacher uses throughout
// (hardware/clocks, hardware/television) and the re-evaluate-every-Step
// discipline SPEC_FULL.md's supplement calls for. Each completed frame is
// folded into an internal/digest.Stream so a caller can compare runs by
// digest rather than framebuffer contents.
package gpu

import (
	"encoding/binary"

	"github.com/pixelscan/gba-core/hardware/bus"
	"github.com/pixelscan/gba-core/hardware/interrupt"
	"github.com/pixelscan/gba-core/internal/digest"
)

// State is one phase of the scanline cycle (spec.md §3).
type State int

const (
	HDraw State = iota
	HBlank
	VBlank
)

func (s State) String() string {
	switch s {
	case HDraw:
		return "HDraw"
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	default:
		return "?"
	}
}

// Timing constants, fixed by hardware (spec.md §4.8).
const (
	HDrawCycles      = 960
	HBlankCycles     = 272
	ScanlineCycles   = HDrawCycles + HBlankCycles
	VisibleScanlines = 160
	TotalScanlines   = 228
	VBlankCycles     = (TotalScanlines - VisibleScanlines) * ScanlineCycles
)

// Width and Height are the visible framebuffer dimensions (spec.md §6).
const (
	Width  = 240
	Height = 160
)

// I/O register offsets relative to the bus's I/O base, per spec.md §6.
const (
	offsetDISPCNT  = 0x0000
	offsetDISPSTAT = 0x0004
	offsetVCOUNT   = 0x0006
	offsetBGCNT0   = 0x0008
	offsetBGHOFS0  = 0x0010
)

// DISPSTAT bit positions.
const (
	dispstatVBlankFlag  = 1 << 0
	dispstatHBlankFlag  = 1 << 1
	dispstatVCountFlag  = 1 << 2
	dispstatVBlankIRQ   = 1 << 3
	dispstatHBlankIRQ   = 1 << 4
	dispstatVCountIRQ   = 1 << 5
	dispstatVCountShift = 8
)

// dmaHook is the subset of hardware/dma's Controller this package needs,
// declared locally so gpu doesn't import dma, mirroring the arm/thumb
// Core-interface decoupling pattern elsewhere in this module.
type dmaHook interface {
	OnVBlank()
	OnHBlank()
}

// GPU is the scanline engine: state machine, register file, and
// framebuffer. It is attached to the bus as a bus.Peripheral for its
// register window and reads VRAM/palette/OAM directly through the bus for
// rendering, the same split hardware/dma uses for its transfers.
type GPU struct {
	bus *bus.Bus
	irq *interrupt.Controller
	dma dmaHook

	state         State
	scanline      int
	cyclesInState uint64

	dispcnt     uint16
	dispstat    uint16
	bgcnt       [4]uint16
	bghofs      [4]uint16
	bgvofs      [4]uint16
	vcountMatch bool

	framebuffer [Width * Height]Rgb15
	frameCount  uint64

	frameDigest *digest.Stream
	lastDigest  string
}

// New returns a GPU reset to (HDraw, scanline 0, cycle 0), the power-on
// state spec.md §3 implies.
func New(b *bus.Bus, irq *interrupt.Controller, dma dmaHook) *GPU {
	return &GPU{bus: b, irq: irq, dma: dma, frameDigest: digest.NewStream()}
}

// Framebuffer returns the most recently rendered frame, row-major,
// Width*Height Rgb15 values (spec.md §6's render() argument shape).
func (g *GPU) Framebuffer() []Rgb15 { return g.framebuffer[:] }

// FrameCount returns how many times VBlank has been entered, the
// §8-testable "rendered exactly once per frame" counter.
func (g *GPU) FrameCount() uint64 { return g.frameCount }

// FrameDigest returns the SHA-1 hex digest of the most recently completed
// frame, folded over every frame produced since New, the way a golden-
// output regression test would compare emulator runs without keeping
// every framebuffer in memory (internal/digest.Stream).
func (g *GPU) FrameDigest() string { return g.lastDigest }

// frameBytes packs the current framebuffer as little-endian halfwords for
// digest.Stream.Add, which only knows how to hash raw bytes.
func (g *GPU) frameBytes() []byte {
	buf := make([]byte, 2*len(g.framebuffer))
	for i, px := range g.framebuffer {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(px))
	}
	return buf
}

// State, Scanline report the engine's current phase, for the main loop's
// frame() to know when a VBlank->HDraw transition starts a new frame.
func (g *GPU) State() State  { return g.state }
func (g *GPU) Scanline() int { return g.scanline }

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

package gpu

import "github.com/pixelscan/gba-core/hardware/interrupt"

// Step advances the scanline state machine by cycles CPU cycles, per
// spec.md §4.8. The VCount match is re-evaluated on every call rather
// than only at state transitions (SPEC_FULL.md supplement), so a match
// that lands mid-HDraw is still caught at instruction granularity.
func (g *GPU) Step(cycles uint64) {
	g.cyclesInState += cycles
	g.checkVCountMatch()

	switch g.state {
	case HDraw:
		for g.cyclesInState >= HDrawCycles {
			g.cyclesInState -= HDrawCycles
			g.renderScanline()
			g.enterHBlank()
			g.checkVCountMatch()
		}
	case HBlank:
		for g.cyclesInState >= HBlankCycles {
			g.cyclesInState -= HBlankCycles
			g.advanceScanline()
			g.checkVCountMatch()
		}
	case VBlank:
		for g.cyclesInState >= VBlankCycles {
			g.cyclesInState -= VBlankCycles
			g.scanline = 0
			g.state = HDraw
			g.checkVCountMatch()
		}
	}
}

// enterHBlank transitions HDraw -> HBlank, raising the HBlank IRQ (if
// enabled) and notifying DMA's H-blank-timed channels.
func (g *GPU) enterHBlank() {
	g.state = HBlank
	if g.dispstat&dispstatHBlankIRQ != 0 {
		g.irq.Raise(interrupt.HBlank)
	}
	if g.dma != nil {
		g.dma.OnHBlank()
	}
}

// advanceScanline transitions HBlank -> HDraw (or -> VBlank at scanline
// 160), per spec.md §4.8.
func (g *GPU) advanceScanline() {
	g.scanline++
	if g.scanline == VisibleScanlines {
		g.state = VBlank
		g.frameCount++
		g.lastDigest = g.frameDigest.Add(g.frameBytes())
		if g.dispstat&dispstatVBlankIRQ != 0 {
			g.irq.Raise(interrupt.VBlank)
		}
		if g.dma != nil {
			g.dma.OnVBlank()
		}
		return
	}
	g.state = HDraw
}

func (g *GPU) checkVCountMatch() {
	match := g.scanline == g.vcountSetting()
	if match && !g.vcountMatch && g.dispstat&dispstatVCountIRQ != 0 {
		g.irq.Raise(interrupt.VCount)
	}
	g.vcountMatch = match
}

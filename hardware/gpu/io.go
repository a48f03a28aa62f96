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

// OwnsIO reports whether offset falls within DISPCNT..BG3VOFS, the
// register block this package owns (spec.md §6).
func (g *GPU) OwnsIO(offset uint32) bool {
	return offset >= offsetDISPCNT && offset < offsetBGHOFS0+8*2
}

// ReadIO16 returns one register halfword. DISPSTAT's status bits
// (VBlank/HBlank/VCount flags) are computed live from the state machine
// rather than stored, so a read always reflects the current phase.
func (g *GPU) ReadIO16(offset uint32) uint16 {
	switch {
	case offset == offsetDISPCNT:
		return g.dispcnt
	case offset == offsetDISPSTAT:
		return g.dispstatValue()
	case offset == offsetVCOUNT:
		return uint16(g.scanline)
	case offset >= offsetBGCNT0 && offset < offsetBGCNT0+4*2:
		return g.bgcnt[(offset-offsetBGCNT0)/2]
	case offset >= offsetBGHOFS0 && offset < offsetBGHOFS0+8*2:
		i := (offset - offsetBGHOFS0) / 2
		if i%2 == 0 {
			return g.bghofs[i/2]
		}
		return g.bgvofs[i/2]
	default:
		return 0
	}
}

// WriteIO16 applies a register write.
func (g *GPU) WriteIO16(offset uint32, v uint16) {
	switch {
	case offset == offsetDISPCNT:
		g.dispcnt = v
	case offset == offsetDISPSTAT:
		// Status bits (0-2) are read-only; only the IRQ-enable and
		// VCount-setting fields are writable (spec.md §6).
		const writable = dispstatVBlankIRQ | dispstatHBlankIRQ | dispstatVCountIRQ | 0xFF00
		g.dispstat = g.dispstat&^uint16(writable) | v&uint16(writable)
	case offset >= offsetBGCNT0 && offset < offsetBGCNT0+4*2:
		g.bgcnt[(offset-offsetBGCNT0)/2] = v
	case offset >= offsetBGHOFS0 && offset < offsetBGHOFS0+8*2:
		i := (offset - offsetBGHOFS0) / 2
		if i%2 == 0 {
			g.bghofs[i/2] = v & 0x01FF
		} else {
			g.bgvofs[i/2] = v & 0x01FF
		}
	}
}

func (g *GPU) dispstatValue() uint16 {
	v := g.dispstat &^ uint16(dispstatVBlankFlag|dispstatHBlankFlag|dispstatVCountFlag)
	if g.state == VBlank {
		v |= dispstatVBlankFlag
	}
	if g.state == HBlank {
		v |= dispstatHBlankFlag
	}
	if g.vcountMatch {
		v |= dispstatVCountFlag
	}
	return v
}

func (g *GPU) vcountSetting() int {
	return int(g.dispstat >> dispstatVCountShift)
}

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

package arm

// execSingleDataSwap implements SWP/SWPB (spec.md §4.5): atomically
// exchanges a word or byte between memory and a register. This emulator is
// single-threaded and cooperative (spec.md §5) so "atomically" here just
// means the read and write happen with no intervening peripheral or IRQ
// check, which is automatically true within one handler call.
func execSingleDataSwap(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	byteWidth := raw&(1<<22) != 0
	rn := int((raw >> 16) & 0xF)
	rd := int((raw >> 12) & 0xF)
	rm := int(raw & 0xF)

	addr := core.R(rn)

	if byteWidth {
		old := bus.Read8(addr)
		bus.Write8(addr, uint8(core.R(rm)))
		core.SetR(rd, uint32(old))
	} else {
		old := bus.Read32(addr)
		bus.Write32(addr, core.R(rm))
		core.SetR(rd, old)
	}

	return Advance(4)
}

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

package thumb

import "github.com/pixelscan/gba-core/hardware/cpu/arm"

// execHiRegisterOps implements format 5: ADD/CMP/MOV between any pair of
// the sixteen registers, plus BX. Grounded on executeHiRegisterOps, with
// one deliberate generalisation: the teacher's BX case calls out to an
// emulated cartridge-coprocessor function-call hook (ARMinterrupt) because
// its ARM core exists only to run Thumb subroutines on behalf of a 6502
// host. This core is a real ARM7TDMI, so BX to an even address here
// genuinely switches the CPU into ARM execution, the way
// arm.execBranchExchange's BX does the reverse.
func execHiRegisterOps(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	op := (raw & 0x300) >> 8
	rd := int(raw & 0x07)
	rs := int((raw & 0x38) >> 3)
	if raw&0x80 != 0 {
		rd += 8
	}
	if raw&0x40 != 0 {
		rs += 8
	}

	switch op {
	case 0b00: // ADD
		result := core.R(rd) + core.R(rs)
		core.SetR(rd, result)
		if rd == 15 {
			core.FlushPipeline()
			return Flushed()
		}
		return Advance(2)
	case 0b01: // CMP
		r := arm.Apply(arm.CMP, core.R(rd), core.R(rs), false, core.CPSR().C)
		sr := core.CPSR()
		arm.ApplyToCPSR(&sr, arm.CMP, r)
		core.SetCPSR(sr)
		return Advance(2)
	case 0b10: // MOV
		core.SetR(rd, core.R(rs))
		if rd == 15 {
			core.FlushPipeline()
			return Flushed()
		}
		return Advance(2)
	default: // 0b11: BX
		var value uint32
		if rs == 15 {
			value = insn.PC + 4
		} else {
			value = core.R(rs)
		}
		thumbMode := value&1 != 0

		sr := core.CPSR()
		sr.T = thumbMode
		core.SetCPSR(sr)

		if thumbMode {
			core.SetPC(value &^ 1)
		} else {
			core.SetPC(value &^ 3)
		}
		core.FlushPipeline()
		return Flushed()
	}
}

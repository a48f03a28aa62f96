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

import "math/bits"

// execLoadAddress implements format 12, grounded on executeLoadAddress:
// Rd = SP + offset or Rd = PC + offset, both word-aligned 10-bit offsets.
func execLoadAddress(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	sp := raw&0x0800 != 0
	rd := int((raw & 0x0700) >> 8)
	offset := uint32(raw&0x00ff) << 2

	if sp {
		core.SetR(rd, core.R(13)+offset)
	} else {
		core.SetR(rd, ((insn.PC+4)&^3)+offset)
	}
	return Advance(2)
}

// execAddOffsetToSP implements format 13, grounded on
// executeAddOffsetToSP: a signed 7-bit offset, pre-scaled by 4.
func execAddOffsetToSP(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	negative := raw&0x80 != 0
	imm := uint32(raw&0x7f) << 2

	if negative {
		core.SetR(13, core.R(13)-imm)
	} else {
		core.SetR(13, core.R(13)+imm)
	}
	return Advance(2)
}

// execPushPopRegisters implements format 14, grounded on
// executePushPopRegisters: registers R0..R7 in ascending order plus an
// optional LR (push) / PC (pop) slot.
func execPushPopRegisters(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	pclr := raw&0x0100 != 0
	list := uint8(raw & 0x00ff)

	if load {
		addr := core.R(13)
		for i := 0; i <= 7; i++ {
			if list&(1<<i) != 0 {
				core.SetR(i, bus.Read32(addr))
				addr += 4
			}
		}
		flushed := false
		if pclr {
			v := bus.Read32(addr) &^ 1
			core.SetPC(v)
			addr += 4
			core.FlushPipeline()
			flushed = true
		}
		core.SetR(13, addr)
		if flushed {
			return Flushed()
		}
		return Advance(2)
	}

	count := bits.OnesCount8(list)
	if pclr {
		count++
	}
	addr := core.R(13) - uint32(count)*4
	start := addr

	for i := 0; i <= 7; i++ {
		if list&(1<<i) != 0 {
			bus.Write32(addr, core.R(i))
			addr += 4
		}
	}
	if pclr {
		bus.Write32(addr, core.R(14))
	}
	core.SetR(13, start)
	return Advance(2)
}

// execMultipleLoadStore implements format 15, grounded on
// executeMultipleLoadStore: LDMIA/STMIA against a low register, with the
// base-register-in-list suppression rule the teacher's comment explains.
func execMultipleLoadStore(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	baseReg := int((raw & 0x0700) >> 8)
	list := raw & 0xff

	addr := core.R(baseReg)
	updateBase := true

	for i := 0; i <= 7; i++ {
		if list&(1<<i) == 0 {
			continue
		}
		if load {
			if i == baseReg {
				updateBase = false
			}
			core.SetR(i, bus.Read32(addr))
		} else {
			bus.Write32(addr, core.R(i))
		}
		addr += 4
	}

	if !load || updateBase {
		core.SetR(baseReg, addr)
	}
	return Advance(2)
}

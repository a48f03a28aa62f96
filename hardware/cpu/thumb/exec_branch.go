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

import (
	"github.com/pixelscan/gba-core/hardware/cpu/arm"
	"github.com/pixelscan/gba-core/hardware/cpu/registers"
)

// execConditionalBranch implements format 16, grounded on
// executeConditionalBranch. The condition itself was already evaluated by
// hardware/cpu's Step before Dispatch was reached, so this handler only
// computes the branch target from the signed 8-bit offset.
func execConditionalBranch(core Core, bus Bus, insn Instruction) Action {
	offset := int32(int8(insn.Raw & 0xff))
	target := uint32(int32(insn.PC+4) + offset*2)
	core.SetPC(target)
	core.FlushPipeline()
	return Flushed()
}

// execSoftwareInterrupt implements format 17. The teacher's
// executeSoftwareInterrupt panics because its Thumb core never expects a
// guest SWI; this core is a full ARM7TDMI, so it performs the same
// Supervisor-mode exception entry as arm.execSoftwareInterrupt, with the
// link value biased by Thumb's PC+4 rather than ARM's PC+8.
func execSoftwareInterrupt(core Core, bus Bus, insn Instruction) Action {
	core.EnterException(arm.VectorSWI, registers.SVC, insn.PC+4, false)
	return Flushed()
}

// execUnconditionalBranch implements format 18, grounded on
// executeUnconditionalBranch: a signed 11-bit offset, pre-scaled by 2.
func execUnconditionalBranch(core Core, bus Bus, insn Instruction) Action {
	offset := signExtend(uint32(insn.Raw&0x7ff), 11)
	target := uint32(int32(insn.PC+4) + int32(offset)*2)
	core.SetPC(target)
	core.FlushPipeline()
	return Flushed()
}

// execLongBranchWithLink implements format 19, grounded on
// executeLongBranchWithLink: a two-instruction BL encoding where the first
// half stashes a shifted high offset in LR and the second half supplies
// the low offset and performs the branch, exactly as the teacher's H
// (high/low half) flag distinguishes.
func execLongBranchWithLink(core Core, bus Bus, insn Instruction) Action {
	high := insn.Raw&0x0800 != 0
	offset := uint32(insn.Raw & 0x07ff)

	if !high {
		full := signExtend(offset, 11) << 12
		core.SetR(14, insn.PC+4+uint32(full))
		return Advance(2)
	}

	next := core.R(14) + (offset << 1)
	core.SetR(14, (insn.PC+2)|1)
	core.SetPC(next)
	core.FlushPipeline()
	return Flushed()
}

// signExtend sign-extends the low bits-wide field of v to a full int32,
// returned as uint32 for convenient arithmetic with PC values.
func signExtend(v uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(v<<shift) >> shift)
}

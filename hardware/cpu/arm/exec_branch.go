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

// execBranchExchange implements BX Rn (spec.md §4.5): T-bit set from Rn's
// bit 0; PC <- Rn & ~1 when that bit selects Thumb, Rn & ~3 (word-aligned)
// otherwise; pipeline flushed.
func execBranchExchange(core Core, bus Bus, insn Instruction) Action {
	rn := core.R(int(insn.Raw & 0xF))
	thumb := rn&1 != 0

	sr := core.CPSR()
	sr.T = thumb
	core.SetCPSR(sr)

	if thumb {
		core.SetPC(rn &^ 1)
	} else {
		core.SetPC(rn &^ 3)
	}
	core.FlushPipeline()
	return Flushed()
}

// execBranch implements B/BL (spec.md §4.5): offset is the 24-bit signed
// word offset in insn[23:0], shifted left 2; if the link bit is set, LR is
// set to PC-4 in ARM prefetch terms (i.e. the address of the instruction
// after this one).
func execBranch(core Core, bus Bus, insn Instruction) Action {
	offset := signExtend24(insn.Raw&0xFF_FFFF) << 2

	if insn.Raw&(1<<24) != 0 {
		core.SetR(14, insn.PC+4)
	}

	core.SetPC(insn.PC + 8 + offset)
	core.FlushPipeline()
	return Flushed()
}

func signExtend24(v uint32) uint32 {
	if v&0x80_0000 != 0 {
		return v | 0xFF00_0000
	}
	return v
}

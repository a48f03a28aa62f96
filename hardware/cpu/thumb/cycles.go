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

// Cost mirrors arm.Cost, adapted to the 19 Thumb formats. Unlike ARM's
// Cost, memory-access counts are derived here from the instruction itself
// rather than taken as a parameter, since every Thumb load/store format
// transfers exactly one word/halfword/byte except PushPopRegisters and
// MultipleLoadStore, whose register lists vary.
func Cost(insn Instruction, action Action, cycleAccurateRefill bool) uint64 {
	var cycles uint64 = 1

	switch insn.Fmt {
	case PCRelativeLoad, LoadStoreRegisterOffset, LoadStoreSignExtended,
		LoadStoreImmediateOffset, LoadStoreHalfword, SPRelativeLoadStore:
		cycles += 2 // one bus access, one internal address-calc cycle
	case PushPopRegisters:
		cycles += uint64(memoryAccessesPushPop(insn.Raw))
	case MultipleLoadStore:
		cycles += uint64(bits.OnesCount16(insn.Raw & 0xff))
	case LongBranchWithLink, UnconditionalBranch, ConditionalBranch:
		if action.Flushed {
			cycles += 2
		}
	case SoftwareInterrupt:
		cycles += 2
	}

	if action.Flushed && cycleAccurateRefill &&
		insn.Fmt != LongBranchWithLink && insn.Fmt != SoftwareInterrupt {
		cycles++
	}

	return cycles
}

func memoryAccessesPushPop(raw uint16) int {
	count := bits.OnesCount16(raw & 0xff)
	if raw&0x0100 != 0 {
		count++
	}
	return count
}

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

// execDataProcessing implements the 16 ALU operations (spec.md §4.3, §4.5).
func execDataProcessing(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	op := Opcode((raw >> 21) & 0xF)
	s := raw&(1<<20) != 0
	rn := int((raw >> 16) & 0xF)
	rd := int((raw >> 12) & 0xF)

	op2, shifterCarry, ok := decodeOperand2(core, insn)
	if !ok {
		return enterUndefined(core, insn)
	}

	op1 := core.R(rn)
	if rn == 15 && raw&(1<<25) == 0 && raw&(1<<4) != 0 {
		// Rn=R15 with a register-specified shift: account for the extra
		// prefetch cycle, per spec.md §4.5.
		op1 += 4
	}

	result := Apply(op, op1, op2, shifterCarry, core.CPSR().C)

	if !op.IsCompare() {
		core.SetR(rd, result.Value)
	}

	if s {
		if rd == 15 {
			// spec.md §4.3: "When the S-bit is set and Rd = R15, CPSR is
			// restored from SPSR of the current mode."
			core.RestoreCPSRFromSPSR()
		} else {
			sr := core.CPSR()
			ApplyToCPSR(&sr, op, result)
			core.SetCPSR(sr)
		}
	}

	if rd == 15 {
		core.FlushPipeline()
		return Flushed()
	}
	return Advance(4)
}

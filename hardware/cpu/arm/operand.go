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

import "github.com/pixelscan/gba-core/hardware/cpu/registers"

// enterUndefined drives core into the Undefined-instruction exception
// (spec.md §4.5, §7): used by every executor that detects an illegal
// encoding only once it is actually executing rather than at decode time.
func enterUndefined(core Core, insn Instruction) Action {
	core.EnterException(VectorUndefined, registers.UND, insn.PC+4, false)
	return Flushed()
}

// decodeOperand2 evaluates the DataProcessing/MoveToStatus second operand
// described by spec.md §3's BarrelShifterOperand, returning the shifted
// value and the barrel shifter's carry-out. ok is false when the encoding
// is illegal (a register-specified shift amount read from R15, per
// spec.md §4.2); callers must enter an Undefined-mode exception instead of
// using the returned value.
func decodeOperand2(core Core, insn Instruction) (value uint32, carryOut bool, ok bool) {
	raw := insn.Raw
	carryIn := core.CPSR().C

	if raw&(1<<25) != 0 {
		// Immediate operand: 8-bit value rotated right by 2*rotate.
		imm := raw & 0xFF
		rot := (raw >> 8) & 0xF
		if rot == 0 {
			return imm, carryIn, true
		}
		v, c := Shift(ROR, imm, rot*2, carryIn, true)
		return v, c, true
	}

	rm := core.R(int(raw & 0xF))
	shiftType := ShiftOp((raw >> 5) & 0x3)

	if raw&(1<<4) != 0 {
		// Register-specified shift amount.
		rsIndex := int((raw >> 8) & 0xF)
		if rsIndex == 15 {
			// spec.md §4.2: "if the source register is R15, behavior is
			// undefined (treat as a decode error)".
			return 0, false, false
		}
		amount := core.R(rsIndex) & 0xFF

		if raw&0xF == 0xF {
			// Rm=R15 read alongside a register-specified shift sees the
			// instruction address +12 (R(15) returns the instruction's own
			// address here). execDataProcessing adds 4, not 12, to Rn=R15
			// in the same case.
			rm += 12
		}

		if amount == 0 {
			return rm, carryIn, true
		}
		v, c := Shift(shiftType, rm, amount, carryIn, false)
		return v, c, true
	}

	amount := (raw >> 7) & 0x1F
	v, c := Shift(shiftType, rm, amount, carryIn, true)
	return v, c, true
}

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

// execMoveShiftedRegister implements format 1 (LSL/LSR/ASR by a 5-bit
// immediate), grounded on executeMoveShiftedRegister: the immediate-shift
// edge cases are exactly the arm package's barrel shifter in its
// immediate-form, so this reuses arm.Shift rather than re-deriving them.
func execMoveShiftedRegister(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	op := (raw & 0x1800) >> 11
	shiftAmount := uint32((raw & 0x07c0) >> 6)
	rs := int((raw & 0x38) >> 3)
	rd := int(raw & 0x07)

	carryIn := core.CPSR().C
	src := core.R(rs)

	var result uint32
	var carryOut bool
	switch op {
	case 0b00:
		result, carryOut = arm.Shift(arm.LSL, src, shiftAmount, carryIn, true)
	case 0b01:
		result, carryOut = arm.Shift(arm.LSR, src, shiftAmount, carryIn, true)
	case 0b10:
		result, carryOut = arm.Shift(arm.ASR, src, shiftAmount, carryIn, true)
	default: // 0b11 is not a valid encoding in this format
		return enterUndefined(core, insn)
	}

	core.SetR(rd, result)
	sr := core.CPSR()
	sr.C = carryOut
	sr.N = result&0x8000_0000 != 0
	sr.Z = result == 0
	core.SetCPSR(sr)

	return Advance(2)
}

// execAddSubtract implements format 2 (ADD/SUB, register or 3-bit
// immediate operand), grounded on executeAddSubtract.
func execAddSubtract(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	immediate := raw&0x0400 != 0
	subtract := raw&0x0200 != 0
	imm := uint32((raw & 0x01c0) >> 6)
	rs := int((raw & 0x38) >> 3)
	rd := int(raw & 0x07)

	var operand uint32
	if immediate {
		operand = imm
	} else {
		operand = core.R(int(imm))
	}

	op := arm.ADD
	if subtract {
		op = arm.SUB
	}

	result := arm.Apply(op, core.R(rs), operand, false, core.CPSR().C)
	core.SetR(rd, result.Value)
	sr := core.CPSR()
	arm.ApplyToCPSR(&sr, op, result)
	core.SetCPSR(sr)

	return Advance(2)
}

// execMoveCmpAddSubImmediate implements format 3 (MOV/CMP/ADD/SUB between
// a low register and an 8-bit immediate), grounded on
// executeMovCmpAddSubImm.
func execMoveCmpAddSubImmediate(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	op := (raw & 0x1800) >> 11
	rd := int((raw & 0x0700) >> 8)
	imm := uint32(raw & 0x00ff)

	var armOp arm.Opcode
	switch op {
	case 0b00:
		armOp = arm.MOV
	case 0b01:
		armOp = arm.CMP
	case 0b10:
		armOp = arm.ADD
	default:
		armOp = arm.SUB
	}

	result := arm.Apply(armOp, core.R(rd), imm, false, core.CPSR().C)
	if armOp != arm.CMP {
		core.SetR(rd, result.Value)
	}
	sr := core.CPSR()
	arm.ApplyToCPSR(&sr, armOp, result)
	core.SetCPSR(sr)

	return Advance(2)
}

// execALUOperation implements format 4, the sixteen two-register ALU ops,
// grounded on executeALUoperations. Shift-by-register and rotate-by-
// register variants reuse arm.Shift's register-form edge cases; the
// remaining ops reuse arm.Apply directly since they correspond 1:1 to ARM
// data-processing opcodes.
func execALUOperation(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	op := (raw & 0x03c0) >> 6
	rs := int((raw & 0x38) >> 3)
	rd := int(raw & 0x07)

	carryIn := core.CPSR().C
	dest := core.R(rd)
	src := core.R(rs)

	setFlags := func(op arm.Opcode, r arm.Result) {
		sr := core.CPSR()
		arm.ApplyToCPSR(&sr, op, r)
		core.SetCPSR(sr)
	}

	switch op {
	case 0b0000: // AND
		r := arm.Apply(arm.AND, dest, src, carryIn, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.AND, r)
	case 0b0001: // EOR
		r := arm.Apply(arm.EOR, dest, src, carryIn, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.EOR, r)
	case 0b0010: // LSL by register
		v, c := arm.Shift(arm.LSL, dest, src&0xFF, carryIn, false)
		core.SetR(rd, v)
		sr := core.CPSR()
		sr.C = c
		sr.N = v&0x8000_0000 != 0
		sr.Z = v == 0
		core.SetCPSR(sr)
	case 0b0011: // LSR by register
		v, c := arm.Shift(arm.LSR, dest, src&0xFF, carryIn, false)
		core.SetR(rd, v)
		sr := core.CPSR()
		sr.C = c
		sr.N = v&0x8000_0000 != 0
		sr.Z = v == 0
		core.SetCPSR(sr)
	case 0b0100: // ASR by register
		v, c := arm.Shift(arm.ASR, dest, src&0xFF, carryIn, false)
		core.SetR(rd, v)
		sr := core.CPSR()
		sr.C = c
		sr.N = v&0x8000_0000 != 0
		sr.Z = v == 0
		core.SetCPSR(sr)
	case 0b0101: // ADC
		r := arm.Apply(arm.ADC, dest, src, false, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.ADC, r)
	case 0b0110: // SBC
		r := arm.Apply(arm.SBC, dest, src, false, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.SBC, r)
	case 0b0111: // ROR by register
		v, c := arm.Shift(arm.ROR, dest, src&0xFF, carryIn, false)
		core.SetR(rd, v)
		sr := core.CPSR()
		sr.C = c
		sr.N = v&0x8000_0000 != 0
		sr.Z = v == 0
		core.SetCPSR(sr)
	case 0b1000: // TST
		r := arm.Apply(arm.TST, dest, src, carryIn, carryIn)
		setFlags(arm.TST, r)
	case 0b1001: // NEG: 0 - Rs
		r := arm.Apply(arm.SUB, 0, src, false, true)
		core.SetR(rd, r.Value)
		setFlags(arm.SUB, r)
	case 0b1010: // CMP
		r := arm.Apply(arm.CMP, dest, src, false, carryIn)
		setFlags(arm.CMP, r)
	case 0b1011: // CMN
		r := arm.Apply(arm.CMN, dest, src, false, carryIn)
		setFlags(arm.CMN, r)
	case 0b1100: // ORR
		r := arm.Apply(arm.ORR, dest, src, carryIn, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.ORR, r)
	case 0b1101: // MUL
		result := dest * src
		core.SetR(rd, result)
		sr := core.CPSR()
		sr.N = result&0x8000_0000 != 0
		sr.Z = result == 0
		core.SetCPSR(sr)
	case 0b1110: // BIC
		r := arm.Apply(arm.BIC, dest, src, carryIn, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.BIC, r)
	case 0b1111: // MVN
		r := arm.Apply(arm.MVN, dest, src, carryIn, carryIn)
		core.SetR(rd, r.Value)
		setFlags(arm.MVN, r)
	}

	return Advance(2)
}

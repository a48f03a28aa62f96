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

package thumb_test

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/bus"
	"github.com/pixelscan/gba-core/hardware/cpu"
	"github.com/pixelscan/gba-core/hardware/cpu/thumb"
	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/logger"
	"github.com/pixelscan/gba-core/internal/test"
)

func newTestCPU() (*cpu.CPU, *bus.Bus) {
	b := bus.New(config.Default(), logger.NewLogger(16), nil, nil)
	return cpu.New(b, config.Default()), b
}

// LSL R0, R1, #3 (format 1). Carry-out of an immediate LSL is bit 32-n of
// the unshifted operand; shifting 0x1 left by 3 carries out bit 29, which
// is clear.
func TestExecMoveShiftedRegisterLSL(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(1, 1)
	insn := thumb.Decode(0x00C8, 0)
	action := thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(8))
	test.ExpectEquality(t, c.CPSR().C, false)
	test.ExpectEquality(t, action.Flushed, false)
}

// ADD R0, R1, R2 (format 2), grounded on the same arm.Apply the arm package
// exercises directly; this is the Thumb-side wiring of it.
func TestExecAddSubtractRegisterForm(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(1, 5)
	c.SetR(2, 7)
	insn := thumb.Decode(0x1888, 0)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(12))
}

// MOV R0, #0x55 (format 3): CMP is the only format-3 op that must not
// write Rd; MOV must.
func TestExecMoveCmpAddSubImmediateMov(t *testing.T) {
	c, b := newTestCPU()
	insn := thumb.Decode(0x2055, 0)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(0x55))
}

func TestExecMoveCmpAddSubImmediateCmpDoesNotWriteRd(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(0, 0x1234)
	insn := thumb.Decode(0x2855, 0) // CMP R0, #0x55 (op bits 01, rd=0, imm=0x55)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(0x1234))
}

// AND R0, R1 (format 4).
func TestExecALUOperationAnd(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(0, 0xFF)
	c.SetR(1, 0x0F)
	insn := thumb.Decode(0x4008, 0)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(0x0F))
}

// MUL R0, R1 is the one format-4 op this core computes directly rather
// than through arm.Apply, since ARM data processing has no multiply
// opcode of its own.
func TestExecALUOperationMul(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(0, 6)
	c.SetR(1, 7)
	insn := thumb.Decode(0x4348, 0) // op=1101 (MUL), rs=1, rd=0
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.R(0), uint32(42))
}

// BX R1 (format 5) to an odd address stays in Thumb mode and masks the low
// bit out of the new PC, mirroring arm.execBranchExchange's BX in reverse.
func TestExecHiRegisterBXStaysThumb(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(1, 0x0800_0011)
	insn := thumb.Decode(0x4708, 0)
	action := thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, action.Flushed, true)
	test.ExpectEquality(t, c.CPSR().T, true)
	test.ExpectEquality(t, c.PC(), uint32(0x0800_0010))
}

// BX R1 to an even address switches the CPU into ARM execution: a real
// ARM7TDMI running this core's Thumb decoder, unlike the teacher's
// coprocessor-only Thumb core, can actually make this transition.
func TestExecHiRegisterBXSwitchesToARM(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(1, 0x0800_0010)
	insn := thumb.Decode(0x4708, 0)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.CPSR().T, false)
	test.ExpectEquality(t, c.PC(), uint32(0x0800_0010))
}

func TestExecUnconditionalBranchTarget(t *testing.T) {
	c, b := newTestCPU()
	insn := thumb.Decode(0xE001, 0x200)
	action := thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, action.Flushed, true)
	test.ExpectEquality(t, c.PC(), uint32(0x206))
}

func TestExecConditionalBranchTarget(t *testing.T) {
	c, b := newTestCPU()
	insn := thumb.Decode(0xD005, 0x100)
	thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, c.PC(), uint32(0x10E))
}

// Format 19's two halves: the first stashes a shifted high offset in LR
// without branching, the second supplies the low offset and branches,
// exactly as the H flag distinguishes.
func TestExecLongBranchWithLinkFirstHalfStashesHighOffset(t *testing.T) {
	c, b := newTestCPU()
	insn := thumb.Decode(0xF001, 0x300)
	action := thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, action.Flushed, false)
	test.ExpectEquality(t, c.R(14), uint32(0x1304))
}

func TestExecLongBranchWithLinkSecondHalfBranches(t *testing.T) {
	c, b := newTestCPU()
	c.SetR(14, 0x1304)
	insn := thumb.Decode(0xF802, 0x302)
	action := thumb.Dispatch(c, b, insn)

	test.ExpectEquality(t, action.Flushed, true)
	test.ExpectEquality(t, c.PC(), uint32(0x1308))
	test.ExpectEquality(t, c.R(14), uint32(0x305))
}

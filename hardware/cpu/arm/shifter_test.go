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

package arm_test

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/cpu/arm"
	"github.com/pixelscan/gba-core/internal/test"
)

// spec.md §8 concrete scenario 3: shifter(LSL, 0x8000_0001, 32, carry_in=0,
// imm=false) -> (result=0, carry_out=1).
func TestLSLBy32ConcreteScenario(t *testing.T) {
	result, carry := arm.Shift(arm.LSL, 0x8000_0001, 32, false, false)
	test.ExpectEquality(t, result, uint32(0))
	test.ExpectEquality(t, carry, true)
}

// spec.md §8 round-trip property: shift(value, LSL, 0, c, imm) -> (value, c).
func TestLSLByZeroIsIdentityRegardlessOfForm(t *testing.T) {
	for _, imm := range []bool{true, false} {
		for _, c := range []bool{true, false} {
			result, carry := arm.Shift(arm.LSL, 0x1234_5678, 0, c, imm)
			test.ExpectEquality(t, result, uint32(0x1234_5678))
			test.ExpectEquality(t, carry, c)
		}
	}
}

func TestLSLByMoreThan32IsAllZeroNoCarry(t *testing.T) {
	result, carry := arm.Shift(arm.LSL, 0xFFFF_FFFF, 33, true, false)
	test.ExpectEquality(t, result, uint32(0))
	test.ExpectEquality(t, carry, false)
}

func TestLSRImmediateZeroIsEncodedAsLSR32(t *testing.T) {
	// LSR#0 in an immediate encoding means LSR#32: result 0, carry is bit 31.
	result, carry := arm.Shift(arm.LSR, 0x8000_0000, 0, false, true)
	test.ExpectEquality(t, result, uint32(0))
	test.ExpectEquality(t, carry, true)
}

func TestLSRRegisterZeroIsNoOp(t *testing.T) {
	// LSR#0 from a register-supplied amount (immediateForm=false) leaves
	// the value and carry untouched.
	result, carry := arm.Shift(arm.LSR, 0x8000_0000, 0, true, false)
	test.ExpectEquality(t, result, uint32(0x8000_0000))
	test.ExpectEquality(t, carry, true)
}

func TestASRSignExtendsNegativeOperandPastBitWidth(t *testing.T) {
	result, carry := arm.Shift(arm.ASR, 0x8000_0000, 40, false, false)
	test.ExpectEquality(t, result, uint32(0xFFFF_FFFF))
	test.ExpectEquality(t, carry, true)
}

func TestASRImmediateZeroIsEncodedAsASR32(t *testing.T) {
	result, carry := arm.Shift(arm.ASR, 0x4000_0000, 0, false, true)
	test.ExpectEquality(t, result, uint32(0))
	test.ExpectEquality(t, carry, false)
}

func TestRORImmediateZeroIsRRXThroughCarry(t *testing.T) {
	// ROR#0 is RRX: a 33-bit rotate through CPSR.C.
	result, carry := arm.Shift(arm.ROR, 0x0000_0002, 0, true, true)
	test.ExpectEquality(t, result, uint32(0x8000_0001))
	test.ExpectEquality(t, carry, false)
}

func TestRORByMultipleOf32LeavesValueUnchanged(t *testing.T) {
	result, carry := arm.Shift(arm.ROR, 0x8000_0001, 32, false, false)
	test.ExpectEquality(t, result, uint32(0x8000_0001))
	test.ExpectEquality(t, carry, true) // carry-out is bit 31
}

func TestRORByNonMultipleRotatesBits(t *testing.T) {
	result, carry := arm.Shift(arm.ROR, 0x0000_0001, 1, false, false)
	test.ExpectEquality(t, result, uint32(0x8000_0000))
	test.ExpectEquality(t, carry, true)
}

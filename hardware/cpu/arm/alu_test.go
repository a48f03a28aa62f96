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
	"github.com/pixelscan/gba-core/hardware/cpu/registers"
	"github.com/pixelscan/gba-core/internal/test"
)

// spec.md §8 concrete scenario 4: alu(ADD, S=1, op1=0x7FFF_FFFF, op2=1) ->
// result=0x8000_0000, N=1, Z=0, C=0, V=1.
func TestADDFlagOverflowConcreteScenario(t *testing.T) {
	r := arm.Apply(arm.ADD, 0x7FFF_FFFF, 1, false, false)
	test.ExpectEquality(t, r.Value, uint32(0x8000_0000))
	test.ExpectEquality(t, r.N, true)
	test.ExpectEquality(t, r.Z, false)
	test.ExpectEquality(t, r.C, false)
	test.ExpectEquality(t, r.V, true)
}

func TestSUBSetsCarryOnNoBorrow(t *testing.T) {
	r := arm.Apply(arm.SUB, 5, 3, false, true)
	test.ExpectEquality(t, r.Value, uint32(2))
	test.ExpectEquality(t, r.C, true)
	test.ExpectEquality(t, r.V, false)
}

func TestSUBClearsCarryOnBorrow(t *testing.T) {
	r := arm.Apply(arm.SUB, 3, 5, false, true)
	test.ExpectEquality(t, r.Value, uint32(0xFFFF_FFFE))
	test.ExpectEquality(t, r.C, false) // borrow occurred: NOT borrow = C = false
}

func TestCMPDoesNotCarryThroughRdButComputesFlags(t *testing.T) {
	r := arm.Apply(arm.CMP, 0, 1, false, true)
	test.ExpectEquality(t, r.N, true) // 0-1 underflows to negative
	test.ExpectEquality(t, r.C, false)
	test.ExpectEquality(t, arm.CMP.IsCompare(), true)
}

func TestADCAddsCarryIn(t *testing.T) {
	r := arm.Apply(arm.ADC, 1, 1, false, true)
	test.ExpectEquality(t, r.Value, uint32(3))
}

func TestLogicalOpsPassShifterCarryThroughUnchanged(t *testing.T) {
	r := arm.Apply(arm.AND, 0xFF, 0x0F, true, false)
	test.ExpectEquality(t, r.Value, uint32(0x0F))
	test.ExpectEquality(t, r.C, true)
}

func TestApplyToCPSRLeavesOverflowUnchangedForLogicalOps(t *testing.T) {
	sr := registers.StatusRegister{V: true}
	r := arm.Apply(arm.MOV, 0, 0x8000_0000, false, false)
	arm.ApplyToCPSR(&sr, arm.MOV, r)
	test.ExpectEquality(t, sr.V, true) // unchanged, per spec.md §4.3
	test.ExpectEquality(t, sr.N, true)
	test.ExpectEquality(t, sr.Z, false)
}

func TestApplyToCPSRUpdatesOverflowForArithmeticOps(t *testing.T) {
	sr := registers.StatusRegister{V: true}
	r := arm.Apply(arm.ADD, 1, 1, false, false)
	arm.ApplyToCPSR(&sr, arm.ADD, r)
	test.ExpectEquality(t, sr.V, false)
}

func TestIsCompareClosedSet(t *testing.T) {
	compares := []arm.Opcode{arm.TST, arm.TEQ, arm.CMP, arm.CMN}
	for _, op := range compares {
		test.ExpectEquality(t, op.IsCompare(), true)
	}
	test.ExpectEquality(t, arm.MOV.IsCompare(), false)
	test.ExpectEquality(t, arm.ADD.IsCompare(), false)
}

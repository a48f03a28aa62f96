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

	"github.com/pixelscan/gba-core/hardware/cpu/thumb"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestDecodeMoveShiftedRegister(t *testing.T) {
	// LSL R0, R1, #3
	insn := thumb.Decode(0x00C8, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.MoveShiftedRegister)
}

func TestDecodeAddSubtract(t *testing.T) {
	// ADD R0, R1, R2
	insn := thumb.Decode(0x1888, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.AddSubtract)
}

func TestDecodeMoveCmpAddSubImmediate(t *testing.T) {
	// MOV R0, #0x55
	insn := thumb.Decode(0x2055, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.MoveCmpAddSubImmediate)
}

func TestDecodeALUOperation(t *testing.T) {
	// AND R0, R1
	insn := thumb.Decode(0x4008, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.ALUOperation)
}

func TestDecodeHiRegisterOps(t *testing.T) {
	// BX R1
	insn := thumb.Decode(0x4708, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.HiRegisterOps)
}

func TestDecodeUnconditionalBranch(t *testing.T) {
	insn := thumb.Decode(0xE001, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.UnconditionalBranch)
}

func TestDecodeLongBranchWithLink(t *testing.T) {
	insn := thumb.Decode(0xF001, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.LongBranchWithLink)
	insn = thumb.Decode(0xF802, 0)
	test.ExpectEquality(t, insn.Fmt, thumb.LongBranchWithLink)
}

// Only format 16 (ConditionalBranch) carries a condition field; every other
// format reports AL (0xE) so hardware/cpu's generic per-step condition
// check always runs them unconditionally.
func TestConditionDefaultsToALForNonBranchFormats(t *testing.T) {
	insn := thumb.Decode(0x4008, 0) // AND R0, R1
	test.ExpectEquality(t, insn.Condition(), uint32(0xE))
}

func TestConditionalBranchClassificationIndependentOfConditionField(t *testing.T) {
	for cond := uint16(0); cond < 0xF; cond++ {
		raw := 0xD000 | (cond << 8) | 0x05
		insn := thumb.Decode(raw, 0)
		test.ExpectEquality(t, insn.Fmt, thumb.ConditionalBranch)
		test.ExpectEquality(t, insn.Condition(), uint32(cond))
	}
}

func TestDecodeIdempotent(t *testing.T) {
	words := []uint16{0x00C8, 0x1888, 0x2055, 0x4008, 0x4708, 0xE001, 0xF001, 0xD005}
	for _, w := range words {
		first := thumb.Decode(w, 0).Fmt
		second := thumb.Decode(w, 0).Fmt
		test.ExpectEquality(t, first, second)
	}
}

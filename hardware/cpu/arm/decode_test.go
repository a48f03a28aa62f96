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

// spec.md §8 concrete scenario 1: word 0xEBFFFFFA at PC=0x20 decodes as
// BranchLink.
func TestDecodeBranchLinkConcreteScenario(t *testing.T) {
	insn := arm.Decode(0xEBFFFFFA, 0x20)
	test.ExpectEquality(t, insn.Fmt, arm.BranchLink)
	test.ExpectEquality(t, insn.Raw&(1<<24) != 0, true) // link bit set
}

// spec.md §8 concrete scenario 2: word 0x012FFF1E decodes as BranchExchange
// with Rn=R14. This is also a regression test: BranchExchange's mask used to
// pin bits 8-19, which canonicalWord zeroes before the dispatch table is
// built, so no hash bucket could ever classify as BranchExchange.
func TestDecodeBranchExchangeConcreteScenario(t *testing.T) {
	insn := arm.Decode(0x012FFF1E, 0x00)
	test.ExpectEquality(t, insn.Fmt, arm.BranchExchange)
	test.ExpectEquality(t, insn.Raw&0xF, uint32(14))
}

func TestFormatAtAgreesWithDecodeForBranchExchange(t *testing.T) {
	insn := arm.Decode(0x012FFF1E, 0x00)
	test.ExpectEquality(t, arm.FormatAt(arm.Hash(0x012FFF1E)), insn.Fmt)
}

func TestDecodeMoveStatusFamilyReachableThroughTable(t *testing.T) {
	// MRS R0, CPSR
	test.ExpectEquality(t, arm.Decode(0xE10F0000, 0).Fmt, arm.MoveFromStatus)
	// MSR CPSR, R0 (register form)
	test.ExpectEquality(t, arm.Decode(0xE129F000, 0).Fmt, arm.MoveToStatus)
	// MSR CPSR_flg, #0xFF (immediate flag-only form)
	test.ExpectEquality(t, arm.Decode(0xE328F0FF, 0).Fmt, arm.MoveToFlags)
}

func TestDecodePlainDataProcessing(t *testing.T) {
	// MOV R0, R1
	test.ExpectEquality(t, arm.Decode(0xE1A00001, 0).Fmt, arm.DataProcessing)
}

func TestDecodeIdempotent(t *testing.T) {
	// spec.md §8 round-trip property: decoding the same word twice yields
	// the same format tag.
	words := []uint32{0xEBFFFFFA, 0x012FFF1E, 0xE1A00001, 0xE10F0000, 0xEF000000}
	for _, w := range words {
		first := arm.Decode(w, 0).Fmt
		second := arm.Decode(w, 0).Fmt
		test.ExpectEquality(t, first, second)
	}
}

func TestHashOnlyUsesFormatDiscriminatingBits(t *testing.T) {
	// The condition code (bits 31-28) never participates in the hash:
	// changing it must not change the classification.
	a := arm.Hash(0x012FFF1E) // AL (0xE) condition nibble stripped off below
	b := arm.Hash(0x112FFF1E) // NE condition instead
	test.ExpectEquality(t, a, b)
}

func TestClassifyOrderDoesNotShadowSoftwareInterrupt(t *testing.T) {
	test.ExpectEquality(t, arm.Classify(0xEF000001), arm.SoftwareInterrupt)
}

func TestClassifyUnmatchedWordIsUndefined(t *testing.T) {
	// Coprocessor-space encoding (bits 27-24 = 1110): not in this core's
	// closed instruction-format set, per spec.md §3.
	test.ExpectEquality(t, arm.Classify(0x0E000010), arm.Undefined)
}

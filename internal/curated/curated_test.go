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

package curated_test

import (
	"fmt"
	"testing"

	"github.com/pixelscan/gba-core/internal/curated"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestDuplicateAdjacentMessagesAreCollapsed(t *testing.T) {
	e := curated.Errorf(curated.UnmappedRead, uint32(0x0A00_0000))
	test.ExpectEquality(t, e.Error(), "read from unmapped address 0x0a000000")

	f := curated.Errorf(curated.UnmappedRead+": %v", uint32(0x0A00_0000), e)
	test.ExpectEquality(t, f.Error(), e.Error())
}

func TestIsMatchesOnlyExactHead(t *testing.T) {
	e := curated.Errorf(curated.UnmappedWrite, uint32(0x0A00_0000))
	test.ExpectEquality(t, curated.Is(e, curated.UnmappedWrite), true)
	test.ExpectEquality(t, curated.Is(e, curated.UnmappedRead), false)
}

func TestHasFindsNestedCuratedCause(t *testing.T) {
	bus := curated.Errorf(curated.UnmappedWrite, uint32(0x0A00_0000))
	wrapped := curated.Errorf("dma channel %d: %v", 1, bus)

	test.ExpectEquality(t, curated.Is(wrapped, curated.UnmappedWrite), false)
	test.ExpectEquality(t, curated.Has(wrapped, curated.UnmappedWrite), true)
	test.ExpectEquality(t, curated.Has(wrapped, curated.SrcAdjustForbidden), false)
}

func TestHasOnPlainErrorIsFalse(t *testing.T) {
	e := fmt.Errorf("plain error")
	test.ExpectEquality(t, curated.IsAny(e), false)
	test.ExpectEquality(t, curated.Has(e, curated.UnmappedRead), false)
}

func TestIsAnyDistinguishesCuratedFromPlainErrors(t *testing.T) {
	test.ExpectEquality(t, curated.IsAny(curated.Errorf(curated.InvalidCPUMode, 0x20)), true)
	test.ExpectEquality(t, curated.IsAny(fmt.Errorf("plain")), false)
	test.ExpectEquality(t, curated.IsAny(nil), false)
}

// spec.md §7 groups its curated errors into four kinds; CategoryOf lets a
// caller holding only an error recover which kind it was without
// string-matching its head.
func TestCategoryOfMatchesEachDeclaredCategory(t *testing.T) {
	cases := []struct {
		message  string
		category curated.Category
	}{
		{curated.UndefinedCondition, curated.Decode},
		{curated.InvalidHalfwordEncode, curated.Decode},
		{curated.UnmappedRead, curated.Bus},
		{curated.UnmappedWrite, curated.Bus},
		{curated.ShiftRegisterIsPC, curated.Illegal},
		{curated.SrcAdjustForbidden, curated.Illegal},
		{curated.RenderFailed, curated.Host},
	}
	for _, c := range cases {
		err := curated.Errorf(c.message, 0)
		test.ExpectEquality(t, curated.CategoryOf(err), c.category)
	}
}

func TestCategoryOfUncategorizedForAdHocMessages(t *testing.T) {
	err := curated.Errorf("something went wrong: %v", 1)
	test.ExpectEquality(t, curated.CategoryOf(err), curated.Uncategorized)
}

func TestCategoryOfOnPlainErrorIsUncategorized(t *testing.T) {
	test.ExpectEquality(t, curated.CategoryOf(fmt.Errorf("plain")), curated.Uncategorized)
}

func TestCategoryStringer(t *testing.T) {
	test.ExpectEquality(t, curated.Decode.String(), "decode")
	test.ExpectEquality(t, curated.Host.String(), "host")
	test.ExpectEquality(t, curated.Uncategorized.String(), "uncategorized")
}

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

package interrupt

import (
	"testing"

	"github.com/pixelscan/gba-core/internal/test"
)

func TestRaiseSetsIFRegardlessOfMasking(t *testing.T) {
	c := New()
	c.Raise(VBlank)
	test.ExpectEquality(t, c.ReadIO16(offsetIF), uint16(VBlank))
	test.ExpectEquality(t, c.Pending(), uint16(0))
}

func TestPendingRequiresIMEAndIE(t *testing.T) {
	c := New()
	c.Raise(Timer0)
	test.ExpectEquality(t, c.Pending(), uint16(0))

	c.WriteIO16(offsetIME, 1)
	test.ExpectEquality(t, c.Pending(), uint16(0))

	c.WriteIO16(offsetIE, uint16(Timer0))
	test.ExpectEquality(t, c.Pending(), uint16(Timer0))
}

func TestWriteIFClearsOnlySetBits(t *testing.T) {
	c := New()
	c.Raise(VBlank)
	c.Raise(HBlank)
	c.WriteIO16(offsetIF, uint16(VBlank))
	test.ExpectEquality(t, c.ReadIO16(offsetIF), uint16(HBlank))
}

func TestOwnsIORecognisesOnlyItsThreeRegisters(t *testing.T) {
	c := New()
	test.ExpectEquality(t, c.OwnsIO(offsetIE), true)
	test.ExpectEquality(t, c.OwnsIO(offsetIF), true)
	test.ExpectEquality(t, c.OwnsIO(offsetIME), true)
	test.ExpectEquality(t, c.OwnsIO(0x210), false)
}

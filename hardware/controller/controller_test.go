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

package controller

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/interrupt"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestKEYINPUTIsActiveLow(t *testing.T) {
	k := New(interrupt.New())
	test.ExpectEquality(t, k.ReadIO16(offsetKEYINPUT), uint16(allButtons))

	k.SetState(A | Start)
	test.ExpectEquality(t, k.ReadIO16(offsetKEYINPUT), uint16(allButtons&^uint16(A|Start)))
}

func TestKEYCNTRaisesIRQOnORCondition(t *testing.T) {
	irq := interrupt.New()
	irq.WriteIO16(0x200, 0xFFFF)
	irq.WriteIO16(0x208, 1)
	k := New(irq)

	k.WriteIO16(offsetKEYCNT, keycntIRQEnable|uint16(A))
	test.ExpectEquality(t, irq.Pending(), uint16(0))

	k.Press(A)
	test.ExpectEquality(t, irq.Pending()&uint16(interrupt.Keypad) != 0, true)
}

func TestKEYCNTAndConditionRequiresAllSelected(t *testing.T) {
	irq := interrupt.New()
	irq.WriteIO16(0x200, 0xFFFF)
	irq.WriteIO16(0x208, 1)
	k := New(irq)

	k.WriteIO16(offsetKEYCNT, keycntIRQEnable|keycntCondAnd|uint16(A|B))
	k.Press(A)
	test.ExpectEquality(t, irq.Pending(), uint16(0))

	k.Press(B)
	test.ExpectEquality(t, irq.Pending()&uint16(interrupt.Keypad) != 0, true)
}

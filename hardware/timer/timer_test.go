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

package timer

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/interrupt"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestOverflowReloadsAndRaisesIRQ(t *testing.T) {
	irq := interrupt.New()
	irq.WriteIO16(0x208, 1) // IME on
	irq.WriteIO16(0x200, uint16(interrupt.Timer0))

	b := New(irq)
	b.WriteIO16(0x100, 0xFFFE) // reload
	b.WriteIO16(0x102, ctrlStart|ctrlIRQ)

	b.Step(1)
	test.ExpectEquality(t, b.ReadIO16(0x100), uint16(0xFFFF))
	b.Step(1)
	test.ExpectEquality(t, b.ReadIO16(0x100), uint16(0xFFFE))
	test.ExpectEquality(t, irq.Pending(), uint16(interrupt.Timer0))
}

func TestCascadeChainsOnOverflow(t *testing.T) {
	irq := interrupt.New()
	b := New(irq)

	b.WriteIO16(0x100, 0xFFFF) // timer 0 reload, overflows every tick
	b.WriteIO16(0x102, ctrlStart)
	b.WriteIO16(0x104, 0) // timer 1 reload
	b.WriteIO16(0x106, ctrlStart|ctrlCascade)

	b.Step(1)
	test.ExpectEquality(t, b.ReadIO16(0x104), uint16(1))
}

func TestStoppedTimerDoesNotAdvance(t *testing.T) {
	irq := interrupt.New()
	b := New(irq)
	b.WriteIO16(0x100, 0)
	b.Step(1000)
	test.ExpectEquality(t, b.ReadIO16(0x100), uint16(0))
}

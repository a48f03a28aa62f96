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

package bus

import (
	"testing"

	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/logger"
	"github.com/pixelscan/gba-core/internal/test"
)

func newTestBus() *Bus {
	return New(config.Default(), logger.NewLogger(16), nil, nil)
}

func TestEWRAMRoundTrip(t *testing.T) {
	b := newTestBus()
	b.Write32(0x0200_1000, 0x1122_3344)
	test.ExpectEquality(t, b.Read32(0x0200_1000), uint32(0x1122_3344))
}

func TestMisaligned32Rotates(t *testing.T) {
	b := newTestBus()
	b.Write32(0x0200_1000, 0x1122_3344)
	test.ExpectEquality(t, b.Read32(0x0200_1001), uint32(0x4411_2233))
	test.ExpectEquality(t, b.Read32(0x0200_1002), uint32(0x3344_1122))
	test.ExpectEquality(t, b.Read32(0x0200_1003), uint32(0x2233_4411))
}

func TestMisaligned16Rotates(t *testing.T) {
	b := newTestBus()
	b.Write16(0x0200_1000, 0xABCD)
	test.ExpectEquality(t, b.Read16(0x0200_1001), uint16(0xCDAB))
}

func TestByteWriteDoesNotClobberNeighbor(t *testing.T) {
	b := newTestBus()
	b.Write16(0x0400_0008, 0x1234) // BG0CNT
	b.Write8(0x0400_0008, 0xAA)
	test.ExpectEquality(t, b.Read16(0x0400_0008), uint16(0x12AA))
}

func TestUnmappedReadReturnsZero(t *testing.T) {
	b := newTestBus()
	test.ExpectEquality(t, b.Read32(0xFFFF_0000), uint32(0))
}

func TestEWRAMMirrors(t *testing.T) {
	b := newTestBus()
	b.Write32(0x0200_0000, 0xCAFEBABE)
	test.ExpectEquality(t, b.Read32(0x0204_0000), uint32(0xCAFEBABE))
}

type fakePeripheral struct {
	value uint16
}

func (f *fakePeripheral) OwnsIO(off uint32) bool   { return off == 0x0000 }
func (f *fakePeripheral) ReadIO16(off uint32) uint16 { return f.value }
func (f *fakePeripheral) WriteIO16(off uint32, v uint16) { f.value = v }

func TestAttachedPeripheralReceivesDispatch(t *testing.T) {
	b := newTestBus()
	p := &fakePeripheral{}
	b.Attach(p)

	b.Write16(0x0400_0000, 0x9999)
	test.ExpectEquality(t, p.value, uint16(0x9999))
	test.ExpectEquality(t, b.Read16(0x0400_0000), uint16(0x9999))
}

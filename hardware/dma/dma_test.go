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

package dma

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/bus"
	"github.com/pixelscan/gba-core/hardware/interrupt"
	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/logger"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestImmediateWordTransferDisablesOnCompletion(t *testing.T) {
	b := bus.New(config.Default(), logger.NewLogger(16), nil, nil)
	irq := interrupt.New()
	ctl := New(b, irq, config.Default(), logger.NewLogger(16))

	for i := 0; i < 4; i++ {
		b.Write32(0x0200_0000+uint32(i*4), 0x1122_3344)
	}

	ctl.WriteIO16(baseOffset+0x0, 0x0000) // SAD low
	ctl.WriteIO16(baseOffset+0x2, 0x0200) // SAD high
	ctl.WriteIO16(baseOffset+0x4, 0x0000) // DAD low
	ctl.WriteIO16(baseOffset+0x6, 0x0202) // DAD high
	ctl.WriteIO16(baseOffset+0x8, 4)      // word count
	ctl.WriteIO16(baseOffset+0xA, ctrlEnable|ctrlWordTransfer|uint16(AdjustFixed)<<ctrlSrcAdjustShift)

	ctl.Step(1)
	ctl.Step(2)

	for i := 0; i < 4; i++ {
		test.ExpectEquality(t, b.Read32(0x0202_0000+uint32(i*4)), uint32(0x1122_3344))
	}
	test.ExpectEquality(t, ctl.channels[0].enabled(), false)
}

func TestRepeatWithIncrementReloadRestoresDst(t *testing.T) {
	b := bus.New(config.Default(), logger.NewLogger(16), nil, nil)
	irq := interrupt.New()
	ctl := New(b, irq, config.Default(), logger.NewLogger(16))

	ctl.WriteIO16(baseOffset+0x4, 0x0000)
	ctl.WriteIO16(baseOffset+0x6, 0x0202)
	ctl.WriteIO16(baseOffset+0x8, 1)
	ctl.WriteIO16(baseOffset+0xA, ctrlEnable|ctrlRepeat|uint16(AdjustIncrementReload)<<ctrlDstAdjustShift)

	ctl.Step(1)
	ctl.Step(2)

	test.ExpectEquality(t, ctl.channels[0].dst, uint32(0x0202_0000))
	test.ExpectEquality(t, ctl.channels[0].enabled(), true)
}

func TestHBlankTimedChannelTriggersOnNotify(t *testing.T) {
	b := bus.New(config.Default(), logger.NewLogger(16), nil, nil)
	irq := interrupt.New()
	ctl := New(b, irq, config.Default(), logger.NewLogger(16))

	ctl.WriteIO16(baseOffset+0x8, 1)
	ctl.WriteIO16(baseOffset+0xA, ctrlEnable|uint16(TimingHBlank)<<ctrlTimingShift)

	ctl.Step(100) // immediate-only evaluation; should not fire
	test.ExpectEquality(t, ctl.channels[0].enabled(), true)

	ctl.OnHBlank()
	test.ExpectEquality(t, ctl.channels[0].enabled(), false)
}

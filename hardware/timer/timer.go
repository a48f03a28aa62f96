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

// Package timer implements the GBA's four 16-bit reload timers (TM0CNT..
// TM3CNT at 0x04000100+4n, spec.md §6), grounded on the teacher's ARM
// coprocessor peripherals.Timer: an enabled flag derived from a control
// bitfield, a free-running counter advanced in Step, and a Write/Read pair
// keyed by register address. That teacher timer is a single fixed-rate
// counter with no prescaler, reload or cascade; this package generalises
// it to the GBA's four-channel, prescaled, cascading, IRQ-raising design.
package timer

import "github.com/pixelscan/gba-core/hardware/interrupt"

const baseOffset = 0x100

// control bits, per the GBA's TMxCNT_H register layout.
const (
	ctrlCascade  = 1 << 2
	ctrlIRQ      = 1 << 6
	ctrlStart    = 1 << 7
	ctrlPrescale = 0x3
)

var prescalerDivisor = [4]uint32{1, 64, 256, 1024}

var irqSource = [4]interrupt.Source{
	interrupt.Timer0, interrupt.Timer1, interrupt.Timer2, interrupt.Timer3,
}

type channel struct {
	reload  uint16
	counter uint16
	control uint16
	accum   uint32
}

func (c *channel) enabled() bool  { return c.control&ctrlStart != 0 }
func (c *channel) cascade() bool  { return c.control&ctrlCascade != 0 }
func (c *channel) irqOn() bool    { return c.control&ctrlIRQ != 0 }
func (c *channel) divisor() uint32 {
	return prescalerDivisor[c.control&ctrlPrescale]
}

// Bank is the four-timer peripheral, attached to the bus as a
// bus.Peripheral and advanced once per peripheral step by the main loop
// (spec.md §4.9: "timers -> GPU -> DMA").
type Bank struct {
	channels [4]channel
	irq      *interrupt.Controller
}

// New returns a Bank wired to raise interrupts through irq.
func New(irq *interrupt.Controller) *Bank {
	return &Bank{irq: irq}
}

// Step advances every running, non-cascading channel by cycles PCLK
// ticks, chaining into cascaded channels on overflow the way real
// hardware increments timer N+1 once per timer N overflow instead of on
// its own prescaler.
func (b *Bank) Step(cycles uint64) {
	for i := range b.channels {
		c := &b.channels[i]
		if !c.enabled() || c.cascade() {
			continue
		}
		c.accum += uint32(cycles)
		div := c.divisor()
		for c.accum >= div {
			c.accum -= div
			b.tick(i)
		}
	}
}

func (b *Bank) tick(i int) {
	c := &b.channels[i]
	c.counter++
	if c.counter != 0 {
		return
	}
	c.counter = c.reload
	if c.irqOn() {
		b.irq.Raise(irqSource[i])
	}
	if i+1 < len(b.channels) {
		next := &b.channels[i+1]
		if next.enabled() && next.cascade() {
			b.tick(i + 1)
		}
	}
}

// OwnsIO reports whether offset is one of the eight 16-bit timer registers
// (sixteen bytes from 0x100).
func (b *Bank) OwnsIO(offset uint32) bool {
	return offset >= baseOffset && offset < baseOffset+4*4
}

func (b *Bank) index(offset uint32) (channelIndex int, isControl bool) {
	rel := offset - baseOffset
	return int(rel / 4), rel%4 == 2
}

// ReadIO16 returns the live counter for the low half of a channel's
// register pair, or the control word for the high half.
func (b *Bank) ReadIO16(offset uint32) uint16 {
	i, isControl := b.index(offset)
	c := &b.channels[i]
	if isControl {
		return c.control
	}
	return c.counter
}

// WriteIO16 latches the reload value on a low-register write (the live
// counter is untouched until the channel next starts or overflows) and
// applies control writes immediately, including an edge-triggered reload
// of counter from reload when a channel transitions from stopped to
// started — matching documented GBA timer-start behavior.
func (b *Bank) WriteIO16(offset uint32, v uint16) {
	i, isControl := b.index(offset)
	c := &b.channels[i]
	if !isControl {
		c.reload = v
		return
	}
	wasRunning := c.enabled()
	c.control = v
	if c.enabled() && !wasRunning {
		c.counter = c.reload
		c.accum = 0
	}
}

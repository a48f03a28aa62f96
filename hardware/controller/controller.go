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

// Package controller implements KEYINPUT/KEYCNT, the GBA's single
// memory-mapped keypad register pair (spec.md §6): ten active-low button
// bits plus an optional IRQ that fires when a configured chord is
// pressed (or released). The teacher's own controller package fed an
// external joystick device's events into the VCS's SWCHA/INPTx chip
// registers on a background goroutine; this keeps that external-device-
// feeds-a-register shape but collapses the VCS's multi-register, two-chip
// layout down to the GBA's single KEYINPUT/KEYCNT pair, driven by
// whatever host backend calls SetState instead of an OS joystick HID.
package controller

import "github.com/pixelscan/gba-core/hardware/interrupt"

// Button is one of the ten bits KEYINPUT/KEYCNT report, in their real
// hardware bit order.
type Button uint16

const (
	A      Button = 1 << 0
	B      Button = 1 << 1
	Select Button = 1 << 2
	Start  Button = 1 << 3
	Right  Button = 1 << 4
	Left   Button = 1 << 5
	Up     Button = 1 << 6
	Down   Button = 1 << 7
	R      Button = 1 << 8
	L      Button = 1 << 9

	allButtons = 0x03FF
)

const (
	offsetKEYINPUT = 0x130
	offsetKEYCNT   = 0x132

	keycntIRQEnable = 1 << 14
	keycntCondAnd   = 1 << 15 // set: AND of selected buttons; clear: OR
)

// Keypad holds the held-button bitmask a host backend drives via
// SetState, and implements bus.Peripheral for the KEYINPUT/KEYCNT pair.
type Keypad struct {
	irq *interrupt.Controller

	held   Button // 1 = currently pressed (host-facing polarity)
	keycnt uint16
}

// New returns a Keypad with no buttons held.
func New(irq *interrupt.Controller) *Keypad {
	return &Keypad{irq: irq}
}

// SetState replaces the full set of currently-held buttons, the
// read_keys() host backend hook of spec.md §6. Call once per frame (or
// per input poll) before stepping the emulation.
func (k *Keypad) SetState(held Button) {
	k.held = held & allButtons
	k.checkIRQ()
}

// Press and Release adjust individual buttons, for host backends that
// deliver discrete key-down/key-up events rather than a full snapshot.
func (k *Keypad) Press(b Button)   { k.held |= b; k.checkIRQ() }
func (k *Keypad) Release(b Button) { k.held &^= b; k.checkIRQ() }

func (k *Keypad) checkIRQ() {
	if k.keycnt&keycntIRQEnable == 0 {
		return
	}
	selected := Button(k.keycnt & allButtons)
	if selected == 0 {
		return
	}
	pressedSelected := k.held & selected
	var fire bool
	if k.keycnt&keycntCondAnd != 0 {
		fire = pressedSelected == selected
	} else {
		fire = pressedSelected != 0
	}
	if fire {
		k.irq.Raise(interrupt.Keypad)
	}
}

// OwnsIO reports whether offset is KEYINPUT or KEYCNT.
func (k *Keypad) OwnsIO(offset uint32) bool {
	return offset == offsetKEYINPUT || offset == offsetKEYCNT
}

// ReadIO16 returns KEYINPUT (active-low: unset bit = pressed) or KEYCNT.
func (k *Keypad) ReadIO16(offset uint32) uint16 {
	switch offset {
	case offsetKEYINPUT:
		return allButtons &^ uint16(k.held)
	case offsetKEYCNT:
		return k.keycnt
	default:
		return 0
	}
}

// WriteIO16 applies a write to KEYCNT; KEYINPUT is read-only on real
// hardware and ignores writes.
func (k *Keypad) WriteIO16(offset uint32, v uint16) {
	if offset == offsetKEYCNT {
		k.keycnt = v
		k.checkIRQ()
	}
}

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

// Package registers implements the ARM7TDMI register file: the 16
// general-purpose registers, the banked copies behind them, and the CPSR/SPSR
// status registers. It follows the teacher's registers package in spirit —
// explicit boolean flag fields with ToUint/FromUint conversions and a
// String() for diagnostics (hardware/cpu/registers/registers.go,
// hardware/cpu/status_register.go) — generalised from the 6502's one status
// byte to the ARM's mode-banked register file described in spec.md §3.
package registers

import "fmt"

// Mode is the processor mode encoded in CPSR bits 4:0. The enumerated set is
// closed: an undefined mode value is a programming error (spec.md §3
// invariant), not a silent wrap.
type Mode uint32

// The five low bits of CPSR as defined by the ARM7TDMI. Values other than
// these six plus System are invalid.
const (
	User   Mode = 0x10
	FIQ    Mode = 0x11
	IRQ    Mode = 0x12
	SVC    Mode = 0x13
	ABT    Mode = 0x17
	UND    Mode = 0x1B
	System Mode = 0x1F
)

// Valid reports whether m is one of the seven defined processor modes.
func (m Mode) Valid() bool {
	switch m {
	case User, FIQ, IRQ, SVC, ABT, UND, System:
		return true
	}
	return false
}

// Privileged reports whether m is anything other than User mode. Privileged
// modes have their own banked SPSR.
func (m Mode) Privileged() bool {
	return m != User
}

// HasSPSR reports whether m has a private SPSR (every privileged mode does).
func (m Mode) HasSPSR() bool {
	return m.Privileged()
}

func (m Mode) String() string {
	switch m {
	case User:
		return "usr"
	case FIQ:
		return "fiq"
	case IRQ:
		return "irq"
	case SVC:
		return "svc"
	case ABT:
		return "abt"
	case UND:
		return "und"
	case System:
		return "sys"
	default:
		return fmt.Sprintf("invalid(0x%02x)", uint32(m))
	}
}

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

package registers

import "fmt"

// StatusRegister holds the CPSR/SPSR flag and control bits, following the
// teacher's StatusRegister shape (explicit named bool fields, ToUint32 /
// FromUint32 round trips for stack/register push semantics, ToBits for
// diagnostics) generalised from the 6502's 8-bit register to the ARM's
// 32-bit one, per spec.md §3.
type StatusRegister struct {
	// condition flags
	N bool // negative/less-than
	Z bool // zero
	C bool // carry/borrow
	V bool // overflow

	// control bits
	I bool // IRQ disabled when true
	F bool // FIQ disabled when true
	T bool // Thumb state when true

	Mode Mode
}

// NewStatusRegister returns a StatusRegister reset into Supervisor mode with
// both interrupt sources masked, as the ARM7TDMI does on reset.
func NewStatusRegister() StatusRegister {
	return StatusRegister{
		I:    true,
		F:    true,
		Mode: SVC,
	}
}

// bit positions within the 32-bit CPSR/SPSR encoding.
const (
	bitN = 31
	bitZ = 30
	bitC = 29
	bitV = 28
	bitI = 7
	bitF = 6
	bitT = 5
)

// ToUint32 packs the StatusRegister into the hardware CPSR/SPSR encoding.
func (sr StatusRegister) ToUint32() uint32 {
	var v uint32
	if sr.N {
		v |= 1 << bitN
	}
	if sr.Z {
		v |= 1 << bitZ
	}
	if sr.C {
		v |= 1 << bitC
	}
	if sr.V {
		v |= 1 << bitV
	}
	if sr.I {
		v |= 1 << bitI
	}
	if sr.F {
		v |= 1 << bitF
	}
	if sr.T {
		v |= 1 << bitT
	}
	v |= uint32(sr.Mode) & 0x1f
	return v
}

// FromUint32 unpacks a hardware CPSR/SPSR encoding into the receiver. The
// mode field is not validated here — callers that must honour spec.md's
// "undefined mode is a program error" invariant should call Mode.Valid()
// explicitly, since FromUint32 is also used to restore a SPSR snapshot that
// is trusted by construction.
func (sr *StatusRegister) FromUint32(v uint32) {
	sr.N = v&(1<<bitN) != 0
	sr.Z = v&(1<<bitZ) != 0
	sr.C = v&(1<<bitC) != 0
	sr.V = v&(1<<bitV) != 0
	sr.I = v&(1<<bitI) != 0
	sr.F = v&(1<<bitF) != 0
	sr.T = v&(1<<bitT) != 0
	sr.Mode = Mode(v & 0x1f)
}

// FromUint32Flags updates only the flag bits (N, Z, C, V) from v, leaving
// control bits and mode untouched — used by MSR with the "flags only" form
// (spec.md §4.5 MRS/MSR), which affects only bits 31..28.
func (sr *StatusRegister) FromUint32Flags(v uint32) {
	sr.N = v&(1<<bitN) != 0
	sr.Z = v&(1<<bitZ) != 0
	sr.C = v&(1<<bitC) != 0
	sr.V = v&(1<<bitV) != 0
}

// ToBits renders the StatusRegister as a labelled bit pattern, lower-case
// for a clear flag and upper-case for a set one, in the teacher's style.
func (sr StatusRegister) ToBits() string {
	bit := func(set bool, c byte) byte {
		if set {
			return c - ('a' - 'A')
		}
		return c
	}
	return fmt.Sprintf("%c%c%c%c-%c%c%c-%s",
		bit(sr.N, 'n'), bit(sr.Z, 'z'), bit(sr.C, 'c'), bit(sr.V, 'v'),
		bit(sr.I, 'i'), bit(sr.F, 'f'), bit(sr.T, 't'),
		sr.Mode)
}

func (sr StatusRegister) String() string {
	return fmt.Sprintf("cpsr: %s [0x%08x]", sr.ToBits(), sr.ToUint32())
}

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

package arm

import "github.com/pixelscan/gba-core/hardware/cpu/registers"

// Core is everything an executor needs from the CPU, expressed as an
// interface so this package never imports hardware/cpu (which imports this
// package to drive dispatch) — the same seam the teacher's coprocessor core
// uses (a SharedMemory interface) to keep the ARM core decoupled from its
// host.
type Core interface {
	R(n int) uint32
	SetR(n int, v uint32)
	PC() uint32
	SetPC(v uint32)

	CPSR() registers.StatusRegister
	SetCPSR(registers.StatusRegister)
	SetCPSRFlags(n, z, c, v bool)

	SPSR() registers.StatusRegister
	SetSPSR(registers.StatusRegister)
	RestoreCPSRFromSPSR()
	SwitchMode(registers.Mode)

	// FlushPipeline marks the two-slot prefetch buffer invalid, per
	// spec.md §3: any write to PC through a mechanism other than natural
	// advance requires this.
	FlushPipeline()

	// EnterException performs the common exception-entry sequence: save
	// CPSR to the target mode's SPSR, switch mode, set LR to the supplied
	// link value, mask IRQ (and FIQ for Reset/FIQ vectors, not used here),
	// clear T, and set PC to vector.
	EnterException(vector uint32, mode registers.Mode, link uint32, maskFIQ bool)
}

// Bus is the subset of the memory bus (spec.md §4.1) an ARM executor needs:
// 8/16/32-bit read and write at a 32-bit address. Implemented by
// hardware/bus.Bus.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// Action is an executor's report of how the pipeline moved, per spec.md
// §4.5: AdvancePC(bytes) or PipelineFlushed.
type Action struct {
	Flushed    bool
	AdvanceLen uint32
}

// Advance reports a natural advance of the program counter by n bytes (4
// for ARM, ahead of this package's Thumb-less scope).
func Advance(n uint32) Action { return Action{AdvanceLen: n} }

// Flushed reports that the executor redirected control flow and the
// pipeline must be refilled from the new PC.
func Flushed() Action { return Action{Flushed: true} }

// Handler executes one decoded instruction whose condition has already
// been evaluated and found true (spec.md §4.5 precondition: "handlers must
// not themselves re-check it").
type Handler func(core Core, bus Bus, insn Instruction) Action

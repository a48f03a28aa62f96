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

package thumb

import "github.com/pixelscan/gba-core/hardware/cpu/registers"

// Core is everything a Thumb executor needs from the CPU. It is the same
// method set as arm.Core, declared separately so this package doesn't
// import arm: hardware/cpu implements both by forwarding to one register
// file, but the two instruction-level packages stay decoupled from each
// other the same way each is decoupled from hardware/cpu.
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

	FlushPipeline()
	EnterException(vector uint32, mode registers.Mode, link uint32, maskFIQ bool)
}

// Bus is the subset of the memory bus a Thumb executor needs.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, v uint8)
	Write16(addr uint32, v uint16)
	Write32(addr uint32, v uint32)
}

// Action reports how an executor moved the pipeline, mirroring arm.Action.
type Action struct {
	Flushed    bool
	AdvanceLen uint32
}

func Advance(n uint32) Action { return Action{AdvanceLen: n} }
func Flushed() Action         { return Action{Flushed: true} }

// Handler executes one decoded Thumb instruction.
type Handler func(core Core, bus Bus, insn Instruction) Action

// Dispatch classifies and runs the handler for insn.
func Dispatch(core Core, bus Bus, insn Instruction) Action {
	return handlerFor(insn.Fmt)(core, bus, insn)
}

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

// Package cpu ties the register file together with the ARM and Thumb
// decode/execute cores behind a single Step, the way the teacher's
// hardware/cpu package drives its own 6502 core: a struct holding state,
// implementing whatever interface the instruction-level package (here,
// arm.Core and thumb.Core) requires of its host.
package cpu

import (
	"math/bits"

	"github.com/pixelscan/gba-core/hardware/cpu/arm"
	"github.com/pixelscan/gba-core/hardware/cpu/registers"
	"github.com/pixelscan/gba-core/hardware/cpu/thumb"
	"github.com/pixelscan/gba-core/internal/config"
)

// CPU is the ARM7TDMI core: a register file, the bus it fetches and
// transfers through, and the pipeline-flushed flag spec.md §3 calls for.
// It implements both arm.Core and thumb.Core, since both instruction-level
// packages need the same register and exception-entry surface.
type CPU struct {
	regs    *registers.File
	bus     arm.Bus
	flushed bool
	cycles  uint64
	cfg     config.Config
	tracer  Tracer
}

// New returns a CPU reset to the ARM7TDMI's power-on state: Supervisor
// mode, IRQ and FIQ masked, PC at the reset vector, pipeline flushed (the
// first Step always re-fetches from PC rather than trusting a cached
// slot).
func New(bus arm.Bus, cfg config.Config) *CPU {
	c := &CPU{regs: registers.NewFile(), bus: bus, cfg: cfg, flushed: true}
	c.regs.SetPC(arm.VectorReset)
	return c
}

// Cycles returns the running total of cycles this CPU has charged, for
// peripherals and the main loop to read after each Step.
func (c *CPU) Cycles() uint64 { return c.cycles }

// R, SetR, PC, SetPC, CPSR, SetCPSR, SetCPSRFlags, SPSR, SetSPSR,
// RestoreCPSRFromSPSR, SwitchMode and FlushPipeline satisfy both arm.Core
// and thumb.Core by forwarding to the register file.

func (c *CPU) R(n int) uint32      { return c.regs.Get(n) }
func (c *CPU) SetR(n int, v uint32) { c.regs.Set(n, v) }
func (c *CPU) PC() uint32          { return c.regs.PC() }
func (c *CPU) SetPC(v uint32)      { c.regs.SetPC(v) }

func (c *CPU) CPSR() registers.StatusRegister      { return c.regs.CPSR() }
func (c *CPU) SetCPSR(sr registers.StatusRegister) { c.regs.SetCPSR(sr) }
func (c *CPU) SetCPSRFlags(n, z, cy, v bool)       { c.regs.SetCPSRFlags(n, z, cy, v) }

func (c *CPU) SPSR() registers.StatusRegister      { return c.regs.SPSR() }
func (c *CPU) SetSPSR(sr registers.StatusRegister) { c.regs.SetSPSR(sr) }
func (c *CPU) RestoreCPSRFromSPSR()                { c.regs.RestoreCPSRFromSPSR() }
func (c *CPU) SwitchMode(m registers.Mode)          { c.regs.SwitchMode(m) }

// FlushPipeline marks the two-slot prefetch buffer invalid. Since this
// core re-fetches from PC every Step rather than modeling the prefetch
// slots explicitly, flushed is only used to distinguish "PC advanced
// naturally" from "PC was redirected" for cycle-cost purposes.
func (c *CPU) FlushPipeline() { c.flushed = true }

// EnterException performs the exception-entry sequence common to every
// vector (spec.md §4.5, §6): save CPSR to the target mode's SPSR, bank
// into the target mode, set LR, mask IRQ (and FIQ if requested), clear T,
// and vector PC.
func (c *CPU) EnterException(vector uint32, mode registers.Mode, link uint32, maskFIQ bool) {
	old := c.regs.CPSR()
	c.regs.SwitchMode(mode)
	c.regs.SetSPSR(old)
	c.regs.Set(14, link)

	sr := c.regs.CPSR() // old flags, Mode already updated by SwitchMode
	sr.I = true
	if maskFIQ {
		sr.F = true
	}
	sr.T = false
	c.regs.SetCPSR(sr)

	c.regs.SetPC(vector)
	c.flushed = true
}

// Step executes exactly one instruction, ARM or Thumb depending on CPSR.T,
// per spec.md §4.6, and returns the cycle cost charged.
func (c *CPU) Step() uint64 {
	if c.regs.CPSR().T {
		return c.stepThumb()
	}
	return c.stepARM()
}

func (c *CPU) stepARM() uint64 {
	pc := c.regs.PC()
	raw := c.bus.Read32(pc)
	insn := arm.Decode(raw, pc)

	if !arm.EvalCondition(insn.Condition(), c.regs.CPSR()) {
		c.regs.SetPC(pc + 4)
		c.cycles++
		return 1
	}

	c.flushed = false
	action := arm.Dispatch(c, c.bus, insn)
	cost := arm.Cost(insn, action, armMemoryAccesses(insn), c.cfg.CycleAccurateRefill)

	if !action.Flushed {
		c.regs.SetPC(pc + 4)
	}

	c.cycles += cost
	if c.tracer != nil {
		c.tracer.Step(Trace{PC: pc, Raw: insn.Raw, Thumb: false, Cost: cost})
	}
	return cost
}

func (c *CPU) stepThumb() uint64 {
	pc := c.regs.PC()
	raw := c.bus.Read16(pc)
	insn := thumb.Decode(raw, pc)

	if !arm.EvalCondition(insn.Condition(), c.regs.CPSR()) {
		c.regs.SetPC(pc + 2)
		c.cycles++
		return 1
	}

	c.flushed = false
	action := thumb.Dispatch(c, c.bus, insn)
	cost := thumb.Cost(insn, action, c.cfg.CycleAccurateRefill)

	if !action.Flushed {
		c.regs.SetPC(pc + 2)
	}

	c.cycles += cost
	if c.tracer != nil {
		c.tracer.Step(Trace{PC: pc, Raw: uint32(insn.Raw), Thumb: true, Cost: cost})
	}
	return cost
}

// armMemoryAccesses estimates the number of bus transfers an already-
// decoded ARM instruction will make, for arm.Cost's accounting. Block
// transfers vary with the register list; single and halfword transfers
// make exactly one access (exec_transfer.go). Everything else reports 0,
// including SingleDataSwap, whose read and write arm.Cost charges itself.
func armMemoryAccesses(insn arm.Instruction) int {
	switch insn.Fmt {
	case arm.BlockDataTransfer:
		return bits.OnesCount32(insn.Raw & 0xFFFF)
	case arm.SingleDataTransfer, arm.HalfwordTransferReg, arm.HalfwordTransferImm:
		return 1
	default:
		return 0
	}
}

// IRQPending is called by the main loop after every peripheral step, per
// spec.md §4.9's fixed ordering contract: peripherals advance, their IRQ
// bits fold into the interrupt controller, and only then does the CPU
// check IE/IME and possibly vector through 0x18. pending is the result of
// that check (already ANDed with IME and unmasked IE bits); IRQPending
// itself only consults CPSR.I, since IE/IME live in hardware/interrupt.
func (c *CPU) IRQPending(pending bool) bool {
	if !pending || c.regs.CPSR().I {
		return false
	}
	c.EnterException(arm.VectorIRQ, registers.IRQ, c.regs.PC(), false)
	return true
}

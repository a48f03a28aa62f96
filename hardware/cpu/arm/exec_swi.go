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

// execSoftwareInterrupt implements SWI (spec.md §4.5): switch to Supervisor
// mode, save CPSR to SPSR_svc, LR_svc = PC-4, vector to 0x08, mask IRQs,
// flush.
func execSoftwareInterrupt(core Core, bus Bus, insn Instruction) Action {
	core.EnterException(VectorSWI, registers.SVC, insn.PC+4, false)
	return Flushed()
}

// execUndefined implements entry into the Undefined-mode exception (spec.md
// §4.5, §7): the normal destination for decode errors and illegal
// encodings, not a host-visible failure.
func execUndefined(core Core, bus Bus, insn Instruction) Action {
	return enterUndefined(core, insn)
}

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

// CycleType classifies one bus/internal cycle the way the teacher's
// ARM7TDMI coprocessor core does (N/S/I cycles, merged where adjacent),
// per SPEC_FULL.md's resolution of spec.md §9's open cycle-cost question.
type CycleType int

const (
	// Sequential: a bus cycle that follows the previous one in address
	// order with no gap — cheapest.
	Sequential CycleType = iota
	// NonSequential: a bus cycle that doesn't follow the previous one;
	// the first access of any new burst.
	NonSequential
	// Internal: no bus access, e.g. a register-only ALU cycle.
	Internal
)

// Cost returns the baseline cycle count for executing insn, given whether
// it retired a memory access and whether the pipeline was refilled.
// cycleAccurateRefill selects whether an instruction that flushes the
// pipeline (an LDM that loads PC, a write to PC, an exception entry)
// charges one extra internal cycle for the refill; B/BL/BX already carry
// their refill cost and get no extra cycle (Config's CycleAccurateRefill,
// SPEC_FULL.md Open Questions decision 1).
func Cost(insn Instruction, action Action, memoryAccesses int, cycleAccurateRefill bool) uint64 {
	var cycles uint64 = 1 // at least one internal/sequential cycle to fetch

	switch insn.Fmt {
	case SingleDataTransfer, HalfwordTransferReg, HalfwordTransferImm:
		cycles += uint64(memoryAccesses) + 1 // +1 internal cycle for address calc
	case BlockDataTransfer:
		cycles += uint64(memoryAccesses)
	case SingleDataSwap:
		cycles += 2 // one read, one write
	case Multiply, MultiplyLong:
		cycles += 1 // at minimum one extra internal cycle; real cost is operand-dependent
	case BranchLink, BranchExchange:
		cycles += 2 // pipeline refill: two prefetch cycles
	}

	if action.Flushed && cycleAccurateRefill && insn.Fmt != BranchLink && insn.Fmt != BranchExchange {
		cycles++
	}

	return cycles
}

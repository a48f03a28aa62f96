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

// lutSize is the 4096-entry size fixed by the 12-bit hash (spec.md §4.4,
// §9: "the 4096-entry size is fixed by the hash").
const lutSize = 4096

// LUTSize exports lutSize for tooling (cmd/gbalut) that visualises the
// dispatch table without needing to know the hash width itself.
const LUTSize = lutSize

// FormatAt returns the Format classification stored at hash's entry,
// for tooling that walks the whole table. The handler function pointer
// itself is deliberately not exported; a reader of the table only needs
// to know which format occupies a slot, not its code address.
func FormatAt(hash uint32) Format {
	return table[hash&(lutSize-1)].format
}

type lutEntry struct {
	format  Format
	handler Handler
}

// table is built once at package initialisation (spec.md §9: "build as a
// static table at program start"); there is no dynamic dispatch beyond the
// handler function pointer it stores per entry.
var table [lutSize]lutEntry

func init() {
	for i := uint32(0); i < lutSize; i++ {
		word := canonicalWord(i)
		format := Classify(word)
		table[i] = lutEntry{format: format, handler: handlerFor(format)}
	}
}

func lookup(hash uint32) lutEntry {
	return table[hash&(lutSize-1)]
}

// Dispatch looks up and runs the handler for insn. The caller (hardware/cpu's
// Step) is responsible for having already evaluated the condition code;
// per spec.md §4.5 handlers never re-check it.
func Dispatch(core Core, bus Bus, insn Instruction) Action {
	e := lookup(Hash(insn.Raw))
	return e.handler(core, bus, insn)
}

// handlerFor returns the single handler registered for a format. Kept as a
// plain switch (no dynamic dispatch) per spec.md §9; the indirection a
// reader might expect from an interface lives entirely in the function
// pointer stored in the table.
func handlerFor(f Format) Handler {
	switch f {
	case BranchExchange:
		return execBranchExchange
	case BranchLink:
		return execBranch
	case SoftwareInterrupt:
		return execSoftwareInterrupt
	case Multiply:
		return execMultiply
	case MultiplyLong:
		return execMultiplyLong
	case SingleDataTransfer:
		return execSingleDataTransfer
	case HalfwordTransferReg, HalfwordTransferImm:
		return execHalfwordTransfer
	case DataProcessing:
		return execDataProcessing
	case BlockDataTransfer:
		return execBlockDataTransfer
	case SingleDataSwap:
		return execSingleDataSwap
	case MoveFromStatus:
		return execMoveFromStatus
	case MoveToStatus, MoveToFlags:
		return execMoveToStatus
	default:
		return execUndefined
	}
}

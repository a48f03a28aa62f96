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

// handlerFor maps a classified Format to its executor. Thumb's format
// space is small enough that, unlike arm.lookup's 4096-entry hash table,
// a direct switch is the idiomatic fit.
func handlerFor(f Format) Handler {
	switch f {
	case MoveShiftedRegister:
		return execMoveShiftedRegister
	case AddSubtract:
		return execAddSubtract
	case MoveCmpAddSubImmediate:
		return execMoveCmpAddSubImmediate
	case ALUOperation:
		return execALUOperation
	case HiRegisterOps:
		return execHiRegisterOps
	case PCRelativeLoad:
		return execPCRelativeLoad
	case LoadStoreRegisterOffset:
		return execLoadStoreRegisterOffset
	case LoadStoreSignExtended:
		return execLoadStoreSignExtended
	case LoadStoreImmediateOffset:
		return execLoadStoreImmediateOffset
	case LoadStoreHalfword:
		return execLoadStoreHalfword
	case SPRelativeLoadStore:
		return execSPRelativeLoadStore
	case LoadAddress:
		return execLoadAddress
	case AddOffsetToSP:
		return execAddOffsetToSP
	case PushPopRegisters:
		return execPushPopRegisters
	case MultipleLoadStore:
		return execMultipleLoadStore
	case ConditionalBranch:
		return execConditionalBranch
	case SoftwareInterrupt:
		return execSoftwareInterrupt
	case UnconditionalBranch:
		return execUnconditionalBranch
	case LongBranchWithLink:
		return execLongBranchWithLink
	default:
		return func(core Core, bus Bus, insn Instruction) Action {
			return enterUndefined(core, insn)
		}
	}
}

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

type maskMatch struct {
	format   Format
	mask     uint16
	expected uint16
}

// classifyTable is the same "working backwards up the table in Figure 5-1
// of the ARM7TDMI Data Sheet" the teacher's Run loop classifies with,
// reproduced here as data instead of an if/else chain so it can be shared
// between Classify and any future disassembler.
var classifyTable = []maskMatch{
	{LongBranchWithLink, 0xf000, 0xf000},
	{UnconditionalBranch, 0xf000, 0xe000},
	{SoftwareInterrupt, 0xff00, 0xdf00},
	{ConditionalBranch, 0xf000, 0xd000},
	{MultipleLoadStore, 0xf000, 0xc000},
	{PushPopRegisters, 0xf600, 0xb400},
	{AddOffsetToSP, 0xff00, 0xb000},
	{LoadAddress, 0xf000, 0xa000},
	{SPRelativeLoadStore, 0xf000, 0x9000},
	{LoadStoreHalfword, 0xf000, 0x8000},
	{LoadStoreImmediateOffset, 0xe000, 0x6000},
	{LoadStoreSignExtended, 0xf200, 0x5200},
	{LoadStoreRegisterOffset, 0xf200, 0x5000},
	{PCRelativeLoad, 0xf800, 0x4800},
	{HiRegisterOps, 0xfc00, 0x4400},
	{ALUOperation, 0xfc00, 0x4000},
	{MoveCmpAddSubImmediate, 0xe000, 0x2000},
	{AddSubtract, 0xf800, 0x1800},
	{MoveShiftedRegister, 0xe000, 0x0000},
}

// Classify determines the Format of a 16-bit Thumb opcode.
func Classify(opcode uint16) Format {
	for _, m := range classifyTable {
		if opcode&m.mask == m.expected {
			return m.format
		}
	}
	return Undefined
}

// Decode classifies raw at address pc into a tagged Instruction.
func Decode(raw uint16, pc uint32) Instruction {
	return Instruction{Raw: raw, PC: pc, Fmt: Classify(raw)}
}

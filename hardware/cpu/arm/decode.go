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

// Hash folds a 32-bit instruction word into the 12-bit index used to key
// the dispatch table, per spec.md §4.4. It captures exactly the bits used
// for format discrimination (not the condition code, which is evaluated at
// execution time against CPSR).
func Hash(word uint32) uint32 {
	return (word>>16)&0xFF0 | (word>>4)&0x00F
}

// canonicalWord expands a 12-bit hash back into the instruction pattern
// used to classify it, per spec.md §4.4: the hash's bits are placed back
// into the positions they came from and everything else is zero.
func canonicalWord(hash uint32) uint32 {
	return (hash&0xFF0)<<16 | (hash&0x00F)<<4
}

// maskMatch is one row of the ordered predicate table in spec.md §4.4.
type maskMatch struct {
	format   Format
	mask     uint32
	expected uint32
}

// classifyTable is evaluated in order; the first match wins. The order
// matters because later entries would otherwise be shadowed by earlier,
// broader ones (e.g. DataProcessing's mask would also match
// SingleDataTransfer's pattern if checked first).
var classifyTable = []maskMatch{
	// Mask covers only the hash's own bits (20-27, 4-7), matching
	// original_source/.../arm/lut.rs's ArmFormat::from exactly. A
	// tighter mask that also pins bits 8-19 (the SBZ field) would never
	// match once routed through canonicalWord, which zeroes every bit
	// outside the hash before classification.
	{BranchExchange, 0x0FF0_00F0, 0x0120_0010},
	{Undefined, 0xE000_0010, 0x0600_0000}, // reserved block-transfer-shaped undefined encoding
	{SingleDataSwap, 0x0FB0_0FF0, 0x0100_0090},
	{Multiply, 0x0FC0_00F0, 0x0000_0090},
	{MultiplyLong, 0x0F80_00F0, 0x0080_0090},
	// Same hash-bits-only constraint as BranchExchange above: MRS/MSR's
	// distinguishing SBZ/SBO fields live outside the hash, so these
	// masks match original_source's MRS/MSR_REG/MSR_FLAGS exactly rather
	// than pinning bits canonicalWord would zero out.
	{MoveFromStatus, 0x0FB0_00F0, 0x0100_0000},
	{MoveToStatus, 0x0FB0_00F0, 0x0120_0000},
	{MoveToFlags, 0x0DB0_0000, 0x0120_0000},
	{SingleDataTransfer, 0x0C00_0000, 0x0400_0000},
	{HalfwordTransferReg, 0x0E40_0F90, 0x0000_0090},
	{HalfwordTransferImm, 0x0E40_0090, 0x0040_0090},
	{BlockDataTransfer, 0x0E00_0000, 0x0800_0000},
	{BranchLink, 0x0E00_0000, 0x0A00_0000},
	{SoftwareInterrupt, 0x0F00_0000, 0x0F00_0000},
	{DataProcessing, 0x0C00_0000, 0x0000_0000},
}

// Classify determines the Format of a canonical instruction pattern by the
// ordered bitmask predicates of spec.md §4.4. It is used once per hash
// bucket at table-build time, and directly by Decode for documentation/test
// purposes (Decode defers to the pre-built table for actual dispatch).
func Classify(word uint32) Format {
	for _, m := range classifyTable {
		if word&m.mask == m.expected {
			return m.format
		}
	}
	return Undefined
}

// Decode classifies raw at address pc using the pre-built dispatch table,
// returning the tagged Instruction described in spec.md §3. The condition
// code is carried in Raw and is evaluated by the caller (core.Step), never
// by Decode or by an executor.
func Decode(raw uint32, pc uint32) Instruction {
	e := lookup(Hash(raw))
	return Instruction{Raw: raw, PC: pc, Fmt: e.format}
}

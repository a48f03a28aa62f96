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

// execMultiply implements MUL/MLA (spec.md §4.5): Rd = Rm*Rs (+Rn if
// accumulate).
func execMultiply(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	accumulate := raw&(1<<21) != 0
	s := raw&(1<<20) != 0
	rd := int((raw >> 16) & 0xF)
	rn := int((raw >> 12) & 0xF)
	rs := int((raw >> 8) & 0xF)
	rm := int(raw & 0xF)

	result := core.R(rm) * core.R(rs)
	if accumulate {
		result += core.R(rn)
	}
	core.SetR(rd, result)

	if s {
		sr := core.CPSR()
		sr.N = result&0x8000_0000 != 0
		sr.Z = result == 0
		core.SetCPSR(sr)
	}

	return Advance(4)
}

// execMultiplyLong implements UMULL/UMLAL/SMULL/SMLAL (spec.md §4.5): a
// 64-bit product into {RdHi, RdLo}, optionally signed and/or accumulating.
func execMultiplyLong(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	signed := raw&(1<<22) != 0
	accumulate := raw&(1<<21) != 0
	s := raw&(1<<20) != 0
	rdHi := int((raw >> 16) & 0xF)
	rdLo := int((raw >> 12) & 0xF)
	rs := int((raw >> 8) & 0xF)
	rm := int(raw & 0xF)

	var product uint64
	if signed {
		product = uint64(int64(int32(core.R(rm))) * int64(int32(core.R(rs))))
	} else {
		product = uint64(core.R(rm)) * uint64(core.R(rs))
	}

	if accumulate {
		acc := uint64(core.R(rdHi))<<32 | uint64(core.R(rdLo))
		product += acc
	}

	lo := uint32(product)
	hi := uint32(product >> 32)
	core.SetR(rdLo, lo)
	core.SetR(rdHi, hi)

	if s {
		sr := core.CPSR()
		sr.N = hi&0x8000_0000 != 0
		sr.Z = lo == 0 && hi == 0
		core.SetCPSR(sr)
	}

	return Advance(4)
}

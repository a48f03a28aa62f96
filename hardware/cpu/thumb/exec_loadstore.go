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

// execPCRelativeLoad implements format 6, grounded on
// executePCrelativeLoad: word-aligned PC plus an unsigned 10-bit offset.
func execPCRelativeLoad(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	rd := int((raw & 0x0700) >> 8)
	imm := uint32(raw&0x00ff) << 2

	pc := (insn.PC + 4) &^ 3
	core.SetR(rd, bus.Read32(pc+imm))
	return Advance(2)
}

// execLoadStoreRegisterOffset implements format 7, grounded on
// executeLoadStoreWithRegisterOffset.
func execLoadStoreRegisterOffset(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	byteWidth := raw&0x0400 != 0
	offsetReg := int((raw & 0x01c0) >> 6)
	baseReg := int((raw & 0x0038) >> 3)
	reg := int(raw & 0x0007)

	addr := core.R(baseReg) + core.R(offsetReg)

	if load {
		if byteWidth {
			core.SetR(reg, uint32(bus.Read8(addr)))
		} else {
			core.SetR(reg, bus.Read32(addr))
		}
		return Advance(2)
	}

	if byteWidth {
		bus.Write8(addr, uint8(core.R(reg)))
	} else {
		bus.Write32(addr, core.R(reg))
	}
	return Advance(2)
}

// execLoadStoreSignExtended implements format 8, grounded on
// executeLoadStoreSignExtendedByteHalford: LDSB/LDSH/LDRH/STRH selected by
// the sign/hi bit pair.
func execLoadStoreSignExtended(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	hi := raw&0x0800 != 0
	sign := raw&0x0400 != 0
	offsetReg := int((raw & 0x01c0) >> 6)
	baseReg := int((raw & 0x0038) >> 3)
	reg := int(raw & 0x0007)

	addr := core.R(baseReg) + core.R(offsetReg)

	switch {
	case sign && hi: // LDSH
		v := uint32(bus.Read16(addr))
		if v&0x8000 != 0 {
			v |= 0xffff0000
		}
		core.SetR(reg, v)
	case sign && !hi: // LDSB
		v := uint32(bus.Read8(addr))
		if v&0x80 != 0 {
			v |= 0xffffff00
		}
		core.SetR(reg, v)
	case !sign && hi: // LDRH
		core.SetR(reg, uint32(bus.Read16(addr)))
	default: // STRH
		bus.Write16(addr, uint16(core.R(reg)))
	}

	return Advance(2)
}

// execLoadStoreImmediateOffset implements format 9, grounded on
// executeLoadStoreWithImmOffset: word offsets are pre-scaled by 4, byte
// offsets are not.
func execLoadStoreImmediateOffset(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	byteWidth := raw&0x1000 != 0
	offset := uint32((raw & 0x07c0) >> 6)
	baseReg := int((raw & 0x0038) >> 3)
	reg := int(raw & 0x0007)

	if !byteWidth {
		offset <<= 2
	}
	addr := core.R(baseReg) + offset

	if load {
		if byteWidth {
			core.SetR(reg, uint32(bus.Read8(addr)))
		} else {
			core.SetR(reg, bus.Read32(addr))
		}
		return Advance(2)
	}

	if byteWidth {
		bus.Write8(addr, uint8(core.R(reg)))
	} else {
		bus.Write32(addr, core.R(reg))
	}
	return Advance(2)
}

// execLoadStoreHalfword implements format 10, grounded on
// executeLoadStoreHalfword: a 6-bit offset pre-scaled by 2.
func execLoadStoreHalfword(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	offset := uint32((raw&0x07c0)>>6) << 1
	baseReg := int((raw & 0x0038) >> 3)
	reg := int(raw & 0x0007)

	addr := core.R(baseReg) + offset

	if load {
		core.SetR(reg, uint32(bus.Read16(addr)))
		return Advance(2)
	}
	bus.Write16(addr, uint16(core.R(reg)))
	return Advance(2)
}

// execSPRelativeLoadStore implements format 11, grounded on
// executeSPRelativeLoadStore: an 8-bit offset pre-scaled by 4, against R13.
func execSPRelativeLoadStore(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	load := raw&0x0800 != 0
	reg := int((raw & 0x0700) >> 8)
	offset := uint32(raw&0x00ff) << 2

	addr := core.R(13) + offset

	if load {
		core.SetR(reg, bus.Read32(addr))
		return Advance(2)
	}
	bus.Write32(addr, core.R(reg))
	return Advance(2)
}

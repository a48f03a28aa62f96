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

import "math/bits"

// execBlockDataTransfer implements LDM/STM (spec.md §4.5): the set bits of
// the 16-bit register list are transferred in ascending register order at
// ascending addresses, regardless of whether the transfer itself walks
// memory upward or downward (that only affects which address the lowest
// register lands at).
func execBlockDataTransfer(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	pre := raw&(1<<24) != 0
	up := raw&(1<<23) != 0
	userBank := raw&(1<<22) != 0
	writeBack := raw&(1<<21) != 0
	load := raw&(1<<20) != 0
	rn := int((raw >> 16) & 0xF)
	list := raw & 0xFFFF

	count := bits.OnesCount32(list)
	base := core.R(rn)

	var start uint32
	if up {
		start = base
		if pre {
			start += 4
		}
	} else {
		start = base - uint32(count)*4
		if !pre {
			start += 4
		}
	}

	// The S bit (userBank) is decoded but not acted on: the listed
	// registers go through the current mode's bank, never the User bank,
	// and an LDM that loads PC with S set leaves CPSR unchanged.
	_ = userBank

	addr := start
	flushed := false
	for r := 0; r < 16; r++ {
		if list&(1<<r) == 0 {
			continue
		}
		if load {
			value := bus.Read32(addr)
			core.SetR(r, value)
			if r == 15 {
				core.FlushPipeline()
				flushed = true
			}
		} else {
			bus.Write32(addr, core.R(r))
		}
		addr += 4
	}

	if writeBack {
		if up {
			core.SetR(rn, base+uint32(count)*4)
		} else {
			core.SetR(rn, base-uint32(count)*4)
		}
	}

	if flushed {
		return Flushed()
	}
	return Advance(4)
}

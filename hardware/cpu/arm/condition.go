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

// EvalCondition evaluates a 4-bit ARM condition code against CPSR, per
// spec.md §9's suggestion of a switch over the 16 codes — equivalent to,
// but clearer than, a packed 256-bit table.
func EvalCondition(cond uint32, sr registers.StatusRegister) bool {
	switch cond {
	case 0x0: // EQ
		return sr.Z
	case 0x1: // NE
		return !sr.Z
	case 0x2: // CS/HS
		return sr.C
	case 0x3: // CC/LO
		return !sr.C
	case 0x4: // MI
		return sr.N
	case 0x5: // PL
		return !sr.N
	case 0x6: // VS
		return sr.V
	case 0x7: // VC
		return !sr.V
	case 0x8: // HI
		return sr.C && !sr.Z
	case 0x9: // LS
		return !sr.C || sr.Z
	case 0xA: // GE
		return sr.N == sr.V
	case 0xB: // LT
		return sr.N != sr.V
	case 0xC: // GT
		return !sr.Z && sr.N == sr.V
	case 0xD: // LE
		return sr.Z || sr.N != sr.V
	case 0xE: // AL
		return true
	default: // 0xF, NV on ARMv4: never execute
		return false
	}
}

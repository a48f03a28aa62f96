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

// Exception vector addresses, per spec.md §6.
const (
	VectorReset         uint32 = 0x00
	VectorUndefined     uint32 = 0x04
	VectorSWI           uint32 = 0x08
	VectorPrefetchAbort uint32 = 0x0C
	VectorDataAbort     uint32 = 0x10
	VectorReserved      uint32 = 0x14
	VectorIRQ           uint32 = 0x18
	VectorFIQ           uint32 = 0x1C
)

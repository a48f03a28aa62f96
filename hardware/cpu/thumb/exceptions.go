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

import (
	"github.com/pixelscan/gba-core/hardware/cpu/arm"
	"github.com/pixelscan/gba-core/hardware/cpu/registers"
)

// enterUndefined mirrors the arm package's helper of the same name: the
// reserved encoding at the end of MoveShiftedRegister's shift-type field
// traps to the Undefined vector just as ARM's own reserved encodings do.
func enterUndefined(core Core, insn Instruction) Action {
	core.EnterException(arm.VectorUndefined, registers.UND, insn.PC+4, false)
	return Flushed()
}

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

// execMoveFromStatus implements MRS (spec.md §4.5): read CPSR or SPSR into
// Rd.
func execMoveFromStatus(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	rd := int((raw >> 12) & 0xF)
	fromSPSR := raw&(1<<22) != 0

	if fromSPSR {
		core.SetR(rd, core.SPSR().ToUint32())
	} else {
		core.SetR(rd, core.CPSR().ToUint32())
	}
	return Advance(4)
}

// execMoveToStatus implements MSR, both the full-register form
// (MoveToStatus) and the flags-only immediate-or-register form
// (MoveToFlags), per spec.md §4.5: "MSR with flags-only affects only bits
// 31..28."
func execMoveToStatus(core Core, bus Bus, insn Instruction) Action {
	raw := insn.Raw
	toSPSR := raw&(1<<22) != 0
	flagsOnly := raw&(1<<16) == 0

	var value uint32
	if raw&(1<<25) != 0 {
		imm := raw & 0xFF
		rot := (raw >> 8) & 0xF
		value, _ = Shift(ROR, imm, rot*2, false, true)
		if rot == 0 {
			value = imm
		}
	} else {
		value = core.R(int(raw & 0xF))
	}

	if toSPSR {
		sr := core.SPSR()
		if flagsOnly {
			sr.FromUint32Flags(value)
		} else {
			sr.FromUint32(value)
		}
		core.SetSPSR(sr)
		return Advance(4)
	}

	sr := core.CPSR()
	if flagsOnly {
		sr.FromUint32Flags(value)
		core.SetCPSR(sr)
		return Advance(4)
	}

	// Full-register MSR to CPSR can change mode. spec.md §9 leaves "MSR
	// changing mode while in User mode" an open question; SPEC_FULL.md
	// resolves it as silently ignored (the mode field write is masked out).
	newMode := sr.Mode
	before := sr
	sr.FromUint32(value)
	if !before.Mode.Privileged() && sr.Mode != before.Mode {
		sr.Mode = newMode
	}
	if sr.Mode != before.Mode {
		core.SwitchMode(sr.Mode)
	}
	core.SetCPSR(sr)
	return Advance(4)
}

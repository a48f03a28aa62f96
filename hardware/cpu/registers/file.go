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

package registers

// File is the ARM7TDMI register file: R0..R15 as seen by the currently
// active mode, with the banked copies described in spec.md §3 sitting
// behind the façade. R13 (SP) and R14 (LR) are banked for every privileged
// mode; R8..R12 are additionally banked for FIQ only.
type File struct {
	// r is the *currently visible* register set. Switching mode copies the
	// outgoing mode's banked registers out of r and the incoming mode's
	// banked registers into r, so every other piece of code can simply index
	// r[0..15] without caring about the active mode.
	r [16]uint32

	// banked R13/R14, one slot per privileged mode plus unbanked User/System
	// (which share a bank, since System uses the User registers).
	bankedSP [7]uint32
	bankedLR [7]uint32

	// banked R8..R12, FIQ only; index 0 is the non-FIQ ("other") bank shared
	// by every other mode, index 1 is the FIQ bank.
	bankedFIQ [2][5]uint32

	// SPSR per privileged mode, indexed the same way as bankedSP/bankedLR.
	spsr [7]StatusRegister

	cpsr StatusRegister
}

// bankIndex maps a Mode to its banked-register slot. User and System share
// slot 0 since System mode uses the User register bank (it simply runs
// privileged).
func bankIndex(m Mode) int {
	switch m {
	case User, System:
		return 0
	case FIQ:
		return 1
	case IRQ:
		return 2
	case SVC:
		return 3
	case ABT:
		return 4
	case UND:
		return 5
	default:
		return 6 // unreachable for a valid mode; kept in range defensively
	}
}

// NewFile returns a register file reset with CPSR in Supervisor mode, both
// interrupt sources masked, matching ARM7TDMI reset behaviour.
func NewFile() *File {
	f := &File{cpsr: NewStatusRegister()}
	return f
}

// Get returns the current value of Rn (n in 0..15).
func (f *File) Get(n int) uint32 {
	return f.r[n]
}

// Set writes v to Rn (n in 0..15). Writing R15 does not by itself flush the
// pipeline; that is the caller's responsibility (spec.md §3).
func (f *File) Set(n int, v uint32) {
	f.r[n] = v
}

// PC returns R15.
func (f *File) PC() uint32 { return f.r[15] }

// SetPC writes R15.
func (f *File) SetPC(v uint32) { f.r[15] = v }

// CPSR returns a copy of the current program status register.
func (f *File) CPSR() StatusRegister { return f.cpsr }

// SetCPSRFlags updates only the N/Z/C/V flags, leaving mode/control bits and
// banking untouched.
func (f *File) SetCPSRFlags(n, z, c, v bool) {
	f.cpsr.N, f.cpsr.Z, f.cpsr.C, f.cpsr.V = n, z, c, v
}

// SetCPSR overwrites the whole CPSR, including Mode. Callers that change
// Mode must call SwitchMode first so the outgoing mode's banked registers
// are saved before this overwrites CPSR.Mode; SetCPSR itself does no
// banking.
func (f *File) SetCPSR(sr StatusRegister) {
	f.cpsr = sr
}

// SPSR returns a copy of the SPSR belonging to the current mode. Calling
// this in User or System mode (which have no SPSR) returns the zero value;
// callers must not rely on this happening — it is a programming error to
// read SPSR outside of a privileged, SPSR-bearing mode.
func (f *File) SPSR() StatusRegister {
	return f.spsr[bankIndex(f.cpsr.Mode)]
}

// SetSPSR writes the SPSR belonging to the current mode.
func (f *File) SetSPSR(sr StatusRegister) {
	f.spsr[bankIndex(f.cpsr.Mode)] = sr
}

// SwitchMode banks out the registers belonging to the current mode and
// banks in the registers belonging to to, then updates CPSR.Mode. It does
// not touch the flag or control bits of CPSR other than Mode; callers that
// also need to change I/F/T do so separately.
//
// to must be a valid Mode; spec.md §3 treats an invalid mode as a programming
// error, so SwitchMode panics rather than silently banking into garbage.
func (f *File) SwitchMode(to Mode) {
	if !to.Valid() {
		panic("registers: SwitchMode called with invalid mode")
	}

	from := f.cpsr.Mode
	if from == to {
		return
	}

	fromIdx := bankIndex(from)
	toIdx := bankIndex(to)

	f.bankedSP[fromIdx] = f.r[13]
	f.bankedLR[fromIdx] = f.r[14]
	f.r[13] = f.bankedSP[toIdx]
	f.r[14] = f.bankedLR[toIdx]

	fromFIQ := 0
	if from == FIQ {
		fromFIQ = 1
	}
	toFIQ := 0
	if to == FIQ {
		toFIQ = 1
	}
	if fromFIQ != toFIQ {
		for i := 0; i < 5; i++ {
			f.bankedFIQ[fromFIQ][i] = f.r[8+i]
			f.r[8+i] = f.bankedFIQ[toFIQ][i]
		}
	}

	f.cpsr.Mode = to
}

// RestoreCPSRFromSPSR replaces the entire CPSR with the current mode's SPSR
// (spec.md §4.3: "when S-bit is set and Rd=R15, CPSR is restored from SPSR
// of the current mode"). Because the SPSR's Mode field may name a different
// mode than the one we're restoring from, banking must follow the *new*
// mode named by the restored value.
func (f *File) RestoreCPSRFromSPSR() {
	saved := f.SPSR()
	if saved.Mode.Valid() && saved.Mode != f.cpsr.Mode {
		f.SwitchMode(saved.Mode)
	}
	f.cpsr = saved
}

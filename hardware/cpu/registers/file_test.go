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

package registers_test

import (
	"testing"

	"github.com/pixelscan/gba-core/hardware/cpu/registers"
	"github.com/pixelscan/gba-core/internal/test"
)

func TestBankedStackPointerSurvivesModeSwitch(t *testing.T) {
	f := registers.NewFile()
	f.SwitchMode(registers.SVC)
	f.Set(13, 0x0300_7fa0)

	f.SwitchMode(registers.IRQ)
	f.Set(13, 0x0300_7fb0)
	test.ExpectEquality(t, f.Get(13), uint32(0x0300_7fb0))

	f.SwitchMode(registers.SVC)
	test.ExpectEquality(t, f.Get(13), uint32(0x0300_7fa0))
}

func TestFIQBanksR8ToR12(t *testing.T) {
	f := registers.NewFile()
	f.SwitchMode(registers.User)
	f.Set(8, 0x11111111)

	f.SwitchMode(registers.FIQ)
	f.Set(8, 0x22222222)
	test.ExpectEquality(t, f.Get(8), uint32(0x22222222))

	f.SwitchMode(registers.User)
	test.ExpectEquality(t, f.Get(8), uint32(0x11111111))
}

func TestCPSRRoundTrip(t *testing.T) {
	sr := registers.NewStatusRegister()
	sr.N = true
	sr.C = true
	sr.Mode = registers.IRQ

	var got registers.StatusRegister
	got.FromUint32(sr.ToUint32())

	test.ExpectEquality(t, got.N, true)
	test.ExpectEquality(t, got.Z, false)
	test.ExpectEquality(t, got.C, true)
	test.ExpectEquality(t, got.Mode, registers.IRQ)
}

func TestSPSRBankedPerPrivilegedMode(t *testing.T) {
	f := registers.NewFile()

	f.SwitchMode(registers.SVC)
	var svcSPSR registers.StatusRegister
	svcSPSR.Mode = registers.User
	svcSPSR.Z = true
	f.SetSPSR(svcSPSR)

	f.SwitchMode(registers.IRQ)
	var irqSPSR registers.StatusRegister
	irqSPSR.Mode = registers.User
	irqSPSR.N = true
	f.SetSPSR(irqSPSR)

	test.ExpectEquality(t, f.SPSR().N, true)
	test.ExpectEquality(t, f.SPSR().Z, false)

	f.SwitchMode(registers.SVC)
	test.ExpectEquality(t, f.SPSR().Z, true)
}

func TestRestoreCPSRFromSPSRFollowsModeNamedBySPSR(t *testing.T) {
	f := registers.NewFile()
	f.SwitchMode(registers.SVC)
	f.Set(13, 0xAAAA)

	var spsr registers.StatusRegister
	spsr.Mode = registers.User
	spsr.Z = true
	f.SetSPSR(spsr)

	f.SwitchMode(registers.User)
	f.Set(13, 0xBBBB)
	f.SwitchMode(registers.SVC)

	f.RestoreCPSRFromSPSR()

	test.ExpectEquality(t, f.CPSR().Mode, registers.User)
	test.ExpectEquality(t, f.CPSR().Z, true)
	test.ExpectEquality(t, f.Get(13), uint32(0xBBBB))
}

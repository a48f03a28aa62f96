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

// Package hardware is the base package for the GBA emulation core. Its
// sub-packages contain everything required for headless emulation: the
// ARM7TDMI decode/execute cores (cpu, cpu/arm, cpu/thumb, cpu/registers),
// the memory-mapped address space (bus), and the peripherals attached to
// it (gpu, dma, timer, interrupt, controller).
//
// The gbacore.GBA type at the module root is what wires these sub-packages
// together; this package and its children have no single "machine" type
// of their own, since each sub-package is independently testable against
// the bus.Peripheral interface it implements.
package hardware


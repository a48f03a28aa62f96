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

package bus

import (
	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/curated"
	"github.com/pixelscan/gba-core/internal/logger"
)

// Peripheral is implemented by anything that owns a slice of the I/O
// register window (GPU, DMA, timers, the interrupt controller) and wants
// its reads/writes dispatched through the bus rather than stored in the
// plain backing array. Mirrors the teacher's ChipBus: "checks to see if
// the chip's memory area has been written to" rather than the chip polling
// the bus itself, so every register write's side effect (starting a DMA,
// latching DISPCNT) fires exactly once, per spec.md §5.
type Peripheral interface {
	// OwnsIO reports whether this peripheral owns ioOffset (an offset from
	// 0x0400_0000, always even).
	OwnsIO(ioOffset uint32) bool
	ReadIO16(ioOffset uint32) uint16
	WriteIO16(ioOffset uint32, v uint16)
}

// Bus multiplexes the GBA's address space (spec.md §4.1, §6) behind
// uniform 8/16/32-bit read/write, the way hardware/memory's VCSMemory maps
// CPU addresses to the correct chip without the caller needing to care.
type Bus struct {
	cfg config.Config
	log *logger.Log

	bios    []byte
	ewram   []byte
	iwram   []byte
	palette []byte
	vram    []byte
	oam     []byte
	rom     []byte
	sram    []byte

	// io is the plain backing store for I/O registers no Peripheral has
	// claimed (e.g. WAITCNT): spec.md §6's "16-bit natural"
	// registers that this core doesn't otherwise model.
	io []byte

	peripherals []Peripheral
}

// New returns a Bus with every RAM-backed region zeroed and rom/bios
// loaded from the given images. Either may be nil (treated as empty),
// since cartridge/BIOS loading is out of spec.md §1's scope; callers
// populate them however they see fit.
func New(cfg config.Config, log *logger.Log, bios, rom []byte) *Bus {
	b := &Bus{
		cfg:     cfg,
		log:     log,
		bios:    make([]byte, biosSize),
		ewram:   make([]byte, ewramSize),
		iwram:   make([]byte, iwramSize),
		palette: make([]byte, paletteSize),
		vram:    make([]byte, vramSize),
		oam:     make([]byte, oamSize),
		rom:     make([]byte, 0x0200_0000),
		sram:    make([]byte, sramSize),
		io:      make([]byte, ioSize),
	}
	copy(b.bios, bios)
	copy(b.rom, rom)
	return b
}

// Attach registers p to receive dispatch for whatever I/O offsets
// p.OwnsIO reports true for. Peripherals are tried in registration order;
// the first to claim an offset handles it.
func (b *Bus) Attach(p Peripheral) {
	b.peripherals = append(b.peripherals, p)
}

func (b *Bus) peripheralFor(ioOffset uint32) Peripheral {
	for _, p := range b.peripherals {
		if p.OwnsIO(ioOffset) {
			return p
		}
	}
	return nil
}

func (b *Bus) backing(r Region) []byte {
	switch r {
	case BIOS:
		return b.bios
	case EWRAM:
		return b.ewram
	case IWRAM:
		return b.iwram
	case Palette:
		return b.palette
	case VRAM:
		return b.vram
	case OAM:
		return b.oam
	case ROM:
		return b.rom
	case SRAM:
		return b.sram
	default:
		return nil
	}
}

func (b *Bus) logUnmapped(tag string, addr uint32) {
	if b.cfg.LogBusErrors {
		b.log.Log(logger.Allow, "bus", curated.Errorf(tag, addr))
	}
}

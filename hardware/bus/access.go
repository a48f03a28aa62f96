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
	"encoding/binary"

	"github.com/pixelscan/gba-core/internal/curated"
)

// Read8 reads one byte. Unmapped addresses return 0, per spec.md §7's
// BusError semantics ("non-fatal; returns 0 on read").
func (b *Bus) Read8(addr uint32) uint8 {
	r, off := decode(addr)
	if r == IO {
		return byte(b.read16(off&^1) >> ((off & 1) * 8))
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedRead, addr)
		return 0
	}
	return backing[off]
}

// Read16 reads a halfword. A misaligned address (addr odd) rotates the
// natural-aligned halfword by 8 bits, per spec.md §4.1.
func (b *Bus) Read16(addr uint32) uint16 {
	aligned := addr &^ 1
	v := b.readAligned16(aligned)
	if addr&1 != 0 {
		v = v>>8 | v<<8
	}
	return v
}

func (b *Bus) readAligned16(addr uint32) uint16 {
	r, off := decode(addr)
	if r == IO {
		return b.read16(off)
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedRead, addr)
		return 0
	}
	return binary.LittleEndian.Uint16(backing[off : off+2])
}

// read16 is the I/O-region accessor: dispatch to a registered Peripheral,
// falling back to the plain backing array for registers nothing has
// claimed.
func (b *Bus) read16(ioOffset uint32) uint16 {
	ioOffset &^= 1
	if p := b.peripheralFor(ioOffset); p != nil {
		return p.ReadIO16(ioOffset)
	}
	return binary.LittleEndian.Uint16(b.io[ioOffset : ioOffset+2])
}

// Read32 reads a word. A misaligned address rotates the naturally-aligned
// word by 8×(addr mod 4) bits, the documented ARM7TDMI LDR-from-unaligned
// behavior spec.md §4.1 requires.
func (b *Bus) Read32(addr uint32) uint32 {
	aligned := addr &^ 3
	v := b.readAligned32(aligned)
	shift := (addr % 4) * 8
	if shift != 0 {
		v = v>>shift | v<<(32-shift)
	}
	return v
}

func (b *Bus) readAligned32(addr uint32) uint32 {
	r, off := decode(addr)
	if r == IO {
		lo := b.read16(off)
		hi := b.read16(off + 2)
		return uint32(lo) | uint32(hi)<<16
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedRead, addr)
		return 0
	}
	return binary.LittleEndian.Uint32(backing[off : off+4])
}

// Write8 writes one byte. Writes to unmapped addresses are ignored, per
// spec.md §7. I/O-region byte writes decompose into a read-modify-write
// of the owning halfword so neighboring bytes are never clobbered
// (spec.md §4.1).
func (b *Bus) Write8(addr uint32, v uint8) {
	r, off := decode(addr)
	if r == IO {
		cur := b.read16(off &^ 1)
		if off&1 == 0 {
			cur = cur&0xff00 | uint16(v)
		} else {
			cur = cur&0x00ff | uint16(v)<<8
		}
		b.write16(off&^1, cur)
		return
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedWrite, addr)
		return
	}
	backing[off] = v
}

// Write16 writes a halfword. Misaligned writes are aligned down, matching
// the rotate-on-read convention's implied addressing (no ARM instruction
// issues a misaligned STRH in practice; this just avoids an out-of-bounds
// slice access).
func (b *Bus) Write16(addr uint32, v uint16) {
	r, off := decode(addr &^ 1)
	if r == IO {
		b.write16(off, v)
		return
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedWrite, addr)
		return
	}
	binary.LittleEndian.PutUint16(backing[off:off+2], v)
}

func (b *Bus) write16(ioOffset uint32, v uint16) {
	ioOffset &^= 1
	if p := b.peripheralFor(ioOffset); p != nil {
		p.WriteIO16(ioOffset, v)
		return
	}
	binary.LittleEndian.PutUint16(b.io[ioOffset:ioOffset+2], v)
}

// Write32 writes a word, decomposed into two 16-bit I/O writes per
// spec.md §6 ("8/32-bit access decomposes into one or two 16-bit
// operations") when it lands in the I/O region.
func (b *Bus) Write32(addr uint32, v uint32) {
	r, off := decode(addr &^ 3)
	if r == IO {
		b.write16(off, uint16(v))
		b.write16(off+2, uint16(v>>16))
		return
	}
	backing := b.backing(r)
	if backing == nil {
		b.logUnmapped(curated.UnmappedWrite, addr)
		return
	}
	binary.LittleEndian.PutUint32(backing[off:off+4], v)
}

// Peek and Poke are debugger-only accessors that never log bus errors or
// trigger peripheral side effects on write — Poke stores directly into the
// owning backing array, mirroring the teacher's DebuggerBus split from the
// CPU-visible read/write path.
func (b *Bus) Peek(addr uint32) uint8 {
	r, off := decode(addr)
	backing := b.backing(r)
	if r == IO {
		return byte(binary.LittleEndian.Uint16(b.io[off&^1:off&^1+2]) >> ((off & 1) * 8))
	}
	if backing == nil {
		return 0
	}
	return backing[off]
}

func (b *Bus) Poke(addr uint32, v uint8) {
	r, off := decode(addr)
	if r == IO {
		b.io[off] = v
		return
	}
	backing := b.backing(r)
	if backing == nil {
		return
	}
	backing[off] = v
}

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

package gpu

// Memory-map bases relevant to rendering, relative to the regions the bus
// exposes (spec.md §4.1).
const (
	vramBase    = 0x0600_0000
	paletteBase = 0x0500_0000

	tileBytes8bpp = 64
	tileBytes4bpp = 32
)

// renderScanline fills one row of the framebuffer at g.scanline,
// dispatching on DISPCNT's 3-bit mode field (spec.md §6: "dispatches on
// DISPCNT.mode"). Called once per HDraw->HBlank transition, so each row is
// rendered exactly once per frame.
func (g *GPU) renderScanline() {
	if g.scanline >= Height {
		return
	}
	mode := g.dispcnt & 0x7
	switch mode {
	case 3:
		g.renderBitmap16(g.scanline)
	case 4:
		g.renderBitmap8Indexed(g.scanline, uint32(g.dispcnt>>4)&1)
	case 5:
		g.renderBitmap16Small(g.scanline)
	default:
		// Modes 0 and 2: tiled backgrounds, dispatched further by
		// renderTiledRow. Mode 1 takes the same BG0-BG3 text path as
		// mode 0 (see renderTiledRow).
		g.renderTiledRow(g.scanline)
	}
}

func (g *GPU) row() []Rgb15 {
	return g.framebuffer[g.scanline*Width : (g.scanline+1)*Width]
}

// renderBitmap16 implements mode 3: a direct 240x160 16bpp framebuffer in
// VRAM, one Rgb15 per pixel, no palette indirection.
func (g *GPU) renderBitmap16(line int) {
	row := g.row()
	base := uint32(line * Width * 2)
	for x := 0; x < Width; x++ {
		lo := g.bus.Read16(vramBase + base + uint32(x*2))
		row[x] = Rgb15(lo)
	}
}

// renderBitmap8Indexed implements mode 4: a 240x160 8bpp bitmap read from
// one of two VRAM frames 0xA000 bytes apart (page, DISPCNT bit 4), each
// byte indexing the 256-colour palette.
func (g *GPU) renderBitmap8Indexed(line int, page uint32) {
	row := g.row()
	frameOffset := page * 0xA000
	base := vramBase + frameOffset + uint32(line*Width)
	for x := 0; x < Width; x++ {
		index := g.bus.Read8(base + uint32(x))
		row[x] = g.paletteEntry(0, uint32(index))
	}
}

// renderBitmap16Small implements mode 5: a 160x128 16bpp bitmap, smaller
// than the visible screen; rows and columns beyond its bounds are filled
// with the backdrop colour (palette entry 0).
func (g *GPU) renderBitmap16Small(line int) {
	row := g.row()
	const modeWidth, modeHeight = 160, 128
	if line >= modeHeight {
		backdrop := g.paletteEntry(0, 0)
		for x := range row {
			row[x] = backdrop
		}
		return
	}
	base := uint32(line * modeWidth * 2)
	backdrop := g.paletteEntry(0, 0)
	for x := 0; x < Width; x++ {
		if x >= modeWidth {
			row[x] = backdrop
			continue
		}
		row[x] = Rgb15(g.bus.Read16(vramBase + base + uint32(x*2)))
	}
}

// renderTiledRow implements text-mode tile rendering, compositing
// BG3->BG0 (highest index first, lowest drawn last, per spec.md's
// tile/tilemap/palette description). Mode 2 draws only BG2/BG3; every
// other tiled mode draws BG0-BG3 — mirroring
// original_source/src/core/gpu/mod.rs's `scanline()`, whose BGMode2 arm
// calls the very same text-tile renderer (`scanline_mode0`) on bg 3 then
// bg 2 rather than sampling an affine transform. The original panics on
// mode 1 as genuinely unimplemented; this core instead falls back to the
// same BG0-BG3 text path used for mode 0, trading hardware fidelity for
// never crashing on a value DISPCNT can legally hold.
func (g *GPU) renderTiledRow(line int) {
	row := g.row()
	backdrop := g.paletteEntry(0, 0)
	for x := range row {
		row[x] = backdrop
	}

	mode := g.dispcnt & 0x7
	for bg := 3; bg >= 0; bg-- {
		if mode == 2 && bg < 2 {
			continue // BGMode2 only drives BG2/BG3, per the original
		}
		if g.dispcnt&(1<<(8+bg)) == 0 {
			continue
		}
		g.compositeBackground(bg, line, row)
	}
}

func (g *GPU) compositeBackground(bg, line int, row []Rgb15) {
	cnt := g.bgcnt[bg]
	charBase := uint32((cnt>>2)&0x3) * 0x4000
	screenBase := uint32((cnt>>8)&0x1F) * 0x800
	colorDepth8 := cnt&0x80 != 0

	scrollY := int(g.bgvofs[bg])
	scrollX := int(g.bghofs[bg])
	y := (line + scrollY) & 0xFF
	tileRow := y / 8
	rowInTile := y % 8

	for x := 0; x < Width; x++ {
		sx := (x + scrollX) & 0xFF
		tileCol := sx / 8
		colInTile := sx % 8

		mapEntryAddr := vramBase + screenBase + uint32((tileRow*32+tileCol)*2)
		entry := g.bus.Read16(mapEntryAddr)
		tileIndex := uint32(entry & 0x03FF)
		flipH := entry&0x0400 != 0
		flipV := entry&0x0800 != 0
		entryPalette := uint32((entry >> 12) & 0xF)
		if colorDepth8 {
			entryPalette = 0
		}

		srcCol, srcRow := colInTile, rowInTile
		if flipH {
			srcCol = 7 - srcCol
		}
		if flipV {
			srcRow = 7 - srcRow
		}

		var index uint32
		if colorDepth8 {
			tileAddr := vramBase + charBase + tileIndex*tileBytes8bpp + uint32(srcRow*8+srcCol)
			index = uint32(g.bus.Read8(tileAddr))
			if index == 0 {
				continue
			}
			row[x] = g.paletteEntry(0, index)
		} else {
			tileAddr := vramBase + charBase + tileIndex*tileBytes4bpp + uint32(srcRow*4+srcCol/2)
			b := g.bus.Read8(tileAddr)
			if srcCol%2 == 0 {
				index = uint32(b & 0x0F)
			} else {
				index = uint32(b >> 4)
			}
			if index == 0 {
				continue
			}
			row[x] = g.paletteEntry(entryPalette, index)
		}
	}
}

// paletteEntry reads one 15-bit colour from palette RAM. bank selects a
// 16-colour sub-palette for 4bpp tiles; 8bpp tiles and bitmap modes always
// use bank 0 (the whole 256-colour table).
func (g *GPU) paletteEntry(bank, index uint32) Rgb15 {
	addr := paletteBase + (bank*16+index)*2
	return Rgb15(g.bus.Read16(addr))
}

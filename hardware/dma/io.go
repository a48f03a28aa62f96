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

package dma

// OwnsIO reports whether offset falls within one of the four 12-byte DMA
// register blocks starting at 0x0400_00B0.
func (ctl *Controller) OwnsIO(offset uint32) bool {
	return offset >= baseOffset && offset < baseOffset+channelBytes*channelCount
}

func (ctl *Controller) locate(offset uint32) (c *channel, rel uint32) {
	rel = offset - baseOffset
	i := rel / channelBytes
	return &ctl.channels[i], rel % channelBytes
}

// ReadIO16 returns one halfword of a channel's SAD/DAD/CNT_L/CNT_H
// register quartet.
func (ctl *Controller) ReadIO16(offset uint32) uint16 {
	c, rel := ctl.locate(offset)
	switch rel {
	case 0x0:
		return uint16(c.src)
	case 0x2:
		return uint16(c.src >> 16)
	case 0x4:
		return uint16(c.dst)
	case 0x6:
		return uint16(c.dst >> 16)
	case 0x8:
		return c.wordCount
	case 0xA:
		return c.control
	default:
		return 0
	}
}

// WriteIO16 applies a register write. Writing the control halfword with
// the enable bit newly set latches src/dst/wordCount and arms the channel
// for its configured trigger (spec.md §4.7: "enabled on control write
// with enable=1 -> records start cycle").
func (ctl *Controller) WriteIO16(offset uint32, v uint16) {
	c, rel := ctl.locate(offset)
	switch rel {
	case 0x0:
		c.src = c.src&0xFFFF0000 | uint32(v)
	case 0x2:
		c.src = c.src&0x0000FFFF | uint32(v)<<16
	case 0x4:
		c.dst = c.dst&0xFFFF0000 | uint32(v)
	case 0x6:
		c.dst = c.dst&0x0000FFFF | uint32(v)<<16
	case 0x8:
		c.wordCount = v
	case 0xA:
		wasEnabled := c.enabled()
		c.control = v
		if c.enabled() && !wasEnabled {
			c.armed = true
			c.cyclesSinceArm = 0
			c.savedDst = c.dst
		} else if !c.enabled() {
			c.armed = false
		}
	}
}

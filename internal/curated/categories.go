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

package curated

// Category identifies which of spec.md §7's error kinds a curated error
// belongs to.
type Category int

const (
	// Decode covers undefined condition codes, invalid half-transfer
	// encodings and invalid shift types.
	Decode Category = iota
	// Bus covers access to an unmapped address.
	Bus
	// Illegal covers encodings that are structurally valid but forbidden,
	// such as a register-specified shift whose shift register is R15.
	Illegal
	// Host covers frontend render/input failures.
	Host
	// Uncategorized covers any curated error built from a format string
	// that isn't one of the constants below.
	Uncategorized
)

func (c Category) String() string {
	switch c {
	case Decode:
		return "decode"
	case Bus:
		return "bus"
	case Illegal:
		return "illegal"
	case Host:
		return "host"
	default:
		return "uncategorized"
	}
}

// message constants, grouped by category. Each is a format string suitable
// for Errorf.
const (
	// Decode
	UndefinedCondition    = "undefined condition code 0x%x at 0x%08x"
	InvalidHalfwordEncode = "invalid halfword transfer encoding 0x%x at 0x%08x"
	InvalidShiftType      = "invalid shift type %d at 0x%08x"
	UndefinedInstruction  = "undefined instruction 0x%08x at 0x%08x"

	// Bus
	UnmappedRead  = "read from unmapped address 0x%08x"
	UnmappedWrite = "write to unmapped address 0x%08x"

	// Illegal
	ShiftRegisterIsPC  = "register-specified shift amount read from r15 at 0x%08x"
	InvalidCPUMode     = "cpu mode 0x%x out of range"
	SrcAdjustForbidden = "dma channel %d: source adjustment 3 (increment+reload) is forbidden"

	// Host
	RenderFailed   = "host render failed: %v"
	ReadKeysFailed = "host read_keys failed: %v"
)

// categoryOf maps each message constant above to the Category it belongs
// to, so a caller holding only an error (not the constant it was built
// from) can still ask what kind of failure it was. Built explicitly rather
// than inferred, since nothing about a format string says which category
// it came from.
var categoryOf = map[string]Category{
	UndefinedCondition:    Decode,
	InvalidHalfwordEncode: Decode,
	InvalidShiftType:      Decode,
	UndefinedInstruction:  Decode,

	UnmappedRead:  Bus,
	UnmappedWrite: Bus,

	ShiftRegisterIsPC:  Illegal,
	InvalidCPUMode:     Illegal,
	SrcAdjustForbidden: Illegal,

	RenderFailed:   Host,
	ReadKeysFailed: Host,
}

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

package cpu

// Trace is one retired instruction's record, passed to a Tracer's Step.
// Disassembly formatting is explicitly out of scope (spec.md §1); Trace
// only carries what the core itself knows without decoding Raw into text.
type Trace struct {
	PC    uint32
	Raw   uint32
	Thumb bool
	Cost  uint64
}

// Tracer is the optional instruction-retirement hook SPEC_FULL.md's
// supplement describes: "interface present, feature absent", mirroring
// the teacher's `SetDisassembler`/`CartCoProcDisassembler` seam on its
// ARM7TDMI coprocessor core (`Start`/`Step`/`End` around a run), without
// this core providing a formatting implementation of its own. A caller
// that wants disassembly output implements Tracer itself.
type Tracer interface {
	Start()
	Step(t Trace)
	End(summary string)
}

// SetTracer installs (or, with nil, removes) an instruction-retirement
// tracer, mirroring the teacher's SetDisassembler.
func (c *CPU) SetTracer(t Tracer) {
	if t != nil {
		t.Start()
	}
	c.tracer = t
}

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

// Command gbalut dumps the ARM7TDMI's 4096-entry dispatch table
// (hardware/cpu/arm's spec.md §4.4/§9 "12-bit hash, built once at
// init()" table) as a Graphviz graph of one summary per distinct Format
// (how many hash entries classify to it, plus up to four sample hashes),
// using
// github.com/bradleyjkemp/memviz the way a developer would reach for a
// generic Go-value visualiser rather than hand-rolling DOT output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/pixelscan/gba-core/hardware/cpu/arm"
)

// lutSummary is a plain Go value memviz can walk: one bucket per Format,
// holding the count of hash entries that classify to it and a handful of
// sample hashes, instead of dumping all 4096 raw entries into the graph.
type lutSummary struct {
	Format      string
	EntryCount  int
	SampleHashes []uint32
}

func main() {
	var out string
	flag.StringVar(&out, "o", "", "output .dot file (default: stdout)")
	flag.Parse()

	buckets := map[arm.Format]*lutSummary{}
	var order []arm.Format

	for h := uint32(0); h < uint32(arm.LUTSize); h++ {
		f := arm.FormatAt(h)
		b, ok := buckets[f]
		if !ok {
			b = &lutSummary{Format: f.String()}
			buckets[f] = b
			order = append(order, f)
		}
		b.EntryCount++
		if len(b.SampleHashes) < 4 {
			b.SampleHashes = append(b.SampleHashes, h)
		}
	}

	summaries := make([]*lutSummary, 0, len(order))
	for _, f := range order {
		summaries = append(summaries, buckets[f])
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gbalut: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, &summaries)
}

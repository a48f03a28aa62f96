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

// Command gbacore is a minimal terminal-driven host for the GBA core: it
// loads a BIOS and ROM image, runs frames, and feeds keyboard input back
// in, the role the teacher's gopher2600.go play/debug launch shell fills
// for the VCS core, trimmed to a single execution mode since this core
// has no debugger or GUI surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pixelscan/gba-core"
	"github.com/pixelscan/gba-core/internal/config"
	"github.com/pixelscan/gba-core/internal/logger"
	"github.com/pixelscan/gba-core/internal/monitor"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gbacore: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Default()

	flgs := flag.NewFlagSet("gbacore", flag.ExitOnError)
	cfg.BindFlags(flgs)
	var biosPath string
	var frames int
	flgs.StringVar(&biosPath, "bios", "", "path to GBA BIOS image")
	flgs.IntVar(&frames, "frames", 0, "number of frames to run before exiting (0: run until interrupted)")
	if err := flgs.Parse(args); err != nil {
		return err
	}
	if flgs.NArg() != 1 {
		return fmt.Errorf("usage: gbacore [flags] <rom-file>")
	}
	romPath := flgs.Arg(0)

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	var bios []byte
	if biosPath != "" {
		bios, err = os.ReadFile(biosPath)
		if err != nil {
			return fmt.Errorf("reading BIOS: %w", err)
		}
	}

	log := logger.NewLogger(1024)
	machine := gbacore.New(cfg, log, bios, rom)

	if cfg.Instrumentation {
		mon := monitor.New(cfg.InstrumentationAddr)
		mon.Start()
		defer mon.Stop()
	}

	kb, err := newKeyboard()
	if err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer kb.Restore()

	frameCount := 0
	for frames == 0 || frameCount < frames {
		machine.Keypad.SetState(kb.Poll())
		machine.Frame()
		frameCount++
	}

	return nil
}

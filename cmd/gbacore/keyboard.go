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

package main

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/pixelscan/gba-core/hardware/controller"
)

// keyboard is this binary's read_keys() host backend (spec.md §6): a
// stdin reader put into cbreak mode so individual keystrokes arrive
// without waiting for Enter, grounded on the teacher's
// debugger/terminal/colorterm/easyterm.EasyTerm's Tcgetattr/Cfmakecbreak/
// Tcsetattr sequence, trimmed to the one mode this host actually needs.
type keyboard struct {
	canonical unix.Termios
	cbreak    unix.Termios
}

func newKeyboard() (*keyboard, error) {
	kb := &keyboard{}
	if err := termios.Tcgetattr(os.Stdin.Fd(), &kb.canonical); err != nil {
		return nil, err
	}
	kb.cbreak = kb.canonical
	termios.Cfmakecbreak(&kb.cbreak)
	kb.cbreak.Cc[unix.VMIN] = 0 // read returns at once when no key is waiting
	kb.cbreak.Cc[unix.VTIME] = 0
	if err := termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &kb.cbreak); err != nil {
		return nil, err
	}
	return kb, nil
}

// Restore puts the terminal back into canonical mode; call before exit.
func (kb *keyboard) Restore() {
	_ = termios.Tcsetattr(os.Stdin.Fd(), termios.TCIFLUSH, &kb.canonical)
}

var keymap = map[byte]controller.Button{
	'z':    controller.B,
	'x':    controller.A,
	'q':    controller.L,
	'e':    controller.R,
	'\r':   controller.Start,
	' ':    controller.Select,
	'w':    controller.Up,
	's':    controller.Down,
	'a':    controller.Left,
	'd':    controller.Right,
}

// Poll does a non-blocking read of whatever bytes are waiting on stdin
// and returns the held-button bitmask those keystrokes imply. Each call
// reflects the most recent byte of each mapped key seen since the last
// Poll; this core does not model individual key-up events, so a key
// reads as "held" for one frame only (the frame during which it was
// typed), matching the tap-to-press feel of a terminal-only host.
func (kb *keyboard) Poll() controller.Button {
	buf := make([]byte, 64)
	n, err := os.Stdin.Read(buf)
	if err != nil || n == 0 {
		return 0
	}
	var held controller.Button
	for _, b := range buf[:n] {
		held |= keymap[b]
	}
	return held
}

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

// Package logger implements a small capacity-bounded, in-memory log used by
// the bus and dma packages in this module to record non-fatal guest-visible
// conditions: unmapped bus access and a DMA channel's forbidden source
// adjustment mode. It deliberately does not reach for a
// structured third-party logging library — entries are tag + one-line
// detail, and the whole point is a ring buffer cheap enough to leave enabled
// during normal execution.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission controls whether a particular Log call is actually recorded.
// Callers pass Allow when there's no reason to suppress the entry; packages
// that want to rate-limit or silence noisy sources implement their own
// Permission.
type Permission interface {
	AllowLogging() bool
}

type allowAll struct{}

func (allowAll) AllowLogging() bool { return true }

// Allow is the Permission value used when every call should be logged.
var Allow Permission = allowAll{}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// Log is a fixed-capacity ring buffer of log entries. The zero value is not
// usable; construct with NewLogger.
type Log struct {
	mu       sync.Mutex
	capacity int
	entries  []entry
}

// NewLogger creates a Log that retains at most capacity entries, discarding
// the oldest entry once capacity is exceeded.
func NewLogger(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{
		capacity: capacity,
		entries:  make([]entry, 0, capacity),
	}
}

func formatDetail(detail any) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Log records tag/detail if permission allows it. detail is formatted
// specially for errors and fmt.Stringer implementations; anything else is
// formatted with the %v verb.
func (l *Log) Log(permission Permission, tag string, detail any) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, formatDetail(detail))
}

// Logf is Log with a format string and arguments for the detail, in the
// style of fmt.Sprintf.
func (l *Log) Logf(permission Permission, tag string, format string, args ...any) {
	if !permission.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(format, args...))
}

func (l *Log) append(tag string, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == l.capacity {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, entry{tag: tag, detail: detail})
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write writes every retained entry, oldest first, to w.
func (l *Log) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
	}
	io.WriteString(w, b.String())
}

// Tail writes at most the last n entries, oldest first, to w. n larger than
// the number of retained entries is fine; all entries are written.
func (l *Log) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return
	}
	start := 0
	if n < len(l.entries) {
		start = len(l.entries) - n
	}

	var b strings.Builder
	for _, e := range l.entries[start:] {
		b.WriteString(e.String())
	}
	io.WriteString(w, b.String())
}

// central is the package-level default logger shared by callers that don't
// need an isolated instance.
var central = NewLogger(1000)

// LogDefault records a tag/detail pair on the package-level default logger.
func LogDefault(tag string, detail any) {
	central.Log(Allow, tag, detail)
}

// Write writes the package-level default logger's contents to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail writes the last n entries of the package-level default logger to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the package-level default logger.
func Clear() {
	central.Clear()
}

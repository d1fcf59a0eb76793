//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"errors"
	"strings"
	"time"

	scrip "github.com/scripdev/scrip/pkg/types"
)

// fakeTerminal is an in-memory Terminal for tests. Events are served
// from a queue; an empty queue behaves like a poll timeout.
type fakeTerminal struct {
	size    scrip.Size
	anchor  scrip.Point
	cells   map[scrip.Point]rune
	colors  map[scrip.Point]scrip.Color
	cursor  scrip.Point
	hidden  bool
	events  []scrip.Event
	flushes int
	readErr error
}

func newFakeTerminal(rows, cols int, anchor scrip.Point) *fakeTerminal {
	return &fakeTerminal{
		size:   scrip.Size{Rows: rows, Cols: cols},
		anchor: anchor,
		cells:  make(map[scrip.Point]rune),
		colors: make(map[scrip.Point]scrip.Color),
	}
}

func (t *fakeTerminal) Size() scrip.Size    { return t.size }
func (t *fakeTerminal) Anchor() scrip.Point { return t.anchor }

func (t *fakeTerminal) SetCell(col, row int, c rune, color scrip.Color) {
	p := scrip.Point{Row: row, Col: col}
	t.cells[p] = c
	t.colors[p] = color
}

func (t *fakeTerminal) SetCursor(p scrip.Point) {
	t.cursor = p
	t.hidden = false
}

func (t *fakeTerminal) HideCursor() { t.hidden = true }

func (t *fakeTerminal) Flush() error {
	t.flushes++
	return nil
}

func (t *fakeTerminal) NextEvent(timeout time.Duration) (*scrip.Event, error) {
	if t.readErr != nil {
		return nil, t.readErr
	}
	if len(t.events) == 0 {
		return nil, nil
	}
	event := t.events[0]
	t.events = t.events[1:]
	return &event, nil
}

// rowText reads back what was painted on one terminal row, trailing
// blanks trimmed.
func (t *fakeTerminal) rowText(row int) string {
	var b strings.Builder
	for col := 0; col < t.size.Cols; col++ {
		c, ok := t.cells[scrip.Point{Row: row, Col: col}]
		if !ok {
			c = ' '
		}
		b.WriteRune(c)
	}
	return strings.TrimRight(b.String(), " ")
}

func keyEvent(k scrip.Key) scrip.Event {
	return scrip.Event{Type: scrip.EventKey, Key: k}
}

func charEvent(c rune) scrip.Event {
	return scrip.Event{Type: scrip.EventKey, Ch: c}
}

func typed(text string) []scrip.Event {
	events := make([]scrip.Event, 0, len(text))
	for _, c := range text {
		if c == '\n' {
			events = append(events, keyEvent(scrip.KeyEnter))
		} else if c == ' ' {
			events = append(events, keyEvent(scrip.KeySpace))
		} else {
			events = append(events, charEvent(c))
		}
	}
	return events
}

var errBrokenTerminal = errors.New("broken terminal")

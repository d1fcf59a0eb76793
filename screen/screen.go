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

// Package screen provides the termbox-backed terminal used by the
// scrip editor. termbox only offers a blocking PollEvent, so a pump
// goroutine feeds a bounded channel and NextEvent waits on it with a
// timeout; the editing loop itself stays single-threaded.
package screen

import (
	"time"

	"github.com/nsf/termbox-go"

	scrip "github.com/scripdev/scrip/pkg/types"
)

type Screen struct {
	events chan scrip.Event
	done   chan struct{}
}

// NewScreen opens the terminal in raw mode with 256-color output and
// Alt-modifier detection, and starts the event pump.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{
		events: make(chan scrip.Event, 16),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

// Close restores the terminal. Interrupt unblocks the pump's
// outstanding PollEvent so it can exit before termbox shuts down.
func (s *Screen) Close() {
	close(s.done)
	termbox.Interrupt()
	termbox.Close()
}

func (s *Screen) pump() {
	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- translate(event):
		case <-s.done:
			return
		}
	}
}

func (s *Screen) NextEvent(timeout time.Duration) (*scrip.Event, error) {
	select {
	case event := <-s.events:
		if event.Type == scrip.EventError {
			return nil, event.Err
		}
		return &event, nil
	case <-time.After(timeout):
		return nil, nil
	}
}

func (s *Screen) Size() scrip.Size {
	cols, rows := termbox.Size()
	return scrip.Size{Rows: rows, Cols: cols}
}

// The editor owns the whole termbox screen, so its first row is the
// terminal origin.
func (s *Screen) Anchor() scrip.Point {
	return scrip.Point{Row: 0, Col: 0}
}

func (s *Screen) SetCell(col, row int, c rune, color scrip.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(color), termbox.ColorDefault)
}

func (s *Screen) SetCursor(p scrip.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) HideCursor() {
	termbox.HideCursor()
}

func (s *Screen) Flush() error {
	return termbox.Flush()
}

func translate(event termbox.Event) scrip.Event {
	switch event.Type {
	case termbox.EventResize:
		return scrip.Event{
			Type: scrip.EventResize,
			Size: scrip.Size{Rows: event.Height, Cols: event.Width},
		}
	case termbox.EventError:
		return scrip.Event{Type: scrip.EventError, Err: event.Err}
	case termbox.EventKey:
		e := scrip.Event{Type: scrip.EventKey, Key: key(event.Key), Ch: event.Ch}
		if event.Mod&termbox.ModAlt != 0 {
			e.Modifier |= scrip.ModAlt
		}
		return e
	default:
		return scrip.Event{Type: scrip.EventInterrupt}
	}
}

func key(k termbox.Key) scrip.Key {
	switch k {
	case termbox.KeyArrowUp:
		return scrip.KeyArrowUp
	case termbox.KeyArrowDown:
		return scrip.KeyArrowDown
	case termbox.KeyArrowLeft:
		return scrip.KeyArrowLeft
	case termbox.KeyArrowRight:
		return scrip.KeyArrowRight
	case termbox.KeyHome:
		return scrip.KeyHome
	case termbox.KeyEnd:
		return scrip.KeyEnd
	case termbox.KeyPgup:
		return scrip.KeyPgup
	case termbox.KeyPgdn:
		return scrip.KeyPgdn
	case termbox.KeyBackspace:
		return scrip.KeyBackspace
	case termbox.KeyBackspace2:
		return scrip.KeyBackspace2
	case termbox.KeyDelete:
		return scrip.KeyDelete
	case termbox.KeyEnter:
		return scrip.KeyEnter
	case termbox.KeyTab:
		return scrip.KeyTab
	case termbox.KeySpace:
		return scrip.KeySpace
	case termbox.KeyEsc:
		return scrip.KeyEsc
	case termbox.KeyCtrlQ:
		return scrip.KeyCtrlQ
	case termbox.KeyCtrlR:
		return scrip.KeyCtrlR
	case termbox.KeyCtrlS:
		return scrip.KeyCtrlS
	default:
		return scrip.KeyUnsupported
	}
}

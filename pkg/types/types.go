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

// Package types holds the value types and interfaces shared between the
// scrip editor core and its terminal backends.
package types

import (
	"errors"
	"fmt"
	"time"
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Color indexes the terminal's 256-color palette.
type Color uint16

const (
	ColorDefault Color = 0xff
	ColorWhite   Color = 0x08
	ColorKeyword Color = 0x70
	ColorString  Color = 0xe0
	ColorComment Color = 0xf8
	ColorNumber  Color = 0x83
	ColorSymbol  Color = 0x71
)

// Event types
const (
	EventKey = iota
	EventResize
	EventInterrupt
	EventError
)

// Keys are reported independently of any terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyBackspace
	KeyBackspace2
	KeyDelete
	KeyEnter
	KeyTab
	KeySpace
	KeyEsc
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyUnsupported
)

// Modifier flags
const (
	ModAlt = 1 << iota
)

// An Event is one input observation from a Terminal. For key events
// either Key or Ch is set, never both; Ch carries printable runes.
type Event struct {
	Type     int
	Key      Key
	Ch       rune
	Modifier int
	Size     Size // valid for EventResize
	Err      error
}

// Command kinds
const (
	NoOp = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Home
	End
	PageUp
	PageDown
	Backspace
	Delete
	NewLine
	InsertTab
	InsertChar
	SubmitRun
	SubmitSave
	SubmitQuit
)

// A Command is a routed, intent-level action derived from a key event.
// Ch is set only for InsertChar.
type Command struct {
	Kind int
	Ch   rune
}

// Session outcomes
const (
	OutcomeRun = iota
	OutcomeSave
	OutcomeQuit
)

// An EditResult is what an editing session hands back to the launcher.
// Text is meaningful only when Outcome is OutcomeRun or OutcomeSave;
// OutcomeSave means save-then-run.
type EditResult struct {
	Outcome int
	Text    string
}

// ErrTerminalIO marks a failure of the underlying terminal transport.
// It is fatal to the session that observes it.
var ErrTerminalIO = errors.New("terminal i/o failure")

// An OutOfRangeError reports a document position that violates the
// cursor invariants. It is used as a panic value: callers are required
// to clamp before calling into the document, so seeing one is a bug.
type OutOfRangeError struct {
	Op  string
	Pos Point
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: position %d,%d out of range", e.Op, e.Pos.Row, e.Pos.Col)
}

// A Terminal is the raw input/output surface the editor draws on.
// screen.Screen implements it over termbox; tests use an in-memory fake.
type Terminal interface {
	// Size returns the current terminal dimensions.
	Size() Size
	// Anchor returns the terminal position of the editor's first row,
	// fixed for the lifetime of the session.
	Anchor() Point
	// SetCell stages one cell at an absolute terminal position.
	SetCell(col, row int, c rune, color Color)
	// SetCursor stages the terminal cursor at an absolute position.
	SetCursor(p Point)
	// HideCursor stages the cursor invisible until the next SetCursor.
	HideCursor()
	// Flush makes all staged changes visible.
	Flush() error
	// NextEvent waits up to timeout for an input event and returns
	// nil when none arrived in time.
	NextEvent(timeout time.Duration) (*Event, error)
}

// A Highlighter assigns a color to every character of a document.
// Implementations must preserve line structure exactly; the renderer
// falls back to ColorDefault when no highlighter is present.
type Highlighter interface {
	Highlight(lines [][]rune) [][]Color
}

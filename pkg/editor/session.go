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
	"context"
	"fmt"
	"time"

	scrip "github.com/scripdev/scrip/pkg/types"
)

// How long one wait for input may block before cancellation is
// rechecked. Bounds worst-case interrupt latency.
const pollInterval = 50 * time.Millisecond

const tabStop = 8

// A Session owns one document, one cursor, and one viewport for a
// single editing pass. It consumes commands until a submit command
// ends the loop. Sessions are single-threaded; only the wait for the
// next key ever blocks.
type Session struct {
	doc      *Document
	cursor   Cursor
	view     Viewport
	keymap   *Keymap
	renderer *Renderer
	term     scrip.Terminal
}

// NewSession seeds the editor with initial text. The cursor starts at
// the end of prior content, or at the origin for an empty document.
// The highlighter may be nil.
func NewSession(initial string, canPersist bool, term scrip.Terminal, highlighter scrip.Highlighter) *Session {
	s := &Session{
		doc:      NewDocument(initial),
		keymap:   NewKeymap(canPersist),
		renderer: NewRenderer(term, highlighter),
		term:     term,
	}
	if initial != "" {
		s.cursor.Row = s.doc.RowCount() - 1
		s.cursor.Col = s.doc.RowLength(s.cursor.Row)
	}
	s.view = Viewport{Start: 0, Height: s.visibleRows()}
	s.view = s.view.ScrollToInclude(s.cursor.Row)
	return s
}

// rows available between the anchor and the bottom of the terminal
func (s *Session) visibleRows() int {
	rows := s.term.Size().Rows - s.term.Anchor().Row
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Run is the editing loop. It returns when a submit command is routed,
// when ctx is canceled (a normal quit, not an error), or when the
// terminal fails (fatal, wrapped in ErrTerminalIO). The painted region
// is cleared before returning either way.
func (s *Session) Run(ctx context.Context) (scrip.EditResult, error) {
	quit := scrip.EditResult{Outcome: scrip.OutcomeQuit}

	if err := s.renderer.Draw(s.doc, s.cursor, s.view); err != nil {
		return quit, fmt.Errorf("%w: %v", scrip.ErrTerminalIO, err)
	}
	for {
		// cancellation is only observed here, between commands, so a
		// command application is never torn
		select {
		case <-ctx.Done():
			s.renderer.Clear()
			return quit, nil
		default:
		}

		event, err := s.term.NextEvent(pollInterval)
		if err != nil {
			s.renderer.Clear()
			return quit, fmt.Errorf("%w: %v", scrip.ErrTerminalIO, err)
		}
		if event == nil { // poll timeout
			continue
		}

		switch event.Type {
		case scrip.EventResize:
			s.view.Height = s.visibleRows()
			s.view = s.view.ScrollToInclude(s.cursor.Row)
		case scrip.EventInterrupt:
			s.renderer.Clear()
			return quit, nil
		case scrip.EventError:
			s.renderer.Clear()
			return quit, fmt.Errorf("%w: %v", scrip.ErrTerminalIO, event.Err)
		case scrip.EventKey:
			cmd := s.keymap.Route(event)
			if done, result := s.apply(cmd); done {
				if err := s.renderer.Clear(); err != nil {
					return quit, fmt.Errorf("%w: %v", scrip.ErrTerminalIO, err)
				}
				return result, nil
			}
		}

		if err := s.renderer.Draw(s.doc, s.cursor, s.view); err != nil {
			return quit, fmt.Errorf("%w: %v", scrip.ErrTerminalIO, err)
		}
	}
}

// apply performs one command against the document, cursor, and
// viewport, keeping all three consistent. Submit commands report done
// with the session's result.
func (s *Session) apply(cmd scrip.Command) (bool, scrip.EditResult) {
	switch cmd.Kind {
	case scrip.NoOp:
		return false, scrip.EditResult{}
	case scrip.MoveLeft:
		s.cursor = s.cursor.Left(s.doc)
	case scrip.MoveRight:
		s.cursor = s.cursor.Right(s.doc)
	case scrip.MoveUp:
		s.cursor = s.cursor.Up(s.doc)
	case scrip.MoveDown:
		s.cursor = s.cursor.Down(s.doc)
	case scrip.Home:
		s.cursor = s.cursor.Home(s.doc)
	case scrip.End:
		s.cursor = s.cursor.End(s.doc)
	case scrip.PageUp:
		s.cursor = s.cursor.PageUp(s.doc, s.view.Height)
		s.view = s.view.Page(-s.view.Height)
	case scrip.PageDown:
		s.cursor = s.cursor.PageDown(s.doc, s.view.Height)
		s.view = s.view.Page(s.view.Height)
	case scrip.Backspace:
		if s.doc.DeleteCharBefore(s.cursor.Row, s.cursor.Col) {
			s.cursor.Col--
		}
	case scrip.Delete:
		s.doc.DeleteCharAt(s.cursor.Row, s.cursor.Col)
	case scrip.NewLine:
		s.doc.SplitRow(s.cursor.Row, s.cursor.Col)
		s.cursor.Row++
		s.cursor.Col = 0
	case scrip.InsertTab:
		// spaces to the next tab stop
		for {
			s.doc.InsertChar(s.cursor.Row, s.cursor.Col, ' ')
			s.cursor.Col++
			if s.cursor.Col%tabStop == 0 {
				break
			}
		}
	case scrip.InsertChar:
		s.doc.InsertChar(s.cursor.Row, s.cursor.Col, cmd.Ch)
		s.cursor.Col++
	case scrip.SubmitRun:
		return true, scrip.EditResult{Outcome: scrip.OutcomeRun, Text: s.doc.Text()}
	case scrip.SubmitSave:
		return true, scrip.EditResult{Outcome: scrip.OutcomeSave, Text: s.doc.Text()}
	case scrip.SubmitQuit:
		return true, scrip.EditResult{Outcome: scrip.OutcomeQuit}
	}
	s.view = s.view.ScrollToInclude(s.cursor.Row)
	return false, scrip.EditResult{}
}

// Run opens an edit session on the terminal and blocks until the user
// submits or ctx is canceled. This is the single entry point the
// launcher uses.
func Run(ctx context.Context, initial string, canPersist bool, term scrip.Terminal, highlighter scrip.Highlighter) (scrip.EditResult, error) {
	return NewSession(initial, canPersist, term, highlighter).Run(ctx)
}

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
	"github.com/mattn/go-runewidth"

	scrip "github.com/scripdev/scrip/pkg/types"
)

// A Renderer paints the visible slice of a document at a fixed anchor
// position, leaving the rest of the terminal alone. The cursor is
// hidden while rows are rewritten and restored afterward.
type Renderer struct {
	term        scrip.Terminal
	anchor      scrip.Point
	highlighter scrip.Highlighter
	painted     int // deepest row count painted so far, for exit cleanup
}

// NewRenderer captures the terminal's anchor once; the highlighter may
// be nil, in which case everything is drawn in the default color.
func NewRenderer(term scrip.Terminal, highlighter scrip.Highlighter) *Renderer {
	return &Renderer{
		term:        term,
		anchor:      term.Anchor(),
		highlighter: highlighter,
	}
}

func (r *Renderer) width() int {
	cols := r.term.Size().Cols - r.anchor.Col
	if cols < 0 {
		cols = 0
	}
	return cols
}

func (r *Renderer) eraseRow(row, width int) {
	for x := 0; x < width; x++ {
		r.term.SetCell(r.anchor.Col+x, row, ' ', scrip.ColorDefault)
	}
}

// Draw repaints every visible row and places the terminal cursor under
// the logical cursor. Rows longer than the terminal are truncated; no
// horizontal scrolling.
func (r *Renderer) Draw(d *Document, cursor Cursor, view Viewport) error {
	width := r.width()
	r.term.HideCursor()

	var colors [][]scrip.Color
	if r.highlighter != nil {
		lines := make([][]rune, d.RowCount())
		for i := 0; i < d.RowCount(); i++ {
			lines[i] = d.Row(i).Text
		}
		colors = r.highlighter.Highlight(lines)
	}

	for i := 0; i < view.Height; i++ {
		row := view.Start + i
		y := r.anchor.Row + i
		r.eraseRow(y, width)
		if row >= d.RowCount() {
			continue
		}
		x := 0
		for j, c := range d.Row(row).Text {
			w := runewidth.RuneWidth(c)
			if x+w > width {
				break
			}
			color := scrip.ColorDefault
			if colors != nil && row < len(colors) && j < len(colors[row]) {
				color = colors[row][j]
			}
			r.term.SetCell(r.anchor.Col+x, y, c, color)
			x += w
		}
	}
	if view.Height > r.painted {
		r.painted = view.Height
	}

	r.term.SetCursor(scrip.Point{
		Row: r.anchor.Row + cursor.Row - view.Start,
		Col: r.anchor.Col + runewidth.StringWidth(string(d.Row(cursor.Row).Text[0:cursor.Col])),
	})
	return r.term.Flush()
}

// Clear erases every row the renderer ever painted, scanning upward
// from the last one, and parks the cursor back on the anchor. Called
// once when the session ends so the editor leaves no residue.
func (r *Renderer) Clear() error {
	width := r.width()
	for i := r.painted - 1; i >= 0; i-- {
		r.eraseRow(r.anchor.Row+i, width)
	}
	r.term.SetCursor(r.anchor)
	return r.term.Flush()
}

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
	"strings"

	scrip "github.com/scripdev/scrip/pkg/types"
)

// A Row is one line of script text.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) InsertChar(col int, c rune) {
	line := make([]rune, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}

// splits row at col, returning a new row containing the remaining text
func (r *Row) Split(col int) *Row {
	after := string(r.Text[col:])
	r.Text = r.Text[0:col]
	return NewRow(after)
}

// A Document is the in-memory script being edited: an ordered list of
// rows, never empty, with line breaks existing only between rows.
// The document performs no clamping of its own; positions that violate
// the cursor invariants panic with an OutOfRangeError.
type Document struct {
	rows []*Row
}

// NewDocument builds a document from initial text. Empty text yields a
// single empty row.
func NewDocument(text string) *Document {
	lines := strings.Split(text, "\n")
	rows := make([]*Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, NewRow(line))
	}
	return &Document{rows: rows}
}

func (d *Document) RowCount() int {
	return len(d.rows)
}

func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		panic(&scrip.OutOfRangeError{Op: "Row", Pos: scrip.Point{Row: i}})
	}
	return d.rows[i]
}

func (d *Document) RowLength(i int) int {
	return d.Row(i).Length()
}

// Text joins the rows with newlines.
func (d *Document) Text() string {
	var b strings.Builder
	for i, row := range d.rows {
		if i > 0 {
			b.WriteRune('\n')
		}
		b.WriteString(string(row.Text))
	}
	return b.String()
}

// Positions must already satisfy the cursor invariants; col may equal
// the row length, meaning "after the last character".
func (d *Document) check(op string, row, col int) {
	if row < 0 || row >= len(d.rows) || col < 0 || col > d.rows[row].Length() {
		panic(&scrip.OutOfRangeError{Op: op, Pos: scrip.Point{Row: row, Col: col}})
	}
}

// InsertChar inserts c before the character at col.
func (d *Document) InsertChar(row, col int, c rune) {
	d.check("InsertChar", row, col)
	d.rows[row].InsertChar(col, c)
}

// DeleteCharBefore removes the character left of col and reports
// whether anything was removed. At col 0 the row is left alone; rows
// are never merged.
func (d *Document) DeleteCharBefore(row, col int) bool {
	d.check("DeleteCharBefore", row, col)
	if col == 0 {
		return false
	}
	d.rows[row].DeleteChar(col - 1)
	return true
}

// DeleteCharAt removes the character at col and reports whether
// anything was removed. Past the last character the row is left alone;
// rows are never merged.
func (d *Document) DeleteCharAt(row, col int) bool {
	d.check("DeleteCharAt", row, col)
	if col >= d.rows[row].Length() {
		return false
	}
	d.rows[row].DeleteChar(col)
	return true
}

// SplitRow breaks a row at col, inserting the text after col as a new
// row below it.
func (d *Document) SplitRow(row, col int) {
	d.check("SplitRow", row, col)
	after := d.rows[row].Split(col)
	rows := make([]*Row, 0, len(d.rows)+1)
	rows = append(rows, d.rows[0:row+1]...)
	rows = append(rows, after)
	rows = append(rows, d.rows[row+1:]...)
	d.rows = rows
}

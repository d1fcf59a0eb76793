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
	scrip "github.com/scripdev/scrip/pkg/types"
)

// A Cursor is the insertion point. Col may equal the row length,
// meaning "after the last character". Every move returns a position
// already clamped against the document; moves never cross row
// boundaries horizontally, and vertical moves reclamp the column
// against the destination row each time.
type Cursor struct {
	scrip.Point
}

// Clamp forces the cursor back inside the document. It must be applied
// after any document mutation that could shorten or remove the
// cursor's row.
func (c Cursor) Clamp(d *Document) Cursor {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > d.RowCount()-1 {
		c.Row = d.RowCount() - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col > d.RowLength(c.Row) {
		c.Col = d.RowLength(c.Row)
	}
	return c
}

func (c Cursor) Left(d *Document) Cursor {
	if c.Col > 0 {
		c.Col--
	}
	return c
}

func (c Cursor) Right(d *Document) Cursor {
	if c.Col < d.RowLength(c.Row) {
		c.Col++
	}
	return c
}

func (c Cursor) Up(d *Document) Cursor {
	if c.Row > 0 {
		c.Row--
	}
	return c.Clamp(d)
}

func (c Cursor) Down(d *Document) Cursor {
	if c.Row < d.RowCount()-1 {
		c.Row++
	}
	return c.Clamp(d)
}

func (c Cursor) Home(d *Document) Cursor {
	c.Col = 0
	return c
}

func (c Cursor) End(d *Document) Cursor {
	c.Col = d.RowLength(c.Row)
	return c
}

func (c Cursor) PageUp(d *Document, page int) Cursor {
	c.Row -= page
	return c.Clamp(d)
}

func (c Cursor) PageDown(d *Document, page int) Cursor {
	c.Row += page
	return c.Clamp(d)
}

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
	"testing"

	scrip "github.com/scripdev/scrip/pkg/types"
)

func at(row, col int) Cursor {
	return Cursor{Point: scrip.Point{Row: row, Col: col}}
}

func TestCursorHorizontalNeverWraps(t *testing.T) {
	d := NewDocument("ab\nc")
	if c := at(1, 0).Left(d); c.Row != 1 || c.Col != 0 {
		t.Errorf("left at column 0 moved to %d,%d", c.Row, c.Col)
	}
	if c := at(0, 2).Right(d); c.Row != 0 || c.Col != 2 {
		t.Errorf("right at end of row moved to %d,%d", c.Row, c.Col)
	}
}

func TestCursorVerticalReclampsColumn(t *testing.T) {
	// moving down from "ab" column 2 lands on "c" column 1
	d := NewDocument("ab\nc")
	c := at(0, 2).Down(d)
	if c.Row != 1 || c.Col != 1 {
		t.Errorf("expected 1,1, got %d,%d", c.Row, c.Col)
	}
	// and coming back up does not remember the old column
	c = c.Up(d)
	if c.Row != 0 || c.Col != 1 {
		t.Errorf("expected 0,1, got %d,%d", c.Row, c.Col)
	}
}

func TestCursorHomeEnd(t *testing.T) {
	d := NewDocument("hello")
	if c := at(0, 3).Home(d); c.Col != 0 {
		t.Errorf("home moved to column %d", c.Col)
	}
	if c := at(0, 0).End(d); c.Col != 5 {
		t.Errorf("end moved to column %d", c.Col)
	}
}

func TestCursorPageMovesClamp(t *testing.T) {
	d := NewDocument("a\nb\nc")
	if c := at(0, 0).PageDown(d, 10); c.Row != 2 {
		t.Errorf("page down moved to row %d", c.Row)
	}
	if c := at(2, 0).PageUp(d, 10); c.Row != 0 {
		t.Errorf("page up moved to row %d", c.Row)
	}
}

func TestCursorClampAfterMutation(t *testing.T) {
	d := NewDocument("abcdef")
	c := at(0, 6)
	d.DeleteCharBefore(0, 6)
	d.DeleteCharBefore(0, 5)
	c = c.Clamp(d)
	if c.Col != 4 {
		t.Errorf("expected column 4, got %d", c.Col)
	}
}

func TestViewportScrollToInclude(t *testing.T) {
	v := Viewport{Start: 0, Height: 10}
	if v = v.ScrollToInclude(5); v.Start != 0 {
		t.Errorf("needless scroll to %d", v.Start)
	}
	// scenario: row 25 with height 10 scrolls the window to 16
	if v = v.ScrollToInclude(25); v.Start != 16 {
		t.Errorf("expected start 16, got %d", v.Start)
	}
	if v = v.ScrollToInclude(3); v.Start != 3 {
		t.Errorf("expected start 3, got %d", v.Start)
	}
}

func TestViewportPage(t *testing.T) {
	v := Viewport{Start: 5, Height: 10}
	if v = v.Page(-10); v.Start != 0 {
		t.Errorf("expected start 0, got %d", v.Start)
	}
	if v = v.Page(10); v.Start != 10 {
		t.Errorf("expected start 10, got %d", v.Start)
	}
}

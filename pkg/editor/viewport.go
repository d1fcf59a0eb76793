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

// A Viewport maps a window of document rows onto terminal rows. Start
// is the first visible document row; Height is the number of terminal
// rows available. Trailing blank rows past the end of the document are
// fine; Start never goes negative.
type Viewport struct {
	Start  int
	Height int
}

// ScrollToInclude recomputes Start so the cursor's row is visible,
// moving it as little as possible to avoid scroll jitter.
func (v Viewport) ScrollToInclude(cursorRow int) Viewport {
	if cursorRow < v.Start {
		v.Start = cursorRow
	}
	if cursorRow >= v.Start+v.Height {
		v.Start = cursorRow - v.Height + 1
	}
	if v.Start < 0 {
		v.Start = 0
	}
	return v
}

// Page shifts the window a full page in either direction; the caller
// moves the cursor by the same amount and then ScrollToInclude keeps
// the pair consistent.
func (v Viewport) Page(delta int) Viewport {
	v.Start += delta
	if v.Start < 0 {
		v.Start = 0
	}
	return v
}

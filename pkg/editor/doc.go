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

// Package editor implements the edit-before-run mode of scrip.
// A session owns a multi-line document, a cursor, and a viewport,
// keeps the three consistent across every keystroke, and repaints
// only the terminal rows it owns. The session ends when the user
// asks to run, save, or quit; the launcher decides what to do with
// the resulting text.
package editor

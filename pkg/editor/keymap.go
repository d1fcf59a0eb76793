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
	"unicode"

	scrip "github.com/scripdev/scrip/pkg/types"
)

type stroke struct {
	Key scrip.Key
	Mod int
}

// A Binding pairs one key stroke with the command it produces.
type Binding struct {
	Key scrip.Key
	Mod int
	Cmd scrip.Command
}

// A Keymap routes key events to commands. It is built once per session
// and never mutated afterward; rebinding is done by passing overrides
// to NewKeymap.
type Keymap struct {
	strokes map[stroke]scrip.Command
}

func defaultBindings(canPersist bool) []Binding {
	bindings := []Binding{
		{Key: scrip.KeyArrowLeft, Cmd: scrip.Command{Kind: scrip.MoveLeft}},
		{Key: scrip.KeyArrowRight, Cmd: scrip.Command{Kind: scrip.MoveRight}},
		{Key: scrip.KeyArrowUp, Cmd: scrip.Command{Kind: scrip.MoveUp}},
		{Key: scrip.KeyArrowDown, Cmd: scrip.Command{Kind: scrip.MoveDown}},
		{Key: scrip.KeyHome, Cmd: scrip.Command{Kind: scrip.Home}},
		{Key: scrip.KeyEnd, Cmd: scrip.Command{Kind: scrip.End}},
		{Key: scrip.KeyPgup, Cmd: scrip.Command{Kind: scrip.PageUp}},
		{Key: scrip.KeyPgdn, Cmd: scrip.Command{Kind: scrip.PageDown}},
		{Key: scrip.KeyBackspace, Cmd: scrip.Command{Kind: scrip.Backspace}},
		{Key: scrip.KeyBackspace2, Cmd: scrip.Command{Kind: scrip.Backspace}},
		{Key: scrip.KeyDelete, Cmd: scrip.Command{Kind: scrip.Delete}},
		{Key: scrip.KeyEnter, Cmd: scrip.Command{Kind: scrip.NewLine}},
		{Key: scrip.KeyTab, Cmd: scrip.Command{Kind: scrip.InsertTab}},
		{Key: scrip.KeySpace, Cmd: scrip.Command{Kind: scrip.InsertChar, Ch: ' '}},
		{Key: scrip.KeyCtrlR, Cmd: scrip.Command{Kind: scrip.SubmitRun}},
		{Key: scrip.KeyCtrlQ, Cmd: scrip.Command{Kind: scrip.SubmitQuit}},
	}
	if canPersist {
		// saving only makes sense when the session was opened on a real file
		bindings = append(bindings, Binding{
			Key: scrip.KeyCtrlS,
			Mod: scrip.ModAlt,
			Cmd: scrip.Command{Kind: scrip.SubmitSave},
		})
	}
	return bindings
}

// NewKeymap builds the routing table from the default bindings plus
// any overrides, which replace default entries for the same stroke.
func NewKeymap(canPersist bool, overrides ...Binding) *Keymap {
	k := &Keymap{strokes: make(map[stroke]scrip.Command)}
	for _, b := range defaultBindings(canPersist) {
		k.strokes[stroke{Key: b.Key, Mod: b.Mod}] = b.Cmd
	}
	for _, b := range overrides {
		k.strokes[stroke{Key: b.Key, Mod: b.Mod}] = b.Cmd
	}
	return k
}

// Route translates one event into a command. Printable runes become
// InsertChar; everything unbound, including bare control characters,
// is inert.
func (k *Keymap) Route(event *scrip.Event) scrip.Command {
	if event.Type != scrip.EventKey {
		return scrip.Command{Kind: scrip.NoOp}
	}
	if event.Ch != 0 {
		if unicode.IsPrint(event.Ch) {
			return scrip.Command{Kind: scrip.InsertChar, Ch: event.Ch}
		}
		return scrip.Command{Kind: scrip.NoOp}
	}
	if cmd, ok := k.strokes[stroke{Key: event.Key, Mod: event.Modifier}]; ok {
		return cmd
	}
	return scrip.Command{Kind: scrip.NoOp}
}

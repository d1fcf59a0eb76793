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

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"

	scrip "github.com/scripdev/scrip/pkg/types"
)

// The ChromaHighlighter colors script text with chroma's lexers.
// The language is picked once, when the session starts, from the
// script's name and initial content.
type ChromaHighlighter struct {
	lexer chroma.Lexer
}

// NewHighlighter chooses a lexer for the named script. enry's
// classifier gets the first word; chroma's own analysis is the
// fallback. Returns nil when neither recognizes the text, which the
// renderer treats as "no highlighting".
func NewHighlighter(name string, content []byte) *ChromaHighlighter {
	var lexer chroma.Lexer
	if lang := enry.GetLanguage(name, content); lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(string(content))
	}
	if lexer == nil {
		return nil
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(lexer)}
}

// Highlight tokenizes the whole document as one block so the lexer
// sees full context, then spreads token colors back over the rows.
// Rows and columns line up with the input exactly.
func (h *ChromaHighlighter) Highlight(lines [][]rune) [][]scrip.Color {
	colors := make([][]scrip.Color, len(lines))
	for i := range lines {
		colors[i] = make([]scrip.Color, len(lines[i]))
		for j := range colors[i] {
			colors[i][j] = scrip.ColorDefault
		}
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}

	tokens, err := chroma.Tokenise(h.lexer, nil, sb.String())
	if err != nil {
		return colors
	}

	row, col := 0, 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		color := tokenColor(tok.Type)
		for _, c := range tok.Value {
			if c == '\n' {
				row++
				col = 0
				continue
			}
			if row < len(colors) && col < len(colors[row]) {
				colors[row][col] = color
			}
			col++
		}
	}
	return colors
}

func tokenColor(t chroma.TokenType) scrip.Color {
	switch {
	case t.InCategory(chroma.Keyword):
		return scrip.ColorKeyword
	case t.InSubCategory(chroma.LiteralString):
		return scrip.ColorString
	case t.InSubCategory(chroma.LiteralNumber):
		return scrip.ColorNumber
	case t.InCategory(chroma.Comment):
		return scrip.ColorComment
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return scrip.ColorSymbol
	default:
		return scrip.ColorDefault
	}
}

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
package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
)

// fetched scripts are short by definition
const maxFetchBytes = 1 << 20

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// A source is a resolved script: its text, a display name used for
// language detection, and a local path when the text can be saved
// back to where it came from.
type source struct {
	name string
	path string
	text string
}

// empty reports that nothing was resolved and the editor should open
// on a blank document.
func (s *source) empty() bool {
	return s.name == ""
}

// resolveSource loads script text from a URL, standard input, or a
// local file. An empty argument with a terminal on stdin resolves to
// nothing, which sends the launcher into the editor.
func resolveSource(arg string) (*source, error) {
	switch {
	case arg == "":
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return &source{}, nil
		}
		return readStdin()
	case arg == "-":
		return readStdin()
	case strings.HasPrefix(arg, "http://"), strings.HasPrefix(arg, "https://"):
		return fetchURL(arg)
	default:
		b, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		return &source{name: filepath.Base(arg), path: arg, text: string(b)}, nil
	}
}

func readStdin() (*source, error) {
	b, err := io.ReadAll(io.LimitReader(os.Stdin, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return &source{name: "stdin.go", text: string(b)}, nil
}

func fetchURL(rawurl string) (*source, error) {
	resp, err := fetchClient.Get(rawurl)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawurl, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", rawurl, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawurl, err)
	}
	name := "remote.go"
	if u, uerr := url.Parse(rawurl); uerr == nil && path.Base(u.Path) != "/" && path.Base(u.Path) != "." {
		name = path.Base(u.Path)
	}
	return &source{name: name, text: string(b)}, nil
}

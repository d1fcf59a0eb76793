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
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/scripdev/scrip/pkg/editor"
	scrip "github.com/scripdev/scrip/pkg/types"
	"github.com/scripdev/scrip/screen"
)

const version = "0.4.0"

const usage = `usage: scrip [flags] [source] [-- args...]

scrip runs a short script without a project around it. The source is a
local file, an http(s) URL, or "-" for standard input; with no source
an empty editor opens.

  --edit          edit the script before running it
                  (Ctrl+R to run, Ctrl+Alt+S to save, Ctrl+Q to quit)
  --eval EXPR     evaluate a lisp expression and exit
  --version       print scrip and toolchain versions
  --check-update  ask whether a newer scrip release exists
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "scrip: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var sourceArg string
	var edit bool
	scriptArgs := make([]string, 0)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--edit":
			edit = true
		case "--eval":
			i++
			if i >= len(args) {
				return fmt.Errorf("no expression specified for --eval")
			}
			return evalLisp(args[i])
		case "--version":
			fmt.Printf("scrip %s\n", version)
			if v, err := goVersion(); err == nil {
				fmt.Println(v)
			}
			return nil
		case "--check-update":
			return checkUpdate(os.Stdout)
		case "--help", "-h":
			fmt.Print(usage)
			return nil
		case "--":
			scriptArgs = append(scriptArgs, args[i+1:]...)
			i = len(args)
		default:
			if sourceArg == "" {
				sourceArg = args[i]
			} else {
				scriptArgs = append(scriptArgs, args[i])
			}
		}
	}

	src, err := resolveSource(sourceArg)
	if err != nil {
		return err
	}

	text := src.text
	if edit || src.empty() {
		var ok bool
		text, ok, err = editText(src)
		if err != nil || !ok {
			return err
		}
	}
	return runScript(src.name, text, scriptArgs)
}

// editText opens the editor on the resolved source and blocks until
// the user submits. ok is false when the user quit without running.
func editText(src *source) (text string, ok bool, err error) {
	s, err := screen.NewScreen()
	if err != nil {
		return "", false, fmt.Errorf("opening terminal: %w", err)
	}
	defer s.Close()

	// While the editor owns the terminal, log output goes to a file.
	home, _ := os.UserHomeDir()
	if f, ferr := os.OpenFile(filepath.Join(home, ".scriplog"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666); ferr == nil {
		log.SetOutput(f)
		defer f.Close()
		defer log.SetOutput(os.Stderr)
	}

	// An interrupt is a normal way to abandon the editor.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var highlighter scrip.Highlighter
	if h := editor.NewHighlighter(src.name, []byte(src.text)); h != nil {
		highlighter = h
	}

	result, err := editor.Run(ctx, src.text, src.path != "", s, highlighter)
	if err != nil {
		return "", false, err
	}
	switch result.Outcome {
	case scrip.OutcomeQuit:
		return "", false, nil
	case scrip.OutcomeSave:
		// save-then-run
		if err := os.WriteFile(src.path, []byte(result.Text), 0644); err != nil {
			return "", false, fmt.Errorf("saving %s: %w", src.path, err)
		}
	}
	return result.Text, true, nil
}

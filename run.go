package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// runScript executes the final script text. Lisp sources are evaluated
// in-process; everything else is written to a temp file and handed to
// the installed Go toolchain with the forwarded arguments.
func runScript(name, text string, args []string) error {
	if strings.HasSuffix(name, ".lsp") || strings.HasSuffix(name, ".lisp") {
		return evalLisp(text)
	}

	dir, err := os.MkdirTemp("", "scrip")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	base := filepath.Base(name)
	if !strings.HasSuffix(base, ".go") {
		base = "scrip.go"
	}
	file := filepath.Join(dir, base)
	if err := os.WriteFile(file, []byte(text), 0644); err != nil {
		return err
	}

	cmd := exec.Command("go", append([]string{"run", file}, args...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// goVersion reports the installed toolchain version.
func goVersion() (string, error) {
	out, err := exec.Command("go", "version").Output()
	if err != nil {
		return "", fmt.Errorf("go toolchain not found: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

var releaseURL = "https://api.github.com/repos/scripdev/scrip/releases/latest"

// checkUpdate asks the release endpoint for the latest tag and
// compares it against the built-in version.
func checkUpdate(w io.Writer) error {
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(releaseURL)
	if err != nil {
		return fmt.Errorf("checking releases: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("checking releases: %s", resp.Status)
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return fmt.Errorf("checking releases: %w", err)
	}
	latest := strings.TrimPrefix(release.TagName, "v")
	if latest != "" && latest != version {
		fmt.Fprintf(w, "scrip %s is available (installed: %s)\n", latest, version)
	} else {
		fmt.Fprintf(w, "scrip %s is up to date\n", version)
	}
	return nil
}

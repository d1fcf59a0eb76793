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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.go")
	if err := os.WriteFile(path, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := resolveSource(path)
	if err != nil {
		t.Fatalf("resolve failed: %+v", err)
	}
	if src.name != "hello.go" || src.path != path || src.text != "package main" {
		t.Errorf("unexpected source %+v", src)
	}
	if src.empty() {
		t.Error("resolved source reported empty")
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := resolveSource(filepath.Join(t.TempDir(), "nope.go")); err == nil {
		t.Error("expected an error")
	}
}

func TestResolveURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "package main")
	}))
	defer server.Close()

	src, err := resolveSource(server.URL + "/remote/hello.go")
	if err != nil {
		t.Fatalf("resolve failed: %+v", err)
	}
	if src.name != "hello.go" {
		t.Errorf("unexpected name %q", src.name)
	}
	if src.path != "" {
		t.Error("remote sources must not be save targets")
	}
	if src.text != "package main" {
		t.Errorf("unexpected text %q", src.text)
	}
}

func TestResolveURLNonOK(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	if _, err := resolveSource(server.URL + "/hello.go"); err == nil {
		t.Error("expected an error")
	}
}

func TestCheckUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v9.9.9"}`)
	}))
	defer server.Close()

	saved := releaseURL
	releaseURL = server.URL
	defer func() { releaseURL = saved }()

	var out strings.Builder
	if err := checkUpdate(&out); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if !strings.Contains(out.String(), "9.9.9") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestCheckUpdateCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": "v%s"}`, version)
	}))
	defer server.Close()

	saved := releaseURL
	releaseURL = server.URL
	defer func() { releaseURL = saved }()

	var out strings.Builder
	if err := checkUpdate(&out); err != nil {
		t.Fatalf("check failed: %+v", err)
	}
	if !strings.Contains(out.String(), "up to date") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestEvalLisp(t *testing.T) {
	if err := evalLisp("(+ 1 2)"); err != nil {
		t.Errorf("eval failed: %+v", err)
	}
	if err := evalLisp("(+ 1"); err == nil {
		t.Error("expected a parse error")
	}
}

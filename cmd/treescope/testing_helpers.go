package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetCommandState restores the global flags every command test mutates.
// Command tests share package-level flag state, so each case starts from
// the defaults instead of whatever the previous case left behind.
func resetCommandState() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
}

// testDocPath returns the path of a fixture document under the repo's
// testdata directory, failing fast when the fixture is missing.
func testDocPath(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join("..", "..", "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return path
}

// captureOutput runs fn with os.Stdout redirected into a pipe and returns
// everything the command printed, alongside fn's error. The print helpers
// write directly to os.Stdout, which only a pipe swap can intercept.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(out), fnErr
}

// decodeJSON parses command output as a generic JSON value, failing the
// test when --json emitted something unparseable.
func decodeJSON(t *testing.T, output string) any {
	t.Helper()

	var v any
	if err := json.Unmarshal([]byte(output), &v); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}
	return v
}

// assertContains fails the test for every wanted string absent from output.
func assertContains(t *testing.T, output string, wanted ...string) {
	t.Helper()

	for _, want := range wanted {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\ngot: %s", want, output)
		}
	}
}

// assertNotContains fails the test for every unwanted string present in output.
func assertNotContains(t *testing.T, output string, unwanted ...string) {
	t.Helper()

	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains %q\ngot: %s", dont, output)
		}
	}
}

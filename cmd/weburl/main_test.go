package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func runCommand(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	out := &bytes.Buffer{}
	err := &bytes.Buffer{}
	cmd := &WeburlCommand{OutStream: out, ErrStream: err}

	code := cmd.Main(append([]string{"weburl"}, args...))
	return out.String(), err.String(), code
}

func TestCanonicalOutput(t *testing.T) {
	stdout, stderr, code := runCommand(t, "https://some_host.a.b.c:123/some/path?b=2&a=1#frag")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	want := "https://some_host.a.b.c:123/some/path?a=1&b=2#frag\n"
	if stdout != want {
		t.Errorf("stdout = %q want %q", stdout, want)
	}
}

func TestInvalidInput(t *testing.T) {
	stdout, stderr, code := runCommand(t, "http://h/ok", "gopher://nope/")
	if code != 1 {
		t.Fatalf("exit code %d", code)
	}
	if stdout != "http://h/ok\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "UNKNOWN_SCHEME") {
		t.Errorf("stderr %q does not carry the error code", stderr)
	}
}

func TestParentFlag(t *testing.T) {
	stdout, _, code := runCommand(t, "--parent", "http://h/a/b/c?k=v")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if stdout != "http://h/a/b?k=v\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestJSONFlag(t *testing.T) {
	stdout, _, code := runCommand(t, "--json", "wss://a.b:9/x?k=v#f")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}

	var record urlRecord
	if err := json.Unmarshal([]byte(stdout), &record); err != nil {
		t.Fatalf("output %q is not JSON: %s", stdout, err)
	}

	port := uint16(9)
	want := urlRecord{
		Scheme:   "wss",
		Host:     "a.b",
		Port:     &port,
		Path:     "/x",
		Query:    map[string]string{"k": "v"},
		Fragment: "f",
	}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxBytesFlag(t *testing.T) {
	_, stderr, code := runCommand(t, "--max-bytes", "5", "http://h/x")
	if code != 1 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stderr, "INPUT_TOO_LONG") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestNoArguments(t *testing.T) {
	_, stderr, code := runCommand(t)
	if code != 2 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestBadFlag(t *testing.T) {
	_, _, code := runCommand(t, "--definitely-not-a-flag")
	if code != 2 {
		t.Fatalf("exit code %d", code)
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, code := runCommand(t, "--version")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, "weburl version") {
		t.Errorf("stdout = %q", stdout)
	}
}

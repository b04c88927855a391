package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "commonmeta.log")

	cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected file logger ready: %v", err)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}

	L().Info("resolve.done", "doi", "10.5555/abc")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	last := lines[len(lines)-1]

	var rec map[string]any
	if err := json.Unmarshal([]byte(last), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, last)
	}
	if rec["msg"] != "resolve.done" || rec["doi"] != "10.5555/abc" {
		t.Fatalf("unexpected record %v", rec)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}
}

func TestSetupWriterQuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() { _ = cleanup() }()

	L().Info("resolve.start")
	L().Warn("crossref.retry_budget_exhausted")

	out := buf.String()
	if strings.Contains(out, "resolve.start") {
		t.Fatalf("expected info to be suppressed, got %s", out)
	}
	if !strings.Contains(out, "crossref.retry_budget_exhausted") {
		t.Fatalf("expected warn to be written, got %s", out)
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() { _ = cleanup() }()

	if From(context.Background()) != L() {
		t.Fatalf("expected process logger without context value")
	}

	ctx := With(context.Background(), L().With("resolution_id", "r-1"))
	From(ctx).Info("resolve.start")
	if !strings.Contains(buf.String(), `"resolution_id":"r-1"`) {
		t.Fatalf("expected context logger attrs, got %s", buf.String())
	}
}

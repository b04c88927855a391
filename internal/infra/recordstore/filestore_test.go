package recordstore

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

func TestWrite_CreatesFileAndParents(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "out", "nested", "record.json")

	written, err := NewFileStore().Write(path, []byte("{}\n"))
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if written != path {
		t.Fatalf("expected %s, got %s", path, written)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(b) != "{}\n" {
		t.Fatalf("unexpected content %q", b)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file should be gone, stat err=%v", err)
	}
}

func TestWrite_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	store := NewFileStore()

	if _, err := store.Write(path, []byte("old")); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := store.Write(path, []byte("new")); err != nil {
		t.Fatalf("second write: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "new" {
		t.Fatalf("expected overwrite, got %q", b)
	}
}

func TestWrite_Zip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elife.json.zip")
	stamp := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

	if _, err := NewFileStore(WithNow(func() time.Time { return stamp })).Write(path, []byte(`{"id":"10.1/a"}`)); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("expected one entry, got %d", len(zr.File))
	}

	entry := zr.File[0]
	if entry.Name != "elife.json" {
		t.Fatalf("expected entry elife.json, got %q", entry.Name)
	}
	if !entry.Modified.Equal(stamp) {
		t.Fatalf("expected modified %v, got %v", stamp, entry.Modified)
	}

	rc, err := entry.Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != `{"id":"10.1/a"}` {
		t.Fatalf("unexpected entry content %q", got)
	}
}

func TestWrite_EmptyPath(t *testing.T) {
	_, err := NewFileStore().Write("  ", []byte("x"))
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"10.7554/elife.01567": "10-7554-elife-01567.json",
		"10.1000/ABC%2Fdef":   "10-1000-abc-2fdef.json",
		"":                    "record.json",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Fatalf("FileName(%q)=%q, want %q", in, got, want)
		}
	}
}

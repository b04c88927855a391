// Package recordstore writes rendered documents to the filesystem.
package recordstore

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/commonmeta/internal/domain"
	"github.com/aalvaropc/commonmeta/internal/ports"
)

type FileStore struct {
	now func() time.Time
}

type Option func(*FileStore)

// WithNow sets the modification time stamped into zip entries (useful for tests).
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RecordWriter = (*FileStore)(nil)

// Write stores data at path, creating parent directories. A path ending in
// .zip gets an archive holding one entry named after the path without .zip.
func (s *FileStore) Write(path string, data []byte) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &domain.OpError{
			Op:   "recordstore.write",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "recordstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		b, err := s.zipped(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), data)
		if err != nil {
			return "", &domain.OpError{
				Op:   "recordstore.zip",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
		data = b
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "recordstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "recordstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return path, nil
}

func (s *FileStore) zipped(name string, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName derives a safe file name for an identifier, e.g.
// "10.7554/elife.01567" -> "10-7554-elife-01567.json".
func FileName(id string) string {
	slug := slugify(id)
	if slug == "" {
		slug = "record"
	}
	return slug + ".json"
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

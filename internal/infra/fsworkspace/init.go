// Package fsworkspace scaffolds a directory for working with commonmeta.
package fsworkspace

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

//go:embed templates
var templatesFS embed.FS

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init creates root/fixtures, root/.commonmeta/logs and the files under
// templates, rendering {{ NAME }} placeholders from vars. Existing files are
// kept unless force is set. It returns the files it wrote.
func (i *Initializer) Init(root string, vars map[string]string, force bool) ([]string, error) {
	root = filepath.Clean(root)

	for _, d := range []string{
		filepath.Join(root, "fixtures"),
		filepath.Join(root, ".commonmeta", "logs"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, initError(d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return nil, initError(filepath.Join(root, ".gitignore"), err)
	}

	var written []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dst := filepath.Join(root, strings.TrimPrefix(p, "templates/"))
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		out, err := render(string(b), vars)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}

		if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	if err != nil {
		return written, initError(root, err)
	}
	return written, nil
}

// render replaces {{ NAME }} placeholders. Unknown names are an error.
func render(in string, vars map[string]string) (string, error) {
	var out strings.Builder
	rest := in
	for {
		before, after, found := strings.Cut(rest, "{{")
		out.WriteString(before)
		if !found {
			return out.String(), nil
		}

		expr, tail, closed := strings.Cut(after, "}}")
		if !closed {
			return "", errors.New("unclosed placeholder")
		}
		key := strings.TrimSpace(expr)
		if key == "" {
			return "", errors.New("empty placeholder")
		}
		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("missing value for %q", key)
		}
		out.WriteString(value)
		rest = tail
	}
}

func ensureGitignore(root string) error {
	const header = "# commonmeta"
	entries := []string{".commonmeta/"}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}
	return os.WriteFile(path, []byte(out.String()), 0o644)
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

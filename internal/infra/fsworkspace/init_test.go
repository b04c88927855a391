package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/commonmeta/internal/infra/config"
)

func TestInit_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	written, err := NewInitializer().Init(tmp, map[string]string{"MAILTO": "team@example.org"}, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfgPath := filepath.Join(tmp, "commonmeta.yaml")
	if len(written) != 1 || written[0] != cfgPath {
		t.Fatalf("expected only %s written, got %v", cfgPath, written)
	}
	for _, d := range []string{"fixtures", filepath.Join(".commonmeta", "logs")} {
		if info, err := os.Stat(filepath.Join(tmp, d)); err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s, err=%v", d, err)
		}
	}

	cfg, err := config.Load(cfgPath, true)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Upstream.Mailto != "team@example.org" {
		t.Fatalf("expected mailto rendered, got %q", cfg.Upstream.Mailto)
	}
	if cfg.Log.Path != ".commonmeta/logs/commonmeta.log" {
		t.Fatalf("unexpected log path %q", cfg.Log.Path)
	}
}

func TestInit_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "commonmeta.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	vars := map[string]string{"MAILTO": ""}
	i := NewInitializer()

	written, err := i.Init(tmp, vars, false)
	if err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	if len(written) != 0 {
		t.Fatalf("expected nothing written, got %v", written)
	}
	if b, _ := os.ReadFile(cfgPath); string(b) != "custom\n" {
		t.Fatalf("expected config preserved, got %q", b)
	}

	if _, err := i.Init(tmp, vars, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	if b, _ := os.ReadFile(cfgPath); !strings.Contains(string(b), "commonmeta:") {
		t.Fatalf("expected config overwritten, got %q", b)
	}
}

func TestInit_MissingTemplateValue(t *testing.T) {
	if _, err := NewInitializer().Init(t.TempDir(), nil, false); err == nil {
		t.Fatalf("expected error for missing MAILTO")
	}
}

func TestEnsureGitignore_AppendsOnce(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")
	if err := os.WriteFile(path, []byte("node_modules/"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := ensureGitignore(tmp); err != nil {
			t.Fatalf("ensureGitignore: %v", err)
		}
	}

	b, _ := os.ReadFile(path)
	want := "node_modules/\n# commonmeta\n.commonmeta/\n"
	if string(b) != want {
		t.Fatalf("expected %q, got %q", want, b)
	}
}

func TestRender(t *testing.T) {
	out, err := render("a {{ X }} b {{Y}}", map[string]string{"X": "1", "Y": "2"})
	if err != nil || out != "a 1 b 2" {
		t.Fatalf("unexpected render: %q %v", out, err)
	}
	for _, bad := range []string{"{{ X", "{{ }}", "{{ Z }}"} {
		if _, err := render(bad, map[string]string{"X": "1"}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/weave/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}
}

func TestDemos(t *testing.T) {
	out, err := execute(t, "demos")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"counter", "fruits", "todo"} {
		if !strings.Contains(out, name) {
			t.Errorf("demos output missing %q:\n%s", name, out)
		}
	}
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "fruits")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<div>0: apple<button>X</button></div>") {
		t.Errorf("render output = %q", out)
	}

	if _, err := execute(t, "render", "nope"); err == nil {
		t.Error("render of unknown demo succeeded")
	}
}

func TestPlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.yaml")
	body := "demo: counter\nsteps:\n  - click: button\n    nth: 1\n  - snapshot: true\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "play", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "--- snapshot 1 (step 2) ---") || !strings.Contains(out, "count: 1") {
		t.Errorf("play output = %q", out)
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "init", dir); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load() after init: %v", err)
	}
	if cfg.Demo != config.DefaultDemo {
		t.Errorf("Demo = %q", cfg.Demo)
	}
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "E140") || !strings.Contains(out, "E207") {
		t.Errorf("explain output = %q", out)
	}
	if strings.Index(out, "E101") > strings.Index(out, "E207") {
		t.Errorf("explain output not sorted:\n%s", out)
	}

	out, err = execute(t, "explain", "e141")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "E141: Unknown demo") {
		t.Errorf("explain e141 = %q", out)
	}

	if _, err := execute(t, "explain", "E999"); err == nil {
		t.Error("explain of an unknown code succeeded")
	}
}

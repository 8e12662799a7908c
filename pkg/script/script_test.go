package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/dom"
)

const fruitsScript = `
demo: fruits
steps:
  - click: button
    nth: 1
  - input: input
    value: kiwi
  - click: button
  - expect: "1: kiwi"
  - action: rename
    arg: 0=pear
  - snapshot: true
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(fruitsScript))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Demo != "fruits" || len(s.Steps) != 6 {
		t.Fatalf("Parse() = %+v", s)
	}
	kinds := []string{"click", "input", "click", "expect", "action", "snapshot"}
	for i, want := range kinds {
		if got := s.Steps[i].Kind(); got != want {
			t.Errorf("step %d kind = %q, want %q", i+1, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"no demo", "steps: []"},
		{"empty step", "demo: counter\nsteps:\n  - nth: 1\n"},
		{"two kinds", "demo: counter\nsteps:\n  - click: button\n    snapshot: true\n"},
		{"unknown field", "demo: counter\nsteps:\n  - tap: button\n"},
		{"bad path", "demo: counter\nsteps:\n  - click: /0/x\n"},
		{"negative nth", "demo: counter\nsteps:\n  - click: button\n    nth: -1\n"},
		{"not yaml", "demo: [counter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.script))
			var werr *werrors.Error
			if !errors.As(err, &werr) || werr.Code != "E142" {
				t.Errorf("Parse() error = %v, want E142", err)
			}
		})
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(fruitsScript))
	if err != nil {
		t.Fatal(err)
	}
	doc := dom.NewDocument()
	root := doc.CreateElement("main")
	var out strings.Builder

	tree, err := Run(context.Background(), doc, root, s, &out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "--- snapshot 1 (step 6) ---\n") {
		t.Errorf("snapshot header missing: %q", got)
	}
	if !strings.Contains(got, "<div>0: pear<button>X</button></div><div>1: kiwi<button>X</button></div>") {
		t.Errorf("unexpected snapshot: %q", got)
	}
	if err := tree.Unmount(); err != nil {
		t.Errorf("Unmount() error: %v", err)
	}
}

func TestRunPathTarget(t *testing.T) {
	s, err := Parse([]byte("demo: counter\nsteps:\n  - click: /0/2\n  - click: /0/2\n  - expect: \"count: 2\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	doc := dom.NewDocument()
	if _, err := Run(context.Background(), doc, doc.CreateElement("div"), s, &strings.Builder{}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{"unknown demo", "demo: nope\nsteps: []\n", "E141"},
		{"missing target", "demo: counter\nsteps:\n  - click: textarea\n", "E142"},
		{"path out of range", "demo: counter\nsteps:\n  - click: /0/9\n", "E142"},
		{"unknown action", "demo: counter\nsteps:\n  - action: explode\n", "E142"},
		{"failing action", "demo: counter\nsteps:\n  - action: set\n    arg: x\n", "E142"},
		{"failed expectation", "demo: counter\nsteps:\n  - expect: \"count: 9\"\n", "E142"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse([]byte(tt.script))
			if err != nil {
				t.Fatal(err)
			}
			doc := dom.NewDocument()
			_, err = Run(context.Background(), doc, doc.CreateElement("div"), s, &strings.Builder{})
			var werr *werrors.Error
			if !errors.As(err, &werr) || werr.Code != tt.wantErr {
				t.Errorf("Run() error = %v, want %s", err, tt.wantErr)
			}
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := Parse([]byte("demo: counter\nsteps:\n  - action: increment\n"))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	doc := dom.NewDocument()
	if _, err := Run(ctx, doc, doc.CreateElement("div"), s, &strings.Builder{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.yaml")
	if err := os.WriteFile(path, []byte(fruitsScript), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Demo != "fruits" {
		t.Errorf("Demo = %q", s.Demo)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

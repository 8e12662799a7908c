package node

import (
	"errors"
	"log/slog"
	"testing"

	"golang.org/x/net/html"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/metrics"
)

type harness struct {
	t    *testing.T
	doc  *dom.Document
	root *html.Node
	tree *Tree
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	return &harness{t: t, doc: doc, root: root, tree: Root(doc, root, opts...)}
}

func (h *harness) mount(nodes ...Node) {
	h.t.Helper()
	if err := h.tree.Children(nodes...); err != nil {
		h.t.Fatalf("Children() error: %v", err)
	}
}

// context returns a fresh mount context appending to the root.
func (h *harness) context() *Context {
	return &Context{
		doc:    h.doc,
		parent: h.root,
		scope:  NewScope(nil),
		logger: slog.Default(),
		rec:    metrics.Nop{},
	}
}

func (h *harness) html() string {
	h.t.Helper()
	s, err := h.doc.InnerHTML(h.root)
	if err != nil {
		h.t.Fatalf("InnerHTML() error: %v", err)
	}
	return s
}

func (h *harness) expect(want string) {
	h.t.Helper()
	if got := h.html(); got != want {
		h.t.Errorf("html = %q\n     want %q", got, want)
	}
}

// find returns the nth (0-based) element with tag under the root.
func (h *harness) find(tag string, nth int) *html.Node {
	h.t.Helper()
	all := h.doc.FindAll(h.root, tag)
	if nth >= len(all) {
		h.t.Fatalf("no <%s> #%d (found %d)", tag, nth, len(all))
	}
	return all[nth]
}

// expectConfigPanic runs fn and checks it panics with an *errors.Error of
// the given code wrapping ErrConfig.
func expectConfigPanic(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, ErrConfig) {
			t.Errorf("expected error wrapping ErrConfig, got %v", err)
		}
		var werr *werrors.Error
		if !errors.As(err, &werr) || werr.Code != code {
			t.Errorf("expected code %s, got %v", code, err)
		}
	}()
	fn()
}

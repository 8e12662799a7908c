package vtest

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
)

// Harness mounts nodes into a detached root element and drives them.
type Harness struct {
	t    testing.TB
	Doc  *dom.Document
	Root *html.Node
	Tree *node.Tree
}

// New returns a harness with a fresh document and an empty root div.
// Options are passed to node.Root.
func New(t testing.TB, opts ...node.Option) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	root := doc.CreateElement("div")
	return &Harness{
		t:    t,
		Doc:  doc,
		Root: root,
		Tree: node.Root(doc, root, opts...),
	}
}

// Mount mounts nodes into the root, failing the test on error.
func (h *Harness) Mount(nodes ...node.Node) *Harness {
	h.t.Helper()
	if err := h.Tree.Children(nodes...); err != nil {
		h.t.Fatalf("mount failed: %v", err)
	}
	return h
}

// Unmount unmounts the tree, failing the test on error.
func (h *Harness) Unmount() {
	h.t.Helper()
	if err := h.Tree.Unmount(); err != nil {
		h.t.Fatalf("unmount failed: %v", err)
	}
}

// HTML returns the root's inner markup.
func (h *Harness) HTML() string {
	h.t.Helper()
	s, err := h.Doc.InnerHTML(h.Root)
	if err != nil {
		h.t.Fatalf("serialize failed: %v", err)
	}
	return s
}

// Children returns the root's element children.
func (h *Harness) Children() []*html.Node {
	return h.Doc.Children(h.Root)
}

// Find returns the nth (0-based) descendant of the root with tag.
func (h *Harness) Find(tag string, nth int) *html.Node {
	h.t.Helper()
	all := h.Doc.FindAll(h.Root, tag)
	if nth < 0 || nth >= len(all) {
		h.t.Fatalf("expected <%s> #%d, found %d <%s> elements in:\n%s", tag, nth, len(all), tag, truncate(h.HTML(), 500))
	}
	return all[nth]
}

// Click clicks the nth element with tag.
func (h *Harness) Click(tag string, nth int) *Harness {
	h.t.Helper()
	h.Doc.Click(h.Find(tag, nth))
	return h
}

// Input types value into the nth element with tag.
func (h *Harness) Input(tag string, nth int, value string) *Harness {
	h.t.Helper()
	h.Doc.Input(h.Find(tag, nth), value)
	return h
}

// Property returns a property of the nth element with tag.
func (h *Harness) Property(tag string, nth int, key string) any {
	h.t.Helper()
	v, _ := h.Doc.Property(h.Find(tag, nth), key)
	return v
}

// ExpectHTML asserts that the root's markup equals expected.
func (h *Harness) ExpectHTML(expected string) {
	h.t.Helper()
	if got := h.HTML(); got != expected {
		h.t.Errorf("expected markup:\n%s\ngot:\n%s", expected, got)
	}
}

// ExpectContains asserts that the markup contains expected.
//
// Example:
//
//	h.ExpectContains("Welcome Admin")
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	got := h.HTML()
	if !strings.Contains(got, expected) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(got, 500))
	}
}

// ExpectNotContains asserts that the markup does not contain unexpected.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	got := h.HTML()
	if strings.Contains(got, unexpected) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(got, 500))
	}
}

// ExpectElement asserts that the markup contains a tag element.
func (h *Harness) ExpectElement(tag string) {
	h.t.Helper()
	if h.Doc.Find(h.Root, tag) == nil {
		h.t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(h.HTML(), 500))
	}
}

// ExpectAttribute asserts that the markup contains attr="value".
//
// Example:
//
//	h.ExpectAttribute("class", "btn-primary")
func (h *Harness) ExpectAttribute(attr, value string) {
	h.t.Helper()
	got := h.HTML()
	needle := attr + `="` + value + `"`
	if !strings.Contains(got, needle) {
		h.t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(got, 500))
	}
}

// ExpectChildren asserts the number of element children of the root.
func (h *Harness) ExpectChildren(n int) {
	h.t.Helper()
	if got := len(h.Children()); got != n {
		h.t.Errorf("expected %d child elements, got %d:\n%s", n, got, truncate(h.HTML(), 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

package node

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/metrics"
	"github.com/vango-dev/weave/pkg/reactive"
)

// Context carries the state of a mount pass: the document, the insertion
// point, and the Scope that owns whatever the mounted nodes subscribe to.
//
// Contexts are values derived from the one Root creates. At and WithScope
// return modified copies; the original is left untouched.
type Context struct {
	doc    *dom.Document
	parent *html.Node
	before *html.Node
	scope  *Scope
	logger *slog.Logger
	rec    metrics.Recorder
}

// Document returns the document nodes are created in.
func (c *Context) Document() *dom.Document { return c.doc }

// Parent returns the node mounted content is inserted into.
func (c *Context) Parent() *html.Node { return c.parent }

// Before returns the insertion reference. Nil means append.
func (c *Context) Before() *html.Node { return c.before }

// Scope returns the scope owning subscriptions created through c.
func (c *Context) Scope() *Scope { return c.scope }

// Logger returns the tree's logger.
func (c *Context) Logger() *slog.Logger { return c.logger }

// Metrics returns the tree's metrics recorder.
func (c *Context) Metrics() metrics.Recorder { return c.rec }

// At returns a copy of c inserting into parent before before.
func (c *Context) At(parent, before *html.Node) *Context {
	cp := *c
	cp.parent = parent
	cp.before = before
	return &cp
}

// WithScope returns a copy of c owned by s.
func (c *Context) WithScope(s *Scope) *Context {
	cp := *c
	cp.scope = s
	return &cp
}

// Insert places n at the context's insertion point.
func (c *Context) Insert(n *html.Node) {
	c.doc.InsertBefore(c.parent, n, c.before)
}

// MountChild mounts child into parent before before, in the same scope.
func (c *Context) MountChild(child Node, parent, before *html.Node) (Fragment, error) {
	if child == nil {
		return nil, nilNode("child is nil")
	}
	return child.Mount(c.At(parent, before))
}

// Watch calls fn whenever src changes until the scope is disposed.
// Static sources are not subscribed.
func (c *Context) Watch(src reactive.Source, fn func()) {
	if reactive.Static(src) {
		return
	}
	c.scope.Track(src.WatchAny(fn))
}

// Listen attaches fn as a typ listener on el until the scope is disposed.
func (c *Context) Listen(el *html.Node, typ string, fn dom.EventListener) {
	c.scope.OnCleanup(c.doc.AddEventListener(el, typ, fn))
}

// BindAttribute keeps attribute key of el equal to src. Boolean values
// toggle the attribute's presence; other values are written as text.
func (c *Context) BindAttribute(el *html.Node, key string, src reactive.Source) {
	apply := func() { writeAttribute(c.doc, el, key, src.AnyValue()) }
	apply()
	c.Watch(src, apply)
}

// BindBoolAttribute keeps boolean attribute key of el present exactly
// while src is true.
func (c *Context) BindBoolAttribute(el *html.Node, key string, src reactive.Val[bool]) {
	c.BindAttribute(el, key, src)
}

// BindProperty keeps property key of el equal to src.
func (c *Context) BindProperty(el *html.Node, key string, src reactive.Source) {
	apply := func() { c.doc.SetProperty(el, key, src.AnyValue()) }
	apply()
	c.Watch(src, apply)
}

// BindClass keeps class name on el exactly while src is true.
func (c *Context) BindClass(el *html.Node, name string, src reactive.Val[bool]) {
	apply := func() { c.doc.ToggleClass(el, name, src.Get()) }
	apply()
	c.Watch(src, apply)
}

// BindText keeps the data of text node n equal to src.
func (c *Context) BindText(n *html.Node, src reactive.Val[string]) {
	if reactive.Static(src) {
		return
	}
	c.scope.Track(src.Watch(func(next, _ string) {
		c.doc.SetText(n, next)
	}))
}

// mounted records a mounted node of kind and schedules the matching
// unmount record for when the scope is disposed.
func (c *Context) mounted(kind string) {
	c.rec.NodeMounted(kind)
	c.scope.OnCleanup(func() { c.rec.NodeUnmounted(kind) })
}

func writeAttribute(doc *dom.Document, el *html.Node, key string, v any) {
	switch v := v.(type) {
	case nil:
		doc.RemoveAttribute(el, key)
	case bool:
		if v {
			doc.SetAttribute(el, key, "")
		} else {
			doc.RemoveAttribute(el, key)
		}
	case string:
		doc.SetAttribute(el, key, v)
	default:
		doc.SetAttribute(el, key, fmt.Sprint(v))
	}
}

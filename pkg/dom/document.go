package dom

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/petermattis/goid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	werrors "github.com/vango-dev/weave/internal/errors"
)

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithStrictOwner makes every mutation panic when it runs on a goroutine
// other than the one that created the document.
func WithStrictOwner(strict bool) Option {
	return func(d *Document) {
		d.strict = strict
	}
}

// Document owns the nodes it creates together with their properties and
// event listeners.
type Document struct {
	props     map[*html.Node]map[string]any
	listeners map[*html.Node]map[string][]*listener

	owner  int64
	strict bool
	logger *slog.Logger
}

// NewDocument creates an empty document owned by the calling goroutine.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		props:     make(map[*html.Node]map[string]any),
		listeners: make(map[*html.Node]map[string][]*listener),
		owner:     goid.Get(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Logger returns the document's logger.
func (d *Document) Logger() *slog.Logger {
	return d.logger
}

// checkOwner enforces the single-writer rule for strict documents.
func (d *Document) checkOwner() {
	if !d.strict {
		return
	}
	if gid := goid.Get(); gid != d.owner {
		panic(werrors.New("E241").
			WithDetailf("owner goroutine %d, caller goroutine %d", d.owner, gid).
			Wrap(ErrWrongGoroutine))
	}
}

// =============================================================================
// Node creation
// =============================================================================

// CreateElement creates a detached element. tag is lower-cased.
func (d *Document) CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// CreateText creates a detached text node.
func (d *Document) CreateText(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// CreateComment creates a detached comment node. Comments do not render
// and serve as stable anchors.
func (d *Document) CreateComment(data string) *html.Node {
	return &html.Node{Type: html.CommentNode, Data: data}
}

// =============================================================================
// Structure
// =============================================================================

// InsertBefore inserts child into parent before ref. A nil ref appends.
// A child that is already attached is moved.
func (d *Document) InsertBefore(parent, child, ref *html.Node) {
	d.checkOwner()
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.InsertBefore(child, ref)
}

// AppendChild appends child to parent.
func (d *Document) AppendChild(parent, child *html.Node) {
	d.InsertBefore(parent, child, nil)
}

// Remove detaches n from its parent. Detached nodes are left untouched.
func (d *Document) Remove(n *html.Node) {
	d.checkOwner()
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Release drops the properties and listeners held for n and its
// descendants. Call it once a removed subtree will not be reattached.
func (d *Document) Release(n *html.Node) {
	d.checkOwner()
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		delete(d.props, n)
		delete(d.listeners, n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
}

// ChildNodes returns every child of n, including text and comments.
func (d *Document) ChildNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Children returns the element children of n.
func (d *Document) Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// =============================================================================
// Attributes and classes
// =============================================================================

// SetAttribute sets or replaces an attribute.
func (d *Document) SetAttribute(n *html.Node, key, value string) {
	d.checkOwner()
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute removes an attribute if present.
func (d *Document) RemoveAttribute(n *html.Node, key string) {
	d.checkOwner()
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == key
	})
}

// Attribute returns the value of an attribute and whether it is present.
func (d *Document) Attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether an attribute is present.
func (d *Document) HasAttribute(n *html.Node, key string) bool {
	_, ok := d.Attribute(n, key)
	return ok
}

// HasClass reports whether name is in n's class list.
func (d *Document) HasClass(n *html.Node, name string) bool {
	v, _ := d.Attribute(n, "class")
	return slices.Contains(strings.Fields(v), name)
}

// AddClass adds name to n's class list.
func (d *Document) AddClass(n *html.Node, name string) {
	v, _ := d.Attribute(n, "class")
	classes := strings.Fields(v)
	if slices.Contains(classes, name) {
		return
	}
	d.SetAttribute(n, "class", strings.Join(append(classes, name), " "))
}

// RemoveClass removes name from n's class list.
func (d *Document) RemoveClass(n *html.Node, name string) {
	v, ok := d.Attribute(n, "class")
	if !ok {
		return
	}
	classes := slices.DeleteFunc(strings.Fields(v), func(c string) bool { return c == name })
	d.SetAttribute(n, "class", strings.Join(classes, " "))
}

// ToggleClass adds or removes name depending on on.
func (d *Document) ToggleClass(n *html.Node, name string, on bool) {
	if on {
		d.AddClass(n, name)
	} else {
		d.RemoveClass(n, name)
	}
}

// =============================================================================
// Properties and text
// =============================================================================

// SetProperty assigns a property on n. Properties are not serialized.
func (d *Document) SetProperty(n *html.Node, key string, value any) {
	d.checkOwner()
	props := d.props[n]
	if props == nil {
		props = make(map[string]any)
		d.props[n] = props
	}
	props[key] = value
}

// Property returns a property of n and whether it was ever set.
func (d *Document) Property(n *html.Node, key string) (any, bool) {
	v, ok := d.props[n][key]
	return v, ok
}

// SetText replaces the character data of a text or comment node.
func (d *Document) SetText(n *html.Node, data string) {
	d.checkOwner()
	n.Data = data
}

// TextContent returns the concatenated text of n and its descendants.
func (d *Document) TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

package node

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/dom"
)

// Node describes a UI fragment. Mount materializes it at the position
// carried by ctx. A node mounts at most once; a second Mount returns an
// error wrapping ErrAlreadyMounted.
type Node interface {
	Mount(ctx *Context) (Fragment, error)
}

// Fragment is the mounted result of a Node.
type Fragment interface {
	// Nodes returns the top-level DOM nodes currently produced by the
	// node, in document order. Directives compute it live.
	Nodes() []*html.Node

	// Last returns the node's last DOM node. It is stable for the lifetime
	// of the mount, so siblings can use it as an insertion anchor.
	Last() *html.Node
}

// single is the fragment of a node that produces exactly one DOM node.
type single struct {
	n *html.Node
}

func (f single) Nodes() []*html.Node { return []*html.Node{f.n} }
func (f single) Last() *html.Node    { return f.n }

// First returns the first DOM node of f, falling back to Last when f
// produces nothing else.
func First(f Fragment) *html.Node {
	if nodes := f.Nodes(); len(nodes) > 0 {
		return nodes[0]
	}
	return f.Last()
}

// detach removes every DOM node of f from the document and drops their
// document side tables.
func detach(doc *dom.Document, f Fragment) {
	for _, n := range f.Nodes() {
		doc.Remove(n)
		doc.Release(n)
	}
}

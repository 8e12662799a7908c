package node

import (
	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/reactive"
)

// ifMarker is the data of the comment anchoring a conditional.
const ifMarker = "if node"

type ifNode struct {
	guard
	cond  reactive.Val[bool]
	then  func() Node
	other func() Node
}

// If mounts build's node while cond is true.
//
// A permanent <!--if node--> comment marks the directive's position and
// the content is mounted immediately before it. Each notification from
// cond unmounts the current content, if any, and mounts a freshly built
// one when the new value is true; repeated true notifications rebuild.
func If(cond reactive.Val[bool], build func() Node) Node {
	return IfElse(cond, build, nil)
}

// IfElse mounts then's node while cond is true and other's node while it
// is false. Either builder may be nil.
func IfElse(cond reactive.Val[bool], then, other func() Node) Node {
	if cond == nil {
		panic(nilSource("if condition"))
	}
	return &ifNode{cond: cond, then: then, other: other}
}

type ifFragment struct {
	content Fragment
	scope   *Scope
	marker  *html.Node
}

func (f *ifFragment) Nodes() []*html.Node {
	if f.content == nil {
		return []*html.Node{f.marker}
	}
	return append(f.content.Nodes(), f.marker)
}

func (f *ifFragment) Last() *html.Node { return f.marker }

func (n *ifNode) Mount(ctx *Context) (Fragment, error) {
	if err := n.claim("if"); err != nil {
		return nil, err
	}
	doc := ctx.Document()
	f := &ifFragment{marker: doc.CreateComment(ifMarker)}
	ctx.Insert(f.marker)
	ctx.mounted("if")

	show := func(on bool) error {
		if f.content != nil {
			f.scope.Dispose()
			detach(doc, f.content)
			f.content, f.scope = nil, nil
			ctx.Logger().Debug("if unmounted", "directive", "if")
		}
		build := n.other
		if on {
			build = n.then
		}
		if build == nil {
			return nil
		}
		child := build()
		if child == nil {
			return nilNode("if builder returned nil")
		}
		scope := ctx.Scope().Child()
		content, err := child.Mount(ctx.At(f.marker.Parent, f.marker).WithScope(scope))
		if err != nil {
			scope.Dispose()
			return err
		}
		f.content, f.scope = content, scope
		ctx.Logger().Debug("if mounted", "directive", "if", "branch", on)
		return nil
	}

	if err := show(n.cond.Get()); err != nil {
		doc.Remove(f.marker)
		return nil, err
	}
	if !reactive.Static(n.cond) {
		ctx.Scope().Track(n.cond.Watch(func(on, _ bool) {
			if err := show(on); err != nil {
				panic(err)
			}
		}))
	}
	return f, nil
}

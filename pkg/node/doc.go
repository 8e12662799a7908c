// Package node implements render nodes: descriptions of UI fragments that
// are materialized into live DOM nodes by mounting.
//
// A Node is built once and mounted once. Mounting creates the DOM nodes,
// inserts them at the position carried by the Context and subscribes every
// reactive value the node was built with. From then on each change is
// written straight to the affected DOM node; nothing is re-rendered.
//
//	count := reactive.NewSignal(0)
//	tree := node.Root(doc, container)
//	err := tree.Children(
//	    node.El("button").
//	        On("click", func(*dom.Event) { count.Update(func(n int) int { return n + 1 }) }).
//	        Children(node.Textf("clicked %d times", count)),
//	)
//
// Directives (If, IfElse, Repeat) mount and unmount subtrees as state
// changes. Every subtree they mount gets its own Scope, which owns the
// subscriptions and listeners created inside it and releases them when the
// subtree is removed.
package node

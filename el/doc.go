// Package el provides the UI DSL for weave.
//
// It wraps node.El with one constructor per HTML element and re-exports
// the text and directive helpers, so a view reads as a tree of calls:
//
//	import (
//	    "github.com/vango-dev/weave/pkg/reactive"
//	    . "github.com/vango-dev/weave/el"
//	)
//
//	count := reactive.NewSignal(0)
//	view := Div(
//	    Button().On(EventClick, Do(func() { count.Update(inc) })).Text("+"),
//	    Textf("count: %d", count),
//	)
//
// Container constructors take children; void elements (Input, Br, Img, ...)
// take none. Attributes, properties, classes and listeners are set with the
// methods of node.Element.
package el

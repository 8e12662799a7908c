package el

import (
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/reactive"
)

// Type aliases for the render-node and reactive types used by the DSL.
type (
	Node     = node.Node
	Element  = node.Element
	Context  = node.Context
	Fragment = node.Fragment
	Tree     = node.Tree
)

type (
	Val[T any] = reactive.Val[T]
	Var[T any] = reactive.Var[T]
)

// This file re-exports node helpers for the el package.
package el

import (
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/reactive"
)

func Text(s string) Node {
	return node.Text(s)
}
func TextVal(v reactive.Val[string]) Node {
	return node.TextVal(v)
}
func Textf(format string, args ...any) Node {
	return node.Textf(format, args...)
}
func Concat(parts ...any) Node {
	return node.Concat(parts...)
}
func If(cond reactive.Val[bool], build func() Node) Node {
	return node.If(cond, build)
}
func IfElse(cond reactive.Val[bool], then, other func() Node) Node {
	return node.IfElse(cond, then, other)
}
func Repeat[T any](list *reactive.List[T], build func(item reactive.Var[T], index reactive.Val[int]) Node) Node {
	return node.Repeat(list, build)
}
func Model[T any](e *Element, prop, event string, src reactive.Val[T], set func(T)) *Element {
	return node.Model(e, prop, event, src, set)
}

package node

import "github.com/vango-dev/weave/pkg/reactive"

type textNode struct {
	guard
	src reactive.Val[string]
}

// Text returns a text node with fixed content.
func Text(s string) Node {
	return &textNode{src: reactive.Const(s)}
}

// TextVal returns a text node whose data follows v.
func TextVal(v reactive.Val[string]) Node {
	if v == nil {
		panic(nilSource("text"))
	}
	return &textNode{src: v}
}

// Textf returns a text node rendering fmt.Sprintf(format, args...).
// Arguments implementing reactive.Source are read live and the text is
// re-rendered whenever one of them changes.
//
//	node.Textf("%v: %v", index, reactive.Map(item, Fruit.Name))
func Textf(format string, args ...any) Node {
	return &textNode{src: reactive.Format(format, args...)}
}

// Concat returns a text node concatenating parts, re-rendered whenever a
// reactive part changes.
func Concat(parts ...any) Node {
	return &textNode{src: reactive.Concat(parts...)}
}

func (t *textNode) Mount(ctx *Context) (Fragment, error) {
	if err := t.claim("text"); err != nil {
		return nil, err
	}
	n := ctx.Document().CreateText(t.src.Get())
	ctx.BindText(n, t.src)
	ctx.Insert(n)
	ctx.mounted("text")
	return single{n}, nil
}

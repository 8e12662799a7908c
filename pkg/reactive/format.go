package reactive

import (
	"fmt"
	"strings"
)

// template is a string derived from several values at once. Arguments
// that implement Source are read live; anything else is used as is.
type template struct {
	render func() string
	srcs   []Source
}

// Format returns a string value equal to fmt.Sprintf(format, args...) with
// every Source argument replaced by its current value. It changes whenever
// any Source argument changes.
//
//	counter := reactive.NewSignal(1)
//	label := reactive.Format("the counter is %v", counter)
//	label.Get() // "the counter is 1"
func Format(format string, args ...any) Val[string] {
	return &template{
		render: func() string { return fmt.Sprintf(format, resolve(args)...) },
		srcs:   sources(args),
	}
}

// Concat returns a string value equal to the concatenation of parts, each
// formatted with fmt.Sprint. It is the template-literal form without a
// format string: literal segments and interpolated values simply alternate.
//
//	reactive.Concat(index, ": ", name)
func Concat(parts ...any) Val[string] {
	return &template{
		render: func() string {
			var b strings.Builder
			for _, p := range resolve(parts) {
				fmt.Fprint(&b, p)
			}
			return b.String()
		},
		srcs: sources(parts),
	}
}

func resolve(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if s, ok := a.(Source); ok {
			out[i] = s.AnyValue()
		} else {
			out[i] = a
		}
	}
	return out
}

func sources(args []any) []Source {
	var out []Source
	for _, a := range args {
		if s, ok := a.(Source); ok {
			out = append(out, s)
		}
	}
	return out
}

func (t *template) Get() string   { return t.render() }
func (t *template) AnyValue() any { return t.render() }

func (t *template) static() bool {
	for _, s := range t.srcs {
		if !Static(s) {
			return false
		}
	}
	return true
}

func (t *template) Watch(l Listener[string]) Unsubscribe {
	if l == nil {
		return noop
	}
	prev := t.render()
	return t.WatchAny(func() {
		next := t.render()
		p := prev
		prev = next
		l(next, p)
	})
}

func (t *template) WatchAny(fn func()) Unsubscribe {
	if fn == nil || len(t.srcs) == 0 {
		return noop
	}
	stops := make([]Unsubscribe, len(t.srcs))
	for i, s := range t.srcs {
		stops[i] = s.WatchAny(fn)
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}

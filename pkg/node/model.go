package node

import (
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/reactive"
)

// Model binds property prop of e to src in both directions.
//
// The property always shows src. When the element fires event, the
// property's current value is passed to set, and the property is then
// rewritten from src, so src stays the single source of truth: an input
// whose setter rejects a value snaps back to the accepted one.
//
// If set is nil and src is a reactive.Var, its Set method is used. With
// neither, the binding is one-way.
func Model[T any](e *Element, prop, event string, src reactive.Val[T], set func(T)) *Element {
	e.PropVal(prop, src)
	if set == nil {
		if v, ok := src.(reactive.Var[T]); ok {
			set = v.Set
		}
	}
	if set == nil {
		return e
	}
	return e.On(event, func(ev *dom.Event) {
		doc := ev.Document()
		el := ev.CurrentTarget
		raw, _ := doc.Property(el, prop)
		v, ok := raw.(T)
		if !ok && raw != nil {
			doc.Logger().Warn("model property type mismatch",
				"prop", prop,
				"event", event,
				"value", raw,
			)
		} else {
			set(v)
		}
		doc.SetProperty(el, prop, src.Get())
	})
}

// Value binds the value property to v, updated on every input event.
func (e *Element) Value(v reactive.Var[string]) *Element {
	return Model[string](e, "value", "input", v, nil)
}

// ValueFunc binds the value property to v and passes user input to set.
func (e *Element) ValueFunc(v reactive.Val[string], set func(string)) *Element {
	return Model(e, "value", "input", v, set)
}

// Checked binds the checked property to v, updated on every click.
func (e *Element) Checked(v reactive.Var[bool]) *Element {
	return Model[bool](e, "checked", "click", v, nil)
}

// CheckedFunc binds the checked property to v and passes clicks to set.
func (e *Element) CheckedFunc(v reactive.Val[bool], set func(bool)) *Element {
	return Model(e, "checked", "click", v, set)
}

package node

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/reactive"
)

type bindingKind uint8

const (
	bindClass bindingKind = iota
	bindAttr
	bindProp
	bindListener
)

// mountOrder is the order binding kinds are applied in.
var mountOrder = [...]bindingKind{bindClass, bindAttr, bindProp, bindListener}

// binding is one recorded attribute, property, class or listener. Exactly
// one of value, source and handler is meaningful, depending on kind.
type binding struct {
	kind    bindingKind
	key     string
	value   any
	source  reactive.Source
	handler dom.EventListener
}

// Hook runs when an element is mounted, after its bindings are applied
// and before it is inserted into its parent.
type Hook func(ctx *Context, el *html.Node)

// Element is a render node producing one DOM element. It is configured
// with chained calls and mounted through Root or a parent element.
//
//	node.El("input").
//	    Attr("type", "text").
//	    Class("invalid", reactive.Is(name, isEmpty)).
//	    Value(name)
type Element struct {
	guard
	tag      string
	classes  []string
	bindings []binding
	hooks    []Hook
	children []Node
}

// El returns an element node for tag. classes are applied as the static
// class list; each may itself hold several space-separated names.
// El panics if tag is not a valid tag name.
func El(tag string, classes ...string) *Element {
	if !validTag(tag) {
		configPanic("E201", "tag %q", tag)
	}
	e := &Element{tag: strings.ToLower(tag)}
	for _, c := range classes {
		e.classes = append(e.classes, strings.Fields(c)...)
	}
	return e
}

// Tag returns the element's lower-cased tag name.
func (e *Element) Tag() string { return e.tag }

// set records b, replacing an earlier binding of the same kind and key in
// place so the last call wins without changing the application order.
func (e *Element) set(b binding) *Element {
	if !validName(b.key) {
		configPanic("E203", "%q on <%s>", b.key, e.tag)
	}
	for i := range e.bindings {
		if e.bindings[i].kind == b.kind && e.bindings[i].key == b.key {
			e.bindings[i] = b
			return e
		}
	}
	e.bindings = append(e.bindings, b)
	return e
}

func mustSource(src reactive.Source, what string) {
	if src == nil {
		panic(nilSource(what))
	}
}

// Attr sets attribute key to value.
func (e *Element) Attr(key, value string) *Element {
	return e.set(binding{kind: bindAttr, key: key, value: value})
}

// AttrVal keeps attribute key equal to v.
func (e *Element) AttrVal(key string, v reactive.Val[string]) *Element {
	mustSource(v, "attribute "+key)
	return e.set(binding{kind: bindAttr, key: key, source: v})
}

// Flag sets boolean attribute key present or absent.
func (e *Element) Flag(key string, on bool) *Element {
	return e.set(binding{kind: bindAttr, key: key, value: on})
}

// FlagVal keeps boolean attribute key present exactly while v is true.
func (e *Element) FlagVal(key string, v reactive.Val[bool]) *Element {
	mustSource(v, "attribute "+key)
	return e.set(binding{kind: bindAttr, key: key, source: v})
}

// Prop sets property key. If value implements reactive.Source the
// property follows it.
func (e *Element) Prop(key string, value any) *Element {
	if src, ok := value.(reactive.Source); ok {
		return e.PropVal(key, src)
	}
	return e.set(binding{kind: bindProp, key: key, value: value})
}

// PropVal keeps property key equal to v.
func (e *Element) PropVal(key string, v reactive.Source) *Element {
	mustSource(v, "property "+key)
	return e.set(binding{kind: bindProp, key: key, source: v})
}

// Class toggles class name on the element to follow on.
func (e *Element) Class(name string, on reactive.Val[bool]) *Element {
	mustSource(on, "class "+name)
	return e.set(binding{kind: bindClass, key: name, source: on})
}

// On sets the listener for events of type typ. Only one listener per type
// is kept; a later call replaces an earlier one.
func (e *Element) On(typ string, fn dom.EventListener) *Element {
	if fn == nil {
		configPanic("E206", "nil %s listener on <%s>", typ, e.tag)
	}
	return e.set(binding{kind: bindListener, key: typ, handler: fn})
}

// OnMount registers a hook run at mount time.
func (e *Element) OnMount(h Hook) *Element {
	e.hooks = append(e.hooks, h)
	return e
}

// Children replaces the element's children. It panics on a void element
// or a nil child.
func (e *Element) Children(children ...Node) *Element {
	if len(children) > 0 && voidElements[e.tag] {
		configPanic("E204", "<%s> given %d children", e.tag, len(children))
	}
	for i, c := range children {
		if c == nil {
			configPanic("E206", "child %d of <%s>", i, e.tag)
		}
	}
	e.children = children
	return e
}

// Text replaces the element's children with a single text node.
func (e *Element) Text(s string) *Element {
	return e.Children(Text(s))
}

// TextVal replaces the element's children with a single text node that
// follows v.
func (e *Element) TextVal(v reactive.Val[string]) *Element {
	return e.Children(TextVal(v))
}

// Mount creates the element, applies its bindings in kind order, inserts
// it and mounts its children.
func (e *Element) Mount(ctx *Context) (Fragment, error) {
	if err := e.claim("<" + e.tag + ">"); err != nil {
		return nil, err
	}
	doc := ctx.Document()
	el := doc.CreateElement(e.tag)

	if len(e.classes) > 0 {
		doc.SetAttribute(el, "class", strings.Join(e.classes, " "))
	}
	for _, kind := range mountOrder {
		for _, b := range e.bindings {
			if b.kind == kind {
				e.apply(ctx, el, b)
			}
		}
	}
	for _, h := range e.hooks {
		h(ctx, el)
	}

	ctx.Insert(el)
	ctx.mounted("element")

	inner := ctx.At(el, nil)
	for _, child := range e.children {
		if _, err := child.Mount(inner); err != nil {
			doc.Remove(el)
			doc.Release(el)
			return nil, err
		}
	}
	return single{el}, nil
}

func (e *Element) apply(ctx *Context, el *html.Node, b binding) {
	doc := ctx.Document()
	switch b.kind {
	case bindClass:
		ctx.BindClass(el, b.key, b.source.(reactive.Val[bool]))
	case bindAttr:
		if b.source != nil {
			ctx.BindAttribute(el, b.key, b.source)
		} else {
			writeAttribute(doc, el, b.key, b.value)
		}
	case bindProp:
		if b.source != nil {
			ctx.BindProperty(el, b.key, b.source)
		} else {
			doc.SetProperty(el, b.key, b.value)
		}
	case bindListener:
		ctx.Listen(el, b.key, b.handler)
	}
}

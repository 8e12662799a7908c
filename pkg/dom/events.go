package dom

import (
	"slices"

	"golang.org/x/net/html"
)

// EventListener handles a dispatched event.
type EventListener func(ev *Event)

// Event is a dispatched DOM event. It bubbles from Target up through its
// ancestors until a listener calls StopPropagation.
type Event struct {
	// Type is the event name, e.g. "click" or "input".
	Type string

	// Target is the node the event was dispatched on.
	Target *html.Node

	// CurrentTarget is the node whose listener is running.
	CurrentTarget *html.Node

	doc     *Document
	stopped bool
}

// Document returns the document the event was dispatched in.
func (e *Event) Document() *Document {
	return e.doc
}

// StopPropagation prevents the event from reaching further ancestors.
// Remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

type listener struct {
	fn     EventListener
	active bool
}

// AddEventListener registers fn for typ events on n and returns a function
// that removes it.
func (d *Document) AddEventListener(n *html.Node, typ string, fn EventListener) func() {
	d.checkOwner()
	byType := d.listeners[n]
	if byType == nil {
		byType = make(map[string][]*listener)
		d.listeners[n] = byType
	}
	l := &listener{fn: fn, active: true}
	byType[typ] = append(byType[typ], l)

	return func() {
		if !l.active {
			return
		}
		l.active = false
		list := d.listeners[n][typ]
		if i := slices.Index(list, l); i >= 0 {
			d.listeners[n][typ] = slices.Delete(list, i, i+1)
		}
	}
}

// ListenerCount returns the number of listeners registered for typ on n.
func (d *Document) ListenerCount(n *html.Node, typ string) int {
	return len(d.listeners[n][typ])
}

// Dispatch fires a typ event at n and returns it after propagation.
func (d *Document) Dispatch(n *html.Node, typ string) *Event {
	d.checkOwner()
	ev := &Event{Type: typ, Target: n, doc: d}
	d.logger.Debug("dom dispatch", "type", typ, "target", n.Data)

	for cur := n; cur != nil && !ev.stopped; cur = cur.Parent {
		snapshot := slices.Clone(d.listeners[cur][typ])
		ev.CurrentTarget = cur
		for _, l := range snapshot {
			if l.active {
				l.fn(ev)
			}
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Click simulates a user click on n. Checkbox and radio inputs flip their
// checked property before listeners run, as browsers do.
func (d *Document) Click(n *html.Node) *Event {
	if n.Type == html.ElementNode && n.Data == "input" {
		typ, _ := d.Attribute(n, "type")
		switch typ {
		case "checkbox":
			d.SetProperty(n, "checked", !d.checked(n))
		case "radio":
			d.SetProperty(n, "checked", true)
		}
	}
	return d.Dispatch(n, "click")
}

// Input simulates the user typing value into n: the value property is
// replaced and an input event is dispatched.
func (d *Document) Input(n *html.Node, value string) *Event {
	d.SetProperty(n, "value", value)
	return d.Dispatch(n, "input")
}

func (d *Document) checked(n *html.Node) bool {
	if v, ok := d.Property(n, "checked"); ok {
		b, _ := v.(bool)
		return b
	}
	return d.HasAttribute(n, "checked")
}

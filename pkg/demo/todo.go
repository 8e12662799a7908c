package demo

import (
	"strconv"
	"strings"

	"github.com/vango-dev/weave/el"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/reactive"
)

// TodoItem is one entry of the todo demo.
type TodoItem struct {
	Title string
	Done  bool
}

// TodoDemo is a todo list. Each row has a checkbox bound to the item's
// Done field and a delete button.
type TodoDemo struct {
	Items *reactive.List[TodoItem]
	Draft *reactive.Signal[string]
}

// Todo returns an empty todo list.
func Todo() *TodoDemo {
	return &TodoDemo{
		Items: reactive.NewList[TodoItem](),
		Draft: reactive.NewSignal(""),
	}
}

func (d *TodoDemo) Name() string        { return "todo" }
func (d *TodoDemo) Description() string { return "a todo list with checkboxes, an empty state and an open-item count" }

// Add appends the draft as an open item, if non-blank, and clears it.
func (d *TodoDemo) Add() {
	title := strings.TrimSpace(d.Draft.Get())
	if title == "" {
		return
	}
	d.Items.Append(TodoItem{Title: title})
	d.Draft.Set("")
}

// Remaining returns the number of open items.
func (d *TodoDemo) Remaining() reactive.Val[int] {
	return reactive.Derive(d.Items, func(items []TodoItem) int {
		n := 0
		for _, it := range items {
			if !it.Done {
				n++
			}
		}
		return n
	})
}

// ClearDone removes every finished item in one diff.
func (d *TodoDemo) ClearDone() {
	var keep []TodoItem
	for _, it := range d.Items.Items() {
		if !it.Done {
			keep = append(keep, it)
		}
	}
	d.Items.Reset(keep)
}

func (d *TodoDemo) Build() node.Node {
	empty := reactive.Is(d.Items.Length(), func(n int) bool { return n == 0 })
	return el.Div(
		el.Input().Attr("placeholder", "what needs doing?").Value(d.Draft),
		el.Button().On(el.EventClick, el.Do(d.Add)).Text("add"),
		el.Ul(el.Repeat(d.Items, d.row)),
		el.If(empty, func() node.Node { return el.P(el.Text("nothing to do")) }),
		el.P(el.Textf("%d left", d.Remaining())),
		el.Button().On(el.EventClick, el.Do(d.ClearDone)).Text("clear done"),
	).Attr("id", "todo")
}

func (d *TodoDemo) row(item reactive.Var[TodoItem], i reactive.Val[int]) node.Node {
	done := reactive.Lens(item,
		func(t TodoItem) bool { return t.Done },
		func(v bool, t TodoItem) TodoItem { t.Done = v; return t },
	)
	return el.Li(
		el.Input().Attr("type", "checkbox").Checked(done),
		el.Span(el.TextVal(reactive.Map(item, func(t TodoItem) string { return t.Title }))),
		el.Button().On(el.EventClick, func(ev *dom.Event) {
			if err := d.Items.RemoveAt(i.Get()); err != nil {
				ev.Document().Logger().Error("remove todo", "index", i.Get(), "error", err)
			}
		}).Text("delete"),
	).Class("done", done)
}

func (d *TodoDemo) Actions() map[string]Action {
	return map[string]Action{
		"add": func(arg string) error {
			d.Draft.Set(arg)
			d.Add()
			return nil
		},
		"toggle": func(arg string) error {
			i, err := strconv.Atoi(arg)
			if err != nil {
				return badArg(d.Name(), "toggle", arg, "an index")
			}
			it, err := d.Items.At(i)
			if err != nil {
				return err
			}
			it.Done = !it.Done
			return d.Items.SetAt(i, it)
		},
		"clear-done": func(string) error {
			d.ClearDone()
			return nil
		},
	}
}

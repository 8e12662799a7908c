package demo

import (
	"strconv"
	"strings"

	"github.com/vango-dev/weave/el"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/reactive"
)

// Fruit is one entry of the fruits demo.
type Fruit struct {
	Name string
}

// FruitsDemo is a list of fruits, each with a remove button, and an input
// to add more.
type FruitsDemo struct {
	Fruits *reactive.List[Fruit]
	Draft  *reactive.Signal[string]
}

// Fruits returns the demo seeded with names.
func Fruits(names ...string) *FruitsDemo {
	items := make([]Fruit, len(names))
	for i, n := range names {
		items[i] = Fruit{Name: n}
	}
	return &FruitsDemo{
		Fruits: reactive.NewList(items...),
		Draft:  reactive.NewSignal(""),
	}
}

func (f *FruitsDemo) Name() string        { return "fruits" }
func (f *FruitsDemo) Description() string { return "a list of fruits with per-row remove buttons" }

// Add appends the draft, if non-blank, and clears it.
func (f *FruitsDemo) Add() {
	name := strings.TrimSpace(f.Draft.Get())
	if name == "" {
		return
	}
	f.Fruits.Append(Fruit{Name: name})
	f.Draft.Set("")
}

func (f *FruitsDemo) Build() node.Node {
	empty := reactive.Is(f.Fruits.Length(), func(n int) bool { return n == 0 })
	return el.Div(
		el.Input().Attr("placeholder", "fruit").Value(f.Draft),
		el.Button().On(el.EventClick, el.Do(f.Add)).Text("add"),
		el.Repeat(f.Fruits, func(fruit reactive.Var[Fruit], i reactive.Val[int]) node.Node {
			return el.Div(
				el.Textf("%v: %v", i, reactive.Map(fruit, func(f Fruit) string { return f.Name })),
				el.Button().On(el.EventClick, func(ev *dom.Event) {
					if err := f.Fruits.RemoveAt(i.Get()); err != nil {
						ev.Document().Logger().Error("remove fruit", "index", i.Get(), "error", err)
					}
				}).Text("X"),
			)
		}),
		el.If(empty, func() node.Node { return el.P(el.Text("no fruit")) }),
	).Attr("id", "fruits")
}

func (f *FruitsDemo) Actions() map[string]Action {
	return map[string]Action{
		"add": func(arg string) error {
			f.Draft.Set(arg)
			f.Add()
			return nil
		},
		"remove": func(arg string) error {
			i, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			return f.Fruits.RemoveAt(i)
		},
		"rename": func(arg string) error {
			idx, name, ok := strings.Cut(arg, "=")
			if !ok {
				return badArg(f.Name(), "rename", arg, "index=name")
			}
			i, err := strconv.Atoi(idx)
			if err != nil {
				return err
			}
			return f.Fruits.SetAt(i, Fruit{Name: name})
		},
		"clear": func(string) error {
			f.Fruits.Clear()
			return nil
		},
	}
}

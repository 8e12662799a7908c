package demo

import (
	"strconv"

	"github.com/vango-dev/weave/el"
	"github.com/vango-dev/weave/pkg/node"
	"github.com/vango-dev/weave/pkg/reactive"
)

// CounterDemo is a number with increment, decrement and reset buttons.
type CounterDemo struct {
	Count *reactive.Signal[int]
}

// Counter returns a counter starting at zero.
func Counter() *CounterDemo {
	return &CounterDemo{Count: reactive.NewSignal(0)}
}

func (c *CounterDemo) Name() string        { return "counter" }
func (c *CounterDemo) Description() string { return "a counter with increment, decrement and reset" }

func (c *CounterDemo) Increment() { c.Count.Update(func(n int) int { return n + 1 }) }
func (c *CounterDemo) Decrement() { c.Count.Update(func(n int) int { return n - 1 }) }
func (c *CounterDemo) Reset()     { c.Count.Set(0) }

func (c *CounterDemo) Build() node.Node {
	negative := reactive.Is(c.Count, func(n int) bool { return n < 0 })
	zero := reactive.Is(c.Count, func(n int) bool { return n == 0 })
	return el.Div(
		el.H1(el.Textf("count: %d", c.Count)).Class("negative", negative),
		el.Button().On(el.EventClick, el.Do(c.Decrement)).Text("-"),
		el.Button().On(el.EventClick, el.Do(c.Increment)).Text("+"),
		el.Button().On(el.EventClick, el.Do(c.Reset)).FlagVal("disabled", zero).Text("reset"),
	).Attr("id", "counter")
}

func (c *CounterDemo) Actions() map[string]Action {
	return map[string]Action{
		"increment": func(string) error { c.Increment(); return nil },
		"decrement": func(string) error { c.Decrement(); return nil },
		"reset":     func(string) error { c.Reset(); return nil },
		"set": func(arg string) error {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return badArg(c.Name(), "set", arg, "an integer")
			}
			c.Count.Set(n)
			return nil
		},
	}
}

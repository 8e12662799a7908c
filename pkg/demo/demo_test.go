package demo

import (
	"errors"
	"reflect"
	"testing"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/vtest"
)

func TestRegistry(t *testing.T) {
	if got, want := Names(), []string{"counter", "fruits", "todo"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for _, name := range Names() {
		d, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) error: %v", name, err)
		}
		if d.Name() != name || d.Description() == "" {
			t.Errorf("New(%q) = %q, %q", name, d.Name(), d.Description())
		}
		vtest.New(t).Mount(d.Build())
	}

	_, err := New("nope")
	var werr *werrors.Error
	if !errors.As(err, &werr) || werr.Code != "E141" {
		t.Errorf("New(nope) = %v, want E141", err)
	}
}

func TestNewReturnsIndependentState(t *testing.T) {
	a, _ := New("counter")
	b, _ := New("counter")
	a.(*CounterDemo).Increment()
	if b.(*CounterDemo).Count.Get() != 0 {
		t.Error("demos must not share state")
	}
}

func TestCounter(t *testing.T) {
	c := Counter()
	h := vtest.New(t).Mount(c.Build())
	h.ExpectHTML(`<div id="counter"><h1>count: 0</h1><button>-</button><button>+</button><button disabled="">reset</button></div>`)

	h.Click("button", 1).Click("button", 1)
	h.ExpectContains("count: 2")
	h.ExpectNotContains("disabled")

	h.Click("button", 0).Click("button", 0).Click("button", 0)
	h.ExpectContains(`<h1 class="negative">count: -1</h1>`)

	h.Click("button", 2)
	h.ExpectContains("count: 0")
	h.ExpectAttribute("disabled", "")
}

func TestCounterActions(t *testing.T) {
	c := Counter()
	acts := c.Actions()
	if err := acts["set"]("41"); err != nil {
		t.Fatal(err)
	}
	if err := acts["increment"](""); err != nil {
		t.Fatal(err)
	}
	if c.Count.Get() != 42 {
		t.Errorf("Count = %d, want 42", c.Count.Get())
	}
	if err := acts["set"]("x"); err == nil {
		t.Error("set with a non-number should fail")
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		action string
		arg    string
		code   string
	}{
		{"ok", "set", "7", ""},
		{"bad argument", "set", "x", "E142"},
		{"unknown action", "explode", "", "E142"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(Counter(), tt.action, tt.arg)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Run() error = %v", err)
				}
				return
			}
			var werr *werrors.Error
			if !errors.As(err, &werr) || werr.Code != tt.code {
				t.Errorf("Run() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFruits(t *testing.T) {
	f := Fruits("apple", "banana")
	h := vtest.New(t).Mount(f.Build())
	h.ExpectContains("<div>0: apple<button>X</button></div><div>1: banana<button>X</button></div><!--repeat node-->")
	h.ExpectNotContains("no fruit")

	// buttons: add, X(apple), X(banana)
	h.Click("button", 1)
	h.ExpectContains("<div>0: banana<button>X</button></div><!--repeat node-->")

	h.Input("input", 0, "cherry").Click("button", 0)
	h.ExpectContains("<div>1: cherry<button>X</button></div>")
	if f.Draft.Get() != "" {
		t.Errorf("Draft = %q, want cleared", f.Draft.Get())
	}
	if v := h.Property("input", 0, "value"); v != "" {
		t.Errorf("input value = %v, want cleared", v)
	}

	if err := f.Actions()["clear"](""); err != nil {
		t.Fatal(err)
	}
	h.ExpectContains("<p>no fruit</p>")
}

func TestFruitsActions(t *testing.T) {
	f := Fruits("apple")
	h := vtest.New(t).Mount(f.Build())
	acts := f.Actions()

	tests := []struct {
		action  string
		arg     string
		wantErr bool
	}{
		{"add", "kiwi", false},
		{"add", "   ", false},
		{"rename", "0=pear", false},
		{"rename", "pear", true},
		{"rename", "x=pear", true},
		{"remove", "5", true},
		{"remove", "x", true},
		{"remove", "1", false},
	}
	for _, tt := range tests {
		err := acts[tt.action](tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s(%q) error = %v, wantErr %v", tt.action, tt.arg, err, tt.wantErr)
		}
	}
	if got := f.Fruits.Items(); len(got) != 1 || got[0].Name != "pear" {
		t.Errorf("Fruits = %v, want [pear]", got)
	}
	h.ExpectContains("<div>0: pear<button>X</button></div><!--repeat node-->")
}

func TestTodo(t *testing.T) {
	d := Todo()
	h := vtest.New(t).Mount(d.Build())
	h.ExpectContains("<p>nothing to do</p>")
	h.ExpectContains("<p>0 left</p>")

	h.Input("input", 0, "write tests").Click("button", 0)
	h.Input("input", 0, "ship").Click("button", 0)
	h.ExpectNotContains("nothing to do")
	h.ExpectContains("<p>2 left</p>")

	// inputs: draft, checkbox(write tests), checkbox(ship)
	h.Click("input", 1)
	if it, _ := d.Items.At(0); !it.Done {
		t.Error("clicking the checkbox should mark the item done")
	}
	h.ExpectContains(`<li class="done">`)
	h.ExpectContains("<p>1 left</p>")
	if v := h.Property("input", 1, "checked"); v != true {
		t.Errorf("checked = %v, want true", v)
	}

	// buttons: add, delete, delete, clear done
	h.Click("button", 3)
	if n := d.Items.Len(); n != 1 {
		t.Fatalf("items after clear done = %d, want 1", n)
	}
	h.ExpectContains("<span>ship</span>")
	h.ExpectNotContains("write tests")

	h.Click("button", 1)
	h.ExpectContains("<p>nothing to do</p>")
	h.ExpectContains("<p>0 left</p>")
}

func TestTodoActions(t *testing.T) {
	d := Todo()
	acts := d.Actions()
	for _, title := range []string{"a", "b", "c"} {
		if err := acts["add"](title); err != nil {
			t.Fatal(err)
		}
	}
	if err := acts["toggle"]("1"); err != nil {
		t.Fatal(err)
	}
	if d.Remaining().Get() != 2 {
		t.Errorf("Remaining() = %d, want 2", d.Remaining().Get())
	}
	if err := acts["toggle"]("9"); err == nil {
		t.Error("toggle out of range should fail")
	}
	if err := acts["clear-done"](""); err != nil {
		t.Fatal(err)
	}
	if d.Items.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Items.Len())
	}
}

package dom

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"golang.org/x/net/html"
)

func mustInner(t *testing.T, d *Document, n *html.Node) string {
	t.Helper()
	s, err := d.InnerHTML(n)
	if err != nil {
		t.Fatalf("InnerHTML: %v", err)
	}
	return s
}

func TestInsertBeforeAndSerialize(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("div")
	ul := d.CreateElement("UL")
	li := d.CreateElement("li")
	span := d.CreateElement("span")

	d.AppendChild(root, span)
	d.InsertBefore(root, ul, span)
	d.AppendChild(ul, li)

	if got, want := mustInner(t, d, root), "<ul><li></li></ul><span></span>"; got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestInsertMovesAttachedNode(t *testing.T) {
	d := NewDocument()
	a := d.CreateElement("div")
	b := d.CreateElement("div")
	p := d.CreateElement("p")

	d.AppendChild(a, p)
	d.AppendChild(b, p)

	if a.FirstChild != nil {
		t.Error("node should have been moved out of its old parent")
	}
	if p.Parent != b {
		t.Error("node should be attached to the new parent")
	}
}

func TestRemoveAndRelease(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("div")
	btn := d.CreateElement("button")
	d.AppendChild(root, btn)
	d.SetProperty(btn, "disabled", true)
	d.AddEventListener(btn, "click", func(*Event) {})

	d.Remove(btn)
	d.Remove(btn) // detached: no-op
	d.Release(btn)

	if root.FirstChild != nil {
		t.Error("button should be removed")
	}
	if _, ok := d.Property(btn, "disabled"); ok {
		t.Error("Release should drop properties")
	}
	if d.ListenerCount(btn, "click") != 0 {
		t.Error("Release should drop listeners")
	}
}

func TestAttributesAndClasses(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("div")

	d.SetAttribute(n, "id", "a")
	d.SetAttribute(n, "id", "b")
	if v, _ := d.Attribute(n, "id"); v != "b" {
		t.Errorf("id = %q", v)
	}
	d.RemoveAttribute(n, "id")
	if d.HasAttribute(n, "id") {
		t.Error("id should be removed")
	}

	d.AddClass(n, "one")
	d.AddClass(n, "two")
	d.AddClass(n, "one")
	if v, _ := d.Attribute(n, "class"); v != "one two" {
		t.Errorf("class = %q", v)
	}
	d.ToggleClass(n, "one", false)
	if d.HasClass(n, "one") || !d.HasClass(n, "two") {
		t.Errorf("class after toggle = %v", n.Attr)
	}
}

func TestTextContentAndComments(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("div")
	d.AppendChild(root, d.CreateText("a < b"))
	d.AppendChild(root, d.CreateComment("if node"))
	p := d.CreateElement("p")
	d.AppendChild(p, d.CreateText("!"))
	d.AppendChild(root, p)

	if got := d.TextContent(root); got != "a < b!" {
		t.Errorf("TextContent = %q", got)
	}
	if got, want := mustInner(t, d, root), "a &lt; b<!--if node--><p>!</p>"; got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestDispatchBubbles(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("div")
	inner := d.CreateElement("button")
	d.AppendChild(outer, inner)

	var trace []string
	d.AddEventListener(inner, "click", func(ev *Event) {
		trace = append(trace, "inner:"+ev.CurrentTarget.Data)
	})
	d.AddEventListener(outer, "click", func(ev *Event) {
		trace = append(trace, "outer:"+ev.Target.Data)
	})

	d.Click(inner)

	if want := []string{"inner:button", "outer:button"}; !reflect.DeepEqual(trace, want) {
		t.Errorf("trace = %v, want %v", trace, want)
	}
}

func TestStopPropagation(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("div")
	inner := d.CreateElement("button")
	d.AppendChild(outer, inner)

	reached := false
	d.AddEventListener(inner, "click", func(ev *Event) { ev.StopPropagation() })
	d.AddEventListener(outer, "click", func(*Event) { reached = true })

	d.Click(inner)
	if reached {
		t.Error("event should not reach the outer element")
	}
}

func TestRemoveEventListener(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("button")
	calls := 0
	remove := d.AddEventListener(n, "click", func(*Event) { calls++ })

	d.Click(n)
	remove()
	remove()
	d.Click(n)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestClickTogglesCheckbox(t *testing.T) {
	d := NewDocument()
	box := d.CreateElement("input")
	d.SetAttribute(box, "type", "checkbox")

	var seen []any
	d.AddEventListener(box, "click", func(*Event) {
		v, _ := d.Property(box, "checked")
		seen = append(seen, v)
	})

	d.Click(box)
	d.Click(box)

	if want := []any{true, false}; !reflect.DeepEqual(seen, want) {
		t.Errorf("checked during click = %v, want %v", seen, want)
	}
}

func TestInputSetsValue(t *testing.T) {
	d := NewDocument()
	in := d.CreateElement("input")
	var got any
	d.AddEventListener(in, "input", func(*Event) { got, _ = d.Property(in, "value") })

	d.Input(in, "hello")
	if got != "hello" {
		t.Errorf("value during input = %v", got)
	}
}

func TestStrictOwner(t *testing.T) {
	d := NewDocument(WithStrictOwner(true))
	n := d.CreateElement("div")

	d.SetAttribute(n, "id", "ok")

	var wg sync.WaitGroup
	var recovered any
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { recovered = recover() }()
		d.SetAttribute(n, "id", "foreign")
	}()
	wg.Wait()

	err, ok := recovered.(error)
	if !ok || !errors.Is(err, ErrWrongGoroutine) {
		t.Fatalf("recovered = %v, want ErrWrongGoroutine", recovered)
	}
	if v, _ := d.Attribute(n, "id"); v != "ok" {
		t.Errorf("foreign write should not apply, id = %q", v)
	}
}

func TestNonStrictAllowsForeignGoroutine(t *testing.T) {
	d := NewDocument()
	n := d.CreateElement("div")
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.SetAttribute(n, "id", "x")
	}()
	<-done
	if v, _ := d.Attribute(n, "id"); v != "x" {
		t.Errorf("id = %q", v)
	}
}

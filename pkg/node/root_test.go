package node

import (
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/reactive"
)

type countingRecorder struct {
	mounted   map[string]int
	unmounted map[string]int
	bindings  int
	listOps   map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		mounted:   map[string]int{},
		unmounted: map[string]int{},
		listOps:   map[string]int{},
	}
}

func (r *countingRecorder) NodeMounted(kind string)             { r.mounted[kind]++ }
func (r *countingRecorder) NodeUnmounted(kind string)           { r.unmounted[kind]++ }
func (r *countingRecorder) BindingsAdded(n int)                 { r.bindings += n }
func (r *countingRecorder) BindingsReleased(n int)              { r.bindings -= n }
func (r *countingRecorder) ListOp(kind string)                  { r.listOps[kind]++ }
func (r *countingRecorder) Event(string, time.Duration, error) {}

func TestUnmountReleasesEverything(t *testing.T) {
	show := reactive.NewSignal(true)
	label := reactive.NewSignal("l")
	items := reactive.NewList(1, 2)
	clicks := 0

	h := newHarness(t)
	h.mount(
		El("button").On("click", func(*dom.Event) { clicks++ }).TextVal(label),
		If(show, func() Node { return El("span").AttrVal("title", label) }),
		Repeat(items, func(_ reactive.Var[int], i reactive.Val[int]) Node { return Textf("%d", i) }),
	)
	btn := h.find("button", 0)

	if err := h.tree.Unmount(); err != nil {
		t.Fatalf("Unmount() error: %v", err)
	}
	h.expect("")

	for name, n := range map[string]int{
		"show":  show.Subscribers(),
		"label": label.Subscribers(),
		"items": items.Subscribers(),
	} {
		if n != 0 {
			t.Errorf("%s subscribers after Unmount = %d, want 0", name, n)
		}
	}
	if n := h.doc.ListenerCount(btn, "click"); n != 0 {
		t.Errorf("click listeners after Unmount = %d, want 0", n)
	}
	if n := h.tree.Scope().Bindings(); n != 0 {
		t.Errorf("bindings = %d, want 0", n)
	}
}

func TestUnmountTwice(t *testing.T) {
	h := newHarness(t)
	if err := h.tree.Unmount(); !errors.Is(err, ErrNotMounted) {
		t.Errorf("Unmount() before mount = %v, want ErrNotMounted", err)
	}
	h.mount(Text("x"))
	if err := h.tree.Unmount(); err != nil {
		t.Fatalf("Unmount() error: %v", err)
	}
	if err := h.tree.Unmount(); !errors.Is(err, ErrNotMounted) {
		t.Errorf("second Unmount() = %v, want ErrNotMounted", err)
	}
}

func TestTreeChildrenTwice(t *testing.T) {
	h := newHarness(t)
	h.mount(Text("a"))
	if err := h.tree.Children(Text("b")); !errors.Is(err, ErrAlreadyMounted) {
		t.Errorf("second Children() = %v, want ErrAlreadyMounted", err)
	}
	h.expect("a")
}

func TestTreeNilChild(t *testing.T) {
	h := newHarness(t)
	err := h.tree.Children(Text("a"), nil)
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("Children() = %v, want ErrConfig", err)
	}
	h.expect("")
	if h.tree.Mounted() {
		t.Error("tree should not be mounted after a failed mount")
	}
}

func TestTreeKeepsExistingContent(t *testing.T) {
	h := newHarness(t)
	h.doc.AppendChild(h.root, h.doc.CreateElement("header"))
	h.mount(El("main"))
	h.expect("<header></header><main></main>")
	if err := h.tree.Unmount(); err != nil {
		t.Fatal(err)
	}
	h.expect("<header></header>")
}

func TestTreeMetrics(t *testing.T) {
	rec := newCountingRecorder()
	items := reactive.NewList("a")
	show := reactive.NewSignal(true)
	h := newHarness(t, WithMetrics(rec), WithTracer(noop.NewTracerProvider().Tracer("test")))
	h.mount(
		El("ul").Children(Repeat(items, func(item reactive.Var[string], _ reactive.Val[int]) Node {
			return El("li").TextVal(item)
		})),
		If(show, func() Node { return Text("shown") }),
	)

	if rec.mounted["element"] != 2 || rec.mounted["text"] != 2 || rec.mounted["repeat"] != 1 || rec.mounted["if"] != 1 {
		t.Errorf("mounted = %v", rec.mounted)
	}

	items.Append("b")
	if err := items.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if rec.listOps["add"] != 1 || rec.listOps["remove"] != 1 {
		t.Errorf("list ops = %v", rec.listOps)
	}
	if rec.unmounted["element"] != 1 || rec.unmounted["text"] != 1 {
		t.Errorf("unmounted after remove = %v", rec.unmounted)
	}

	if err := h.tree.Unmount(); err != nil {
		t.Fatal(err)
	}
	if rec.bindings != 0 {
		t.Errorf("live bindings after Unmount = %d, want 0", rec.bindings)
	}
	for kind, n := range rec.mounted {
		if rec.unmounted[kind] != n {
			t.Errorf("%s: mounted %d, unmounted %d", kind, n, rec.unmounted[kind])
		}
	}
}

func TestTreeHTML(t *testing.T) {
	h := newHarness(t)
	h.mount(El("p").Text("hi"))
	got, err := h.tree.HTML()
	if err != nil || got != "<p>hi</p>" {
		t.Errorf("HTML() = %q, %v", got, err)
	}
}

package node

import (
	"testing"

	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/reactive"
)

func TestStaticText(t *testing.T) {
	h := newHarness(t)
	h.mount(Text("hello"))
	h.expect("hello")

	if n := h.tree.Scope().Bindings(); n != 0 {
		t.Errorf("static text holds %d bindings, want 0", n)
	}
}

func TestDynamicText(t *testing.T) {
	v := reactive.NewSignal("a")
	h := newHarness(t)
	h.mount(TextVal(v))
	h.expect("a")

	v.Set("b")
	h.expect("b")

	v.Set("b")
	h.expect("b")
}

func TestTextfCounter(t *testing.T) {
	count := reactive.NewSignal(0)
	h := newHarness(t)
	h.mount(
		El("button").
			On("click", func(*dom.Event) { count.Update(func(n int) int { return n + 1 }) }).
			Children(Textf("clicked %d times", count)),
	)
	h.expect("<button>clicked 0 times</button>")

	btn := h.find("button", 0)
	h.doc.Click(btn)
	h.doc.Click(btn)
	h.expect("<button>clicked 2 times</button>")
}

func TestTextfMixedArguments(t *testing.T) {
	first := reactive.NewSignal("Ada")
	age := reactive.NewSignal(36)
	h := newHarness(t)
	h.mount(Textf("%s is %d (%s)", first, age, "static"))
	h.expect("Ada is 36 (static)")

	age.Set(37)
	h.expect("Ada is 37 (static)")
	first.Set("Grace")
	h.expect("Grace is 37 (static)")
}

func TestConcat(t *testing.T) {
	n := reactive.NewSignal(1)
	h := newHarness(t)
	h.mount(Concat("n=", n, ";"))
	h.expect("n=1;")
	n.Set(2)
	h.expect("n=2;")
}

func TestTextEscaping(t *testing.T) {
	h := newHarness(t)
	h.mount(Text("<b>&</b>"))
	h.expect("&lt;b&gt;&amp;&lt;/b&gt;")
}

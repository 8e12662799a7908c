package reactive

import (
	"reflect"
	"strconv"
	"testing"
)

func TestConst(t *testing.T) {
	c := Const("static")
	if c.Get() != "static" {
		t.Errorf("Get() = %q", c.Get())
	}
	if c.AnyValue() != "static" {
		t.Errorf("AnyValue() = %v", c.AnyValue())
	}

	called := false
	stop := c.Watch(func(string, string) { called = true })
	stop()
	c.WatchAny(func() { called = true })()
	if called {
		t.Error("constant watch should never fire")
	}
}

func TestMapRecomputesOnRead(t *testing.T) {
	src := NewSignal(2)
	calls := 0
	doubled := Map[int, int](src, func(n int) int {
		calls++
		return n * 2
	})

	if doubled.Get() != 4 {
		t.Errorf("Get() = %d, want 4", doubled.Get())
	}
	src.Set(5)
	if doubled.Get() != 10 {
		t.Errorf("Get() after upstream change = %d, want 10", doubled.Get())
	}
	_ = doubled.Get()
	if calls != 3 {
		t.Errorf("mapping function called %d times, want 3 (no memoization)", calls)
	}
}

func TestMapForwardsNotifications(t *testing.T) {
	src := NewSignal(1)
	label := Map[int, string](src, strconv.Itoa)

	var got [][2]string
	label.Watch(func(n, p string) { got = append(got, [2]string{n, p}) })

	src.Set(2)
	src.Set(3)

	want := [][2]string{{"2", "1"}, {"3", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

func TestMapNeverDrifts(t *testing.T) {
	src := NewSignal(0)
	sq := Map[int, int](src, func(n int) int { return n * n })

	sq.Watch(func(n, _ int) {
		if n != sq.Get() {
			t.Errorf("inside listener: new %d != Get() %d", n, sq.Get())
		}
	})

	for i := 0; i < 5; i++ {
		src.Set(i)
		if sq.Get() != i*i {
			t.Fatalf("Get() = %d, want %d", sq.Get(), i*i)
		}
	}
}

func TestMapChain(t *testing.T) {
	src := NewSignal(3)
	chained := Map(Map[int, int](src, func(n int) int { return n + 1 }), strconv.Itoa)

	calls := 0
	stop := chained.Watch(func(string, string) { calls++ })
	src.Set(9)
	stop()
	src.Set(10)

	if chained.Get() != "11" {
		t.Errorf("Get() = %q, want 11", chained.Get())
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if src.Subscribers() != 0 {
		t.Errorf("unsubscribing a derived value should release the upstream listener, got %d", src.Subscribers())
	}
}

func TestIs(t *testing.T) {
	n := NewSignal(0)
	positive := Is[int](n, func(v int) bool { return v > 0 })

	if positive.Get() {
		t.Error("expected false")
	}
	n.Set(3)
	if !positive.Get() {
		t.Error("expected true")
	}
}

func TestLens(t *testing.T) {
	type todo struct {
		Title string
		Done  bool
	}
	src := NewSignal(todo{Title: "write tests"})
	done := Lens[todo, bool](src,
		func(t todo) bool { return t.Done },
		func(d bool, t todo) todo { t.Done = d; return t },
	)

	var seen []bool
	done.Watch(func(n, _ bool) { seen = append(seen, n) })

	done.Set(true)

	if !src.Get().Done || src.Get().Title != "write tests" {
		t.Errorf("source = %+v", src.Get())
	}
	if !reflect.DeepEqual(seen, []bool{true}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestEraseAndString(t *testing.T) {
	n := NewSignal(42)
	if Erase[int](n).Get() != any(42) {
		t.Error("Erase should box the value")
	}
	s := String[int](n)
	n.Set(7)
	if s.Get() != "7" {
		t.Errorf("String() = %q", s.Get())
	}
}

func TestStatic(t *testing.T) {
	sig := NewSignal(1)
	tests := []struct {
		name string
		src  Source
		want bool
	}{
		{"const", Const("x"), true},
		{"signal", sig, false},
		{"map of const", Map(Const(2), func(n int) int { return n * 2 }), true},
		{"map of signal", Map[int, int](sig, func(n int) int { return n }), false},
		{"format of literals", Format("%s", "a"), true},
		{"format of const", Format("%v", Const(1)), true},
		{"format of signal", Format("%v", sig), false},
		{"list length", NewList[int]().Length(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Static(tt.src); got != tt.want {
				t.Errorf("Static() = %v, want %v", got, tt.want)
			}
		})
	}
}

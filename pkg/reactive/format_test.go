package reactive

import (
	"reflect"
	"testing"
)

func TestFormat(t *testing.T) {
	counter := NewSignal(1)
	label := Format("the counter is %v", counter)

	if label.Get() != "the counter is 1" {
		t.Errorf("Get() = %q", label.Get())
	}

	var got [][2]string
	label.Watch(func(n, p string) { got = append(got, [2]string{n, p}) })

	counter.Set(2)

	if label.Get() != "the counter is 2" {
		t.Errorf("Get() = %q", label.Get())
	}
	want := [][2]string{{"the counter is 2", "the counter is 1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
}

func TestFormatMultipleSources(t *testing.T) {
	a := NewSignal("x")
	b := NewSignal(0)
	s := Format("%s-%d-%s", a, b, "lit")

	calls := 0
	stop := s.Watch(func(string, string) { calls++ })
	a.Set("y")
	b.Set(3)

	if s.Get() != "y-3-lit" {
		t.Errorf("Get() = %q", s.Get())
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	stop()
	if a.Subscribers() != 0 || b.Subscribers() != 0 {
		t.Error("stop should release every upstream subscription")
	}
}

func TestFormatMappedArgument(t *testing.T) {
	type fruit struct{ Name string }
	item := NewSignal(fruit{Name: "apple"})
	index := NewSignal(0)
	s := Format("%v: %v", index, Map(item, func(f fruit) string { return f.Name }))

	if s.Get() != "0: apple" {
		t.Errorf("Get() = %q", s.Get())
	}
	index.Set(4)
	item.Set(fruit{Name: "pear"})
	if s.Get() != "4: pear" {
		t.Errorf("Get() = %q", s.Get())
	}
}

func TestConcat(t *testing.T) {
	n := NewSignal(7)
	s := Concat("n=", n, "!")
	if s.Get() != "n=7!" {
		t.Errorf("Get() = %q", s.Get())
	}
	n.Set(8)
	if s.Get() != "n=8!" {
		t.Errorf("Get() = %q", s.Get())
	}
}

func TestFormatStaticOnly(t *testing.T) {
	s := Format("%s", "plain")
	fired := false
	s.Watch(func(string, string) { fired = true })()
	if s.Get() != "plain" || fired {
		t.Errorf("static template: Get() = %q, fired = %v", s.Get(), fired)
	}
}

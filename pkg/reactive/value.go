package reactive

import "fmt"

// Listener receives the new and previous value of a reactive value.
type Listener[T any] func(newValue, prevValue T)

// Unsubscribe removes a listener. Calling it more than once is a no-op.
type Unsubscribe func()

// Source is the type-erased view of a reactive value. The render layer uses
// it to accept reactive and plain arguments in the same position.
type Source interface {
	// AnyValue returns the current value boxed in an interface.
	AnyValue() any

	// WatchAny registers fn to run after every change.
	WatchAny(fn func()) Unsubscribe
}

// Val is a read-only reactive value.
type Val[T any] interface {
	Source

	// Get returns the current value.
	Get() T

	// Watch registers l to be called with (new, prev) on every change.
	Watch(l Listener[T]) Unsubscribe
}

// Var is a reactive value that can be written.
type Var[T any] interface {
	Val[T]

	// Set stores v and notifies every listener.
	Set(v T)
}

// =============================================================================
// Constant
// =============================================================================

type constant[T any] struct {
	value T
}

// Const returns a reactive value that never changes. Its Watch never fires.
func Const[T any](v T) Val[T] {
	return constant[T]{value: v}
}

func (c constant[T]) Get() T                        { return c.value }
func (c constant[T]) Watch(Listener[T]) Unsubscribe { return noop }
func (c constant[T]) AnyValue() any                 { return c.value }
func (c constant[T]) WatchAny(func()) Unsubscribe   { return noop }
func (c constant[T]) static() bool                  { return true }

// Static reports whether src is known never to change: a Const, or a
// value derived only from constants. Binding code uses it to skip
// subscribing.
func Static(src Source) bool {
	s, ok := src.(interface{ static() bool })
	return ok && s.static()
}

// =============================================================================
// Derived
// =============================================================================

type mapped[T, U any] struct {
	src Val[T]
	fn  func(T) U
}

// Map returns a value derived from src by fn. The result owns no storage:
// Get applies fn to src's current value on every call, so it can never
// drift from its source. Watch forwards src's notifications with fn applied
// to both the new and the previous value.
func Map[T, U any](src Val[T], fn func(T) U) Val[U] {
	return &mapped[T, U]{src: src, fn: fn}
}

// Is returns a boolean view of src. It is Map specialised to predicates.
func Is[T any](src Val[T], pred func(T) bool) Val[bool] {
	return Map(src, pred)
}

// Erase boxes a typed value so it can feed an untyped binding such as an
// element property.
func Erase[T any](src Val[T]) Val[any] {
	return Map(src, func(v T) any { return v })
}

// String returns a view of src formatted with fmt.Sprint.
func String[T any](src Val[T]) Val[string] {
	return Map(src, func(v T) string { return fmt.Sprint(v) })
}

func (m *mapped[T, U]) Get() U {
	return m.fn(m.src.Get())
}

func (m *mapped[T, U]) Watch(l Listener[U]) Unsubscribe {
	if l == nil {
		return noop
	}
	return m.src.Watch(func(newValue, prevValue T) {
		l(m.fn(newValue), m.fn(prevValue))
	})
}

func (m *mapped[T, U]) AnyValue() any {
	return m.Get()
}

func (m *mapped[T, U]) WatchAny(fn func()) Unsubscribe {
	return m.src.WatchAny(fn)
}

func (m *mapped[T, U]) static() bool {
	return Static(m.src)
}

// =============================================================================
// Lens
// =============================================================================

type lens[T, U any] struct {
	mapped[T, U]
	dst Var[T]
	put func(U, T) T
}

// Lens returns a writable view of src. Reads behave like Map(src, get);
// Set(u) writes put(u, src.Get()) back to src, which notifies the lens's
// own listeners through src.
//
// Example:
//
//	type Todo struct{ Title string; Done bool }
//	done := reactive.Lens(todo,
//	    func(t Todo) bool { return t.Done },
//	    func(d bool, t Todo) Todo { t.Done = d; return t },
//	)
func Lens[T, U any](src Var[T], get func(T) U, put func(U, T) T) Var[U] {
	return &lens[T, U]{
		mapped: mapped[T, U]{src: src, fn: get},
		dst:    src,
		put:    put,
	}
}

func (l *lens[T, U]) Set(v U) {
	l.dst.Set(l.put(v, l.dst.Get()))
}

package reactive

// Signal is a mutable reactive value.
//
// Unlike derived values a Signal owns its storage. Every Set dispatches to
// the listeners registered at the time of the call, even when the new value
// equals the old one.
type Signal[T any] struct {
	// value is the current signal value.
	value T

	// subs are the listeners, in subscription order.
	subs subscribers[Listener[T]]
}

// NewSignal creates a new signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	return s.value
}

// Peek returns the current value. It is identical to Get.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set stores value and notifies every listener with (value, previous).
func (s *Signal[T]) Set(value T) {
	prev := s.value
	s.value = value
	s.subs.each(func(l Listener[T]) {
		l(value, prev)
	})
}

// Update sets the value to fn applied to the current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Watch registers l to be notified on every Set.
func (s *Signal[T]) Watch(l Listener[T]) Unsubscribe {
	if l == nil {
		return noop
	}
	return s.subs.add(l)
}

// AnyValue implements Source.
func (s *Signal[T]) AnyValue() any {
	return s.value
}

// WatchAny implements Source.
func (s *Signal[T]) WatchAny(fn func()) Unsubscribe {
	if fn == nil {
		return noop
	}
	return s.subs.add(func(T, T) { fn() })
}

// Subscribers returns the number of registered listeners.
func (s *Signal[T]) Subscribers() int {
	return s.subs.len()
}

package reactive

import "slices"

// subscription is one registered callback. active is cleared on
// unsubscribe so an in-flight dispatch can skip it.
type subscription[F any] struct {
	fn     F
	active bool
}

// subscribers is the ordered listener list shared by Signal and List.
type subscribers[F any] struct {
	subs []*subscription[F]
}

func (s *subscribers[F]) add(fn F) Unsubscribe {
	sub := &subscription[F]{fn: fn, active: true}
	s.subs = append(s.subs, sub)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		if i := slices.Index(s.subs, sub); i >= 0 {
			s.subs = slices.Delete(s.subs, i, i+1)
		}
	}
}

// each calls fn for every subscription registered when each was entered.
// The list is copied first so subscribing or unsubscribing from inside a
// callback never disturbs the iteration.
func (s *subscribers[F]) each(fn func(F)) {
	snapshot := slices.Clone(s.subs)
	for _, sub := range snapshot {
		if sub.active {
			fn(sub.fn)
		}
	}
}

func (s *subscribers[F]) len() int {
	return len(s.subs)
}

func noop() {}

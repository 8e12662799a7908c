package node

import (
	"slices"

	"github.com/vango-dev/weave/pkg/metrics"
	"github.com/vango-dev/weave/pkg/reactive"
)

// Scope owns the subscriptions, listeners and cleanups created while a
// subtree was mounted. Disposing a scope releases all of them, child
// scopes first, so an unmounted subtree leaves nothing subscribed.
//
// Scopes form a hierarchy mirroring the directive structure: the tree has
// a root scope and every subtree mounted by If or Repeat gets a child.
type Scope struct {
	parent   *Scope
	children []*Scope
	cleanups []func()
	bindings int
	disposed bool
	rec      metrics.Recorder
}

// NewScope creates a root scope reporting to rec. A nil rec records nothing.
func NewScope(rec metrics.Recorder) *Scope {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Scope{rec: rec}
}

// Child creates a scope that is disposed together with s.
func (s *Scope) Child() *Scope {
	c := &Scope{parent: s, rec: s.rec}
	if s.disposed {
		c.disposed = true
		return c
	}
	s.children = append(s.children, c)
	return c
}

// OnCleanup registers fn to run when the scope is disposed. If the scope
// is already disposed, fn runs immediately.
func (s *Scope) OnCleanup(fn func()) {
	if s.disposed {
		fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
}

// Track takes ownership of a reactive subscription.
func (s *Scope) Track(stop reactive.Unsubscribe) {
	if s.disposed {
		stop()
		return
	}
	s.bindings++
	s.rec.BindingsAdded(1)
	s.cleanups = append(s.cleanups, stop)
}

// Bindings returns the number of live subscriptions owned by s and its
// descendants.
func (s *Scope) Bindings() int {
	n := s.bindings
	for _, c := range s.children {
		n += c.Bindings()
	}
	return n
}

// Disposed reports whether Dispose has been called.
func (s *Scope) Disposed() bool {
	return s.disposed
}

// Dispose releases everything the scope owns. Children are disposed in
// reverse creation order, then cleanups run in reverse registration order.
// Calling Dispose more than once has no effect.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	if s.parent != nil {
		s.parent.removeChild(s)
	}

	children := s.children
	s.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	cleanups := s.cleanups
	s.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	if s.bindings > 0 {
		s.rec.BindingsReleased(s.bindings)
		s.bindings = 0
	}
}

func (s *Scope) removeChild(c *Scope) {
	if i := slices.Index(s.children, c); i >= 0 {
		s.children = slices.Delete(s.children, i, i+1)
	}
}

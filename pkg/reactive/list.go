package reactive

import "slices"

// OpKind identifies a structural edit in a Diff.
type OpKind uint8

const (
	OpAdd    OpKind = iota // Item inserted at Index
	OpRemove               // Item removed from Index
	OpSet                  // Item replaced in place at Index
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	default:
		return "unknown"
	}
}

// Op is a single structural edit. For OpRemove, Item holds the removed
// element.
type Op[T any] struct {
	Kind  OpKind
	Index int
	Item  T
}

// Diff describes one List mutation. Items is the sequence after every op
// has been applied. Each op's Index refers to the sequence as it stands
// after the ops before it in the same Diff.
//
// Version numbers mutations consecutively. A mutation made by a watcher
// is dispatched before the rest of the watchers see the mutation that
// triggered it, so watchers that replay ops must apply diffs in Version
// order.
type Diff[T any] struct {
	Items   []T
	Ops     []Op[T]
	Version uint64
}

// List is an observable ordered sequence. Mutations apply the edit first and
// then notify every watcher with exactly one Diff.
type List[T any] struct {
	items   []T
	version uint64
	subs    subscribers[func(Diff[T])]
}

// NewList creates a list holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Items returns a copy of the current sequence.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// Version returns the Version of the last Diff emitted, or 0 before the
// first mutation. Items and Version together describe a state that later
// diffs build on.
func (l *List[T]) Version() uint64 {
	return l.version
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at index.
func (l *List[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, rangeError("at", index, len(l.items))
	}
	return l.items[index], nil
}

// InsertAt inserts item so that it becomes element index, shifting later
// items up. Valid indexes are 0 through Len() inclusive.
func (l *List[T]) InsertAt(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return rangeError("insert", index, len(l.items))
	}
	l.items = slices.Insert(l.items, index, item)
	l.emit(Op[T]{Kind: OpAdd, Index: index, Item: item})
	return nil
}

// Append adds item at the end.
func (l *List[T]) Append(item T) {
	// Len() is always a valid insertion point.
	_ = l.InsertAt(len(l.items), item)
}

// RemoveAt deletes the item at index, shifting later items down.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return rangeError("remove", index, len(l.items))
	}
	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	l.emit(Op[T]{Kind: OpRemove, Index: index, Item: removed})
	return nil
}

// SetAt replaces the item at index without changing the structure.
func (l *List[T]) SetAt(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return rangeError("set", index, len(l.items))
	}
	l.items[index] = item
	l.emit(Op[T]{Kind: OpSet, Index: index, Item: item})
	return nil
}

// Reset replaces the whole sequence. Watchers receive a single Diff that
// removes every old item (each at index 0) and then adds every new one.
func (l *List[T]) Reset(items []T) {
	ops := make([]Op[T], 0, len(l.items)+len(items))
	for _, old := range l.items {
		ops = append(ops, Op[T]{Kind: OpRemove, Index: 0, Item: old})
	}
	for i, item := range items {
		ops = append(ops, Op[T]{Kind: OpAdd, Index: i, Item: item})
	}
	l.items = slices.Clone(items)
	l.emit(ops...)
}

// Clear removes every item.
func (l *List[T]) Clear() {
	l.Reset(nil)
}

// Watch registers fn to receive every Diff.
func (l *List[T]) Watch(fn func(Diff[T])) Unsubscribe {
	if fn == nil {
		return noop
	}
	return l.subs.add(fn)
}

// Subscribers returns the number of registered watchers.
func (l *List[T]) Subscribers() int {
	return l.subs.len()
}

// Length returns a reactive view of Len.
func (l *List[T]) Length() Val[int] {
	return listLength[T]{l}
}

func (l *List[T]) emit(ops ...Op[T]) {
	l.version++
	diff := Diff[T]{Items: slices.Clone(l.items), Ops: ops, Version: l.version}
	l.subs.each(func(fn func(Diff[T])) {
		fn(diff)
	})
}

type listLength[T any] struct {
	l *List[T]
}

func (n listLength[T]) Get() int      { return len(n.l.items) }
func (n listLength[T]) AnyValue() any { return len(n.l.items) }

func (n listLength[T]) Watch(fn Listener[int]) Unsubscribe {
	if fn == nil {
		return noop
	}
	return n.l.Watch(func(d Diff[T]) {
		prev := len(d.Items)
		for _, op := range d.Ops {
			switch op.Kind {
			case OpAdd:
				prev--
			case OpRemove:
				prev++
			}
		}
		fn(len(d.Items), prev)
	})
}

func (n listLength[T]) WatchAny(fn func()) Unsubscribe {
	if fn == nil {
		return noop
	}
	return n.l.Watch(func(Diff[T]) { fn() })
}

type listView[T, U any] struct {
	l  *List[T]
	fn func([]T) U
}

// Derive returns a value computed from the whole sequence of l. Like Map
// it owns no storage: Get applies fn to a copy of the current items on
// every call. It notifies once per diff.
//
//	left := reactive.Derive(todos, func(ts []Todo) int {
//	    n := 0
//	    for _, t := range ts {
//	        if !t.Done {
//	            n++
//	        }
//	    }
//	    return n
//	})
func Derive[T, U any](l *List[T], fn func(items []T) U) Val[U] {
	return listView[T, U]{l: l, fn: fn}
}

func (v listView[T, U]) Get() U        { return v.fn(v.l.Items()) }
func (v listView[T, U]) AnyValue() any { return v.Get() }

func (v listView[T, U]) Watch(fn Listener[U]) Unsubscribe {
	if fn == nil {
		return noop
	}
	prev := v.Get()
	return v.l.Watch(func(d Diff[T]) {
		next := v.fn(slices.Clone(d.Items))
		p := prev
		prev = next
		fn(next, p)
	})
}

func (v listView[T, U]) WatchAny(fn func()) Unsubscribe {
	if fn == nil {
		return noop
	}
	return v.l.Watch(func(Diff[T]) { fn() })
}

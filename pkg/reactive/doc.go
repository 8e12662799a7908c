// Package reactive provides the observable primitives weave binds to the DOM.
//
// There are three kinds of reactive value, all behind the Val[T] interface:
//
//	title := reactive.Const("Fruits")           // never changes
//	count := reactive.NewSignal(0)              // mutable
//	label := reactive.Map(count, strconv.Itoa)  // derived, recomputed on read
//
// Watch registers a listener that receives (newValue, prevValue) every time
// the value is written:
//
//	stop := count.Watch(func(n, prev int) { fmt.Println(prev, "->", n) })
//	count.Set(1) // prints "0 -> 1"
//	stop()
//
// # Dispatch
//
// Set commits the new value and then invokes every listener subscribed at
// the moment of the call, synchronously and in subscription order. Equal
// values are not filtered: every Set dispatches. Listeners added during a
// dispatch wait for the next one; listeners removed during a dispatch are
// skipped for the remainder of it. A listener may call Set again; nested
// dispatches run depth-first before the outer Set returns. A panicking
// listener aborts the rest of that dispatch and propagates out of Set with
// the new value already committed.
//
// # Lists
//
// List[T] is an ordered sequence that reports structural edits instead of
// snapshots. Each mutation emits exactly one Diff whose Ops describe what
// changed, in the order the edits were applied:
//
//	fruits := reactive.NewList("apple", "orange")
//	fruits.Watch(func(d reactive.Diff[string]) { ... })
//	fruits.Append("banana")  // Ops: [{OpAdd 2 banana}]
//	fruits.RemoveAt(0)       // Ops: [{OpRemove 0 apple}]
//
// # Thread Safety
//
// None of the primitives lock. A value and everything bound to it belong to
// a single goroutine, the same one that owns the document it is mounted in.
package reactive

package node

import (
	"cmp"
	"slices"

	"golang.org/x/net/html"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/reactive"
)

// repeatMarker is the data of the comment ending a repeat.
const repeatMarker = "repeat node"

type repeatNode[T any] struct {
	guard
	list  *reactive.List[T]
	build func(item reactive.Var[T], index reactive.Val[int]) Node
}

// Repeat mounts one subtree per item of list and keeps them in step with
// the list's diffs. An added item gets a new subtree at its position and a
// removed item's subtree is unmounted. A replaced item keeps its subtree,
// which sees the new value through its item accessor. Subtrees are
// followed by a permanent <!--repeat node--> comment.
//
// build receives the item accessor, which reads the item's current value
// and writes back through the list, and the item's index, which follows
// its position as siblings are inserted and removed.
//
//	node.Repeat(fruits, func(fruit reactive.Var[Fruit], i reactive.Val[int]) node.Node {
//	    return node.El("li").Children(node.Textf("%v: %v", i, reactive.Map(fruit, Fruit.Label)))
//	})
func Repeat[T any](list *reactive.List[T], build func(item reactive.Var[T], index reactive.Val[int]) Node) Node {
	if list == nil {
		panic(nilSource("repeat list"))
	}
	if build == nil {
		configPanic("E206", "nil repeat builder")
	}
	return &repeatNode[T]{list: list, build: build}
}

// entry is one mounted item.
type entry[T any] struct {
	frag  Fragment
	scope *Scope
	index *reactive.Signal[int]
	cell  *reactive.Signal[T]
	item  *itemRef[T]
}

type repeatFragment[T any] struct {
	entries []*entry[T]
	end     *html.Node

	// version is the list Version the entries reflect. Diffs delivered
	// ahead of their predecessors wait in pending.
	version  uint64
	pending  []reactive.Diff[T]
	applying bool
}

func (f *repeatFragment[T]) Nodes() []*html.Node {
	var out []*html.Node
	for _, e := range f.entries {
		out = append(out, e.frag.Nodes()...)
	}
	return append(out, f.end)
}

func (f *repeatFragment[T]) Last() *html.Node { return f.end }

func (n *repeatNode[T]) Mount(ctx *Context) (Fragment, error) {
	if err := n.claim("repeat"); err != nil {
		return nil, err
	}
	doc := ctx.Document()
	f := &repeatFragment[T]{
		end:     doc.CreateComment(repeatMarker),
		version: n.list.Version(),
	}
	ctx.Insert(f.end)
	ctx.mounted("repeat")

	for i, item := range n.list.Items() {
		if err := n.add(ctx, f, i, item); err != nil {
			for _, e := range f.entries {
				e.scope.Dispose()
				detach(doc, e.frag)
			}
			doc.Remove(f.end)
			return nil, err
		}
	}

	ctx.Scope().Track(n.list.Watch(func(d reactive.Diff[T]) {
		if err := n.receive(ctx, f, d); err != nil {
			panic(err)
		}
	}))
	ctx.Logger().Debug("repeat mounted", "directive", "repeat", "items", len(f.entries))
	return f, nil
}

// receive applies d once every earlier diff has been applied. A watcher
// that mutates the list while it is being dispatched makes later diffs
// arrive first, and so does a subtree mutating the list while it is
// being built; both wait in pending until their turn.
func (n *repeatNode[T]) receive(ctx *Context, f *repeatFragment[T], d reactive.Diff[T]) error {
	if d.Version <= f.version {
		return nil
	}
	i, _ := slices.BinarySearchFunc(f.pending, d.Version, func(p reactive.Diff[T], v uint64) int {
		return cmp.Compare(p.Version, v)
	})
	f.pending = slices.Insert(f.pending, i, d)
	if f.applying {
		return nil
	}

	f.applying = true
	defer func() { f.applying = false }()
	for len(f.pending) > 0 && f.pending[0].Version == f.version+1 {
		next := f.pending[0]
		f.pending = f.pending[1:]
		for _, op := range next.Ops {
			if err := n.apply(ctx, f, op); err != nil {
				return err
			}
		}
		f.version = next.Version
	}
	if len(f.pending) > 0 {
		ctx.Logger().Debug("repeat waiting for earlier diff",
			"directive", "repeat",
			"version", f.version,
			"pending", len(f.pending),
		)
	}
	return nil
}

func (n *repeatNode[T]) apply(ctx *Context, f *repeatFragment[T], op reactive.Op[T]) error {
	limit := len(f.entries)
	if op.Kind == reactive.OpAdd {
		limit++
	}
	if op.Index < 0 || op.Index >= limit {
		return werrors.New("E207").
			WithDetailf("%s at index %d with %d entries", op.Kind, op.Index, len(f.entries)).
			Wrap(reactive.ErrRange)
	}
	ctx.Metrics().ListOp(op.Kind.String())
	switch op.Kind {
	case reactive.OpAdd:
		if err := n.add(ctx, f, op.Index, op.Item); err != nil {
			return err
		}
		reindex(f, op.Index+1)
	case reactive.OpRemove:
		e := f.entries[op.Index]
		f.entries = slices.Delete(f.entries, op.Index, op.Index+1)
		e.item.removed = true
		e.scope.Dispose()
		detach(ctx.Document(), e.frag)
		reindex(f, op.Index)
	case reactive.OpSet:
		f.entries[op.Index].cell.Set(op.Item)
	}
	ctx.Logger().Debug("repeat applied",
		"directive", "repeat",
		"op", op.Kind.String(),
		"index", op.Index,
		"items", len(f.entries),
	)
	return nil
}

// add builds and mounts item at position i, before the entry currently
// there or before the end marker.
func (n *repeatNode[T]) add(ctx *Context, f *repeatFragment[T], i int, item T) error {
	ref := f.end
	if i < len(f.entries) {
		ref = First(f.entries[i].frag)
	}

	e := &entry[T]{
		index: reactive.NewSignal(i),
		cell:  reactive.NewSignal(item),
		scope: ctx.Scope().Child(),
	}
	e.item = &itemRef[T]{list: n.list, index: e.index, cell: e.cell}

	child := n.build(e.item, e.index)
	if child == nil {
		e.scope.Dispose()
		return nilNode("repeat builder returned nil for item %d", i)
	}
	frag, err := child.Mount(ctx.At(f.end.Parent, ref).WithScope(e.scope))
	if err != nil {
		e.scope.Dispose()
		return err
	}
	e.frag = frag
	f.entries = slices.Insert(f.entries, i, e)
	return nil
}

// reindex rebinds the index of every entry from position from onward.
func reindex[T any](f *repeatFragment[T], from int) {
	for j := from; j < len(f.entries); j++ {
		if f.entries[j].index.Get() != j {
			f.entries[j].index.Set(j)
		}
	}
}

// itemRef is the accessor handed to a repeat builder. It reads the item
// cell and writes through the list so every observer sees the change.
type itemRef[T any] struct {
	list    *reactive.List[T]
	index   *reactive.Signal[int]
	cell    *reactive.Signal[T]
	removed bool
}

func (r *itemRef[T]) Get() T {
	return r.cell.Get()
}

func (r *itemRef[T]) Watch(l reactive.Listener[T]) reactive.Unsubscribe {
	return r.cell.Watch(l)
}

func (r *itemRef[T]) AnyValue() any {
	return r.cell.Get()
}

func (r *itemRef[T]) WatchAny(fn func()) reactive.Unsubscribe {
	return r.cell.WatchAny(fn)
}

// Set replaces the item in the list. It panics once the item has been
// removed from the list.
func (r *itemRef[T]) Set(v T) {
	if r.removed {
		panic(werrors.New("E205").WithDetail("item removed from its list").Wrap(ErrNotMounted))
	}
	if err := r.list.SetAt(r.index.Get(), v); err != nil {
		panic(err)
	}
}

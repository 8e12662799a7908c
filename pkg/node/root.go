package node

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/metrics"
)

const tracerName = "github.com/vango-dev/weave/pkg/node"

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used by the tree and its directives.
// Default: the document's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMetrics sets the recorder notified of mounts, bindings and list
// operations. Default: metrics.Nop.
func WithMetrics(rec metrics.Recorder) Option {
	return func(t *Tree) {
		if rec != nil {
			t.rec = rec
		}
	}
}

// WithTracer sets the tracer used for mount spans.
// Default: the global otel tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(t *Tree) {
		if tracer != nil {
			t.tracer = tracer
		}
	}
}

// Tree is a set of render nodes mounted into a target element.
type Tree struct {
	doc    *dom.Document
	target *html.Node
	logger *slog.Logger
	rec    metrics.Recorder
	tracer trace.Tracer

	scope   *Scope
	frags   []Fragment
	mounted bool
}

// Root returns a tree rendering into target. Nothing is mounted until
// Children is called.
func Root(doc *dom.Document, target *html.Node, opts ...Option) *Tree {
	t := &Tree{
		doc:    doc,
		target: target,
		logger: doc.Logger(),
		rec:    metrics.Nop{},
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Document returns the tree's document.
func (t *Tree) Document() *dom.Document { return t.doc }

// Target returns the element the tree renders into.
func (t *Tree) Target() *html.Node { return t.target }

// Scope returns the root scope of the mounted tree, or nil before Children.
func (t *Tree) Scope() *Scope { return t.scope }

// Mounted reports whether the tree currently holds mounted nodes.
func (t *Tree) Mounted() bool { return t.mounted }

// Children mounts nodes, in order, at the end of the target.
func (t *Tree) Children(nodes ...Node) error {
	return t.ChildrenContext(context.Background(), nodes...)
}

// ChildrenContext is Children with a parent context for tracing.
//
// On error every node mounted so far is unmounted again and the target is
// left as it was.
func (t *Tree) ChildrenContext(ctx context.Context, nodes ...Node) error {
	_, span := t.tracer.Start(ctx, "weave.mount",
		trace.WithAttributes(attribute.Int("weave.nodes", len(nodes))),
	)
	defer span.End()

	if t.mounted {
		err := werrors.New("E202").WithDetail("tree").Wrap(ErrAlreadyMounted)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	t.scope = NewScope(t.rec)
	mc := &Context{
		doc:    t.doc,
		parent: t.target,
		scope:  t.scope,
		logger: t.logger,
		rec:    t.rec,
	}
	for i, n := range nodes {
		var frag Fragment
		var err error
		if n == nil {
			err = nilNode("root child %d is nil", i)
		} else {
			frag, err = n.Mount(mc)
		}
		if err != nil {
			t.teardown()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			t.logger.Error("mount failed", "error", err)
			return err
		}
		t.frags = append(t.frags, frag)
	}

	t.mounted = true
	span.SetAttributes(attribute.Int("weave.bindings", t.scope.Bindings()))
	t.logger.Debug("tree mounted", "nodes", len(nodes), "bindings", t.scope.Bindings())
	return nil
}

// Unmount removes every mounted node and releases all subscriptions.
// It returns an error wrapping ErrNotMounted if nothing is mounted.
func (t *Tree) Unmount() error {
	if !t.mounted {
		return werrors.New("E205").Wrap(ErrNotMounted)
	}
	t.teardown()
	t.mounted = false
	t.logger.Debug("tree unmounted")
	return nil
}

func (t *Tree) teardown() {
	t.scope.Dispose()
	for _, f := range t.frags {
		detach(t.doc, f)
	}
	t.frags = nil
}

// HTML returns the markup currently rendered into the target.
func (t *Tree) HTML() (string, error) {
	return t.doc.InnerHTML(t.target)
}

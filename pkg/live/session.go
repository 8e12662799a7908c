package live

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"

	"github.com/vango-dev/weave/pkg/demo"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/metrics"
	"github.com/vango-dev/weave/pkg/node"
)

// session is one connection's document and tree. All of its methods run
// on the connection's goroutine.
type session struct {
	id     string
	conn   *websocket.Conn
	demo   demo.Demo
	doc    *dom.Document
	root   *html.Node
	tree   *node.Tree
	logger *slog.Logger
	rec    metrics.Recorder
	tracer trace.Tracer

	// broken is set once an event handler panics.
	broken bool
}

func (s *Server) open(ctx context.Context, conn *websocket.Conn) (*session, error) {
	d, err := demo.New(s.opts.Demo)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	logger := s.opts.Logger.With("session", id, "remote", conn.RemoteAddr().String())
	doc := dom.NewDocument(dom.WithLogger(logger), dom.WithStrictOwner(s.opts.StrictOwner))
	root := doc.CreateElement("main")
	tree := node.Root(doc, root, s.treeOptions()...)
	if err := tree.ChildrenContext(ctx, d.Build()); err != nil {
		return nil, err
	}
	logger.Debug("session opened", "demo", d.Name())
	return &session{
		id:     id,
		conn:   conn,
		demo:   d,
		doc:    doc,
		root:   root,
		tree:   tree,
		logger: logger,
		rec:    s.opts.Metrics,
		tracer: s.opts.Tracer,
	}, nil
}

// run replies with the initial markup, then handles messages until the
// connection fails or an event handler panics.
func (sess *session) run(ctx context.Context) {
	if err := sess.reply(nil); err != nil {
		return
	}
	for {
		var msg Message
		if err := sess.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Debug("read message", "error", err)
			}
			return
		}
		if err := sess.reply(sess.handle(ctx, msg)); err != nil {
			return
		}
		if sess.broken {
			return
		}
	}
}

// handle applies msg to the tree. A panicking handler leaves the tree in
// an unknown state and marks the session broken.
func (sess *session) handle(ctx context.Context, msg Message) (err error) {
	_, span := sess.tracer.Start(ctx, "weave.event",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("weave.session_id", sess.id),
			attribute.String("weave.demo", sess.demo.Name()),
			attribute.String("weave.event_type", msg.Type),
			attribute.String("weave.event_target", msg.Path),
		),
	)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panicked: %v", r)
			sess.broken = true
			sess.logger.Error("event handler panicked", "type", msg.Type, "path", msg.Path, "panic", r)
		}
		sess.rec.Event(msg.Type, time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()
	return sess.dispatch(msg)
}

func (sess *session) dispatch(msg Message) error {
	switch msg.Type {
	case MessageClick, MessageInput:
		path, err := dom.ParsePath(msg.Path)
		if err != nil {
			return err
		}
		target, err := sess.doc.NodeAt(sess.root, path)
		if err != nil {
			return err
		}
		if msg.Type == MessageClick {
			sess.doc.Click(target)
		} else {
			sess.doc.Input(target, msg.Value)
		}
		return nil
	case MessageAction:
		return demo.Run(sess.demo, msg.Action, msg.Arg)
	}
	return fmt.Errorf("unknown message type %q", msg.Type)
}

// reply sends the current markup, or the event error.
func (sess *session) reply(eventErr error) error {
	r := Reply{Type: ReplyHTML}
	if eventErr == nil {
		r.HTML, eventErr = sess.tree.HTML()
	}
	if eventErr != nil {
		r = errorReply(eventErr)
	}
	if err := sess.conn.WriteJSON(r); err != nil {
		sess.logger.Debug("write reply", "error", err)
		return err
	}
	return nil
}

func (sess *session) close() {
	if sess.tree.Mounted() && !sess.broken {
		if err := sess.tree.Unmount(); err != nil {
			sess.logger.Warn("unmount", "error", err)
		}
	}
	sess.conn.Close()
	sess.logger.Debug("session closed")
}

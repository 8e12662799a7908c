package live

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/weave/pkg/demo"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/metrics"
	"github.com/vango-dev/weave/pkg/node"
)

// Options configures a Server.
type Options struct {
	// Demo is the name of the demo served. Required.
	Demo string

	// Logger receives server and tree logs. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records tree and event metrics. Default: metrics.Nop.
	Metrics metrics.Recorder

	// Gatherer is exposed on /metrics. When nil the route is not mounted.
	Gatherer prometheus.Gatherer

	// Tracer traces mounts and events. Default: the global provider.
	Tracer trace.Tracer

	// StrictOwner makes each connection's document panic when mutated
	// from a goroutine other than the connection's.
	StrictOwner bool
}

// Server serves one demo to any number of connections.
type Server struct {
	opts     Options
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[*session]bool
}

// New creates a server. The demo name is checked eagerly.
func New(opts Options) (*Server, error) {
	if _, err := demo.New(opts.Demo); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}
	if opts.Tracer == nil {
		opts.Tracer = otel.Tracer("github.com/vango-dev/weave/pkg/live")
	}
	return &Server{
		opts:     opts,
		sessions: make(map[*session]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}, nil
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if s.opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// Sessions returns the number of open connections.
func (s *Server) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close closes every open connection.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sess := range s.sessions {
		sess.conn.Close()
		delete(s.sessions, sess)
	}
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.opts.Logger.Info("serving demo", "demo", s.opts.Demo, "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.Close()
	if err := srv.Shutdown(context.Background()); err != nil {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	markup, err := s.render(r.Context())
	if err != nil {
		s.opts.Logger.Error("render page", "demo", s.opts.Demo, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := writePage(w, s.opts.Demo, markup); err != nil {
		s.opts.Logger.Warn("write page", "error", err)
	}
}

// render mounts a fresh demo and returns its markup.
func (s *Server) render(ctx context.Context) (string, error) {
	d, err := demo.New(s.opts.Demo)
	if err != nil {
		return "", err
	}
	doc := dom.NewDocument(dom.WithLogger(s.opts.Logger))
	tree := node.Root(doc, doc.CreateElement("main"), s.treeOptions()...)
	if err := tree.ChildrenContext(ctx, d.Build()); err != nil {
		return "", err
	}
	defer func() {
		if err := tree.Unmount(); err != nil {
			s.opts.Logger.Warn("unmount page", "demo", s.opts.Demo, "error", err)
		}
	}()
	return tree.HTML()
}

func (s *Server) treeOptions() []node.Option {
	return []node.Option{
		node.WithLogger(s.opts.Logger),
		node.WithMetrics(s.opts.Metrics),
		node.WithTracer(s.opts.Tracer),
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.opts.Logger.Debug("websocket upgrade", "error", err)
		return
	}

	sess, err := s.open(r.Context(), conn)
	if err != nil {
		s.opts.Logger.Error("open session", "error", err)
		if werr := conn.WriteJSON(errorReply(err)); werr != nil {
			s.opts.Logger.Debug("write reply", "error", werr)
		}
		conn.Close()
		return
	}

	s.mu.Lock()
	s.sessions[sess] = true
	s.mu.Unlock()

	sess.run(r.Context())

	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
	sess.close()
}

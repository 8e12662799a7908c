// Package metrics records render-tree activity.
//
// The node package reports every mount, unmount, binding and list operation
// to a Recorder. Nop discards them; Prometheus exports them as counters and
// gauges on a prometheus.Registerer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives render-tree events.
type Recorder interface {
	// NodeMounted is called once per mounted node of the given kind
	// ("element", "text", "if", "repeat").
	NodeMounted(kind string)

	// NodeUnmounted is called once per unmounted node of the given kind.
	NodeUnmounted(kind string)

	// BindingsAdded is called when n reactive subscriptions are created.
	BindingsAdded(n int)

	// BindingsReleased is called when n reactive subscriptions are released.
	BindingsReleased(n int)

	// ListOp is called for every diff operation a repeat applies.
	ListOp(kind string)

	// Event is called after a DOM event dispatched from outside the tree
	// has been handled.
	Event(typ string, d time.Duration, err error)
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) NodeMounted(string) {}
func (Nop) NodeUnmounted(string) {}
func (Nop) BindingsAdded(int) {}
func (Nop) BindingsReleased(int) {}
func (Nop) ListOp(string) {}
func (Nop) Event(string, time.Duration, error) {}

// Config configures the Prometheus recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "weave").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for event duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "weave",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	mounted       *prometheus.CounterVec
	unmounted     *prometheus.CounterVec
	liveNodes     *prometheus.GaugeVec
	liveBindings  prometheus.Gauge
	listOps       *prometheus.CounterVec
	eventsTotal   *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
}

// NewPrometheus registers the weave collectors and returns a recorder
// that updates them.
//
// Metrics collected:
//   - weave_nodes_mounted_total: Counter of mounted nodes by kind
//   - weave_nodes_unmounted_total: Counter of unmounted nodes by kind
//   - weave_nodes_live: Gauge of currently mounted nodes by kind
//   - weave_bindings_live: Gauge of live reactive subscriptions
//   - weave_list_ops_total: Counter of list diff operations applied by kind
//   - weave_events_total: Counter of dispatched events by type and status
//   - weave_event_duration_seconds: Histogram of event handling duration
//
// Registering twice on the same registry panics, as promauto does.
func NewPrometheus(opts ...Option) *Prometheus {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Prometheus{
		mounted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_mounted_total",
			Help:        "Total number of render nodes mounted",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		unmounted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_unmounted_total",
			Help:        "Total number of render nodes unmounted",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		liveNodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_live",
			Help:        "Number of currently mounted render nodes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		liveBindings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bindings_live",
			Help:        "Number of live reactive subscriptions held by mounted nodes",
			ConstLabels: config.ConstLabels,
		}),

		listOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "list_ops_total",
			Help:        "Total number of list diff operations applied by repeat nodes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of dispatched DOM events",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "event_duration_seconds",
			Help:        "Event handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"type"}),
	}
}

func (p *Prometheus) NodeMounted(kind string) {
	p.mounted.WithLabelValues(kind).Inc()
	p.liveNodes.WithLabelValues(kind).Inc()
}

func (p *Prometheus) NodeUnmounted(kind string) {
	p.unmounted.WithLabelValues(kind).Inc()
	p.liveNodes.WithLabelValues(kind).Dec()
}

func (p *Prometheus) BindingsAdded(n int) {
	p.liveBindings.Add(float64(n))
}

func (p *Prometheus) BindingsReleased(n int) {
	p.liveBindings.Sub(float64(n))
}

func (p *Prometheus) ListOp(kind string) {
	p.listOps.WithLabelValues(kind).Inc()
}

func (p *Prometheus) Event(typ string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.eventsTotal.WithLabelValues(typ, status).Inc()
	p.eventDuration.WithLabelValues(typ).Observe(d.Seconds())
}

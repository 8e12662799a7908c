package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(WithRegistry(reg), WithNamespace("test"))

	p.NodeMounted("element")
	p.NodeMounted("element")
	p.NodeUnmounted("element")
	p.BindingsAdded(3)
	p.BindingsReleased(1)
	p.ListOp("add")
	p.Event("click", 5*time.Millisecond, nil)
	p.Event("click", time.Millisecond, errors.New("boom"))

	got := gather(t, reg)

	if v := got["test_nodes_mounted_total"].GetMetric()[0].GetCounter().GetValue(); v != 2 {
		t.Errorf("nodes_mounted_total = %v, want 2", v)
	}
	if v := got["test_nodes_live"].GetMetric()[0].GetGauge().GetValue(); v != 1 {
		t.Errorf("nodes_live = %v, want 1", v)
	}
	if v := got["test_bindings_live"].GetMetric()[0].GetGauge().GetValue(); v != 2 {
		t.Errorf("bindings_live = %v, want 2", v)
	}
	if n := len(got["test_events_total"].GetMetric()); n != 2 {
		t.Errorf("events_total series = %d, want 2 (success and error)", n)
	}
	if c := got["test_event_duration_seconds"].GetMetric()[0].GetHistogram().GetSampleCount(); c != 2 {
		t.Errorf("event_duration sample count = %d, want 2", c)
	}
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.NodeMounted("text")
	r.Event("input", 0, nil)
}

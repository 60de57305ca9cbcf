package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"levelkeeper/internal/metrics"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.New(reg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	r.Operation("add_experience", metrics.ResultOK)
	r.Operation("add_experience", metrics.ResultOK)
	r.LevelUp()
	r.LevelDown()
	r.LevelDown()
	r.PersistFailed()
	r.Members(4)

	n, err := testutil.GatherAndCount(reg)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Fatalf("want 5 series, got %d", n)
	}
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			}
		}
	}
	want := map[string]float64{
		"levelkeeper_operations_total/add_experience/ok": 2,
		"levelkeeper_level_transitions_total/up":         1,
		"levelkeeper_level_transitions_total/down":       2,
		"levelkeeper_persist_failures_total":             1,
		"levelkeeper_members":                            4,
	}
	for k, v := range want {
		if values[k] != v {
			t.Fatalf("%s: want %v, got %v", k, v, values[k])
		}
	}
}

func TestRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := metrics.New(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := metrics.New(reg); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *metrics.Recorder
	r.Operation("x", metrics.ResultOK)
	r.LevelUp()
	r.LevelDown()
	r.PersistFailed()
	r.Members(1)
}

// Package metrics defines the Prometheus collectors for member progression.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Result label values.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultDenied   = "denied"
	ResultError    = "error"
)

// Recorder holds the progression collectors. A nil *Recorder records nothing.
type Recorder struct {
	operations      *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	persistFailures prometheus.Counter
	members         prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelkeeper_operations_total",
				Help: "Progression operations by name and result",
			},
			[]string{"op", "result"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "levelkeeper_level_transitions_total",
				Help: "Threshold driven level changes",
			},
			[]string{"direction"},
		),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "levelkeeper_persist_failures_total",
			Help: "Member document writes that failed",
		}),
		members: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "levelkeeper_members",
			Help: "Members currently held in the table",
		}),
	}
	for _, c := range []prometheus.Collector{r.operations, r.transitions, r.persistFailures, r.members} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Operation counts one call of op with result.
func (r *Recorder) Operation(op, result string) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(op, result).Inc()
}

// LevelUp counts a threshold driven level increase.
func (r *Recorder) LevelUp() {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues("up").Inc()
}

// LevelDown counts a threshold driven level decrease.
func (r *Recorder) LevelDown() {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues("down").Inc()
}

// PersistFailed counts a failed document write.
func (r *Recorder) PersistFailed() {
	if r == nil {
		return
	}
	r.persistFailures.Inc()
}

// Members sets the current table size.
func (r *Recorder) Members(n int) {
	if r == nil {
		return
	}
	r.members.Set(float64(n))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics records per-action timing and outcome counters for the
// insights engine.
type AnalysisMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	rows     *prometheus.HistogramVec
}

// NewAnalysisMetrics registers the analysis metrics on the provided registerer.
func NewAnalysisMetrics(reg prometheus.Registerer) *AnalysisMetrics {
	if reg == nil {
		return &AnalysisMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Duration of insight analyses in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"action"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_success",
		Help: "Successful insight analysis runs.",
	}, []string{"action"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_failure",
		Help: "Failed insight analysis runs.",
	}, []string{"action"})
	rows := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_input_rows",
		Help:    "Sales rows fed into an analysis after normalization.",
		Buckets: prometheus.ExponentialBuckets(10, 10, 5),
	}, []string{"action"})
	reg.MustRegister(duration, success, failure, rows)
	return &AnalysisMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		rows:     rows,
	}
}

// ObserveDuration records the runtime for the named action.
func (m *AnalysisMetrics) ObserveDuration(action string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(action)).Observe(duration.Seconds())
}

// ObserveInputRows records how many normalized rows the analysis consumed.
func (m *AnalysisMetrics) ObserveInputRows(action string, n int) {
	if m == nil || m.rows == nil {
		return
	}
	m.rows.WithLabelValues(normalizeLabel(action)).Observe(float64(n))
}

// IncSuccess increments the success counter for the named action.
func (m *AnalysisMetrics) IncSuccess(action string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(action)).Inc()
}

// IncFailure increments the failure counter for the named action.
func (m *AnalysisMetrics) IncFailure(action string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(action)).Inc()
}

func normalizeLabel(action string) string {
	if action == "" {
		return "unknown"
	}
	return action
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestAnalysisMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAnalysisMetrics(reg)

	m.ObserveDuration("abc_class", 120*time.Millisecond)
	m.ObserveInputRows("abc_class", 42)
	m.IncSuccess("abc_class")
	m.IncFailure("")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	if fam, ok := byName["analysis_success"]; !ok {
		t.Fatal("analysis_success not registered")
	} else if fam.GetMetric()[0].GetCounter().GetValue() != 1 {
		t.Fatalf("expected one success, got %v", fam.GetMetric()[0].GetCounter().GetValue())
	}

	fam, ok := byName["analysis_failure"]
	if !ok {
		t.Fatal("analysis_failure not registered")
	}
	if label := fam.GetMetric()[0].GetLabel()[0].GetValue(); label != "unknown" {
		t.Fatalf("empty action should normalize to unknown, got %q", label)
	}

	if _, ok := byName["analysis_duration_seconds"]; !ok {
		t.Fatal("analysis_duration_seconds not registered")
	}
	if _, ok := byName["analysis_input_rows"]; !ok {
		t.Fatal("analysis_input_rows not registered")
	}
}

func TestNilRegistererIsSafe(t *testing.T) {
	m := NewAnalysisMetrics(nil)
	m.ObserveDuration("spike_days", time.Second)
	m.IncSuccess("spike_days")
	m.IncFailure("spike_days")
	m.ObserveInputRows("spike_days", 1)
}

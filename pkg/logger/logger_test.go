package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestContextFieldsPropagate(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "insights-test", Output: &buf})

	ctx := logg.WithTenantID(context.Background(), "tenant-1")
	ctx = logg.WithAction(ctx, "spike_days")
	logg.Info(ctx, "analysis.start")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["tenant_id"] != "tenant-1" {
		t.Errorf("expected tenant_id field, got %v", entry["tenant_id"])
	}
	if entry["action"] != "spike_days" {
		t.Errorf("expected action field, got %v", entry["action"])
	}
	if entry["service"] != "insights-test" {
		t.Errorf("expected service field, got %v", entry["service"])
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if got := ParseLevel("nonsense"); got.String() != "info" {
		t.Fatalf("expected info fallback, got %s", got)
	}
	if got := ParseLevel("debug"); got.String() != "debug" {
		t.Fatalf("expected debug, got %s", got)
	}
}

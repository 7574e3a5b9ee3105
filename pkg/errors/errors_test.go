package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnknownAction, http.StatusBadRequest},
		{CodeMissingTenant, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeDependency, cause, "fetch sales")

	if !errors.Is(err, cause) {
		t.Fatal("wrapped error should match its cause")
	}
	if err.Error() != "DEPENDENCY_ERROR: fetch sales" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeUnknownAction, "no such action")
	outer := fmt.Errorf("dispatch: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected typed error")
	}
	if typed.Code() != CodeUnknownAction {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, errors.New("root"), "top")
	d := Dump(err)
	if d.Code != CodeInternal {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected chain of 2, got %d", len(d.Chain))
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "bad params").WithDetails(map[string]any{"field": "ratio"})
	details, ok := err.Details().(map[string]any)
	if !ok || details["field"] != "ratio" {
		t.Fatalf("unexpected details %v", err.Details())
	}
}

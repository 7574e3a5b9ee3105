package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
	"github.com/salespulse/insights-backend/pkg/types"
)

func TestWriteSuccessWrapsDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteSuccess(rec, map[string]string{"status": "ok"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope types.SuccessEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestWriteErrorUsesCodeMetadata(t *testing.T) {
	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeUnknownAction, "unknown action").WithDetails(map[string]any{"action": "bogus"})

	WriteError(context.Background(), nil, rec, err)

	assert.Equal(t, 400, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "UNKNOWN_ACTION", envelope.Error.Code)
	assert.Equal(t, "unknown action", envelope.Error.Message)
	require.NotNil(t, envelope.Error.Details)
}

func TestWriteErrorMasksInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, errors.New("password=hunter2 leaked"))

	assert.Equal(t, 500, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	assert.Equal(t, "internal server error", envelope.Error.Message)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestWriteErrorNilDefaultsToInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, nil)

	assert.Equal(t, 500, rec.Code)
}

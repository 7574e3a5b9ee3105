package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/insights-backend/api/middleware"
	insightsvc "github.com/salespulse/insights-backend/internal/insights"
	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
)

type stubService struct {
	gotTenant string
	gotReq    insightsvc.Request
	result    *insightsvc.Result
	err       error
}

func (s *stubService) Run(_ context.Context, tenantID string, req insightsvc.Request) (*insightsvc.Result, error) {
	s.gotTenant = tenantID
	s.gotReq = req
	return s.result, s.err
}

func runThroughTenant(t *testing.T, svc insightsvc.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := middleware.TenantContext(nil)(Run(svc, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(body))
	req.Header.Set("X-Tenant-Id", "acme")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRunHappyPath(t *testing.T) {
	svc := &stubService{result: &insightsvc.Result{
		Action: insightsvc.ActionSalesOverview,
		Stats:  &insightsvc.OverviewStats{Units: 12, Revenue: 100, Orders: 4, AOV: 25},
	}}

	rec := runThroughTenant(t, svc, `{"action":"sales_overview","params":{"from":"2026-08-01","to":"2026-08-31"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acme", svc.gotTenant)
	assert.Equal(t, insightsvc.ActionSalesOverview, svc.gotReq.Action)
	assert.Equal(t, "2026-08-01", svc.gotReq.Params.From)

	var envelope struct {
		Data insightsvc.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data.Stats)
	assert.Equal(t, 12, envelope.Data.Stats.Units)
}

func TestRunRejectsMissingAction(t *testing.T) {
	svc := &stubService{}

	rec := runThroughTenant(t, svc, `{"params":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, svc.gotTenant)
}

func TestRunPropagatesServiceErrors(t *testing.T) {
	svc := &stubService{err: pkgerrors.New(pkgerrors.CodeUnknownAction, "unknown action")}

	rec := runThroughTenant(t, svc, `{"action":"bogus"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_ACTION")
}

func TestActionsCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	Actions()(rec, httptest.NewRequest(http.MethodGet, "/api/v1/insights/actions", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Actions []struct {
				Action   string         `json:"action"`
				Defaults map[string]any `json:"defaults"`
			} `json:"actions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Actions, len(insightsvc.SupportedActions()))

	byAction := map[string]map[string]any{}
	for _, item := range envelope.Data.Actions {
		byAction[item.Action] = item.Defaults
	}
	assert.Contains(t, byAction, "sales_overview")
	assert.Equal(t, float64(10), byAction["trend_risers"]["topN"])
	assert.Equal(t, float64(7), byAction["stockout_risk"]["coverDays"])
}

package insights

import (
	"net/http"

	"github.com/salespulse/insights-backend/api/middleware"
	"github.com/salespulse/insights-backend/api/responses"
	"github.com/salespulse/insights-backend/api/validators"
	insightsvc "github.com/salespulse/insights-backend/internal/insights"
	"github.com/salespulse/insights-backend/pkg/logger"
)

type runRequest struct {
	Action string            `json:"action" validate:"required"`
	Params insightsvc.Params `json:"params"`
}

// Run executes one analysis for the tenant in context.
func Run(service insightsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body runRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.Run(ctx, middleware.TenantIDFromContext(ctx), insightsvc.Request{
			Action: insightsvc.Action(body.Action),
			Params: body.Params,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type actionDescriptor struct {
	Action   string         `json:"action"`
	Defaults map[string]any `json:"defaults"`
}

// Actions lists the supported analysis actions and their default parameters.
func Actions() http.HandlerFunc {
	catalog := make([]actionDescriptor, 0, len(insightsvc.SupportedActions()))
	for _, action := range insightsvc.SupportedActions() {
		catalog = append(catalog, actionDescriptor{
			Action:   string(action),
			Defaults: insightsvc.ActionDefaults(action),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"actions": catalog})
	}
}

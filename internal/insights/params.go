package insights

import (
	"time"

	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
)

// Params is the raw, optional parameter set supplied by a caller. Absent
// values fall back to defaults; present values are clamped server-side rather
// than trusted.
type Params struct {
	From      string   `json:"from,omitempty"`
	To        string   `json:"to,omitempty"`
	MinQty    *int     `json:"minQty,omitempty"`
	Ratio     *float64 `json:"ratio,omitempty"`
	TopN      *int     `json:"topN,omitempty"`
	ADSDays   *int     `json:"adsDays,omitempty"`
	CoverDays *int     `json:"coverDays,omitempty"`
	MinStock  *int     `json:"minStock,omitempty"`
	StaleDays *int     `json:"staleDays,omitempty"`
}

const (
	defaultRangeDays = 30
	maxResultRows    = 500
	minTrendDays     = 7
	minOutlierSample = 10
)

var (
	minQtyBounds    = intBounds{def: 5, min: 1, max: 100000}
	topNBounds      = intBounds{def: 10, min: 1, max: 200}
	adsDaysBounds   = intBounds{def: 28, min: 7, max: 90}
	coverDaysBounds = intBounds{def: 7, min: 1, max: 60}
	minStockBounds  = intBounds{def: 10, min: 0, max: 1000000}
	staleDaysBounds = intBounds{def: 30, min: 7, max: 365}
	ratioBounds     = floatBounds{def: 2.5, min: 1.1, max: 50}
)

type intBounds struct {
	def, min, max int
}

func (b intBounds) clamp(v *int) int {
	if v == nil {
		return b.def
	}
	if *v < b.min {
		return b.min
	}
	if *v > b.max {
		return b.max
	}
	return *v
}

type floatBounds struct {
	def, min, max float64
}

func (b floatBounds) clamp(v *float64) float64 {
	if v == nil {
		return b.def
	}
	if *v < b.min {
		return b.min
	}
	if *v > b.max {
		return b.max
	}
	return *v
}

// resolvedParams carries the clamped, defaulted values an analysis actually
// runs with. From and To bound a closed interval of calendar days.
type resolvedParams struct {
	From      time.Time
	To        time.Time
	MinQty    int
	Ratio     float64
	TopN      int
	ADSDays   int
	CoverDays int
	MinStock  int
	StaleDays int
}

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

func resolveParams(p Params, now time.Time) (resolvedParams, error) {
	to := truncateToDay(now)
	if p.To != "" {
		parsed, ok := parseDay(p.To)
		if !ok {
			return resolvedParams{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date").WithDetails(map[string]any{"to": p.To})
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -(defaultRangeDays - 1))
	if p.From != "" {
		parsed, ok := parseDay(p.From)
		if !ok {
			return resolvedParams{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date").WithDetails(map[string]any{"from": p.From})
		}
		from = parsed
	}

	if to.Before(from) {
		return resolvedParams{}, pkgerrors.New(pkgerrors.CodeValidation, "to must not precede from")
	}

	return resolvedParams{
		From:      from,
		To:        to,
		MinQty:    minQtyBounds.clamp(p.MinQty),
		Ratio:     ratioBounds.clamp(p.Ratio),
		TopN:      topNBounds.clamp(p.TopN),
		ADSDays:   adsDaysBounds.clamp(p.ADSDays),
		CoverDays: coverDaysBounds.clamp(p.CoverDays),
		MinStock:  minStockBounds.clamp(p.MinStock),
		StaleDays: staleDaysBounds.clamp(p.StaleDays),
	}, nil
}

// appliedMeta echoes the parameters an analysis ran with, limited to the ones
// that action consumes.
func appliedMeta(action Action, p resolvedParams) map[string]any {
	meta := map[string]any{
		"from": p.From.Format(dayLayout),
		"to":   p.To.Format(dayLayout),
	}
	switch action {
	case ActionSpikeDays:
		meta["minQty"] = p.MinQty
		meta["ratio"] = p.Ratio
	case ActionTrendRisers, ActionTrendDecliners:
		meta["topN"] = p.TopN
		meta["minDays"] = minTrendDays
	case ActionStockoutRisk:
		meta["adsDays"] = p.ADSDays
		meta["coverDays"] = p.CoverDays
	case ActionSlowMovers:
		meta["minStock"] = p.MinStock
		meta["staleDays"] = p.StaleDays
	case ActionPriceOutliers:
		meta["minSamples"] = minOutlierSample
		meta["zThreshold"] = outlierZThreshold
	}
	return meta
}

// ActionDefaults exposes the default parameter values per action for the
// catalog endpoint.
func ActionDefaults(action Action) map[string]any {
	defaults := map[string]any{
		"rangeDays": defaultRangeDays,
	}
	switch action {
	case ActionSpikeDays:
		defaults["minQty"] = minQtyBounds.def
		defaults["ratio"] = ratioBounds.def
	case ActionTrendRisers, ActionTrendDecliners:
		defaults["topN"] = topNBounds.def
	case ActionStockoutRisk:
		defaults["adsDays"] = adsDaysBounds.def
		defaults["coverDays"] = coverDaysBounds.def
	case ActionSlowMovers:
		defaults["minStock"] = minStockBounds.def
		defaults["staleDays"] = staleDaysBounds.def
	}
	return defaults
}

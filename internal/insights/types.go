package insights

import "time"

// Action identifies one analysis the engine can run.
type Action string

const (
	ActionSalesOverview      Action = "sales_overview"
	ActionSpikeDays          Action = "spike_days"
	ActionTrendRisers        Action = "trend_risers"
	ActionTrendDecliners     Action = "trend_decliners"
	ActionSeasonalityWeekday Action = "seasonality_weekday"
	ActionSeasonalityMonth   Action = "seasonality_month"
	ActionStockoutRisk       Action = "stockout_risk"
	ActionSlowMovers         Action = "slow_movers"
	ActionABCClass           Action = "abc_class"
	ActionPriceOutliers      Action = "price_outliers"
	ActionChannelMix         Action = "channel_mix"
)

var allActions = []Action{
	ActionSalesOverview,
	ActionSpikeDays,
	ActionTrendRisers,
	ActionTrendDecliners,
	ActionSeasonalityWeekday,
	ActionSeasonalityMonth,
	ActionStockoutRisk,
	ActionSlowMovers,
	ActionABCClass,
	ActionPriceOutliers,
	ActionChannelMix,
}

// Valid reports whether the action is one the dispatcher knows.
func (a Action) Valid() bool {
	for _, known := range allActions {
		if a == known {
			return true
		}
	}
	return false
}

// SupportedActions lists every action the dispatcher accepts.
func SupportedActions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// RawRow is one persisted row as fetched, before canonicalization. Column
// names vary across the legacy ingestion paths; the normalizer resolves them.
type RawRow map[string]any

// Sale is one canonical transaction line. Rows that reach an analysis always
// have Qty > 0 and a non-snapshot channel; the normalizer enforces that once,
// upstream of every analysis.
type Sale struct {
	SaleDate    time.Time
	SKU         string
	ProductName string
	Qty         int
	UnitPrice   float64
	Revenue     float64
	Channel     string
}

// StockItem is the current on-hand snapshot for one SKU.
type StockItem struct {
	SKU         string
	ProductName string
	Qty         int
}

// Request is the engine's input shape, as consumed from the HTTP layer.
type Request struct {
	Action Action `json:"action"`
	Params Params `json:"params"`
}

// OverviewStats is the aggregate block returned by sales_overview.
type OverviewStats struct {
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	AOV     float64 `json:"aov"`
}

// Result is the engine's output shape, exposed to the HTTP layer. Rows holds
// the action-specific row slice; Meta echoes the parameters actually applied
// after clamping so clients can display them.
type Result struct {
	Action   Action         `json:"action"`
	Rows     any            `json:"rows,omitempty"`
	Stats    *OverviewStats `json:"stats,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
	AnswerKo string         `json:"answer_ko,omitempty"`
}

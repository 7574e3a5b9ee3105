package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/salespulse/insights-backend/pkg/logger"
	"github.com/salespulse/insights-backend/pkg/metrics"

	pkgerrors "github.com/salespulse/insights-backend/pkg/errors"
)

// DataSource fetches raw tenant rows for the engine. Implementations must
// return sales ordered by sale date then insertion order so analyses stay
// deterministic across runs.
type DataSource interface {
	FetchSales(ctx context.Context, tenantID string, from, to time.Time) ([]RawRow, error)
	FetchStock(ctx context.Context, tenantID string) ([]RawRow, error)
}

// Service runs one analysis per request on a tenant's data.
type Service interface {
	Run(ctx context.Context, tenantID string, req Request) (*Result, error)
}

type service struct {
	source  DataSource
	metrics *metrics.AnalysisMetrics
	logg    *logger.Logger
}

func NewService(source DataSource, analysisMetrics *metrics.AnalysisMetrics, logg *logger.Logger) (Service, error) {
	if source == nil {
		return nil, fmt.Errorf("insights service requires a data source")
	}
	if logg == nil {
		return nil, fmt.Errorf("insights service requires a logger")
	}
	return &service{
		source:  source,
		metrics: analysisMetrics,
		logg:    logg,
	}, nil
}

// actionsNeedingStock lists the analyses that join against the stock
// snapshot. Everything else runs on sales alone, so the extra fetch is
// skipped for them.
var actionsNeedingStock = map[Action]bool{
	ActionStockoutRisk: true,
	ActionSlowMovers:   true,
}

func (s *service) Run(ctx context.Context, tenantID string, req Request) (*Result, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeMissingTenant, "tenant id is required")
	}
	if !req.Action.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeUnknownAction, "unknown action").WithDetails(map[string]any{
			"action":    string(req.Action),
			"supported": SupportedActions(),
		})
	}

	ctx = s.logg.WithTenantID(ctx, tenantID)
	ctx = s.logg.WithAction(ctx, string(req.Action))

	params, err := resolveParams(req.Params, timeNowUTC())
	if err != nil {
		s.metrics.IncFailure(string(req.Action))
		return nil, err
	}

	started := time.Now()
	result, err := s.run(ctx, tenantID, req.Action, params)
	s.metrics.ObserveDuration(string(req.Action), time.Since(started))
	if err != nil {
		s.metrics.IncFailure(string(req.Action))
		s.logg.Error(ctx, "analysis failed", err)
		return nil, err
	}

	s.metrics.IncSuccess(string(req.Action))
	s.logg.Info(ctx, "analysis completed")
	return result, nil
}

func (s *service) run(ctx context.Context, tenantID string, action Action, params resolvedParams) (*Result, error) {
	rawSales, err := s.source.FetchSales(ctx, tenantID, params.From, params.To)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch sales")
	}
	sales := NormalizeSales(rawSales)
	s.metrics.ObserveInputRows(string(action), len(sales))

	var stock []StockItem
	if actionsNeedingStock[action] {
		rawStock, err := s.source.FetchStock(ctx, tenantID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch stock")
		}
		stock = NormalizeStock(rawStock)
	}

	result := &Result{
		Action: action,
		Meta:   appliedMeta(action, params),
	}

	switch action {
	case ActionSalesOverview:
		stats := salesOverview(sales)
		result.Stats = &stats
		result.AnswerKo = overviewAnswerKo(params, stats)
	case ActionSpikeDays:
		result.Rows = spikeDays(sales, params.MinQty, params.Ratio)
	case ActionTrendRisers:
		result.Rows = trendRanking(sales, params.TopN, false)
	case ActionTrendDecliners:
		result.Rows = trendRanking(sales, params.TopN, true)
	case ActionSeasonalityWeekday:
		result.Rows = seasonalityWeekday(sales)
	case ActionSeasonalityMonth:
		result.Rows = seasonalityMonth(sales)
	case ActionStockoutRisk:
		result.Rows = stockoutRisk(sales, stock, params.To, params.ADSDays, params.CoverDays)
	case ActionSlowMovers:
		result.Rows = slowMovers(sales, stock, params.To, params.MinStock, params.StaleDays)
	case ActionABCClass:
		result.Rows = abcClass(sales)
	case ActionPriceOutliers:
		result.Rows = priceOutliers(sales)
	case ActionChannelMix:
		result.Rows = channelMix(sales)
	default:
		// Valid() gates the dispatcher, so this is unreachable.
		return nil, pkgerrors.New(pkgerrors.CodeUnknownAction, "unknown action")
	}

	return result, nil
}

// overviewAnswerKo renders the overview stats as a one-line Korean summary
// for chat-style clients.
func overviewAnswerKo(params resolvedParams, stats OverviewStats) string {
	return fmt.Sprintf(
		"%s부터 %s까지 총 판매 수량 %d개, 매출 %.2f, 주문 %d건, 평균 주문 금액 %.0f입니다.",
		params.From.Format(dayLayout),
		params.To.Format(dayLayout),
		stats.Units,
		stats.Revenue,
		stats.Orders,
		stats.AOV,
	)
}

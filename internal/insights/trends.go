package insights

import "sort"

// TrendRow ranks one SKU by the OLS slope of its daily unit series.
type TrendRow struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"productName,omitempty"`
	Slope       float64 `json:"slope"`
	Days        int     `json:"days"`
}

// trendRanking ranks SKUs by the slope of units-per-day over the range.
// SKUs with fewer than minTrendDays distinct sale dates carry too little
// signal and are excluded. The series uses only days with sales, index-spaced
// rather than calendar-spaced. Ties keep input iteration order.
func trendRanking(sales []Sale, topN int, decliners bool) []TrendRow {
	groups := GroupBy(sales, func(s Sale) string { return s.SKU })

	rows := []TrendRow{}
	for _, sku := range groups.Keys() {
		bucket := groups.Get(sku)
		daily := RollupDaily(bucket)
		if len(daily) < minTrendDays {
			continue
		}
		days := sortedDays(daily)
		series := make([]float64, len(days))
		for i, day := range days {
			series[i] = float64(daily[day])
		}
		rows = append(rows, TrendRow{
			SKU:         sku,
			ProductName: bucket[0].ProductName,
			Slope:       round4(linregSlope(series)),
			Days:        len(days),
		})
	}

	if decliners {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Slope < rows[j].Slope })
	} else {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Slope > rows[j].Slope })
	}

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

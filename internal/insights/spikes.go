package insights

import "sort"

// SpikeRow flags one SKU-day whose unit sales jumped well above the SKU's
// recent baseline.
type SpikeRow struct {
	SKU      string  `json:"sku"`
	Date     string  `json:"date"`
	Qty      int     `json:"qty"`
	Baseline float64 `json:"baseline"`
	Ratio    float64 `json:"ratio"`
}

// spikeBaselineDays is how many preceding daily totals feed the baseline.
// Only days with sales count: a sparse seller's baseline window covers fewer
// real days, which keeps the baseline sensitive for that SKU.
const spikeBaselineDays = 7

// spikeDays scans each SKU's daily unit series and flags days whose total is
// at least minQty and at least ratio times the trailing baseline.
func spikeDays(sales []Sale, minQty int, ratio float64) []SpikeRow {
	groups := GroupBy(sales, func(s Sale) string { return s.SKU })

	rows := []SpikeRow{}
	for _, sku := range groups.Keys() {
		daily := RollupDaily(groups.Get(sku))
		days := sortedDays(daily)

		for i, day := range days {
			today := daily[day]
			if today < minQty {
				continue
			}
			start := i - spikeBaselineDays
			if start < 0 {
				start = 0
			}
			window := days[start:i]
			if len(window) == 0 {
				continue
			}
			var sum int
			for _, prior := range window {
				sum += daily[prior]
			}
			baseline := float64(sum) / float64(len(window))
			if baseline <= 0 {
				continue
			}
			r := float64(today) / baseline
			if r < ratio {
				continue
			}
			rows = append(rows, SpikeRow{
				SKU:      sku,
				Date:     day,
				Qty:      today,
				Baseline: round2(baseline),
				Ratio:    round2(r),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Ratio > rows[j].Ratio })
	return rows
}

package insights

import "sort"

// ABCRow classifies one SKU by its cumulative share of range revenue.
type ABCRow struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"productName,omitempty"`
	Revenue     float64 `json:"revenue"`
	Share       float64 `json:"share"`
	CumShare    float64 `json:"cumShare"`
	Class       string  `json:"class"`
}

// abcClass runs a Pareto classification over SKU revenue: A up to 80% of
// cumulative revenue, B up to 95%, C for the tail. The boundary is inclusive,
// the SKU that crosses a threshold still belongs to the better class. When
// total revenue is zero every SKU is class A.
func abcClass(sales []Sale) []ABCRow {
	groups := GroupBy(sales, func(s Sale) string { return s.SKU })

	rows := make([]ABCRow, 0, groups.Len())
	var total float64
	for _, sku := range groups.Keys() {
		bucket := groups.Get(sku)
		revenue := SumBy(bucket, func(s Sale) float64 { return s.Revenue })
		total += revenue
		rows = append(rows, ABCRow{
			SKU:         sku,
			ProductName: bucket[0].ProductName,
			Revenue:     revenue,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })

	// Accumulate revenue, not per-SKU shares: summing shares drifts by a few
	// ULPs and pushes exact-boundary SKUs over the threshold.
	var cumRevenue float64
	for i := range rows {
		cumRevenue += rows[i].Revenue
		share := 0.0
		cumShare := 0.0
		if total > 0 {
			share = rows[i].Revenue / total
			cumShare = cumRevenue / total
		}
		switch {
		case total == 0 || cumShare <= 0.80:
			rows[i].Class = "A"
		case cumShare <= 0.95:
			rows[i].Class = "B"
		default:
			rows[i].Class = "C"
		}
		rows[i].Revenue = round2(rows[i].Revenue)
		rows[i].Share = round4(share)
		rows[i].CumShare = round4(cumShare)
	}
	return rows
}

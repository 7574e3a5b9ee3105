package insights

import (
	"math"
	"sort"
)

// OutlierRow flags one sale whose unit price sits far from the SKU's median.
type OutlierRow struct {
	SKU         string  `json:"sku"`
	Date        string  `json:"date"`
	UnitPrice   float64 `json:"unitPrice"`
	MedianPrice float64 `json:"medianPrice"`
	RobustZ     float64 `json:"robustZ"`
}

// priceOutliers applies the MAD-based robust z-score to each SKU's unit
// prices. SKUs with fewer than minOutlierSample priced rows are skipped since
// the median and MAD are unstable on small samples. Rows at or beyond the
// threshold are returned with the largest deviations first, capped at
// maxResultRows.
func priceOutliers(sales []Sale) []OutlierRow {
	groups := GroupBy(sales, func(s Sale) string { return s.SKU })

	rows := []OutlierRow{}
	for _, sku := range groups.Keys() {
		bucket := groups.Get(sku)
		if len(bucket) < minOutlierSample {
			continue
		}
		prices := make([]float64, len(bucket))
		for i, sale := range bucket {
			prices[i] = sale.UnitPrice
		}
		med := median(prices)
		mad := medianAbsDeviation(prices, med)
		for _, sale := range bucket {
			z := robustZ(sale.UnitPrice, med, mad)
			if math.Abs(z) < outlierZThreshold {
				continue
			}
			rows = append(rows, OutlierRow{
				SKU:         sku,
				Date:        sale.SaleDate.Format(dayLayout),
				UnitPrice:   round2(sale.UnitPrice),
				MedianPrice: round2(med),
				RobustZ:     round2(z),
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].RobustZ) > math.Abs(rows[j].RobustZ)
	})
	if len(rows) > maxResultRows {
		rows = rows[:maxResultRows]
	}
	return rows
}

package insights

import "math"

// salesOverview aggregates the whole range into a single stat block. The
// order count equals the number of sale rows: the data model carries no order
// identifier, so line-level rows stand in for orders.
func salesOverview(sales []Sale) OverviewStats {
	units := 0
	for _, sale := range sales {
		units += sale.Qty
	}
	revenue := SumBy(sales, func(s Sale) float64 { return s.Revenue })
	orders := len(sales)

	aov := 0.0
	if orders > 0 {
		aov = math.Round(revenue / float64(orders))
	}

	return OverviewStats{
		Units:   units,
		Revenue: round2(revenue),
		Orders:  orders,
		AOV:     aov,
	}
}

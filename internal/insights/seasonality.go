package insights

import "sort"

// WeekdayRow aggregates sales for one day of the week, 0=Sunday.
type WeekdayRow struct {
	Weekday int     `json:"weekday"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// MonthRow aggregates sales for one YYYY-MM bucket present in the range.
type MonthRow struct {
	Month   string  `json:"month"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// seasonalityWeekday buckets sales by day of week. All seven rows are always
// returned, zero-filled, in weekday order.
func seasonalityWeekday(sales []Sale) []WeekdayRow {
	rows := make([]WeekdayRow, 7)
	for i := range rows {
		rows[i].Weekday = i
	}
	for _, sale := range sales {
		wd := int(sale.SaleDate.Weekday())
		rows[wd].Units += sale.Qty
		rows[wd].Revenue += sale.Revenue
	}
	for i := range rows {
		rows[i].Revenue = round2(rows[i].Revenue)
	}
	return rows
}

// seasonalityMonth buckets sales by calendar month. Only months with sales
// appear; lexicographic order over YYYY-MM equals chronological order.
func seasonalityMonth(sales []Sale) []MonthRow {
	groups := GroupBy(sales, func(s Sale) string { return s.SaleDate.Format("2006-01") })

	months := append([]string(nil), groups.Keys()...)
	sort.Strings(months)

	rows := make([]MonthRow, 0, len(months))
	for _, month := range months {
		bucket := groups.Get(month)
		units := 0
		for _, sale := range bucket {
			units += sale.Qty
		}
		rows = append(rows, MonthRow{
			Month:   month,
			Units:   units,
			Revenue: round2(SumBy(bucket, func(s Sale) float64 { return s.Revenue })),
		})
	}
	return rows
}

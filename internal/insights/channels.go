package insights

import "sort"

// ChannelRow summarizes one sales channel's contribution over the range.
type ChannelRow struct {
	Channel string  `json:"channel"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	AOV     float64 `json:"aov"`
}

// channelMix aggregates units, revenue and order count per channel. Each
// normalized row counts as one order. Channels are ranked by revenue with
// ties keeping first-seen order.
func channelMix(sales []Sale) []ChannelRow {
	groups := GroupBy(sales, func(s Sale) string { return s.Channel })

	rows := make([]ChannelRow, 0, groups.Len())
	for _, channel := range groups.Keys() {
		bucket := groups.Get(channel)
		units := 0
		for _, sale := range bucket {
			units += sale.Qty
		}
		revenue := SumBy(bucket, func(s Sale) float64 { return s.Revenue })
		aov := 0.0
		if len(bucket) > 0 {
			aov = revenue / float64(len(bucket))
		}
		rows = append(rows, ChannelRow{
			Channel: channel,
			Units:   units,
			Revenue: round2(revenue),
			Orders:  len(bucket),
			AOV:     round2(aov),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return rows
}

package insights

import (
	"sort"
	"time"
)

// StockoutRow projects days of stock cover left for one SKU at its recent
// sales velocity.
type StockoutRow struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"productName,omitempty"`
	Stock       int     `json:"stock"`
	ADS         float64 `json:"ads"`
	CoverDays   float64 `json:"coverDays"`
}

// stockoutRisk computes average daily sales over the trailing adsDays window
// ending at to, then flags stock items whose cover is at or below coverDays.
// SKUs without a stock row are skipped; the inclusion boundary is inclusive.
func stockoutRisk(sales []Sale, stock []StockItem, to time.Time, adsDays, coverDays int) []StockoutRow {
	windowStart := to.AddDate(0, 0, -(adsDays - 1))
	unitsBySKU := make(map[string]int)
	for _, sale := range sales {
		if sale.SaleDate.Before(windowStart) {
			continue
		}
		unitsBySKU[sale.SKU] += sale.Qty
	}

	rows := []StockoutRow{}
	for _, item := range stock {
		units := unitsBySKU[item.SKU]
		ads := float64(units) / float64(adsDays)
		if ads <= 0 {
			continue
		}
		cover := float64(item.Qty) / ads
		if cover > float64(coverDays) {
			continue
		}
		rows = append(rows, StockoutRow{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Stock:       item.Qty,
			ADS:         round2(ads),
			CoverDays:   round2(cover),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CoverDays < rows[j].CoverDays })
	return rows
}

package insights

import (
	"sort"
	"time"
)

// SlowMoverRow marks a stocked SKU with no recent sale.
type SlowMoverRow struct {
	SKU          string `json:"sku"`
	ProductName  string `json:"productName,omitempty"`
	Stock        int    `json:"stock"`
	LastSaleDate string `json:"lastSaleDate,omitempty"`
	StaleDays    int    `json:"staleDays,omitempty"`
}

// slowMovers lists stock items holding at least minStock units whose last
// sale predates the staleness cutoff (or that never sold in the range).
// Sorted by stock descending so the largest tied-up inventory leads; capped
// at maxResultRows.
func slowMovers(sales []Sale, stock []StockItem, to time.Time, minStock, staleDays int) []SlowMoverRow {
	lastSale := make(map[string]time.Time)
	for _, sale := range sales {
		if current, ok := lastSale[sale.SKU]; !ok || sale.SaleDate.After(current) {
			lastSale[sale.SKU] = sale.SaleDate
		}
	}

	cutoff := to.AddDate(0, 0, -(staleDays - 1))

	rows := []SlowMoverRow{}
	for _, item := range stock {
		if item.Qty < minStock {
			continue
		}
		last, sold := lastSale[item.SKU]
		if sold && !last.Before(cutoff) {
			continue
		}
		row := SlowMoverRow{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			Stock:       item.Qty,
		}
		if sold {
			row.LastSaleDate = last.Format(dayLayout)
			row.StaleDays = int(to.Sub(last).Hours() / 24)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Stock > rows[j].Stock })
	if len(rows) > maxResultRows {
		rows = rows[:maxResultRows]
	}
	return rows
}

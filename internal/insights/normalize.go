package insights

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// snapshotChannel tags inventory snapshot rows that share the sales table but
// are not sales.
const snapshotChannel = "snapshot"

// Candidate column names per canonical field, in priority order. Each legacy
// ingestion path named these slightly differently.
var (
	saleDateKeys    = []string{"sale_date", "saleDate", "date"}
	skuKeys         = []string{"sku", "product_sku", "productSku"}
	productNameKeys = []string{"product_name", "productname", "productName", "name"}
	qtyKeys         = []string{"qty", "quantity", "units"}
	unitPriceKeys   = []string{"unit_price", "unitPrice", "price"}
	revenueKeys     = []string{"revenue", "total", "amount"}
	channelKeys     = []string{"channel", "sales_channel"}
)

// NormalizeSales converts raw persisted rows into canonical sales. Malformed
// numeric fields coerce to 0 rather than erroring; snapshot rows and rows with
// a non-positive quantity are dropped from the sales stream. Rows whose sale
// date cannot be read are dropped as well, since nothing downstream can group
// them.
func NormalizeSales(rows []RawRow) []Sale {
	sales := make([]Sale, 0, len(rows))
	for _, row := range rows {
		day, ok := dateField(row, saleDateKeys)
		if !ok {
			continue
		}
		channel := stringField(row, channelKeys)
		if channel == snapshotChannel {
			continue
		}
		qty := int(numberField(row, qtyKeys))
		if qty <= 0 {
			continue
		}
		unitPrice := numberField(row, unitPriceKeys)
		revenue, ok := presentNumberField(row, revenueKeys)
		if !ok {
			revenue = float64(qty) * unitPrice
		}
		sales = append(sales, Sale{
			SaleDate:    day,
			SKU:         stringField(row, skuKeys),
			ProductName: stringField(row, productNameKeys),
			Qty:         qty,
			UnitPrice:   unitPrice,
			Revenue:     revenue,
			Channel:     channel,
		})
	}
	return sales
}

// NormalizeStock converts raw stock rows into canonical stock items. Quantity
// zero is legal here; only the SKU is required.
func NormalizeStock(rows []RawRow) []StockItem {
	items := make([]StockItem, 0, len(rows))
	for _, row := range rows {
		sku := stringField(row, skuKeys)
		if sku == "" {
			continue
		}
		items = append(items, StockItem{
			SKU:         sku,
			ProductName: stringField(row, productNameKeys),
			Qty:         int(numberField(row, qtyKeys)),
		})
	}
	return items
}

func stringField(row RawRow, keys []string) string {
	for _, key := range keys {
		if value, ok := row[key]; ok {
			switch v := value.(type) {
			case string:
				if trimmed := strings.TrimSpace(v); trimmed != "" {
					return trimmed
				}
			case []byte:
				if trimmed := strings.TrimSpace(string(v)); trimmed != "" {
					return trimmed
				}
			}
		}
	}
	return ""
}

// numberField coerces the first present candidate to a finite float64,
// returning 0 for anything unreadable.
func numberField(row RawRow, keys []string) float64 {
	for _, key := range keys {
		value, ok := row[key]
		if !ok || value == nil {
			continue
		}
		if f, ok := coerceNumber(value); ok {
			return f
		}
		return 0
	}
	return 0
}

// presentNumberField distinguishes a readable value from an absent or
// non-finite one, so callers can apply a fallback for the latter.
func presentNumberField(row RawRow, keys []string) (float64, bool) {
	for _, key := range keys {
		value, ok := row[key]
		if !ok || value == nil {
			continue
		}
		return coerceNumber(value)
	}
	return 0, false
}

func coerceNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case decimal.Decimal:
		f, _ = v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case []byte:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func dateField(row RawRow, keys []string) (time.Time, bool) {
	for _, key := range keys {
		value, ok := row[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case time.Time:
			return truncateToDay(v), true
		case string:
			if day, ok := parseDay(v); ok {
				return day, true
			}
		case []byte:
			if day, ok := parseDay(string(v)); ok {
				return day, true
			}
		}
	}
	return time.Time{}, false
}

func parseDay(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) > 10 {
		value = value[:10]
	}
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

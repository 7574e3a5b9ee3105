package insights

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const defaultFetchCap = 100000

// Repository reads tenant sales and stock rows from the relational store.
// Rows come back as generic maps so the normalizer can resolve the column
// aliases left behind by the legacy ingestion paths.
type Repository struct {
	conn     *gorm.DB
	fetchCap int
}

func NewRepository(conn *gorm.DB, fetchCap int) (*Repository, error) {
	if conn == nil {
		return nil, fmt.Errorf("repository requires a database connection")
	}
	if fetchCap <= 0 {
		fetchCap = defaultFetchCap
	}
	return &Repository{conn: conn, fetchCap: fetchCap}, nil
}

// FetchSales returns the tenant's sales rows inside the closed date range,
// ordered by sale date then id so repeated runs see identical input order.
func (r *Repository) FetchSales(ctx context.Context, tenantID string, from, to time.Time) ([]RawRow, error) {
	var rows []map[string]any
	err := r.conn.WithContext(ctx).
		Table("sales_records").
		Select("sale_date", "sku", "product_name", "qty", "unit_price", "revenue", "channel").
		Where("tenant_id = ?", tenantID).
		Where("sale_date >= ? AND sale_date <= ?", from.Format(dayLayout), to.Format(dayLayout)).
		Order("sale_date ASC, id ASC").
		Limit(r.fetchCap).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching sales rows: %w", err)
	}
	return toRawRows(rows), nil
}

// FetchStock returns the tenant's current stock snapshot ordered by sku.
func (r *Repository) FetchStock(ctx context.Context, tenantID string) ([]RawRow, error) {
	var rows []map[string]any
	err := r.conn.WithContext(ctx).
		Table("stock_levels").
		Select("sku", "product_name", "qty").
		Where("tenant_id = ?", tenantID).
		Order("sku ASC").
		Limit(r.fetchCap).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetching stock rows: %w", err)
	}
	return toRawRows(rows), nil
}

func toRawRows(rows []map[string]any) []RawRow {
	out := make([]RawRow, len(rows))
	for i, row := range rows {
		out[i] = RawRow(row)
	}
	return out
}

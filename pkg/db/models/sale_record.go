package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one merged transaction line as landed by the ingestion paths.
// Columns follow the oldest upload path's naming; newer aliases that arrive in
// ad-hoc payloads are resolved at read time by the insights normalizer.
type SaleRecord struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID    string          `gorm:"column:tenant_id;size:64;not null;index:idx_sales_tenant_date,priority:1"`
	SaleDate    time.Time       `gorm:"column:sale_date;type:date;not null;index:idx_sales_tenant_date,priority:2"`
	SKU         string          `gorm:"column:sku;size:128;not null"`
	ProductName string          `gorm:"column:product_name;not null;default:''"`
	Qty         int             `gorm:"column:qty;not null;default:0"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(14,2);not null;default:0"`
	Revenue     decimal.Decimal `gorm:"column:revenue;type:numeric(14,2);not null;default:0"`
	Channel     string          `gorm:"column:channel;size:32;not null;default:'web'"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (SaleRecord) TableName() string {
	return "sales_records"
}

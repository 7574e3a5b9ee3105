package models

import "time"

// StockLevel is the current on-hand snapshot per SKU. One row per
// (tenant, sku); upserted whenever a snapshot upload lands.
type StockLevel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TenantID    string    `gorm:"column:tenant_id;size:64;not null;uniqueIndex:idx_stock_tenant_sku,priority:1"`
	SKU         string    `gorm:"column:sku;size:128;not null;uniqueIndex:idx_stock_tenant_sku,priority:2"`
	ProductName string    `gorm:"column:product_name;not null;default:''"`
	Qty         int       `gorm:"column:qty;not null;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (StockLevel) TableName() string {
	return "stock_levels"
}

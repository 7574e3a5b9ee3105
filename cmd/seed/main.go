// Command seed loads a demo tenant with a month of synthetic sales and a
// stock snapshot, for local development against an empty database.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/salespulse/insights-backend/pkg/config"
	"github.com/salespulse/insights-backend/pkg/db"
	"github.com/salespulse/insights-backend/pkg/db/models"
	"github.com/salespulse/insights-backend/pkg/logger"
)

type seedProduct struct {
	sku       string
	name      string
	unitPrice float64
	dailyQty  int
	channel   string
	stock     int
}

var catalog = []seedProduct{
	{sku: "SP-TEE-01", name: "Pulse Tee", unitPrice: 19.90, dailyQty: 6, channel: "web", stock: 120},
	{sku: "SP-MUG-01", name: "Pulse Mug", unitPrice: 12.50, dailyQty: 3, channel: "web", stock: 40},
	{sku: "SP-CAP-01", name: "Pulse Cap", unitPrice: 24.00, dailyQty: 2, channel: "app", stock: 15},
	{sku: "SP-BAG-01", name: "Pulse Tote", unitPrice: 32.00, dailyQty: 1, channel: "store", stock: 200},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	tenant := flag.String("tenant", "demo", "tenant id to seed")
	days := flag.Int("days", 30, "how many trailing days of sales to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	rng := rand.New(rand.NewSource(42))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var sales []models.SaleRecord
	for offset := *days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		for _, product := range catalog {
			qty := product.dailyQty + rng.Intn(product.dailyQty+1)
			if qty <= 0 {
				continue
			}
			unitPrice := decimal.NewFromFloat(product.unitPrice)
			sales = append(sales, models.SaleRecord{
				TenantID:    *tenant,
				SaleDate:    day,
				SKU:         product.sku,
				ProductName: product.name,
				Qty:         qty,
				UnitPrice:   unitPrice,
				Revenue:     unitPrice.Mul(decimal.NewFromInt(int64(qty))),
				Channel:     product.channel,
			})
		}
	}

	if err := dbClient.DB().WithContext(ctx).CreateInBatches(sales, 500).Error; err != nil {
		logg.Error(ctx, "failed to insert sales", err)
		os.Exit(1)
	}

	stock := make([]models.StockLevel, 0, len(catalog))
	for _, product := range catalog {
		stock = append(stock, models.StockLevel{
			TenantID:    *tenant,
			SKU:         product.sku,
			ProductName: product.name,
			Qty:         product.stock,
		})
	}
	if err := dbClient.DB().WithContext(ctx).Create(&stock).Error; err != nil {
		logg.Error(ctx, "failed to insert stock levels", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"tenant": *tenant,
		"sales":  len(sales),
		"stock":  len(stock),
	})
	logg.Info(ctx, "seed completed")
	fmt.Printf("seeded %d sales and %d stock rows for tenant %s\n", len(sales), len(stock), *tenant)
}

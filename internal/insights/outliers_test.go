package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedSales(sku string, prices []float64) []Sale {
	sales := make([]Sale, len(prices))
	for i, price := range prices {
		sales[i] = Sale{
			SKU:       sku,
			SaleDate:  day(fmt.Sprintf("2026-08-%02d", i+1)),
			Qty:       1,
			UnitPrice: price,
		}
	}
	return sales
}

func TestPriceOutliersFlagsExtremePrice(t *testing.T) {
	prices := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 100}
	rows := priceOutliers(pricedSales("A", prices))

	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].SKU)
	assert.Equal(t, "2026-08-10", rows[0].Date)
	assert.Equal(t, 100.0, rows[0].UnitPrice)
	assert.Equal(t, 10.0, rows[0].MedianPrice)
	// MAD is zero here, so the divisor substitutes 1: 0.6745 * 90
	assert.Equal(t, 60.71, rows[0].RobustZ)
}

func TestPriceOutliersRequiresMinimumSample(t *testing.T) {
	prices := []float64{10, 10, 10, 10, 10, 10, 10, 10, 100}
	assert.Empty(t, priceOutliers(pricedSales("A", prices)))
}

func TestPriceOutliersNoFlagsOnStablePrices(t *testing.T) {
	prices := []float64{9, 10, 11, 10, 9, 11, 10, 9, 11, 10}
	assert.Empty(t, priceOutliers(pricedSales("A", prices)))
}

func TestPriceOutliersSortsByMagnitude(t *testing.T) {
	low := append([]float64{1}, make([]float64, 9)...)
	for i := 1; i < 10; i++ {
		low[i] = 10
	}
	high := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 200}

	sales := append(pricedSales("LOW", low), pricedSales("HIGH", high)...)
	rows := priceOutliers(sales)

	require.Len(t, rows, 2)
	assert.Equal(t, "HIGH", rows[0].SKU)
	assert.Equal(t, "LOW", rows[1].SKU)
	assert.Less(t, rows[1].RobustZ, 0.0)
}

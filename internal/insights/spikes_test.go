package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpikeDaysFlagsJumpOverBaseline(t *testing.T) {
	// seven quiet days at 2 units, then a 20-unit day
	sales := []Sale{}
	for i := 1; i <= 7; i++ {
		sales = append(sales, Sale{SKU: "A", SaleDate: day(fmt.Sprintf("2026-08-%02d", i)), Qty: 2})
	}
	sales = append(sales, Sale{SKU: "A", SaleDate: day("2026-08-08"), Qty: 20})

	rows := spikeDays(sales, 5, 2.5)

	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].SKU)
	assert.Equal(t, "2026-08-08", rows[0].Date)
	assert.Equal(t, 20, rows[0].Qty)
	assert.Equal(t, 2.0, rows[0].Baseline)
	assert.Equal(t, 10.0, rows[0].Ratio)
}

func TestSpikeDaysBaselineUsesAvailableDaysOnly(t *testing.T) {
	// two quiet days, a gap, then the spike: baseline averages the two
	// available prior days, not seven calendar days
	sales := []Sale{
		{SKU: "A", SaleDate: day("2026-08-01"), Qty: 2},
		{SKU: "A", SaleDate: day("2026-08-02"), Qty: 4},
		{SKU: "A", SaleDate: day("2026-08-10"), Qty: 15},
	}

	rows := spikeDays(sales, 5, 2.5)

	require.Len(t, rows, 1)
	assert.Equal(t, 3.0, rows[0].Baseline)
	assert.Equal(t, 5.0, rows[0].Ratio)
}

func TestSpikeDaysRespectsMinQtyAndRatio(t *testing.T) {
	sales := []Sale{
		{SKU: "A", SaleDate: day("2026-08-01"), Qty: 2},
		{SKU: "A", SaleDate: day("2026-08-02"), Qty: 4}, // doubles but stays under minQty
		{SKU: "B", SaleDate: day("2026-08-01"), Qty: 10},
		{SKU: "B", SaleDate: day("2026-08-02"), Qty: 12}, // over minQty but under ratio
	}

	rows := spikeDays(sales, 5, 2.5)

	assert.Empty(t, rows)
}

func TestSpikeDaysFirstDayHasNoBaseline(t *testing.T) {
	sales := []Sale{{SKU: "A", SaleDate: day("2026-08-01"), Qty: 100}}

	assert.Empty(t, spikeDays(sales, 5, 2.5))
}

func TestSpikeDaysSortsByRatioDesc(t *testing.T) {
	sales := []Sale{
		{SKU: "A", SaleDate: day("2026-08-01"), Qty: 2},
		{SKU: "A", SaleDate: day("2026-08-02"), Qty: 10},
		{SKU: "B", SaleDate: day("2026-08-01"), Qty: 2},
		{SKU: "B", SaleDate: day("2026-08-02"), Qty: 20},
	}

	rows := spikeDays(sales, 5, 2.5)

	require.Len(t, rows, 2)
	assert.Equal(t, "B", rows[0].SKU)
	assert.Equal(t, "A", rows[1].SKU)
}

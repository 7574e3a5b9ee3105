package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinregSlope(t *testing.T) {
	assert.Equal(t, 2.0, linregSlope([]float64{1, 3, 5, 7}))
	assert.Equal(t, 0.0, linregSlope([]float64{4, 4, 4}))
	assert.Equal(t, -1.0, linregSlope([]float64{3, 2, 1}))

	// degenerate series carry no slope
	assert.Equal(t, 0.0, linregSlope(nil))
	assert.Equal(t, 0.0, linregSlope([]float64{9}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 0.0, median(nil))

	// input order is preserved
	xs := []float64{5, 1, 3}
	median(xs)
	assert.Equal(t, []float64{5, 1, 3}, xs)
}

func TestRobustZ(t *testing.T) {
	med := 10.0
	mad := medianAbsDeviation([]float64{8, 10, 12}, med)
	assert.Equal(t, 2.0, mad)
	assert.InDelta(t, 0.6745, robustZ(12, med, mad), 1e-9)

	// zero MAD substitutes 1 instead of dividing by zero
	assert.InDelta(t, 6.745, robustZ(20, 10, 0), 1e-9)
}

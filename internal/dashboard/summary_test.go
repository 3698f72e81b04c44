package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSummary(t *testing.T) {
	snap := &Snapshot{
		Products: []ProductStock{
			{MinStock: 5, VariantStocks: []int{10, 3, 0}},
			{MinStock: 2, VariantStocks: []int{1}},
			{MinStock: 0, VariantStocks: []int{0, 7}},
		},
		UnreadAlerts:    4,
		TodaySalesCount: 3,
		TodayRevenue:    259.90,
	}

	s := ComputeSummary(snap)

	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 21, s.TotalItems)
	// 3 (< 5) and 1 (< 2); the zeros count as out of stock, not low.
	assert.Equal(t, 2, s.LowStockCount)
	assert.Equal(t, 2, s.OutOfStockCount)
	assert.Equal(t, 4, s.UnreadAlerts)
	assert.Equal(t, 3, s.TodaySalesCount)
	assert.Equal(t, 259.90, s.TodayRevenue)
}

func TestComputeSummary_AtThresholdIsNotLow(t *testing.T) {
	snap := &Snapshot{
		Products: []ProductStock{{MinStock: 5, VariantStocks: []int{5}}},
	}

	s := ComputeSummary(snap)

	assert.Equal(t, 0, s.LowStockCount)
	assert.Equal(t, 0, s.OutOfStockCount)
	assert.Equal(t, 5, s.TotalItems)
}

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(&Snapshot{})

	assert.Equal(t, 0, s.TotalProducts)
	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 0, s.LowStockCount)
	assert.Equal(t, 0, s.OutOfStockCount)
}

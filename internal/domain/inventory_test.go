package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryStatusOf(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     InventoryStatus
	}{
		{"zero stock is out", 0, 10, StockOut},
		{"zero stock with zero min is out", 0, 0, StockOut},
		{"below min is low", 5, 10, StockLow},
		{"exactly min is low", 10, 10, StockLow},
		{"one above min is in stock", 11, 10, StockOK},
		{"well above min is in stock", 20, 10, StockOK},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InventoryStatusOf(tt.stock, tt.minStock))
		})
	}
}

func TestInventoryItemStatusFollowsStock(t *testing.T) {
	item := &InventoryItem{Stock: 4, MinStock: 8}
	assert.Equal(t, StockLow, item.Status())

	// A restock moves the derived status without any stored state.
	item.Stock += 20
	assert.Equal(t, StockOK, item.Status())

	item.Stock = 0
	assert.Equal(t, StockOut, item.Status())
}

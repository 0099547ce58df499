package domain

import "time"

// InventoryStatus is derived from stock levels, never stored.
type InventoryStatus string

const (
	StockOut InventoryStatus = "Out of Stock"
	StockLow InventoryStatus = "Low Stock"
	StockOK  InventoryStatus = "In Stock"
)

// InventoryStatusOf derives the display status from stock and minStock.
// The boundary stock == minStock counts as Low Stock.
func InventoryStatusOf(stock, minStock int) InventoryStatus {
	switch {
	case stock == 0:
		return StockOut
	case stock <= minStock:
		return StockLow
	default:
		return StockOK
	}
}

// InventoryItem is a stocked part or consumable. Status is not a field:
// it is always derived from Stock and MinStock at read time.
type InventoryItem struct {
	ID          int64
	Reference   string // e.g. "INV-001"
	Name        string
	Category    string
	Stock       int
	MinStock    int
	Price       float64
	Supplier    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Status derives the item's current stock status.
func (i *InventoryItem) Status() InventoryStatus {
	return InventoryStatusOf(i.Stock, i.MinStock)
}

// InventoryFilter filters inventory listings. Status filtering happens after
// derivation, in the service layer.
type InventoryFilter struct {
	Category string
	Search   string
}

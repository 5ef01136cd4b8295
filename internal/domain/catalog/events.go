package catalog

import (
	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// Event type constants for the catalog context
const (
	EventTypeStockBelowMinimum = "catalog.stock_below_minimum"
)

// StockBelowMinimumEvent is raised when a stock adjustment leaves a product
// under its alert threshold.
type StockBelowMinimumEvent struct {
	shared.BaseDomainEvent
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	StockQuantity int       `json:"stock_quantity"`
	MinStockAlert int       `json:"min_stock_alert"`
}

// NewStockBelowMinimumEvent creates a new low-stock event for the product
func NewStockBelowMinimumEvent(p *Product) *StockBelowMinimumEvent {
	return &StockBelowMinimumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowMinimum, "Product", p.ID, p.StoreID),
		ProductID:       p.ID,
		ProductName:     p.Name,
		StockQuantity:   p.StockQuantity,
		MinStockAlert:   p.MinStockAlert,
	}
}

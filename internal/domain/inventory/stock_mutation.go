package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// MutationReason identifies what caused a stock change
type MutationReason string

const (
	ReasonImport           MutationReason = "import"
	ReasonSale             MutationReason = "sale"
	ReasonEdit             MutationReason = "edit"
	ReasonOrderFulfillment MutationReason = "order_fulfillment"
)

// IsValid checks if the reason is a known mutation reason
func (r MutationReason) IsValid() bool {
	switch r {
	case ReasonImport, ReasonSale, ReasonEdit, ReasonOrderFulfillment:
		return true
	}
	return false
}

// StockMutation is an immutable, append-only audit record of one atomic
// stock change. Rows are created once and never updated or deleted.
type StockMutation struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Delta      int            `gorm:"not null"`
	StockAfter int            `gorm:"not null"`
	Reason     MutationReason `gorm:"type:varchar(20);not null"`
	Actor      uuid.UUID      `gorm:"type:uuid"`
	Note       string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMutation) TableName() string {
	return "stock_mutations"
}

// NewStockMutation creates a new stock mutation record
func NewStockMutation(storeID, productID uuid.UUID, delta, stockAfter int, reason MutationReason, actor uuid.UUID, note string) (*StockMutation, error) {
	if !reason.IsValid() {
		return nil, shared.NewDomainError("INVALID_REASON", "Unknown stock mutation reason")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_DELTA", "Stock mutation delta cannot be zero")
	}
	if stockAfter < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Resulting stock cannot be negative")
	}
	return &StockMutation{
		ID:         uuid.New(),
		StoreID:    storeID,
		ProductID:  productID,
		Delta:      delta,
		StockAfter: stockAfter,
		Reason:     reason,
		Actor:      actor,
		Note:       note,
		CreatedAt:  time.Now(),
	}, nil
}

package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/inventory"
)

// ImportStockRequest represents a replenishment of a product's stock
type ImportStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	Note      string    `json:"note"`
}

// EditStockRequest represents a manual correction of a product's stock
type EditStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Delta     int       `json:"delta" binding:"required"`
	Note      string    `json:"note"`
}

// StockAdjustmentResponse is the result of a stock adjustment
type StockAdjustmentResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	StockQuantity int       `json:"stock_quantity"`
	Delta         int       `json:"delta"`
	BelowMinimum  bool      `json:"below_minimum"`
}

// StockMutationResponse represents one audit record of a stock change
type StockMutationResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Delta      int       `json:"delta"`
	StockAfter int       `json:"stock_after"`
	Reason     string    `json:"reason"`
	Actor      uuid.UUID `json:"actor,omitempty"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToStockMutationResponse converts a mutation record to its response representation
func ToStockMutationResponse(mutation *inventory.StockMutation) StockMutationResponse {
	return StockMutationResponse{
		ID:         mutation.ID,
		ProductID:  mutation.ProductID,
		Delta:      mutation.Delta,
		StockAfter: mutation.StockAfter,
		Reason:     string(mutation.Reason),
		Actor:      mutation.Actor,
		Note:       mutation.Note,
		CreatedAt:  mutation.CreatedAt,
	}
}

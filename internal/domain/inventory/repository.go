package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// StockMutationRepository is the append-only store for stock audit records
type StockMutationRepository interface {
	Create(ctx context.Context, mutation *StockMutation) error
	FindByProductForStore(ctx context.Context, storeID, productID uuid.UUID, filter shared.Filter) ([]StockMutation, error)
	CountByProductForStore(ctx context.Context, storeID, productID uuid.UUID) (int64, error)
}

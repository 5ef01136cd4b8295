package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/shared"
)

// StockService handles manual stock movements: replenishment imports and
// corrections. Sale and fulfillment decrements go through the trade services
// instead, inside their own transactions.
type StockService struct {
	scope  tradeapp.TransactionScope
	logger *zap.Logger
}

// NewStockService creates a new StockService
func NewStockService(scope tradeapp.TransactionScope, logger *zap.Logger) *StockService {
	return &StockService{scope: scope, logger: logger}
}

// ImportStock replenishes a product's stock
func (s *StockService) ImportStock(ctx context.Context, storeID, actorID uuid.UUID, req ImportStockRequest) (*StockAdjustmentResponse, error) {
	if req.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Import quantity must be positive")
	}
	return s.adjust(ctx, storeID, actorID, req.ProductID, req.Quantity, inventory.ReasonImport, req.Note)
}

// EditStock applies a manual correction to a product's stock. Negative
// deltas fail when they would drive stock below zero.
func (s *StockService) EditStock(ctx context.Context, storeID, actorID uuid.UUID, req EditStockRequest) (*StockAdjustmentResponse, error) {
	if req.Delta == 0 {
		return nil, shared.NewDomainError("INVALID_DELTA", "Stock edit delta cannot be zero")
	}
	return s.adjust(ctx, storeID, actorID, req.ProductID, req.Delta, inventory.ReasonEdit, req.Note)
}

// ListMutations returns the audit trail of a product's stock changes
func (s *StockService) ListMutations(ctx context.Context, storeID, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[StockMutationResponse], error) {
	var page shared.Paginated[StockMutationResponse]
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		if _, err := repos.ProductRepo().FindByIDForStore(ctx, storeID, productID); err != nil {
			return err
		}
		mutations, err := repos.StockMutationRepo().FindByProductForStore(ctx, storeID, productID, filter)
		if err != nil {
			return err
		}
		total, err := repos.StockMutationRepo().CountByProductForStore(ctx, storeID, productID)
		if err != nil {
			return err
		}
		responses := make([]StockMutationResponse, len(mutations))
		for i := range mutations {
			responses[i] = ToStockMutationResponse(&mutations[i])
		}
		page = shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *StockService) adjust(ctx context.Context, storeID, actorID, productID uuid.UUID, delta int, reason inventory.MutationReason, note string) (*StockAdjustmentResponse, error) {
	var response StockAdjustmentResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		ledger := inventory.NewStockLedger(repos.ProductRepo(), repos.StockMutationRepo())
		product, err := ledger.Adjust(ctx, storeID, productID, delta, reason, actorID, note)
		if err != nil {
			return err
		}

		for _, event := range product.GetDomainEvents() {
			if event.EventType() == catalog.EventTypeStockBelowMinimum {
				s.logger.Warn("stock below minimum",
					zap.String("store_id", storeID.String()),
					zap.String("product_id", productID.String()),
					zap.Int("stock_quantity", product.StockQuantity),
					zap.Int("min_stock_alert", product.MinStockAlert))
			}
		}
		product.ClearDomainEvents()

		response = StockAdjustmentResponse{
			ProductID:     product.ID,
			StockQuantity: product.StockQuantity,
			Delta:         delta,
			BelowMinimum:  product.IsBelowMinimum(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

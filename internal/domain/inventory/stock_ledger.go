package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/catalog"
)

// StockLedger couples the conditional stock adjustment with its audit
// record. It is a domain service: callers construct it over the repository
// set they are working with, so that ledgers used inside a transaction
// scope write through the same transaction.
type StockLedger struct {
	products  catalog.ProductRepository
	mutations StockMutationRepository
}

// NewStockLedger creates a stock ledger over the given repositories
func NewStockLedger(products catalog.ProductRepository, mutations StockMutationRepository) *StockLedger {
	return &StockLedger{
		products:  products,
		mutations: mutations,
	}
}

// Adjust applies delta to the product's on-hand quantity and appends the
// audit record. The underlying adjustment is a single conditional update,
// so concurrent callers can never drive stock negative: the loser of the
// race gets ErrInsufficientStock and no mutation is recorded. The returned
// product carries the post-adjustment quantity; a low-stock domain event is
// attached when the new quantity falls under the alert threshold.
func (l *StockLedger) Adjust(ctx context.Context, storeID, productID uuid.UUID, delta int, reason MutationReason, actor uuid.UUID, note string) (*catalog.Product, error) {
	product, err := l.products.AdjustStock(ctx, storeID, productID, delta)
	if err != nil {
		return nil, err
	}

	mutation, err := NewStockMutation(storeID, productID, delta, product.StockQuantity, reason, actor, note)
	if err != nil {
		return nil, err
	}
	if err := l.mutations.Create(ctx, mutation); err != nil {
		return nil, err
	}

	if product.IsBelowMinimum() {
		product.AddDomainEvent(catalog.NewStockBelowMinimumEvent(product))
	}

	return product, nil
}

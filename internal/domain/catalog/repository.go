package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Product, error)
	FindByIDsForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]Product, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)
	CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error

	// AdjustStock applies delta to the product's stock quantity as a single
	// conditional update: the mutation only happens when the resulting
	// quantity stays non-negative, otherwise ErrInsufficientStock is
	// returned and nothing changes. A missing or out-of-store product
	// yields ErrNotFound. On success the reloaded product is returned.
	AdjustStock(ctx context.Context, storeID, id uuid.UUID, delta int) (*Product, error)
}

// PromotionRepository defines persistence operations for promotions
type PromotionRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Promotion, error)
	// FindActiveForProduct returns promotions targeting the product whose
	// window contains the given instant, ordered by creation time then ID.
	FindActiveForProduct(ctx context.Context, storeID, productID uuid.UUID, at time.Time) ([]Promotion, error)
	Save(ctx context.Context, promotion *Promotion) error
}

// BundleRepository defines persistence operations for bundles
type BundleRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Bundle, error)
	Save(ctx context.Context, bundle *Bundle) error
}

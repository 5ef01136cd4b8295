package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/shared"
)

// GormPromotionRepository implements catalog.PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByIDForStore finds a promotion by ID within a store
func (r *GormPromotionRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Promotion, error) {
	var promotion catalog.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Where("store_id = ? AND id = ?", storeID, id).
		First(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// FindActiveForProduct returns promotions targeting the product whose window
// contains the given instant, ordered by creation time then ID so earlier
// promotions win price ties deterministically.
func (r *GormPromotionRepository) FindActiveForProduct(ctx context.Context, storeID, productID uuid.UUID, at time.Time) ([]catalog.Promotion, error) {
	var promotions []catalog.Promotion
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Joins("JOIN promotion_products ON promotion_products.promotion_id = promotions.id").
		Where("promotions.store_id = ?", storeID).
		Where("promotion_products.product_id = ?", productID).
		Where("promotions.active = ?", true).
		Where("(promotions.start_at IS NULL OR promotions.start_at <= ?)", at).
		Where("(promotions.end_at IS NULL OR promotions.end_at >= ?)", at).
		Order("promotions.created_at ASC, promotions.id ASC").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Save creates or updates a promotion together with its product overrides
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *catalog.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

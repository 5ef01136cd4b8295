package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/shared"
)

// GormBundleRepository implements catalog.BundleRepository using GORM
type GormBundleRepository struct {
	db *gorm.DB
}

// NewGormBundleRepository creates a new GormBundleRepository
func NewGormBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

// FindByIDForStore finds a bundle with its items by ID within a store
func (r *GormBundleRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Bundle, error) {
	var bundle catalog.Bundle
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ? AND id = ?", storeID, id).
		First(&bundle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bundle, nil
}

// Save creates or updates a bundle together with its items
func (r *GormBundleRepository) Save(ctx context.Context, bundle *catalog.Bundle) error {
	return r.db.WithContext(ctx).Save(bundle).Error
}

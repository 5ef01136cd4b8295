package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/shared"
)

// GormStockMutationRepository implements inventory.StockMutationRepository using GORM
type GormStockMutationRepository struct {
	db *gorm.DB
}

// NewGormStockMutationRepository creates a new GormStockMutationRepository
func NewGormStockMutationRepository(db *gorm.DB) *GormStockMutationRepository {
	return &GormStockMutationRepository{db: db}
}

// Create appends a stock mutation record. Mutations are never updated.
func (r *GormStockMutationRepository) Create(ctx context.Context, mutation *inventory.StockMutation) error {
	return r.db.WithContext(ctx).Create(mutation).Error
}

// FindByProductForStore returns the mutation history for a product, newest first
func (r *GormStockMutationRepository) FindByProductForStore(ctx context.Context, storeID, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMutation, error) {
	var mutations []inventory.StockMutation
	query := r.db.WithContext(ctx).
		Model(&inventory.StockMutation{}).
		Where("store_id = ? AND product_id = ?", storeID, productID)
	query = applySort(query, filter, StockMutationSortFields, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&mutations).Error; err != nil {
		return nil, err
	}
	return mutations, nil
}

// CountByProductForStore counts the mutation records for a product
func (r *GormStockMutationRepository) CountByProductForStore(ctx context.Context, storeID, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockMutation{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

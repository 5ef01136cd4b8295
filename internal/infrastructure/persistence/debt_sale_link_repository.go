package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/trade"
)

// GormDebtSaleLinkRepository implements trade.DebtSaleLinkRepository using GORM
type GormDebtSaleLinkRepository struct {
	db *gorm.DB
}

// NewGormDebtSaleLinkRepository creates a new GormDebtSaleLinkRepository
func NewGormDebtSaleLinkRepository(db *gorm.DB) *GormDebtSaleLinkRepository {
	return &GormDebtSaleLinkRepository{db: db}
}

// Create records which sale contributed to which debt
func (r *GormDebtSaleLinkRepository) Create(ctx context.Context, link *trade.DebtSaleLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// FindByDebtForStore returns all sale links recorded against a debt
func (r *GormDebtSaleLinkRepository) FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]trade.DebtSaleLink, error) {
	var links []trade.DebtSaleLink
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND debt_id = ?", storeID, debtID).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

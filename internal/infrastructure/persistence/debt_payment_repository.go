package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/partner"
)

// GormDebtPaymentRepository implements partner.DebtPaymentRepository using GORM
type GormDebtPaymentRepository struct {
	db *gorm.DB
}

// NewGormDebtPaymentRepository creates a new GormDebtPaymentRepository
func NewGormDebtPaymentRepository(db *gorm.DB) *GormDebtPaymentRepository {
	return &GormDebtPaymentRepository{db: db}
}

// Create appends a payment record. Payments are never updated or deleted.
func (r *GormDebtPaymentRepository) Create(ctx context.Context, payment *partner.DebtPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByDebtForStore returns all payments recorded against a debt, oldest first
func (r *GormDebtPaymentRepository) FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]partner.DebtPayment, error) {
	var payments []partner.DebtPayment
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND debt_id = ?", storeID, debtID).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

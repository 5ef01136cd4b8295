package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// GormDebtRepository implements partner.DebtRepository using GORM
type GormDebtRepository struct {
	db *gorm.DB
}

// NewGormDebtRepository creates a new GormDebtRepository
func NewGormDebtRepository(db *gorm.DB) *GormDebtRepository {
	return &GormDebtRepository{db: db}
}

// FindByIDForStore finds a debt by ID within a store
func (r *GormDebtRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*partner.Debt, error) {
	var debt partner.Debt
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &debt, nil
}

// FindActiveByCustomerForStore returns the customer's open debt. When more
// than one exists, for example right after a customer merge, the most recent
// one is returned. ErrNotFound means the customer has no open debt.
func (r *GormDebtRepository) FindActiveByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID) (*partner.Debt, error) {
	var debt partner.Debt
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND customer_id = ? AND status = ?", storeID, customerID, partner.DebtStatusActive).
		Order("created_at DESC").
		First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &debt, nil
}

// FindByCustomerForStore returns all debts of a customer, newest first
func (r *GormDebtRepository) FindByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID, filter shared.Filter) ([]partner.Debt, error) {
	var debts []partner.Debt
	query := r.db.WithContext(ctx).
		Model(&partner.Debt{}).
		Where("store_id = ? AND customer_id = ?", storeID, customerID)
	query = applySort(query, filter, DebtSortFields, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// FindAllForStore returns all debts for a store
func (r *GormDebtRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]partner.Debt, error) {
	var debts []partner.Debt
	query := r.db.WithContext(ctx).Model(&partner.Debt{}).Where("store_id = ?", storeID)
	query = applySort(query, filter, DebtSortFields, "created_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&debts).Error; err != nil {
		return nil, err
	}
	return debts, nil
}

// Save creates or updates a debt
func (r *GormDebtRepository) Save(ctx context.Context, debt *partner.Debt) error {
	return r.db.WithContext(ctx).Save(debt).Error
}

// ReassignCustomer moves all debts from one customer to another in bulk
func (r *GormDebtRepository) ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&partner.Debt{}).
		Where("store_id = ? AND customer_id = ?", storeID, fromCustomerID).
		UpdateColumn("customer_id", toCustomerID).Error
}

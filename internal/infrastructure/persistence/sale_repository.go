package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByIDForStore finds a sale with its items by ID within a store
func (r *GormSaleRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ? AND id = ?", storeID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindBySaleNumberForStore finds a sale by its number within a store
func (r *GormSaleRepository) FindBySaleNumberForStore(ctx context.Context, storeID uuid.UUID, saleNumber string) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ? AND sale_number = ?", storeID, saleNumber).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllForStore finds all sales for a store matching the filter
func (r *GormSaleRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]trade.Sale, error) {
	var sales []trade.Sale
	query := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Preload("Items").
		Where("store_id = ?", storeID)
	query = applySearch(query, filter, "sale_number")
	query = applySort(query, filter, SaleSortFields, "sold_at DESC")
	query = applyPagination(query, filter)

	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// CountForStore counts sales for a store
func (r *GormSaleRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a sale together with its items. Sales are immutable once
// posted, so there is no update path.
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	err := r.db.WithContext(ctx).Create(sale).Error
	if err != nil && strings.Contains(err.Error(), "idx_sale_store_number") {
		return shared.ErrConflict
	}
	return err
}

// GenerateSaleNumber produces the next sale number for the store, scoped to
// the current day: INV-YYYYMMDD-0001, INV-YYYYMMDD-0002 and so on.
func (r *GormSaleRepository) GenerateSaleNumber(ctx context.Context, storeID uuid.UUID) (string, error) {
	prefix := fmt.Sprintf("INV-%s-", time.Now().Format("20060102"))

	var lastSale trade.Sale
	err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("store_id = ? AND sale_number LIKE ?", storeID, prefix+"%").
		Order("sale_number DESC").
		First(&lastSale).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var nextNum int64 = 1
	if err == nil && lastSale.SaleNumber != "" {
		parts := strings.Split(lastSale.SaleNumber, "-")
		if len(parts) == 3 {
			var num int64
			if _, parseErr := fmt.Sscanf(parts[2], "%d", &num); parseErr == nil {
				nextNum = num + 1
			}
		}
	}

	return fmt.Sprintf("%s%04d", prefix, nextNum), nil
}

// ReassignCustomer moves all sales from one customer to another in bulk
func (r *GormSaleRepository) ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Where("store_id = ? AND customer_id = ?", storeID, fromCustomerID).
		UpdateColumn("customer_id", toCustomerID).Error
}

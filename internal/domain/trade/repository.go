package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// SaleRepository defines the persistence interface for sales.
// FindBySaleNumberForStore returns shared.ErrNotFound when no sale with the
// number exists; the sale-per-delivered-order guarantee is built on it.
type SaleRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Sale, error)
	FindBySaleNumberForStore(ctx context.Context, storeID uuid.UUID, saleNumber string) (*Sale, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Sale, error)
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	Create(ctx context.Context, sale *Sale) error
	GenerateSaleNumber(ctx context.Context, storeID uuid.UUID) (string, error)
	ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error
}

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Order, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByStatusForStore(ctx context.Context, storeID uuid.UUID, status OrderStatus, filter shared.Filter) ([]Order, error)
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	Save(ctx context.Context, order *Order) error
	GenerateOrderNumber(ctx context.Context, storeID uuid.UUID) (string, error)
	ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error
}

// DebtSaleLinkRepository is the append-only store linking sales to debts
type DebtSaleLinkRepository interface {
	Create(ctx context.Context, link *DebtSaleLink) error
	FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]DebtSaleLink, error)
}

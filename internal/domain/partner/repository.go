package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence interface for customers
type CustomerRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Customer, error)
	FindByPhoneForStore(ctx context.Context, storeID uuid.UUID, phone string) (*Customer, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Customer, error)
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
	Save(ctx context.Context, customer *Customer) error
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}

// DebtRepository defines the persistence interface for debts.
// FindActiveByCustomerForStore returns shared.ErrNotFound when the customer
// has no open debt. ReassignCustomer moves every debt row from one customer
// to another and is used by customer merge.
type DebtRepository interface {
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Debt, error)
	FindActiveByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID) (*Debt, error)
	FindByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID, filter shared.Filter) ([]Debt, error)
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Debt, error)
	Save(ctx context.Context, debt *Debt) error
	ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error
}

// DebtPaymentRepository is the append-only store for debt payments
type DebtPaymentRepository interface {
	Create(ctx context.Context, payment *DebtPayment) error
	FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]DebtPayment, error)
}

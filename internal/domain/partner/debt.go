package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// DebtStatus represents the lifecycle state of a debt
type DebtStatus string

const (
	DebtStatusActive DebtStatus = "active"
	DebtStatusPaid   DebtStatus = "paid"
)

// Debt is the running balance a customer owes the store. A customer has at
// most one active debt at a time: new debt-financed sales accrue onto it,
// and once fully paid the debt is closed for good - the next debt sale
// opens a fresh one. Invariant: TotalAmount = PaidAmount + RemainingAmount
// and RemainingAmount is never negative.
type Debt struct {
	shared.StoreAggregateRoot
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status          DebtStatus      `gorm:"type:varchar(10);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (Debt) TableName() string {
	return "debts"
}

// DebtPayment is an immutable, append-only record of one payment against a
// debt.
type DebtPayment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	DebtID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DebtPayment) TableName() string {
	return "debt_payments"
}

// NewDebt opens a new active debt for the customer with an initial amount
func NewDebt(storeID, customerID uuid.UUID, amount valueobject.Money) (*Debt, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &Debt{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		CustomerID:         customerID,
		TotalAmount:        amount.Amount(),
		PaidAmount:         decimal.Zero,
		RemainingAmount:    amount.Amount(),
		Status:             DebtStatusActive,
	}, nil
}

// Accrue adds a new debt-financed amount onto the open balance
func (d *Debt) Accrue(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if d.Status != DebtStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Cannot accrue onto a settled debt")
	}

	d.TotalAmount = d.TotalAmount.Add(amount.Amount())
	d.RemainingAmount = d.RemainingAmount.Add(amount.Amount())
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// ApplyPayment settles part or all of the remaining balance and returns the
// payment record to append. Fails with ErrInvalidAmount when the amount is
// not positive or exceeds what remains. When the balance reaches zero the
// debt transitions to paid - a one-way move, the debt is never reopened.
func (d *Debt) ApplyPayment(amount valueobject.Money) (*DebtPayment, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if amount.Amount().GreaterThan(d.RemainingAmount) {
		return nil, shared.ErrInvalidAmount
	}
	if d.Status != DebtStatusActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Debt is already settled")
	}

	d.PaidAmount = d.PaidAmount.Add(amount.Amount())
	d.RemainingAmount = d.RemainingAmount.Sub(amount.Amount())
	if d.RemainingAmount.LessThanOrEqual(decimal.Zero) {
		d.Status = DebtStatusPaid
	}
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return &DebtPayment{
		ID:        uuid.New(),
		StoreID:   d.StoreID,
		DebtID:    d.ID,
		Amount:    amount.Amount(),
		CreatedAt: time.Now(),
	}, nil
}

// IsSettled returns true once the debt has been fully paid
func (d *Debt) IsSettled() bool {
	return d.Status == DebtStatusPaid
}

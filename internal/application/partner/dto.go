package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/partner"
)

// ApplyPaymentRequest represents a request to pay down a debt
type ApplyPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// MergeCustomersRequest represents a request to merge two customer identities
type MergeCustomersRequest struct {
	SourceID uuid.UUID `json:"source_id" binding:"required"`
	TargetID uuid.UUID `json:"target_id" binding:"required"`
}

// CustomerResponse represents a customer
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a customer aggregate to its response representation
func ToCustomerResponse(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
	}
}

// DebtResponse represents a debt balance
type DebtResponse struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToDebtResponse converts a debt aggregate to its response representation
func ToDebtResponse(debt *partner.Debt) DebtResponse {
	return DebtResponse{
		ID:              debt.ID,
		CustomerID:      debt.CustomerID,
		TotalAmount:     debt.TotalAmount,
		PaidAmount:      debt.PaidAmount,
		RemainingAmount: debt.RemainingAmount,
		Status:          string(debt.Status),
		CreatedAt:       debt.CreatedAt,
	}
}

// DebtPaymentResponse represents one payment against a debt
type DebtPaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	DebtID    uuid.UUID       `json:"debt_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToDebtPaymentResponse converts a debt payment to its response representation
func ToDebtPaymentResponse(payment *partner.DebtPayment) DebtPaymentResponse {
	return DebtPaymentResponse{
		ID:        payment.ID,
		DebtID:    payment.DebtID,
		Amount:    payment.Amount,
		CreatedAt: payment.CreatedAt,
	}
}

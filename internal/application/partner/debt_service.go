package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// DebtService manages customer debt balances. Payments mutate the balance
// and append the audit record inside one transaction.
type DebtService struct {
	scope  tradeapp.TransactionScope
	logger *zap.Logger
}

// NewDebtService creates a new DebtService
func NewDebtService(scope tradeapp.TransactionScope, logger *zap.Logger) *DebtService {
	return &DebtService{scope: scope, logger: logger}
}

// ApplyPayment pays down a debt. The amount must be positive and must not
// exceed the remaining balance. Settling the balance in full transitions the
// debt to paid for good.
func (s *DebtService) ApplyPayment(ctx context.Context, storeID, debtID uuid.UUID, amount decimal.Decimal) (*DebtResponse, error) {
	var response DebtResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		debt, err := repos.DebtRepo().FindByIDForStore(ctx, storeID, debtID)
		if err != nil {
			return err
		}

		payment, err := debt.ApplyPayment(valueobject.NewMoneyIDR(amount))
		if err != nil {
			return err
		}
		if err := repos.DebtRepo().Save(ctx, debt); err != nil {
			return err
		}
		if err := repos.DebtPaymentRepo().Create(ctx, payment); err != nil {
			return err
		}

		response = ToDebtResponse(debt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("debt payment applied",
		zap.String("store_id", storeID.String()),
		zap.String("debt_id", debtID.String()),
		zap.String("amount", amount.String()),
		zap.String("status", response.Status))
	return &response, nil
}

// GetDebt returns a single debt
func (s *DebtService) GetDebt(ctx context.Context, storeID, debtID uuid.UUID) (*DebtResponse, error) {
	var response DebtResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		debt, err := repos.DebtRepo().FindByIDForStore(ctx, storeID, debtID)
		if err != nil {
			return err
		}
		response = ToDebtResponse(debt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListDebtsByCustomer returns a customer's debts, newest first
func (s *DebtService) ListDebtsByCustomer(ctx context.Context, storeID, customerID uuid.UUID, filter shared.Filter) ([]DebtResponse, error) {
	var responses []DebtResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		debts, err := repos.DebtRepo().FindByCustomerForStore(ctx, storeID, customerID, filter)
		if err != nil {
			return err
		}
		responses = make([]DebtResponse, len(debts))
		for i := range debts {
			responses[i] = ToDebtResponse(&debts[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ListPayments returns the payment history of a debt
func (s *DebtService) ListPayments(ctx context.Context, storeID, debtID uuid.UUID) ([]DebtPaymentResponse, error) {
	var responses []DebtPaymentResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		if _, err := repos.DebtRepo().FindByIDForStore(ctx, storeID, debtID); err != nil {
			return err
		}
		payments, err := repos.DebtPaymentRepo().FindByDebtForStore(ctx, storeID, debtID)
		if err != nil {
			return err
		}
		responses = make([]DebtPaymentResponse, len(payments))
		for i := range payments {
			responses[i] = ToDebtPaymentResponse(&payments[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

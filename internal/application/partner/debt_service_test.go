package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// MockDebtRepository is a mock implementation of partner.DebtRepository
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*partner.Debt, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindActiveByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID) (*partner.Debt, error) {
	args := m.Called(ctx, storeID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindByCustomerForStore(ctx context.Context, storeID, customerID uuid.UUID, filter shared.Filter) ([]partner.Debt, error) {
	args := m.Called(ctx, storeID, customerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Debt), args.Error(1)
}

func (m *MockDebtRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]partner.Debt, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Debt), args.Error(1)
}

func (m *MockDebtRepository) Save(ctx context.Context, debt *partner.Debt) error {
	args := m.Called(ctx, debt)
	return args.Error(0)
}

func (m *MockDebtRepository) ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error {
	args := m.Called(ctx, storeID, fromCustomerID, toCustomerID)
	return args.Error(0)
}

// MockDebtPaymentRepository is a mock implementation of partner.DebtPaymentRepository
type MockDebtPaymentRepository struct {
	mock.Mock
}

func (m *MockDebtPaymentRepository) Create(ctx context.Context, payment *partner.DebtPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockDebtPaymentRepository) FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]partner.DebtPayment, error) {
	args := m.Called(ctx, storeID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.DebtPayment), args.Error(1)
}

var (
	testStoreID    = uuid.New()
	testCustomerID = uuid.New()
)

func newDebtScope(debts *MockDebtRepository, payments *MockDebtPaymentRepository) tradeapp.TransactionScope {
	return tradeapp.NewNoOpTransactionScope(nil, nil, nil, nil, nil, nil, nil, nil, debts, payments)
}

func TestDebtServiceApplyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial payment keeps debt active", func(t *testing.T) {
		debts := new(MockDebtRepository)
		payments := new(MockDebtPaymentRepository)
		service := NewDebtService(newDebtScope(debts, payments), zap.NewNop())

		debt, err := partner.NewDebt(testStoreID, testCustomerID, valueobject.NewMoneyIDR(decimal.NewFromInt(15000)))
		require.NoError(t, err)

		debts.On("FindByIDForStore", ctx, testStoreID, debt.ID).Return(debt, nil)
		debts.On("Save", ctx, debt).Return(nil)
		payments.On("Create", ctx, mock.MatchedBy(func(p *partner.DebtPayment) bool {
			return p.DebtID == debt.ID && p.Amount.Equal(decimal.NewFromInt(5000))
		})).Return(nil)

		response, err := service.ApplyPayment(ctx, testStoreID, debt.ID, decimal.NewFromInt(5000))
		require.NoError(t, err)
		assert.Equal(t, string(partner.DebtStatusActive), response.Status)
		assert.True(t, response.RemainingAmount.Equal(decimal.NewFromInt(10000)))
		payments.AssertExpectations(t)
	})

	t.Run("full payment settles the debt", func(t *testing.T) {
		debts := new(MockDebtRepository)
		payments := new(MockDebtPaymentRepository)
		service := NewDebtService(newDebtScope(debts, payments), zap.NewNop())

		debt, err := partner.NewDebt(testStoreID, testCustomerID, valueobject.NewMoneyIDR(decimal.NewFromInt(15000)))
		require.NoError(t, err)

		debts.On("FindByIDForStore", ctx, testStoreID, debt.ID).Return(debt, nil)
		debts.On("Save", ctx, debt).Return(nil)
		payments.On("Create", ctx, mock.Anything).Return(nil)

		response, err := service.ApplyPayment(ctx, testStoreID, debt.ID, decimal.NewFromInt(15000))
		require.NoError(t, err)
		assert.Equal(t, string(partner.DebtStatusPaid), response.Status)
		assert.True(t, response.RemainingAmount.IsZero())
	})

	t.Run("payment on a settled debt fails", func(t *testing.T) {
		debts := new(MockDebtRepository)
		payments := new(MockDebtPaymentRepository)
		service := NewDebtService(newDebtScope(debts, payments), zap.NewNop())

		debt, err := partner.NewDebt(testStoreID, testCustomerID, valueobject.NewMoneyIDR(decimal.NewFromInt(1000)))
		require.NoError(t, err)
		_, err = debt.ApplyPayment(valueobject.NewMoneyIDR(decimal.NewFromInt(1000)))
		require.NoError(t, err)

		debts.On("FindByIDForStore", ctx, testStoreID, debt.ID).Return(debt, nil)

		_, err = service.ApplyPayment(ctx, testStoreID, debt.ID, decimal.NewFromInt(1))
		require.Error(t, err)
		debts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("overpayment fails with invalid amount", func(t *testing.T) {
		debts := new(MockDebtRepository)
		payments := new(MockDebtPaymentRepository)
		service := NewDebtService(newDebtScope(debts, payments), zap.NewNop())

		debt, err := partner.NewDebt(testStoreID, testCustomerID, valueobject.NewMoneyIDR(decimal.NewFromInt(1000)))
		require.NoError(t, err)

		debts.On("FindByIDForStore", ctx, testStoreID, debt.ID).Return(debt, nil)

		_, err = service.ApplyPayment(ctx, testStoreID, debt.ID, decimal.NewFromInt(1001))
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})

	t.Run("unknown debt resolves to not found", func(t *testing.T) {
		debts := new(MockDebtRepository)
		payments := new(MockDebtPaymentRepository)
		service := NewDebtService(newDebtScope(debts, payments), zap.NewNop())

		debtID := uuid.New()
		debts.On("FindByIDForStore", ctx, testStoreID, debtID).Return(nil, shared.ErrNotFound)

		_, err := service.ApplyPayment(ctx, testStoreID, debtID, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

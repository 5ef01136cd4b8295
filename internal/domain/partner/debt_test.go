package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

func TestNewDebt(t *testing.T) {
	storeID := uuid.New()
	customerID := uuid.New()

	t.Run("opens active debt", func(t *testing.T) {
		debt, err := NewDebt(storeID, customerID, valueobject.NewMoneyIDRFromFloat(50000))
		require.NoError(t, err)
		assert.Equal(t, DebtStatusActive, debt.Status)
		assert.True(t, debt.TotalAmount.Equal(decimal.NewFromInt(50000)))
		assert.True(t, debt.PaidAmount.IsZero())
		assert.True(t, debt.RemainingAmount.Equal(decimal.NewFromInt(50000)))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewDebt(storeID, customerID, valueobject.ZeroIDR())
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})

	t.Run("rejects empty customer", func(t *testing.T) {
		_, err := NewDebt(storeID, uuid.Nil, valueobject.NewMoneyIDRFromFloat(1000))
		require.Error(t, err)
	})
}

func TestDebtAccrue(t *testing.T) {
	storeID := uuid.New()

	t.Run("adds onto total and remaining", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		require.NoError(t, debt.Accrue(valueobject.NewMoneyIDRFromFloat(20000)))
		assert.True(t, debt.TotalAmount.Equal(decimal.NewFromInt(70000)))
		assert.True(t, debt.RemainingAmount.Equal(decimal.NewFromInt(70000)))
	})

	t.Run("rejects accrual onto settled debt", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(1000))
		_, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(1000))
		require.NoError(t, err)
		require.Error(t, debt.Accrue(valueobject.NewMoneyIDRFromFloat(500)))
	})
}

func TestDebtApplyPayment(t *testing.T) {
	storeID := uuid.New()

	t.Run("partial payment keeps debt active", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		payment, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(20000))
		require.NoError(t, err)
		require.NotNil(t, payment)

		assert.Equal(t, DebtStatusActive, debt.Status)
		assert.True(t, debt.PaidAmount.Equal(decimal.NewFromInt(20000)))
		assert.True(t, debt.RemainingAmount.Equal(decimal.NewFromInt(30000)))
		assert.Equal(t, debt.ID, payment.DebtID)
		assert.True(t, payment.Amount.Equal(decimal.NewFromInt(20000)))
	})

	t.Run("total stays equal to paid plus remaining", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		_, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(12500))
		require.NoError(t, err)
		assert.True(t, debt.TotalAmount.Equal(debt.PaidAmount.Add(debt.RemainingAmount)))
	})

	t.Run("full payment settles the debt", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		_, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(50000))
		require.NoError(t, err)

		assert.Equal(t, DebtStatusPaid, debt.Status)
		assert.True(t, debt.IsSettled())
		assert.True(t, debt.RemainingAmount.IsZero())
	})

	t.Run("rejects overpayment", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		_, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(50001))
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
		assert.True(t, debt.PaidAmount.IsZero())
	})

	t.Run("rejects non-positive payment", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(50000))
		_, err := debt.ApplyPayment(valueobject.ZeroIDR())
		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
	})

	t.Run("rejects payment on settled debt", func(t *testing.T) {
		debt, _ := NewDebt(storeID, uuid.New(), valueobject.NewMoneyIDRFromFloat(1000))
		_, err := debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(1000))
		require.NoError(t, err)

		_, err = debt.ApplyPayment(valueobject.NewMoneyIDRFromFloat(1))
		require.Error(t, err)
	})
}

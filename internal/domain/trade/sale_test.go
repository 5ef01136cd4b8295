package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleItem(t *testing.T) {
	t.Run("computes line total", func(t *testing.T) {
		item, err := NewSaleItem(uuid.New(), "Kopi Susu", decimal.NewFromInt(15000), 3, nil)
		require.NoError(t, err)
		assert.True(t, item.LineTotal.Equal(decimal.NewFromInt(45000)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), "Kopi Susu", decimal.NewFromInt(15000), 0, nil)
		require.Error(t, err)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := NewSaleItem(uuid.New(), "Kopi Susu", decimal.NewFromInt(-1), 1, nil)
		require.Error(t, err)
	})
}

func TestNewSale(t *testing.T) {
	storeID := uuid.New()

	mustItem := func(price int64, qty int) SaleItem {
		item, err := NewSaleItem(uuid.New(), "Produk", decimal.NewFromInt(price), qty, nil)
		require.NoError(t, err)
		return item
	}

	t.Run("derives total from line totals", func(t *testing.T) {
		items := []SaleItem{mustItem(15000, 2), mustItem(5000, 1)}
		sale, err := NewSale(storeID, "INV-20260829-0001", nil, PaymentCash, items, "")
		require.NoError(t, err)
		assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(35000)))
		assert.Equal(t, sale.ID, sale.Items[0].SaleID)
		assert.Equal(t, sale.ID, sale.Items[1].SaleID)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewSale(storeID, "INV-20260829-0001", nil, PaymentCash, nil, "")
		require.Error(t, err)
	})

	t.Run("rejects unknown payment type", func(t *testing.T) {
		_, err := NewSale(storeID, "INV-20260829-0001", nil, PaymentType("voucher"), []SaleItem{mustItem(1000, 1)}, "")
		require.Error(t, err)
	})

	t.Run("debt sale requires a customer", func(t *testing.T) {
		_, err := NewSale(storeID, "INV-20260829-0001", nil, PaymentDebt, []SaleItem{mustItem(1000, 1)}, "")
		require.Error(t, err)

		customerID := uuid.New()
		sale, err := NewSale(storeID, "INV-20260829-0001", &customerID, PaymentDebt, []SaleItem{mustItem(1000, 1)}, "")
		require.NoError(t, err)
		assert.Equal(t, customerID, *sale.CustomerID)
	})

	t.Run("rejects empty sale number", func(t *testing.T) {
		_, err := NewSale(storeID, "", nil, PaymentCash, []SaleItem{mustItem(1000, 1)}, "")
		require.Error(t, err)
	})
}

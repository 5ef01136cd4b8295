package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/shared"
)

func newMockDebtRepository(t *testing.T) (*GormDebtRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormDebtRepository(gormDB), mock, mockDB
}

func TestGormDebtRepositoryFindByIDForStore(t *testing.T) {
	t.Run("finds existing debt", func(t *testing.T) {
		repo, mock, mockDB := newMockDebtRepository(t)
		defer mockDB.Close()

		debtID := uuid.New()
		storeID := uuid.New()
		customerID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "store_id", "customer_id",
			"total_amount", "paid_amount", "remaining_amount", "status", "version",
		}).AddRow(
			debtID, storeID, customerID,
			decimal.NewFromInt(50000), decimal.NewFromInt(20000), decimal.NewFromInt(30000), "active", 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "debts" WHERE store_id = \$1 AND id = \$2`).
			WithArgs(storeID, debtID, 1).
			WillReturnRows(rows)

		debt, err := repo.FindByIDForStore(context.Background(), storeID, debtID)

		assert.NoError(t, err)
		assert.Equal(t, debtID, debt.ID)
		assert.Equal(t, customerID, debt.CustomerID)
		assert.True(t, debt.RemainingAmount.Equal(decimal.NewFromInt(30000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing debt to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockDebtRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()
		debtID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "debts"`).
			WithArgs(storeID, debtID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByIDForStore(context.Background(), storeID, debtID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormDebtRepositoryReassignCustomer(t *testing.T) {
	t.Run("moves debts in a single bulk update", func(t *testing.T) {
		repo, mock, mockDB := newMockDebtRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()
		fromID := uuid.New()
		toID := uuid.New()

		mock.ExpectExec(`UPDATE "debts" SET "customer_id"=\$1 WHERE store_id = \$2 AND customer_id = \$3`).
			WithArgs(toID, storeID, fromID).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := repo.ReassignCustomer(context.Background(), storeID, fromID, toID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package persistence

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, storeID uuid.UUID, name string, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(storeID, name, valueobject.NewMoneyIDR(decimal.NewFromInt(10000)))
	require.NoError(t, err)
	product.StockQuantity = stock
	require.NoError(t, db.Save(product).Error)
	return product
}

func TestGormProductRepositoryAdjustStock(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("applies a positive delta", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 3)

		updated, err := repo.AdjustStock(ctx, storeID, product.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 8, updated.StockQuantity)
	})

	t.Run("applies a negative delta down to zero", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 5)

		updated, err := repo.AdjustStock(ctx, storeID, product.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.StockQuantity)
	})

	t.Run("rejects a decrement past zero and leaves stock untouched", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 3)

		_, err := repo.AdjustStock(ctx, storeID, product.ID, -4)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)

		reloaded, err := repo.FindByIDForStore(ctx, storeID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, reloaded.StockQuantity)
	})

	t.Run("unknown product yields not found", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)

		_, err := repo.AdjustStock(ctx, storeID, uuid.New(), -1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("product in another store yields not found", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 3)

		_, err := repo.AdjustStock(ctx, uuid.New(), product.ID, -1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("repeated decrements stop exactly at zero", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 7)

		succeeded := 0
		for i := 0; i < 10; i++ {
			if _, err := repo.AdjustStock(ctx, storeID, product.ID, -1); err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, shared.ErrInsufficientStock)
			}
		}
		assert.Equal(t, 7, succeeded)

		reloaded, err := repo.FindByIDForStore(ctx, storeID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, reloaded.StockQuantity)
	})

	t.Run("concurrent decrements never drive stock negative", func(t *testing.T) {
		db := setupProductTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		// In-memory sqlite gives every pooled connection its own database,
		// so all goroutines must share one connection.
		sqlDB.SetMaxOpenConns(1)

		repo := NewGormProductRepository(db)
		product := seedProduct(t, db, storeID, "Kopi", 7)

		const workers = 16
		var wg sync.WaitGroup
		var succeeded, insufficient, unexpected atomic.Int32
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.AdjustStock(ctx, storeID, product.ID, -1)
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, shared.ErrInsufficientStock):
					insufficient.Add(1)
				default:
					unexpected.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(0), unexpected.Load())
		assert.Equal(t, int32(7), succeeded.Load())
		assert.Equal(t, int32(workers-7), insufficient.Load())

		reloaded, err := repo.FindByIDForStore(ctx, storeID, product.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, reloaded.StockQuantity)
	})
}

func TestGormProductRepositoryFindAllForStore(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	t.Run("scopes results to the store", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		seedProduct(t, db, storeID, "Kopi", 3)
		seedProduct(t, db, storeID, "Roti", 5)
		seedProduct(t, db, uuid.New(), "Teh", 2)

		products, err := repo.FindAllForStore(ctx, storeID, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("search filters by name", func(t *testing.T) {
		db := setupProductTestDB(t)
		repo := NewGormProductRepository(db)
		seedProduct(t, db, storeID, "Kopi Susu", 3)
		seedProduct(t, db, storeID, "Roti", 5)

		filter := shared.DefaultFilter()
		filter.Search = "kopi"
		products, err := repo.FindAllForStore(ctx, storeID, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Kopi Susu", products[0].Name)
	})
}

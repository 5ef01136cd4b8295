package persistence

import (
	"context"

	"gorm.io/gorm"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/trade"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. The
// transaction is rolled back when the function returns an error and
// committed otherwise.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos tradeapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides repositories bound to one transaction
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormTransactionalRepositories) PromotionRepo() catalog.PromotionRepository {
	return NewGormPromotionRepository(r.tx)
}

func (r *gormTransactionalRepositories) BundleRepo() catalog.BundleRepository {
	return NewGormBundleRepository(r.tx)
}

func (r *gormTransactionalRepositories) StockMutationRepo() inventory.StockMutationRepository {
	return NewGormStockMutationRepository(r.tx)
}

func (r *gormTransactionalRepositories) SaleRepo() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

func (r *gormTransactionalRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) DebtSaleLinkRepo() trade.DebtSaleLinkRepository {
	return NewGormDebtSaleLinkRepository(r.tx)
}

func (r *gormTransactionalRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r *gormTransactionalRepositories) DebtRepo() partner.DebtRepository {
	return NewGormDebtRepository(r.tx)
}

func (r *gormTransactionalRepositories) DebtPaymentRepo() partner.DebtPaymentRepository {
	return NewGormDebtPaymentRepository(r.tx)
}

var _ tradeapp.TransactionScope = (*GormTransactionScope)(nil)
var _ tradeapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

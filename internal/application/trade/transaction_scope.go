package trade

import (
	"context"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the commerce repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to every repository a commerce
// transaction can touch. All repositories returned share the same underlying
// database transaction, so a sale that decrements stock and accrues debt
// either lands fully or not at all.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	PromotionRepo() catalog.PromotionRepository
	BundleRepo() catalog.BundleRepository
	StockMutationRepo() inventory.StockMutationRepository
	SaleRepo() trade.SaleRepository
	OrderRepo() trade.OrderRepository
	DebtSaleLinkRepo() trade.DebtSaleLinkRepository
	CustomerRepo() partner.CustomerRepository
	DebtRepo() partner.DebtRepository
	DebtPaymentRepo() partner.DebtPaymentRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests and for read paths that don't need one.
type NoOpTransactionScope struct {
	products      catalog.ProductRepository
	promotions    catalog.PromotionRepository
	bundles       catalog.BundleRepository
	mutations     inventory.StockMutationRepository
	sales         trade.SaleRepository
	orders        trade.OrderRepository
	debtSaleLinks trade.DebtSaleLinkRepository
	customers     partner.CustomerRepository
	debts         partner.DebtRepository
	debtPayments  partner.DebtPaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	products catalog.ProductRepository,
	promotions catalog.PromotionRepository,
	bundles catalog.BundleRepository,
	mutations inventory.StockMutationRepository,
	sales trade.SaleRepository,
	orders trade.OrderRepository,
	debtSaleLinks trade.DebtSaleLinkRepository,
	customers partner.CustomerRepository,
	debts partner.DebtRepository,
	debtPayments partner.DebtPaymentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		products:      products,
		promotions:    promotions,
		bundles:       bundles,
		mutations:     mutations,
		sales:         sales,
		orders:        orders,
		debtSaleLinks: debtSaleLinks,
		customers:     customers,
		debts:         debts,
		debtPayments:  debtPayments,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.products }

// PromotionRepo returns the promotion repository
func (s *NoOpTransactionScope) PromotionRepo() catalog.PromotionRepository { return s.promotions }

// BundleRepo returns the bundle repository
func (s *NoOpTransactionScope) BundleRepo() catalog.BundleRepository { return s.bundles }

// StockMutationRepo returns the stock mutation repository
func (s *NoOpTransactionScope) StockMutationRepo() inventory.StockMutationRepository {
	return s.mutations
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() trade.SaleRepository { return s.sales }

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() trade.OrderRepository { return s.orders }

// DebtSaleLinkRepo returns the debt-sale link repository
func (s *NoOpTransactionScope) DebtSaleLinkRepo() trade.DebtSaleLinkRepository {
	return s.debtSaleLinks
}

// CustomerRepo returns the customer repository
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository { return s.customers }

// DebtRepo returns the debt repository
func (s *NoOpTransactionScope) DebtRepo() partner.DebtRepository { return s.debts }

// DebtPaymentRepo returns the debt payment repository
func (s *NoOpTransactionScope) DebtPaymentRepo() partner.DebtPaymentRepository {
	return s.debtPayments
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

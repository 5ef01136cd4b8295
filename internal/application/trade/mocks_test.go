package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDsForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, storeID, id uuid.UUID, delta int) (*catalog.Product, error) {
	args := m.Called(ctx, storeID, id, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

// MockPromotionRepository is a mock implementation of catalog.PromotionRepository
type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Promotion, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindActiveForProduct(ctx context.Context, storeID, productID uuid.UUID, at time.Time) ([]catalog.Promotion, error) {
	args := m.Called(ctx, storeID, productID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) Save(ctx context.Context, promotion *catalog.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

// MockBundleRepository is a mock implementation of catalog.BundleRepository
type MockBundleRepository struct {
	mock.Mock
}

func (m *MockBundleRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Bundle, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Bundle), args.Error(1)
}

func (m *MockBundleRepository) Save(ctx context.Context, bundle *catalog.Bundle) error {
	args := m.Called(ctx, bundle)
	return args.Error(0)
}

// MockStockMutationRepository is a mock implementation of inventory.StockMutationRepository
type MockStockMutationRepository struct {
	mock.Mock
}

func (m *MockStockMutationRepository) Create(ctx context.Context, mutation *inventory.StockMutation) error {
	args := m.Called(ctx, mutation)
	return args.Error(0)
}

func (m *MockStockMutationRepository) FindByProductForStore(ctx context.Context, storeID, productID uuid.UUID, filter shared.Filter) ([]inventory.StockMutation, error) {
	args := m.Called(ctx, storeID, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMutation), args.Error(1)
}

func (m *MockStockMutationRepository) CountByProductForStore(ctx context.Context, storeID, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSaleRepository is a mock implementation of trade.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*trade.Sale, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindBySaleNumberForStore(ctx context.Context, storeID uuid.UUID, saleNumber string) (*trade.Sale, error) {
	args := m.Called(ctx, storeID, saleNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]trade.Sale, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Sale), args.Error(1)
}

func (m *MockSaleRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) GenerateSaleNumber(ctx context.Context, storeID uuid.UUID) (string, error) {
	args := m.Called(ctx, storeID)
	return args.String(0), args.Error(1)
}

func (m *MockSaleRepository) ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error {
	args := m.Called(ctx, storeID, fromCustomerID, toCustomerID)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatusForStore(ctx context.Context, storeID uuid.UUID, status trade.OrderStatus, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, storeID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GenerateOrderNumber(ctx context.Context, storeID uuid.UUID) (string, error) {
	args := m.Called(ctx, storeID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) ReassignCustomer(ctx context.Context, storeID, fromCustomerID, toCustomerID uuid.UUID) error {
	args := m.Called(ctx, storeID, fromCustomerID, toCustomerID)
	return args.Error(0)
}

// MockDebtSaleLinkRepository is a mock implementation of trade.DebtSaleLinkRepository
type MockDebtSaleLinkRepository struct {
	mock.Mock
}

func (m *MockDebtSaleLinkRepository) Create(ctx context.Context, link *trade.DebtSaleLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockDebtSaleLinkRepository) FindByDebtForStore(ctx context.Context, storeID, debtID uuid.UUID) ([]trade.DebtSaleLink, error) {
	args := m.Called(ctx, storeID, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.DebtSaleLink), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhoneForStore(ctx context.Context, storeID uuid.UUID, phone string) (*partner.Customer, error) {
	args := m.Called(ctx, storeID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

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

// testMocks bundles every repository mock behind a NoOpTransactionScope
type testMocks struct {
	products      *MockProductRepository
	promotions    *MockPromotionRepository
	bundles       *MockBundleRepository
	mutations     *MockStockMutationRepository
	sales         *MockSaleRepository
	orders        *MockOrderRepository
	debtSaleLinks *MockDebtSaleLinkRepository
	customers     *MockCustomerRepository
	debts         *MockDebtRepository
	debtPayments  *MockDebtPaymentRepository
}

func newTestMocks() *testMocks {
	return &testMocks{
		products:      new(MockProductRepository),
		promotions:    new(MockPromotionRepository),
		bundles:       new(MockBundleRepository),
		mutations:     new(MockStockMutationRepository),
		sales:         new(MockSaleRepository),
		orders:        new(MockOrderRepository),
		debtSaleLinks: new(MockDebtSaleLinkRepository),
		customers:     new(MockCustomerRepository),
		debts:         new(MockDebtRepository),
		debtPayments:  new(MockDebtPaymentRepository),
	}
}

func (m *testMocks) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(
		m.products, m.promotions, m.bundles, m.mutations,
		m.sales, m.orders, m.debtSaleLinks,
		m.customers, m.debts, m.debtPayments,
	)
}

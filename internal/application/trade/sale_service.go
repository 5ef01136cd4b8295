package trade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/pricing"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
	"github.com/tokopos/backend/internal/domain/trade"
)

// SaleService posts point-of-sale transactions. Every sale runs inside a
// single transaction scope: the sale rows, the stock decrements, their audit
// records and any debt accrual land together or not at all.
type SaleService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// Sale numbers are drawn read-then-increment, so two concurrent posts can
// collide on the store-unique number index. The losing transaction rolls
// back cleanly and is retried with a fresh number.
const maxPostAttempts = 3

// NewSaleService creates a new SaleService
func NewSaleService(scope TransactionScope, logger *zap.Logger) *SaleService {
	return &SaleService{scope: scope, logger: logger}
}

// PostSale finalizes a sale for the store. Line items reference products or
// bundles; bundle lines are decomposed into per-product items with the
// bundle price apportioned across them. Debt sales resolve or create the
// customer by phone and accrue the sale total onto their active debt.
func (s *SaleService) PostSale(ctx context.Context, storeID, actorID uuid.UUID, req PostSaleRequest) (*SaleResponse, error) {
	paymentType := trade.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must contain at least one item")
	}
	for _, line := range req.Items {
		if (line.ProductID == nil) == (line.BundleID == nil) {
			return nil, shared.NewDomainError("INVALID_LINE", "Each line must reference exactly one product or bundle")
		}
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Line quantity must be positive")
		}
	}
	if paymentType == trade.PaymentDebt && strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Debt sales require a customer phone")
	}

	var response SaleResponse
	var err error
	for attempt := 1; attempt <= maxPostAttempts; attempt++ {
		err = s.postOnce(ctx, storeID, actorID, paymentType, req, &response)
		if !errors.Is(err, shared.ErrConflict) || attempt == maxPostAttempts {
			break
		}
		s.logger.Warn("sale conflicted, retrying",
			zap.String("store_id", storeID.String()),
			zap.Int("attempt", attempt))
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("sale posted",
		zap.String("store_id", storeID.String()),
		zap.String("sale_number", response.SaleNumber),
		zap.String("payment_type", response.PaymentType),
		zap.String("total", response.TotalAmount.String()))
	return &response, nil
}

func (s *SaleService) postOnce(ctx context.Context, storeID, actorID uuid.UUID, paymentType trade.PaymentType, req PostSaleRequest, response *SaleResponse) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customerID, err := resolveCustomerByPhone(ctx, repos, storeID, req.CustomerPhone, req.CustomerName)
		if err != nil {
			return err
		}

		items, err := s.expandLines(ctx, repos, storeID, req.Items)
		if err != nil {
			return err
		}

		saleNumber, err := repos.SaleRepo().GenerateSaleNumber(ctx, storeID)
		if err != nil {
			return err
		}

		sale, err := trade.NewSale(storeID, saleNumber, customerID, paymentType, items, req.Note)
		if err != nil {
			return err
		}
		if err := repos.SaleRepo().Create(ctx, sale); err != nil {
			return err
		}

		if err := s.consumeStock(ctx, repos, storeID, actorID, sale, inventory.ReasonSale); err != nil {
			return err
		}

		if paymentType == trade.PaymentDebt {
			if err := s.accrueDebt(ctx, repos, storeID, *customerID, sale); err != nil {
				return err
			}
		}

		*response = ToSaleResponse(sale)
		return nil
	})
}

// GetSale returns a posted sale
func (s *SaleService) GetSale(ctx context.Context, storeID, saleID uuid.UUID) (*SaleResponse, error) {
	var response SaleResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByIDForStore(ctx, storeID, saleID)
		if err != nil {
			return err
		}
		response = ToSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListSales returns sales for the store, newest first
func (s *SaleService) ListSales(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	var page shared.Paginated[SaleResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		sales, err := repos.SaleRepo().FindAllForStore(ctx, storeID, filter)
		if err != nil {
			return err
		}
		total, err := repos.SaleRepo().CountForStore(ctx, storeID)
		if err != nil {
			return err
		}
		responses := make([]SaleResponse, len(sales))
		for i := range sales {
			responses[i] = ToSaleResponse(&sales[i])
		}
		page = shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// expandLines turns request lines into sale items. Product lines take the
// caller-supplied unit price when present, the resolved effective price
// otherwise. Bundle lines become one item per constituent product with the
// bundle price decomposed across them.
func (s *SaleService) expandLines(ctx context.Context, repos TransactionalRepositories, storeID uuid.UUID, lines []SaleLineInput) ([]trade.SaleItem, error) {
	now := time.Now()
	items := make([]trade.SaleItem, 0, len(lines))

	for _, line := range lines {
		if line.ProductID != nil {
			product, err := repos.ProductRepo().FindByIDForStore(ctx, storeID, *line.ProductID)
			if err != nil {
				return nil, err
			}

			unitPrice := decimal.Decimal{}
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			} else {
				promotions, err := repos.PromotionRepo().FindActiveForProduct(ctx, storeID, product.ID, now)
				if err != nil {
					return nil, err
				}
				unitPrice = pricing.ResolveEffectivePrice(product, promotions, now).Price
			}

			item, err := trade.NewSaleItem(product.ID, product.Name, unitPrice, line.Quantity, nil)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			continue
		}

		bundleItems, err := s.expandBundleLine(ctx, repos, storeID, *line.BundleID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, bundleItems...)
	}
	return items, nil
}

func (s *SaleService) expandBundleLine(ctx context.Context, repos TransactionalRepositories, storeID, bundleID uuid.UUID, quantity int) ([]trade.SaleItem, error) {
	bundle, err := repos.BundleRepo().FindByIDForStore(ctx, storeID, bundleID)
	if err != nil {
		return nil, err
	}
	if len(bundle.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_BUNDLE", "Bundle has no items")
	}

	productIDs := make([]uuid.UUID, len(bundle.Items))
	for i, item := range bundle.Items {
		productIDs[i] = item.ProductID
	}
	products, err := repos.ProductRepo().FindByIDsForStore(ctx, storeID, productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	bundleLines := make([]pricing.BundleLine, len(bundle.Items))
	for i, item := range bundle.Items {
		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, shared.ErrNotFound
		}
		bundleLines[i] = pricing.BundleLine{
			ProductID:    product.ID,
			Quantity:     item.Quantity,
			SellingPrice: product.SellingPrice,
		}
	}

	allocations := pricing.DecomposeBundle(bundle.Price, quantity, bundleLines)
	items := make([]trade.SaleItem, len(allocations))
	for i, alloc := range allocations {
		product := productByID[alloc.ProductID]
		// Line totals come from the decomposition so they sum exactly to
		// the bundle price; the unit price shown is derived, not exact.
		items[i] = trade.SaleItem{
			ID:          uuid.New(),
			ProductID:   alloc.ProductID,
			ProductName: product.Name,
			UnitPrice:   alloc.LineTotal.Div(decimal.NewFromInt(int64(alloc.Quantity))).Round(2),
			Quantity:    alloc.Quantity,
			LineTotal:   alloc.LineTotal,
			BundleID:    &bundle.ID,
		}
	}
	return items, nil
}

// consumeStock decrements stock for every sale item through the stock
// ledger. Quantities are aggregated per product first so a product appearing
// on multiple lines is adjusted once.
func (s *SaleService) consumeStock(ctx context.Context, repos TransactionalRepositories, storeID, actorID uuid.UUID, sale *trade.Sale, reason inventory.MutationReason) error {
	ledger := inventory.NewStockLedger(repos.ProductRepo(), repos.StockMutationRepo())

	quantities := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0, len(sale.Items))
	for _, item := range sale.Items {
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	for _, productID := range order {
		product, err := ledger.Adjust(ctx, storeID, productID, -quantities[productID], reason, actorID, sale.SaleNumber)
		if err != nil {
			return err
		}
		for _, event := range product.GetDomainEvents() {
			if event.EventType() == catalog.EventTypeStockBelowMinimum {
				s.logger.Warn("stock below minimum",
					zap.String("store_id", storeID.String()),
					zap.String("product_id", productID.String()),
					zap.Int("stock_quantity", product.StockQuantity),
					zap.Int("min_stock_alert", product.MinStockAlert))
			}
		}
		product.ClearDomainEvents()
	}
	return nil
}

// accrueDebt adds the sale total onto the customer's active debt, opening a
// new one when none exists, and links the sale to the debt.
func (s *SaleService) accrueDebt(ctx context.Context, repos TransactionalRepositories, storeID, customerID uuid.UUID, sale *trade.Sale) error {
	amount := valueobject.NewMoneyIDR(sale.TotalAmount)

	debt, err := repos.DebtRepo().FindActiveByCustomerForStore(ctx, storeID, customerID)
	switch {
	case err == nil:
		if err := debt.Accrue(amount); err != nil {
			return err
		}
	case errors.Is(err, shared.ErrNotFound):
		debt, err = partner.NewDebt(storeID, customerID, amount)
		if err != nil {
			return err
		}
	default:
		return err
	}

	if err := repos.DebtRepo().Save(ctx, debt); err != nil {
		return err
	}
	return repos.DebtSaleLinkRepo().Create(ctx, trade.NewDebtSaleLink(storeID, debt.ID, sale.ID, sale.TotalAmount))
}

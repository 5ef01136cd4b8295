package trade

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/inventory"
	"github.com/tokopos/backend/internal/domain/pricing"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/trade"
)

// OrderService manages customer orders and their fulfillment lifecycle.
// Delivery is the only transition with side effects: it consumes stock and
// posts the corresponding sale in one transaction.
type OrderService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, logger *zap.Logger) *OrderService {
	return &OrderService{scope: scope, logger: logger}
}

// CreateOrder creates a pending order. Prices are locked in at creation:
// caller-supplied unit prices are honored, otherwise the effective price at
// this instant is resolved per line.
func (s *OrderService) CreateOrder(ctx context.Context, storeID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	paymentType := trade.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if paymentType == trade.PaymentDebt && strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Debt orders require a customer phone")
	}

	var response OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customerID, err := resolveCustomerByPhone(ctx, repos, storeID, req.CustomerPhone, req.CustomerName)
		if err != nil {
			return err
		}

		now := time.Now()
		items := make([]trade.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			product, err := repos.ProductRepo().FindByIDForStore(ctx, storeID, line.ProductID)
			if err != nil {
				return err
			}

			var unitPrice decimal.Decimal
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			} else {
				promotions, err := repos.PromotionRepo().FindActiveForProduct(ctx, storeID, product.ID, now)
				if err != nil {
					return err
				}
				unitPrice = pricing.ResolveEffectivePrice(product, promotions, now).Price
			}

			item, err := trade.NewOrderItem(product.ID, product.Name, unitPrice, line.Quantity)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		orderNumber, err := repos.OrderRepo().GenerateOrderNumber(ctx, storeID)
		if err != nil {
			return err
		}

		order, err := trade.NewOrder(storeID, orderNumber, customerID, paymentType, items, req.Note)
		if err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("store_id", storeID.String()),
		zap.String("order_number", response.OrderNumber),
		zap.String("total", response.TotalAmount.String()))
	return &response, nil
}

// TransitionOrderStatus moves an order to a new status. Transitions other
// than delivery are plain state changes. Delivering consumes stock per line,
// posts the matching sale and marks the order delivered, all atomically.
// Delivering an already delivered order is a no-op returning the unchanged
// order.
func (s *OrderService) TransitionOrderStatus(ctx context.Context, storeID, actorID, orderID uuid.UUID, target trade.OrderStatus) (*OrderResponse, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	var response OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByIDForStore(ctx, storeID, orderID)
		if err != nil {
			return err
		}

		if target == trade.OrderStatusDelivered {
			if order.IsDelivered() {
				response = ToOrderResponse(order)
				return nil
			}
			if err := s.deliver(ctx, repos, storeID, actorID, order); err != nil {
				return err
			}
		} else {
			if !order.Status.CanTransitionTo(target) {
				return shared.NewDomainError("INVALID_TRANSITION",
					"Cannot transition order from "+string(order.Status)+" to "+string(target))
			}
			switch target {
			case trade.OrderStatusConfirmed:
				err = order.Confirm()
			case trade.OrderStatusCancelled:
				err = order.Cancel()
			default:
				err = shared.ErrInvalidState
			}
			if err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order transitioned",
		zap.String("store_id", storeID.String()),
		zap.String("order_id", orderID.String()),
		zap.String("status", response.Status))
	return &response, nil
}

// GetOrder returns a single order
func (s *OrderService) GetOrder(ctx context.Context, storeID, orderID uuid.UUID) (*OrderResponse, error) {
	var response OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByIDForStore(ctx, storeID, orderID)
		if err != nil {
			return err
		}
		response = ToOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListOrders returns orders for the store, newest first
func (s *OrderService) ListOrders(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	var page shared.Paginated[OrderResponse]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		orders, err := repos.OrderRepo().FindAllForStore(ctx, storeID, filter)
		if err != nil {
			return err
		}
		total, err := repos.OrderRepo().CountForStore(ctx, storeID)
		if err != nil {
			return err
		}
		responses := make([]OrderResponse, len(orders))
		for i := range orders {
			responses[i] = ToOrderResponse(&orders[i])
		}
		page = shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// deliver fulfills the order: one stock decrement per line through the
// ledger, then a sale whose number derives from the order id so a retry can
// never post a second sale for the same order.
func (s *OrderService) deliver(ctx context.Context, repos TransactionalRepositories, storeID, actorID uuid.UUID, order *trade.Order) error {
	if err := order.Deliver(); err != nil {
		return err
	}

	saleNumber := FulfillmentSaleNumber(order.ID)
	if _, err := repos.SaleRepo().FindBySaleNumberForStore(ctx, storeID, saleNumber); err == nil {
		return shared.ErrConflict
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	ledger := inventory.NewStockLedger(repos.ProductRepo(), repos.StockMutationRepo())
	saleItems := make([]trade.SaleItem, len(order.Items))
	for i, line := range order.Items {
		product, err := ledger.Adjust(ctx, storeID, line.ProductID, -line.Quantity, inventory.ReasonOrderFulfillment, actorID, order.OrderNumber)
		if err != nil {
			return err
		}
		product.ClearDomainEvents()

		saleItems[i] = trade.SaleItem{
			ID:          uuid.New(),
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		}
	}

	sale, err := trade.NewSale(storeID, saleNumber, order.CustomerID, trade.PaymentCash, saleItems, order.Note)
	if err != nil {
		return err
	}
	return repos.SaleRepo().Create(ctx, sale)
}

// FulfillmentSaleNumber derives the sale number for a delivered order from
// the order id, making fulfillment deterministic and retry-safe.
func FulfillmentSaleNumber(orderID uuid.UUID) string {
	return "INV-ORD-" + strings.ToUpper(strings.ReplaceAll(orderID.String(), "-", "")[:12])
}

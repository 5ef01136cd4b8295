package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
)

// OrderStatus represents the fulfillment state of a customer order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can move to the target status.
// Delivered and cancelled are terminal. Delivery is allowed straight from
// pending without an explicit confirmation step. A confirmed order cannot
// be cancelled anymore.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusDelivered
	}
	return false
}

// Order is a customer order awaiting fulfillment. Unlike a sale it has a
// lifecycle: stock is only decremented and a sale posted when the order is
// delivered.
type Order struct {
	shared.StoreAggregateRoot
	OrderNumber string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_order_store_number,priority:2"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentType PaymentType     `gorm:"type:varchar(10);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Note        string          `gorm:"type:text"`
	DeliveredAt *time.Time      `gorm:""`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order with the price locked in at order time
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrder creates a pending order from its items
func NewOrder(storeID uuid.UUID, orderNumber string, customerID *uuid.UUID, paymentType PaymentType, items []OrderItem, note string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if paymentType == PaymentDebt && customerID == nil {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Debt orders require a customer")
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Order item quantity must be positive")
		}
		total = total.Add(items[i].LineTotal)
	}

	order := &Order{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		OrderNumber:        orderNumber,
		CustomerID:         customerID,
		Status:             OrderStatusPending,
		PaymentType:        paymentType,
		TotalAmount:        total,
		Note:               note,
		Items:              items,
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	return order, nil
}

// NewOrderItem creates an order line with the price locked in now
func NewOrderItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return OrderItem{}, shared.NewDomainError("INVALID_QUANTITY", "Order item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return OrderItem{}, shared.ErrInvalidAmount
	}
	return OrderItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
	}, nil
}

// Confirm moves a pending order to confirmed
func (o *Order) Confirm() error {
	return o.transition(OrderStatusConfirmed)
}

// Deliver marks a confirmed order as delivered. Delivering an already
// delivered order is a no-op so retries are safe.
func (o *Order) Deliver() error {
	if o.Status == OrderStatusDelivered {
		return nil
	}
	if err := o.transition(OrderStatusDelivered); err != nil {
		return err
	}
	now := time.Now()
	o.DeliveredAt = &now
	return nil
}

// Cancel voids a pending order
func (o *Order) Cancel() error {
	return o.transition(OrderStatusCancelled)
}

// IsDelivered returns true once the order has been fulfilled
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

func (o *Order) transition(target OrderStatus) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot transition order from "+string(o.Status)+" to "+string(target))
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
	return nil
}

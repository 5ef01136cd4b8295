package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/trade"
)

// ==================== Sale DTOs ====================

// SaleLineInput is one line of a sale request. Exactly one of ProductID or
// BundleID must be set. UnitPrice is optional for product lines: when absent
// the effective price is resolved at posting time.
type SaleLineInput struct {
	ProductID *uuid.UUID       `json:"product_id"`
	BundleID  *uuid.UUID       `json:"bundle_id"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// PostSaleRequest represents a request to post a point-of-sale transaction
type PostSaleRequest struct {
	Items         []SaleLineInput `json:"items" binding:"required,min=1,dive"`
	PaymentType   string          `json:"payment_type" binding:"required,oneof=cash card debt"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerName  string          `json:"customer_name"`
	Note          string          `json:"note"`
}

// SaleItemResponse represents one sale line in responses
type SaleItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	BundleID    *uuid.UUID      `json:"bundle_id,omitempty"`
}

// SaleResponse represents a posted sale
type SaleResponse struct {
	ID          uuid.UUID          `json:"id"`
	SaleNumber  string             `json:"sale_number"`
	CustomerID  *uuid.UUID         `json:"customer_id,omitempty"`
	PaymentType string             `json:"payment_type"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Note        string             `json:"note,omitempty"`
	SoldAt      time.Time          `json:"sold_at"`
	Items       []SaleItemResponse `json:"items"`
}

// ToSaleResponse converts a sale aggregate to its response representation
func ToSaleResponse(sale *trade.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(sale.Items))
	for i, item := range sale.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
			BundleID:    item.BundleID,
		}
	}
	return SaleResponse{
		ID:          sale.ID,
		SaleNumber:  sale.SaleNumber,
		CustomerID:  sale.CustomerID,
		PaymentType: string(sale.PaymentType),
		TotalAmount: sale.TotalAmount,
		Note:        sale.Note,
		SoldAt:      sale.SoldAt,
		Items:       items,
	}
}

// ==================== Order DTOs ====================

// OrderLineInput is one line of a create-order request. UnitPrice is
// optional: when absent the effective price is resolved at order time.
type OrderLineInput struct {
	ProductID uuid.UUID        `json:"product_id" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest represents a request to create a customer order
type CreateOrderRequest struct {
	Items         []OrderLineInput `json:"items" binding:"required,min=1,dive"`
	PaymentType   string           `json:"payment_type" binding:"required,oneof=cash card debt"`
	CustomerPhone string           `json:"customer_phone"`
	CustomerName  string           `json:"customer_name"`
	Note          string           `json:"note"`
}

// TransitionOrderRequest represents a request to move an order to a new status
type TransitionOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed delivered cancelled"`
}

// OrderItemResponse represents one order line in responses
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	CustomerID  *uuid.UUID          `json:"customer_id,omitempty"`
	Status      string              `json:"status"`
	PaymentType string              `json:"payment_type"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Note        string              `json:"note,omitempty"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts an order aggregate to its response representation
func ToOrderResponse(order *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		}
	}
	return OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		PaymentType: string(order.PaymentType),
		TotalAmount: order.TotalAmount,
		Note:        order.Note,
		DeliveredAt: order.DeliveredAt,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}

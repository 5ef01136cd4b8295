package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/trade"
)

// OrderHandler handles customer order requests
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}

	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// TransitionStatus handles PATCH /api/v1/orders/:id/status
func (h *OrderHandler) TransitionStatus(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	actorID, ok := h.getUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req tradeapp.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.orderService.TransitionOrderStatus(
		c.Request.Context(), storeID, actorID, orderID, trade.OrderStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// GetOrder handles GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	orderID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), storeID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders handles GET /api/v1/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	filter, ok := h.buildFilter(c)
	if !ok {
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/tokopos/backend/internal/application/inventory"
)

// StockHandler handles stock adjustment and audit trail requests
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// ImportStock handles POST /api/v1/stock/imports
func (h *StockHandler) ImportStock(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	actorID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req inventoryapp.ImportStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.stockService.ImportStock(c.Request.Context(), storeID, actorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// EditStock handles POST /api/v1/stock/edits
func (h *StockHandler) EditStock(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	actorID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req inventoryapp.EditStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.stockService.EditStock(c.Request.Context(), storeID, actorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// ListMutations handles GET /api/v1/products/:id/mutations
func (h *StockHandler) ListMutations(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	productID, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	filter, ok := h.buildFilter(c)
	if !ok {
		return
	}

	page, err := h.stockService.ListMutations(c.Request.Context(), storeID, productID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

package handler

import (
	"github.com/gin-gonic/gin"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
)

// SaleHandler handles point-of-sale transaction requests
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// PostSale handles POST /api/v1/sales
func (h *SaleHandler) PostSale(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	actorID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req tradeapp.PostSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.PostSale(c.Request.Context(), storeID, actorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, sale)
}

// GetSale handles GET /api/v1/sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	saleID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), storeID, saleID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sale)
}

// ListSales handles GET /api/v1/sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	filter, ok := h.buildFilter(c)
	if !ok {
		return
	}

	page, err := h.saleService.ListSales(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

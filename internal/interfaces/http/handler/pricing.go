package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	pricingapp "github.com/tokopos/backend/internal/application/pricing"
)

// PricingHandler handles effective price lookups
type PricingHandler struct {
	BaseHandler
	pricingService *pricingapp.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *pricingapp.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// GetEffectivePrice handles GET /api/v1/products/:id/effective-price.
// An optional ?at= query parameter (RFC 3339) resolves the price at a
// different instant; it defaults to now.
func (h *PricingHandler) GetEffectivePrice(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	productID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.BadRequest(c, "Invalid 'at' timestamp, expected RFC 3339")
			return
		}
		at = parsed
	}

	price, err := h.pricingService.ResolveEffectivePrice(c.Request.Context(), storeID, productID, at)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, price)
}

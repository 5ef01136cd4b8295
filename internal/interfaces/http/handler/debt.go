package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/tokopos/backend/internal/application/partner"
)

// DebtHandler handles debt ledger requests
type DebtHandler struct {
	BaseHandler
	debtService *partnerapp.DebtService
}

// NewDebtHandler creates a new debt handler
func NewDebtHandler(debtService *partnerapp.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// ApplyPayment handles POST /api/v1/debts/:id/payments
func (h *DebtHandler) ApplyPayment(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	debtID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partnerapp.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	debt, err := h.debtService.ApplyPayment(c.Request.Context(), storeID, debtID, req.Amount)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debt)
}

// GetDebt handles GET /api/v1/debts/:id
func (h *DebtHandler) GetDebt(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	debtID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	debt, err := h.debtService.GetDebt(c.Request.Context(), storeID, debtID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debt)
}

// ListPayments handles GET /api/v1/debts/:id/payments
func (h *DebtHandler) ListPayments(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	debtID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	payments, err := h.debtService.ListPayments(c.Request.Context(), storeID, debtID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payments)
}

// ListCustomerDebts handles GET /api/v1/customers/:id/debts
func (h *DebtHandler) ListCustomerDebts(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	customerID, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	filter, ok := h.buildFilter(c)
	if !ok {
		return
	}

	debts, err := h.debtService.ListDebtsByCustomer(c.Request.Context(), storeID, customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, debts)
}

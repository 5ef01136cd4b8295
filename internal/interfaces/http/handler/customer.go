package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/tokopos/backend/internal/application/partner"
)

// CreateCustomerRequest represents a request to register a customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Phone string `json:"phone" binding:"required,phone"`
}

// CustomerHandler handles customer identity requests
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer handles POST /api/v1/customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), storeID, req.Name, req.Phone)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, customer)
}

// MergeCustomers handles POST /api/v1/customers/merge
func (h *CustomerHandler) MergeCustomers(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}

	var req partnerapp.MergeCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	target, err := h.customerService.MergeCustomers(c.Request.Context(), storeID, req.SourceID, req.TargetID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, target)
}

// GetCustomer handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	customerID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), storeID, customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, customer)
}

// ListCustomers handles GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	storeID, ok := h.getStoreID(c)
	if !ok {
		return
	}
	filter, ok := h.buildFilter(c)
	if !ok {
		return
	}

	page, err := h.customerService.ListCustomers(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

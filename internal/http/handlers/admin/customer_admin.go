package admin

import (
	"strconv"
	"strings"

	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/repository"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCustomers lists the customer directory.
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	customers, total, err := h.CustomerService.List(repository.CustomerListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list customers", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, customers, pagination)
}

// GetCustomer returns one customer.
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	customer, err := h.CustomerService.Get(id)
	if err != nil {
		respondServiceError(c, err, "failed to load customer")
		return
	}
	response.Success(c, customer)
}

// CustomerRequest is the customer create/update payload.
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

func (r CustomerRequest) toInput() service.CustomerInput {
	return service.CustomerInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		GSTIN:   r.GSTIN,
		Address: r.Address,
		Status:  r.Status,
	}
}

// CreateCustomer registers a customer.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	customer, err := h.CustomerService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create customer")
		return
	}
	response.Success(c, customer)
}

// UpdateCustomer updates a customer profile.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	customer, err := h.CustomerService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update customer")
		return
	}
	response.Success(c, customer)
}

// DeleteCustomer removes a customer.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	if err := h.CustomerService.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete customer")
		return
	}
	response.SuccessWithMsg(c, "customer deleted", nil)
}

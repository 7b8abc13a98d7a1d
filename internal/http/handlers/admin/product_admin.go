package admin

import (
	"strconv"
	"strings"

	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/repository"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func parseResourceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// ListProducts lists the catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	var categoryID uint
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			categoryID = uint(parsed)
		}
	}

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(c.Query("search")),
		OnlyActive:   c.Query("only_active") == "true",
		WithCategory: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list products", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProduct returns one product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondServiceError(c, err, "failed to load product")
		return
	}
	response.Success(c, product)
}

// ProductRequest is the product create/update payload.
type ProductRequest struct {
	CategoryID  uint            `json:"category_id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	Unit        string          `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Variants    []string        `json:"variants"`
	Images      []string        `json:"images"`
	IsActive    *bool           `json:"is_active"`
	SortOrder   int             `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		HSNCode:     r.HSNCode,
		Unit:        r.Unit,
		Price:       r.Price,
		Variants:    r.Variants,
		Images:      r.Images,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// CreateProduct adds a catalog product.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create product")
		return
	}
	response.Success(c, product)
}

// UpdateProduct updates a catalog product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update product")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a catalog product.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete product")
		return
	}
	response.SuccessWithMsg(c, "product deleted", nil)
}

package admin

import (
	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ListCategories returns the category tree.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list categories", err)
		return
	}
	response.Success(c, categories)
}

// CategoryRequest is the category create/update payload.
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ParentID  *uint  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:      req.Name,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create category")
		return
	}
	response.Success(c, category)
}

// UpdateCategory updates a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Update(id, service.CategoryInput{
		Name:      req.Name,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update category")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes an empty category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete category")
		return
	}
	response.SuccessWithMsg(c, "category deleted", nil)
}

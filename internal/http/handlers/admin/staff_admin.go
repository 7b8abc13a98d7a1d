package admin

import (
	"strings"

	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// ListStaff lists operator accounts.
func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.AuthService.ListStaff()
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list staff", err)
		return
	}
	response.Success(c, staff)
}

// CreateStaffRequest is the operator account creation payload.
type CreateStaffRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// CreateStaff registers an operator account and links its workflow role in
// the access policy store.
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	staff, err := h.AuthService.CreateStaff(service.StaffInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		Role:     strings.TrimSpace(req.Role),
	})
	if err != nil {
		respondServiceError(c, err, "failed to create staff account")
		return
	}
	if h.AuthzService != nil {
		if err := h.AuthzService.SetStaffRoles(staff.ID, []string{staff.Role}); err != nil {
			requestLog(c).Warnw("staff_role_link_failed", "staff_id", staff.ID, "role", staff.Role, "error", err)
		}
	}
	response.Success(c, staff)
}

// UpdateStaffRoleRequest is the role change payload.
type UpdateStaffRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateStaffRole changes an account's workflow role.
func (h *Handler) UpdateStaffRole(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	var req UpdateStaffRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	staff, err := h.AuthService.UpdateStaffRole(id, strings.TrimSpace(req.Role))
	if err != nil {
		respondServiceError(c, err, "failed to update staff role")
		return
	}
	if h.AuthzService != nil {
		if err := h.AuthzService.SetStaffRoles(staff.ID, []string{staff.Role}); err != nil {
			requestLog(c).Warnw("staff_role_link_failed", "staff_id", staff.ID, "role", staff.Role, "error", err)
		}
	}
	response.Success(c, staff)
}

// DeleteStaff removes an operator account and its policy links.
func (h *Handler) DeleteStaff(c *gin.Context) {
	id, ok := parseResourceID(c)
	if !ok {
		return
	}
	if err := h.AuthService.DeleteStaff(id); err != nil {
		respondServiceError(c, err, "failed to delete staff account")
		return
	}
	if h.AuthzService != nil {
		if err := h.AuthzService.SetStaffRoles(id, nil); err != nil {
			requestLog(c).Warnw("staff_role_unlink_failed", "staff_id", id, "error", err)
		}
	}
	response.SuccessWithMsg(c, "staff account deleted", nil)
}

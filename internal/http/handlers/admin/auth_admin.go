package admin

import (
	"errors"

	handlershared "github.com/saralchem/orderdesk/internal/http/handlers/shared"
	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Username       string                              `json:"username" binding:"required"`
	Password       string                              `json:"password" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// LoginResponse is the staff login result.
type LoginResponse struct {
	Token     string                 `json:"token"`
	Staff     map[string]interface{} `json:"staff"`
	ExpiresAt string                 `json:"expires_at"`
}

// Login authenticates a staff account and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(req.CaptchaPayload.ToServicePayload()); captchaErr != nil {
			switch {
			case errors.Is(captchaErr, service.ErrCaptchaRequired):
				respondError(c, response.CodeBadRequest, "captcha is required", nil)
			case errors.Is(captchaErr, service.ErrCaptchaInvalid):
				respondError(c, response.CodeBadRequest, "captcha answer is wrong", nil)
			default:
				respondError(c, response.CodeInternal, "captcha verification failed", captchaErr)
			}
			return
		}
	}

	staff, token, expiresAt, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondServiceError(c, err, "login failed")
		return
	}
	response.Success(c, LoginResponse{
		Token: token,
		Staff: map[string]interface{}{
			"id":       staff.ID,
			"username": staff.Username,
			"role":     staff.Role,
			"is_super": staff.IsSuper,
		},
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetImageCaptcha issues a login captcha challenge.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil || !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "captcha generation failed", err)
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// GetProfile returns the authenticated staff account.
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := getStaffID(c)
	if !ok {
		return
	}
	staff, err := h.StaffRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return
	}
	if staff == nil {
		respondError(c, response.CodeNotFound, "staff account not found", nil)
		return
	}
	response.Success(c, staff)
}

// UpdatePasswordRequest is the change-password payload.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdatePassword rotates the authenticated staff account's password.
func (h *Handler) UpdatePassword(c *gin.Context) {
	id, ok := getStaffID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		respondServiceError(c, err, "failed to change password")
		return
	}
	response.SuccessWithMsg(c, "password updated", nil)
}

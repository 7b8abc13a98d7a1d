package admin

import (
	"errors"

	handlershared "github.com/saralchem/orderdesk/internal/http/handlers/shared"
	"github.com/saralchem/orderdesk/internal/http/response"
	"github.com/saralchem/orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

// respondServiceError maps service sentinels onto response codes. Unmapped
// errors fall through as internal with the given fallback message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrStaffNotFound):
		respondError(c, response.CodeNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrOrderConflict):
		respondError(c, response.CodeConflict, "the order was modified by someone else, reload and retry", nil)
	case errors.Is(err, service.ErrCustomerExists),
		errors.Is(err, service.ErrStaffExists):
		respondError(c, response.CodeConflict, err.Error(), nil)
	case errors.Is(err, service.ErrRoleNotAllowed):
		respondError(c, response.CodeForbidden, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvoiceMissing),
		errors.Is(err, service.ErrCategoryNotEmpty):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, response.CodeUnauthorized, "invalid username or password", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services.
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderConflict      = errors.New("order was modified by another session")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrRoleNotAllowed     = errors.New("role not allowed for this transition")
	ErrValidation         = errors.New("validation failed")
	ErrExternalService    = errors.New("external service failure")
	ErrProductNotFound    = errors.New("product not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryNotEmpty   = errors.New("category still has products or subcategories")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerExists     = errors.New("customer email already registered")
	ErrStaffNotFound      = errors.New("staff account not found")
	ErrStaffExists        = errors.New("staff username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrCaptchaRequired    = errors.New("captcha is required")
	ErrCaptchaInvalid     = errors.New("captcha verification failed")
	ErrInvoiceMissing     = errors.New("no invoice uploaded for this order")
)

// InvalidTransitionError reports a rejected status change, naming both
// states. errors.Is(err, ErrInvalidTransition) matches it.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot change status from '%s' to '%s'", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ValidationError reports a rejected input, naming the offending field.
// errors.Is(err, ErrValidation) matches it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

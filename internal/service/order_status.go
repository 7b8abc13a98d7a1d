package service

import (
	"fmt"

	"github.com/saralchem/orderdesk/internal/constants"
)

// reviewStatuses is the workflow loop an order moves through before the
// shipping tail. Orders in these statuses are never eligible for the manual
// forward-advance path.
var reviewStatuses = map[string]bool{
	constants.OrderStatusPlaced:              true,
	constants.OrderStatusInprocessing:        true,
	constants.OrderStatusWarehouseProcessing: true,
	constants.OrderStatusAdminStockReview:    true,
	constants.OrderStatusApprovalPending:     true,
	constants.OrderStatusAwaitingInvoice:     true,
	constants.OrderStatusInvoiceVerification: true,
}

// shippingSequence is the fixed linear order for manual advances. A target
// must sit strictly forward of the current status in this list.
var shippingSequence = []string{
	constants.OrderStatusInvoiceUploaded,
	constants.OrderStatusConfirmed,
	constants.OrderStatusPacking,
	constants.OrderStatusDispatched,
	constants.OrderStatusDelivered,
}

// allowedTransitions maps current status -> target status -> roles allowed
// to trigger it. Targets outside this table fall through to the manual
// advance rules and the Cancelled escape hatch.
var allowedTransitions = map[string]map[string][]string{
	constants.OrderStatusPlaced: {
		constants.OrderStatusWarehouseProcessing: {constants.RoleSales},
	},
	constants.OrderStatusInprocessing: {
		constants.OrderStatusWarehouseProcessing: {constants.RoleSales},
	},
	constants.OrderStatusWarehouseProcessing: {
		constants.OrderStatusAdminStockReview: {constants.RoleWarehouse},
	},
	constants.OrderStatusAdminStockReview: {
		constants.OrderStatusAwaitingInvoice:     {constants.RoleAdmin},
		constants.OrderStatusApprovalPending:     {constants.RoleAdmin},
		constants.OrderStatusWarehouseProcessing: {constants.RoleAdmin},
		constants.OrderStatusRework:              {constants.RoleAdmin},
	},
	constants.OrderStatusApprovalPending: {
		constants.OrderStatusAwaitingInvoice: {constants.RoleAdmin, constants.RoleManager},
	},
	constants.OrderStatusAwaitingInvoice: {
		constants.OrderStatusInvoiceVerification: {constants.RoleManager},
	},
	constants.OrderStatusInvoiceVerification: {
		constants.OrderStatusInvoiceUploaded: {constants.RoleAdmin},
		constants.OrderStatusAwaitingInvoice: {constants.RoleAdmin},
	},
	constants.OrderStatusRework: {
		constants.OrderStatusWarehouseProcessing: {constants.RoleSales},
	},
}

// IsTerminalStatus reports whether no transition leaves the status.
func IsTerminalStatus(status string) bool {
	return status == constants.OrderStatusDelivered || status == constants.OrderStatusCancelled
}

// IsReviewStatus reports whether the status belongs to the review loop.
func IsReviewStatus(status string) bool {
	return reviewStatuses[status]
}

// CanEditItems reports whether item composition may still change.
func CanEditItems(status string) bool {
	return status == constants.OrderStatusPlaced
}

func shippingIndex(status string) int {
	for i, s := range shippingSequence {
		if s == status {
			return i
		}
	}
	return -1
}

func roleAllowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ValidateTransition checks a status change against the transition table,
// the manual forward-advance path and the Cancelled escape hatch. It must be
// called before any item mutation; on failure the order stays untouched.
func ValidateTransition(from, to, role string, super bool) error {
	if to == constants.OrderStatusCancelled {
		if IsTerminalStatus(from) {
			return &InvalidTransitionError{From: from, To: to}
		}
		if !super && role != constants.RoleAdmin {
			return fmt.Errorf("%w: '%s' may not move an order from '%s' to '%s'", ErrRoleNotAllowed, role, from, to)
		}
		return nil
	}
	if from == to {
		return &InvalidTransitionError{From: from, To: to}
	}

	if targets, ok := allowedTransitions[from]; ok {
		if roles, ok := targets[to]; ok {
			if super || roleAllowed(roles, role) {
				return nil
			}
			return fmt.Errorf("%w: '%s' may not move an order from '%s' to '%s'", ErrRoleNotAllowed, role, from, to)
		}
	}

	// Manual advance over the shipping tail, strictly forward.
	if !reviewStatuses[from] {
		fromIdx := shippingIndex(from)
		toIdx := shippingIndex(to)
		if fromIdx >= 0 && toIdx >= 0 {
			if toIdx <= fromIdx {
				return &InvalidTransitionError{From: from, To: to}
			}
			if super || role == constants.RoleAdmin || role == constants.RoleSales {
				return nil
			}
			return fmt.Errorf("%w: '%s' may not move an order from '%s' to '%s'", ErrRoleNotAllowed, role, from, to)
		}
	}

	return &InvalidTransitionError{From: from, To: to}
}

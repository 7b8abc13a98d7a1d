package service

import (
	"errors"
	"testing"

	"github.com/saralchem/orderdesk/internal/constants"
)

func TestValidateTransitionTable(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		role    string
		super   bool
		wantErr error
	}{
		{
			name: "sales sends placed order to warehouse",
			from: constants.OrderStatusPlaced, to: constants.OrderStatusWarehouseProcessing,
			role: constants.RoleSales,
		},
		{
			name: "warehouse reports stock for review",
			from: constants.OrderStatusWarehouseProcessing, to: constants.OrderStatusAdminStockReview,
			role: constants.RoleWarehouse,
		},
		{
			name: "warehouse cannot accept its own review",
			from: constants.OrderStatusAdminStockReview, to: constants.OrderStatusAwaitingInvoice,
			role: constants.RoleWarehouse, wantErr: ErrRoleNotAllowed,
		},
		{
			name: "admin bounces review back to warehouse",
			from: constants.OrderStatusAdminStockReview, to: constants.OrderStatusWarehouseProcessing,
			role: constants.RoleAdmin,
		},
		{
			name: "manager clears approval pending",
			from: constants.OrderStatusApprovalPending, to: constants.OrderStatusAwaitingInvoice,
			role: constants.RoleManager,
		},
		{
			name: "manager uploads invoice",
			from: constants.OrderStatusAwaitingInvoice, to: constants.OrderStatusInvoiceVerification,
			role: constants.RoleManager,
		},
		{
			name: "sales cannot upload invoice",
			from: constants.OrderStatusAwaitingInvoice, to: constants.OrderStatusInvoiceVerification,
			role: constants.RoleSales, wantErr: ErrRoleNotAllowed,
		},
		{
			name: "rework goes back through sales",
			from: constants.OrderStatusRework, to: constants.OrderStatusWarehouseProcessing,
			role: constants.RoleSales,
		},
		{
			name: "same status is never a transition",
			from: constants.OrderStatusPlaced, to: constants.OrderStatusPlaced,
			role: constants.RoleAdmin, wantErr: ErrInvalidTransition,
		},
		{
			name: "review loop cannot jump into the shipping tail",
			from: constants.OrderStatusAwaitingInvoice, to: constants.OrderStatusConfirmed,
			role: constants.RoleAdmin, wantErr: ErrInvalidTransition,
		},
		{
			name: "super bypasses the role gate",
			from: constants.OrderStatusAdminStockReview, to: constants.OrderStatusAwaitingInvoice,
			role: constants.RoleSales, super: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to, tc.role, tc.super)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected transition to pass, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateTransitionShippingTail(t *testing.T) {
	// Forward skips over the tail are legal for sales and admin.
	if err := ValidateTransition(constants.OrderStatusInvoiceUploaded, constants.OrderStatusPacking, constants.RoleSales, false); err != nil {
		t.Fatalf("forward skip should pass: %v", err)
	}
	if err := ValidateTransition(constants.OrderStatusConfirmed, constants.OrderStatusDelivered, constants.RoleAdmin, false); err != nil {
		t.Fatalf("forward skip should pass: %v", err)
	}

	// Backward moves never pass, whatever the role.
	err := ValidateTransition(constants.OrderStatusPacking, constants.OrderStatusInvoiceUploaded, constants.RoleAdmin, false)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for backward move, got %v", err)
	}
	err = ValidateTransition(constants.OrderStatusDispatched, constants.OrderStatusConfirmed, "", true)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("super must not bypass the forward-only rule, got %v", err)
	}

	// Warehouse has no business on the shipping tail.
	err = ValidateTransition(constants.OrderStatusConfirmed, constants.OrderStatusPacking, constants.RoleWarehouse, false)
	if !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed for warehouse, got %v", err)
	}

	// Nothing leaves a terminal status.
	err = ValidateTransition(constants.OrderStatusDelivered, constants.OrderStatusDispatched, constants.RoleAdmin, true)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition out of Delivered, got %v", err)
	}
}

func TestValidateTransitionCancel(t *testing.T) {
	// Admin may cancel from any non-terminal status, review loop included.
	for _, from := range []string{
		constants.OrderStatusPlaced,
		constants.OrderStatusAdminStockReview,
		constants.OrderStatusInvoiceVerification,
		constants.OrderStatusPacking,
		constants.OrderStatusDispatched,
	} {
		if err := ValidateTransition(from, constants.OrderStatusCancelled, constants.RoleAdmin, false); err != nil {
			t.Fatalf("cancel from %s should pass: %v", from, err)
		}
	}

	err := ValidateTransition(constants.OrderStatusDelivered, constants.OrderStatusCancelled, constants.RoleAdmin, false)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition cancelling a delivered order, got %v", err)
	}
	err = ValidateTransition(constants.OrderStatusCancelled, constants.OrderStatusCancelled, constants.RoleAdmin, false)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition cancelling twice, got %v", err)
	}

	err = ValidateTransition(constants.OrderStatusPacking, constants.OrderStatusCancelled, constants.RoleSales, false)
	if !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("expected ErrRoleNotAllowed for sales cancel, got %v", err)
	}
	if err := ValidateTransition(constants.OrderStatusPacking, constants.OrderStatusCancelled, constants.RoleSales, true); err != nil {
		t.Fatalf("super cancel should pass: %v", err)
	}
}

func TestStatusPredicates(t *testing.T) {
	if !CanEditItems(constants.OrderStatusPlaced) {
		t.Fatal("items must be editable in Order Placed")
	}
	if CanEditItems(constants.OrderStatusWarehouseProcessing) {
		t.Fatal("items must freeze once sent to the warehouse")
	}
	if !IsTerminalStatus(constants.OrderStatusDelivered) || !IsTerminalStatus(constants.OrderStatusCancelled) {
		t.Fatal("Delivered and Cancelled are terminal")
	}
	if IsTerminalStatus(constants.OrderStatusDispatched) {
		t.Fatal("Dispatched is not terminal")
	}
	if !IsReviewStatus(constants.OrderStatusAdminStockReview) {
		t.Fatal("Admin Stock Review belongs to the review loop")
	}
	if IsReviewStatus(constants.OrderStatusConfirmed) {
		t.Fatal("Confirmed belongs to the shipping tail")
	}
}

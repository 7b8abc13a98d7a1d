package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
)

func intPtr(v int) *int { return &v }

func baseItems() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: 1, Variant: "25L", Name: "Acetone", Unit: "drum", Quantity: 10},
		{ProductID: 2, Variant: "50kg", Name: "Soda Ash", Unit: "bag", Quantity: 4},
	}
}

func TestPruneActionsLastActionWins(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(12)},
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(8)},
	}
	pruned := PruneActions(baseItems(), actions)
	if len(pruned) != 1 {
		t.Fatalf("expected 1 action after pruning, got %d", len(pruned))
	}
	if pruned[0].Quantity == nil || *pruned[0].Quantity != 8 {
		t.Fatalf("expected the later replace to win, got %+v", pruned[0])
	}
}

func TestPruneActionsRemoveOfPendingAddEmitsNothing(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionAdd, ProductID: 3, Variant: "5L", Name: "Thinner", Quantity: intPtr(2)},
		{Type: constants.ItemActionRemove, ProductID: 3, Variant: "5L"},
	}
	pruned := PruneActions(baseItems(), actions)
	if len(pruned) != 0 {
		t.Fatalf("add followed by remove must cancel out, got %+v", pruned)
	}
}

func TestPruneActionsRemovePurgesEarlierEdits(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionReplace, ProductID: 2, Variant: "50kg", Quantity: intPtr(9)},
		{Type: constants.ItemActionRemove, ProductID: 2, Variant: "50kg"},
	}
	pruned := PruneActions(baseItems(), actions)
	if len(pruned) != 1 || pruned[0].Type != constants.ItemActionRemove {
		t.Fatalf("expected a lone remove, got %+v", pruned)
	}
}

func TestPruneActionsNetZeroReplaceVanishes(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(10)},
	}
	if pruned := PruneActions(baseItems(), actions); len(pruned) != 0 {
		t.Fatalf("replace equal to the base item must vanish, got %+v", pruned)
	}

	// Changing quantity back across two replaces also nets out.
	actions = []ItemAction{
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(15)},
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(10)},
	}
	if pruned := PruneActions(baseItems(), actions); len(pruned) != 0 {
		t.Fatalf("round-trip replace must vanish, got %+v", pruned)
	}
}

func TestPruneActionsRemoveThenReAddFoldsIntoReplace(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionRemove, ProductID: 1, Variant: "25L"},
		{Type: constants.ItemActionAdd, ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: intPtr(5)},
	}
	pruned := PruneActions(baseItems(), actions)
	if len(pruned) != 1 || pruned[0].Type != constants.ItemActionReplace {
		t.Fatalf("expected a lone replace, got %+v", pruned)
	}
	if pruned[0].Quantity == nil || *pruned[0].Quantity != 5 {
		t.Fatalf("expected the re-added quantity, got %+v", pruned[0])
	}

	got := ReconcileItems(baseItems(), actions)
	want := []models.OrderItem{
		{ProductID: 1, Variant: "25L", Name: "Acetone", Unit: "drum", Quantity: 5},
		{ProductID: 2, Variant: "50kg", Name: "Soda Ash", Unit: "bag", Quantity: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("a pair must never reconcile to two rows:\n got %+v\nwant %+v", got, want)
	}
}

func TestPruneActionsRemoveThenReAddSameQuantityVanishes(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionRemove, ProductID: 1, Variant: "25L"},
		{Type: constants.ItemActionAdd, ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: intPtr(10)},
	}
	if pruned := PruneActions(baseItems(), actions); len(pruned) != 0 {
		t.Fatalf("remove then identical re-add must net out, got %+v", pruned)
	}
	if got := ReconcileItems(baseItems(), actions); !reflect.DeepEqual(got, baseItems()) {
		t.Fatalf("base list must survive a net-zero remove/add, got %+v", got)
	}
}

func TestReconcileItemsAppliesActions(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionRemove, ProductID: 2, Variant: "50kg"},
		{Type: constants.ItemActionAdd, ProductID: 3, Variant: "5L", Name: "Thinner", Unit: "can", Quantity: intPtr(6)},
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", NewVariant: "50L", Quantity: intPtr(5)},
	}
	got := ReconcileItems(baseItems(), actions)
	want := []models.OrderItem{
		{ProductID: 1, Variant: "50L", Name: "Acetone", Unit: "drum", Quantity: 5},
		{ProductID: 3, Variant: "5L", Name: "Thinner", Unit: "can", Quantity: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reconcile mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestReconcileItemsIsIdempotent(t *testing.T) {
	actions := []ItemAction{
		{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(7)},
		{Type: constants.ItemActionAdd, ProductID: 4, Variant: "1kg", Name: "Citric Acid", Quantity: intPtr(3)},
	}
	first := ReconcileItems(baseItems(), actions)
	second := ReconcileItems(baseItems(), actions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("replaying the same log must give the same result:\n%+v\n%+v", first, second)
	}
}

func TestReconcileItemsEmptyLogKeepsBase(t *testing.T) {
	got := ReconcileItems(baseItems(), nil)
	if !reflect.DeepEqual(got, baseItems()) {
		t.Fatalf("empty log must keep the base list, got %+v", got)
	}
}

func TestValidateActions(t *testing.T) {
	err := ValidateActions([]ItemAction{{Type: constants.ItemActionAdd, ProductID: 1, Variant: "25L"}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("add without quantity must fail validation, got %v", err)
	}
	err = ValidateActions([]ItemAction{{Type: constants.ItemActionReplace, ProductID: 1, Variant: "25L", Quantity: intPtr(0)}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("zero quantity replace must fail validation, got %v", err)
	}
	err = ValidateActions([]ItemAction{{Type: "merge", ProductID: 1, Variant: "25L"}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown action type must fail validation, got %v", err)
	}
	err = ValidateActions([]ItemAction{{Type: constants.ItemActionRemove, Variant: "25L"}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("missing product must fail validation, got %v", err)
	}
	if err := ValidateActions([]ItemAction{{Type: constants.ItemActionRemove, ProductID: 1, Variant: "25L"}}); err != nil {
		t.Fatalf("plain remove must pass, got %v", err)
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/saralchem/orderdesk/internal/models"
)

func TestItemLedgerDefaults(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: 10},
		{ProductID: 2, Variant: "50kg", Name: "Soda Ash", Quantity: 4, AvailableQuantity: intPtr(3)},
	}
	ledger := NewItemLedger(items)
	snapshot := ledger.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(snapshot))
	}
	if snapshot[0].AvailableQuantity != 0 {
		t.Fatalf("unreported item must default to zero, got %d", snapshot[0].AvailableQuantity)
	}
	if snapshot[1].AvailableQuantity != 3 {
		t.Fatalf("previously reported item must keep its value, got %d", snapshot[1].AvailableQuantity)
	}
}

func TestItemLedgerSetAvailable(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Variant: "25L", Name: "Acetone", Quantity: 10},
	}
	ledger := NewItemLedger(items)

	if err := ledger.SetAvailable(1, "25L", 12); err != nil {
		t.Fatalf("overage is a legal report: %v", err)
	}
	if got := ledger.Snapshot()[0].AvailableQuantity; got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}

	err := ledger.SetAvailable(1, "25L", -1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("negative quantity must be rejected, got %v", err)
	}
	err = ledger.SetAvailable(1, "50L", 2)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown identity pair must be rejected, got %v", err)
	}
	err = ledger.SetAvailable(9, "25L", 2)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown product must be rejected, got %v", err)
	}
}

func TestItemLedgerKeepsItemOrder(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 3, Variant: "5L", Quantity: 1},
		{ProductID: 1, Variant: "25L", Quantity: 2},
		{ProductID: 2, Variant: "50kg", Quantity: 3},
		{ProductID: 1, Variant: "25L", Quantity: 99}, // duplicate pair, first wins
	}
	snapshot := NewItemLedger(items).Snapshot()
	if len(snapshot) != 3 {
		t.Fatalf("duplicate identity pairs must collapse, got %d entries", len(snapshot))
	}
	wantOrder := []uint{3, 1, 2}
	for i, entry := range snapshot {
		if entry.ProductID != wantOrder[i] {
			t.Fatalf("snapshot order changed: got %v at %d", entry.ProductID, i)
		}
	}
	if snapshot[1].Quantity != 2 {
		t.Fatalf("first occurrence must win for duplicates, got qty %d", snapshot[1].Quantity)
	}
}

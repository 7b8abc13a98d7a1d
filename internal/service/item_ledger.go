package service

import (
	"fmt"

	"github.com/saralchem/orderdesk/internal/models"
)

// itemKey is the identity pair used to match an item across the base list,
// the review working set and pending actions. Row position never matters.
type itemKey struct {
	ProductID uint
	Variant   string
}

// ItemLedger holds the requested vs. reported quantities for an order under
// warehouse/admin review. Purely in-memory; persistence is the caller's job.
type ItemLedger struct {
	order   []itemKey
	entries map[itemKey]models.ReviewItem
}

// NewItemLedger seeds a ledger from the order's current items. Items that
// already carry a reported quantity keep it as the default.
func NewItemLedger(items []models.OrderItem) *ItemLedger {
	l := &ItemLedger{entries: make(map[itemKey]models.ReviewItem, len(items))}
	for _, item := range items {
		key := itemKey{ProductID: item.ProductID, Variant: item.Variant}
		if _, ok := l.entries[key]; ok {
			continue
		}
		available := 0
		if item.AvailableQuantity != nil {
			available = *item.AvailableQuantity
		}
		l.order = append(l.order, key)
		l.entries[key] = models.ReviewItem{
			ProductID:         item.ProductID,
			Variant:           item.Variant,
			Name:              item.Name,
			Quantity:          item.Quantity,
			AvailableQuantity: available,
		}
	}
	return l
}

// SetAvailable records the reported quantity for one item. Overage, exact
// fulfillment and shortfall are all legal; negative quantities are not.
func (l *ItemLedger) SetAvailable(productID uint, variant string, qty int) error {
	if qty < 0 {
		return newValidationError("available_quantity", "must not be negative")
	}
	key := itemKey{ProductID: productID, Variant: variant}
	entry, ok := l.entries[key]
	if !ok {
		return newValidationError("item", fmt.Sprintf("no order item matches product %d variant '%s'", productID, variant))
	}
	entry.AvailableQuantity = qty
	l.entries[key] = entry
	return nil
}

// Snapshot returns the working set in item order. Entries never touched by
// SetAvailable keep their seeded default.
func (l *ItemLedger) Snapshot() models.ReviewItemList {
	out := make(models.ReviewItemList, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.entries[key])
	}
	return out
}

package service

import (
	"github.com/saralchem/orderdesk/internal/constants"
	"github.com/saralchem/orderdesk/internal/models"
)

// ItemAction is one entry of the action log accumulated while an order is
// still editable. All changes to an order's item list travel as actions;
// the base list itself is never edited directly.
type ItemAction struct {
	Type       string `json:"type"` // add / remove / replace
	ProductID  uint   `json:"product_id"`
	Variant    string `json:"variant"`
	Name       string `json:"name,omitempty"`
	Unit       string `json:"unit,omitempty"`
	Quantity   *int   `json:"quantity,omitempty"`    // required for add, optional for replace
	NewVariant string `json:"new_variant,omitempty"` // replace only; empty keeps the variant
}

func actionKey(a ItemAction) itemKey {
	return itemKey{ProductID: a.ProductID, Variant: a.Variant}
}

// PruneActions folds an ordered action log into its minimal equivalent:
// the last action wins per identity pair, a remove purges prior actions for
// the pair, removing a pending add drops both sides, re-adding a removed
// base pair folds into a quantity replace, and a replace whose net effect
// equals the base item vanishes. Pure and deterministic.
func PruneActions(base []models.OrderItem, actions []ItemAction) []ItemAction {
	inBase := make(map[itemKey]models.OrderItem, len(base))
	for _, item := range base {
		inBase[itemKey{ProductID: item.ProductID, Variant: item.Variant}] = item
	}

	latest := make(map[itemKey]ItemAction, len(actions))
	var seen []itemKey

	note := func(key itemKey) {
		for _, k := range seen {
			if k == key {
				return
			}
		}
		seen = append(seen, key)
	}

	for _, action := range actions {
		key := actionKey(action)
		switch action.Type {
		case constants.ItemActionAdd:
			if prev, ok := latest[key]; ok && prev.Type == constants.ItemActionRemove {
				// The pair is in the base list with a pending remove. Re-adding
				// it is a quantity edit on the base row, never a second row for
				// the same pair.
				baseItem := inBase[key]
				newQty := baseItem.Quantity
				if action.Quantity != nil {
					newQty = *action.Quantity
				}
				if newQty == baseItem.Quantity {
					delete(latest, key)
					continue
				}
				qty := newQty
				latest[key] = ItemAction{
					Type:      constants.ItemActionReplace,
					ProductID: action.ProductID,
					Variant:   action.Variant,
					Quantity:  &qty,
				}
				continue
			}
			note(key)
			latest[key] = action
		case constants.ItemActionRemove:
			if _, exists := inBase[key]; !exists {
				// Never reached the base list: dropping the pending add (if
				// any) is the whole effect, no remove is emitted.
				delete(latest, key)
				continue
			}
			note(key)
			latest[key] = action
		case constants.ItemActionReplace:
			if baseItem, exists := inBase[key]; exists {
				newVariant := action.NewVariant
				if newVariant == "" {
					newVariant = baseItem.Variant
				}
				newQty := baseItem.Quantity
				if action.Quantity != nil {
					newQty = *action.Quantity
				}
				if newVariant == baseItem.Variant && newQty == baseItem.Quantity {
					delete(latest, key)
					continue
				}
			}
			note(key)
			latest[key] = action
		}
	}

	out := make([]ItemAction, 0, len(seen))
	for _, key := range seen {
		if action, ok := latest[key]; ok {
			out = append(out, action)
		}
	}
	return out
}

// ReconcileItems applies a pruned action log to the base item list and
// returns the resulting list. Replaying the same log against the same base
// yields the same result.
func ReconcileItems(base []models.OrderItem, actions []ItemAction) []models.OrderItem {
	working := make([]models.OrderItem, len(base))
	copy(working, base)

	for _, action := range PruneActions(base, actions) {
		key := actionKey(action)
		switch action.Type {
		case constants.ItemActionRemove:
			kept := working[:0]
			for _, item := range working {
				if (itemKey{ProductID: item.ProductID, Variant: item.Variant}) != key {
					kept = append(kept, item)
				}
			}
			working = kept
		case constants.ItemActionAdd:
			qty := 0
			if action.Quantity != nil {
				qty = *action.Quantity
			}
			working = append(working, models.OrderItem{
				ProductID: action.ProductID,
				Variant:   action.Variant,
				Name:      action.Name,
				Unit:      action.Unit,
				Quantity:  qty,
			})
		case constants.ItemActionReplace:
			for i := range working {
				if (itemKey{ProductID: working[i].ProductID, Variant: working[i].Variant}) != key {
					continue
				}
				if action.NewVariant != "" {
					working[i].Variant = action.NewVariant
				}
				if action.Quantity != nil {
					working[i].Quantity = *action.Quantity
				}
				break
			}
		}
	}
	return working
}

// ValidateActions rejects malformed actions before any mutation happens.
func ValidateActions(actions []ItemAction) error {
	for _, action := range actions {
		if action.ProductID == 0 {
			return newValidationError("product_id", "a product must be selected")
		}
		switch action.Type {
		case constants.ItemActionAdd:
			if action.Quantity == nil || *action.Quantity <= 0 {
				return newValidationError("quantity", "must be greater than zero")
			}
		case constants.ItemActionReplace:
			if action.Quantity != nil && *action.Quantity <= 0 {
				return newValidationError("quantity", "must be greater than zero")
			}
		case constants.ItemActionRemove:
		default:
			return newValidationError("type", "must be one of add, remove, replace")
		}
	}
	return nil
}

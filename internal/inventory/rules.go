// Package inventory implements the pantry mutation rules.
//
// Every function is a pure transformation over an ingredient slice: the
// input is returned updated, never aliased state elsewhere. Name matching
// is case-insensitive via domain.NormalizeName — the inventory treats the
// normalized name as a natural key even though ids exist.
package inventory

import (
	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

// AddOrMerge adds an item to the inventory, merging into an existing entry
// when the name matches case-insensitively.
//
// Merge rules:
//   - incoming untracked: the existing entry becomes untracked and adopts
//     the incoming stock status
//   - incoming tracked onto an untracked entry: the entry switches back to
//     tracked and the amount is replaced, not added
//   - incoming tracked onto a tracked entry: amounts are summed (restock)
func AddOrMerge(items []domain.Ingredient, in domain.Ingredient) []domain.Ingredient {
	key := domain.NormalizeName(in.Name)
	for idx := range items {
		if domain.NormalizeName(items[idx].Name) != key {
			continue
		}
		existing := &items[idx]
		if in.Untracked {
			existing.Untracked = true
			existing.Status = in.Status
			if existing.Status == "" {
				existing.Status = domain.StockIn
			}
			return items
		}
		if existing.Untracked {
			existing.Untracked = false
			existing.Amount = in.Amount
		} else {
			existing.Amount += in.Amount
		}
		if existing.Unit == "" {
			existing.Unit = in.Unit
		}
		if existing.Category == "" {
			existing.Category = in.Category
		}
		return items
	}

	if in.ID == "" {
		in.ID = domain.NewID()
	}
	if in.Untracked && in.Status == "" {
		in.Status = domain.StockIn
	}
	return append(items, in)
}

// AdjustAmount applies a delta to an item's amount, clamped at zero.
func AdjustAmount(items []domain.Ingredient, id string, delta float64) ([]domain.Ingredient, error) {
	for idx := range items {
		if items[idx].ID != id {
			continue
		}
		items[idx].Amount += delta
		if items[idx].Amount < 0 {
			items[idx].Amount = 0
		}
		return items, nil
	}
	return items, domain.ErrNotFound
}

// SetStockStatus sets an item's qualitative stock level.
func SetStockStatus(items []domain.Ingredient, id string, status domain.StockStatus) ([]domain.Ingredient, error) {
	for idx := range items {
		if items[idx].ID == id {
			items[idx].Status = status
			return items, nil
		}
	}
	return items, domain.ErrNotFound
}

// ToggleUntracked flips an item between numeric and qualitative tracking.
// An item left without a stock status defaults to in-stock.
func ToggleUntracked(items []domain.Ingredient, id string) ([]domain.Ingredient, error) {
	for idx := range items {
		if items[idx].ID != id {
			continue
		}
		items[idx].Untracked = !items[idx].Untracked
		if items[idx].Status == "" {
			items[idx].Status = domain.StockIn
		}
		return items, nil
	}
	return items, domain.ErrNotFound
}

// Remove deletes an item by id. Removing an unknown id is a no-op.
func Remove(items []domain.Ingredient, id string) []domain.Ingredient {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// ReassignCategory moves every item in category from to category to.
// Used by the settings cascade when a category is deleted.
func ReassignCategory(items []domain.Ingredient, from, to string) []domain.Ingredient {
	for idx := range items {
		if items[idx].Category == from {
			items[idx].Category = to
		}
	}
	return items
}

// FindByName returns the first item whose name matches case-insensitively,
// or nil. Callers must not hold the pointer across mutations.
func FindByName(items []domain.Ingredient, name string) *domain.Ingredient {
	key := domain.NormalizeName(name)
	for idx := range items {
		if domain.NormalizeName(items[idx].Name) == key {
			return &items[idx]
		}
	}
	return nil
}

// Package shopping derives a shopping list from a meal plan and the
// current inventory.
//
// The pipeline: aggregate ingredient demand across planned recipes, net it
// against what's on hand, inject replenishment lines for depleted pantry
// items, then group by shopping category for presentation.
package shopping

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

// PlanEntry is one planned recipe with a repeat count. Multipliers are
// always >= 1; entries dropped to zero are pruned by the caller.
type PlanEntry struct {
	RecipeID   string
	Multiplier int
}

// Item is one line of the derived shopping list.
type Item struct {
	Name     string
	Amount   float64
	Unit     string
	Category string
}

// Group is the per-category view of the list, ordered by the category
// vocabulary.
type Group struct {
	Category string
	Items    []Item
}

// Build computes the net shopping list.
//
// Demand is keyed by normalized ingredient name; unit and category come
// from the first occurrence of a name (no unit conversion — mixed units
// for the same name are not reconciled). An untracked inventory entry
// that isn't out-of-stock satisfies any demand for its name outright.
// Otherwise the tracked amount is subtracted and only a strictly positive
// remainder makes the list.
//
// Independently of the plan, every out-of-stock inventory item is added at
// quantity 1 unless a same-named line already exists; low-stock items are
// added the same way only when their id is in the replenish set.
func Build(plan []PlanEntry, recipes []domain.Recipe, inv []domain.Ingredient, replenish map[string]bool) []Item {
	type demand struct {
		name     string // display name, first occurrence
		amount   float64
		unit     string
		category string
	}

	byName := make(map[string]*demand)
	var order []string

	for _, entry := range plan {
		if entry.Multiplier <= 0 {
			continue
		}
		r, err := findRecipe(recipes, entry.RecipeID)
		if err != nil {
			continue // stale plan entry; the recipe was deleted
		}
		for _, ing := range r.Ingredients {
			key := domain.NormalizeName(ing.Name)
			d, ok := byName[key]
			if !ok {
				d = &demand{name: ing.Name, unit: ing.Unit, category: ing.Category}
				byName[key] = d
				order = append(order, key)
			}
			d.amount += ing.Amount * float64(entry.Multiplier)
		}
	}

	var out []Item
	listed := make(map[string]bool)

	for _, key := range order {
		d := byName[key]
		have := findInventory(inv, key)

		if have != nil && have.Untracked && have.Status != domain.StockOut {
			// Qualitative "I have some" overrides any numeric demand.
			continue
		}

		onHand := 0.0
		if have != nil && !have.Untracked {
			onHand = have.Amount
		}
		remaining := d.amount - onHand
		if remaining <= 0 {
			continue
		}

		out = append(out, Item{Name: d.name, Amount: remaining, Unit: d.unit, Category: d.category})
		listed[key] = true
	}

	// Replenishment: out-of-stock is unconditional, low-stock is opt-in.
	for _, it := range inv {
		key := domain.NormalizeName(it.Name)
		if listed[key] {
			continue
		}
		if it.Status == domain.StockOut || (it.Status == domain.StockLow && replenish[it.ID]) {
			out = append(out, Item{Name: it.Name, Amount: 1, Unit: it.Unit, Category: it.Category})
			listed[key] = true
		}
	}

	return out
}

// GroupByCategory arranges items in vocabulary order. Items whose category
// is empty or no longer in the vocabulary land in the fallback category;
// a fallback group is appended when the vocabulary doesn't carry one.
func GroupByCategory(items []Item, categories []string) []Group {
	known := make(map[string]int, len(categories))
	for idx, c := range categories {
		known[c] = idx
	}

	buckets := make(map[string][]Item)
	for _, it := range items {
		cat := it.Category
		if _, ok := known[cat]; !ok {
			cat = domain.FallbackCategory
		}
		buckets[cat] = append(buckets[cat], it)
	}

	var groups []Group
	for _, c := range categories {
		if its, ok := buckets[c]; ok {
			groups = append(groups, Group{Category: c, Items: its})
			delete(buckets, c)
		}
	}
	if its, ok := buckets[domain.FallbackCategory]; ok {
		groups = append(groups, Group{Category: domain.FallbackCategory, Items: its})
	}
	return groups
}

// FormatText renders the grouped list as plain text for the clipboard.
func FormatText(groups []Group) string {
	var b strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.Category)
		b.WriteByte('\n')
		for _, it := range g.Items {
			b.WriteString("  - ")
			b.WriteString(FormatItem(it))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FormatItem renders a single line like "Tomato Sauce (150 ml)".
func FormatItem(it Item) string {
	return fmt.Sprintf("%s (%s)", it.Name, FormatAmount(it.Amount, it.Unit))
}

// FormatAmount renders a quantity with its unit, trimming trailing zeros
// ("150 ml", "2.5 cups", "3").
func FormatAmount(amount float64, unit string) string {
	qty := strings.TrimSuffix(fmt.Sprintf("%.2f", amount), ".00")
	if strings.Contains(qty, ".") {
		qty = strings.TrimRight(qty, "0")
		qty = strings.TrimSuffix(qty, ".")
	}
	if unit != "" {
		return qty + " " + unit
	}
	return qty
}

func findRecipe(recipes []domain.Recipe, id string) (domain.Recipe, error) {
	for _, r := range recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Recipe{}, domain.ErrNotFound
}

func findInventory(inv []domain.Ingredient, key string) *domain.Ingredient {
	for idx := range inv {
		if domain.NormalizeName(inv[idx].Name) == key {
			return &inv[idx]
		}
	}
	return nil
}

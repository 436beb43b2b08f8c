// Package domain defines the core types for the kitchen manager.
// All other packages depend on domain; domain depends on nothing but uuid.
package domain

import (
	"strings"

	"github.com/google/uuid"
)

// StockStatus is the qualitative stock level of an inventory item.
// For untracked items it is the only authority on whether the item
// counts as "on hand"; the numeric amount is ignored.
type StockStatus string

const (
	StockIn  StockStatus = "in-stock"
	StockLow StockStatus = "low-stock"
	StockOut StockStatus = "out-of-stock"
)

// Ingredient is a pantry item. When Untracked is set, Amount and Unit are
// informational only and Status governs stock decisions.
type Ingredient struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Amount    float64     `json:"amount"`
	Unit      string      `json:"unit"`
	Category  string      `json:"category,omitempty"`
	Untracked bool        `json:"untrackedAmount,omitempty"`
	Status    StockStatus `json:"stockStatus,omitempty"`
}

// Covers reports whether this inventory item satisfies a demand for the
// given amount. Untracked items cover any demand unless out of stock;
// tracked items cover iff their amount reaches the demand.
func (i Ingredient) Covers(need float64) bool {
	if i.Untracked {
		return i.Status != StockOut
	}
	return i.Amount >= need
}

// RecipeIngredient is an ingredient line within a recipe. Optional lines
// are excluded from cookability checks.
type RecipeIngredient struct {
	Ingredient
	Optional bool `json:"optional,omitempty"`
}

// Recipe is a dish with its ingredient lines and free-text instructions.
// Tags come from the global vocabulary but are not enforced against it.
type Recipe struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions string             `json:"instructions"`
	Tags         []string           `json:"tags"`
	PrepMinutes  int                `json:"prepTimeMinutes,omitempty"`
}

// AppState is the aggregate root. It is loaded once at startup, mutated in
// memory, and persisted wholesale after every mutation. All containment is
// by value; nothing references a recipe or ingredient by id across lists.
type AppState struct {
	Recipes    []Recipe     `json:"recipes"`
	Inventory  []Ingredient `json:"inventory"`
	CustomTags []string     `json:"customTags"`
	Categories []string     `json:"categories"`
}

// FallbackCategory receives items whose category was deleted or never set.
const FallbackCategory = "Other"

// DefaultTags returns the seed tag vocabulary.
func DefaultTags() []string {
	return []string{"Breakfast", "Lunch", "Dinner", "Snack", "Dessert", "Vegetarian", "Vegan", "Quick"}
}

// DefaultCategories returns the seed shopping-category vocabulary.
func DefaultCategories() []string {
	return []string{"Produce", "Dairy", "Meat", "Bakery", "Frozen", "Pantry", "Beverages", "Household", FallbackCategory}
}

// NewDefaultState returns the state used when nothing is persisted yet or
// the persisted document cannot be parsed.
func NewDefaultState() *AppState {
	return &AppState{
		Recipes:    []Recipe{},
		Inventory:  []Ingredient{},
		CustomTags: DefaultTags(),
		Categories: DefaultCategories(),
	}
}

// NormalizeName is the single normalization used by every case-insensitive
// name lookup. Ingredient names act as a natural key across recipes and
// inventory; keep all join sites on this function.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewID returns a fresh identity for a recipe or inventory item.
func NewID() string {
	return uuid.NewString()
}

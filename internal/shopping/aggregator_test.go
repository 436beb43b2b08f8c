package shopping

import (
	"strings"
	"testing"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

func fixtureRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:   "pizza",
			Name: "Margherita Pizza",
			Ingredients: []domain.RecipeIngredient{
				{Ingredient: domain.Ingredient{Name: "Tomato Sauce", Amount: 100, Unit: "ml", Category: "Pantry"}},
				{Ingredient: domain.Ingredient{Name: "Fresh Basil", Amount: 1, Unit: "bunches", Category: "Produce"}, Optional: true},
			},
		},
		{
			ID:   "toast",
			Name: "Avocado Toast",
			Ingredients: []domain.RecipeIngredient{
				{Ingredient: domain.Ingredient{Name: "Bread", Amount: 2, Unit: "slices", Category: "Bakery"}},
				{Ingredient: domain.Ingredient{Name: "Avocado", Amount: 1, Category: "Produce"}},
			},
		},
	}
}

func find(items []Item, name string) *Item {
	for idx := range items {
		if items[idx].Name == name {
			return &items[idx]
		}
	}
	return nil
}

func TestBuildNetsDemandAgainstTrackedAmounts(t *testing.T) {
	inv := []domain.Ingredient{
		{ID: "ts", Name: "tomato sauce", Amount: 50, Unit: "ml", Category: "Pantry"},
	}

	items := Build([]PlanEntry{{RecipeID: "pizza", Multiplier: 2}}, fixtureRecipes(), inv, nil)

	got := find(items, "Tomato Sauce")
	if got == nil {
		t.Fatalf("tomato sauce missing from list: %+v", items)
	}
	if got.Amount != 150 {
		t.Errorf("expected 200 demanded minus 50 on hand = 150, got %v", got.Amount)
	}
	if got.Unit != "ml" || got.Category != "Pantry" {
		t.Errorf("unit/category should come from the recipe line, got %+v", got)
	}
}

func TestBuildIncludesOptionalIngredientDemand(t *testing.T) {
	items := Build([]PlanEntry{{RecipeID: "pizza", Multiplier: 1}}, fixtureRecipes(), nil, nil)

	if find(items, "Fresh Basil") == nil {
		t.Errorf("optional ingredients still generate shopping demand: %+v", items)
	}
}

func TestBuildSkipsUntrackedItemsOnHand(t *testing.T) {
	inv := []domain.Ingredient{
		{ID: "av", Name: "Avocado", Untracked: true, Status: domain.StockIn},
		{ID: "br", Name: "Bread", Untracked: true, Status: domain.StockLow},
	}

	items := Build([]PlanEntry{{RecipeID: "toast", Multiplier: 3}}, fixtureRecipes(), inv, nil)

	if find(items, "Avocado") != nil || find(items, "Bread") != nil {
		t.Errorf("untracked items not out of stock satisfy any demand: %+v", items)
	}
}

func TestBuildUntrackedOutOfStockKeepsFullDemand(t *testing.T) {
	inv := []domain.Ingredient{
		{ID: "av", Name: "Avocado", Untracked: true, Status: domain.StockOut},
	}

	items := Build([]PlanEntry{{RecipeID: "toast", Multiplier: 2}}, fixtureRecipes(), inv, nil)

	got := find(items, "Avocado")
	if got == nil {
		t.Fatalf("out-of-stock untracked item must not satisfy demand: %+v", items)
	}
	if got.Amount != 2 {
		t.Errorf("expected the full demand of 2, got %v", got.Amount)
	}

	// Already listed from demand, so no duplicate replenishment line.
	count := 0
	for _, it := range items {
		if domain.NormalizeName(it.Name) == "avocado" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one avocado line, got %d", count)
	}
}

func TestBuildCoveredDemandIsAbsent(t *testing.T) {
	inv := []domain.Ingredient{
		{ID: "ts", Name: "Tomato Sauce", Amount: 500, Unit: "ml"},
	}

	items := Build([]PlanEntry{{RecipeID: "pizza", Multiplier: 2}}, fixtureRecipes(), inv, nil)

	if find(items, "Tomato Sauce") != nil {
		t.Errorf("fully covered demand should not make the list: %+v", items)
	}
}

func TestBuildInjectsReplenishmentLines(t *testing.T) {
	inv := []domain.Ingredient{
		{ID: "soap", Name: "Dish Soap", Untracked: true, Status: domain.StockOut, Category: "Household"},
		{ID: "milk", Name: "Milk", Amount: 200, Unit: "ml", Status: domain.StockLow, Category: "Dairy"},
		{ID: "rice", Name: "Rice", Amount: 2, Unit: "kg", Status: domain.StockIn},
	}

	// No replenish set: only the out-of-stock item appears.
	items := Build(nil, fixtureRecipes(), inv, nil)
	if got := find(items, "Dish Soap"); got == nil || got.Amount != 1 {
		t.Fatalf("out-of-stock items always get a quantity-1 line, got %+v", items)
	}
	if find(items, "Milk") != nil {
		t.Errorf("low-stock items are opt-in, got %+v", items)
	}

	// With the low-stock item flagged for replenishment.
	items = Build(nil, fixtureRecipes(), inv, map[string]bool{"milk": true})
	if got := find(items, "Milk"); got == nil || got.Amount != 1 {
		t.Errorf("flagged low-stock item should get a quantity-1 line, got %+v", items)
	}
	if find(items, "Rice") != nil {
		t.Errorf("in-stock items never get replenishment lines, got %+v", items)
	}
}

func TestBuildSkipsStalePlanEntries(t *testing.T) {
	items := Build([]PlanEntry{
		{RecipeID: "deleted", Multiplier: 2},
		{RecipeID: "toast", Multiplier: 1},
	}, fixtureRecipes(), nil, nil)

	if find(items, "Bread") == nil {
		t.Errorf("valid plan entries should survive a stale one: %+v", items)
	}
}

func TestGroupByCategoryFollowsVocabularyOrder(t *testing.T) {
	items := []Item{
		{Name: "Dish Soap", Amount: 1, Category: "Household"},
		{Name: "Avocado", Amount: 2, Category: "Produce"},
		{Name: "Mystery", Amount: 1, Category: "Deleted Aisle"},
		{Name: "Milk", Amount: 1, Category: "Dairy"},
	}
	categories := []string{"Produce", "Dairy", "Household"}

	groups := GroupByCategory(items, categories)

	want := []string{"Produce", "Dairy", "Household", "Other"}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %+v", len(want), groups)
	}
	for i, g := range groups {
		if g.Category != want[i] {
			t.Errorf("group %d: got %q, want %q", i, g.Category, want[i])
		}
	}
	if groups[3].Items[0].Name != "Mystery" {
		t.Errorf("unknown categories land in the fallback group, got %+v", groups[3])
	}
}

func TestFormatText(t *testing.T) {
	groups := []Group{
		{Category: "Produce", Items: []Item{{Name: "Avocado", Amount: 2}}},
		{Category: "Dairy", Items: []Item{{Name: "Milk", Amount: 500, Unit: "ml"}}},
	}

	got := FormatText(groups)
	want := "Produce\n  - Avocado (2)\n\nDairy\n  - Milk (500 ml)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		unit   string
		want   string
	}{
		{150, "ml", "150 ml"},
		{2.5, "cups", "2.5 cups"},
		{3, "", "3"},
		{0.25, "kg", "0.25 kg"},
		{1.1, "", "1.1"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount, tt.unit); got != tt.want {
			t.Errorf("FormatAmount(%v, %q) = %q, want %q", tt.amount, tt.unit, got, tt.want)
		}
	}
	if !strings.Contains(FormatItem(Item{Name: "Milk", Amount: 500, Unit: "ml"}), "Milk (500 ml)") {
		t.Error("FormatItem should render name with parenthesised amount")
	}
}

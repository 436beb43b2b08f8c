package engine

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/logger"
	"github.com/hammamikhairi/culinarycompanion/internal/shopping"
	"github.com/hammamikhairi/culinarycompanion/internal/storage"
)

func newTestEngine(t *testing.T) (*Engine, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logger.New(logger.LevelOff, io.Discard)
	eng, err := New(context.Background(), store, log)
	if err != nil {
		t.Fatalf("creating engine: %v", err)
	}
	return eng, store
}

func TestNewLoadsDefaults(t *testing.T) {
	eng, _ := newTestEngine(t)

	state := eng.State()
	if len(state.Recipes) != 0 || len(state.Inventory) != 0 {
		t.Errorf("fresh state should be empty, got %+v", state)
	}
	if len(state.CustomTags) == 0 || len(state.Categories) == 0 {
		t.Error("fresh state should carry the default vocabularies")
	}
}

func TestMutationsPersist(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	eng.AddRecipe(ctx, domain.Recipe{Name: "Pancakes"})
	eng.AddInventoryItem(ctx, domain.Ingredient{Name: "Flour", Amount: 500, Unit: "g"})
	eng.AddTag(ctx, "Spicy")

	if store.Saves() != 3 {
		t.Errorf("every mutation persists the aggregate, got %d saves", store.Saves())
	}
}

func TestDeleteTagCascadesToRecipes(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddTag(ctx, "Spicy")
	eng.AddRecipe(ctx, domain.Recipe{Name: "Curry", Tags: []string{"Dinner", "Spicy"}})

	eng.DeleteTag(ctx, "Spicy")

	state := eng.State()
	for _, tag := range state.CustomTags {
		if tag == "Spicy" {
			t.Error("tag should leave the vocabulary")
		}
	}
	tags := state.Recipes[0].Tags
	if len(tags) != 1 || tags[0] != "Dinner" {
		t.Errorf("tag should leave every recipe, got %v", tags)
	}
}

func TestAddTagIgnoresDuplicates(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	before := len(eng.State().CustomTags)
	eng.AddTag(ctx, "Quick")
	if len(eng.State().CustomTags) != before {
		t.Error("adding an existing tag should be a no-op")
	}
}

func TestDeleteCategoryReassignsToFallback(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddInventoryItem(ctx, domain.Ingredient{Name: "Milk", Amount: 1000, Unit: "ml", Category: "Dairy"})
	eng.AddRecipe(ctx, domain.Recipe{
		Name: "Latte",
		Ingredients: []domain.RecipeIngredient{
			{Ingredient: domain.Ingredient{Name: "Milk", Amount: 200, Unit: "ml", Category: "Dairy"}},
		},
	})

	if err := eng.DeleteCategory(ctx, "Dairy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := eng.State()
	if state.Inventory[0].Category != domain.FallbackCategory {
		t.Errorf("inventory item should move to the fallback, got %q", state.Inventory[0].Category)
	}
	if state.Recipes[0].Ingredients[0].Category != domain.FallbackCategory {
		t.Errorf("recipe line should move to the fallback, got %q", state.Recipes[0].Ingredients[0].Category)
	}
}

func TestDeleteCategoryFallbackWhenOtherIsDeleted(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddInventoryItem(ctx, domain.Ingredient{Name: "Mystery Jar", Amount: 1, Category: "Other"})

	if err := eng.DeleteCategory(ctx, "Other"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state := eng.State()
	want := state.Categories[0]
	if state.Inventory[0].Category != want {
		t.Errorf("with the fallback gone, items move to the first remaining category %q, got %q",
			want, state.Inventory[0].Category)
	}
}

func TestDeleteCategoryRefusesLastOne(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	state := eng.State()
	for len(state.Categories) > 1 {
		if err := eng.DeleteCategory(ctx, state.Categories[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	err := eng.DeleteCategory(ctx, state.Categories[0])
	if !errors.Is(err, domain.ErrLastCategory) {
		t.Fatalf("expected ErrLastCategory, got %v", err)
	}
	if len(state.Categories) != 1 {
		t.Errorf("refused delete must leave the vocabulary intact, got %v", state.Categories)
	}
}

func TestDeleteCategoryUnknown(t *testing.T) {
	eng, _ := newTestEngine(t)

	err := eng.DeleteCategory(context.Background(), "No Such Aisle")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShoppingListGroupsByCategory(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	r := eng.AddRecipe(ctx, domain.Recipe{
		Name: "Toast",
		Ingredients: []domain.RecipeIngredient{
			{Ingredient: domain.Ingredient{Name: "Bread", Amount: 2, Unit: "slices", Category: "Bakery"}},
		},
	})

	groups := eng.ShoppingList([]shopping.PlanEntry{{RecipeID: r.ID, Multiplier: 1}}, nil)

	if len(groups) != 1 || groups[0].Category != "Bakery" {
		t.Fatalf("expected a single Bakery group, got %+v", groups)
	}
	if groups[0].Items[0].Name != "Bread" {
		t.Errorf("expected Bread in the Bakery group, got %+v", groups[0].Items)
	}
}

func TestAddShoppingItemToInventoryMerges(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddInventoryItem(ctx, domain.Ingredient{Name: "Tomato Sauce", Amount: 50, Unit: "ml", Category: "Pantry"})
	eng.AddShoppingItemToInventory(ctx, shopping.Item{Name: "tomato sauce", Amount: 150, Unit: "ml", Category: "Pantry"})

	state := eng.State()
	if len(state.Inventory) != 1 {
		t.Fatalf("expected a merge, got %d items", len(state.Inventory))
	}
	if state.Inventory[0].Amount != 200 {
		t.Errorf("expected 200 after restock, got %v", state.Inventory[0].Amount)
	}
}

func TestExportUsesInjectedWriter(t *testing.T) {
	eng, _ := newTestEngine(t)

	var gotDir string
	var gotState *domain.AppState
	fn := func(state *domain.AppState, dir string, now time.Time) (string, error) {
		gotDir, gotState = dir, state
		return dir + "/export.json", nil
	}

	path, err := eng.Export("/tmp/exports", time.Now(), fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/exports/export.json" || gotDir != "/tmp/exports" {
		t.Errorf("exporter should receive the target dir, got path %q dir %q", path, gotDir)
	}
	if gotState != eng.State() {
		t.Error("exporter should receive the live aggregate")
	}
}

func TestReplaceStateAndFactoryReset(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	eng.ReplaceState(ctx, domain.SampleState())
	if len(eng.State().Recipes) == 0 {
		t.Fatal("replacement state should carry the sample recipes")
	}

	eng.FactoryReset(ctx)
	state := eng.State()
	if len(state.Recipes) != 0 || len(state.Inventory) != 0 {
		t.Errorf("factory reset should restore empty defaults, got %+v", state)
	}
	if store.Saves() < 2 {
		t.Errorf("both operations persist, got %d saves", store.Saves())
	}
}

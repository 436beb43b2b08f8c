package recipe

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

func ingLine(name string, amount float64, optional bool) domain.RecipeIngredient {
	return domain.RecipeIngredient{
		Ingredient: domain.Ingredient{Name: name, Amount: amount},
		Optional:   optional,
	}
}

func TestAddAssignsIdentities(t *testing.T) {
	list := Add(nil, domain.Recipe{
		Name:        "Pancakes",
		Ingredients: []domain.RecipeIngredient{ingLine("Flour", 200, false)},
	})

	if len(list) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(list))
	}
	if list[0].ID == "" {
		t.Error("recipe should get an id")
	}
	if list[0].Ingredients[0].ID == "" {
		t.Error("ingredient line should get an id")
	}
}

func TestUpdateReplacesByID(t *testing.T) {
	list := Add(nil, domain.Recipe{Name: "Pancakes"})
	id := list[0].ID

	updated, err := Update(list, domain.Recipe{ID: id, Name: "Crepes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated[0].Name != "Crepes" {
		t.Errorf("expected name Crepes, got %q", updated[0].Name)
	}

	if _, err := Update(list, domain.Recipe{ID: "missing"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	list := Add(nil, domain.Recipe{Name: "Pancakes"})
	list = Add(list, domain.Recipe{Name: "Omelette"})

	list = Remove(list, list[0].ID)
	if len(list) != 1 || list[0].Name != "Omelette" {
		t.Fatalf("expected only Omelette to remain, got %+v", list)
	}

	list = Remove(list, "missing")
	if len(list) != 1 {
		t.Errorf("removing an unknown id should be a no-op")
	}
}

func TestMissingIngredients(t *testing.T) {
	r := domain.Recipe{
		Name: "Margherita Pizza",
		Ingredients: []domain.RecipeIngredient{
			ingLine("Tomato Sauce", 100, false),
			ingLine("Mozzarella", 125, false),
			ingLine("Fresh Basil", 1, true),
		},
	}

	tests := []struct {
		name string
		inv  []domain.Ingredient
		want []string
	}{
		{
			name: "empty pantry misses everything required",
			inv:  nil,
			want: []string{"Tomato Sauce", "Mozzarella"},
		},
		{
			name: "insufficient tracked amount is missing",
			inv: []domain.Ingredient{
				{Name: "tomato sauce", Amount: 50},
				{Name: "Mozzarella", Amount: 200},
			},
			want: []string{"Tomato Sauce"},
		},
		{
			name: "untracked in-stock covers any amount",
			inv: []domain.Ingredient{
				{Name: "Tomato Sauce", Untracked: true, Status: domain.StockIn},
				{Name: "Mozzarella", Untracked: true, Status: domain.StockLow},
			},
			want: nil,
		},
		{
			name: "untracked out-of-stock does not cover",
			inv: []domain.Ingredient{
				{Name: "Tomato Sauce", Untracked: true, Status: domain.StockOut},
				{Name: "Mozzarella", Amount: 125},
			},
			want: []string{"Tomato Sauce"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingIngredients(r, tt.inv)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestCookableIgnoresOptionalLines(t *testing.T) {
	r := domain.Recipe{
		Name: "Avocado Toast",
		Ingredients: []domain.RecipeIngredient{
			ingLine("Bread", 2, false),
			ingLine("Chili Flakes", 1, true),
		},
	}
	inv := []domain.Ingredient{{Name: "Bread", Amount: 6, Unit: "slices"}}

	if !Cookable(r, inv) {
		t.Error("recipe should be cookable without its optional ingredient")
	}
}

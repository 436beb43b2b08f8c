// Package recipe implements the recipe catalog rules.
//
// Recipes live by value inside the aggregate's recipe list; nothing else
// references them by id, so CRUD is plain list transformation.
package recipe

import (
	"github.com/hammamikhairi/culinarycompanion/internal/domain"
)

// Add appends a recipe with a fresh identity. Ingredient lines without an
// id get one too so the edit form can address them.
func Add(list []domain.Recipe, r domain.Recipe) []domain.Recipe {
	r.ID = domain.NewID()
	for idx := range r.Ingredients {
		if r.Ingredients[idx].ID == "" {
			r.Ingredients[idx].ID = domain.NewID()
		}
	}
	return append(list, r)
}

// Update replaces the recipe with the same id.
func Update(list []domain.Recipe, r domain.Recipe) ([]domain.Recipe, error) {
	for idx := range list {
		if list[idx].ID == r.ID {
			list[idx] = r
			return list, nil
		}
	}
	return list, domain.ErrNotFound
}

// Remove deletes a recipe by id. No orphan cleanup is needed: nothing
// references a recipe by id.
func Remove(list []domain.Recipe, id string) []domain.Recipe {
	out := list[:0]
	for _, r := range list {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

// Get returns the recipe with the given id.
func Get(list []domain.Recipe, id string) (domain.Recipe, error) {
	for _, r := range list {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Recipe{}, domain.ErrNotFound
}

// MissingIngredients returns the names of non-optional ingredients the
// inventory cannot cover. An ingredient is missing when no inventory entry
// matches its name case-insensitively, or the matching entry doesn't cover
// the required amount (untracked entries cover anything not out-of-stock).
func MissingIngredients(r domain.Recipe, inv []domain.Ingredient) []string {
	var missing []string
	for _, ing := range r.Ingredients {
		if ing.Optional {
			continue
		}
		if !covered(ing, inv) {
			missing = append(missing, ing.Name)
		}
	}
	return missing
}

// Cookable reports whether every non-optional ingredient is covered.
func Cookable(r domain.Recipe, inv []domain.Ingredient) bool {
	return len(MissingIngredients(r, inv)) == 0
}

func covered(ing domain.RecipeIngredient, inv []domain.Ingredient) bool {
	key := domain.NormalizeName(ing.Name)
	for _, have := range inv {
		if domain.NormalizeName(have.Name) == key {
			return have.Covers(ing.Amount)
		}
	}
	return false
}

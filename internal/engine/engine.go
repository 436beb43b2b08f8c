// Package engine holds the in-memory aggregate and routes every mutation
// through the rule packages, persisting the whole state afterwards.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/inventory"
	"github.com/hammamikhairi/culinarycompanion/internal/logger"
	"github.com/hammamikhairi/culinarycompanion/internal/recipe"
	"github.com/hammamikhairi/culinarycompanion/internal/shopping"
)

// Engine is the single state container. It is not safe for concurrent
// use; all mutations arrive from one UI event at a time.
type Engine struct {
	store domain.StateStore
	log   *logger.Logger
	state *domain.AppState
}

// New loads the persisted aggregate (or the defaults) and returns a ready
// engine.
func New(ctx context.Context, store domain.StateStore, log *logger.Logger) (*Engine, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	log.Info("state loaded: %d recipes, %d inventory items, %d tags, %d categories",
		len(state.Recipes), len(state.Inventory), len(state.CustomTags), len(state.Categories))
	return &Engine{store: store, log: log, state: state}, nil
}

// State exposes the aggregate for rendering. Callers must treat it as
// read-only and go through engine methods for mutations.
func (e *Engine) State() *domain.AppState {
	return e.state
}

// persist saves the whole aggregate. Persistence is fire-and-forget: a
// failed save is logged, never surfaced, and the in-memory state stays
// authoritative for the session.
func (e *Engine) persist(ctx context.Context) {
	if err := e.store.Save(ctx, e.state); err != nil {
		e.log.Error("persisting state: %v", err)
	}
}

// ── Recipes ──────────────────────────────────────────────────────

// AddRecipe appends a recipe with a fresh identity and returns it.
func (e *Engine) AddRecipe(ctx context.Context, r domain.Recipe) domain.Recipe {
	e.state.Recipes = recipe.Add(e.state.Recipes, r)
	added := e.state.Recipes[len(e.state.Recipes)-1]
	e.log.Info("recipe added: %s (%s)", added.Name, added.ID)
	e.persist(ctx)
	return added
}

// UpdateRecipe replaces a recipe by identity.
func (e *Engine) UpdateRecipe(ctx context.Context, r domain.Recipe) error {
	updated, err := recipe.Update(e.state.Recipes, r)
	if err != nil {
		return fmt.Errorf("updating recipe %s: %w", r.ID, err)
	}
	e.state.Recipes = updated
	e.log.Info("recipe updated: %s", r.Name)
	e.persist(ctx)
	return nil
}

// DeleteRecipe removes a recipe by identity.
func (e *Engine) DeleteRecipe(ctx context.Context, id string) {
	e.state.Recipes = recipe.Remove(e.state.Recipes, id)
	e.log.Info("recipe deleted: %s", id)
	e.persist(ctx)
}

// MissingIngredients returns the shortfall list for a recipe against the
// current inventory. Empty means cookable.
func (e *Engine) MissingIngredients(id string) ([]string, error) {
	r, err := recipe.Get(e.state.Recipes, id)
	if err != nil {
		return nil, err
	}
	return recipe.MissingIngredients(r, e.state.Inventory), nil
}

// ── Inventory ────────────────────────────────────────────────────

// AddInventoryItem adds or merges an item into the pantry.
func (e *Engine) AddInventoryItem(ctx context.Context, item domain.Ingredient) {
	e.state.Inventory = inventory.AddOrMerge(e.state.Inventory, item)
	e.log.Debug("inventory add/merge: %s", item.Name)
	e.persist(ctx)
}

// AdjustInventoryAmount applies a delta to an item, clamped at zero.
func (e *Engine) AdjustInventoryAmount(ctx context.Context, id string, delta float64) error {
	updated, err := inventory.AdjustAmount(e.state.Inventory, id, delta)
	if err != nil {
		return err
	}
	e.state.Inventory = updated
	e.persist(ctx)
	return nil
}

// SetStockStatus sets an item's qualitative stock level.
func (e *Engine) SetStockStatus(ctx context.Context, id string, status domain.StockStatus) error {
	updated, err := inventory.SetStockStatus(e.state.Inventory, id, status)
	if err != nil {
		return err
	}
	e.state.Inventory = updated
	e.persist(ctx)
	return nil
}

// ToggleUntracked flips an item between numeric and qualitative tracking.
func (e *Engine) ToggleUntracked(ctx context.Context, id string) error {
	updated, err := inventory.ToggleUntracked(e.state.Inventory, id)
	if err != nil {
		return err
	}
	e.state.Inventory = updated
	e.persist(ctx)
	return nil
}

// RemoveInventoryItem deletes an item from the pantry.
func (e *Engine) RemoveInventoryItem(ctx context.Context, id string) {
	e.state.Inventory = inventory.Remove(e.state.Inventory, id)
	e.persist(ctx)
}

// ClearInventory empties the pantry. The caller confirms first.
func (e *Engine) ClearInventory(ctx context.Context) {
	e.state.Inventory = []domain.Ingredient{}
	e.log.Info("inventory cleared")
	e.persist(ctx)
}

// ── Shopping ─────────────────────────────────────────────────────

// ShoppingList derives the grouped shopping list for a meal plan. Pure
// computation; nothing is mutated or persisted.
func (e *Engine) ShoppingList(plan []shopping.PlanEntry, replenish map[string]bool) []shopping.Group {
	items := shopping.Build(plan, e.state.Recipes, e.state.Inventory, replenish)
	return shopping.GroupByCategory(items, e.state.Categories)
}

// AddShoppingItemToInventory converts a shopping-list line into a pantry
// mutation through the standard merge rule.
func (e *Engine) AddShoppingItemToInventory(ctx context.Context, it shopping.Item) {
	e.AddInventoryItem(ctx, domain.Ingredient{
		Name:     it.Name,
		Amount:   it.Amount,
		Unit:     it.Unit,
		Category: it.Category,
	})
}

// ── Settings ─────────────────────────────────────────────────────

// AddTag appends a tag to the vocabulary unless already present.
func (e *Engine) AddTag(ctx context.Context, tag string) {
	for _, t := range e.state.CustomTags {
		if t == tag {
			return
		}
	}
	e.state.CustomTags = append(e.state.CustomTags, tag)
	e.persist(ctx)
}

// DeleteTag removes a tag from the vocabulary and from every recipe.
func (e *Engine) DeleteTag(ctx context.Context, tag string) {
	e.state.CustomTags = removeString(e.state.CustomTags, tag)
	for ri := range e.state.Recipes {
		e.state.Recipes[ri].Tags = removeString(e.state.Recipes[ri].Tags, tag)
	}
	e.log.Info("tag deleted: %s", tag)
	e.persist(ctx)
}

// AddCategory appends a category to the vocabulary unless already present.
func (e *Engine) AddCategory(ctx context.Context, cat string) {
	for _, c := range e.state.Categories {
		if c == cat {
			return
		}
	}
	e.state.Categories = append(e.state.Categories, cat)
	e.persist(ctx)
}

// DeleteCategory removes a category and reassigns every ingredient and
// recipe line carrying it to the fallback. Refused when it would leave the
// vocabulary empty.
func (e *Engine) DeleteCategory(ctx context.Context, cat string) error {
	if len(e.state.Categories) <= 1 {
		return domain.ErrLastCategory
	}

	remaining := removeString(e.state.Categories, cat)
	if len(remaining) == len(e.state.Categories) {
		return domain.ErrNotFound
	}
	e.state.Categories = remaining

	fallback := domain.FallbackCategory
	if cat == fallback || !containsString(remaining, fallback) {
		fallback = remaining[0]
	}

	e.state.Inventory = inventory.ReassignCategory(e.state.Inventory, cat, fallback)
	for ri := range e.state.Recipes {
		for ii := range e.state.Recipes[ri].Ingredients {
			if e.state.Recipes[ri].Ingredients[ii].Category == cat {
				e.state.Recipes[ri].Ingredients[ii].Category = fallback
			}
		}
	}

	e.log.Info("category deleted: %s (reassigned to %s)", cat, fallback)
	e.persist(ctx)
	return nil
}

// ── Import / export / reset ──────────────────────────────────────

// StateExporter writes the aggregate somewhere external. Implemented by
// the storage package; indirected so tests can capture exports.
type StateExporter func(state *domain.AppState, dir string, now time.Time) (string, error)

// Export writes a dated pretty-printed snapshot into dir via fn.
func (e *Engine) Export(dir string, now time.Time, fn StateExporter) (string, error) {
	path, err := fn(e.state, dir, now)
	if err != nil {
		return "", fmt.Errorf("exporting state: %w", err)
	}
	e.log.Info("state exported to %s", path)
	return path, nil
}

// ReplaceState swaps in a replacement aggregate wholesale (import) and
// persists it. No merging, no validation beyond what the importer did.
func (e *Engine) ReplaceState(ctx context.Context, state *domain.AppState) {
	e.state = state
	e.log.Info("state replaced: %d recipes, %d inventory items", len(state.Recipes), len(state.Inventory))
	e.persist(ctx)
}

// FactoryReset restores the default aggregate. The caller confirms first.
func (e *Engine) FactoryReset(ctx context.Context) {
	e.state = domain.NewDefaultState()
	e.log.Info("factory reset")
	e.persist(ctx)
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

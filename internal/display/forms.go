package display

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/inventory"
)

// ── Recipe wizard ────────────────────────────────────────────────
//
// A sequence of single-line prompts: name, description, ingredient lines
// (blank ends the list), instructions, tags, prep minutes. Ingredient
// lines use the quick-add syntax plus two markers:
//
//	? at the start marks the line optional
//	@Category at the end assigns a shopping category
//
// e.g. "?100ml tomato sauce @Pantry"

type wizardStage int

const (
	stageName wizardStage = iota
	stageDescription
	stageIngredients
	stageInstructions
	stageTags
	stagePrep
)

type recipeWizard struct {
	editing bool
	recipe  domain.Recipe
	stage   wizardStage
	lines   []domain.RecipeIngredient
}

// newRecipeWizard starts a wizard. With a non-nil recipe the wizard edits
// it in place: blank answers keep the current value, and entering any
// ingredient lines replaces the whole ingredient list.
func newRecipeWizard(existing *domain.Recipe) *recipeWizard {
	w := &recipeWizard{}
	if existing != nil {
		w.editing = true
		w.recipe = *existing
	}
	return w
}

// prime prepares the shared text input for the current stage.
func (w *recipeWizard) prime(input *textinput.Model) {
	input.SetValue("")
	switch w.stage {
	case stageName:
		input.Placeholder = "recipe name"
		if w.editing {
			input.SetValue(w.recipe.Name)
		}
	case stageDescription:
		input.Placeholder = "description"
		if w.editing {
			input.SetValue(w.recipe.Description)
		}
	case stageIngredients:
		if w.editing && len(w.lines) == 0 {
			input.Placeholder = "ingredient line (blank keeps current list)"
		} else {
			input.Placeholder = "ingredient line (blank to finish)"
		}
	case stageInstructions:
		input.Placeholder = "instructions"
		if w.editing {
			input.SetValue(w.recipe.Instructions)
		}
	case stageTags:
		input.Placeholder = "tags, comma separated"
		if w.editing {
			input.SetValue(strings.Join(w.recipe.Tags, ", "))
		}
	case stagePrep:
		input.Placeholder = "prep time in minutes (blank to skip)"
		if w.editing && w.recipe.PrepMinutes > 0 {
			input.SetValue(strconv.Itoa(w.recipe.PrepMinutes))
		}
	}
	input.Focus()
}

func (w *recipeWizard) title() string {
	if w.editing {
		return "Edit recipe"
	}
	return "New recipe"
}

func (w *recipeWizard) stageLabel() string {
	switch w.stage {
	case stageName:
		return "Name"
	case stageDescription:
		return "Description"
	case stageIngredients:
		return fmt.Sprintf("Ingredients (%d so far)", len(w.lines))
	case stageInstructions:
		return "Instructions"
	case stageTags:
		return "Tags"
	case stagePrep:
		return "Prep time"
	default:
		return ""
	}
}

// submit consumes one answer. Returns done=true when the wizard finished
// and the recipe is ready to store.
func (w *recipeWizard) submit(value string) (done bool) {
	value = strings.TrimSpace(value)

	switch w.stage {
	case stageName:
		if value != "" {
			w.recipe.Name = value
		}
		if w.recipe.Name == "" {
			return false // a recipe needs a name; stay on this stage
		}
		w.stage = stageDescription

	case stageDescription:
		w.recipe.Description = value
		w.stage = stageIngredients

	case stageIngredients:
		if value == "" {
			if !w.editing || len(w.lines) > 0 {
				w.recipe.Ingredients = w.lines
			}
			w.stage = stageInstructions
			return false
		}
		if line, ok := parseIngredientLine(value); ok {
			w.lines = append(w.lines, line)
		}

	case stageInstructions:
		w.recipe.Instructions = value
		w.stage = stageTags

	case stageTags:
		w.recipe.Tags = splitTags(value)
		w.stage = stagePrep

	case stagePrep:
		if value == "" {
			return true
		}
		if minutes, err := strconv.Atoi(value); err == nil && minutes >= 0 {
			w.recipe.PrepMinutes = minutes
		}
		return true
	}
	return false
}

// parseIngredientLine reads a wizard ingredient line: quick-add syntax
// plus the optional marker and category suffix.
func parseIngredientLine(line string) (domain.RecipeIngredient, bool) {
	optional := false
	if strings.HasPrefix(line, "?") {
		optional = true
		line = strings.TrimSpace(strings.TrimPrefix(line, "?"))
	}

	category := ""
	if at := strings.LastIndex(line, "@"); at >= 0 {
		category = strings.TrimSpace(line[at+1:])
		line = strings.TrimSpace(line[:at])
	}

	item, ok := inventory.ParseItem(line)
	if !ok {
		return domain.RecipeIngredient{}, false
	}
	item.Category = category
	return domain.RecipeIngredient{Ingredient: item, Optional: optional}, true
}

func splitTags(value string) []string {
	var tags []string
	for _, t := range strings.Split(value, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ── Wizard mode handling ─────────────────────────────────────────

func (m *model) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.wizard = nil
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		if m.wizard.submit(m.input.Value()) {
			ctx := context.Background()
			var err error
			name := m.wizard.recipe.Name
			if m.wizard.editing {
				err = m.eng.UpdateRecipe(ctx, m.wizard.recipe)
			} else {
				m.eng.AddRecipe(ctx, m.wizard.recipe)
			}
			m.wizard = nil
			m.mode = modeBrowse
			m.input.Blur()
			m.planChanged(true) // recipe contents feed shopping demand
			if err != nil {
				m.log.Error("saving recipe: %v", err)
				return m, m.flash("could not save recipe")
			}
			return m, m.flash("saved " + name)
		}
		m.wizard.prime(&m.input)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

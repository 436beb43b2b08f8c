package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/recipe"
	"github.com/hammamikhairi/culinarycompanion/internal/shopping"
)

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.mode {
	case modeDetail:
		b.WriteString(m.renderDetail())
	case modeWizard:
		b.WriteString(m.renderWizard())
	default:
		switch m.tab {
		case tabRecipes:
			b.WriteString(m.renderRecipes())
		case tabInventory:
			b.WriteString(m.renderInventory())
		case tabShopping:
			b.WriteString(m.renderShopping())
		case tabSettings:
			b.WriteString(m.renderSettings())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *model) renderTabBar() string {
	var parts []string
	for t := tabRecipes; t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, t)
		if t == m.tab {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// ── Recipes ──────────────────────────────────────────────────────

func (m *model) renderRecipes() string {
	state := m.eng.State()
	if len(state.Recipes) == 0 {
		return secondaryStyle.Render("  No recipes yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, r := range state.Recipes {
		cursor := "  "
		line := r.Name
		if mult := m.plan[r.ID]; mult > 0 {
			line += fmt.Sprintf("  ×%d", mult)
		}

		missing := recipe.MissingIngredients(r, state.Inventory)
		var marker string
		if len(missing) == 0 {
			marker = okStyle.Render(" ✓")
		} else {
			marker = urgentStyle.Render(fmt.Sprintf(" ✗ %d missing", len(missing)))
		}

		meta := ""
		if r.PrepMinutes > 0 {
			meta = secondaryStyle.Render(fmt.Sprintf("  %dm", r.PrepMinutes))
		}
		if len(r.Tags) > 0 {
			meta += secondaryStyle.Render("  [" + strings.Join(r.Tags, ", ") + "]")
		}

		if i == m.recCursor {
			cursor = selectedStyle.Render("> ")
			b.WriteString(cursor + selectedStyle.Render(line) + marker + meta)
		} else {
			b.WriteString(cursor + primaryStyle.Render(line) + marker + meta)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *model) renderDetail() string {
	state := m.eng.State()
	r, err := recipe.Get(state.Recipes, m.detailID)
	if err != nil {
		return urgentStyle.Render("  recipe no longer exists")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  === "+r.Name+" ===") + "\n")
	if r.Description != "" {
		b.WriteString(primaryStyle.Render("  "+r.Description) + "\n")
	}
	if r.PrepMinutes > 0 {
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  Prep: %d minutes", r.PrepMinutes)) + "\n")
	}
	if len(r.Tags) > 0 {
		b.WriteString(secondaryStyle.Render("  Tags: "+strings.Join(r.Tags, ", ")) + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("  Ingredients:") + "\n")
	missing := recipe.MissingIngredients(r, state.Inventory)
	missingSet := make(map[string]bool, len(missing))
	for _, name := range missing {
		missingSet[domain.NormalizeName(name)] = true
	}
	for _, ing := range r.Ingredients {
		line := "  - " + shopping.FormatItem(shopping.Item{Name: ing.Name, Amount: ing.Amount, Unit: ing.Unit})
		if ing.Optional {
			line += " (optional)"
		}
		if missingSet[domain.NormalizeName(ing.Name)] {
			b.WriteString(urgentStyle.Render(line+"  ← missing") + "\n")
		} else {
			b.WriteString(primaryStyle.Render(line) + "\n")
		}
	}

	if r.Instructions != "" {
		b.WriteString("\n" + headerStyle.Render("  Instructions:") + "\n")
		b.WriteString(primaryStyle.Render("  "+r.Instructions) + "\n")
	}

	b.WriteString("\n" + secondaryStyle.Render("  esc to go back"))
	return b.String()
}

func (m *model) renderWizard() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  "+m.wizard.title()) + "\n")
	b.WriteString(secondaryStyle.Render("  "+m.wizard.stageLabel()) + "\n\n")

	for _, line := range m.wizard.lines {
		b.WriteString(primaryStyle.Render("  + "+shopping.FormatItem(shopping.Item{
			Name: line.Name, Amount: line.Amount, Unit: line.Unit,
		})) + "\n")
	}
	if len(m.wizard.lines) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString("  " + m.input.View() + "\n")
	b.WriteString(secondaryStyle.Render("  enter to continue, esc to cancel"))
	return b.String()
}

// ── Inventory ────────────────────────────────────────────────────

func (m *model) renderInventory() string {
	state := m.eng.State()
	if len(state.Inventory) == 0 {
		return secondaryStyle.Render("  Pantry is empty. Press 'a' to add an item.")
	}

	var b strings.Builder
	for i, it := range state.Inventory {
		qty := "~"
		if !it.Untracked {
			qty = shopping.FormatAmount(it.Amount, it.Unit)
		}

		line := fmt.Sprintf("%-24s %10s", it.Name, qty)

		status := ""
		switch it.Status {
		case domain.StockIn:
			status = okStyle.Render("  in stock")
		case domain.StockLow:
			status = warnStyle.Render("  low")
		case domain.StockOut:
			status = urgentStyle.Render("  out")
		}
		if m.replenish[it.ID] {
			status += warnStyle.Render("  ⟳ replenish")
		}

		cat := ""
		if it.Category != "" {
			cat = secondaryStyle.Render("  " + it.Category)
		}

		if i == m.invCursor {
			b.WriteString(selectedStyle.Render("> "+line) + status + cat)
		} else {
			b.WriteString(primaryStyle.Render("  "+line) + status + cat)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ── Shopping ─────────────────────────────────────────────────────

func (m *model) renderShopping() string {
	if len(m.flat) == 0 {
		if len(m.plan) == 0 {
			return secondaryStyle.Render("  Nothing planned. Press '+' on a recipe to plan it.")
		}
		return okStyle.Render("  Everything you need is already on hand.")
	}

	var b strings.Builder
	idx := 0
	for _, g := range m.groups {
		b.WriteString(headerStyle.Render("  "+g.Category) + "\n")
		for _, it := range g.Items {
			key := domain.NormalizeName(it.Name)
			box := "[ ] "
			line := shopping.FormatItem(it)

			style := primaryStyle
			if m.checked[key] {
				box = "[x] "
				style = checkedStyle
			}
			if idx == m.shopCursor {
				b.WriteString(selectedStyle.Render("> "+box) + style.Render(line))
			} else {
				b.WriteString("  " + style.Render(box+line))
			}
			b.WriteByte('\n')
			idx++
		}
	}

	if m.copied {
		b.WriteString("\n" + okStyle.Render("  ✓ copied to clipboard"))
	}
	return b.String()
}

// ── Settings ─────────────────────────────────────────────────────

func (m *model) renderSettings() string {
	state := m.eng.State()

	renderList := func(title string, items []string, active bool) string {
		var b strings.Builder
		if active {
			b.WriteString(headerStyle.Render("  "+title) + "\n")
		} else {
			b.WriteString(secondaryStyle.Render("  "+title) + "\n")
		}
		for i, v := range items {
			if active && i == m.setCursor {
				b.WriteString(selectedStyle.Render("  > "+v) + "\n")
			} else {
				b.WriteString(primaryStyle.Render("    "+v) + "\n")
			}
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString(renderList("Tags", state.CustomTags, m.setPane == 0))
	b.WriteByte('\n')
	b.WriteString(renderList("Categories", state.Categories, m.setPane == 1))
	return b.String()
}

// ── Footer ───────────────────────────────────────────────────────

func (m *model) renderFooter() string {
	switch m.mode {
	case modeConfirm:
		return urgentStyle.Render("  "+m.prompt) + secondaryStyle.Render("  (y/n)")
	case modeInput:
		return "  " + m.input.View()
	case modeWizard, modeDetail:
		if m.status != "" {
			return statusStyle.Render("  " + m.status)
		}
		return ""
	}

	if m.status != "" {
		return statusStyle.Render("  " + m.status)
	}

	var help string
	switch m.tab {
	case tabRecipes:
		help = "a add  e edit  d delete  enter detail  +/- plan  tab switch  q quit"
	case tabInventory:
		help = "a add  +/- amount  u untracked  s status  r replenish  d delete  C clear  q quit"
	case tabShopping:
		help = "space check  enter to inventory  c copy  e export  tab switch  q quit"
	case tabSettings:
		help = "h/l pane  a add  d delete  i import  e export  X reset  q quit"
	}
	return secondaryStyle.Render("  " + help)
}

// Package display provides the terminal UI using Bubble Tea.
//
// The app is a four-tab browser over the aggregate: Recipes, Inventory,
// Shopping, Settings. Business rules live in the engine; this package only
// wires key events to engine calls and renders the result. The meal plan,
// replenish flags, and shopping check-offs are view state here — they are
// never persisted, and check-offs reset whenever the plan changes.
package display

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/culinarycompanion/internal/domain"
	"github.com/hammamikhairi/culinarycompanion/internal/engine"
	"github.com/hammamikhairi/culinarycompanion/internal/inventory"
	"github.com/hammamikhairi/culinarycompanion/internal/logger"
	"github.com/hammamikhairi/culinarycompanion/internal/shopping"
	"github.com/hammamikhairi/culinarycompanion/internal/storage"
)

// UI runs the Bubble Tea event loop.
type UI struct {
	program *tea.Program
}

// NewUI creates the display. exportDir is where export snapshots land.
func NewUI(eng *engine.Engine, log *logger.Logger, exportDir string) *UI {
	m := newModel(eng, log, exportDir)
	return &UI{program: tea.NewProgram(m)}
}

// Run starts the event loop. Blocks until quit.
func (u *UI) Run() error {
	_, err := u.program.Run()
	return err
}

// ── Tabs and modes ───────────────────────────────────────────────

type tab int

const (
	tabRecipes tab = iota
	tabInventory
	tabShopping
	tabSettings
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabRecipes:
		return "Recipes"
	case tabInventory:
		return "Inventory"
	case tabShopping:
		return "Shopping"
	case tabSettings:
		return "Settings"
	default:
		return "?"
	}
}

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeConfirm
	modeWizard
	modeDetail
)

// inputKind says what an input-bar submission means.
type inputKind int

const (
	inputAddInventory inputKind = iota
	inputAddTag
	inputAddCategory
	inputImportPath
)

// confirmKind says what a y/n confirmation triggers.
type confirmKind int

const (
	confirmDeleteRecipe confirmKind = iota
	confirmDeleteCategory
	confirmClearInventory
	confirmFactoryReset
)

// Messages.
type clearCopiedMsg struct{}
type clearStatusMsg struct{ seq int }

type model struct {
	eng       *engine.Engine
	log       *logger.Logger
	exportDir string

	tab    tab
	mode   mode
	width  int
	height int

	// Per-tab cursors.
	recCursor  int
	invCursor  int
	shopCursor int
	setCursor  int
	setPane    int // 0 = tags, 1 = categories

	input     textinput.Model
	inputFor  inputKind
	confirm   confirmKind
	confirmID string // recipe id / category name under confirmation
	prompt    string

	wizard   *recipeWizard
	detailID string

	// Shopping view state (ephemeral, never persisted).
	plan      map[string]int  // recipe id -> multiplier
	replenish map[string]bool // inventory item id -> opt-in low-stock flag
	checked   map[string]bool // shopping line name -> checked off
	groups    []shopping.Group
	flat      []shopping.Item // cursor order, matches groups flattened

	status    string
	statusSeq int
	copied    bool
}

func newModel(eng *engine.Engine, log *logger.Logger, exportDir string) *model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = primaryStyle
	ti.CharLimit = 200
	ti.Width = 60

	return &model{
		eng:       eng,
		log:       log,
		exportDir: exportDir,
		input:     ti,
		plan:      make(map[string]int),
		replenish: make(map[string]bool),
		checked:   make(map[string]bool),
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// flash shows a transient status message for a few seconds.
func (m *model) flash(text string) tea.Cmd {
	m.status = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// planChanged rebuilds the shopping list and resets check-offs. Called
// for every plan or replenish mutation and after inventory changes.
func (m *model) planChanged(resetChecks bool) {
	if resetChecks {
		m.checked = make(map[string]bool)
	}
	m.refreshShopping()
}

// refreshShopping recomputes the grouped list and the flat cursor order.
func (m *model) refreshShopping() {
	m.groups = m.eng.ShoppingList(m.planEntries(), m.replenish)
	m.flat = m.flat[:0]
	for _, g := range m.groups {
		m.flat = append(m.flat, g.Items...)
	}
	if m.shopCursor >= len(m.flat) {
		m.shopCursor = len(m.flat) - 1
	}
	if m.shopCursor < 0 {
		m.shopCursor = 0
	}
}

// planEntries flattens the multiplier map in catalog order so demand
// aggregation is deterministic.
func (m *model) planEntries() []shopping.PlanEntry {
	var entries []shopping.PlanEntry
	for _, r := range m.eng.State().Recipes {
		if n := m.plan[r.ID]; n > 0 {
			entries = append(entries, shopping.PlanEntry{RecipeID: r.ID, Multiplier: n})
		}
	}
	return entries
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 4 {
			m.input.Width = msg.Width - 4
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeInput:
			return m.updateInput(msg)
		case modeWizard:
			return m.updateWizard(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// ── Browse mode ──────────────────────────────────────────────────

func (m *model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.tab = (m.tab + 1) % tabCount
		if m.tab == tabShopping {
			m.refreshShopping()
		}
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		if m.tab == tabShopping {
			m.refreshShopping()
		}
		return m, nil
	case "1", "2", "3", "4":
		m.tab = tab(int(msg.String()[0] - '1'))
		if m.tab == tabShopping {
			m.refreshShopping()
		}
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	}

	switch m.tab {
	case tabRecipes:
		return m.updateRecipesKeys(ctx, msg)
	case tabInventory:
		return m.updateInventoryKeys(ctx, msg)
	case tabShopping:
		return m.updateShoppingKeys(ctx, msg)
	case tabSettings:
		return m.updateSettingsKeys(ctx, msg)
	}
	return m, nil
}

func (m *model) moveCursor(delta int) {
	move := func(cur, max int) int {
		cur += delta
		if cur < 0 {
			cur = 0
		}
		if cur > max-1 {
			cur = max - 1
		}
		if cur < 0 {
			cur = 0
		}
		return cur
	}

	state := m.eng.State()
	switch m.tab {
	case tabRecipes:
		m.recCursor = move(m.recCursor, len(state.Recipes))
	case tabInventory:
		m.invCursor = move(m.invCursor, len(state.Inventory))
	case tabShopping:
		m.shopCursor = move(m.shopCursor, len(m.flat))
	case tabSettings:
		if m.setPane == 0 {
			m.setCursor = move(m.setCursor, len(state.CustomTags))
		} else {
			m.setCursor = move(m.setCursor, len(state.Categories))
		}
	}
}

// ── Recipes tab ──────────────────────────────────────────────────

func (m *model) updateRecipesKeys(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.eng.State()
	var current *domain.Recipe
	if m.recCursor >= 0 && m.recCursor < len(state.Recipes) {
		current = &state.Recipes[m.recCursor]
	}

	switch msg.String() {
	case "a":
		m.wizard = newRecipeWizard(nil)
		m.mode = modeWizard
		m.wizard.prime(&m.input)
		return m, nil

	case "e":
		if current == nil {
			return m, nil
		}
		r := *current
		m.wizard = newRecipeWizard(&r)
		m.mode = modeWizard
		m.wizard.prime(&m.input)
		return m, nil

	case "enter":
		if current == nil {
			return m, nil
		}
		m.detailID = current.ID
		m.mode = modeDetail
		return m, nil

	case "d":
		if current == nil {
			return m, nil
		}
		m.confirm = confirmDeleteRecipe
		m.confirmID = current.ID
		m.prompt = "Delete recipe \"" + current.Name + "\"?"
		m.mode = modeConfirm
		return m, nil

	case "+", "=", "p":
		if current == nil {
			return m, nil
		}
		m.plan[current.ID]++
		m.planChanged(true)
		return m, m.flash("planned " + current.Name + " ×" + strconv.Itoa(m.plan[current.ID]))

	case "-", "_":
		if current == nil {
			return m, nil
		}
		if m.plan[current.ID] > 0 {
			m.plan[current.ID]--
			if m.plan[current.ID] == 0 {
				delete(m.plan, current.ID) // multiplier 0 entries are pruned
			}
			m.planChanged(true)
		}
		return m, nil
	}
	return m, nil
}

// ── Inventory tab ────────────────────────────────────────────────

func (m *model) updateInventoryKeys(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.eng.State()
	var current *domain.Ingredient
	if m.invCursor >= 0 && m.invCursor < len(state.Inventory) {
		current = &state.Inventory[m.invCursor]
	}

	switch msg.String() {
	case "a":
		m.startInput(inputAddInventory, "add item (e.g. \"2 cups flour\")")
		return m, nil

	case "+", "=":
		if current != nil {
			m.eng.AdjustInventoryAmount(ctx, current.ID, 1)
			m.planChanged(false)
		}
		return m, nil

	case "-", "_":
		if current != nil {
			m.eng.AdjustInventoryAmount(ctx, current.ID, -1)
			m.planChanged(false)
		}
		return m, nil

	case "u":
		if current != nil {
			m.eng.ToggleUntracked(ctx, current.ID)
			m.planChanged(false)
		}
		return m, nil

	case "s":
		if current != nil {
			m.eng.SetStockStatus(ctx, current.ID, nextStatus(current.Status))
			m.planChanged(false)
		}
		return m, nil

	case "r":
		if current != nil {
			m.replenish[current.ID] = !m.replenish[current.ID]
			m.planChanged(true)
		}
		return m, nil

	case "d":
		if current != nil {
			name := current.Name
			m.eng.RemoveInventoryItem(ctx, current.ID)
			m.planChanged(false)
			m.moveCursor(0)
			return m, m.flash("removed " + name)
		}
		return m, nil

	case "C":
		m.confirm = confirmClearInventory
		m.prompt = "Clear the entire inventory?"
		m.mode = modeConfirm
		return m, nil
	}
	return m, nil
}

// nextStatus cycles in-stock → low-stock → out-of-stock.
func nextStatus(s domain.StockStatus) domain.StockStatus {
	switch s {
	case domain.StockIn:
		return domain.StockLow
	case domain.StockLow:
		return domain.StockOut
	default:
		return domain.StockIn
	}
}

// ── Shopping tab ─────────────────────────────────────────────────

func (m *model) updateShoppingKeys(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var current *shopping.Item
	if m.shopCursor >= 0 && m.shopCursor < len(m.flat) {
		current = &m.flat[m.shopCursor]
	}

	switch msg.String() {
	case " ":
		if current != nil {
			key := domain.NormalizeName(current.Name)
			m.checked[key] = !m.checked[key]
		}
		return m, nil

	case "enter":
		if current != nil {
			it := *current
			m.eng.AddShoppingItemToInventory(ctx, it)
			m.planChanged(false)
			return m, m.flash("added " + it.Name + " to inventory")
		}
		return m, nil

	case "c", "y":
		text := shopping.FormatText(m.groups)
		if text == "" {
			return m, nil
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.log.Error("clipboard write: %v", err)
			return m, m.flash("clipboard unavailable")
		}
		m.copied = true
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return clearCopiedMsg{}
		})

	case "e":
		return m, m.doExport()
	}
	return m, nil
}

// ── Settings tab ─────────────────────────────────────────────────

func (m *model) updateSettingsKeys(ctx context.Context, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.eng.State()

	switch msg.String() {
	case "left", "h", "right", "l":
		m.setPane = 1 - m.setPane
		m.setCursor = 0
		return m, nil

	case "a":
		if m.setPane == 0 {
			m.startInput(inputAddTag, "new tag")
		} else {
			m.startInput(inputAddCategory, "new category")
		}
		return m, nil

	case "d":
		if m.setPane == 0 {
			if m.setCursor < len(state.CustomTags) {
				tag := state.CustomTags[m.setCursor]
				m.eng.DeleteTag(ctx, tag)
				m.moveCursor(0)
				return m, m.flash("tag \"" + tag + "\" removed from vocabulary and all recipes")
			}
			return m, nil
		}
		if m.setCursor < len(state.Categories) {
			cat := state.Categories[m.setCursor]
			m.confirm = confirmDeleteCategory
			m.confirmID = cat
			m.prompt = "Delete category \"" + cat + "\"? Items move to the fallback category."
			m.mode = modeConfirm
		}
		return m, nil

	case "i":
		m.startInput(inputImportPath, "path to import file")
		return m, nil

	case "e":
		return m, m.doExport()

	case "X":
		m.confirm = confirmFactoryReset
		m.prompt = "Factory reset? All recipes, inventory, tags and categories are replaced with defaults."
		m.mode = modeConfirm
		return m, nil
	}
	return m, nil
}

// ── Input mode ───────────────────────────────────────────────────

func (m *model) startInput(kind inputKind, placeholder string) {
	m.inputFor = kind
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	m.mode = modeInput
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if value == "" {
			return m, nil
		}

		switch m.inputFor {
		case inputAddInventory:
			item, ok := inventory.ParseItem(value)
			if !ok {
				return m, m.flash("couldn't read that line")
			}
			m.eng.AddInventoryItem(ctx, item)
			m.planChanged(false)
			return m, m.flash("added " + item.Name)

		case inputAddTag:
			m.eng.AddTag(ctx, value)
			return m, nil

		case inputAddCategory:
			m.eng.AddCategory(ctx, value)
			return m, nil

		case inputImportPath:
			state, err := storage.ImportFromFile(value)
			if err != nil {
				m.log.Error("import: %v", err)
				// In-memory state is left untouched on a bad file.
				return m, m.flash("failed to import file")
			}
			m.eng.ReplaceState(ctx, state)
			m.resetViewState()
			return m, m.flash("imported " + value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ── Confirm mode ─────────────────────────────────────────────────

func (m *model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "y", "Y", "enter":
		m.mode = modeBrowse
		switch m.confirm {
		case confirmDeleteRecipe:
			m.eng.DeleteRecipe(ctx, m.confirmID)
			delete(m.plan, m.confirmID)
			m.planChanged(true)
			m.moveCursor(0)
			return m, m.flash("recipe deleted")

		case confirmDeleteCategory:
			if err := m.eng.DeleteCategory(ctx, m.confirmID); err != nil {
				if errors.Is(err, domain.ErrLastCategory) {
					return m, m.flash("at least one category must remain")
				}
				return m, m.flash("could not delete category")
			}
			m.moveCursor(0)
			m.planChanged(false)
			return m, m.flash("category \"" + m.confirmID + "\" deleted")

		case confirmClearInventory:
			m.eng.ClearInventory(ctx)
			m.replenish = make(map[string]bool)
			m.planChanged(false)
			m.invCursor = 0
			return m, m.flash("inventory cleared")

		case confirmFactoryReset:
			m.eng.FactoryReset(ctx)
			m.resetViewState()
			return m, m.flash("reset to defaults")
		}
		return m, nil

	case "n", "N", "esc":
		// Declining leaves state unchanged.
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

// resetViewState drops all ephemeral view state after a wholesale state
// swap (import, factory reset).
func (m *model) resetViewState() {
	m.plan = make(map[string]int)
	m.replenish = make(map[string]bool)
	m.checked = make(map[string]bool)
	m.recCursor, m.invCursor, m.shopCursor, m.setCursor = 0, 0, 0, 0
	m.refreshShopping()
}

// ── Detail mode ──────────────────────────────────────────────────

func (m *model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

// ── Shared actions ───────────────────────────────────────────────

func (m *model) doExport() tea.Cmd {
	path, err := m.eng.Export(m.exportDir, time.Now(), storage.ExportToFile)
	if err != nil {
		m.log.Error("export: %v", err)
		return m.flash("export failed")
	}
	return m.flash("exported to " + path)
}

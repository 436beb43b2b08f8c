package display

import "github.com/charmbracelet/lipgloss"

// ── Styles (soft palette) ────────────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Background(lipgloss.Color("#27272a")).
			Padding(0, 1)

	// Headers — soft mint, matching section headers elsewhere.
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	// Primary text — light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Selection cursor line.
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	// Positive — cookable markers, in-stock.
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bbf7d0"))

	// Caution — low stock, opt-in replenish flags.
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	// Urgent — soft coral for errors, out-of-stock, destructive prompts.
	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Strikethrough(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))
)

package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeHorizon = Theme{
		Name:      "horizon",
		Primary:   lipgloss.Color("#ff8c00"), // accretion orange
		Secondary: lipgloss.Color("#ffd27f"),
		Accent:    lipgloss.Color("#00ccff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}
)

var AllThemes = []Theme{ThemeHorizon, ThemeCyberpunk, ThemeMinimal}

// ThemeByName falls back to ThemeHorizon for unknown names.
func ThemeByName(name string) Theme {
	for _, th := range AllThemes {
		if th.Name == name {
			return th
		}
	}
	return ThemeHorizon
}

// Styles derived from a theme
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Unit  lipgloss.Style
	Muted lipgloss.Style
	Hint  lipgloss.Style
	Error lipgloss.Style
	Ok    lipgloss.Style
	Panel lipgloss.Style
	Focus lipgloss.Style
}

func (th Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(th.Primary),
		Label: lipgloss.NewStyle().Foreground(th.Secondary),
		Value: lipgloss.NewStyle().Bold(true).Foreground(th.Text),
		Unit:  lipgloss.NewStyle().Foreground(th.Accent),
		Muted: lipgloss.NewStyle().Foreground(th.Muted),
		Hint:  lipgloss.NewStyle().Foreground(th.Muted).Italic(true),
		Error: lipgloss.NewStyle().Bold(true).Foreground(th.Error),
		Ok:    lipgloss.NewStyle().Foreground(th.Success),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Muted).
			Padding(0, 1),
		Focus: lipgloss.NewStyle().Bold(true).Foreground(th.Primary),
	}
}

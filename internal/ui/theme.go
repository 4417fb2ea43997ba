package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette shared by both surfaces.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns pre-built Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for a theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Card      lipgloss.Style
	CardFocus lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Walnut": walnutTheme(),
	"Birch":  birchTheme(),
	"Slate":  slateTheme(),
}

var themeOrder = []string{"Walnut", "Birch", "Slate"}

// GetTheme returns a theme by name, defaulting to Walnut.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return walnutTheme()
}

// NextTheme returns the name following the given theme in cycle order.
func NextTheme(name string) string {
	for i, n := range themeOrder {
		if n == name {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func walnutTheme() Theme {
	return Theme{
		Name:          "Walnut",
		Background:    "#1f1a17",
		Surface:       "#2c2520",
		SelectionBg:   "#8c5a3c",
		SelectionText: "#f5ece3",
		Border:        "#4a3b30",
		BorderFocus:   "#c89b6d",
		Text:          "#e8ddd1",
		Muted:         "#a08d7a",
		Faint:         "#6b5d4f",
		Accent:        "#c89b6d",
		Success:       "#8aa86e",
		Warning:       "#d9a05b",
		Danger:        "#c85f4f",
	}
}

func birchTheme() Theme {
	return Theme{
		Name:          "Birch",
		Background:    "#f4f1ea",
		Surface:       "#e8e2d5",
		SelectionBg:   "#b7a98f",
		SelectionText: "#2a2620",
		Border:        "#c9bfa9",
		BorderFocus:   "#7d6f54",
		Text:          "#3a342b",
		Muted:         "#7a7162",
		Faint:         "#a39b89",
		Accent:        "#7d6f54",
		Success:       "#5e7d4a",
		Warning:       "#b07d3a",
		Danger:        "#a8453a",
	}
}

func slateTheme() Theme {
	return Theme{
		Name:          "Slate",
		Background:    "#1c2128",
		Surface:       "#262c36",
		SelectionBg:   "#44506a",
		SelectionText: "#e6edf3",
		Border:        "#3d444d",
		BorderFocus:   "#768390",
		Text:          "#d6dde4",
		Muted:         "#8b949e",
		Faint:         "#545d68",
		Accent:        "#6cb6ff",
		Success:       "#57ab5a",
		Warning:       "#c69026",
		Danger:        "#e5534b",
	}
}

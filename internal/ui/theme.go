package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark background variants).
const (
	ColorPrimary   = "#2DD4BF"
	ColorSecondary = "#818CF8"
	ColorSuccess   = "#34D399"
	ColorWarning   = "#FBBF24"
	ColorError     = "#F87171"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Colors holds the hex colors of a theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" or "light"
}

// Theme carries colors and the lipgloss styles derived from them.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors

	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Card    lipgloss.Style
}

// NewTheme builds a theme. With NoColor every style is plain.
func NewTheme(cfg ThemeConfig) *Theme {
	t := &Theme{NoColor: cfg.NoColor, Mode: cfg.Mode}
	if t.Mode == "" {
		t.Mode = "dark"
	}

	t.Colors = Colors{
		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Success:   ColorSuccess,
		Warning:   ColorWarning,
		Error:     ColorError,
		Text:      ColorText,
		Muted:     ColorMuted,
		Border:    ColorBorder,
	}
	if t.Mode == "light" {
		t.Colors = Colors{
			Primary:   "#0F766E",
			Secondary: "#4338CA",
			Success:   "#059669",
			Warning:   "#B45309",
			Error:     "#DC2626",
			Text:      "#111827",
			Muted:     "#6B7280",
			Border:    "#D1D5DB",
		}
	}

	base := lipgloss.NewStyle()
	card := base.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if t.NoColor {
		t.Title = base.Bold(true)
		t.Success, t.Warning, t.Error, t.Muted = base, base, base, base
		t.Card = card
		return t
	}

	t.Title = base.Bold(true).Foreground(lipgloss.Color(t.Colors.Primary))
	t.Success = base.Foreground(lipgloss.Color(t.Colors.Success))
	t.Warning = base.Foreground(lipgloss.Color(t.Colors.Warning))
	t.Error = base.Bold(true).Foreground(lipgloss.Color(t.Colors.Error))
	t.Muted = base.Foreground(lipgloss.Color(t.Colors.Muted))
	t.Card = card.BorderForeground(lipgloss.Color(t.Colors.Success))
	return t
}

// DefaultTheme returns a dark theme honouring NO_COLOR.
func DefaultTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return NewTheme(ThemeConfig{NoColor: noColor, Mode: "dark"})
}

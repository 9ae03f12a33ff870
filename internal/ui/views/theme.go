package views

import "github.com/charmbracelet/lipgloss"

const (
	accentLight = "#4F46E5"
	accentDark  = "#A5B4FC"
)

// Palette holds the named colours of the app theme. Each colour adapts to
// the terminal background.
type Palette struct {
	Text            lipgloss.AdaptiveColor
	Background      lipgloss.AdaptiveColor
	Tint            lipgloss.AdaptiveColor
	Icon            lipgloss.AdaptiveColor
	TabIconDefault  lipgloss.AdaptiveColor
	TabIconSelected lipgloss.AdaptiveColor
	Card            lipgloss.AdaptiveColor
	Border          lipgloss.AdaptiveColor
	Link            lipgloss.AdaptiveColor
	Success         lipgloss.AdaptiveColor
	Warning         lipgloss.AdaptiveColor
	Error           lipgloss.AdaptiveColor
}

// DefaultPalette returns the light/dark colour table
func DefaultPalette() Palette {
	return Palette{
		Text:            lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
		Background:      lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F172A"},
		Tint:            lipgloss.AdaptiveColor{Light: accentLight, Dark: accentDark},
		Icon:            lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		TabIconDefault:  lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
		TabIconSelected: lipgloss.AdaptiveColor{Light: accentLight, Dark: accentDark},
		Card:            lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#020617"},
		Border:          lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#1E293B"},
		Link:            lipgloss.AdaptiveColor{Light: "#0A7EA4", Dark: "#5BC0EB"},
		Success:         lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"},
		Warning:         lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
		Error:           lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
	}
}

// ApplyTheme forces the light or dark variant; "auto" keeps terminal detection
func ApplyTheme(name string) {
	switch name {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}

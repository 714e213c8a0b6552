package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/models"
)

// Styles holds the lipgloss styles for one theme. A new set is built when
// the theme toggles.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Search   lipgloss.Style

	theme config.Theme
}

// NewStyles builds the style set for a theme.
func NewStyles(theme config.Theme) Styles {
	if theme == config.ThemeLight {
		return Styles{
			Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("125")).Bold(true).Padding(0, 1),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("24")).Bold(true),
			Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("232")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("130")).Bold(true),
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Bold(true),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
			Search:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			theme:    theme,
		}
	}
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("214")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Search:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		theme:    theme,
	}
}

// TagChip renders a tag facet chip, hue-colored from the tag's characters.
func (s Styles) TagChip(tag string, selected bool) string {
	lum := 0.65
	if s.theme == config.ThemeLight {
		lum = 0.35
	}
	hex := colorful.Hsl(float64(models.TagHue(tag)), 0.55, lum).Hex()

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Padding(0, 1)
	if selected {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(tag)
}

// glamourStyle maps the theme to a glamour standard style name.
func glamourStyle(theme config.Theme) string {
	if theme == config.ThemeLight {
		return "light"
	}
	return "dark"
}

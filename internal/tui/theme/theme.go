package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	PanelBorder lipgloss.Style
	PanelTitle  lipgloss.Style
	ErrorBorder lipgloss.Style
	ErrorText   lipgloss.Style
	MetaLabel   lipgloss.Style
	MetaValue   lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Spinner     lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpLavender := lipgloss.Color("#b4befe")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface1 := lipgloss.Color("#45475a")

	return Theme{
		PanelBorder: lipgloss.NewStyle().Foreground(cpSurface1),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ErrorBorder: lipgloss.NewStyle().Foreground(cpRed),
		ErrorText:   lipgloss.NewStyle().Foreground(cpRed),
		MetaLabel:   lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:   lipgloss.NewStyle().Foreground(cpSubtext1),
		Placeholder: lipgloss.NewStyle().Foreground(cpOverlay1).Italic(true),
		Cursor:      lipgloss.NewStyle().Foreground(cpLavender).Bold(true),
		Spinner:     lipgloss.NewStyle().Foreground(cpPeach),
	}
}

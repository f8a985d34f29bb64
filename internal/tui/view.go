package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ogpeek/ogpeek/internal/ogp"
	"github.com/ogpeek/ogpeek/internal/tui/view"
)

const (
	headerLines  = 2
	urlBoxHeight = 3
	minPanelSize = 3
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(view.Header(m.loading, m.spin.View(), m.theme))
	b.WriteString("\n")
	b.WriteString(view.Toolbar())
	b.WriteString("\n")
	b.WriteString(view.URLBox(m.url, m.cursor, m.width, m.theme))
	b.WriteString("\n")

	rest := m.height - headerLines - urlBoxHeight
	middleHeight := rest * 2 / 5
	bottomHeight := rest - middleHeight
	if middleHeight < minPanelSize {
		middleHeight = minPanelSize
	}
	if bottomHeight < minPanelSize {
		bottomHeight = minPanelSize
	}

	imageWidth := m.width / 3
	infoWidth := m.width - imageWidth

	imagePanel := view.ImagePanel(m.img, imageWidth, middleHeight, m.theme)
	var infoPanel string
	if m.errMsg != "" {
		infoPanel = view.ErrorPanel(m.errMsg, infoWidth, middleHeight, m.theme)
	} else {
		infoPanel = view.InfoPanel(m.meta, infoWidth, middleHeight, m.theme)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, imagePanel, infoPanel))
	b.WriteString("\n")

	var tags []ogp.Tag
	if m.meta != nil {
		tags = m.meta.Tags
	}
	b.WriteString(view.MetadataPanel(tags, m.scroll, m.width, bottomHeight, m.theme))
	return b.String()
}

package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ogpeek/ogpeek/internal/imaging"
	tuitheme "github.com/ogpeek/ogpeek/internal/tui/theme"
)

// ImagePanel paints the preview image into the panel body, one solid-color
// terminal cell per resampled sample. Rows are emitted top-down, matching
// the pixmap's row order.
func ImagePanel(img *imaging.Pixmap, width, height int, th tuitheme.Theme) string {
	if img == nil {
		return framedPanel("Image", []string{th.Placeholder.Render("No image available")}, width, height, th.PanelBorder, th)
	}

	cellsWide, cellsHigh := width-2, height-2
	resampled := imaging.Resample(img, cellsWide, cellsHigh)

	styles := make(map[imaging.Color]lipgloss.Style, 16)
	lines := make([]string, 0, resampled.Height)
	var row strings.Builder
	for y := 0; y < resampled.Height; y++ {
		row.Reset()
		for x := 0; x < resampled.Width; x++ {
			sample := resampled.At(x, y)
			style, ok := styles[sample]
			if !ok {
				hex := fmt.Sprintf("#%02x%02x%02x", sample.R, sample.G, sample.B)
				style = lipgloss.NewStyle().Background(lipgloss.Color(hex))
				styles[sample] = style
			}
			row.WriteString(style.Render(" "))
		}
		lines = append(lines, row.String())
	}
	return framedPanel("Image", lines, width, height, th.PanelBorder, th)
}

package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ogpeek/ogpeek/internal/ogp"
	"github.com/ogpeek/ogpeek/internal/tui/state"
	tuitheme "github.com/ogpeek/ogpeek/internal/tui/theme"
)

func Toolbar() string {
	return "type: edit URL | enter: fetch (empty clears) | left/right: cursor | up/down: scroll metadata | esc: quit"
}

// Header is the line above the dashboard: app name plus fetch status.
func Header(fetching bool, spinnerFrame string, th tuitheme.Theme) string {
	title := th.PanelTitle.Render("ogpeek")
	if !fetching {
		return title
	}
	return title + " " + th.Spinner.Render(spinnerFrame+" fetching…")
}

// URLBox renders the input field with a visible insertion bar. The box is
// three rows tall: top border with the title, the input line, bottom border.
func URLBox(url []rune, cursor int, width int, th tuitheme.Theme) string {
	cursor = state.ClampCursor(cursor, len(url))
	line := string(url[:cursor]) + th.Cursor.Render("|") + string(url[cursor:])
	if len(url) == 0 {
		line += th.Placeholder.Render(" enter a URL")
	}
	return framedPanel("Enter URL", []string{line}, width, 3, th.PanelBorder, th)
}

// InfoPanel summarizes the fetched record; without one it shows a hint.
func InfoPanel(meta *ogp.Metadata, width, height int, th tuitheme.Theme) string {
	if meta == nil {
		return framedPanel("OGP Info", []string{th.Placeholder.Render("No metadata loaded")}, width, height, th.PanelBorder, th)
	}
	innerWidth := width - 2
	lines := []string{
		th.MetaLabel.Render("Title: ") + th.MetaValue.Render(meta.Title),
	}
	description := th.MetaLabel.Render("Description: ") + th.MetaValue.Render(meta.Description)
	lines = append(lines, strings.Split(wordwrap.String(description, innerWidth), "\n")...)
	lines = append(lines,
		th.MetaLabel.Render("Image URL: ")+th.MetaValue.Render(meta.ImageURL),
		th.MetaLabel.Render("Metadata Count: ")+th.MetaValue.Render(fmt.Sprintf("%d", len(meta.Tags))),
	)
	return framedPanel("OGP Info", lines, width, height, th.PanelBorder, th)
}

// ErrorPanel replaces the info panel while the last fetch has failed.
func ErrorPanel(message string, width, height int, th tuitheme.Theme) string {
	lines := strings.Split(wordwrap.String(th.ErrorText.Render(message), width-2), "\n")
	return framedPanel("Error", lines, width, height, th.ErrorBorder, th)
}

// MetadataPanel lists tags as "name: content" rows, one per line, starting
// at the scroll offset and cut to the panel capacity (height - 2 rows).
func MetadataPanel(tags []ogp.Tag, offset, width, height int, th tuitheme.Theme) string {
	capacity := height - 2
	start, end := state.VisibleRange(offset, capacity, len(tags))
	lines := make([]string, 0, end-start)
	for _, tag := range tags[start:end] {
		lines = append(lines, th.MetaLabel.Render(tag.Name+": ")+th.MetaValue.Render(tag.Content))
	}
	if len(tags) == 0 {
		lines = append(lines, th.Placeholder.Render("No metadata"))
	}
	return framedPanel("Metadata", lines, width, height, th.PanelBorder, th)
}

// framedPanel draws a bordered box of the exact outer width x height, with
// the title spliced into the top border and body lines padded or truncated
// to fill the interior.
func framedPanel(title string, lines []string, width, height int, border lipgloss.Style, th tuitheme.Theme) string {
	innerWidth, innerHeight := width-2, height-2
	if innerWidth < 1 || innerHeight < 1 {
		return ""
	}
	rows := make([]string, 0, height)
	rows = append(rows, topBorder(title, innerWidth, border, th))
	for i := 0; i < innerHeight; i++ {
		var line string
		if i < len(lines) {
			line = truncate.String(lines[i], uint(innerWidth))
		}
		pad := innerWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		rows = append(rows, border.Render("│")+line+strings.Repeat(" ", pad)+border.Render("│"))
	}
	rows = append(rows, border.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

func topBorder(title string, innerWidth int, border lipgloss.Style, th tuitheme.Theme) string {
	if title == "" || innerWidth < 4 {
		return border.Render("╭" + strings.Repeat("─", innerWidth) + "╮")
	}
	label := truncate.String(" "+title+" ", uint(innerWidth-2))
	fill := innerWidth - 1 - lipgloss.Width(label)
	if fill < 0 {
		fill = 0
	}
	return border.Render("╭─") + th.PanelTitle.Render(label) + border.Render(strings.Repeat("─", fill)+"╮")
}

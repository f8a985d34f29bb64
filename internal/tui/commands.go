package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func previewCmd(previewer Previewer, rawURL string) tea.Cmd {
	return func() tea.Msg {
		preview, err := previewer.Preview(context.Background(), rawURL)
		if err != nil {
			return previewResultMsg{err: err}
		}
		return previewResultMsg{preview: preview}
	}
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogpeek/ogpeek/internal/app"
	"github.com/ogpeek/ogpeek/internal/imaging"
	"github.com/ogpeek/ogpeek/internal/ogp"
	"github.com/ogpeek/ogpeek/internal/tui/state"
	tuitheme "github.com/ogpeek/ogpeek/internal/tui/theme"
)

// Previewer runs one fetch pipeline invocation.
type Previewer interface {
	Preview(ctx context.Context, rawURL string) (app.Preview, error)
}

type previewResultMsg struct {
	preview app.Preview
	err     error
}

// Model is the session state. It is mutated only inside Update; fetches run
// in command goroutines and commit through previewResultMsg, so a slow
// server never blocks editing.
type Model struct {
	previewer Previewer

	url    []rune
	cursor int
	meta   *ogp.Metadata
	img    *imaging.Pixmap
	errMsg string
	scroll int

	width   int
	height  int
	loading bool
	spin    spinner.Model
	theme   tuitheme.Theme
}

func NewModel(previewer Previewer) Model {
	th := tuitheme.Default()
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = th.Spinner
	return Model{
		previewer: previewer,
		width:     80,
		height:    24,
		spin:      spin,
		theme:     th,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case previewResultMsg:
		return m.commitResult(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "backspace":
		m.url, m.cursor = state.DeleteBefore(m.url, m.cursor)
		return m, nil
	case "left":
		m.cursor = state.ClampCursor(m.cursor-1, len(m.url))
		return m, nil
	case "right":
		m.cursor = state.ClampCursor(m.cursor+1, len(m.url))
		return m, nil
	case "up":
		m.scroll = state.ClampScroll(m.scroll-1, m.tagCount())
		return m, nil
	case "down":
		m.scroll = state.ClampScroll(m.scroll+1, m.tagCount())
		return m, nil
	case "enter":
		return m.submit()
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		runes := msg.Runes
		if msg.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		m.url, m.cursor = state.InsertRunes(m.url, m.cursor, runes)
	}
	return m, nil
}

// submit implements the Enter transition: an empty field clears the session
// synchronously; a non-empty field dispatches the fetch without waiting.
// There is no cancellation of fetches already in flight: a result arriving
// after a clear still commits (last writer wins).
func (m Model) submit() (tea.Model, tea.Cmd) {
	if len(m.url) == 0 {
		m.meta = nil
		m.img = nil
		m.errMsg = ""
		m.scroll = 0
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spin.Tick, previewCmd(m.previewer, string(m.url)))
}

// commitResult applies the 4.2 update rules: failures keep the last good
// metadata and image on screen and only set the error line; successes
// replace both wholesale and clear it.
func (m Model) commitResult(msg previewResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, nil
	}
	meta := msg.preview.Metadata
	m.meta = &meta
	m.img = msg.preview.Image
	m.errMsg = ""
	m.scroll = state.ClampScroll(m.scroll, m.tagCount())
	return m, nil
}

func (m Model) tagCount() int {
	if m.meta == nil {
		return 0
	}
	return len(m.meta.Tags)
}

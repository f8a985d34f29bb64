package view

import (
	"strings"
	"testing"

	"github.com/ogpeek/ogpeek/internal/imaging"
	"github.com/ogpeek/ogpeek/internal/ogp"
	tuitheme "github.com/ogpeek/ogpeek/internal/tui/theme"
)

func TestURLBoxShowsCursorBar(t *testing.T) {
	th := tuitheme.Default()
	box := URLBox([]rune("abc"), 1, 40, th)
	if !strings.Contains(box, "a|bc") {
		t.Fatalf("expected cursor bar inside url, got:\n%s", box)
	}
}

func TestURLBoxEmptyShowsPlaceholder(t *testing.T) {
	th := tuitheme.Default()
	box := URLBox(nil, 0, 40, th)
	if !strings.Contains(box, "enter a URL") {
		t.Fatalf("expected placeholder, got:\n%s", box)
	}
}

func TestURLBoxIsThreeRows(t *testing.T) {
	th := tuitheme.Default()
	box := URLBox([]rune("abc"), 1, 40, th)
	if lines := strings.Split(box, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 rows (border, input, border), got %d:\n%s", len(lines), box)
	}
}

func TestPanelTitleSitsOnTopBorder(t *testing.T) {
	th := tuitheme.Default()
	panel := MetadataPanel(nil, 0, 40, 6, th)
	lines := strings.Split(panel, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 panel lines, got %d:\n%s", len(lines), panel)
	}
	if !strings.Contains(lines[0], "╭") || !strings.Contains(lines[0], " Metadata ") {
		t.Fatalf("expected title on top border, got: %s", lines[0])
	}
	for _, line := range lines[1 : len(lines)-1] {
		if strings.Contains(line, "Metadata ") {
			t.Fatalf("expected no in-body title row, got:\n%s", panel)
		}
	}
}

func TestInfoPanelFields(t *testing.T) {
	th := tuitheme.Default()
	meta := &ogp.Metadata{
		Title:       "A Page",
		Description: "About things",
		ImageURL:    "http://img.example.com/a.png",
		Tags:        []ogp.Tag{{Name: "og:title", Content: "A Page"}},
	}
	panel := InfoPanel(meta, 60, 10, th)
	for _, want := range []string{"Title: ", "A Page", "Description: ", "Image URL: ", "Metadata Count: ", "1"} {
		if !strings.Contains(panel, want) {
			t.Fatalf("expected %q in info panel, got:\n%s", want, panel)
		}
	}
}

func TestInfoPanelWithoutMetadata(t *testing.T) {
	th := tuitheme.Default()
	if panel := InfoPanel(nil, 40, 6, th); !strings.Contains(panel, "No metadata loaded") {
		t.Fatalf("expected placeholder panel, got:\n%s", panel)
	}
}

func TestMetadataPanelWindowsRows(t *testing.T) {
	th := tuitheme.Default()
	tags := []ogp.Tag{
		{Name: "one", Content: "1"},
		{Name: "two", Content: "2"},
		{Name: "three", Content: "3"},
		{Name: "four", Content: "4"},
	}
	// height 6 leaves room for four rows; offset 1 skips the first tag.
	panel := MetadataPanel(tags, 1, 40, 6, th)
	if strings.Contains(panel, "one: ") {
		t.Fatalf("expected first tag scrolled out, got:\n%s", panel)
	}
	for _, want := range []string{"two: ", "three: ", "four: "} {
		if !strings.Contains(panel, want) {
			t.Fatalf("expected %q visible, got:\n%s", want, panel)
		}
	}
}

func TestMetadataPanelEmpty(t *testing.T) {
	th := tuitheme.Default()
	if panel := MetadataPanel(nil, 0, 40, 6, th); !strings.Contains(panel, "No metadata") {
		t.Fatalf("expected empty placeholder, got:\n%s", panel)
	}
}

func TestErrorPanelCarriesMessage(t *testing.T) {
	th := tuitheme.Default()
	if panel := ErrorPanel("metadata fetch failed: boom", 50, 6, th); !strings.Contains(panel, "metadata fetch failed: boom") {
		t.Fatalf("expected error message, got:\n%s", panel)
	}
}

func TestImagePanelPlaceholder(t *testing.T) {
	th := tuitheme.Default()
	if panel := ImagePanel(nil, 30, 8, th); !strings.Contains(panel, "No image available") {
		t.Fatalf("expected image placeholder, got:\n%s", panel)
	}
}

func TestImagePanelDimensions(t *testing.T) {
	th := tuitheme.Default()
	img := &imaging.Pixmap{Width: 2, Height: 2, Pix: []imaging.Color{
		{R: 255}, {G: 255},
		{B: 255}, {R: 255, G: 255},
	}}
	panel := ImagePanel(img, 20, 8, th)
	lines := strings.Split(panel, "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 panel lines, got %d:\n%s", len(lines), panel)
	}
}

func TestFramedPanelTooSmall(t *testing.T) {
	th := tuitheme.Default()
	if out := framedPanel("x", []string{"y"}, 2, 2, th.PanelBorder, th); out != "" {
		t.Fatalf("expected empty render for degenerate panel, got %q", out)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogpeek/ogpeek/internal/app"
	"github.com/ogpeek/ogpeek/internal/ogp"
	"github.com/ogpeek/ogpeek/internal/tui"
)

func main() {
	jsonOutput := flag.Bool("json", false, "print the one-shot result as JSON")
	flag.Parse()

	service := app.NewService(ogp.NewClient(nil))

	// A URL argument selects one-shot mode; the interactive dashboard is
	// never started. One-shot failures report to stderr but still exit 0:
	// a non-zero exit is reserved for interactive terminal setup failure.
	if url := flag.Arg(0); url != "" {
		runOneShot(os.Stdout, os.Stderr, service, url, *jsonOutput)
		return
	}

	program := tea.NewProgram(tui.NewModel(service), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func runOneShot(out, errOut io.Writer, service *app.Service, url string, asJSON bool) {
	preview, err := service.Preview(context.Background(), url)
	if err != nil {
		fmt.Fprintf(errOut, "Error fetching OGP info: %v\n", err)
		return
	}
	if asJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(preview.Metadata); err != nil {
			fmt.Fprintf(errOut, "Error encoding OGP info: %v\n", err)
		}
		return
	}
	printMetadata(out, preview.Metadata)
}

func printMetadata(w io.Writer, meta ogp.Metadata) {
	fmt.Fprintf(w, "Title: %s\n", meta.Title)
	fmt.Fprintf(w, "Description: %s\n", meta.Description)
	fmt.Fprintf(w, "Image URL: %s\n", meta.ImageURL)
	fmt.Fprintln(w, "Metadata:")
	for _, tag := range meta.Tags {
		fmt.Fprintf(w, "  - %q - %q\n", tag.Name, tag.Content)
	}
}

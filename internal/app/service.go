package app

import (
	"context"
	"fmt"

	"github.com/ogpeek/ogpeek/internal/imaging"
	"github.com/ogpeek/ogpeek/internal/ogp"
)

// Fetcher is the transport capability the pipeline needs.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) ([]byte, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Preview is the outcome of one pipeline run. Image is nil when the page
// declares no og:image or when the image could not be fetched or decoded.
type Preview struct {
	Metadata ogp.Metadata
	Image    *imaging.Pixmap
}

type Service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Preview normalizes rawURL, fetches and parses the document, then makes a
// best-effort attempt at the preview image. A document failure is terminal;
// an image failure only leaves Preview.Image nil.
func (s *Service) Preview(ctx context.Context, rawURL string) (Preview, error) {
	url := ogp.NormalizeURL(rawURL)

	doc, err := s.fetcher.FetchDocument(ctx, url)
	if err != nil {
		return Preview{}, fmt.Errorf("metadata fetch failed: %w", err)
	}

	meta, err := ogp.Extract(doc)
	if err != nil {
		return Preview{}, fmt.Errorf("metadata fetch failed: %w", err)
	}

	preview := Preview{Metadata: meta}
	if meta.ImageURL != "" {
		preview.Image = s.fetchImage(ctx, meta.ImageURL)
	}
	return preview, nil
}

func (s *Service) fetchImage(ctx context.Context, url string) *imaging.Pixmap {
	data, err := s.fetcher.FetchImage(ctx, url)
	if err != nil {
		return nil
	}
	img, err := imaging.Decode(data)
	if err != nil {
		return nil
	}
	return img
}

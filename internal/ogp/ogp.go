package ogp

// Tag is a single <meta> element, keyed by its property attribute or,
// when that is absent, its name attribute.
type Tag struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Metadata is the Open Graph record extracted from one document.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Tags        []Tag  `json:"tags"`
}

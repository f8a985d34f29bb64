package ogp

import (
	"bytes"
	"fmt"

	nethtml "golang.org/x/net/html"
)

// Extract parses an HTML document and collects its Open Graph fields plus
// the full <meta> tag list in document order. Duplicate tags are kept.
// Missing og: fields come back as empty strings, never as errors.
func Extract(doc []byte) (Metadata, error) {
	root, err := nethtml.Parse(bytes.NewReader(doc))
	if err != nil {
		return Metadata{}, fmt.Errorf("parse document: %w", err)
	}

	// Tags starts out empty rather than nil so the record marshals with a
	// stable "tags": [] even for documents without qualifying <meta> tags.
	meta := Metadata{Tags: []Tag{}}
	var haveTitle, haveDescription, haveImage bool
	walkMetaElements(root, func(property, name, content string) {
		switch property {
		case "og:title":
			if !haveTitle {
				meta.Title = content
				haveTitle = true
			}
		case "og:description":
			if !haveDescription {
				meta.Description = content
				haveDescription = true
			}
		case "og:image":
			if !haveImage {
				meta.ImageURL = content
				haveImage = true
			}
		}

		key := property
		if key == "" {
			key = name
		}
		if key == "" {
			return
		}
		meta.Tags = append(meta.Tags, Tag{Name: key, Content: content})
	})
	return meta, nil
}

func walkMetaElements(node *nethtml.Node, visit func(property, name, content string)) {
	if node.Type == nethtml.ElementNode && node.Data == "meta" {
		var property, name, content string
		for _, attr := range node.Attr {
			switch attr.Key {
			case "property":
				property = attr.Val
			case "name":
				name = attr.Val
			case "content":
				content = attr.Val
			}
		}
		visit(property, name, content)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walkMetaElements(child, visit)
	}
}

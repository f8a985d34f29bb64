package ogp

import "strings"

// NormalizeURL prepends http:// to addresses typed without a scheme.
// Already-normalized input passes through unchanged, so the function is
// idempotent.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "http://" + raw
}

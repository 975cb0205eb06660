package htmldoc

import "strings"

// IsFeatured reports whether url names the same image as featured, the
// hero image the caller already displays. Both sides are compared without
// their query string and without an http:// or https:// prefix. An empty
// featured URL never matches.
func IsFeatured(url, featured string) bool {
	if featured == "" {
		return false
	}
	return normalizeImageURL(url) == normalizeImageURL(featured)
}

func normalizeImageURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	if rest, ok := cutPrefixFold(u, "https://"); ok {
		return rest
	}
	if rest, ok := cutPrefixFold(u, "http://"); ok {
		return rest
	}
	return u
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

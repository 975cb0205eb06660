package htmldoc

import "strings"

// ParseAttributes extracts name="value" and name='value' pairs from the
// attribute text of an opening tag. Names are lower-cased; when a name
// repeats the last value wins. Bare attributes, unquoted values and other
// malformed fragments are skipped. Values are returned undecoded.
func ParseAttributes(s string) map[string]string {
	attrs := make(map[string]string)

	i := 0
	for i < len(s) {
		// Find the start of a name.
		for i < len(s) && !isAttrNameByte(s[i]) {
			i++
		}
		start := i
		for i < len(s) && isAttrNameByte(s[i]) {
			i++
		}
		if start == i {
			break
		}
		name := strings.ToLower(s[start:i])

		j := skipSpace(s, i)
		if j >= len(s) || s[j] != '=' {
			continue
		}
		j = skipSpace(s, j+1)
		if j >= len(s) || (s[j] != '"' && s[j] != '\'') {
			i = j
			continue
		}

		quote := s[j]
		end := strings.IndexByte(s[j+1:], quote)
		if end < 0 {
			// Unterminated value; nothing after it can be trusted.
			break
		}
		attrs[name] = s[j+1 : j+1+end]
		i = j + 1 + end + 1
	}

	return attrs
}

func isAttrNameByte(c byte) bool {
	return isNameByte(c) || c == '-' || c == '_' || c == ':' || c == '.'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

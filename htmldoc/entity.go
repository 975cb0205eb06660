package htmldoc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// entityTable lists the named references the CMS emits, applied in order.
// The order matters: "&amp;lt;" becomes "&lt;" and then "<".
var entityTable = [...]struct {
	ref  string
	text string
}{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&rsquo;", "’"},
	{"&lsquo;", "‘"},
	{"&rdquo;", "”"},
	{"&ldquo;", "“"},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&hellip;", "…"},
}

// Decode resolves the supported named references and decimal numeric
// references (&#NNN;) in s. Unknown names, hexadecimal references and
// references to invalid code points are left as written.
//
// Decode must only be applied to text that is final; decoding markup that
// is still to be scanned would turn &lt; into a tag delimiter.
func Decode(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	for _, e := range entityTable {
		s = strings.ReplaceAll(s, e.ref, e.text)
	}
	return decodeNumeric(s)
}

// decodeNumeric makes a single left-to-right pass over &#digits; references.
func decodeNumeric(s string) string {
	i := strings.Index(s, "&#")
	if i < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i >= 0 {
		sb.WriteString(s[:i])
		s = s[i:]

		j := 2
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
		if j > 2 && j < len(s) && s[j] == ';' {
			if r, ok := codePoint(s[2:j]); ok {
				sb.WriteRune(r)
				s = s[j+1:]
				i = strings.Index(s, "&#")
				continue
			}
		}

		// Not a reference; keep the "&#" and carry on after it.
		sb.WriteString(s[:2])
		s = s[2:]
		i = strings.Index(s, "&#")
	}
	sb.WriteString(s)
	return sb.String()
}

func codePoint(digits string) (rune, bool) {
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || n == 0 || n > utf8.MaxRune {
		return 0, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

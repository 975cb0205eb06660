package htmldoc

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// element is one matched tag in the source: an opening tag plus everything
// up to the first closing tag of the same name, or a single void tag.
type element struct {
	tag   atom.Atom
	name  string // lower-cased tag name as written
	attrs string // raw attribute text of the opening tag
	inner string // content between the tags; empty for void tags
	start int    // byte offset of '<'
	end   int    // byte offset just past the element
}

// vocabulary maps the tags a scanner recognizes to whether they are void
// (self-closing, no content). Any other tag is inert to that scanner.
type vocabulary map[atom.Atom]bool

// scanner finds non-overlapping elements of a vocabulary in src, left to
// right. Paired tags end at the first close tag of the same name, so
// same-name nesting is not supported.
type scanner struct {
	src   string
	vocab vocabulary

	// noClose records, per tag name, the smallest offset from which a
	// close tag search has already failed. Later searches from at or
	// beyond that offset fail too.
	noClose map[string]int

	// unterminated is called for paired tags that never close.
	unterminated func(name string, offset int)
}

func newScanner(src string, vocab vocabulary) *scanner {
	return &scanner{
		src:     src,
		vocab:   vocab,
		noClose: make(map[string]int),
	}
}

// next returns the first element starting at or after from.
func (sc *scanner) next(from int) (element, bool) {
	for from < len(sc.src) {
		k := strings.IndexByte(sc.src[from:], '<')
		if k < 0 {
			return element{}, false
		}
		if el, ok := sc.matchAt(from + k); ok {
			return el, true
		}
		from += k + 1
	}
	return element{}, false
}

// matchAt tries to match an element whose '<' is at offset i.
func (sc *scanner) matchAt(i int) (element, bool) {
	src := sc.src
	j := i + 1
	for j < len(src) && isNameByte(src[j]) {
		j++
	}
	if j == i+1 || !isASCIILetter(src[i+1]) {
		return element{}, false
	}
	// The name must end at a boundary so <b> never matches <br> and
	// <a> never matches <abbr>.
	if j < len(src) && !isSpace(src[j]) && src[j] != '>' && src[j] != '/' {
		return element{}, false
	}

	name := strings.ToLower(src[i+1 : j])
	tag := atom.Lookup([]byte(name))
	void, ok := sc.vocab[tag]
	if tag == 0 || !ok {
		return element{}, false
	}

	gt := strings.IndexByte(src[j:], '>')
	if gt < 0 {
		return element{}, false
	}
	openEnd := j + gt + 1
	attrs := strings.TrimSpace(strings.TrimSuffix(src[j:j+gt], "/"))

	el := element{
		tag:   tag,
		name:  name,
		attrs: attrs,
		start: i,
	}
	if void {
		el.end = openEnd
		return el, true
	}

	closeStart, closeEnd, found := sc.findClose(name, openEnd)
	if !found {
		if sc.unterminated != nil {
			sc.unterminated(name, i)
		}
		return element{}, false
	}
	el.inner = src[openEnd:closeStart]
	el.end = closeEnd
	return el, true
}

// findClose locates the first </name> (case-insensitive, optional
// whitespace before '>') at or after from.
func (sc *scanner) findClose(name string, from int) (start, end int, found bool) {
	if failed, ok := sc.noClose[name]; ok && from >= failed {
		return 0, 0, false
	}

	src := sc.src
	pos := from
	for pos < len(src) {
		k := strings.Index(src[pos:], "</")
		if k < 0 {
			break
		}
		start = pos + k
		n := start + 2
		if n+len(name) <= len(src) && strings.EqualFold(src[n:n+len(name)], name) {
			e := n + len(name)
			for e < len(src) && isSpace(src[e]) {
				e++
			}
			if e < len(src) && src[e] == '>' {
				return start, e + 1, true
			}
		}
		pos = start + 2
	}

	if failed, ok := sc.noClose[name]; !ok || from < failed {
		sc.noClose[name] = from
	}
	return 0, 0, false
}

// StripTags removes every <...> span from s. A '<' with no closing '>'
// is kept as text along with the rest of the string.
func StripTags(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for {
		lt := strings.IndexByte(s, '<')
		if lt < 0 {
			sb.WriteString(s)
			break
		}
		gt := strings.IndexByte(s[lt:], '>')
		if gt < 0 {
			sb.WriteString(s)
			break
		}
		sb.WriteString(s[:lt])
		s = s[lt+gt+1:]
	}
	return sb.String()
}

func isNameByte(c byte) bool {
	return isASCIILetter(c) || ('0' <= c && c <= '9')
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

package htmldoc

import (
	"golang.org/x/net/html/atom"

	"github.com/tsawler/markupdoc/model"
)

// inlineTags are the formatting tags ParseInline turns into runs.
var inlineTags = vocabulary{
	atom.Strong: false,
	atom.B:      false,
	atom.Em:     false,
	atom.I:      false,
	atom.A:      false,
	atom.Code:   false,
}

// ParseInline converts the content of a block into inline runs.
//
// Formatting tags are matched left to right without nesting. The inner
// text of a match is tag-stripped before use, so a tag inside a matched
// tag collapses into the outer run: <strong>a <em>b</em></strong> is a
// single Bold run "a b". Text between matches becomes Text runs. Markup
// outside the vocabulary is removed from every run.
func ParseInline(content string) []model.Inline {
	sc := newScanner(content, inlineTags)

	var runs []model.Inline
	pos := 0
	matched := false
	for {
		el, ok := sc.next(pos)
		if !ok {
			break
		}
		matched = true
		runs = appendText(runs, content[pos:el.start])
		if run := inlineRun(el); run != nil {
			runs = append(runs, run)
		}
		pos = el.end
	}

	if !matched {
		text := Decode(StripTags(content))
		if text == "" {
			return nil
		}
		return []model.Inline{&model.Text{Text: text}}
	}
	return appendText(runs, content[pos:])
}

// inlineRun builds the run for a matched formatting tag, or nil when the
// tag holds no text.
func inlineRun(el element) model.Inline {
	text := Decode(StripTags(el.inner))
	if text == "" {
		return nil
	}

	switch el.tag {
	case atom.Strong, atom.B:
		return &model.Bold{Text: text}
	case atom.Em, atom.I:
		return &model.Italic{Text: text}
	case atom.Code:
		return &model.Code{Text: text}
	case atom.A:
		href := Decode(ParseAttributes(el.attrs)["href"])
		return &model.Link{Text: text, Href: href}
	}
	return nil
}

func appendText(runs []model.Inline, segment string) []model.Inline {
	text := Decode(StripTags(segment))
	if text == "" {
		return runs
	}
	return append(runs, &model.Text{Text: text})
}

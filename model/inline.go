package model

import "strings"

// InlineKind represents the formatting of an inline run
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineLink
	InlineCode
)

func (k InlineKind) String() string {
	switch k {
	case InlineText:
		return "text"
	case InlineBold:
		return "bold"
	case InlineItalic:
		return "italic"
	case InlineLink:
		return "link"
	case InlineCode:
		return "code"
	default:
		return "unknown"
	}
}

// Inline is a fragment of text carrying at most one formatting attribute.
type Inline interface {
	Kind() InlineKind
	Value() string
	inline()
}

// Text is unformatted text
type Text struct {
	Text string
}

func (t *Text) Kind() InlineKind { return InlineText }
func (t *Text) Value() string    { return t.Text }
func (t *Text) inline()          {}

// Bold is strongly emphasized text
type Bold struct {
	Text string
}

func (b *Bold) Kind() InlineKind { return InlineBold }
func (b *Bold) Value() string    { return b.Text }
func (b *Bold) inline()          {}

// Italic is emphasized text
type Italic struct {
	Text string
}

func (i *Italic) Kind() InlineKind { return InlineItalic }
func (i *Italic) Value() string    { return i.Text }
func (i *Italic) inline()          {}

// Link is a hyperlink. Opening Href is left to the renderer.
type Link struct {
	Text string
	Href string
}

func (l *Link) Kind() InlineKind { return InlineLink }
func (l *Link) Value() string    { return l.Text }
func (l *Link) inline()          {}

// Code is inline monospace text
type Code struct {
	Text string
}

func (c *Code) Kind() InlineKind { return InlineCode }
func (c *Code) Value() string    { return c.Text }
func (c *Code) inline()          {}

// RunsText concatenates the values of runs without formatting.
func RunsText(runs []Inline) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Value())
	}
	return sb.String()
}

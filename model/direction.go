package model

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
// Renderers use it to align paragraphs written in right-to-left scripts.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("ltr", "rtl", or "neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// TextDirection returns the dominant direction of text based on the
// Unicode bidirectional class of each rune. Strong characters are counted
// and the larger side wins; text with no strong characters is Neutral.
func TextDirection(text string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// CharDirection returns the inherent direction of a single rune.
func CharDirection(r rune) Direction {
	p, _ := bidi.LookupRune(r)
	switch p.Class() {
	case bidi.L:
		return LTR
	case bidi.R, bidi.AL:
		return RTL
	default:
		return Neutral
	}
}

// BlockDirection returns the direction of a block's text. Blocks without
// text are Neutral.
func BlockDirection(b Block) Direction {
	te, ok := b.(TextBlock)
	if !ok {
		return Neutral
	}
	return TextDirection(te.GetText())
}

// Package model provides the document tree produced from CMS article markup.
//
// The tree is a pure value: it is built fresh for every conversion, holds
// no references back into the source markup, and is never mutated by the
// converter once returned.
//
// # Document Structure
//
// A [Document] is an ordered list of [Block] values:
//
//   - [Paragraph] - inline-formatted text
//   - [Heading] - section titles, levels 1-4
//   - [Blockquote] - quoted plain text
//   - [List] - ordered or unordered list of plain-text items
//   - [CodeBlock] - preformatted text
//   - [Image] - a remote image with optional caption
//   - [Rule] - horizontal separator
//   - [Spacer] - vertical whitespace
//   - [PlainText] - loose text between recognized blocks
//
// # Inline Runs
//
// Paragraphs and headings carry [Inline] runs, each with at most one
// formatting attribute: [Text], [Bold], [Italic], [Link] and [Code].
// Rendering a run, including opening a link, is the caller's concern.
//
// # Export
//
// Documents can be rendered as plain text ([Document.ExtractText]),
// Markdown ([Document.Markdown]) or JSON ([Document.MarshalJSON]). The JSON
// form tags every block and run with a "type" field and can be decoded back
// with [Document.UnmarshalJSON].
package model

import "errors"

var (
	// ErrUnknownBlock is returned when encoding or decoding a block of an
	// unrecognized type.
	ErrUnknownBlock = errors.New("model: unknown block type")
	// ErrUnknownInline is returned when decoding a run of an unrecognized type.
	ErrUnknownInline = errors.New("model: unknown inline type")
)

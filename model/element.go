package model

import (
	"path"
	"strings"
)

// BlockType represents the type of a document block
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeParagraph
	BlockTypeHeading
	BlockTypeBlockquote
	BlockTypeList
	BlockTypeCodeBlock
	BlockTypeImage
	BlockTypeRule
	BlockTypeSpacer
	BlockTypePlainText
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeParagraph:
		return "paragraph"
	case BlockTypeHeading:
		return "heading"
	case BlockTypeBlockquote:
		return "blockquote"
	case BlockTypeList:
		return "list"
	case BlockTypeCodeBlock:
		return "code_block"
	case BlockTypeImage:
		return "image"
	case BlockTypeRule:
		return "rule"
	case BlockTypeSpacer:
		return "spacer"
	case BlockTypePlainText:
		return "plain_text"
	default:
		return "unknown"
	}
}

// parseBlockType is the inverse of BlockType.String.
func parseBlockType(s string) BlockType {
	for bt := BlockTypeParagraph; bt <= BlockTypePlainText; bt++ {
		if bt.String() == s {
			return bt
		}
	}
	return BlockTypeUnknown
}

// Block is the interface for all document blocks. The set of
// implementations is closed; use a type switch to render them.
type Block interface {
	Type() BlockType
	block()
}

// TextBlock is implemented by blocks that carry readable text
type TextBlock interface {
	Block
	GetText() string
}

// Paragraph is a run of inline-formatted text
type Paragraph struct {
	Runs []Inline
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }
func (p *Paragraph) GetText() string { return RunsText(p.Runs) }
func (p *Paragraph) block()          {}

// Heading is a section title. Level is 1-4; deeper source levels are
// folded into 4.
type Heading struct {
	Level int
	Runs  []Inline
}

func (h *Heading) Type() BlockType { return BlockTypeHeading }
func (h *Heading) GetText() string { return RunsText(h.Runs) }
func (h *Heading) block()          {}

// Blockquote is quoted text. Inline formatting is not preserved.
type Blockquote struct {
	Text string
}

func (b *Blockquote) Type() BlockType { return BlockTypeBlockquote }
func (b *Blockquote) GetText() string { return b.Text }
func (b *Blockquote) block()          {}

// List represents a list (ordered or unordered)
type List struct {
	Ordered bool
	Items   []string
}

func (l *List) Type() BlockType { return BlockTypeList }
func (l *List) GetText() string { return strings.Join(l.Items, "\n") }
func (l *List) block()          {}

// CodeBlock is preformatted text; whitespace is significant.
type CodeBlock struct {
	Text string
}

func (c *CodeBlock) Type() BlockType { return BlockTypeCodeBlock }
func (c *CodeBlock) GetText() string { return c.Text }
func (c *CodeBlock) block()          {}

// Image references a remote image. Alt holds the caption or alt text
// when the source provided one.
type Image struct {
	Src string
	Alt string
}

func (i *Image) Type() BlockType { return BlockTypeImage }
func (i *Image) block()          {}

// Format guesses the image format from the extension of Src.
func (i *Image) Format() ImageFormat {
	return DetectImageFormat(i.Src)
}

// Rule is a horizontal separator
type Rule struct{}

func (r *Rule) Type() BlockType { return BlockTypeRule }
func (r *Rule) block()          {}

// Spacer is vertical whitespace produced by a line break
type Spacer struct{}

func (s *Spacer) Type() BlockType { return BlockTypeSpacer }
func (s *Spacer) block()          {}

// PlainText is loose text found between recognized blocks
type PlainText struct {
	Text string
}

func (p *PlainText) Type() BlockType { return BlockTypePlainText }
func (p *PlainText) GetText() string { return p.Text }
func (p *PlainText) block()          {}

// ImageFormat represents image format
type ImageFormat int

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatJPEG
	ImageFormatPNG
	ImageFormatGIF
	ImageFormatWebP
	ImageFormatSVG
)

func (f ImageFormat) String() string {
	switch f {
	case ImageFormatJPEG:
		return "jpeg"
	case ImageFormatPNG:
		return "png"
	case ImageFormatGIF:
		return "gif"
	case ImageFormatWebP:
		return "webp"
	case ImageFormatSVG:
		return "svg"
	default:
		return "unknown"
	}
}

// DetectImageFormat determines the image format from a URL's path
// extension. Query strings and fragments are ignored.
func DetectImageFormat(src string) ImageFormat {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	switch strings.ToLower(path.Ext(src)) {
	case ".jpg", ".jpeg", ".jpe":
		return ImageFormatJPEG
	case ".png":
		return ImageFormatPNG
	case ".gif":
		return ImageFormatGIF
	case ".webp":
		return ImageFormatWebP
	case ".svg":
		return ImageFormatSVG
	default:
		return ImageFormatUnknown
	}
}

package model

import "strings"

// Document is an ordered sequence of blocks built from a single markup body.
type Document struct {
	Blocks []Block
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends blocks to the document, skipping nils
func (d *Document) AddBlock(blocks ...Block) {
	for _, b := range blocks {
		if b != nil {
			d.Blocks = append(d.Blocks, b)
		}
	}
}

// Len returns the number of blocks
func (d *Document) Len() int {
	return len(d.Blocks)
}

// IsEmpty reports whether the document has no blocks
func (d *Document) IsEmpty() bool {
	return len(d.Blocks) == 0
}

// Images returns all image blocks in document order
func (d *Document) Images() []*Image {
	var images []*Image
	for _, b := range d.Blocks {
		if img, ok := b.(*Image); ok {
			images = append(images, img)
		}
	}
	return images
}

// Headings returns all heading blocks in document order
func (d *Document) Headings() []*Heading {
	var headings []*Heading
	for _, b := range d.Blocks {
		if h, ok := b.(*Heading); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// Links returns every link run found in paragraphs and headings
func (d *Document) Links() []*Link {
	var links []*Link
	for _, b := range d.Blocks {
		var runs []Inline
		switch b := b.(type) {
		case *Paragraph:
			runs = b.Runs
		case *Heading:
			runs = b.Runs
		}
		for _, r := range runs {
			if l, ok := r.(*Link); ok {
				links = append(links, l)
			}
		}
	}
	return links
}

// ExtractText returns the text of all text-bearing blocks, one block per
// paragraph break.
func (d *Document) ExtractText() string {
	var sb strings.Builder
	for _, b := range d.Blocks {
		te, ok := b.(TextBlock)
		if !ok {
			continue
		}
		text := strings.TrimSpace(te.GetText())
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// TableOfContents returns headings organized as a document outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for i, b := range d.Blocks {
		h, ok := b.(*Heading)
		if !ok {
			continue
		}
		toc = append(toc, TOCEntry{
			Level: h.Level,
			Text:  strings.TrimSpace(h.GetText()),
			Index: i,
		})
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level int    // Heading level (1-4)
	Text  string // Heading text
	Index int    // Position of the heading in Document.Blocks
}

package htmldoc

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/tsawler/markupdoc/model"
)

// blockTags is the block vocabulary. Every other tag is inert markup at
// the top level and ends up stripped from whichever block contains it.
var blockTags = vocabulary{
	atom.P:          false,
	atom.H1:         false,
	atom.H2:         false,
	atom.H3:         false,
	atom.H4:         false,
	atom.H5:         false,
	atom.H6:         false,
	atom.Div:        false,
	atom.Blockquote: false,
	atom.Ul:         false,
	atom.Ol:         false,
	atom.Li:         false,
	atom.Pre:        false,
	atom.Figure:     false,
	atom.Figcaption: false,
	atom.Img:        true,
	atom.Hr:         true,
	atom.Br:         true,
}

var (
	imgTags        = vocabulary{atom.Img: true}
	listItemTags   = vocabulary{atom.Li: false}
	figcaptionTags = vocabulary{atom.Figcaption: false}
)

// blockHandler turns one matched block element into zero or more blocks.
type blockHandler func(b *builder, el element)

var blockHandlers = map[atom.Atom]blockHandler{
	atom.P:          handleParagraph,
	atom.H1:         handleHeading,
	atom.H2:         handleHeading,
	atom.H3:         handleHeading,
	atom.H4:         handleHeading,
	atom.H5:         handleHeading,
	atom.H6:         handleHeading,
	atom.Div:        handleDiv,
	atom.Figcaption: handleDiv,
	atom.Blockquote: handleBlockquote,
	atom.Ul:         handleList,
	atom.Ol:         handleList,
	atom.Li:         handleListItem,
	atom.Pre:        handlePre,
	atom.Figure:     handleFigure,
	atom.Img:        handleImage,
	atom.Hr:         handleRule,
	atom.Br:         handleSpacer,
}

// Report describes what a scan dropped or degraded. It never affects the
// produced blocks.
type Report struct {
	// SuppressedImages counts images skipped because they match the
	// featured image.
	SuppressedImages int
	// UnterminatedTags lists, in source order, paired block tags that had
	// no closing tag and were treated as loose text.
	UnterminatedTags []string
	// LooseTextBlocks counts PlainText blocks built from text between
	// recognized blocks.
	LooseTextBlocks int
}

// builder accumulates the blocks of one scan.
type builder struct {
	featured string
	blocks   []model.Block
	report   Report
}

func (b *builder) emit(blocks ...model.Block) {
	b.blocks = append(b.blocks, blocks...)
}

// ScanBlocks converts markup into an ordered list of blocks. featured is
// the URL of an image the caller already shows; every image matching it
// is left out. ScanBlocks never fails: markup it cannot match is treated
// as loose text.
func ScanBlocks(html, featured string) []model.Block {
	blocks, _ := ScanBlocksWithReport(html, featured)
	return blocks
}

// ScanBlocksWithReport is ScanBlocks plus a description of what the scan
// dropped.
func ScanBlocksWithReport(html, featured string) ([]model.Block, Report) {
	b := &builder{featured: featured}

	sc := newScanner(html, blockTags)
	sc.unterminated = func(name string, _ int) {
		b.report.UnterminatedTags = append(b.report.UnterminatedTags, name)
	}

	pos := 0
	for {
		el, ok := sc.next(pos)
		if !ok {
			break
		}
		b.looseText(html[pos:el.start])
		blockHandlers[el.tag](b, el)
		pos = el.end
	}
	b.looseText(html[pos:])

	return b.blocks, b.report
}

// looseText emits text found outside any recognized block.
func (b *builder) looseText(s string) {
	text := strings.TrimSpace(Decode(StripTags(s)))
	if text == "" {
		return
	}
	b.report.LooseTextBlocks++
	b.emit(&model.PlainText{Text: text})
}

// image emits an Image for the attributes of an <img> tag unless it has no
// source or is the featured image.
func (b *builder) image(attrs map[string]string, caption string) {
	src := strings.TrimSpace(Decode(attrs["src"]))
	if src == "" {
		return
	}
	if IsFeatured(src, b.featured) {
		b.report.SuppressedImages++
		return
	}
	alt := caption
	if alt == "" {
		alt = strings.TrimSpace(Decode(attrs["alt"]))
	}
	b.emit(&model.Image{Src: src, Alt: alt})
}

// handleParagraph emits the paragraph's images first, in source order,
// then the remaining text as one Paragraph.
func handleParagraph(b *builder, el element) {
	sc := newScanner(el.inner, imgTags)

	var text strings.Builder
	pos := 0
	for {
		img, ok := sc.next(pos)
		if !ok {
			break
		}
		b.image(ParseAttributes(img.attrs), "")
		text.WriteString(el.inner[pos:img.start])
		pos = img.end
	}
	text.WriteString(el.inner[pos:])

	content := text.String()
	if strings.TrimSpace(Decode(StripTags(content))) == "" {
		return
	}
	if runs := ParseInline(content); len(runs) > 0 {
		b.emit(&model.Paragraph{Runs: runs})
	}
}

// handleHeading maps h1-h3 to their level and folds h4-h6 into level 4.
func handleHeading(b *builder, el element) {
	if strings.TrimSpace(Decode(StripTags(el.inner))) == "" {
		return
	}
	level := int(el.name[1] - '0')
	if level > 4 {
		level = 4
	}
	if runs := ParseInline(el.inner); len(runs) > 0 {
		b.emit(&model.Heading{Level: level, Runs: runs})
	}
}

// handleDiv emits a single unformatted run; inline tags in a div are not
// parsed.
func handleDiv(b *builder, el element) {
	text := strings.TrimSpace(Decode(StripTags(el.inner)))
	if text == "" {
		return
	}
	b.emit(&model.Paragraph{Runs: []model.Inline{&model.Text{Text: text}}})
}

func handleBlockquote(b *builder, el element) {
	text := strings.TrimSpace(Decode(StripTags(el.inner)))
	if text == "" {
		return
	}
	b.emit(&model.Blockquote{Text: text})
}

func handleList(b *builder, el element) {
	sc := newScanner(el.inner, listItemTags)

	var items []string
	pos := 0
	for {
		li, ok := sc.next(pos)
		if !ok {
			break
		}
		if text := listItemText(li.inner); text != "" {
			items = append(items, text)
		}
		pos = li.end
	}
	if len(items) == 0 {
		return
	}
	b.emit(&model.List{Ordered: el.tag == atom.Ol, Items: items})
}

// handleListItem covers an <li> outside any list.
func handleListItem(b *builder, el element) {
	if text := listItemText(el.inner); text != "" {
		b.emit(&model.List{Items: []string{text}})
	}
}

func listItemText(inner string) string {
	return strings.TrimSpace(Decode(StripTags(inner)))
}

func handlePre(b *builder, el element) {
	text := Decode(StripTags(el.inner))
	if strings.TrimSpace(text) == "" {
		return
	}
	b.emit(&model.CodeBlock{Text: text})
}

// handleFigure emits the first sourced image of the figure, captioned by
// its figcaption. A figure without a usable image emits nothing, caption
// included.
func handleFigure(b *builder, el element) {
	sc := newScanner(el.inner, imgTags)

	var attrs map[string]string
	pos := 0
	for {
		img, ok := sc.next(pos)
		if !ok {
			return
		}
		a := ParseAttributes(img.attrs)
		if strings.TrimSpace(a["src"]) != "" {
			attrs = a
			break
		}
		pos = img.end
	}

	caption := ""
	if fc, ok := newScanner(el.inner, figcaptionTags).next(0); ok {
		caption = strings.TrimSpace(Decode(StripTags(fc.inner)))
	}
	b.image(attrs, caption)
}

func handleImage(b *builder, el element) {
	b.image(ParseAttributes(el.attrs), "")
}

func handleRule(b *builder, _ element) {
	b.emit(&model.Rule{})
}

func handleSpacer(b *builder, _ element) {
	b.emit(&model.Spacer{})
}

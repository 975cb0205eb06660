package markupdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/markupdoc/htmldoc"
	"github.com/tsawler/markupdoc/model"
)

// Converter provides a fluent interface for converting CMS markup into a
// document tree. Each configuration method returns a new Converter
// instance, making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source: either markup held in memory or a file read on demand
	markup   string
	filename string

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		markup:   c.markup,
		filename: c.filename,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// source returns the markup to convert, reading the file if one was given.
func (c *Converter) source() (string, error) {
	if c.filename == "" {
		return c.markup, nil
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.filename, err)
	}
	return string(data), nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// WithFeaturedImage sets the URL of an image the caller already shows, such
// as an article's hero image. Every image in the body that matches it,
// ignoring scheme and query string, is left out.
//
// Example:
//
//	doc, _, err := markupdoc.New(body).WithFeaturedImage(post.HeroURL).Document()
func (c *Converter) WithFeaturedImage(url string) *Converter {
	newConv := c.clone()
	newConv.options.featuredImage = url
	return newConv
}

// WithLogger sets the logger used for conversion diagnostics. A nil logger
// disables logging.
func (c *Converter) WithLogger(logger *zap.Logger) *Converter {
	newConv := c.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newConv.options.logger = logger
	return newConv
}

// DropLooseText leaves out PlainText blocks built from text found outside
// any recognized block tag.
//
// Example:
//
//	doc, _, err := markupdoc.New(body).DropLooseText().Document()
func (c *Converter) DropLooseText() *Converter {
	newConv := c.clone()
	newConv.options.dropLooseText = true
	return newConv
}

// MaxBlocks limits the document to its first n blocks. Zero or a negative
// value means no limit.
//
// Example:
//
//	preview, _, err := markupdoc.New(body).MaxBlocks(3).Document()
func (c *Converter) MaxBlocks(n int) *Converter {
	newConv := c.clone()
	if n < 0 {
		n = 0
	}
	newConv.options.maxBlocks = n
	return newConv
}

// ============================================================================
// Terminal Operations (run the conversion and return results)
// ============================================================================

// Document converts the markup and returns the document tree.
//
// Returns the document, any warnings encountered during conversion, and an
// error if the source could not be read. Conversion itself never fails;
// warnings describe markup that was dropped or degraded.
//
// Example:
//
//	doc, warnings, err := markupdoc.New(body).WithFeaturedImage(hero).Document()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", markupdoc.FormatWarnings(warnings))
//	}
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	src, err := c.source()
	if err != nil {
		return nil, nil, err
	}

	log := c.options.logger
	blocks, report := htmldoc.ScanBlocksWithReport(src, c.options.featuredImage)
	warnings := reportWarnings(report)

	doc := model.NewDocument()
	for _, b := range blocks {
		if c.options.dropLooseText && b.Type() == model.BlockTypePlainText {
			continue
		}
		doc.AddBlock(b)
	}

	if limit := c.options.maxBlocks; limit > 0 && doc.Len() > limit {
		warnings = append(warnings, Warning{
			Code:    WarningTruncated,
			Message: fmt.Sprintf("kept %d of %d blocks", limit, doc.Len()),
		})
		doc.Blocks = doc.Blocks[:limit]
	}

	for _, w := range warnings {
		log.Debug("conversion warning", zap.Stringer("code", w.Code), zap.String("message", w.Message))
	}
	log.Debug("converted markup",
		zap.Int("bytes", len(src)),
		zap.Int("blocks", doc.Len()),
		zap.Int("warnings", len(warnings)))

	return doc, warnings, nil
}

// Blocks converts the markup and returns the blocks of the document.
func (c *Converter) Blocks() ([]model.Block, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, warnings, err
	}
	return doc.Blocks, warnings, nil
}

// Text converts the markup and returns its plain text, one block per
// paragraph.
//
// Example:
//
//	text, _, err := markupdoc.New(body).Text()
func (c *Converter) Text() (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.ExtractText(), warnings, nil
}

// Markdown converts the markup and returns it as Markdown.
//
// Example:
//
//	md, _, err := markupdoc.Open("post.html").Markdown()
func (c *Converter) Markdown() (string, []Warning, error) {
	return c.MarkdownWithOptions(model.MarkdownOptions{})
}

// MarkdownWithOptions converts the markup and returns it as Markdown with
// custom options.
//
// Example:
//
//	opts := model.MarkdownOptions{IncludeTableOfContents: true}
//	md, _, err := markupdoc.New(body).MarkdownWithOptions(opts)
func (c *Converter) MarkdownWithOptions(opts model.MarkdownOptions) (string, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.MarkdownWithOptions(opts), warnings, nil
}

// JSON converts the markup and returns the document in its JSON form.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := c.WriteJSON(&buf)
	if err != nil {
		return nil, warnings, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), warnings, nil
}

// WriteJSON converts the markup and writes the document to w as JSON.
//
// Example:
//
//	_, err := markupdoc.New(body).WithFeaturedImage(hero).WriteJSON(w)
func (c *Converter) WriteJSON(w io.Writer) ([]Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return warnings, err
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return warnings, fmt.Errorf("encoding document: %w", err)
	}
	return warnings, nil
}

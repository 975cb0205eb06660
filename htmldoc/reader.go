package htmldoc

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/markupdoc/model"
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// FeaturedImage is the URL of an image already displayed by the
	// caller. Matching images are left out of the document.
	FeaturedImage string
}

// Reader holds a converted markup body.
type Reader struct {
	doc    *model.Document
	report Report
}

// Open reads and converts a markup file.
func Open(filename string) (*Reader, error) {
	return OpenWithOptions(filename, ReaderOptions{})
}

// OpenWithOptions reads and converts a markup file with options.
func OpenWithOptions(filename string, opts ReaderOptions) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReaderWithOptions(f, opts)
}

// OpenReader converts markup read from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	return OpenReaderWithOptions(r, ReaderOptions{})
}

// OpenReaderWithOptions converts markup read from an io.Reader with options.
// Only reading can fail; conversion itself always succeeds.
func OpenReaderWithOptions(r io.Reader, opts ReaderOptions) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading markup: %w", err)
	}
	return NewReader(string(data), opts), nil
}

// NewReader converts markup held in memory.
func NewReader(markup string, opts ReaderOptions) *Reader {
	blocks, report := ScanBlocksWithReport(markup, opts.FeaturedImage)
	doc := model.NewDocument()
	doc.AddBlock(blocks...)
	return &Reader{
		doc:    doc,
		report: report,
	}
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close; the source is read fully on open.
	return nil
}

// Document returns the converted document.
func (r *Reader) Document() *model.Document {
	return r.doc
}

// Report returns what the conversion dropped or degraded.
func (r *Reader) Report() Report {
	return r.report
}

// Text returns the plain text of the document.
func (r *Reader) Text() (string, error) {
	return r.doc.ExtractText(), nil
}

// Markdown returns the document as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(model.MarkdownOptions{})
}

// MarkdownWithOptions returns the document as Markdown with options.
func (r *Reader) MarkdownWithOptions(opts model.MarkdownOptions) (string, error) {
	return r.doc.MarkdownWithOptions(opts), nil
}

// Package markupdoc converts the markup a CMS produces for blog and article
// bodies into an ordered, render-ready document tree.
//
// Basic usage:
//
//	doc, warnings, err := markupdoc.New(post.Body).
//	    WithFeaturedImage(post.HeroURL).
//	    Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", markupdoc.FormatWarnings(warnings))
//	}
//
// Conversion is a pure function of the markup and the featured image URL:
// the same inputs always give an equal tree, and nothing is cached. Callers
// that render the same body repeatedly should memoize on that pair.
//
// For lower-level access to the scanner and its parts, see the htmldoc
// package.
package markupdoc

import (
	"fmt"
	"io"

	"github.com/tsawler/markupdoc/htmldoc"
	"github.com/tsawler/markupdoc/model"
)

// New returns a Converter for markup held in memory.
//
// Example:
//
//	md, _, err := markupdoc.New("<p>Hello <b>world</b></p>").Markdown()
func New(markup string) *Converter {
	return &Converter{
		markup:  markup,
		options: defaultOptions(),
	}
}

// Open returns a Converter that reads its markup from a file when a
// terminal operation runs.
//
// Example:
//
//	text, warnings, err := markupdoc.Open("post.html").Text()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Converter for markup read from r. The reader is
// consumed immediately; a read error is reported by the first terminal
// operation.
func FromReader(r io.Reader) *Converter {
	c := &Converter{options: defaultOptions()}
	data, err := io.ReadAll(r)
	if err != nil {
		c.err = fmt.Errorf("reading markup: %w", err)
		return c
	}
	c.markup = string(data)
	return c
}

// Parse converts markup into a document, leaving out images that match
// featured. It is the shorthand for New(markup).WithFeaturedImage(featured)
// without warnings or options, and never fails.
func Parse(markup, featured string) *model.Document {
	doc := model.NewDocument()
	doc.AddBlock(htmldoc.ScanBlocks(markup, featured)...)
	return doc
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	out := markupdoc.Must(markupdoc.New(body).WriteJSON(w))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value.
//
// Example:
//
//	md := markupdoc.MustText(markupdoc.New(body).Markdown())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Package htmldoc converts the markup subset a CMS emits for article bodies
// into a [model.Document].
//
// The converter works on the raw string with a forward scanner; there is no
// DOM. Recognized block tags are
//
//	p h1 h2 h3 h4 h5 h6 div blockquote ul ol li pre figure figcaption
//
// plus the void tags img, hr and br. Inside paragraphs and headings the
// inline tags strong, b, em, i, a and code become formatted runs. Any other
// tag is dropped and its text kept.
//
// Paired tags end at the first closing tag of the same name, so a tag
// nested inside another of the same name closes its parent early. Tags
// with no closing tag are not matched; their text is kept as loose
// [model.PlainText].
//
// Conversion never fails and is a pure function of its input:
//
//	blocks := htmldoc.ScanBlocks(body, heroURL)
//
// The featured image URL passed alongside the markup is compared against
// every image in the body, ignoring scheme and query string, and matching
// images are dropped wherever they occur.
package htmldoc

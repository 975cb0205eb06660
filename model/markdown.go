package model

import (
	"fmt"
	"strings"
)

// MarkdownOptions controls Markdown rendering of a Document.
type MarkdownOptions struct {
	// IncludeTableOfContents prepends a linked outline when the document has
	// more than one heading.
	IncludeTableOfContents bool

	// NumberOrderedLists writes 1., 2., 3. instead of repeating "1.".
	NumberOrderedLists bool
}

// Markdown returns the document as Markdown.
func (d *Document) Markdown() string {
	return d.MarkdownWithOptions(MarkdownOptions{})
}

// MarkdownWithOptions returns the document as Markdown with options.
func (d *Document) MarkdownWithOptions(opts MarkdownOptions) string {
	var result strings.Builder

	if opts.IncludeTableOfContents {
		toc := d.TableOfContents()
		if len(toc) > 1 {
			result.WriteString("## Table of Contents\n\n")
			for i, h := range toc {
				anchor := strings.ToLower(strings.ReplaceAll(h.Text, " ", "-"))
				result.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, h.Text, anchor))
			}
			result.WriteString("\n---")
		}
	}

	for _, b := range d.Blocks {
		md := blockMarkdown(b, opts)
		if md == "" {
			continue
		}
		if result.Len() > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(md)
	}

	return result.String()
}

func blockMarkdown(b Block, opts MarkdownOptions) string {
	switch b := b.(type) {
	case *Heading:
		return strings.Repeat("#", b.Level) + " " + strings.TrimSpace(runsMarkdown(b.Runs))

	case *Paragraph:
		return strings.TrimSpace(runsMarkdown(b.Runs))

	case *PlainText:
		return b.Text

	case *List:
		var sb strings.Builder
		for i, item := range b.Items {
			if i > 0 {
				sb.WriteString("\n")
			}
			switch {
			case b.Ordered && opts.NumberOrderedLists:
				sb.WriteString(fmt.Sprintf("%d. ", i+1))
			case b.Ordered:
				sb.WriteString("1. ")
			default:
				sb.WriteString("- ")
			}
			sb.WriteString(item)
		}
		return sb.String()

	case *CodeBlock:
		return "```\n" + strings.Trim(b.Text, "\n") + "\n```"

	case *Blockquote:
		lines := strings.Split(b.Text, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")

	case *Image:
		return fmt.Sprintf("![%s](%s)", b.Alt, b.Src)

	case *Rule:
		return "---"
	}

	// Spacers have no Markdown form; the paragraph break is enough.
	return ""
}

func runsMarkdown(runs []Inline) string {
	var sb strings.Builder
	for _, r := range runs {
		switch r := r.(type) {
		case *Bold:
			sb.WriteString("**" + r.Text + "**")
		case *Italic:
			sb.WriteString("*" + r.Text + "*")
		case *Code:
			sb.WriteString("`" + r.Text + "`")
		case *Link:
			if r.Href == "" {
				sb.WriteString(r.Text)
			} else {
				sb.WriteString("[" + r.Text + "](" + r.Href + ")")
			}
		default:
			sb.WriteString(r.Value())
		}
	}
	return sb.String()
}

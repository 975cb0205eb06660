package htmldoc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/markupdoc/model"
)

func text(s string) []model.Inline {
	return []model.Inline{&model.Text{Text: s}}
}

func TestScanBlocks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		featured string
		want     []model.Block
	}{
		{
			name: "empty input",
			html: "",
			want: nil,
		},
		{
			name: "whitespace only",
			html: "\n\t  \n",
			want: nil,
		},
		{
			name: "paragraph",
			html: "<p>Hello <strong>world</strong></p>",
			want: []model.Block{
				&model.Paragraph{Runs: []model.Inline{
					&model.Text{Text: "Hello "},
					&model.Bold{Text: "world"},
				}},
			},
		},
		{
			name: "paragraph with attributes",
			html: `<p class="lead">Intro</p>`,
			want: []model.Block{&model.Paragraph{Runs: text("Intro")}},
		},
		{
			name: "empty paragraph dropped",
			html: "<p> &nbsp; </p><p></p>",
			want: nil,
		},
		{
			name: "mixed paragraph puts images first",
			html: `<p>Hello <img src="a.png"> world</p>`,
			want: []model.Block{
				&model.Image{Src: "a.png"},
				&model.Paragraph{Runs: text("Hello  world")},
			},
		},
		{
			name: "paragraph images keep source order",
			html: `<p><img src="1.png" alt="one">text<img src="2.png"/></p>`,
			want: []model.Block{
				&model.Image{Src: "1.png", Alt: "one"},
				&model.Image{Src: "2.png"},
				&model.Paragraph{Runs: text("text")},
			},
		},
		{
			name:     "featured image suppressed in paragraph",
			html:     `<p><img src="https://x.com/a.png?w=10"></p>`,
			featured: "http://x.com/a.png",
			want:     nil,
		},
		{
			name:     "featured image suppressed everywhere",
			html:     `<img src="https://x.com/a.png"><p>x<img src="x.com/a.png?v=2"></p><figure><img src="http://x.com/a.png"><figcaption>Hero</figcaption></figure>`,
			featured: "https://x.com/a.png",
			want:     []model.Block{&model.Paragraph{Runs: text("x")}},
		},
		{
			name: "image without src ignored",
			html: `<img alt="nothing">`,
			want: nil,
		},
		{
			name: "headings",
			html: "<h1>One</h1><h2>Two</h2><h3>Three</h3>",
			want: []model.Block{
				&model.Heading{Level: 1, Runs: text("One")},
				&model.Heading{Level: 2, Runs: text("Two")},
				&model.Heading{Level: 3, Runs: text("Three")},
			},
		},
		{
			name: "deep headings collapse to level four",
			html: "<h4>Four</h4><h5>Five</h5><h6>Six</h6>",
			want: []model.Block{
				&model.Heading{Level: 4, Runs: text("Four")},
				&model.Heading{Level: 4, Runs: text("Five")},
				&model.Heading{Level: 4, Runs: text("Six")},
			},
		},
		{
			name: "heading keeps inline formatting",
			html: "<h2>The <em>new</em> plan</h2>",
			want: []model.Block{
				&model.Heading{Level: 2, Runs: []model.Inline{
					&model.Text{Text: "The "},
					&model.Italic{Text: "new"},
					&model.Text{Text: " plan"},
				}},
			},
		},
		{
			name: "empty heading dropped",
			html: "<h2><span> </span></h2>",
			want: nil,
		},
		{
			name: "blockquote drops formatting",
			html: "<blockquote><p>To be <em>or</em> not</p></blockquote>",
			want: []model.Block{&model.Blockquote{Text: "To be or not"}},
		},
		{
			name: "unordered list drops blank items",
			html: "<ul><li>A</li><li>  </li><li>B</li></ul>",
			want: []model.Block{&model.List{Ordered: false, Items: []string{"A", "B"}}},
		},
		{
			name: "ordered list",
			html: "<ol>\n<li><strong>First</strong> step</li>\n<li>Second &amp; last</li>\n</ol>",
			want: []model.Block{&model.List{Ordered: true, Items: []string{"First step", "Second & last"}}},
		},
		{
			name: "empty list dropped",
			html: "<ul><li> </li></ul><ol></ol>",
			want: nil,
		},
		{
			name: "stray list item",
			html: "<li>Orphan</li>",
			want: []model.Block{&model.List{Items: []string{"Orphan"}}},
		},
		{
			name: "pre keeps whitespace",
			html: "<pre><code>if x {\n\treturn &lt;y&gt;\n}</code></pre>",
			want: []model.Block{&model.CodeBlock{Text: "if x {\n\treturn <y>\n}"}},
		},
		{
			name: "figure with caption",
			html: `<figure><img src="c.jpg" alt="ignored"><figcaption>A <em>cat</em></figcaption></figure>`,
			want: []model.Block{&model.Image{Src: "c.jpg", Alt: "A cat"}},
		},
		{
			name: "figure falls back to alt",
			html: `<figure><img src="c.jpg" alt="A cat"></figure>`,
			want: []model.Block{&model.Image{Src: "c.jpg", Alt: "A cat"}},
		},
		{
			name: "figure without image emits nothing",
			html: `<figure><figcaption>Lonely caption</figcaption></figure>`,
			want: nil,
		},
		{
			name: "figure uses first sourced image",
			html: `<figure><img alt="x"><img src="1.png"><img src="2.png"></figure>`,
			want: []model.Block{&model.Image{Src: "1.png"}},
		},
		{
			name: "stray figcaption",
			html: `<figcaption>Caption</figcaption>`,
			want: []model.Block{&model.Paragraph{Runs: text("Caption")}},
		},
		{
			name: "rule and spacer",
			html: "<hr><br/><hr />",
			want: []model.Block{&model.Rule{}, &model.Spacer{}, &model.Rule{}},
		},
		{
			name: "div is a single unformatted run",
			html: "<div> Some <b>bold</b> text </div>",
			want: []model.Block{&model.Paragraph{Runs: text("Some bold text")}},
		},
		{
			name: "loose text between blocks",
			html: "Intro &mdash; <span>here</span><p>Body</p>Outro",
			want: []model.Block{
				&model.PlainText{Text: "Intro — here"},
				&model.Paragraph{Runs: text("Body")},
				&model.PlainText{Text: "Outro"},
			},
		},
		{
			name: "unterminated block becomes loose text",
			html: "<p>never closed <h2>Title</h2>",
			want: []model.Block{
				&model.PlainText{Text: "never closed"},
				&model.Heading{Level: 2, Runs: text("Title")},
			},
		},
		{
			name: "uppercase tags",
			html: "<P>Shout</P><HR>",
			want: []model.Block{&model.Paragraph{Runs: text("Shout")}, &model.Rule{}},
		},
		{
			name: "unsupported block tags are inert",
			html: "<table><tr><td>cell</td></tr></table>",
			want: []model.Block{&model.PlainText{Text: "cell"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanBlocks(tt.html, tt.featured)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScanBlocks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanBlocks_Idempotent(t *testing.T) {
	html := `<h1>T</h1><p>a <a href="/x">b</a> <img src="i.png"></p><ul><li>1</li></ul>loose<pre>c</pre>`
	first := ScanBlocks(html, "i.png")
	second := ScanBlocks(html, "i.png")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated scans differ (-first +second):\n%s", diff)
	}
}

func TestScanBlocks_TotalCoverage(t *testing.T) {
	html := `lead <p>one <b>two</b></p> mid <unknown>three</unknown>
<h5>four</h5><blockquote>five</blockquote><ul><li>six</li></ul>
<pre>seven</pre><div>eight</div><figure><img src="p.png"><figcaption>nine</figcaption></figure> tail`

	doc := model.NewDocument()
	doc.AddBlock(ScanBlocks(html, "")...)

	var all strings.Builder
	for _, b := range doc.Blocks {
		switch b := b.(type) {
		case model.TextBlock:
			all.WriteString(b.GetText())
		case *model.Image:
			all.WriteString(b.Alt)
		}
		all.WriteString(" ")
	}

	for _, word := range []string{"lead", "one", "two", "mid", "three", "four", "five", "six", "seven", "eight", "nine", "tail"} {
		if !strings.Contains(all.String(), word) {
			t.Errorf("word %q missing from output %q", word, all.String())
		}
	}
}

func TestScanBlocks_NoUndecodedText(t *testing.T) {
	html := `<p>&ldquo;Hi&rdquo; <em>&amp;</em></p><h2>&#65;</h2><ul><li>&lt;li&gt;</li></ul>&hellip;`
	for _, b := range ScanBlocks(html, "") {
		te, ok := b.(model.TextBlock)
		if !ok {
			continue
		}
		if s := te.GetText(); strings.Contains(s, "&") && strings.Contains(s, ";") {
			t.Errorf("%s block holds undecoded text %q", b.Type(), s)
		}
	}
}

func TestScanBlocksWithReport(t *testing.T) {
	html := `<p>open <img src="https://cdn.x/h.jpg?w=1"><figure><img src="cdn.x/h.jpg"></figure>loose<div>x</div>`
	blocks, report := ScanBlocksWithReport(html, "http://cdn.x/h.jpg")

	if report.SuppressedImages != 2 {
		t.Errorf("SuppressedImages = %d, want 2", report.SuppressedImages)
	}
	if diff := cmp.Diff([]string{"p"}, report.UnterminatedTags); diff != "" {
		t.Errorf("UnterminatedTags mismatch (-want +got):\n%s", diff)
	}
	if report.LooseTextBlocks != 2 {
		t.Errorf("LooseTextBlocks = %d, want 2", report.LooseTextBlocks)
	}

	want := []model.Block{
		&model.PlainText{Text: "open"},
		&model.PlainText{Text: "loose"},
		&model.Paragraph{Runs: text("x")},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestScanBlocks_MalformedDoesNotPanic(t *testing.T) {
	inputs := []string{
		"<", ">", "</p>", "<p", "<p>", "<img", `<img src="`, "<a href='x'>",
		"<<p>>", "&#", "&#;", "&#1234567890123;", "<ul><li>", "<figure><img src=x></figure>",
		strings.Repeat("<p>", 200), strings.Repeat("<b>x", 200),
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ScanBlocks(%q) panicked: %v", in, r)
				}
			}()
			ScanBlocks(in, "x")
		}()
	}
}

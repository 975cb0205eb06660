package model

import (
	"encoding/json"
	"fmt"
)

// jsonRun is the wire form of an Inline.
type jsonRun struct {
	Type string `json:"type"`
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// jsonBlock is the wire form of a Block. Fields that do not apply to the
// block's type are omitted.
type jsonBlock struct {
	Type    string    `json:"type"`
	Level   int       `json:"level,omitempty"`
	Runs    []jsonRun `json:"runs,omitempty"`
	Text    string    `json:"text,omitempty"`
	Ordered bool      `json:"ordered,omitempty"`
	Items   []string  `json:"items,omitempty"`
	Src     string    `json:"src,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Dir     string    `json:"dir,omitempty"`
}

type jsonDocument struct {
	Blocks []jsonBlock `json:"blocks"`
}

// MarshalJSON encodes the document as {"blocks": [...]} where every block
// and run carries a "type" discriminator.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := jsonDocument{Blocks: make([]jsonBlock, 0, len(d.Blocks))}
	for _, b := range d.Blocks {
		jb, err := encodeBlock(b)
		if err != nil {
			return nil, err
		}
		out.Blocks = append(out.Blocks, jb)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (d *Document) UnmarshalJSON(data []byte) error {
	var in jsonDocument
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	blocks := make([]Block, 0, len(in.Blocks))
	for i, jb := range in.Blocks {
		b, err := decodeBlock(jb)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	d.Blocks = blocks
	return nil
}

func encodeBlock(b Block) (jsonBlock, error) {
	jb := jsonBlock{Type: b.Type().String()}
	if dir := BlockDirection(b); dir == RTL {
		jb.Dir = dir.String()
	}

	switch b := b.(type) {
	case *Paragraph:
		jb.Runs = encodeRuns(b.Runs)
	case *Heading:
		jb.Level = b.Level
		jb.Runs = encodeRuns(b.Runs)
	case *Blockquote:
		jb.Text = b.Text
	case *List:
		jb.Ordered = b.Ordered
		jb.Items = b.Items
	case *CodeBlock:
		jb.Text = b.Text
	case *Image:
		jb.Src = b.Src
		jb.Alt = b.Alt
	case *PlainText:
		jb.Text = b.Text
	case *Rule, *Spacer:
	default:
		return jb, fmt.Errorf("%w: %T", ErrUnknownBlock, b)
	}
	return jb, nil
}

func encodeRuns(runs []Inline) []jsonRun {
	out := make([]jsonRun, 0, len(runs))
	for _, r := range runs {
		jr := jsonRun{Type: r.Kind().String(), Text: r.Value()}
		if l, ok := r.(*Link); ok {
			jr.Href = l.Href
		}
		out = append(out, jr)
	}
	return out
}

func decodeBlock(jb jsonBlock) (Block, error) {
	switch parseBlockType(jb.Type) {
	case BlockTypeParagraph:
		runs, err := decodeRuns(jb.Runs)
		if err != nil {
			return nil, err
		}
		return &Paragraph{Runs: runs}, nil
	case BlockTypeHeading:
		runs, err := decodeRuns(jb.Runs)
		if err != nil {
			return nil, err
		}
		return &Heading{Level: jb.Level, Runs: runs}, nil
	case BlockTypeBlockquote:
		return &Blockquote{Text: jb.Text}, nil
	case BlockTypeList:
		return &List{Ordered: jb.Ordered, Items: jb.Items}, nil
	case BlockTypeCodeBlock:
		return &CodeBlock{Text: jb.Text}, nil
	case BlockTypeImage:
		return &Image{Src: jb.Src, Alt: jb.Alt}, nil
	case BlockTypeRule:
		return &Rule{}, nil
	case BlockTypeSpacer:
		return &Spacer{}, nil
	case BlockTypePlainText:
		return &PlainText{Text: jb.Text}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBlock, jb.Type)
}

func decodeRuns(in []jsonRun) ([]Inline, error) {
	runs := make([]Inline, 0, len(in))
	for _, jr := range in {
		switch jr.Type {
		case "text":
			runs = append(runs, &Text{Text: jr.Text})
		case "bold":
			runs = append(runs, &Bold{Text: jr.Text})
		case "italic":
			runs = append(runs, &Italic{Text: jr.Text})
		case "link":
			runs = append(runs, &Link{Text: jr.Text, Href: jr.Href})
		case "code":
			runs = append(runs, &Code{Text: jr.Text})
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownInline, jr.Type)
		}
	}
	return runs, nil
}

package layout

import "github.com/jonathan/resume-builder/internal/styles"

// Kind tags a Block variant
type Kind int

// Block kinds
const (
	KindHeading Kind = iota
	KindParagraph
	KindBullet
	KindSpacer
	KindRegionBreak
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindBullet:
		return "bullet"
	case KindSpacer:
		return "spacer"
	case KindRegionBreak:
		return "region-break"
	default:
		return "unknown"
	}
}

// Block is one unit of flowable content
type Block struct {
	Kind   Kind
	Text   string
	Style  styles.ParagraphStyle
	Height float64 // spacers only

	continued bool
}

// Heading creates a heading block. Headings are kept with at least one following line.
func Heading(text string, style styles.ParagraphStyle) Block {
	return Block{Kind: KindHeading, Text: text, Style: style}
}

// Paragraph creates a paragraph block
func Paragraph(text string, style styles.ParagraphStyle) Block {
	return Block{Kind: KindParagraph, Text: text, Style: style}
}

// Bullet creates a bullet item block
func Bullet(text string, style styles.ParagraphStyle) Block {
	return Block{Kind: KindBullet, Text: text, Style: style}
}

// Spacer creates vertical space of the given height in points
func Spacer(height float64) Block {
	return Block{Kind: KindSpacer, Height: height}
}

// RegionBreak forces the flow to the next declared region
func RegionBreak() Block {
	return Block{Kind: KindRegionBreak}
}

// Texts returns the text of every text-bearing block, in order
func Texts(blocks []Block) []string {
	var out []string
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading, KindParagraph, KindBullet:
			out = append(out, b.Text)
		}
	}
	return out
}

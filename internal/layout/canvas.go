package layout

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// Canvas is the drawing surface blocks and decorations are painted on.
// Coordinates are points with a top-left origin.
type Canvas interface {
	Measurer
	AddPage()
	SetFillColor(c types.RGB)
	SetDrawColor(c types.RGB)
	SetLineWidth(w float64)
	Rect(x, y, w, h float64, fill bool)
	Line(x1, y1, x2, y2 float64)
	DrawText(x, y, width float64, text string, style styles.ParagraphStyle)
}

// PageInfo describes the page a decorator is painting
type PageInfo struct {
	Number   int
	Total    int
	Width    float64
	Height   float64
	Template RegionTemplate
}

// PageDecorator paints page-level decoration. It runs once per page, after pagination
// has fixed that page's content and before the content is painted, so it only ever draws
// underneath text and cannot change the flow.
type PageDecorator func(c Canvas, page PageInfo)

// Config configures one Build call
type Config struct {
	Template RegionTemplate
	Decorate PageDecorator
}

// Build paginates blocks and paints every page onto the canvas
func Build(c Canvas, blocks []Block, cfg Config) ([]Page, error) {
	pages, err := Paginate(blocks, cfg.Template, c)
	if err != nil {
		return nil, err
	}

	for _, p := range pages {
		c.AddPage()
		if cfg.Decorate != nil {
			cfg.Decorate(c, PageInfo{
				Number:   p.Number,
				Total:    len(pages),
				Width:    p.Template.Page.Width,
				Height:   p.Template.Page.Height,
				Template: p.Template,
			})
		}
		paint(c, p)
	}
	return pages, nil
}

func paint(c Canvas, p Page) {
	for _, pl := range p.Placements {
		style := pl.Block.Style
		lh := style.LineHeight()
		if pl.Block.Kind == KindBullet && !pl.Continued {
			glyph := style
			glyph.Align = styles.AlignLeft
			c.DrawText(math.Max(pl.X-bulletGap, 0), pl.Y, bulletGap, styles.BulletGlyph, glyph)
		}
		for i, line := range pl.Lines {
			c.DrawText(pl.X, pl.Y+float64(i)*lh, pl.Width, line, style)
		}
	}
}

// Chain runs decorators in order
func Chain(decorators ...PageDecorator) PageDecorator {
	return func(c Canvas, page PageInfo) {
		for _, d := range decorators {
			if d != nil {
				d(c, page)
			}
		}
	}
}

// DefaultDecorator paints a header band, an accent rule below the header and a footer band
// carrying the page number, all in the primary color. Continuation pages flow body text
// through the header region, so there the rule is only drawn for templates without one.
func DefaultDecorator(primary types.RGB) PageDecorator {
	return func(c Canvas, page PageInfo) {
		m := page.Template.Margins

		band := math.Min(m.Top/2, 14)
		c.SetFillColor(primary)
		c.Rect(0, 0, page.Width, band, true)

		ruleY := m.Top - 6
		ruleX, ruleW := m.Left, page.Width-m.Left-m.Right
		header, hasHeader := page.Template.Region(RegionHeader)
		if hasHeader {
			ruleY = header.Y + header.Height - 6
			ruleX, ruleW = header.X, header.Width
		}
		if !hasHeader || page.Number == 1 {
			c.SetDrawColor(primary)
			c.SetLineWidth(1.2)
			c.Line(ruleX, ruleY, ruleX+ruleW, ruleY)
		}

		footer := math.Min(m.Bottom/2, 18)
		c.SetFillColor(primary.Tint(0.85))
		c.Rect(0, page.Height-footer, page.Width, footer, true)

		c.DrawText(0, page.Height-footer+(footer-9)/2, page.Width,
			fmt.Sprintf("Page %d of %d", page.Number, page.Total), footerStyle(primary))
	}
}

// SidebarDecorator tints the sidebar column before the default decoration
func SidebarDecorator(primary types.RGB) PageDecorator {
	tint := func(c Canvas, page PageInfo) {
		side, ok := page.Template.Region(RegionSidebar)
		if !ok {
			return
		}
		c.SetFillColor(primary.Tint(0.9))
		c.Rect(0, 0, side.X+side.Width+DefaultGutter/2, page.Height, true)
	}
	return Chain(tint, DefaultDecorator(primary))
}

func footerStyle(color types.RGB) styles.ParagraphStyle {
	return styles.ParagraphStyle{
		Name:       "Footer",
		FontFamily: "Helvetica",
		FontSize:   7.5,
		Leading:    9,
		TextColor:  color,
		Align:      styles.AlignCenter,
	}
}

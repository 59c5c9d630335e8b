package templates

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/styles"
	"github.com/jonathan/resume-builder/internal/types"
)

// State is a document build state
type State int

// Document states, in order
const (
	StateInit State = iota
	StateHeaderBuilt
	StateBodyBuilt
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateHeaderBuilt:
		return "header-built"
	case StateBodyBuilt:
		return "body-built"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Build stages reported by BuildError
const (
	StageHeader   = "header"
	StageBody     = "body"
	StageFinalize = "finalize"
)

// DocumentConfig holds per-document settings
type DocumentConfig struct {
	Page layout.PageSize
	PDF  pdf.Options
}

// Document assembles one resume with one template. It moves through
// Init -> HeaderBuilt -> BodyBuilt -> Finalized and is used for a single generation.
type Document struct {
	entry    *Entry
	data     *types.ResumeData
	styles   *styles.StyleSet
	template layout.RegionTemplate
	pdfOpts  pdf.Options
	state    State
	blocks   []layout.Block
	pages    []layout.Page
}

// NewDocument prepares a document. The style set and region template are fixed here.
func NewDocument(entry *Entry, data *types.ResumeData, cfg DocumentConfig) *Document {
	meta := entry.Metadata.WithDefaults()
	var st *styles.StyleSet
	if entry.Builder != nil {
		st = entry.Builder(meta)
	} else {
		st = entry.Assembler.CreateStyles(meta)
	}

	page := cfg.Page
	if page.Width == 0 || page.Height == 0 {
		page = layout.Letter
	}

	return &Document{
		entry:    entry,
		data:     data,
		styles:   st,
		template: entry.Assembler.RegionTemplate(page, layout.MarginsFromInches(*meta.Margins), st),
		pdfOpts:  cfg.PDF,
		state:    StateInit,
	}
}

// State returns the current state
func (d *Document) State() State {
	return d.state
}

// Blocks returns the blocks collected so far
func (d *Document) Blocks() []layout.Block {
	return d.blocks
}

// Template returns the region template every page uses
func (d *Document) Template() layout.RegionTemplate {
	return d.template
}

// Pages returns the laid-out pages after Finalize
func (d *Document) Pages() []layout.Page {
	return d.pages
}

// BuildHeader appends the header blocks followed by a region break
func (d *Document) BuildHeader() error {
	if d.state != StateInit {
		return &StateError{Op: "build header", State: d.state, Want: StateInit}
	}
	blocks, err := d.collect(StageHeader, d.entry.Assembler.BuildHeader)
	if err != nil {
		return err
	}
	d.blocks = append(d.blocks, blocks...)
	d.blocks = append(d.blocks, layout.RegionBreak())
	d.state = StateHeaderBuilt
	return nil
}

// BuildBody appends the section blocks in template order
func (d *Document) BuildBody() error {
	if d.state != StateHeaderBuilt {
		return &StateError{Op: "build body", State: d.state, Want: StateHeaderBuilt}
	}
	blocks, err := d.collect(StageBody, d.entry.Assembler.BuildBody)
	if err != nil {
		return err
	}
	d.blocks = append(d.blocks, blocks...)
	d.state = StateBodyBuilt
	return nil
}

// Finalize paginates the blocks, paints every page and writes the PDF to w.
// Nothing is written to w unless the whole document renders.
func (d *Document) Finalize(w io.Writer) (err error) {
	if d.state != StateBodyBuilt {
		return &StateError{Op: "finalize", State: d.state, Want: StateBodyBuilt}
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = &BuildError{Stage: StageFinalize, Cause: fmt.Errorf("panic: %v", rec)}
		}
	}()

	surface := pdf.NewSurface(d.template.Page, d.pdfOpts)
	pages, err := layout.Build(surface, d.blocks, layout.Config{
		Template: d.template,
		Decorate: d.entry.Assembler.Decorator(d.entry.Metadata.WithDefaults()),
	})
	if err != nil {
		return &BuildError{Stage: StageFinalize, Cause: err}
	}

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return &BuildError{Stage: StageFinalize, Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	d.pages = pages
	d.state = StateFinalized
	return nil
}

// Run drives the document through every state
func (d *Document) Run(w io.Writer) error {
	if err := d.BuildHeader(); err != nil {
		return err
	}
	if err := d.BuildBody(); err != nil {
		return err
	}
	return d.Finalize(w)
}

// collect runs one block builder, turning a panic into a BuildError
func (d *Document) collect(stage string, build func(*types.ResumeData, *styles.StyleSet) []layout.Block) (blocks []layout.Block, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			blocks = nil
			err = &BuildError{Stage: stage, Cause: fmt.Errorf("panic: %v", rec)}
		}
	}()
	if d.data == nil {
		return nil, &BuildError{Stage: stage, Cause: fmt.Errorf("no resume data")}
	}
	return build(d.data, d.styles), nil
}

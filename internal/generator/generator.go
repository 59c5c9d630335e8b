package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pdf"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// FormatPDF is the only implemented output format
const FormatPDF = "pdf"

// Stages reported by GenerationError besides the document build stages
const (
	StageFallback = "fallback"
	StageWrite    = "write"
)

// Request describes one document to generate
type Request struct {
	// TemplateID selects the template; empty means the registry default
	TemplateID string
	// Data is the resume input: a decoded JSON map, raw JSON bytes or types.ResumeData
	Data any
	// Options are metadata overrides merged into this document's template only; the
	// registry is not changed
	Options map[string]any
	// OutputPath, when set, receives the document. Parent directories are created.
	OutputPath string
	// Format must be "pdf" or empty
	Format string
}

// Result is a generated document. Buffer always holds the PDF; Path is set when it was
// also written to disk. Degraded marks a fallback error document, with Cause explaining why.
type Result struct {
	Buffer     []byte
	Path       string
	TemplateID string
	Pages      int
	Degraded   bool
	Cause      error
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger. Without one the logger is taken from the call context.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithMetrics records every generation in m
func WithMetrics(m *observability.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithValidator sets the validator for a layout kind. A nil validator removes it, so
// input for that layout is coerced without required-field checks.
func WithValidator(layoutKind string, v resume.Validator) Option {
	return func(g *Generator) {
		if v == nil {
			delete(g.validators, layoutKind)
			return
		}
		g.validators[layoutKind] = v
	}
}

// WithPageSize sets the page size of generated documents
func WithPageSize(p layout.PageSize) Option {
	return func(g *Generator) { g.page = p }
}

// WithPDFOptions sets document-level PDF settings such as compression
func WithPDFOptions(o pdf.Options) Option {
	return func(g *Generator) { g.pdf = o }
}

// WithClock replaces time.Now, for durations and fixed creation dates in tests
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// Generator turns resume data into PDF documents. It holds no per-call state and is
// safe for concurrent use; the registry it wraps does its own locking.
type Generator struct {
	registry   *templates.Registry
	validators map[string]resume.Validator
	logger     *log.Logger
	metrics    *observability.Metrics
	page       layout.PageSize
	pdf        pdf.Options
	now        func() time.Time
}

// New creates a Generator over reg. Every built-in layout kind starts with the
// standard validator.
func New(reg *templates.Registry, opts ...Option) *Generator {
	g := &Generator{
		registry: reg,
		validators: map[string]resume.Validator{
			types.LayoutSingleColumn: resume.Default(),
			types.LayoutTwoColumn:    resume.Default(),
			types.LayoutSidebar:      resume.Default(),
		},
		page: layout.Letter,
		pdf:  pdf.Options{Compress: true},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Registry returns the template registry
func (g *Generator) Registry() *templates.Registry {
	return g.registry
}

// Generate validates req.Data, resolves the template and renders the document.
//
// Errors: *resume.ValidationError or *resume.MissingFieldError for bad input,
// *templates.TemplateNotFoundError for unknown ids, *templates.CustomizationError for bad
// options, *UnsupportedFormatError for formats other than pdf, and *GenerationError when
// neither the document nor the fallback error document could be produced. A failed build
// with a successful fallback is not an error: the Result is marked Degraded.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	start := g.now()
	logger := g.log(ctx)

	result, err := g.generate(ctx, req)
	took := g.now().Sub(start)

	label := metricLabel(result)
	switch {
	case err != nil:
		g.metrics.ObserveGeneration(label, observability.OutcomeError, took, 0)
		logger.Warn("generation failed", "template", req.TemplateID, "err", err)
	case result.Degraded:
		g.metrics.ObserveGeneration(label, observability.OutcomeDegraded, took, result.Pages)
		logger.Error("rendered fallback document", "template", result.TemplateID, "cause", result.Cause)
	default:
		g.metrics.ObserveGeneration(label, observability.OutcomeSuccess, took, result.Pages)
		logger.Info("generated document", "template", result.TemplateID, "pages", result.Pages,
			"bytes", len(result.Buffer), "took", took.Round(time.Millisecond))
	}
	return result, err
}

func (g *Generator) generate(ctx context.Context, req Request) (*Result, error) {
	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = FormatPDF
	}
	if format != FormatPDF {
		return nil, &UnsupportedFormatError{Format: req.Format}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entry *templates.Entry
	var err error
	if len(req.Options) > 0 {
		entry, err = g.registry.Resolve(req.TemplateID, req.Options)
	} else {
		entry, err = g.registry.Get(req.TemplateID)
	}
	if err != nil {
		return nil, err
	}

	data, err := g.normalize(entry.Layout(), req.Data)
	if err != nil {
		return nil, err
	}

	opts := g.pdf
	if opts.Title == "" && data.Contact.Name != "" {
		opts.Title = "Resume - " + data.Contact.Name
	}
	if opts.Author == "" {
		opts.Author = data.Contact.Name
	}

	result := &Result{TemplateID: entry.ID}
	var buf bytes.Buffer
	doc := templates.NewDocument(entry, data, templates.DocumentConfig{Page: g.page, PDF: opts})
	if runErr := doc.Run(&buf); runErr != nil {
		cause := &GenerationError{TemplateID: entry.ID, Stage: stageOf(runErr), Cause: runErr}
		buf.Reset()
		if err := templates.RenderFallback(&buf, entry.ID, cause, g.pdf); err != nil {
			return nil, &GenerationError{TemplateID: entry.ID, Stage: StageFallback, Cause: errors.Join(runErr, err)}
		}
		result.Degraded = true
		result.Cause = cause
		result.Pages = 1
	} else {
		result.Pages = len(doc.Pages())
	}
	result.Buffer = buf.Bytes()

	if req.OutputPath != "" {
		if err := writeFile(req.OutputPath, result.Buffer); err != nil {
			return nil, &GenerationError{TemplateID: entry.ID, Stage: StageWrite, Cause: err}
		}
		result.Path = req.OutputPath
	}
	return result, nil
}

// Preview renders templateID with sample, or with SampleData when sample is nil
func (g *Generator) Preview(ctx context.Context, templateID string, sample any) (*Result, error) {
	if sample == nil {
		sample = SampleData()
	}
	return g.Generate(ctx, Request{TemplateID: templateID, Data: sample})
}

// Validate checks data against the validator of the template's layout
func (g *Generator) Validate(templateID string, data any) (*types.ResumeData, error) {
	entry, err := g.registry.Get(templateID)
	if err != nil {
		return nil, err
	}
	return g.normalize(entry.Layout(), data)
}

func (g *Generator) normalize(layoutKind string, data any) (*types.ResumeData, error) {
	if v, ok := g.validators[layoutKind]; ok {
		return v.Normalize(data)
	}
	return resume.Coerce(data)
}

func (g *Generator) log(ctx context.Context) *log.Logger {
	if g.logger != nil {
		return g.logger
	}
	return logging.FromContext(ctx)
}

func stageOf(err error) string {
	var buildErr *templates.BuildError
	if errors.As(err, &buildErr) {
		return buildErr.Stage
	}
	return "render"
}

// metricLabel keeps label cardinality bounded: failed calls share one label and customized
// templates report under their base
func metricLabel(r *Result) string {
	if r == nil {
		return "none"
	}
	if i := strings.Index(r.TemplateID, "-custom-"); i > 0 {
		return r.TemplateID[:i]
	}
	return r.TemplateID
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package resumepdf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// defaultTimeout bounds a single browser print.
const defaultTimeout = 30 * time.Second

// Input contains conversion parameters for one resume.
type Input struct {
	Markdown    string // Markdown content (required)
	OnePage     bool   // compress to a single page with dynamic sizing
	HeaderColor string // "#RRGGBB" or "white" ("" = default green)
	FontScheme  string // "modern", "serif", "sans" ("" = modern)
	Theme       string // "light", "dark" ("" = light)
	Engine      string // "auto", "chrome", "fpdf" ("" = auto)
	HTMLOnly    bool   // skip PDF generation, return HTML only
}

// Result holds conversion output. HTML is populated only on the
// HTML+print path; PDF is empty in HTMLOnly mode.
type Result struct {
	PDF  []byte
	HTML []byte
}

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout  time.Duration
	priority []Category
	bands    []SizeBand
}

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the browser print timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumepdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithSectionPriority overrides the canonical section order used by
// reordering. Categories left off the list are demoted behind the listed
// ones, not removed. See DefaultSectionPriority.
func WithSectionPriority(priority []Category) Option {
	return func(c *Converter) {
		c.cfg.priority = priority
	}
}

// WithOnePageBands overrides the one-page density band table. See
// DefaultOnePageBands.
func WithOnePageBands(bands []SizeBand) Option {
	return func(c *Converter) {
		c.cfg.bands = bands
	}
}

// WithChromeEngine injects the HTML+print engine (used by tests to avoid a
// real browser).
func WithChromeEngine(e Engine) Option {
	return func(c *Converter) {
		c.chrome = e
	}
}

// WithDirectEngine injects the direct-layout engine.
func WithDirectEngine(e Engine) Option {
	return func(c *Converter) {
		c.direct = e
	}
}

// Converter orchestrates the Markdown-resume-to-PDF pipeline. Create with
// NewConverter, use Convert per document, Close when done. A Converter is
// not safe for concurrent use; batch callers should pool converters.
type Converter struct {
	cfg    converterConfig
	chrome Engine
	direct Engine
}

// NewConverter creates a Converter with default configuration.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.chrome == nil {
		c.chrome = newChromeEngine(c.cfg.timeout)
	}
	if c.direct == nil {
		c.direct = newFPDFEngine()
	}

	return c
}

// Convert runs the full pipeline: classify lines, parse the document
// model, segment entries, reorder sections, compute sizing, and render
// through the selected layout engine. The context is checked between
// stages; rendering respects the configured timeout.
//
// With Engine "auto" a Chrome failure falls back to the direct engine; an
// explicit engine choice never falls back.
func (c *Converter) Convert(ctx context.Context, input Input) (*Result, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	engineName := input.Engine
	if engineName == "" {
		engineName = EngineAuto
	}
	if err := validateEngine(engineName); err != nil {
		return nil, err
	}

	// Sizing is computed from the raw markdown so the estimate matches
	// what the user wrote, not the parsed model.
	density := EstimateDensity(input.Markdown)
	sizing := SizingFor(density, input.OnePage, c.cfg.bands)

	style, err := BuildStylesheet(sizing, input.Theme, input.FontScheme, input.HeaderColor, input.OnePage)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := ParseDocument(input.Markdown)
	doc = SegmentDocument(doc)
	doc = ReorderSections(doc, c.cfg.priority)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blocks := BuildBlocks(doc, input.OnePage)
	setup := pageSetupFor(style)

	switch engineName {
	case EngineFPDF:
		return c.render(c.direct, setup, blocks, input.HTMLOnly)
	case EngineChrome:
		return c.render(c.chrome, setup, blocks, input.HTMLOnly)
	default:
		res, err := c.render(c.chrome, setup, blocks, input.HTMLOnly)
		if err != nil && errors.Is(err, ErrBackendUnavailable) {
			return c.render(c.direct, setup, blocks, input.HTMLOnly)
		}
		return res, err
	}
}

// render drives one engine through begin/add/finalize.
func (c *Converter) render(e Engine, setup PageSetup, blocks []Block, htmlOnly bool) (*Result, error) {
	if err := e.Begin(setup); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if err := e.Add(b); err != nil {
			return nil, err
		}
	}

	res := &Result{}
	if h, ok := e.(interface{ HTML() string }); ok {
		res.HTML = []byte(h.HTML())
	}
	if htmlOnly {
		return res, nil
	}

	pdf, err := e.Finalize()
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases engine resources (the headless browser, when launched).
func (c *Converter) Close() error {
	var errs []error
	if c.chrome != nil {
		errs = append(errs, c.chrome.Close())
	}
	if c.direct != nil {
		errs = append(errs, c.direct.Close())
	}
	return errors.Join(errs...)
}

func validateEngine(name string) error {
	switch strings.ToLower(name) {
	case EngineAuto, EngineChrome, EngineFPDF:
		return nil
	}
	return fmt.Errorf("%w: %q (use %s, %s, or %s)", ErrUnknownEngine, name, EngineAuto, EngineChrome, EngineFPDF)
}

// Compile-time interface implementation checks.
var (
	_ Engine = (*chromeEngine)(nil)
	_ Engine = (*fpdfEngine)(nil)
)

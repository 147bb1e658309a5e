package docpdf

import (
	"context"
	"fmt"

	"github.com/alecthomas/chroma/v2"

	"github.com/alnah/go-docpdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SourceHighlighter = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.HTMLConverter     = (*pipeline.GoldmarkConverter)(nil)
)

// Converter renders source listings and markdown documents to PDF.
// Create with NewConverter, convert with ConvertSource or ConvertMarkdown,
// and Close when done. A Converter is not safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	style         *chroma.Style
	background    string
	highlighter   pipeline.SourceHighlighter
	htmlConverter pipeline.HTMLConverter
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter with default configuration.
// The browser is not started until the first PDF is rendered.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:     defaultTimeout,
			theme:       pipeline.DefaultThemeName,
			lineNumbers: true,
		},
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	style, err := pipeline.ResolveTheme(c.cfg.theme)
	if err != nil {
		return nil, err
	}
	c.style = style
	c.background = pipeline.BackgroundColor(style)

	// Tests inject their own highlighter and PDF backend.
	if c.highlighter == nil {
		c.highlighter, err = pipeline.NewChromaHighlighter(style, c.cfg.lineNumbers)
		if err != nil {
			return nil, fmt.Errorf("initializing highlighter: %w", err)
		}
	}
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout, browserOptions{
			bin:       c.cfg.browserBin,
			noSandbox: c.cfg.noSandbox,
		})
	}

	return c, nil
}

// ConvertSource highlights a source file and renders it on full-bleed A4
// pages filled with the theme background. Empty code yields a single blank
// themed page so every discovered file has a matching PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ConvertSource(ctx context.Context, input SourceInput) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	language := input.Language
	if language == "" {
		language = defaultLanguage
	}

	hl, err := c.highlighter.Highlight(ctx, input.Name, pipeline.NormalizeNewlines(input.Code), language)
	if err != nil {
		return nil, fmt.Errorf("highlighting %s: %w", displayName(input.Name), err)
	}

	layout := LayoutA4FullBleed
	htmlContent, err := pipeline.SourcePage(input.Name, hl, c.background, geometry(layout))
	if err != nil {
		return nil, err
	}

	return c.render(ctx, htmlContent, layout, input.HTMLOnly)
}

// ConvertMarkdown converts markdown to HTML, embeds input.CSS followed by a
// fixed @page rule for the layout, and renders the result. Empty markdown
// yields a page styled by input.CSS with an empty body.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ConvertMarkdown(ctx context.Context, input MarkdownInput) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	layout := LayoutTallA4
	if input.Layout != nil {
		layout = *input.Layout
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	body, err := c.htmlConverter.ToHTML(ctx, pipeline.NormalizeNewlines(input.Markdown))
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if input.BaseDir != "" {
		body, err = pipeline.ResolveLocalRefs(body, input.BaseDir)
		if err != nil {
			return nil, fmt.Errorf("resolving relative paths: %w", err)
		}
	}

	htmlContent, err := pipeline.MarkdownPage(input.Title, body, input.CSS, geometry(layout))
	if err != nil {
		return nil, err
	}

	return c.render(ctx, htmlContent, layout, input.HTMLOnly)
}

// render finishes a conversion, skipping the browser for HTML-only requests.
func (c *Converter) render(ctx context.Context, htmlContent string, layout PageLayout, htmlOnly bool) (*Result, error) {
	res := &Result{HTML: []byte(htmlContent)}
	if htmlOnly {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Layout: layout})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

func geometry(l PageLayout) pipeline.Geometry {
	return pipeline.Geometry{WidthMM: l.WidthMM, HeightMM: l.HeightMM, MarginMM: l.MarginMM}
}

func displayName(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}

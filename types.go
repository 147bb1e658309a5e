package docpdf

import (
	"fmt"
	"time"
)

// Page layout bounds in millimetres.
const (
	MinPageSizeMM = 50.0
	MaxPageSizeMM = 2000.0
)

// PageLayout is a PDF page size with a uniform margin, in millimetres.
type PageLayout struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64
}

// Layout presets.
var (
	// LayoutA4FullBleed is used for source listings: the theme background
	// reaches every edge of the page.
	LayoutA4FullBleed = PageLayout{WidthMM: 210, HeightMM: 297, MarginMM: 0}

	// LayoutTallA4 is used for markdown documents: A4 width, extended height
	// so wide tables and long code blocks break less often.
	LayoutTallA4 = PageLayout{WidthMM: 210, HeightMM: 380, MarginMM: 20}
)

// Validate checks that the layout describes a printable page.
func (l PageLayout) Validate() error {
	if l.WidthMM < MinPageSizeMM || l.WidthMM > MaxPageSizeMM {
		return fmt.Errorf("%w: width %.1fmm (must be between %.0f and %.0f)", ErrInvalidLayout, l.WidthMM, MinPageSizeMM, MaxPageSizeMM)
	}
	if l.HeightMM < MinPageSizeMM || l.HeightMM > MaxPageSizeMM {
		return fmt.Errorf("%w: height %.1fmm (must be between %.0f and %.0f)", ErrInvalidLayout, l.HeightMM, MinPageSizeMM, MaxPageSizeMM)
	}
	if l.MarginMM < 0 || 2*l.MarginMM >= l.WidthMM || 2*l.MarginMM >= l.HeightMM {
		return fmt.Errorf("%w: margin %.1fmm leaves no printable area", ErrInvalidLayout, l.MarginMM)
	}
	return nil
}

// SourceInput contains parameters for a source listing conversion.
type SourceInput struct {
	Name     string // File name, used for the title and for Language "auto"
	Code     string // Source text (required)
	Language string // Chroma lexer name or "auto" (default: "c")
	HTMLOnly bool   // Skip PDF rendering
}

// MarkdownInput contains parameters for a markdown conversion.
type MarkdownInput struct {
	Title    string      // Document title (optional)
	Markdown string      // Markdown content (required)
	CSS      string      // Stylesheet embedded before the page override
	Layout   *PageLayout // Page layout (nil = LayoutTallA4)
	BaseDir  string      // Directory relative image and link paths resolve against
	HTMLOnly bool        // Skip PDF rendering
}

// Result contains the output of a conversion.
type Result struct {
	HTML []byte // Intermediate HTML, always set
	PDF  []byte // PDF bytes, nil when HTMLOnly was set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds Converter configuration.
type converterConfig struct {
	timeout     time.Duration
	browserBin  string
	noSandbox   bool
	theme       string
	lineNumbers bool
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// defaultLanguage is the lexer used when SourceInput.Language is empty.
const defaultLanguage = "c"

// WithTimeout sets the per-page load timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithBrowserBin uses the given Chrome binary instead of rod's managed one.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browserBin = path
	}
}

// WithNoSandbox disables the Chrome sandbox. Most containers need this.
func WithNoSandbox(noSandbox bool) Option {
	return func(c *Converter) {
		c.cfg.noSandbox = noSandbox
	}
}

// WithTheme selects the chroma style for source listings.
// Defaults to "atom-one-dark".
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithLineNumbers toggles the line number column in source listings.
func WithLineNumbers(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.lineNumbers = enabled
	}
}

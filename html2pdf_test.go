package docpdf

// Notes:
// - rodRenderer.ensureBrowser and the page round trip need a real Chrome and
//   are not exercised here; only paths that return before launching are.
// - rodConverter is tested with a mock renderer to check temp file handling.

import (
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"
)

type mockRenderer struct {
	path     string
	content  string
	existed  bool
	opts     *pdfOptions
	output   []byte
	err      error
	closed   bool
	closeErr error
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	m.path = filePath
	m.opts = opts
	if data, err := os.ReadFile(filePath); err == nil {
		m.existed = true
		m.content = string(data)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

func (m *mockRenderer) Close() error {
	m.closed = true
	return m.closeErr
}

// ---------------------------------------------------------------------------
// TestBuildPDFOptions - Layout to Chrome print parameters
// ---------------------------------------------------------------------------

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{name: "nil uses full bleed a4", opts: nil, wantWidth: 210 / 25.4, wantHeight: 297 / 25.4, wantMargin: 0},
		{name: "full bleed a4", opts: &pdfOptions{Layout: LayoutA4FullBleed}, wantWidth: 210 / 25.4, wantHeight: 297 / 25.4, wantMargin: 0},
		{name: "tall a4", opts: &pdfOptions{Layout: LayoutTallA4}, wantWidth: 210 / 25.4, wantHeight: 380 / 25.4, wantMargin: 20 / 25.4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)

			assertInches(t, "PaperWidth", got.PaperWidth, tt.wantWidth)
			assertInches(t, "PaperHeight", got.PaperHeight, tt.wantHeight)
			assertInches(t, "MarginTop", got.MarginTop, tt.wantMargin)
			assertInches(t, "MarginBottom", got.MarginBottom, tt.wantMargin)
			assertInches(t, "MarginLeft", got.MarginLeft, tt.wantMargin)
			assertInches(t, "MarginRight", got.MarginRight, tt.wantMargin)
			if !got.PrintBackground {
				t.Error("PrintBackground = false, want true")
			}
			if !got.PreferCSSPageSize {
				t.Error("PreferCSSPageSize = false, want true")
			}
		})
	}
}

func assertInches(t *testing.T, field string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s = nil", field)
	}
	if math.Abs(*got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}

// ---------------------------------------------------------------------------
// TestRodConverter - Temp file handoff
// ---------------------------------------------------------------------------

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{output: []byte("%PDF")}
	conv := &rodConverter{renderer: renderer}
	opts := &pdfOptions{Layout: LayoutTallA4}

	got, err := conv.ToPDF(context.Background(), "<html>hello</html>", opts)
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if string(got) != "%PDF" {
		t.Errorf("ToPDF() = %q, want %q", got, "%PDF")
	}
	if !renderer.existed || renderer.content != "<html>hello</html>" {
		t.Errorf("renderer saw content %q (existed=%v)", renderer.content, renderer.existed)
	}
	if !strings.HasSuffix(renderer.path, ".html") {
		t.Errorf("temp path %q does not end in .html", renderer.path)
	}
	if renderer.opts != opts {
		t.Error("options not forwarded to renderer")
	}
	if _, err := os.Stat(renderer.path); !os.IsNotExist(err) {
		t.Errorf("temp file %s not removed", renderer.path)
	}
}

func TestRodConverter_ToPDFError(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{err: ErrPDFGeneration}
	conv := &rodConverter{renderer: renderer}

	_, err := conv.ToPDF(context.Background(), "<html></html>", nil)
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("ToPDF() error = %v, want ErrPDFGeneration", err)
	}
	if _, statErr := os.Stat(renderer.path); !os.IsNotExist(statErr) {
		t.Errorf("temp file %s not removed after error", renderer.path)
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	renderer := &mockRenderer{}
	conv := &rodConverter{renderer: renderer}
	if err := conv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !renderer.closed {
		t.Error("renderer not closed")
	}

	empty := &rodConverter{}
	if err := empty.Close(); err != nil {
		t.Errorf("Close() on empty converter error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestRodRenderer - Paths that never reach the browser
// ---------------------------------------------------------------------------

func TestRodRenderer_CancelledBeforeLaunch(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(time.Second, browserOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RenderFromFile(ctx, "/nonexistent.html", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser launched for a cancelled context")
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(time.Second, browserOptions{bin: "/opt/chrome"})
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestFloatPtr(t *testing.T) {
	t.Parallel()

	p := floatPtr(1.5)
	if p == nil || *p != 1.5 {
		t.Errorf("floatPtr(1.5) = %v", p)
	}
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmlstd "html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with tables,
// strikethrough and fenced code (CommonMark core). Fenced code is tokenized
// into chroma class spans with no inline styles and no theme stylesheet, so
// the caller CSS alone decides how code looks.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.TabWidth(4),
				),
				highlighting.WithCodeBlockOptions(func(c highlighting.CodeBlockContext) []chromahtml.Option {
					lang, _ := c.Language()
					return []chromahtml.Option{chromahtml.WithPreWrapper(codeWrapper{language: string(lang)})}
				}),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML stays escaped; WithUnsafe() is intentionally not used.
		),
	)
	return &GoldmarkConverter{md: md}
}

// codeWrapper emits <pre class="chroma"><code class="language-x"> so fenced
// blocks keep the class markdown renderers conventionally give them.
type codeWrapper struct {
	language string
}

// Start's result is used as a format string by chroma, hence the % escape.
func (w codeWrapper) Start(code bool, styleAttr string) string {
	if !code {
		return "<pre" + styleAttr + ">"
	}
	if w.language == "" {
		return "<pre" + styleAttr + "><code>"
	}
	lang := strings.ReplaceAll(htmlstd.EscapeString(w.language), "%", "&#37;")
	return "<pre" + styleAttr + `><code class="language-` + lang + `">`
}

func (codeWrapper) End(code bool) string {
	if code {
		return "</code></pre>"
	}
	return "</pre>"
}

// ToHTML converts Markdown content to an HTML body fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller stops waiting on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

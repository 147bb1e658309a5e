package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Sentinel errors for source highlighting.
var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrHighlight       = errors.New("syntax highlighting failed")
)

// LanguageAuto selects a lexer from the file name, then from the content.
const LanguageAuto = "auto"

// Highlighted is a highlighted source fragment and the stylesheet it needs.
type Highlighted struct {
	HTML  string // <pre class="chroma">...</pre> fragment
	CSS   string // class rules for the theme
	Lexer string // name of the lexer that was used
}

// SourceHighlighter abstracts source-to-HTML highlighting.
type SourceHighlighter interface {
	Highlight(ctx context.Context, name, code, language string) (*Highlighted, error)
}

// ChromaHighlighter highlights source code with chroma using CSS classes.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
	css       string
}

// NewChromaHighlighter creates a highlighter for style. Line numbers are
// rendered in a separate table column so copying code skips them.
func NewChromaHighlighter(style *chroma.Style, lineNumbers bool) (*ChromaHighlighter, error) {
	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.WithLineNumbers(lineNumbers),
		chromahtml.LineNumbersInTable(true),
		chromahtml.TabWidth(4),
	)

	var css bytes.Buffer
	if err := formatter.WriteCSS(&css, style); err != nil {
		return nil, fmt.Errorf("%w: writing theme CSS: %v", ErrHighlight, err)
	}

	return &ChromaHighlighter{
		style:     style,
		formatter: formatter,
		css:       css.String(),
	}, nil
}

// Highlight tokenizes code with the lexer for language and formats it.
// name is only used by LanguageAuto.
func (h *ChromaHighlighter) Highlight(ctx context.Context, name, code, language string) (*Highlighted, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lexer, err := selectLexer(name, code, language)
	if err != nil {
		return nil, err
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	return &Highlighted{
		HTML:  buf.String(),
		CSS:   h.css,
		Lexer: lexer.Config().Name,
	}, nil
}

// selectLexer resolves language to a chroma lexer.
func selectLexer(name, code, language string) (chroma.Lexer, error) {
	if strings.EqualFold(language, LanguageAuto) {
		if l := lexers.Match(name); l != nil {
			return l, nil
		}
		if l := lexers.Analyse(code); l != nil {
			return l, nil
		}
		return lexers.Fallback, nil
	}

	if l := lexers.Get(language); l != nil {
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
}

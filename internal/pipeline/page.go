package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/alnah/go-docpdf/internal/assets"
)

// ErrPageRender indicates a page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// Geometry is a printed page size in millimetres.
type Geometry struct {
	WidthMM  float64
	HeightMM float64
	MarginMM float64
}

// pageRule renders an @page rule. background is omitted when empty.
func (g Geometry) pageRule(background string) string {
	var b strings.Builder
	b.WriteString("@page {\n")
	fmt.Fprintf(&b, "  size: %s %s;\n", mm(g.WidthMM), mm(g.HeightMM))
	fmt.Fprintf(&b, "  margin: %s;\n", mm(g.MarginMM))
	if background != "" {
		fmt.Fprintf(&b, "  background: %s;\n", background)
	}
	b.WriteString("}\n")
	return b.String()
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
}

var (
	sourcePageTemplate   = template.Must(template.New("source").Parse(mustAsset(assets.LoadTemplate(assets.SourceTemplate))))
	markdownPageTemplate = template.Must(template.New("markdown").Parse(mustAsset(assets.LoadTemplate(assets.MarkdownTemplate))))
	listingCSS           = mustAsset(assets.LoadStyle(assets.ListingStyle))
)

// mustAsset panics when an embedded asset is missing, which only a broken
// build can cause.
func mustAsset(content string, err error) string {
	if err != nil {
		panic(err)
	}
	return content
}

// SourcePage wraps a highlighted fragment in a full page whose paper and
// body share the theme background, so nothing white shows at the edges.
func SourcePage(title string, hl *Highlighted, background string, g Geometry) (string, error) {
	var css strings.Builder
	css.WriteString(g.pageRule(background))
	fmt.Fprintf(&css, "html, body {\n  margin: 0;\n  padding: 0;\n  background: %s;\n}\n", background)
	css.WriteString(listingCSS)
	css.WriteString(hl.CSS)

	data := struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: title,
		CSS:   template.CSS(sanitizeCSS(css.String())), // #nosec G203 -- generated by chroma
		Body:  template.HTML(hl.HTML),                  // #nosec G203 -- generated by chroma
	}

	return execute(sourcePageTemplate, data)
}

// MarkdownPage wraps converted markdown with the caller stylesheet followed
// by a page-size override, so the override wins over any @page in userCSS.
func MarkdownPage(title, body, userCSS string, g Geometry) (string, error) {
	data := struct {
		Title   string
		UserCSS template.CSS
		PageCSS template.CSS
		Body    template.HTML
	}{
		Title:   title,
		UserCSS: template.CSS(sanitizeCSS(userCSS)), // #nosec G203 -- caller stylesheet, closing tags escaped
		PageCSS: template.CSS(g.pageRule("")),       // #nosec G203 -- generated
		Body:    template.HTML(body),                // #nosec G203 -- goldmark output without raw HTML
	}

	return execute(markdownPageTemplate, data)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// Package pipeline turns text into self-contained HTML pages ready for print.
//
// Two pipelines share this package:
//   - Source code: chroma lexes the text and formats it with the default
//     atom-one-dark theme into a full-bleed page (SourceHighlighter, SourcePage)
//     laid out by the templates embedded in internal/assets.
//   - Markdown: goldmark converts markdown with tables and fenced code to HTML which is
//     wrapped with caller CSS and a fixed @page override (GoldmarkConverter,
//     MarkdownPage).
//
// PDF rendering is handled by the root docpdf package using headless Chrome
// (go-rod); this package never touches the browser.
package pipeline

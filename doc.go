// Package docpdf renders source code listings and markdown documents to PDF
// using headless Chrome.
//
// # Quick Start
//
//	conv, err := docpdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.ConvertSource(ctx, docpdf.SourceInput{
//	    Name: "main.c",
//	    Code: code,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("main.c.pdf", result.PDF, 0644)
//
// The result carries both the PDF bytes and the intermediate HTML. Set
// HTMLOnly on the input to skip the browser entirely.
//
// # Source Listings
//
// ConvertSource highlights code with chroma using the atom-one-dark theme
// (see WithTheme) and prints it on A4 pages without margins, so the dark
// background reaches every edge. Language defaults to "c"; "auto" picks a
// lexer from the file name.
//
// # Markdown
//
// ConvertMarkdown converts markdown with tables and fenced code
// with goldmark, embeds MarkdownInput.CSS and then forces the page to
// 210mm x 380mm with 20mm margins unless MarkdownInput.Layout says otherwise.
// The body is wrapped in StackEdit's class names so StackEdit export
// stylesheets apply unchanged.
//
// # Browser Requirements
//
// Rendering requires Chrome or Chromium. go-rod downloads a managed Chromium
// on first use (~/.cache/rod/browser/) unless WithBrowserBin points at an
// installed binary. Containers usually need WithNoSandbox(true).
package docpdf

package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2pdf [flags] <file.md> <file.css>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a markdown file styled by a CSS file to <file>.pdf next to the")
	fmt.Fprintln(w, "markdown. Tables and fenced code blocks are supported. Pages are")
	fmt.Fprintln(w, "210mm x 380mm with a 2cm margin unless the config says otherwise.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html                Also write the intermediate HTML")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Page render timeout (default: 30s)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome/Chromium binary")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (containers, CI)")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general or missing input, 2 bad flags or config,")
	fmt.Fprintln(w, "  3 I/O, 4 browser")
}

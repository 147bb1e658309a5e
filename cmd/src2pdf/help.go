package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: src2pdf [flags] <directory>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .c and .h file under <directory> to a syntax-highlighted")
	fmt.Fprintln(w, "PDF (Atom One Dark, A4, no margins). Output mirrors the input tree:")
	fmt.Fprintln(w, "<directory>/a/b.c becomes output/a/b.c.pdf.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: output)")
	fmt.Fprintln(w, "      --ext <list>          Extensions to convert (default: .c,.h)")
	fmt.Fprintln(w, "      --html                Also write the intermediate HTML")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --lang <name>         Chroma lexer, or \"auto\" to detect (default: c)")
	fmt.Fprintln(w, "      --theme <name>        Chroma style (default: atom-one-dark)")
	fmt.Fprintln(w, "      --no-line-numbers     Omit the line number column")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Page render timeout (default: 30s)")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome/Chromium binary")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (containers, CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "      --strict              Exit non-zero when any file fails")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success (failed files are logged), 1 general, 2 usage,")
	fmt.Fprintln(w, "  3 I/O, 4 browser")
}

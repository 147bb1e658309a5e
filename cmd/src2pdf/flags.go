package main

import (
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docpdf/internal/cli"
	"github.com/alnah/go-docpdf/internal/config"
)

// srcFlags holds all flags for src2pdf.
type srcFlags struct {
	common        cli.CommonFlags
	output        string
	extensions    []string
	language      string
	theme         string
	noLineNumbers bool
	htmlOnly      bool
	strict        bool
	quiet         bool
}

// parseFlags parses args (without the program name) and returns the flag
// set, so callers can ask which flags were set explicitly.
func parseFlags(args []string, stderr io.Writer) (*srcFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("src2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &srcFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"output\")")
	fs.StringSliceVar(&f.extensions, "ext", nil, "extensions to convert (default .c,.h)")
	fs.StringVar(&f.language, "lang", "", "chroma lexer name or \"auto\" (default \"c\")")
	fs.StringVar(&f.theme, "theme", "", "chroma style name (default \"atom-one-dark\")")
	fs.BoolVar(&f.noLineNumbers, "no-line-numbers", false, "omit the line number column")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when any file fails")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	cli.AddCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// applyTo copies explicitly set flags over cfg. Flags left at their zero
// value never override the config file.
func (f *srcFlags) applyTo(fs *flag.FlagSet, cfg *config.Config) error {
	if fs.Changed("output") {
		cfg.Source.OutputDir = f.output
	}
	if fs.Changed("ext") {
		cfg.Source.Extensions = normalizeExtensions(f.extensions)
	}
	if fs.Changed("lang") {
		cfg.Source.Language = f.language
	}
	if fs.Changed("theme") {
		cfg.Source.Theme = f.theme
	}
	if fs.Changed("no-line-numbers") {
		cfg.Source.LineNumbers = !f.noLineNumbers
	}
	if err := f.common.ApplyBrowser(fs, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// normalizeExtensions accepts "c" as well as ".c" and drops empty entries.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/cli"
	"github.com/alnah/go-docpdf/internal/config"
	"github.com/alnah/go-docpdf/internal/fileutil"
	"github.com/alnah/go-docpdf/internal/logging"
)

// inputNotFound is printed when either positional file is missing.
const inputNotFound = "Error: .md or .css file not found."

// run executes md2pdf with args (without the program name) and returns the
// process exit code.
func run(ctx context.Context, args []string, env *cli.Environment) int {
	flags, fs, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return cli.ExitSuccess
	}
	if err != nil {
		return cli.ExitUsage
	}

	if flags.Version {
		fmt.Fprintf(env.Stdout, "md2pdf %s\n", Version)
		return cli.ExitSuccess
	}

	rest := fs.Args()
	if len(rest) != 2 {
		printUsage(env.Stderr)
		return cli.ExitGeneral
	}
	mdPath, cssPath := rest[0], rest[1]
	if !fileutil.FileExists(mdPath) || !fileutil.FileExists(cssPath) {
		fmt.Fprintln(env.Stderr, inputNotFound)
		return cli.ExitGeneral
	}

	cfg, err := cli.LoadConfig(flags.Config)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %s\n", cli.Describe(err, config.BrowserConfig{}))
		return cli.ExitCodeFor(err)
	}
	if err := flags.ApplyBrowser(fs, cfg); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return cli.ExitCodeFor(err)
	}

	logger := logging.New(env.Stderr, logging.Options{Verbose: flags.Verbose})

	markdown, err := fileutil.ReadText(mdPath)
	if err != nil {
		return fail(env, fmt.Errorf("%w: %v", cli.ErrReadInput, err), cfg.Browser)
	}
	css, err := fileutil.ReadText(cssPath)
	if err != nil {
		return fail(env, fmt.Errorf("%w: %v", cli.ErrReadInput, err), cfg.Browser)
	}

	opts, err := cli.BrowserOptions(cfg.Browser)
	if err != nil {
		return fail(env, err, cfg.Browser)
	}
	conv, err := env.NewConverter(opts...)
	if err != nil {
		return fail(env, err, cfg.Browser)
	}
	defer func() {
		if err := conv.Close(); err != nil {
			logger.Debug().Err(err).Msg("closing browser")
		}
	}()

	page := cfg.Markdown.Page
	start := env.Now()
	res, err := conv.ConvertMarkdown(ctx, docpdf.MarkdownInput{
		Title:    fileutil.Stem(mdPath),
		Markdown: markdown,
		CSS:      css,
		Layout:   &docpdf.PageLayout{WidthMM: page.WidthMM, HeightMM: page.HeightMM, MarginMM: page.MarginMM},
		BaseDir:  filepath.Dir(mdPath),
	})
	if err != nil {
		return fail(env, err, cfg.Browser)
	}

	pdfPath := fileutil.ReplaceExt(mdPath, ".pdf")
	if flags.HTML {
		htmlPath := cli.HTMLPath(pdfPath)
		if err := cli.WriteOutput(htmlPath, res.HTML); err != nil {
			return fail(env, err, cfg.Browser)
		}
		logger.Debug().Str("dst", htmlPath).Msg("wrote html")
	}
	if err := cli.WriteOutput(pdfPath, res.PDF); err != nil {
		return fail(env, err, cfg.Browser)
	}
	logger.Debug().Str("src", mdPath).Str("took", cli.Elapsed(env.Now().Sub(start))).Msg("timing")

	fmt.Fprintf(env.Stdout, "Generated: %s\n", pdfPath)
	return cli.ExitSuccess
}

func fail(env *cli.Environment, err error, b config.BrowserConfig) int {
	fmt.Fprintf(env.Stderr, "Error: %s\n", cli.Describe(err, b))
	return cli.ExitCodeFor(err)
}

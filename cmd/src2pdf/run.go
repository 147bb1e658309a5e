package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/cli"
	"github.com/alnah/go-docpdf/internal/config"
	"github.com/alnah/go-docpdf/internal/fileutil"
	"github.com/alnah/go-docpdf/internal/logging"
)

// run executes src2pdf with args (without the program name) and returns the
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

	if flags.common.Version {
		fmt.Fprintf(env.Stdout, "src2pdf %s\n", Version)
		return cli.ExitSuccess
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintf(env.Stderr, "Error: %v\n\n", cli.Usagef("expected exactly one directory, got %d arguments", len(rest)))
		printUsage(env.Stderr)
		return cli.ExitUsage
	}
	root := rest[0]
	if !fileutil.DirExists(root) {
		fmt.Fprintf(env.Stderr, "Error: %v\n", cli.Usagef("%s is not a valid directory", root))
		return cli.ExitUsage
	}

	cfg, err := cli.LoadConfig(flags.common.Config)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %s\n", cli.Describe(err, config.BrowserConfig{}))
		return cli.ExitCodeFor(err)
	}
	if err := flags.applyTo(fs, cfg); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return cli.ExitCodeFor(err)
	}

	logger := logging.New(env.Stderr, logging.Options{Verbose: flags.common.Verbose, Quiet: flags.quiet})

	files, err := discoverFiles(root, cfg.Source.OutputDir, cfg.Source.Extensions, logger)
	if err != nil {
		logger.Error().Err(err).Str("root", root).Msg("scanning failed")
		return cli.ExitIO
	}
	if len(files) == 0 {
		logger.Info().Str("root", root).Msg("no matching files found")
		return cli.ExitSuccess
	}
	logger.Debug().Int("files", len(files)).Str("output", cfg.Source.OutputDir).Msg("starting conversion")

	opts, err := cli.BrowserOptions(cfg.Browser)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return cli.ExitCodeFor(err)
	}
	opts = append(opts,
		docpdf.WithTheme(cfg.Source.Theme),
		docpdf.WithLineNumbers(cfg.Source.LineNumbers),
	)

	conv, err := env.NewConverter(opts...)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %s\n", cli.Describe(err, cfg.Browser))
		return cli.ExitCodeFor(err)
	}
	defer func() {
		if err := conv.Close(); err != nil {
			logger.Debug().Err(err).Msg("closing browser")
		}
	}()

	results := convertBatch(ctx, conv, files, &conversionParams{
		language:   cfg.Source.Language,
		htmlOutput: flags.common.HTML,
		htmlOnly:   flags.htmlOnly,
		now:        env.Now,
	}, logger)

	summary := countResults(results)
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "%d converted, %d failed, %d skipped\n", summary.Succeeded, summary.Failed, summary.Skipped)
	}

	code := exitCode(ctx, results, flags.strict)
	if code == cli.ExitBrowser {
		fmt.Fprintf(env.Stderr, "Error: %s\n", cli.Describe(docpdf.ErrBrowserConnect, cfg.Browser))
	}
	return code
}

// exitCode decides the process status once the batch has finished.
// Per-file failures are best-effort unless strict, but a browser that never
// started or an interrupt always fails the run.
func exitCode(ctx context.Context, results []ConversionResult, strict bool) int {
	if ctx.Err() != nil {
		return cli.ExitGeneral
	}
	for _, r := range results {
		if errors.Is(r.Err, docpdf.ErrBrowserConnect) && !errors.Is(r.Err, errSkipped) {
			return cli.ExitBrowser
		}
	}
	if err := firstError(results); err != nil && strict {
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

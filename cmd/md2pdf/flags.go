package main

import (
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docpdf/internal/cli"
)

// parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (*cli.CommonFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("md2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cli.CommonFlags{}
	cli.AddCommonFlags(fs, f)
	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

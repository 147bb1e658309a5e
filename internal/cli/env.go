package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-docpdf"
)

// Converter is the part of *docpdf.Converter the commands use.
type Converter interface {
	ConvertSource(ctx context.Context, input docpdf.SourceInput) (*docpdf.Result, error)
	ConvertMarkdown(ctx context.Context, input docpdf.MarkdownInput) (*docpdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*docpdf.Converter)(nil)

// ConverterFactory builds a Converter from library options.
type ConverterFactory func(opts ...docpdf.Option) (Converter, error)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter ConverterFactory
}

// DefaultEnv returns the production environment backed by headless Chrome.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...docpdf.Option) (Converter, error) {
			return docpdf.NewConverter(opts...)
		},
	}
}

package docpdf

import (
	"errors"

	"github.com/alnah/go-docpdf/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page layout validation errors.
	ErrInvalidLayout = errors.New("invalid page layout")

	// Errors raised by the rendering pipeline, re-exported so callers can
	// match them without importing internal packages.
	ErrHTMLConversion  = pipeline.ErrHTMLConversion
	ErrUnknownTheme    = pipeline.ErrUnknownTheme
	ErrUnknownLanguage = pipeline.ErrUnknownLanguage
)

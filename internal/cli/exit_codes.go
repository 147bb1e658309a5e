package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/config"
)

// Exit codes shared by both commands.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion (per-file failures included unless --strict)
	ExitGeneral = 1 // General/unexpected error, missing md/css input
	ExitUsage   = 2 // Invalid flags, arguments, or config
	ExitIO      = 3 // Read or write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// Usagef returns an ErrUsage error with a formatted detail.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// ExitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docpdf.ErrBrowserConnect) ||
		errors.Is(err, docpdf.ErrPageCreate) ||
		errors.Is(err, docpdf.ErrPageLoad) ||
		errors.Is(err, docpdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, docpdf.ErrUnknownTheme) ||
		errors.Is(err, docpdf.ErrUnknownLanguage) ||
		errors.Is(err, docpdf.ErrInvalidLayout) {
		return ExitUsage
	}

	return ExitGeneral
}

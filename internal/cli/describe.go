package cli

import (
	"context"
	"errors"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/config"
	"github.com/alnah/go-docpdf/internal/hints"
)

// Describe renders err for the terminal, appending an actionable hint when
// one applies. b is the browser configuration the failing run used.
func Describe(err error, b config.BrowserConfig) string {
	if err == nil {
		return ""
	}
	return err.Error() + hintFor(err, b)
}

func hintFor(err error, b config.BrowserConfig) string {
	switch {
	case errors.Is(err, docpdf.ErrBrowserConnect):
		return hints.ForBrowserConnect(b.Bin, b.NoSandbox)
	case errors.Is(err, docpdf.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, docpdf.ErrUnknownLanguage):
		return hints.ForUnknownLanguage()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

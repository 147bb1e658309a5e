// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-docpdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// inCI reports whether a well-known CI marker is present.
func inCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for browser launch or connection errors.
// browserBin and noSandbox are the settings the failing launch used.
func ForBrowserConnect(browserBin string, noSandbox bool) string {
	var hints []string

	if !noSandbox && (inCI() || IsInContainer()) {
		hints = append(hints, "pass --no-sandbox (or browser.noSandbox: true) in Docker/CI")
	}
	if browserBin == "" {
		hints = append(hints, "pass --browser-bin to use an installed Chrome instead of a downloaded one")
	}

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow renders.
func ForTimeout() string {
	return format("for large files, raise --timeout (e.g. --timeout 2m)")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForConfigNotFound suggests where a named config may live.
func ForConfigNotFound() string {
	return format("use --config /path/to/file.yaml")
}

// ForUnknownLanguage points at the auto-detection escape hatch.
func ForUnknownLanguage() string {
	return format("use a chroma lexer name such as c, cpp, go, or --lang auto")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

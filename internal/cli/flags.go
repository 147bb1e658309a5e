package cli

import (
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/config"
)

// CommonFlags holds flags both commands accept.
type CommonFlags struct {
	Config     string
	Timeout    string
	BrowserBin string
	NoSandbox  bool
	HTML       bool
	Verbose    bool
	Version    bool
}

// AddCommonFlags adds the shared flags to a FlagSet.
func AddCommonFlags(fs *flag.FlagSet, f *CommonFlags) {
	fs.StringVarP(&f.Config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.Timeout, "timeout", "t", "", "page render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.BrowserBin, "browser-bin", "", "Chrome/Chromium binary (default: rod managed)")
	fs.BoolVar(&f.NoSandbox, "no-sandbox", false, "disable the Chrome sandbox (containers, CI)")
	fs.BoolVar(&f.HTML, "html", false, "also write the intermediate HTML")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
}

// ApplyBrowser copies explicitly set browser flags over cfg and validates
// the result. Unset flags leave config values alone.
func (f *CommonFlags) ApplyBrowser(fs *flag.FlagSet, cfg *config.Config) error {
	if fs.Changed("timeout") {
		cfg.Browser.Timeout = f.Timeout
	}
	if fs.Changed("browser-bin") {
		cfg.Browser.Bin = f.BrowserBin
	}
	if fs.Changed("no-sandbox") {
		cfg.Browser.NoSandbox = f.NoSandbox
	}
	_, err := cfg.Browser.TimeoutDuration()
	return err
}

// LoadConfig loads the named config, or the defaults when nameOrPath is empty.
func LoadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// BrowserOptions translates the browser section into library options.
func BrowserOptions(b config.BrowserConfig) ([]docpdf.Option, error) {
	timeout, err := b.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	return []docpdf.Option{
		docpdf.WithTimeout(timeout),
		docpdf.WithBrowserBin(b.Bin),
		docpdf.WithNoSandbox(b.NoSandbox),
	}, nil
}

// Elapsed formats a duration for status lines.
func Elapsed(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

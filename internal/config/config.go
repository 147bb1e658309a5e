// Package config loads the optional YAML configuration shared by src2pdf and md2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrInvalidConfig   = errors.New("invalid config value")
)

// MaxConfigSize limits YAML input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// appDirName is the directory searched under os.UserConfigDir.
const appDirName = "go-docpdf"

// Defaults applied by DefaultConfig.
const (
	DefaultOutputDir      = "output"
	DefaultLanguage       = "c"
	DefaultTheme          = "atom-one-dark"
	DefaultBrowserTimeout = 30 * time.Second

	DefaultMarkdownWidthMM  = 210
	DefaultMarkdownHeightMM = 380
	DefaultMarkdownMarginMM = 20
)

// DefaultExtensions lists the source extensions picked up by src2pdf.
var DefaultExtensions = []string{".c", ".h"}

// Config holds all configuration for both tools.
type Config struct {
	Browser  BrowserConfig  `yaml:"browser"`
	Source   SourceConfig   `yaml:"source"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// BrowserConfig controls the headless Chrome used for rendering.
type BrowserConfig struct {
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "30s", "2m"
	Bin       string `yaml:"bin"`       // Chrome binary (empty = rod managed)
	NoSandbox bool   `yaml:"noSandbox"` // Required in most containers
}

// SourceConfig controls src2pdf.
type SourceConfig struct {
	OutputDir   string   `yaml:"outputDir"`
	Extensions  []string `yaml:"extensions"`
	Language    string   `yaml:"language"` // chroma lexer name or "auto"
	Theme       string   `yaml:"theme"`
	LineNumbers bool     `yaml:"lineNumbers"`
}

// MarkdownConfig controls md2pdf page geometry.
type MarkdownConfig struct {
	Page PageConfig `yaml:"page"`
}

// PageConfig is a page size in millimetres.
type PageConfig struct {
	WidthMM  float64 `yaml:"widthMM"`
	HeightMM float64 `yaml:"heightMM"`
	MarginMM float64 `yaml:"marginMM"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			Timeout: DefaultBrowserTimeout.String(),
		},
		Source: SourceConfig{
			OutputDir:   DefaultOutputDir,
			Extensions:  append([]string(nil), DefaultExtensions...),
			Language:    DefaultLanguage,
			Theme:       DefaultTheme,
			LineNumbers: true,
		},
		Markdown: MarkdownConfig{
			Page: PageConfig{
				WidthMM:  DefaultMarkdownWidthMM,
				HeightMM: DefaultMarkdownHeightMM,
				MarginMM: DefaultMarkdownMarginMM,
			},
		},
	}
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	if _, err := c.Browser.TimeoutDuration(); err != nil {
		return err
	}

	if len(c.Source.Extensions) == 0 {
		return fmt.Errorf("%w: source.extensions: at least one extension required", ErrInvalidConfig)
	}
	for i, ext := range c.Source.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\") {
			return fmt.Errorf("%w: source.extensions[%d]: %q must look like \".c\"", ErrInvalidConfig, i, ext)
		}
	}
	if c.Source.OutputDir == "" {
		return fmt.Errorf("%w: source.outputDir: cannot be empty", ErrInvalidConfig)
	}
	if c.Source.Language == "" {
		return fmt.Errorf("%w: source.language: cannot be empty", ErrInvalidConfig)
	}

	p := c.Markdown.Page
	if p.WidthMM <= 0 || p.HeightMM <= 0 {
		return fmt.Errorf("%w: markdown.page: width and height must be positive", ErrInvalidConfig)
	}
	if p.MarginMM < 0 || 2*p.MarginMM >= p.WidthMM || 2*p.MarginMM >= p.HeightMM {
		return fmt.Errorf("%w: markdown.page.marginMM: %.1f does not fit the page", ErrInvalidConfig, p.MarginMM)
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value yields DefaultBrowserTimeout.
func (b BrowserConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return DefaultBrowserTimeout, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout: must be positive, got %s", ErrInvalidConfig, b.Timeout)
	}
	return d, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension, it is read
// directly. Otherwise it is searched in the current directory and then in
// the user config directory. Values absent from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !looksLikePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
// Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func looksLikePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := filepath.Ext(s)
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath searches for a config file by name.
// Tries ./name.yaml, ./name.yml, then the same under <UserConfigDir>/go-docpdf/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, appDirName))
	}

	tried := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

package assets

import (
	"errors"
	"html/template"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		styleName   string
		wantErr     error
		wantContain string
	}{
		{
			name:        "loads listing style",
			styleName:   ListingStyle,
			wantContain: "font-family",
		},
		{
			name:      "returns ErrStyleNotFound for nonexistent",
			styleName: "nonexistent-style-xyz",
			wantErr:   ErrStyleNotFound,
		},
		{
			name:      "returns ErrInvalidAssetName for empty name",
			styleName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for path traversal",
			styleName: "../secret",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "returns ErrInvalidAssetName for name with dot",
			styleName: "listing.css",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadStyle(tt.styleName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) content should contain %q", tt.styleName, tt.wantContain)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  []string
	}{
		{
			name:         "source page",
			templateName: SourceTemplate,
			wantContain:  []string{"<!DOCTYPE html>", "{{.CSS}}", "{{.Body}}"},
		},
		{
			name:         "markdown page",
			templateName: MarkdownTemplate,
			wantContain:  []string{`class="stackedit stackedit--pdf"`, `class="stackedit__html"`, "{{.UserCSS}}", "{{.PageCSS}}"},
		},
		{
			name:         "missing",
			templateName: "cover",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "traversal",
			templateName: "..\\templates",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, want)
				}
			}
		})
	}
}

func TestTemplatesParse(t *testing.T) {
	t.Parallel()

	for _, name := range []string{SourceTemplate, MarkdownTemplate} {
		content, err := LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", name, err)
		}
		if _, err := template.New(name).Parse(content); err != nil {
			t.Errorf("template %q does not parse: %v", name, err)
		}
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "listing"},
		{input: "my-style"},
		{input: "my_style2"},
		{input: "", wantErr: true},
		{input: "path/to/style", wantErr: true},
		{input: `path\to\style`, wantErr: true},
		{input: "..", wantErr: true},
		{input: "style.css", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		err := ValidateAssetName(tt.input)
		if tt.wantErr != errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

package pipeline

import (
	"errors"
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestAtomOneDark_Palette(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token      chroma.TokenType
		wantColour string
		wantItalic bool
		wantBold   bool
	}{
		{token: chroma.Text, wantColour: "#abb2bf"},
		{token: chroma.Comment, wantColour: "#5c6370", wantItalic: true},
		{token: chroma.CommentSingle, wantColour: "#5c6370", wantItalic: true},
		{token: chroma.Keyword, wantColour: "#c678dd"},
		{token: chroma.KeywordType, wantColour: "#c678dd"},
		{token: chroma.NameFunction, wantColour: "#61aeee"},
		{token: chroma.NameBuiltin, wantColour: "#e6c07b"},
		{token: chroma.LiteralString, wantColour: "#98c379"},
		{token: chroma.LiteralNumberInteger, wantColour: "#d19a66"},
		{token: chroma.Operator, wantColour: "#56b6c2"},
		{token: chroma.GenericDeleted, wantColour: "#e06c75"},
		{token: chroma.GenericStrong, wantBold: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.token.String(), func(t *testing.T) {
			t.Parallel()

			entry := AtomOneDark.Get(tt.token)
			if tt.wantColour != "" && entry.Colour.String() != tt.wantColour {
				t.Errorf("colour = %s, want %s", entry.Colour, tt.wantColour)
			}
			if got := entry.Italic == chroma.Yes; got != tt.wantItalic {
				t.Errorf("italic = %v, want %v", got, tt.wantItalic)
			}
			if got := entry.Bold == chroma.Yes; got != tt.wantBold {
				t.Errorf("bold = %v, want %v", got, tt.wantBold)
			}
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	t.Parallel()

	if got := BackgroundColor(AtomOneDark); got != "#282c34" {
		t.Errorf("BackgroundColor(AtomOneDark) = %q, want %q", got, "#282c34")
	}

	plain := chroma.MustNewStyle("plain-test", chroma.StyleEntries{chroma.Text: "#000000"})
	if got := BackgroundColor(plain); got != "#ffffff" {
		t.Errorf("BackgroundColor(plain) = %q, want %q", got, "#ffffff")
	}
}

func TestResolveTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{name: "", want: DefaultThemeName},
		{name: DefaultThemeName, want: DefaultThemeName},
		{name: "monokai", want: "monokai"},
		{name: "no-such-theme", wantErr: ErrUnknownTheme},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			style, err := ResolveTheme(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ResolveTheme(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveTheme(%q) unexpected error: %v", tt.name, err)
			}
			if style.Name != tt.want {
				t.Errorf("ResolveTheme(%q).Name = %q, want %q", tt.name, style.Name, tt.want)
			}
		})
	}
}

package pipeline

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownTheme indicates a theme name chroma does not know.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultThemeName is the theme used for source pages.
const DefaultThemeName = "atom-one-dark"

// atomOneDarkBackground is the page and code background.
const atomOneDarkBackground = "#282c34"

// AtomOneDark is a simplified Atom One Dark palette.
// It is built once and must not be modified.
var AtomOneDark = chroma.MustNewStyle(DefaultThemeName, chroma.StyleEntries{
	chroma.Background: "#abb2bf bg:" + atomOneDarkBackground,

	chroma.Text:              "#abb2bf",
	chroma.Comment:           "italic #5c6370",
	chroma.Keyword:           "#c678dd",
	chroma.NameBuiltin:       "#e6c07b",
	chroma.NameFunction:      "#61aeee",
	chroma.NameClass:         "#e6c07b",
	chroma.NameException:     "#e06c75",
	chroma.NameDecorator:     "#c678dd",
	chroma.NameVariable:      "#d19a66",
	chroma.NameConstant:      "#56b6c2",
	chroma.Literal:           "#56b6c2",
	chroma.LiteralString:     "#98c379",
	chroma.LiteralNumber:     "#d19a66",
	chroma.Operator:          "#56b6c2",
	chroma.Punctuation:       "#abb2bf",
	chroma.GenericHeading:    "#61aeee",
	chroma.GenericSubheading: "#61aeee",
	chroma.GenericDeleted:    "#e06c75",
	chroma.GenericInserted:   "#98c379",
	chroma.GenericError:      "#e06c75",
	chroma.GenericEmph:       "italic",
	chroma.GenericStrong:     "bold",
})

// ResolveTheme returns the built-in theme for "" or DefaultThemeName and
// otherwise looks the name up in chroma's registry.
func ResolveTheme(name string) (*chroma.Style, error) {
	if name == "" || name == DefaultThemeName {
		return AtomOneDark, nil
	}
	if style, ok := styles.Registry[name]; ok {
		return style, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// BackgroundColor returns the theme background as a CSS color, falling back
// to white when the theme leaves it unset.
func BackgroundColor(style *chroma.Style) string {
	bg := style.Get(chroma.Background).Background
	if !bg.IsSet() {
		return "#ffffff"
	}
	return bg.String()
}

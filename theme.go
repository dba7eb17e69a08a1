package resumepdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Font scheme names.
const (
	FontModern = "modern"
	FontSerif  = "serif"
	FontSans   = "sans"
)

// HeaderColorWhite is the sentinel that switches the header banner from a
// colored background with white text to the theme card background with
// regular foreground text.
const HeaderColorWhite = "white"

// DefaultHeaderColor is the banner color used when none is configured.
const DefaultHeaderColor = "#4A6741"

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// ParseHeaderColor parses a header color spec: either a "#RRGGBB" hex
// triplet or the "white" sentinel. The second result reports whether the
// sentinel was used. Anything else is ErrInvalidHeaderColor.
func ParseHeaderColor(spec string) (Color, bool, error) {
	if strings.EqualFold(spec, HeaderColorWhite) {
		return Color{R: 255, G: 255, B: 255}, true, nil
	}

	s := strings.TrimPrefix(spec, "#")
	if len(s) != 6 || len(s) == len(spec) {
		return Color{}, false, fmt.Errorf("%w: %q (use #RRGGBB or %q)", ErrInvalidHeaderColor, spec, HeaderColorWhite)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false, fmt.Errorf("%w: %q: %v", ErrInvalidHeaderColor, spec, err)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
	}, false, nil
}

// Hex returns the color as a "#rrggbb" string for CSS output.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the fixed color set of a theme.
type Palette struct {
	Bg     Color
	Fg     Color
	Muted  Color
	Accent Color
	Rule   Color
	Card   Color
	Link   Color
}

// Theme palettes.
var (
	lightPalette = Palette{
		Bg:     Color{255, 255, 255},
		Fg:     Color{11, 15, 25},
		Muted:  Color{74, 85, 104},
		Accent: Color{47, 108, 235},
		Rule:   Color{229, 231, 235},
		Card:   Color{255, 255, 255},
		Link:   Color{47, 108, 235},
	}
	darkPalette = Palette{
		Bg:     Color{12, 15, 20},
		Fg:     Color{230, 232, 238},
		Muted:  Color{154, 164, 178},
		Accent: Color{122, 162, 255},
		Rule:   Color{34, 48, 73},
		Card:   Color{12, 15, 20},
		Link:   Color{51, 204, 255},
	}
)

// PaletteFor returns the palette for a theme name. Unknown names are
// rejected at configuration time by validateTheme, so this defaults to the
// light palette.
func PaletteFor(theme string) Palette {
	if strings.EqualFold(theme, ThemeDark) {
		return darkPalette
	}
	return lightPalette
}

func validateTheme(theme string) error {
	switch strings.ToLower(theme) {
	case "", ThemeLight, ThemeDark:
		return nil
	}
	return fmt.Errorf("%w: %q (use %s or %s)", ErrInvalidTheme, theme, ThemeLight, ThemeDark)
}

func validateFontScheme(scheme string) error {
	switch strings.ToLower(scheme) {
	case "", FontModern, FontSerif, FontSans:
		return nil
	}
	return fmt.Errorf("%w: %q (use %s, %s, or %s)", ErrInvalidFontScheme, scheme, FontModern, FontSerif, FontSans)
}

// FontFaces maps a font scheme to concrete faces: a core PDF family for the
// direct engine and a CSS stack for the HTML engine.
type FontFaces struct {
	PDFFamily string // gofpdf core family: Helvetica, Times, Courier
	CSSStack  string
}

// facesFor resolves a font scheme name to faces. The modern scheme is the
// default.
func facesFor(scheme string) FontFaces {
	switch strings.ToLower(scheme) {
	case FontSerif:
		return FontFaces{PDFFamily: "Times", CSSStack: `Georgia, "Times New Roman", serif`}
	case FontSans:
		return FontFaces{PDFFamily: "Helvetica", CSSStack: `"Segoe UI", Arial, sans-serif`}
	default:
		return FontFaces{PDFFamily: "Helvetica", CSSStack: `"Helvetica Neue", Helvetica, Arial, sans-serif`}
	}
}

// StyleRole identifies one of the fixed text roles of the rendered resume.
type StyleRole int

// Style roles.
const (
	RoleName StyleRole = iota
	RoleTitle
	RoleContact
	RoleSectionHeader
	RoleJobTitle
	RoleCompany
	RoleDateLocation
	RoleBody
	RoleSkills
)

// TextStyle is the immutable style value of one role.
type TextStyle struct {
	Size       float64 // points
	Bold       bool
	Italic     bool
	Color      Color
	SpaceAfter float64 // points
	Indent     float64 // points, left indent for bullets
	Center     bool
}

// Stylesheet maps every style role to its resolved text style for one
// conversion. Construct with BuildStylesheet; a Stylesheet is never
// mutated after construction.
type Stylesheet struct {
	Roles       map[StyleRole]TextStyle
	Faces       FontFaces
	Palette     Palette
	Dark        bool
	HeaderColor Color
	WhiteHeader bool
	OnePage     bool
	Sizing      SizingParameters
}

// BuildStylesheet resolves sizing parameters, theme, font scheme, and
// header color into one immutable stylesheet. The role sizes follow the
// dynamic sizing policy; spacing compresses in one-page mode.
func BuildStylesheet(sz SizingParameters, theme, fontScheme, headerColor string, onePage bool) (Stylesheet, error) {
	if err := validateTheme(theme); err != nil {
		return Stylesheet{}, err
	}
	if err := validateFontScheme(fontScheme); err != nil {
		return Stylesheet{}, err
	}
	if headerColor == "" {
		headerColor = DefaultHeaderColor
	}
	banner, white, err := ParseHeaderColor(headerColor)
	if err != nil {
		return Stylesheet{}, err
	}

	pal := PaletteFor(theme)
	dark := strings.EqualFold(theme, ThemeDark)

	// Header text is white on the colored banner; the white sentinel
	// swaps in the card background with theme foreground text.
	headerFg := Color{255, 255, 255}
	if white {
		headerFg = pal.Fg
	}

	spacing := func(compact, roomy float64) float64 {
		if onePage {
			return compact
		}
		return roomy
	}

	roles := map[StyleRole]TextStyle{
		RoleName:          {Size: sz.Name, Bold: true, Color: headerFg, SpaceAfter: spacing(2, 6), Center: true},
		RoleTitle:         {Size: sz.Base, Italic: true, Color: headerFg, SpaceAfter: spacing(2, 6), Center: true},
		RoleContact:       {Size: sz.Small, Color: headerFg, SpaceAfter: spacing(4, 12), Center: true},
		RoleSectionHeader: {Size: sz.Section, Bold: true, Color: pal.Fg, SpaceAfter: spacing(2, 6)},
		RoleJobTitle:      {Size: sz.Base - 0.5, Bold: true, Color: pal.Fg, SpaceAfter: spacing(1, 2)},
		RoleCompany:       {Size: sz.Base, Bold: true, Color: pal.Fg, SpaceAfter: spacing(1, 2)},
		RoleDateLocation:  {Size: sz.Small, Italic: true, Color: pal.Muted, SpaceAfter: spacing(2, 6)},
		RoleBody:          {Size: sz.Base - 0.5, Color: pal.Fg, SpaceAfter: spacing(1.5, 4), Indent: spacing(10, 12)},
		RoleSkills:        {Size: sz.Base - 0.5, Color: pal.Fg, SpaceAfter: spacing(2, 6)},
	}

	return Stylesheet{
		Roles:       roles,
		Faces:       facesFor(fontScheme),
		Palette:     pal,
		Dark:        dark,
		HeaderColor: banner,
		WhiteHeader: white,
		OnePage:     onePage,
		Sizing:      sz,
	}, nil
}

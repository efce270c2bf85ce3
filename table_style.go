package gui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned when a theme color is not #RRGGBB or #RRGGBBAA.
var ErrInvalidColor = errors.New("invalid color")

// TableVariant selects a palette within a TableCatalog.
// The empty variant is the default.
type TableVariant string

// DefaultVariant is the palette used when a table names no variant or an
// unknown one.
const DefaultVariant TableVariant = ""

// TableAppearance is how one part of a table looks.
// Zero colors are not drawn; a zero TextColor keeps the ambient text color.
type TableAppearance struct {
	Background  uint32
	TextColor   uint32
	BorderColor uint32
	BorderWidth float32
}

// TableCatalog maps table parts to appearances.
// Implement it to theme tables from application code.
type TableCatalog interface {
	Header(v TableVariant) TableAppearance
	Footer(v TableVariant) TableAppearance
	Row(v TableVariant, index int) TableAppearance
	Divider(v TableVariant, hovered bool) TableAppearance
}

// TablePalette is the set of appearances for one variant.
type TablePalette struct {
	Header         TableAppearance
	Footer         TableAppearance
	RowEven        TableAppearance
	RowOdd         TableAppearance
	Divider        TableAppearance
	DividerHovered TableAppearance
}

// TableTheme is a TableCatalog backed by a palette per variant.
type TableTheme map[TableVariant]TablePalette

func (t TableTheme) palette(v TableVariant) TablePalette {
	if p, ok := t[v]; ok {
		return p
	}
	return t[DefaultVariant]
}

// Header returns the header appearance.
func (t TableTheme) Header(v TableVariant) TableAppearance { return t.palette(v).Header }

// Footer returns the footer appearance.
func (t TableTheme) Footer(v TableVariant) TableAppearance { return t.palette(v).Footer }

// Row returns the appearance of the row at index, banded even/odd.
func (t TableTheme) Row(v TableVariant, index int) TableAppearance {
	p := t.palette(v)
	if index%2 == 0 {
		return p.RowEven
	}
	return p.RowOdd
}

// Divider returns the divider appearance. hovered is also true mid-drag.
func (t TableTheme) Divider(v TableVariant, hovered bool) TableAppearance {
	p := t.palette(v)
	if hovered {
		return p.DividerHovered
	}
	return p.Divider
}

// DefaultTableTheme derives a single-variant theme from a Style.
// Header and footer share the strong header background, rows alternate
// between the row colors, and the divider lights up in the hot color.
func DefaultTableTheme(s Style) TableTheme {
	header := TableAppearance{Background: s.HeaderBgColor, TextColor: s.TextColor}
	return TableTheme{
		DefaultVariant: {
			Header:         header,
			Footer:         header,
			RowEven:        TableAppearance{Background: s.RowBgColor, TextColor: s.TextColor},
			RowOdd:         TableAppearance{Background: s.RowBgAltColor, TextColor: s.TextColor},
			Divider:        TableAppearance{Background: s.DividerColor},
			DividerHovered: TableAppearance{Background: s.DividerHotColor},
		},
	}
}

// HexColor is a packed color that reads from YAML as "#RRGGBB" or "#RRGGBBAA".
type HexColor uint32

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
// Six digits mean opaque.
func ParseHexColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = HexColor(v)
	return nil
}

type appearanceFile struct {
	Background  HexColor `yaml:"background"`
	Text        HexColor `yaml:"text"`
	Border      HexColor `yaml:"border"`
	BorderWidth float32  `yaml:"border_width" validate:"gte=0,lte=16"`
}

func (a appearanceFile) appearance() TableAppearance {
	return TableAppearance{
		Background:  uint32(a.Background),
		TextColor:   uint32(a.Text),
		BorderColor: uint32(a.Border),
		BorderWidth: a.BorderWidth,
	}
}

type paletteFile struct {
	Header         appearanceFile  `yaml:"header"`
	Footer         *appearanceFile `yaml:"footer"`
	RowEven        appearanceFile  `yaml:"row_even"`
	RowOdd         *appearanceFile `yaml:"row_odd"`
	Divider        appearanceFile  `yaml:"divider"`
	DividerHovered appearanceFile  `yaml:"divider_hovered"`
}

type themeFile struct {
	Variants map[string]paletteFile `yaml:"variants" validate:"required,min=1,dive"`
}

var themeValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadTableTheme reads a TableTheme from YAML.
//
//	variants:
//	  "":                # default variant
//	    header:          { background: "#283040", text: "#FFFFFF" }
//	    row_even:        { background: "#1C1C1C" }
//	    row_odd:         { background: "#232323" }   # defaults to row_even
//	    divider:         { background: "#404040" }
//	    divider_hovered: { background: "#4A9FE0" }
//	    # footer defaults to header
//
// Colors are "#RRGGBB" or "#RRGGBBAA".
func LoadTableTheme(r io.Reader) (TableTheme, error) {
	var f themeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode table theme: %w", err)
	}
	if err := themeValidator.Struct(f); err != nil {
		return nil, fmt.Errorf("validate table theme: %w", err)
	}

	theme := make(TableTheme, len(f.Variants))
	for name, p := range f.Variants {
		pal := TablePalette{
			Header:         p.Header.appearance(),
			Footer:         p.Header.appearance(),
			RowEven:        p.RowEven.appearance(),
			RowOdd:         p.RowEven.appearance(),
			Divider:        p.Divider.appearance(),
			DividerHovered: p.DividerHovered.appearance(),
		}
		if p.Footer != nil {
			pal.Footer = p.Footer.appearance()
		}
		if p.RowOdd != nil {
			pal.RowOdd = p.RowOdd.appearance()
		}
		theme[TableVariant(name)] = pal
	}

	guiLogger.Debug("table theme loaded", "variants", len(theme))
	return theme, nil
}

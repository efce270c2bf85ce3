package gui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/tablegui"
)

func TestParseHexColor(t *testing.T) {
	c, err := gui.ParseHexColor("#FF8040")
	require.NoError(t, err)
	assert.Equal(t, gui.RGBA(0xFF, 0x80, 0x40, 0xFF), c)

	c, err = gui.ParseHexColor(" #10203080 ")
	require.NoError(t, err)
	assert.Equal(t, gui.RGBA(0x10, 0x20, 0x30, 0x80), c)

	for _, bad := range []string{"", "FF8040", "#FF80", "#GG8040", "#FF804012AB"} {
		_, err := gui.ParseHexColor(bad)
		assert.ErrorIs(t, err, gui.ErrInvalidColor, bad)
	}
}

const themeYAML = `
variants:
  "":
    header:          { background: "#283040", text: "#FFFFFF" }
    row_even:        { background: "#1C1C1C" }
    row_odd:         { background: "#232323" }
    divider:         { background: "#404040" }
    divider_hovered: { background: "#4A9FE0", border: "#FFFFFF", border_width: 1 }
  compact:
    header:          { background: "#000000" }
    footer:          { background: "#111111" }
    row_even:        { background: "#222222" }
    divider:         { background: "#333333" }
    divider_hovered: { background: "#444444" }
`

func TestLoadTableTheme(t *testing.T) {
	theme, err := gui.LoadTableTheme(strings.NewReader(themeYAML))
	require.NoError(t, err)
	require.Len(t, theme, 2)

	hdr := theme.Header(gui.DefaultVariant)
	assert.Equal(t, gui.RGBA(0x28, 0x30, 0x40, 0xFF), hdr.Background)
	assert.Equal(t, gui.ColorWhite, hdr.TextColor)
	assert.Equal(t, hdr, theme.Footer(gui.DefaultVariant), "footer defaults to header")

	assert.Equal(t, gui.RGBA(0x1C, 0x1C, 0x1C, 0xFF), theme.Row(gui.DefaultVariant, 0).Background)
	assert.Equal(t, gui.RGBA(0x23, 0x23, 0x23, 0xFF), theme.Row(gui.DefaultVariant, 1).Background)

	hot := theme.Divider(gui.DefaultVariant, true)
	assert.Equal(t, float32(1), hot.BorderWidth)
	assert.NotEqual(t, hot, theme.Divider(gui.DefaultVariant, false))

	compact := gui.TableVariant("compact")
	assert.Equal(t, gui.RGBA(0x11, 0x11, 0x11, 0xFF), theme.Footer(compact).Background)
	assert.Equal(t, theme.Row(compact, 0), theme.Row(compact, 1), "row_odd defaults to row_even")

	// Unknown variants fall back to the default palette.
	assert.Equal(t, hdr, theme.Header("missing"))
}

func TestLoadTableThemeErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad color", `variants: { "": { header: { background: "red" } } }`},
		{"unknown key", `variants: { "": { heading: { background: "#000000" } } }`},
		{"no variants", `variants: {}`},
		{"border too wide", `variants: { "": { header: { border_width: 100 } } }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gui.LoadTableTheme(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := gui.LoadTableTheme(strings.NewReader(tests[0].yaml))
	assert.ErrorIs(t, err, gui.ErrInvalidColor)
}

func TestDefaultTableThemeFollowsStyle(t *testing.T) {
	s := gui.DarkStyle()
	theme := gui.DefaultTableTheme(s)

	assert.Equal(t, s.HeaderBgColor, theme.Header(gui.DefaultVariant).Background)
	assert.Equal(t, s.RowBgColor, theme.Row(gui.DefaultVariant, 2).Background)
	assert.Equal(t, s.RowBgAltColor, theme.Row(gui.DefaultVariant, 3).Background)
	assert.Equal(t, s.DividerHotColor, theme.Divider(gui.DefaultVariant, true).Background)
}

func TestEmptyThemeReturnsZeroAppearance(t *testing.T) {
	var theme gui.TableTheme
	assert.Equal(t, gui.TableAppearance{}, theme.Header("x"))
	assert.Equal(t, gui.TableAppearance{}, theme.Divider("x", true))
}

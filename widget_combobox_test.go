package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qualities = []string{"Low", "Medium", "High"}

// The header is 200x14 at the origin. Open, item i spans
// y 14+12*i .. 26+12*i.
type comboRig struct {
	selected int
	changed  bool
	popup    int // foreground vertices after the combo drew
}

func (r *comboRig) draw(ctx *Context) {
	ctx.VStack(Width(200))(func() {
		r.changed = ctx.ComboBox("", &r.selected, qualities, WithID("quality"))
		r.popup = len(ctx.ForegroundDrawList.VtxBuffer)
	})
}

func (r *comboRig) open() bool {
	s := comboStore.GetIfExists(IDFrom(0, "quality", 0))
	return s != nil && s.open
}

func TestComboBoxSelectsFromDropdown(t *testing.T) {
	d := newFrameDriver(400, 300)
	r := &comboRig{}

	d.frame(moveTo(10, 7), r.draw)
	assert.Zero(t, r.popup)

	d.frame(pressAt(10, 7), r.draw)
	require.True(t, r.open())
	assert.NotZero(t, r.popup, "list drawn on the foreground list")
	assert.Equal(t, IDFrom(0, "quality", 0), d.ctx.MouseOwner())

	d.frame(nil, r.draw)
	assert.True(t, r.open())

	d.frame(clickAt(10, 43), r.draw)
	assert.True(t, r.changed)
	assert.Equal(t, 2, r.selected)
	assert.False(t, r.open())
	assert.Zero(t, r.popup)

	d.frame(nil, r.draw)
	assert.False(t, r.changed)
	assert.Zero(t, d.ctx.MouseOwner(), "capture released after closing")
}

func TestComboBoxClosesOnOutsideClickAndEscape(t *testing.T) {
	d := newFrameDriver(400, 300)
	r := &comboRig{selected: 1}

	d.frame(pressAt(10, 7), r.draw)
	d.frame(clickAt(300, 250), r.draw)
	assert.False(t, r.open())
	assert.False(t, r.changed)
	assert.Equal(t, 1, r.selected)

	d.frame(clickAt(10, 7), r.draw)
	require.True(t, r.open())
	d.frame(tapKey(KeyEscape), r.draw)
	assert.False(t, r.open())
	assert.Equal(t, 1, r.selected)
}

func TestComboBoxHeaderClickToggles(t *testing.T) {
	d := newFrameDriver(400, 300)
	r := &comboRig{}

	d.frame(pressAt(10, 7), r.draw)
	require.True(t, r.open())
	d.frame(clickAt(10, 7), r.draw)
	assert.False(t, r.open())
	assert.Equal(t, 0, r.selected)
}

func TestComboBoxKeyboardPick(t *testing.T) {
	d := newFrameDriver(400, 300)
	r := &comboRig{}

	d.frame(pressAt(10, 7), r.draw)
	assert.True(t, d.ctx.WantCaptureKeyboard)

	d.frame(tapKey(KeyDown), r.draw)
	d.frame(tapKey(KeyDown), r.draw)
	d.frame(tapKey(KeyDown), r.draw) // stops at the last item
	d.frame(tapKey(KeyEnter), r.draw)
	assert.True(t, r.changed)
	assert.Equal(t, 2, r.selected)
	assert.False(t, r.open())

	d.frame(clickAt(10, 7), r.draw)
	d.frame(tapKey(KeyUp), r.draw)
	d.frame(tapKey(KeyEnter), r.draw)
	assert.Equal(t, 1, r.selected)
}

func TestOpenComboBoxShieldsWidgetsBelow(t *testing.T) {
	d := newFrameDriver(400, 300)
	selected := 1
	var below bool
	draw := func(ctx *Context) {
		ctx.VStack(Width(200))(func() {
			ctx.ComboBox("", &selected, qualities, WithID("shield"))
			// At y 18..38, under the first two items.
			below = ctx.Button("below", WithWidth(200))
		})
	}

	d.frame(pressAt(10, 7), draw)
	d.frame(clickAt(10, 20), draw)
	assert.Equal(t, 0, selected)
	assert.False(t, below, "the click belonged to the list")

	d.frame(clickAt(10, 30), draw)
	assert.True(t, below)
}

func TestDisabledComboBoxStaysClosed(t *testing.T) {
	d := newFrameDriver(400, 300)
	selected := 0
	draw := func(ctx *Context) {
		ctx.VStack(Width(200))(func() {
			ctx.ComboBox("", &selected, qualities, WithID("off"), WithDisabled(true))
		})
	}

	d.frame(pressAt(10, 7), draw)
	s := comboStore.GetIfExists(IDFrom(0, "off", 0))
	require.NotNil(t, s)
	assert.False(t, s.open)
	assert.Zero(t, d.ctx.MouseOwner())
}

package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/tablegui"
)

type nopRenderer struct{}

func (nopRenderer) Render(*gui.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32 { return 1 }
func (nopRenderer) Resize(int, int) {}

func runFrame(t *testing.T, ui *gui.GUI, in *gui.InputState, draw func(ctx *gui.Context)) *gui.Context {
	t.Helper()
	return runFrameWith(t, ui, in, nil, draw)
}

// runFrameWith lets events fill the frame's input after the reset.
func runFrameWith(t *testing.T, ui *gui.GUI, in *gui.InputState, events func(*gui.InputState), draw func(ctx *gui.Context)) *gui.Context {
	t.Helper()
	in.Reset()
	if events != nil {
		events(in)
	}
	ctx := ui.Begin(in, gui.Vec2{X: 400, Y: 500}, 1.0/60)
	ctx.VStack(gui.Width(400), gui.Height(500))(func() { draw(ctx) })
	require.NoError(t, ui.End())
	return ctx
}

func TestViewSyncsHeaderAndFooterWithBody(t *testing.T) {
	a := newTestApp(t, 50)
	a.MinWidth = false
	ui := gui.New(nopRenderer{}, gui.WithStyle(a.Style()))
	in := gui.NewInputState()

	runFrame(t, ui, in, a.View)
	runFrame(t, ui, in, func(ctx *gui.Context) {
		ctx.ScrollTo(BodyScroll, gui.AbsoluteOffset{X: 100, Y: 40})
		a.View(ctx)
	})
	assert.Empty(t, a.inbox, "flushed within the frame")

	ctx := runFrame(t, ui, in, a.View)
	body := gui.GetScrollableState(ctx, BodyScroll)
	require.NotNil(t, body)
	assert.Equal(t, gui.AbsoluteOffset{X: 100, Y: 40}, body.Offset)

	for _, name := range []string{HeaderScroll, FooterScroll} {
		s := gui.GetScrollableState(ctx, name)
		require.NotNil(t, s, name)
		assert.Equal(t, gui.AbsoluteOffset{X: 100}, s.Offset, name)
		assert.Equal(t, body.ViewportWidth, s.ViewportWidth, name)
	}
}

func TestViewWithoutFooter(t *testing.T) {
	a := newTestApp(t, 5)
	a.Update(FooterToggled{Enabled: false})
	ui := gui.New(nopRenderer{})
	in := gui.NewInputState()

	ctx := runFrame(t, ui, in, a.View)
	assert.NotNil(t, gui.GetScrollableState(ctx, BodyScroll))
	assert.Nil(t, gui.GetScrollableState(ctx, FooterScroll))
}

package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dividerRig draws one divider at the origin: 100 wide with a 2 pixel
// handle at x 98..100, around a 20 pixel tall child. The grab area is
// therefore x 93..105.
type dividerRig struct {
	id       ID
	deltas   []float32
	releases int

	childID      ID
	childHovered bool
}

func newDividerRig(label string) *dividerRig {
	return &dividerRig{id: IDFrom(0, label, 0), childID: IDFrom(0, label+"-child", 0)}
}

func (p *dividerRig) draw(ctx *Context) {
	ctx.Divider(p.id, DividerConfig{
		Width:     100,
		Thickness: 2,
		OnDrag:    func(d float32) { p.deltas = append(p.deltas, d) },
		OnRelease: func() { p.releases++ },
	})(func() {
		pos := ctx.ItemPos()
		p.childHovered = ctx.IsHovered(p.childID, Rect{X: pos.X, Y: pos.Y, W: 98, H: 20})
		Blank{Height: 20}.Render(ctx)
	})
}

func (p *dividerRig) state() *dividerState {
	return dividerStore.GetIfExists(p.id)
}

func TestDividerHoverIsRecomputedEveryFrame(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("hover")

	d.frame(moveTo(300, 200), p.draw) // learn the child height

	d.frame(moveTo(99, 10), p.draw)
	require.NotNil(t, p.state())
	assert.True(t, p.state().hovered)
	assert.Equal(t, CursorResizeHorizontal, d.ctx.MouseCursor())

	// Grab margin on both sides of the handle.
	d.frame(moveTo(94, 10), p.draw)
	assert.True(t, p.state().hovered)
	d.frame(moveTo(104, 10), p.draw)
	assert.True(t, p.state().hovered)

	// A press elsewhere is not consumed, but hover still follows the pointer.
	d.frame(pressAt(30, 10), p.draw)
	assert.False(t, p.state().hovered)
	assert.False(t, p.state().dragging)
	assert.Equal(t, CursorArrow, d.ctx.MouseCursor())
}

func TestDividerPressOutsideNeverDrags(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("outside")

	d.frame(nil, p.draw)
	d.frame(pressAt(50, 10), p.draw)
	d.frame(moveTo(120, 10), p.draw)
	d.frame(releaseAt(120, 10), p.draw)

	assert.Empty(t, p.deltas)
	assert.Zero(t, p.releases)
	assert.False(t, p.childHovered, "pointer ended outside the child")
}

func TestDividerReportsDeltaFromOrigin(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("delta")

	d.frame(nil, p.draw)
	d.frame(pressAt(99, 10), p.draw)
	require.True(t, p.state().dragging)
	assert.Equal(t, p.id, d.ctx.MouseOwner())
	assert.Empty(t, p.deltas, "the press frame reports nothing")

	d.frame(moveTo(109, 10), p.draw)
	d.frame(moveTo(129, 60), p.draw) // vertical motion is ignored
	d.frame(moveTo(129, 60), p.draw) // no motion, no report
	d.frame(moveTo(-401, 0), p.draw) // far outside the divider, still captured

	assert.Equal(t, []float32{10, 30, -500}, p.deltas)
	assert.Zero(t, p.releases)

	d.frame(releaseAt(-401, 0), p.draw)
	assert.Equal(t, 1, p.releases)
	assert.False(t, p.state().dragging)
	assert.Len(t, p.deltas, 3)
}

func TestDividerMotionIsReportedBeforeRelease(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("order")

	var events []string
	draw := func(ctx *Context) {
		ctx.Divider(p.id, DividerConfig{
			Width:     100,
			Thickness: 2,
			OnDrag:    func(float32) { events = append(events, "drag") },
			OnRelease: func() { events = append(events, "release") },
		})(func() { Blank{Height: 20}.Render(ctx) })
	}

	d.frame(nil, draw)
	d.frame(pressAt(99, 10), draw)
	d.frame(releaseAt(140, 10), draw)

	assert.Equal(t, []string{"drag", "release"}, events)
}

func TestDividerCaptureHidesPointerFromChild(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("capture")

	d.frame(moveTo(50, 10), p.draw)
	d.frame(moveTo(50, 10), p.draw)
	assert.True(t, p.childHovered)

	d.frame(pressAt(99, 10), p.draw)
	d.frame(moveTo(50, 10), p.draw)
	assert.False(t, p.childHovered, "child must not see the pointer during a drag")
	assert.Equal(t, CursorResizeHorizontal, d.ctx.MouseCursor())

	// The release frame is still held; the next one is not.
	d.frame(releaseAt(50, 10), p.draw)
	assert.False(t, p.childHovered)
	d.frame(moveTo(50, 10), p.draw)
	assert.True(t, p.childHovered)
	assert.Zero(t, d.ctx.MouseOwner())
}

func TestDividerLostReleaseKeepsDragLatched(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("latched")

	d.frame(nil, p.draw)
	d.frame(pressAt(99, 10), p.draw)

	// The release never arrives; the button still reads as held.
	for i := 0; i < 5; i++ {
		d.frame(moveTo(99+float32(i+1), 10), p.draw)
	}
	assert.True(t, p.state().dragging)
	assert.Equal(t, p.id, d.ctx.MouseOwner())
	assert.Len(t, p.deltas, 5)

	d.frame(releaseAt(104, 10), p.draw)
	assert.False(t, p.state().dragging)
	assert.Equal(t, 1, p.releases)
}

func TestDividerStateIsDroppedWhenNotDrawn(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("dropped")

	d.frame(nil, p.draw)
	d.frame(pressAt(99, 10), p.draw)
	require.True(t, p.state().dragging)

	d.frame(nil, func(*Context) {})
	d.frame(nil, func(*Context) {})
	assert.Nil(t, p.state())
	assert.Zero(t, d.ctx.MouseOwner(), "capture lapses when the owner stops renewing it")

	d.frame(moveTo(150, 10), p.draw)
	assert.False(t, p.state().dragging)
	assert.Empty(t, p.deltas)
}

func TestDividerDrawsHandleOnlyWhenActive(t *testing.T) {
	d := newFrameDriver(400, 300)
	p := newDividerRig("draw")

	var idle, hovered int
	d.frame(moveTo(300, 200), p.draw)
	d.frame(moveTo(300, 200), func(ctx *Context) {
		p.draw(ctx)
		idle = len(ctx.DrawList.VtxBuffer)
	})
	d.frame(moveTo(99, 10), func(ctx *Context) {
		p.draw(ctx)
		hovered = len(ctx.DrawList.VtxBuffer)
	})

	assert.Zero(t, idle)
	assert.Equal(t, 4, hovered)
}

func TestDividerContentRect(t *testing.T) {
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"wide", Rect{X: 10, Y: 0, W: 100, H: 20}, Rect{X: 15, Y: 0, W: 95, H: 20}},
		{"narrow", Rect{X: 10, Y: 0, W: 8, H: 20}, Rect{X: 13, Y: 0, W: 5, H: 20}},
		{"tiny", Rect{X: 10, Y: 0, W: 2, H: 20}, Rect{X: 10, Y: 0, W: 2, H: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dividerContentRect(tt.in))
		})
	}
}

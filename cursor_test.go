package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForcedCursorWinsForTheFrame(t *testing.T) {
	d := newFrameDriver(800, 600)
	d.frame(nil, func(ctx *Context) {
		ctx.SetMouseCursor(CursorHand)
		assert.Equal(t, CursorHand, ctx.MouseCursor())

		ctx.forceMouseCursor(CursorResizeHorizontal)
		ctx.SetMouseCursor(CursorHand)
		assert.Equal(t, CursorResizeHorizontal, ctx.MouseCursor())
	})
	d.frame(nil, func(ctx *Context) {
		assert.Equal(t, CursorArrow, ctx.MouseCursor())
		ctx.SetMouseCursor(CursorHand)
		assert.Equal(t, CursorHand, ctx.MouseCursor())
	})
}

func TestMouseCaptureMustBeRenewed(t *testing.T) {
	d := newFrameDriver(800, 600)
	owner, other := ID(1), ID(2)
	area := Rect{X: 0, Y: 0, W: 100, H: 100}

	d.frame(moveTo(10, 10), func(ctx *Context) {
		ctx.CaptureMouse(owner, true)
		assert.True(t, ctx.isHovered(owner, area))
		assert.False(t, ctx.isHovered(other, area))
		assert.True(t, ctx.WantCaptureMouse)
	})
	d.frame(nil, func(ctx *Context) {
		assert.Equal(t, owner, ctx.MouseOwner(), "persisted into the next frame")
		assert.False(t, ctx.isHovered(other, area))
	})
	d.frame(nil, func(ctx *Context) {
		assert.Zero(t, ctx.MouseOwner(), "lost when not renewed")
		assert.True(t, ctx.isHovered(other, area))
	})
}

func TestFrameOnlyCapture(t *testing.T) {
	d := newFrameDriver(800, 600)
	d.frame(moveTo(10, 10), func(ctx *Context) {
		ctx.CaptureMouse(7, false)
		assert.Equal(t, ID(7), ctx.MouseOwner())
	})
	d.frame(nil, func(ctx *Context) {
		assert.Zero(t, ctx.MouseOwner())
		assert.False(t, ctx.WantCaptureMouse)
	})
}

func TestPointerOverRespectsViewport(t *testing.T) {
	d := newFrameDriver(800, 600)
	d.frame(moveTo(150, 10), func(ctx *Context) {
		row := Rect{X: 0, Y: 0, W: 400, H: 20}
		assert.True(t, ctx.pointerOver(row))

		ctx.pushViewport(Rect{X: 0, Y: 0, W: 100, H: 100})
		assert.False(t, ctx.pointerOver(row), "clipped part of a scrolled row")
		ctx.popViewport()

		assert.True(t, ctx.pointerOver(row))
	})
}

func TestMouseCursorString(t *testing.T) {
	assert.Equal(t, "arrow", CursorArrow.String())
	assert.Equal(t, "hand", CursorHand.String())
	assert.Equal(t, "resize-h", CursorResizeHorizontal.String())
	assert.Equal(t, "text", CursorText.String())
}

package gui

// scrollableStore holds per-region scroll state.
var scrollableStore = NewFrameStore[ScrollableState]()

// AbsoluteOffset is a scroll position in pixels from the content's top-left.
type AbsoluteOffset struct {
	X, Y float32
}

// ScrollbarAppearance sizes a Scrollable's scrollbars.
// The zero value uses Style.ScrollbarSize for both track and thumb.
type ScrollbarAppearance struct {
	Width         float32 // Track thickness (0 = Style.ScrollbarSize)
	Margin        float32 // Gap between track edge and thumb
	ScrollerWidth float32 // Thumb thickness (0 = track thickness minus margins)
	Hidden        bool    // No scrollbars at all; the region still scrolls
}

// DefaultScrollbar returns the style-sized scrollbar.
func DefaultScrollbar() ScrollbarAppearance {
	return ScrollbarAppearance{}
}

// HiddenScrollbar returns an appearance with no visible scrollbars.
// Table headers and footers use it: they follow the body's offset but
// never show bars of their own.
func HiddenScrollbar() ScrollbarAppearance {
	return ScrollbarAppearance{Hidden: true}
}

// trackWidth resolves the track thickness, 0 when hidden.
func (a ScrollbarAppearance) trackWidth(style Style) float32 {
	if a.Hidden {
		return 0
	}
	if a.Width > 0 {
		return a.Width
	}
	return style.ScrollbarSize
}

// thumbWidth resolves the thumb thickness within a track.
func (a ScrollbarAppearance) thumbWidth(track float32) float32 {
	if a.ScrollerWidth > 0 {
		return minf(a.ScrollerWidth, track)
	}
	return maxf(1, track-2*a.Margin)
}

// scrollAxis identifies which scrollbar thumb is being dragged.
type scrollAxis uint8

const (
	axisNone scrollAxis = iota
	axisVertical
	axisHorizontal
)

// ScrollableState is the persistent state of one Scrollable.
type ScrollableState struct {
	Offset AbsoluteOffset

	// Measured last frame
	ContentWidth, ContentHeight   float32
	ViewportWidth, ViewportHeight float32

	// Offset last passed to the OnScroll callback
	reported AbsoluteOffset

	dragAxis        scrollAxis
	dragStartMouse  float32
	dragStartOffset float32
}

// maxOffset returns the largest valid offset on each axis.
func (s *ScrollableState) maxOffset() AbsoluteOffset {
	return AbsoluteOffset{
		X: maxf(0, s.ContentWidth-s.ViewportWidth),
		Y: maxf(0, s.ContentHeight-s.ViewportHeight),
	}
}

// clamp keeps the offset inside the content.
func (s *ScrollableState) clamp() {
	s.clampTo(s.ViewportWidth, s.ViewportHeight)
}

// clampTo clamps against the last measured content in a viewport of w by h.
func (s *ScrollableState) clampTo(w, h float32) {
	s.Offset.X = clampf(s.Offset.X, 0, maxf(0, s.ContentWidth-w))
	s.Offset.Y = clampf(s.Offset.Y, 0, maxf(0, s.ContentHeight-h))
}

// ScrollTo queues a scroll command for the Scrollable with the given name.
// The command is applied the next time that Scrollable renders, before its
// content is laid out, and is clamped to the content size.
// Later commands for the same name replace earlier ones.
func (ctx *Context) ScrollTo(name string, offset AbsoluteOffset) {
	ctx.pendingScrolls[name] = offset
}

// GetScrollableState returns the scroll state of a named Scrollable.
// Returns nil if it hasn't been rendered yet.
func GetScrollableState(ctx *Context, name string) *ScrollableState {
	if id, ok := ctx.scrollableIDs[name]; ok {
		return scrollableStore.GetIfExists(id)
	}
	return nil
}

// Scrollable creates a clipped region that scrolls its content.
// Returns a function that should be called with the content closure.
//
// A height of zero or less shrinks the region to its content: it clips and
// scrolls horizontally only. Options:
//   - EnableHorizontal: scroll on X too (wheel X, Shift+wheel, Left/Right)
//   - WithScrollbar: scrollbar size or HiddenScrollbar
//   - WithUserScroll(false): ignore wheel, keys and scrollbar drags
//   - OnScroll: notified once per frame the offset changed
//
// Usage:
//
//	ctx.Scrollable("log", 300, EnableHorizontal())(func() {
//	    for _, line := range lines {
//	        ctx.Text(line)
//	    }
//	})
func (ctx *Context) Scrollable(name string, height float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)

		id := IDFrom(ctx.CurrentID(), name, 0)
		state := scrollableStore.Get(id, ScrollableState{})
		ctx.scrollableIDs[name] = id

		horizontal := GetOpt(o, OptHorizontalScroll)
		shrink := height <= 0
		appearance := GetOpt(o, OptScrollbar)
		track := appearance.trackWidth(ctx.style)

		pos := ctx.ItemPos()
		w := ctx.currentLayoutWidth()
		if layout := ctx.currentLayout(); layout != nil {
			w -= pos.X - layout.StartX
		}
		if width := GetOpt(o, OptWidth); width > 0 {
			w = width
		}
		w = maxf(0, w)

		// Bar visibility follows last frame's measurements.
		showV := !shrink && track > 0 && state.ContentHeight > state.ViewportHeight
		showH := horizontal && track > 0 && state.ContentWidth > state.ViewportWidth
		vbar, hbar := float32(0), float32(0)
		if showV {
			vbar = track
		}
		if showH {
			hbar = track
		}

		viewW := maxf(0, w-vbar)
		viewH := maxf(0, height-hbar)
		// Commands clamp against this frame's viewport; last frame's may
		// be wider when the width option changed since.
		if off, ok := ctx.pendingScrolls[name]; ok {
			delete(ctx.pendingScrolls, name)
			state.Offset = off
			state.clampTo(viewW, viewH)
			if shrink {
				state.Offset.Y = 0
			}
			if guiVerbose() {
				guiLogger.Debug("scroll command applied", "scrollable", name, "requested", off, "offset", state.Offset)
			}
		}

		clipH := viewH
		if shrink {
			// No vertical scrolling, so content can't spill above pos.Y;
			// below, the region grows to fit.
			clipH = 1e6
		}

		ctx.DrawList.PushClipRect(pos.X, pos.Y, pos.X+viewW, pos.Y+clipH)
		ctx.pushViewport(Rect{X: pos.X, Y: pos.Y, W: viewW, H: clipH})

		ctx.cursor = Vec2{X: pos.X, Y: pos.Y - state.Offset.Y}
		if horizontal {
			ctx.cursor.X -= state.Offset.X
		}
		ctx.pushLayoutWith(&Layout{
			Type:       LayoutVertical,
			Width:      viewW,
			FixedWidth: true,
			Height:     viewH,
			Gap:        ctx.style.ItemSpacing,
		})
		contents()
		bounds := ctx.dropLayout()

		ctx.popViewport()
		ctx.DrawList.PopClipRect()

		if shrink {
			viewH = bounds.H
		}
		state.ContentWidth = bounds.W
		state.ContentHeight = bounds.H
		state.ViewportWidth = viewW
		state.ViewportHeight = viewH
		if !horizontal {
			state.Offset.X = 0
		}
		if shrink {
			state.Offset.Y = 0
		}

		viewport := Rect{X: pos.X, Y: pos.Y, W: viewW, H: viewH}
		if GetOpt(o, OptUserScroll) {
			ctx.scrollInput(id, state, viewport, horizontal, shrink)
			if showV {
				ctx.scrollbar(id, state, appearance, axisVertical,
					Rect{X: pos.X + viewW, Y: pos.Y, W: vbar, H: viewH})
			}
			if showH {
				ctx.scrollbar(id, state, appearance, axisHorizontal,
					Rect{X: pos.X, Y: pos.Y + viewH, W: viewW, H: hbar})
			}
		}
		state.clamp()

		if state.Offset != state.reported {
			state.reported = state.Offset
			if fn := GetOpt(o, OptOnScroll); fn != nil {
				fn(state.Offset)
			}
		}

		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: w, Y: viewH + hbar})
	}
}

// scrollInput applies wheel and keyboard scrolling while the region is hovered.
func (ctx *Context) scrollInput(id ID, state *ScrollableState, viewport Rect, horizontal, shrink bool) {
	in := ctx.Input
	if in == nil || !ctx.isHovered(id, viewport) {
		return
	}

	wheelX, wheelY := in.MouseWheelX, in.MouseWheelY
	if in.ModShift && wheelX == 0 {
		wheelX, wheelY = wheelY, 0
	}
	if !shrink {
		state.Offset.Y -= wheelY * wheelStep
	}
	if horizontal {
		state.Offset.X -= wheelX * wheelStep
	}

	// A text input editing inside the region owns the keys.
	if ctx.keyboardBlocked(id) {
		state.clamp()
		return
	}

	page := viewport.H * 0.8
	if !shrink {
		if in.KeyPressed(KeyPageDown) {
			state.Offset.Y += page
		}
		if in.KeyPressed(KeyPageUp) {
			state.Offset.Y -= page
		}
		if in.KeyPressed(KeyHome) {
			state.Offset.Y = 0
		}
		if in.KeyPressed(KeyEnd) {
			state.Offset.Y = state.maxOffset().Y
		}
	}
	if horizontal {
		if in.KeyPressed(KeyLeft) {
			state.Offset.X -= wheelStep
		}
		if in.KeyPressed(KeyRight) {
			state.Offset.X += wheelStep
		}
	}
	state.clamp()
}

// scrollbar draws one scrollbar in track and handles thumb dragging and
// track paging.
func (ctx *Context) scrollbar(id ID, state *ScrollableState, a ScrollbarAppearance, axis scrollAxis, track Rect) {
	var content, view, offset, trackLen float32
	if axis == axisVertical {
		content, view, offset, trackLen = state.ContentHeight, state.ViewportHeight, state.Offset.Y, track.H
	} else {
		content, view, offset, trackLen = state.ContentWidth, state.ViewportWidth, state.Offset.X, track.W
	}
	if content <= view || trackLen <= 0 {
		return
	}

	maxOff := content - view
	thumbLen := minf(trackLen, maxf(20, trackLen*view/content))
	thumbPos := (offset / maxOff) * (trackLen - thumbLen)

	thick := a.thumbWidth(minf(track.W, track.H))
	var thumb Rect
	if axis == axisVertical {
		thumb = Rect{X: track.X + (track.W-thick)/2, Y: track.Y + thumbPos, W: thick, H: thumbLen}
	} else {
		thumb = Rect{X: track.X + thumbPos, Y: track.Y + (track.H-thick)/2, W: thumbLen, H: thick}
	}

	thumbID := IDFrom(id, "thumb", int(axis))
	mouse := func() float32 {
		if axis == axisVertical {
			return ctx.Input.MouseY
		}
		return ctx.Input.MouseX
	}

	hovered := false
	if ctx.Input != nil {
		hovered = ctx.isHovered(thumbID, thumb)
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.dragAxis = axis
			state.dragStartMouse = mouse()
			state.dragStartOffset = offset
		}
		if state.dragAxis == axis {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				ctx.CaptureMouse(thumbID, true)
				if free := trackLen - thumbLen; free > 0 {
					offset = state.dragStartOffset + (mouse()-state.dragStartMouse)*(maxOff/free)
				}
			} else {
				state.dragAxis = axisNone
			}
		} else if ctx.isClicked(id, track) {
			// Click on the track pages toward the pointer.
			if mouse() < thumbPos+trackStart(track, axis) {
				offset -= view
			} else {
				offset += view
			}
		}
	}

	if axis == axisVertical {
		state.Offset.Y = offset
	} else {
		state.Offset.X = offset
	}
	state.clamp()

	ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, ctx.style.ScrollbarBgColor)
	color := ctx.style.ScrollbarGrabColor
	if hovered || state.dragAxis == axis {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, color)
}

func trackStart(track Rect, axis scrollAxis) float32 {
	if axis == axisVertical {
		return track.Y
	}
	return track.X
}

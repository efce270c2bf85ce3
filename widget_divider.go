package gui

// dividerGrabMargin widens the grab area on each side of the handle,
// which is usually only a couple of pixels wide.
const dividerGrabMargin float32 = 5

// DividerConfig configures a Divider.
type DividerConfig struct {
	// Width is the total width of the divider including the handle.
	Width float32
	// Thickness is the width of the draggable handle on the trailing edge.
	Thickness float32
	// OnDrag receives the horizontal distance from the press position on
	// every frame the pointer moves during a drag.
	OnDrag func(delta float32)
	// OnRelease is called once when the drag ends.
	OnRelease func()
	// Variant picks the divider appearance from the table catalog.
	Variant TableVariant
}

// dividerState is the per-divider interaction state.
type dividerState struct {
	origin   Vec2 // pointer position at press
	dragging bool
	hovered  bool
	height   float32 // content height from the previous frame
}

var dividerStore = NewFrameStore[dividerState]()

// Divider lays out content in cfg.Width minus a trailing handle strip and
// makes the strip draggable. Dragging reports deltas; it never resizes
// anything itself.
//
// Input is handled before the content renders, so a press that starts a
// drag captures the mouse and the content never sees it. The state lives
// under id and is dropped when the divider is not drawn for a frame.
//
// Usage:
//
//	id := gui.IDFrom(tableID, "divider", col)
//	ctx.Divider(id, gui.DividerConfig{
//	    Width:     width,
//	    Thickness: 2,
//	    OnDrag:    func(d float32) { size.SetResizeOffset(d) },
//	    OnRelease: size.Commit,
//	})(func() {
//	    ctx.Text("Name")
//	})
func (ctx *Context) Divider(id ID, cfg DividerConfig) func(func()) {
	return func(content func()) {
		state := dividerStore.Get(id, dividerState{})
		pos := ctx.ItemPos()

		thickness := maxf(0, cfg.Thickness)
		w := maxf(cfg.Width, thickness)
		handle := Rect{X: pos.X + w - thickness, Y: pos.Y, W: thickness, H: state.height}

		ctx.dividerInput(id, state, handle, cfg)

		ctx.pushLayoutWith(&Layout{Type: LayoutVertical, Width: w - thickness, FixedWidth: true, Tight: true})
		if content != nil {
			content()
		}
		inner := ctx.dropLayout()

		state.height = inner.H
		handle.H = inner.H
		bounds := Rect{X: pos.X, Y: pos.Y, W: w, H: inner.H}

		if ctx.pointerOver(dividerContentRect(bounds)) || state.hovered || state.dragging {
			a := ctx.tableCatalog().Divider(cfg.Variant, state.hovered || state.dragging)
			r := handle.Snap()
			ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, a.Background)
			if a.BorderWidth > 0 {
				ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, a.BorderColor, a.BorderWidth)
			}
		}

		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: w, Y: inner.H})
	}
}

// dividerInput runs the drag state machine for one frame.
// Hover is refreshed first, whatever else happens. A drag starts on a press
// in the grab area and ends only on a release; if the release is never
// delivered the drag stays latched until the next press and release on
// this divider.
func (ctx *Context) dividerInput(id ID, s *dividerState, handle Rect, cfg DividerConfig) {
	in := ctx.Input
	if in == nil {
		return
	}

	s.hovered = ctx.pointerOver(handle.ExpandX(dividerGrabMargin))

	pressed := false
	if s.hovered && in.MouseClicked(MouseButtonLeft) && !ctx.mouseBlocked(id) {
		s.origin = in.MousePos()
		s.dragging = true
		pressed = true
		guiLogger.Debug("divider drag start", "id", id, "origin", s.origin)
	}

	// Motion before release, so the final position is reported before the
	// release tells the caller to commit.
	if s.dragging && !pressed && in.MouseMoved() && cfg.OnDrag != nil {
		delta := in.MouseX - s.origin.X
		if guiVerbose() {
			guiLogger.Debug("divider drag", "id", id, "delta", delta)
		}
		cfg.OnDrag(delta)
	}

	switch {
	case !s.dragging:
	case !in.MouseReleased(MouseButtonLeft):
		ctx.CaptureMouse(id, true)
	default:
		s.dragging = false
		s.origin = Vec2{}
		// Hold the pointer for the rest of this frame so nothing under it
		// reacts to the release.
		ctx.CaptureMouse(id, false)
		guiLogger.Debug("divider drag end", "id", id)
		if cfg.OnRelease != nil {
			cfg.OnRelease()
		}
	}

	if s.dragging || (s.hovered && !ctx.mouseBlocked(id)) {
		ctx.forceMouseCursor(CursorResizeHorizontal)
	}
}

// dividerContentRect is the bounds minus a leading inset the width of the
// grab margin, so the area next to the previous divider's handle does not
// count as this cell.
func dividerContentRect(b Rect) Rect {
	x := maxf(b.X, minf(b.X+dividerGrabMargin, b.X+b.W-dividerGrabMargin))
	return Rect{X: x, Y: b.Y, W: b.X + b.W - x, H: b.H}
}

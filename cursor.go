package gui

// MouseCursor is the pointer shape the GUI asks the backend to show.
type MouseCursor int

const (
	CursorArrow MouseCursor = iota
	CursorHand
	CursorResizeHorizontal
	CursorText
)

// String returns a short name for logs.
func (c MouseCursor) String() string {
	switch c {
	case CursorHand:
		return "hand"
	case CursorResizeHorizontal:
		return "resize-h"
	case CursorText:
		return "text"
	default:
		return "arrow"
	}
}

// SetMouseCursor requests a pointer shape for this frame.
// The last request wins unless a widget forced its cursor earlier in the frame.
func (ctx *Context) SetMouseCursor(c MouseCursor) {
	if ctx.cursorLocked {
		return
	}
	ctx.mouseCursor = c
}

// forceMouseCursor sets the cursor and ignores later SetMouseCursor calls
// for the rest of the frame. Dividers use it so the cell to their right,
// drawn afterwards, cannot replace the resize arrow.
func (ctx *Context) forceMouseCursor(c MouseCursor) {
	ctx.mouseCursor = c
	ctx.cursorLocked = true
}

// MouseCursor returns the cursor requested during the current frame.
func (ctx *Context) MouseCursor() MouseCursor {
	return ctx.mouseCursor
}

// CaptureMouse gives id exclusive use of the pointer.
// While captured, hover and click tests fail for every other widget.
// With persist, the capture carries into the next frame and the owner
// must renew it every frame; without, it only lasts for this frame.
func (ctx *Context) CaptureMouse(id ID, persist bool) {
	ctx.mouseOwner = id
	if persist {
		ctx.mouseOwnerNext = id
	}
	ctx.WantCaptureMouse = true
}

// MouseOwner returns the widget holding the pointer, or 0.
func (ctx *Context) MouseOwner() ID {
	return ctx.mouseOwner
}

// mouseBlocked reports whether another widget holds the pointer.
func (ctx *Context) mouseBlocked(id ID) bool {
	return ctx.mouseOwner != 0 && ctx.mouseOwner != id
}

// rollMouseCapture promotes the capture renewed last frame.
// An owner that stopped renewing (or stopped being drawn) loses it here.
func (ctx *Context) rollMouseCapture() {
	ctx.mouseOwner = ctx.mouseOwnerNext
	ctx.mouseOwnerNext = 0
	if ctx.mouseOwner != 0 {
		ctx.WantCaptureMouse = true
	}
}

// CaptureKeyboard gives id the keys for this frame and the next. The owner
// renews it every frame it wants to keep typing; other widgets that read
// keys skip them while someone else holds the keyboard.
func (ctx *Context) CaptureKeyboard(id ID) {
	ctx.keyboardOwner = id
	ctx.keyboardOwnerNext = id
	ctx.WantCaptureKeyboard = true
}

// keyboardBlocked reports whether another widget holds the keyboard.
func (ctx *Context) keyboardBlocked(id ID) bool {
	return ctx.keyboardOwner != 0 && ctx.keyboardOwner != id
}

func (ctx *Context) rollKeyboardCapture() {
	ctx.keyboardOwner = ctx.keyboardOwnerNext
	ctx.keyboardOwnerNext = 0
	ctx.WantCaptureKeyboard = ctx.keyboardOwner != 0
}

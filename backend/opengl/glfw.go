package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/tablegui"
)

// GLFWInputAdapter feeds GLFW events into a gui.InputState and applies
// the cursor shape the GUI asks for.
//
// Frame protocol:
//
//	adapter.BeginFrame() // resets one-frame flags, then polls events
//	ctx := ui.Begin(adapter.Input(), size, dt)
//	...
//	ui.End()
//	adapter.ApplyCursor(ui.MouseCursor())
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *gui.InputState

	cursors map[gui.MouseCursor]*glfw.Cursor
	current gui.MouseCursor

	// scale converts window coordinates to framebuffer pixels.
	scaleX, scaleY float32
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  gui.NewInputState(),
		cursors: map[gui.MouseCursor]*glfw.Cursor{
			gui.CursorArrow:            glfw.CreateStandardCursor(glfw.ArrowCursor),
			gui.CursorHand:             glfw.CreateStandardCursor(glfw.HandCursor),
			gui.CursorResizeHorizontal: glfw.CreateStandardCursor(glfw.HResizeCursor),
			gui.CursorText:             glfw.CreateStandardCursor(glfw.IBeamCursor),
		},
		scaleX: 1,
		scaleY: 1,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCharCallback(a.charCallback)

	return a
}

// BeginFrame clears last frame's one-shot input and polls GLFW.
// The reset must come before polling, or the events of this frame would
// be wiped before the GUI sees them.
func (a *GLFWInputAdapter) BeginFrame() *gui.InputState {
	a.input.Reset()
	a.updateScale()

	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x)*a.scaleX, float32(y)*a.scaleY)

	a.input.ModCtrl = a.keyHeld(glfw.KeyLeftControl, glfw.KeyRightControl)
	a.input.ModShift = a.keyHeld(glfw.KeyLeftShift, glfw.KeyRightShift)
	a.input.ModAlt = a.keyHeld(glfw.KeyLeftAlt, glfw.KeyRightAlt)

	return a.input
}

// Input returns the input state filled by the last BeginFrame.
func (a *GLFWInputAdapter) Input() *gui.InputState {
	return a.input
}

// ApplyCursor sets the OS cursor, touching GLFW only on change.
func (a *GLFWInputAdapter) ApplyCursor(c gui.MouseCursor) {
	if c == a.current {
		return
	}
	cur, ok := a.cursors[c]
	if !ok {
		cur = a.cursors[gui.CursorArrow]
	}
	a.window.SetCursor(cur)
	a.current = c
}

// Destroy releases the cursor objects.
func (a *GLFWInputAdapter) Destroy() {
	for _, c := range a.cursors {
		if c != nil {
			c.Destroy()
		}
	}
	a.cursors = nil
}

func (a *GLFWInputAdapter) updateScale() {
	ww, wh := a.window.GetSize()
	fw, fh := a.window.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		a.scaleX = float32(fw) / float32(ww)
		a.scaleY = float32(fh) / float32(wh)
	}
}

func (a *GLFWInputAdapter) keyHeld(keys ...glfw.Key) bool {
	for _, k := range keys {
		if a.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToGUIKey(key)
	if k == gui.KeyNone {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Auto-repeat counts as a fresh press, so held Backspace keeps deleting.
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, ch rune) {
	a.input.AddInputChar(ch)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButtonToGUI(button)
	if b < 0 {
		return
	}
	// Update the position first so a press lands where it happened even
	// when no motion event preceded it this frame.
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x)*a.scaleX, float32(y)*a.scaleY)

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.input.SetMousePos(float32(x)*a.scaleX, float32(y)*a.scaleY)
}

// glfwKeyToGUIKey maps the keys scrollable regions and text inputs react to.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyPageUp:
		return gui.KeyPageUp
	case glfw.KeyPageDown:
		return gui.KeyPageDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	default:
		return gui.KeyNone
	}
}

func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}

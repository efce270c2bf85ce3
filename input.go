package gui

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
// Only the keys scrollable regions and text inputs react to are mapped;
// printable characters arrive through InputChars.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	KeyCount
)

// wheelStep is the scroll distance of one mouse wheel notch, in pixels.
const wheelStep float32 = 30

// InputState holds input state for the current frame.
// The backend fills it from GLFW callbacks; tests fill it by hand.
//
// Frame protocol: call Reset before collecting a frame's events. Reset
// clears the one-frame flags (clicked, released, wheel) and remembers the
// mouse position so MouseMoved can report motion for the new frame.
type InputState struct {
	// Mouse position
	MouseX, MouseY float32

	prevMouseX, prevMouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	// InputChars holds the characters typed this frame, in order.
	InputChars []rune

	// Modifiers
	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseMoved returns true if the pointer moved since the last Reset.
func (s *InputState) MouseMoved() bool {
	return s.MouseX != s.prevMouseX || s.MouseY != s.prevMouseY
}

// SetMouseButton sets mouse button state.
// A transition records a click or release for the current frame. Both can
// be recorded in the same frame when a press and release arrive together.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

// SetMouseWheel adds to the mouse wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// AddInputChar records a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

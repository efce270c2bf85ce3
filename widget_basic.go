package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.widgetID(label, o)

	// Calculate size
	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}

	// Apply custom dimensions
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	// State-based coloring
	bgColor := ctx.style.ButtonColor
	hovered := ctx.isHovered(id, rect) && !disabled
	if hovered {
		bgColor = ctx.style.ButtonHoveredColor
		ctx.SetMouseCursor(CursorHand)
	}
	if ctx.isPressed(id, rect) && !disabled {
		bgColor = ctx.style.ButtonActiveColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	// Draw text (centered in button)
	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(textX, textY, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(size)

	return clicked
}

// SmallButton draws a button with minimal padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	savedPadding := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 2
	result := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = savedPadding
	return result
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.widgetID(label, o)

	boxSize := ctx.lineHeight()
	totalWidth := boxSize
	if label != "" {
		totalWidth += ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}
	disabled := GetOpt(o, OptDisabled)

	hovered := ctx.isHovered(id, rect) && !disabled
	boxColor := ctx.style.ButtonColor
	if hovered {
		boxColor = ctx.style.ButtonHoveredColor
		ctx.SetMouseCursor(CursorHand)
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.BorderColor, 1)

	if *value {
		inset := boxSize * 0.25
		ctx.DrawList.AddRect(pos.X+inset, pos.Y+inset, boxSize-2*inset, boxSize-2*inset, ctx.style.CheckColor)
	}

	if label != "" {
		textColor := ctx.style.TextColor
		if disabled {
			textColor = ctx.style.TextDisabledColor
		}
		ctx.AddText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, textColor)
	}

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	ctx.AdvanceCursor(Vec2{X: totalWidth, Y: boxSize})
	return changed
}

// inputTextState is the editing state of one InputText.
type inputTextState struct {
	editing bool
	caret   int     // rune index
	scroll  float32 // text shift that keeps the caret inside the box
	blink   float32
}

var inputTextStore = NewFrameStore[inputTextState]()

// InputText draws a single-line text field after an optional label.
// A click inside starts editing and places the caret; Enter, Escape or a
// click elsewhere stops it. While editing the field holds the keyboard,
// so scrollables around it leave the arrow and paging keys alone.
// The box fills the layout width unless WithWidth is given.
// Returns true if the value changed.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	state := inputTextStore.Get(id, inputTextState{})

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = maxf(0, ctx.currentLayoutWidth()-labelW)
	}
	pad := ctx.style.InputPadding
	h := ctx.lineHeight() + pad*2
	box := Rect{X: pos.X + labelW, Y: pos.Y, W: w, H: h}
	textX := box.X + pad
	inner := maxf(0, w-pad*2)
	disabled := GetOpt(o, OptDisabled)

	runes := []rune(*value)
	state.caret = min(max(state.caret, 0), len(runes))

	if disabled || ctx.keyboardBlocked(id) {
		state.editing = false
	}
	hovered := !disabled && ctx.isHovered(id, box)
	if hovered {
		ctx.SetMouseCursor(CursorText)
	}
	if !disabled && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		if hovered {
			state.editing = true
			state.caret = ctx.caretAt(runes, ctx.Input.MouseX-textX+state.scroll)
			state.blink = 0
		} else {
			state.editing = false
		}
	}

	changed := false
	if state.editing {
		state.blink += ctx.DeltaTime
		if ctx.Input != nil && state.edit(ctx.Input, &runes) {
			*value = string(runes)
			changed = true
		}
	}
	if state.editing {
		ctx.CaptureKeyboard(id)
	}

	caretX := ctx.MeasureText(string(runes[:state.caret])).X
	if !state.editing {
		state.scroll = 0
	}
	if caretX-state.scroll > inner {
		state.scroll = caretX - inner
	}
	if caretX < state.scroll {
		state.scroll = caretX
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	if label != "" {
		ctx.AddText(pos.X, pos.Y+pad, label, textColor)
	}
	bg := ctx.style.InputBgColor
	if state.editing {
		bg = ctx.style.InputEditingBgColor
	}
	ctx.DrawList.AddRect(box.X, box.Y, w, h, bg)
	ctx.DrawList.AddRectOutline(box.X, box.Y, w, h, ctx.style.InputBorderColor, 1)

	ctx.DrawList.PushClipRect(textX, box.Y, textX+inner, box.Y+h)
	ctx.AddText(textX-state.scroll, box.Y+pad, string(runes), textColor)
	ctx.DrawList.PopClipRect()

	// Blink every half second.
	if state.editing && int(state.blink*2)%2 == 0 {
		x := textX + caretX - state.scroll
		ctx.DrawList.AddLine(x, box.Y+2, x, box.Y+h-2, ctx.style.TextColor, 1)
	}

	ctx.AdvanceCursor(Vec2{X: labelW + w, Y: h})
	return changed
}

// edit applies this frame's keys and typed characters to runes.
// Enter and Escape end editing; characters typed in the same frame are
// dropped. Returns true if runes changed.
func (s *inputTextState) edit(in *InputState, runes *[]rune) bool {
	if in.KeyPressed(KeyEnter) || in.KeyPressed(KeyEscape) {
		s.editing = false
		return false
	}

	r := *runes
	changed := false
	moved := true
	switch {
	case in.KeyPressed(KeyLeft) && s.caret > 0:
		s.caret--
	case in.KeyPressed(KeyRight) && s.caret < len(r):
		s.caret++
	case in.KeyPressed(KeyHome):
		s.caret = 0
	case in.KeyPressed(KeyEnd):
		s.caret = len(r)
	case in.KeyPressed(KeyBackspace) && s.caret > 0:
		r = append(r[:s.caret-1], r[s.caret:]...)
		s.caret--
		changed = true
	case in.KeyPressed(KeyDelete) && s.caret < len(r):
		r = append(r[:s.caret], r[s.caret+1:]...)
		changed = true
	default:
		moved = false
	}

	for _, ch := range in.InputChars {
		if ch < 32 || ch == 127 {
			continue
		}
		r = append(r[:s.caret], append([]rune{ch}, r[s.caret:]...)...)
		s.caret++
		changed = true
	}

	if moved || changed {
		s.blink = 0
	}
	*runes = r
	return changed
}

// caretAt returns the rune index whose boundary is nearest to x, with x
// measured from the start of the text.
func (ctx *Context) caretAt(runes []rune, x float32) int {
	var prev float32
	for i := 1; i <= len(runes); i++ {
		w := ctx.MeasureText(string(runes[:i])).X
		if x < (prev+w)/2 {
			return i - 1
		}
		prev = w
	}
	return len(runes)
}

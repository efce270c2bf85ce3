package gui

// comboState is the dropdown state of one ComboBox.
type comboState struct {
	open    bool
	hovered int // item under the pointer, -1 for none
	active  int // item reached with Up/Down, taken by Enter
}

var comboStore = NewFrameStore[comboState]()

// ComboBox draws a dropdown selection widget after an optional label.
// Returns true if the selection changed.
//
// The open list goes on the foreground draw list, so it covers the
// widgets below it and is not clipped by the scrollable it sits in. While
// open the combo holds the pointer and the keyboard: a click on an item
// selects it, any other click or Escape closes the list, and Up/Down
// followed by Enter picks from the keyboard.
//
// Usage:
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) ComboBox(label string, selected *int, items []string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	state := comboStore.Get(id, comboState{hovered: -1, active: -1})

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
	header := Rect{X: pos.X + labelW, Y: pos.Y, W: w, H: h}

	itemH := ctx.lineHeight() + ctx.style.ItemSpacing
	drop := pos.Add(Vec2{X: labelW, Y: h})
	list := Rect{X: drop.X, Y: drop.Y, W: w, H: float32(len(items)) * itemH}

	disabled := GetOpt(o, OptDisabled)
	wasOpen := state.open && !disabled
	state.open = wasOpen

	changed := false
	choose := func(i int) {
		if i != *selected {
			*selected = i
			changed = true
		}
		state.open = false
	}

	hovered := !disabled && ctx.isHovered(id, header)
	if hovered {
		ctx.SetMouseCursor(CursorHand)
	}
	in := ctx.Input

	switch {
	case !disabled && ctx.isClicked(id, header):
		state.open = !state.open
		state.active = *selected
	case state.open && in != nil && !ctx.mouseBlocked(id):
		state.hovered = -1
		if p := in.MousePos(); list.Contains(p) {
			state.hovered = min(int((p.Y-list.Y)/itemH), len(items)-1)
		}
		switch {
		case in.MouseClicked(MouseButtonLeft) && state.hovered >= 0:
			choose(state.hovered)
		case in.MouseClicked(MouseButtonLeft), in.KeyPressed(KeyEscape):
			state.open = false
		case in.KeyPressed(KeyEnter) && state.active >= 0 && state.active < len(items):
			choose(state.active)
		case in.KeyPressed(KeyUp) && len(items) > 0:
			state.active = max(0, state.active-1)
		case in.KeyPressed(KeyDown) && len(items) > 0:
			state.active = min(len(items)-1, state.active+1)
		}
	}

	if state.open {
		ctx.CaptureMouse(id, true)
		ctx.CaptureKeyboard(id)
	} else if wasOpen {
		// The closing click is ours for the rest of the frame.
		ctx.CaptureMouse(id, false)
		guiLogger.Debug("combo closed", "id", id, "selected", *selected, "changed", changed)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	if label != "" {
		ctx.AddText(pos.X, pos.Y+pad, label, textColor)
	}

	bg := ctx.style.ButtonColor
	if hovered || state.open {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(header.X, header.Y, w, h, bg)
	ctx.DrawList.AddRectOutline(header.X, header.Y, w, h, ctx.style.InputBorderColor, 1)

	arrow := ctx.lineHeight()
	if *selected >= 0 && *selected < len(items) {
		shown := TruncateText(ctx, items[*selected], maxf(0, w-arrow-pad*3))
		ctx.AddText(header.X+pad, header.Y+pad, shown, textColor)
	}

	ax := header.X + w - pad - arrow
	ay := header.Y + h/2
	if state.open {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay-arrow/4, ax, ay+arrow/4, ax+arrow, ay+arrow/4, textColor)
	} else {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay+arrow/4, ax, ay-arrow/4, ax+arrow, ay-arrow/4, textColor)
	}

	if state.open {
		ctx.drawComboList(state, list, items, *selected, itemH)
	}

	ctx.AdvanceCursor(Vec2{X: labelW + w, Y: h})
	return changed
}

// drawComboList draws the open dropdown on the foreground draw list.
func (ctx *Context) drawComboList(state *comboState, list Rect, items []string, selected int, itemH float32) {
	fg := ctx.ForegroundDrawList
	if fg == nil {
		fg = ctx.DrawList
	}
	fg.AddRect(list.X, list.Y, list.W, list.H, ctx.style.PopupBgColor)

	pad := ctx.style.InputPadding
	for i, item := range items {
		y := list.Y + float32(i)*itemH
		switch {
		case i == selected, i == state.active:
			fg.AddRect(list.X, y, list.W, itemH, ctx.style.SelectedBgColor)
		case i == state.hovered:
			fg.AddRect(list.X, y, list.W, itemH, ctx.style.HoveredBgColor)
		}
		shown := TruncateText(ctx, item, maxf(0, list.W-pad*2))
		ctx.AddTextTo(fg, list.X+pad, y+ctx.style.ItemSpacing/2, shown, ctx.style.TextColor)
	}

	fg.AddRectOutline(list.X, list.Y, list.W, list.H, ctx.style.InputBorderColor, 1)
}

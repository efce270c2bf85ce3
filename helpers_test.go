package gui

// frameDriver runs frames on a bare Context, the way GUI.Begin/End do,
// without a renderer.
type frameDriver struct {
	ctx  *Context
	in   *InputState
	size Vec2
}

func newFrameDriver(w, h float32) *frameDriver {
	ctx := NewContext()
	ctx.SetStyle(DefaultStyle())
	return &frameDriver{ctx: ctx, in: NewInputState(), size: Vec2{X: w, Y: h}}
}

// frame resets one-frame input, lets events fill it, then draws.
func (d *frameDriver) frame(events func(in *InputState), draw func(ctx *Context)) {
	d.in.Reset()
	if events != nil {
		events(d.in)
	}
	d.ctx.DrawList = AcquireDrawList()
	d.ctx.ForegroundDrawList = AcquireDrawList()
	d.ctx.Input = d.in
	d.ctx.Reset(d.size, 1.0/60)
	draw(d.ctx)
	ReleaseDrawList(d.ctx.DrawList)
	ReleaseDrawList(d.ctx.ForegroundDrawList)
	d.ctx.DrawList = nil
	d.ctx.ForegroundDrawList = nil
}

func moveTo(x, y float32) func(*InputState) {
	return func(in *InputState) { in.SetMousePos(x, y) }
}

func pressAt(x, y float32) func(*InputState) {
	return func(in *InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(MouseButtonLeft, true)
	}
}

func releaseAt(x, y float32) func(*InputState) {
	return func(in *InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(MouseButtonLeft, false)
	}
}

// clickAt presses the left button at x, y even if it is still held from
// an earlier frame.
func clickAt(x, y float32) func(*InputState) {
	return func(in *InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(MouseButtonLeft, false)
		in.SetMouseButton(MouseButtonLeft, true)
	}
}

func tapKey(k Key) func(*InputState) {
	return func(in *InputState) {
		in.SetKey(k, false)
		in.SetKey(k, true)
	}
}

func typeText(s string) func(*InputState) {
	return func(in *InputState) {
		for _, r := range s {
			in.AddInputChar(r)
		}
	}
}

// events combines several event functions into one frame.
func events(fns ...func(*InputState)) func(*InputState) {
	return func(in *InputState) {
		for _, fn := range fns {
			fn(in)
		}
	}
}

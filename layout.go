package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing (Tailwind-style)
	Gap      float32 // Space between children (gap-*)
	GapX     float32 // Horizontal gap override
	GapY     float32 // Vertical gap override
	Padding  float32 // Inner padding (p-*)
	PaddingX float32 // Horizontal padding override
	PaddingY float32 // Vertical padding override

	// Tight packs children with no gap at all. A zero Gap means
	// "use the style spacing", so zero needs its own switch.
	Tight bool

	// FixedWidth keeps Width as given, zero included. Otherwise a zero
	// Width inherits the parent's.
	FixedWidth bool

	// State
	ItemCount int // For gap calculation
}

// itemGap resolves the spacing placed before the next child.
func (l *Layout) itemGap(def float32) float32 {
	if l.Tight {
		return 0
	}
	gap := l.GapY
	if l.Type == LayoutHorizontal {
		gap = l.GapX
	}
	if gap == 0 {
		gap = l.Gap
	}
	if gap == 0 {
		gap = def
	}
	return gap
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children (like Tailwind gap-*).
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// GapX sets horizontal spacing (like Tailwind gap-x-*).
func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

// GapY sets vertical spacing (like Tailwind gap-y-*).
func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

// Tight removes all spacing between children.
func Tight() LayoutOption {
	return func(l *Layout) { l.Tight = true }
}

// Padding sets inner padding (like Tailwind p-*).
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayoutWith starts layout at the cursor and pushes it.
// Zero sizes inherit the parent's available size, except a FixedWidth.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 && !layout.FixedWidth {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// dropLayout pops the current layout and returns its content bounds
// without reporting anything to the parent. Containers that add their
// own chrome (padding, fixed widths) report their outer size themselves.
func (ctx *Context) dropLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
}

// popLayout pops the current layout and treats its bounds as a single
// item in the parent.
func (ctx *Context) popLayout() Rect {
	bounds := ctx.dropLayout()
	ctx.cursor = Vec2{X: bounds.X, Y: bounds.Y}
	ctx.AdvanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	return bounds
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.Button("OK")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.beginItem()
		layout := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Box lays out contents in a column of exactly width, inset by pad.
// The box always reports width to its parent, however wide the content is,
// so a row of boxes lines up like table cells. Height follows the content.
//
// Usage:
//
//	ctx.HStack(Tight())(func() {
//	    ctx.Box(120, UniformInsets(4))(func() { ctx.Text("Name") })
//	    ctx.Box(60, UniformInsets(4))(func() { ctx.Text("Age") })
//	})
func (ctx *Context) Box(width float32, pad Insets) func(func()) {
	return func(contents func()) {
		pos := ctx.ItemPos()
		ctx.cursor = Vec2{X: pos.X + pad.Left, Y: pos.Y + pad.Top}
		ctx.pushLayoutWith(&Layout{
			Type:       LayoutVertical,
			Width:      maxf(0, width-pad.Horizontal()),
			FixedWidth: true,
			Gap:        ctx.style.ItemSpacing,
		})
		if contents != nil {
			contents()
		}
		inner := ctx.dropLayout()
		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: width, Y: inner.H + pad.Vertical()})
	}
}

// Spacer reserves an empty w by h item in the current layout.
func (ctx *Context) Spacer(w, h float32) {
	ctx.ItemPos()
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
}

// Panel draws a panel with a title and content.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Options", Gap(8), Padding(12))(func() {
//	    ctx.Text("Hello")
//	    ctx.Button("Click")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}

		padX := layout.PaddingX
		if padX == 0 {
			padX = layout.Padding
		}
		padY := layout.PaddingY
		if padY == 0 {
			padY = layout.Padding
		}

		// 0 means auto-size to content
		userWidth := layout.Width
		userHeight := layout.Height

		start := ctx.ItemPos()

		// Background goes first in draw order but is sized after the content.
		bg := ctx.DrawList.ReserveRect()

		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH
		// Panel content sizes itself; its own padding is already applied.
		layout.Padding, layout.PaddingX, layout.PaddingY = 0, 0, 0
		if layout.Width > 0 {
			layout.Width = maxf(0, layout.Width-padX*2)
		}
		ctx.pushLayoutWith(layout)
		contents()
		bounds := ctx.dropLayout()

		panelW := maxf(bounds.W+padX*2, userWidth)
		panelH := maxf(bounds.H+padY*2+headerH, userHeight)

		ctx.DrawList.FillReservedRect(bg, start.X, start.Y, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(start.X, start.Y, panelW, headerH, ctx.style.PanelHeaderBgColor)
			textY := start.Y + (headerH-ctx.lineHeight())/2
			ctx.AddText(start.X+padX, textY, title, ctx.style.TextColor)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(start.X, start.Y, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if ctx.pointerOver(Rect{X: start.X, Y: start.Y, W: panelW, H: panelH}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = start
		ctx.AdvanceCursor(Vec2{X: panelW, Y: panelH})
	}
}

package gui

import "github.com/mattn/go-runewidth"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
// Using a dedicated type avoids type assertions and map lookups,
// providing better performance and type safety.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Popups, rendered after DrawList and unclipped

	// Styling
	style      Style
	styleStack []Style // For PushStyle/PopStyle

	// defaultTables is derived from style when Style.Tables is nil.
	defaultTables TableTheme

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack   []ID
	idCounter uint32 // Auto-increment for call-site IDs

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer) for the built-in font
	FontTextureID uint32

	// FontProvider for advanced font support (optional, interface-based)
	fontProvider FontProvider

	// WantCaptureMouse tells the application the pointer is over the GUI
	// or held by a GUI widget, so it should not act on the mouse itself.
	WantCaptureMouse bool

	// Pointer shape and capture (see cursor.go)
	mouseCursor    MouseCursor
	cursorLocked   bool
	mouseOwner     ID
	mouseOwnerNext ID

	// WantCaptureKeyboard tells the application a text widget is taking
	// keys this frame.
	WantCaptureKeyboard bool
	keyboardOwner       ID
	keyboardOwnerNext   ID

	// viewportStack holds the visible area of each nested clipping
	// container. Hit tests outside the top entry fail.
	viewportStack []Rect

	// Scrollable bookkeeping (see widget_scrollable.go)
	scrollableIDs  map[string]ID
	pendingScrolls map[string]AbsoluteOffset

	// Reused between AddText calls to avoid per-call allocations.
	glyphBuffer []GlyphQuad

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		viewportStack:    make([]Rect, 0, 8),
		scrollableIDs:    make(map[string]ID),
		pendingScrolls:   make(map[string]AbsoluteOffset),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
	ctx.defaultTables = nil
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// StyleColorField identifies a color field in Style for PushStyleColor.
type StyleColorField int

const (
	StyleColorText StyleColorField = iota
	StyleColorButton
	StyleColorPanel
)

// PushStyleColor temporarily overrides a single color.
// Pair it with PopStyle.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) {
	ctx.PushStyle(ctx.style)
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorPanel:
		ctx.style.PanelColor = color
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Advance frame counter and clean up stale FrameStore entries
	NextFrame()

	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	if len(ctx.styleStack) > 0 {
		// Unbalanced PushStyle last frame; fall back to the base style.
		ctx.style = ctx.styleStack[0]
	}
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.viewportStack = ctx.viewportStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.WantCaptureMouse = false
	ctx.mouseCursor = CursorArrow
	ctx.cursorLocked = false
	ctx.rollMouseCapture()
	ctx.rollKeyboardCapture()

	clear(ctx.textMeasureCache)
}

// pointerOver reports whether the mouse is inside rect and inside the
// visible part of the enclosing clip container. Capture is ignored.
func (ctx *Context) pointerOver(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.Input.MousePos()
	if n := len(ctx.viewportStack); n > 0 && !ctx.viewportStack[n-1].Contains(p) {
		return false
	}
	return rect.Contains(p)
}

// isHovered returns true if the widget area is under the mouse cursor
// and no other widget holds the pointer.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.mouseBlocked(id) {
		return false
	}
	return ctx.pointerOver(rect)
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && guiVerbose() {
		guiLogger.Debug("click test",
			"id", id,
			"hit", hovered,
			"rect", rect,
			"mouse", ctx.Input.MousePos(),
			"owner", ctx.mouseOwner)
	}

	return hovered && clicked
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// pushViewport narrows the hit-test area to r intersected with the current one.
func (ctx *Context) pushViewport(r Rect) {
	if n := len(ctx.viewportStack); n > 0 {
		r = intersectRect(ctx.viewportStack[n-1], r)
	}
	ctx.viewportStack = append(ctx.viewportStack, r)
}

func (ctx *Context) popViewport() {
	if n := len(ctx.viewportStack); n > 0 {
		ctx.viewportStack = ctx.viewportStack[:n-1]
	}
}

func intersectRect(a, b Rect) Rect {
	x0 := maxf(a.X, b.X)
	y0 := maxf(a.Y, b.Y)
	x1 := minf(a.X+a.W, b.X+b.W)
	y1 := minf(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: maxf(0, x1-x0), H: maxf(0, y1-y0)}
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
// Uses the font provider if available, otherwise falls back to CharHeight * FontScale.
func (ctx *Context) lineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Uses the font provider if available. The built-in font is a fixed cell
// grid, so the fallback counts terminal-style cells: wide runes take two.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		size := f.MeasureText(text, ctx.style.FontScale)
		result = Vec2{X: size.X, Y: size.Y}
	} else {
		charW := ctx.style.CharWidth * ctx.style.FontScale
		charH := ctx.style.CharHeight * ctx.style.FontScale
		result = Vec2{X: float32(runewidth.StringWidth(text)) * charW, Y: charH}
	}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// activeFont returns the current active font, or nil if no font provider is set.
func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider sets the font provider for advanced font support.
// Pass nil to use the built-in monospace font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2 - layout.PaddingX*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout (public API).
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// currentLayoutHeight returns the available height in the current layout.
func (ctx *Context) currentLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Height - layout.Padding*2 - layout.PaddingY*2
	}
	return ctx.DisplaySize.Y
}

// remainingLayoutHeight is the height left below the cursor in the
// current layout, never negative.
func (ctx *Context) remainingLayoutHeight() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		used := ctx.cursor.Y - layout.StartY
		return maxf(0, ctx.currentLayoutHeight()-used)
	}
	return maxf(0, ctx.DisplaySize.Y-ctx.cursor.Y)
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// AddText draws text with current style (public API).
// Uses the font provider if available, otherwise falls back to built-in monospace font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into a specific DrawList, such as the foreground
// list popups use.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	if f := ctx.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		fontQuads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)

		if cap(ctx.glyphBuffer) < len(fontQuads) {
			ctx.glyphBuffer = make([]GlyphQuad, 0, len(fontQuads)*2)
		}
		ctx.glyphBuffer = ctx.glyphBuffer[:len(fontQuads)]

		for i, q := range fontQuads {
			ctx.glyphBuffer[i] = GlyphQuad{
				X0: q.X0, Y0: q.Y0,
				X1: q.X1, Y1: q.Y1,
				U0: q.U0, V0: q.V0,
				U1: q.U1, V1: q.V1,
			}
		}
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}

	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// beginItem applies gap spacing before drawing an item.
// Call this before drawing any widget to ensure proper spacing.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	gap := layout.itemGap(ctx.style.ItemSpacing)
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
// This is the recommended way for widgets to get their drawing position.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X-layout.StartX+size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, ctx.cursor.Y-layout.StartY+size.Y)
	}

	layout.ItemCount++
}

// tableCatalog returns the catalog tables draw with.
func (ctx *Context) tableCatalog() TableCatalog {
	if ctx.style.Tables != nil {
		return ctx.style.Tables
	}
	if ctx.defaultTables == nil {
		ctx.defaultTables = DefaultTableTheme(ctx.style)
	}
	return ctx.defaultTables
}

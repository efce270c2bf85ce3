package gui

// Defaults for a new Table.
const (
	DefaultMinColumnWidth float32 = 4
	DefaultDividerWidth   float32 = 2
	DefaultCellPadding    float32 = 4
)

// tableState persists table measurements between frames.
type tableState struct {
	footerHeight float32
}

var tableStore = NewFrameStore[tableState]()

// Table renders rows of R through columns of C as three stacked scrollable
// regions: a header, a body and an optional footer. Only the body takes
// user scrolling; the header and footer follow it horizontally when the
// caller forwards the sync notification to ScrollTo.
//
// Column widths are owned by the caller. With OnColumnResize set, header
// and footer cells get draggable dividers that report the new width of a
// column as a delta from its committed width, then a single release once
// the drag ends. The caller stores the delta as a resize offset while the
// drag runs and folds it in on release (see ColumnSize).
//
// Build a Table each frame and render it:
//
//	gui.NewTable("hdr", "body", columns, rows, func(off gui.AbsoluteOffset) {
//	    app.offset = off
//	}).
//	    Footer("ftr").
//	    OnColumnResize(app.resizing, app.resized).
//	    Render(ctx)
//	ctx.ScrollTo("hdr", app.offset)
//	ctx.ScrollTo("ftr", app.offset)
//
// The sync callback runs while the body renders, after the header has
// already been drawn. Calling ScrollTo from inside the callback moves the
// footer in the same frame but the header only in the next one. Queueing
// both after Render, as above, moves them together on the next frame.
type Table[R any, C Column[R]] struct {
	header, body, footer string

	columns []C
	rows    []R

	onSync    func(AbsoluteOffset)
	onDrag    func(col int, delta float32)
	onRelease func()
	resizable bool

	minWidth       float32
	minColumnWidth float32
	dividerWidth   float32
	cellPadding    Insets
	variant        TableVariant
	scrollbar      ScrollbarAppearance
	height         float32
}

// NewTable creates a table over columns and rows. header and body name the
// Scrollables of those regions; onSync receives the body's horizontal
// offset whenever the body scrolls, with Y always zero.
func NewTable[R any, C Column[R]](header, body string, columns []C, rows []R, onSync func(AbsoluteOffset)) *Table[R, C] {
	return &Table[R, C]{
		header:         header,
		body:           body,
		columns:        columns,
		rows:           rows,
		onSync:         onSync,
		minColumnWidth: DefaultMinColumnWidth,
		dividerWidth:   DefaultDividerWidth,
		cellPadding:    UniformInsets(DefaultCellPadding),
		scrollbar:      DefaultScrollbar(),
	}
}

// OnColumnResize enables divider dragging. drag receives the column index
// and its width delta on each pointer move; release is called when the
// drag ends.
func (t *Table[R, C]) OnColumnResize(drag func(col int, delta float32), release func()) *Table[R, C] {
	t.onDrag = drag
	t.onRelease = release
	t.resizable = true
	return t
}

// Footer enables the footer, rendered in the Scrollable with this name.
func (t *Table[R, C]) Footer(name string) *Table[R, C] {
	t.footer = name
	return t
}

// MinWidth pads the table with a blank trailing cell up to w.
func (t *Table[R, C]) MinWidth(w float32) *Table[R, C] {
	t.minWidth = w
	return t
}

// MinColumnWidth sets the narrowest a column can become.
func (t *Table[R, C]) MinColumnWidth(w float32) *Table[R, C] {
	t.minColumnWidth = w
	return t
}

// DividerWidth sets the divider handle thickness.
func (t *Table[R, C]) DividerWidth(w float32) *Table[R, C] {
	t.dividerWidth = w
	return t
}

// CellPadding sets the padding inside every cell.
func (t *Table[R, C]) CellPadding(p Insets) *Table[R, C] {
	t.cellPadding = p
	return t
}

// Style picks the palette variant from the context's table catalog.
func (t *Table[R, C]) Style(v TableVariant) *Table[R, C] {
	t.variant = v
	return t
}

// Scrollbar sets the body's scrollbar appearance.
func (t *Table[R, C]) Scrollbar(a ScrollbarAppearance) *Table[R, C] {
	t.scrollbar = a
	return t
}

// Height fixes the body height. 0 fills the remaining layout height.
func (t *Table[R, C]) Height(h float32) *Table[R, C] {
	t.height = h
	return t
}

// EffectiveWidths returns the layout width of every column.
func (t *Table[R, C]) EffectiveWidths() []float32 {
	widths := make([]float32, len(t.columns))
	for i, c := range t.columns {
		widths[i] = columnEffectiveWidth[R](c, t.minColumnWidth)
	}
	return widths
}

// FillerWidth returns the width of the trailing blank cell.
func (t *Table[R, C]) FillerWidth() float32 {
	return FillerWidth(t.EffectiveWidths(), t.minWidth)
}

// TotalWidth returns the rendered width of a row.
func (t *Table[R, C]) TotalWidth() float32 {
	widths := t.EffectiveWidths()
	var sum float32
	for _, w := range widths {
		sum += w
	}
	return sum + FillerWidth(widths, t.minWidth)
}

// tableFrame is what one Render call works from. Widths are captured
// before any callback can run, so a callback that changes caller state
// mid-frame cannot tear the frame.
type tableFrame struct {
	id        ID
	widths    []float32
	committed []float32
	filler    float32
}

// Render implements Component.
func (t *Table[R, C]) Render(ctx *Context) {
	f := tableFrame{
		id:        IDFrom(ctx.CurrentID(), t.body, 0),
		widths:    t.EffectiveWidths(),
		committed: make([]float32, len(t.columns)),
	}
	for i, c := range t.columns {
		f.committed[i] = c.Width()
	}
	f.filler = FillerWidth(f.widths, t.minWidth)

	state := tableStore.Get(f.id, tableState{})
	available := ctx.remainingLayoutHeight()

	// Header and footer stop where the body's scrollbar starts, so all
	// three regions share the same maximum offset.
	edgeOpts := []Option{
		EnableHorizontal(),
		WithScrollbar(HiddenScrollbar()),
		WithUserScroll(false),
	}
	if bs := GetScrollableState(ctx, t.body); bs != nil && bs.ViewportWidth > 0 {
		edgeOpts = append(edgeOpts, WithWidth(bs.ViewportWidth))
	}

	ctx.PushRawID(f.id)
	defer ctx.PopID()

	ctx.VStack(Tight())(func() {
		top := ctx.cursor.Y

		ctx.Scrollable(t.header, 0, edgeOpts...)(func() {
			ctx.TableRegion(HeaderRole(), t.variant)(func() {
				for i, c := range t.columns {
					t.edgeCell(ctx, &f, "header", i, c.Header(i))
				}
				t.fillerCell(ctx, &f)
			})
		})

		bodyH := t.height
		if bodyH <= 0 {
			used := ctx.cursor.Y - top
			if t.footer != "" {
				used += state.footerHeight
			}
			// Never zero: a zero height would make the body shrink-to-fit.
			bodyH = maxf(1, available-used)
		}

		ctx.Scrollable(t.body, bodyH,
			EnableHorizontal(),
			WithScrollbar(t.scrollbar),
			OnScroll(t.sync),
		)(func() {
			ctx.VStack(Tight())(func() {
				for r, row := range t.rows {
					t.bodyRow(ctx, &f, r, row)
				}
			})
		})

		if t.footer == "" {
			state.footerHeight = 0
			return
		}
		footerTop := ctx.cursor.Y
		ctx.Scrollable(t.footer, 0, edgeOpts...)(func() {
			ctx.TableRegion(FooterRole(), t.variant)(func() {
				for i, c := range t.columns {
					t.edgeCell(ctx, &f, "footer", i, c.Footer(i, t.rows))
				}
				t.fillerCell(ctx, &f)
			})
		})
		state.footerHeight = ctx.cursor.Y - footerTop
	})
}

// sync forwards a body scroll to the caller, horizontal part only.
func (t *Table[R, C]) sync(off AbsoluteOffset) {
	if t.onSync == nil {
		return
	}
	guiLogger.Debug("table scroll sync", "body", t.body, "x", off.X)
	t.onSync(AbsoluteOffset{X: off.X})
}

// edgeCell renders one header or footer cell: padded content followed by
// a divider handle, or a plain gap of the same width when resizing is off.
// A nil content renders blank.
func (t *Table[R, C]) edgeCell(ctx *Context, f *tableFrame, region string, col int, content Component) {
	width, gap := f.widths[col], t.gap(f.widths[col])
	cell := func() {
		ctx.Box(width-gap, t.cellPadding)(func() {
			renderCell(ctx, content)
		})
	}

	if !t.resizable {
		cell()
		ctx.Spacer(gap, 0)
		return
	}

	committed := f.committed[col]
	ctx.Divider(IDFrom(f.id, region+"-divider", col), DividerConfig{
		Width:     width,
		Thickness: gap,
		Variant:   t.variant,
		OnDrag: func(delta float32) {
			if t.onDrag != nil {
				t.onDrag(col, ResizedDelta(committed, delta, t.minColumnWidth))
			}
		},
		OnRelease: t.onRelease,
	})(cell)
}

// bodyRow renders one banded row. Body cells have no dividers, only the
// matching gap, so their columns line up with the header's.
func (t *Table[R, C]) bodyRow(ctx *Context, f *tableFrame, r int, row R) {
	ctx.PushRawID(IDFrom(f.id, "row", r))
	defer ctx.PopID()

	ctx.TableRegion(BodyRole(r), t.variant)(func() {
		for i, c := range t.columns {
			gap := t.gap(f.widths[i])
			ctx.Box(f.widths[i]-gap, t.cellPadding)(func() {
				renderCell(ctx, c.Cell(i, r, row))
			})
			ctx.Spacer(gap, 0)
		}
		t.fillerCell(ctx, f)
	})
}

// gap is the divider strip of a column of the given width. A column
// narrower than the divider is all divider, so rows stay TotalWidth wide.
func (t *Table[R, C]) gap(width float32) float32 {
	return clampf(t.dividerWidth, 0, maxf(0, width))
}

func (t *Table[R, C]) fillerCell(ctx *Context, f *tableFrame) {
	if f.filler > 0 {
		ctx.Spacer(f.filler, 0)
	}
}

// renderCell renders content, or a line-high blank for nil so empty
// cells still give the row its height.
func renderCell(ctx *Context, content Component) {
	if content == nil {
		content = Blank{}
	}
	content.Render(ctx)
}

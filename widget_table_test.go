package gui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/tablegui"
)

type testRow struct {
	name    string
	enabled bool
}

// testColumn is a text column. With footer set it shows the number of
// enabled rows, otherwise its footer slot stays blank.
type testColumn struct {
	gui.ColumnSize
	title  string
	footer bool
}

func (c *testColumn) Header(int) gui.Component { return gui.Label{Text: c.title} }

func (c *testColumn) Cell(_, row int, data testRow) gui.Component {
	return gui.Label{Text: fmt.Sprintf("%d %s", row, data.name)}
}

func (c *testColumn) Footer(_ int, rows []testRow) gui.Component {
	if !c.footer {
		return nil
	}
	n := 0
	for _, r := range rows {
		if r.enabled {
			n++
		}
	}
	return gui.Label{Text: fmt.Sprintf("Total: %d", n)}
}

// demoWidths are the column widths of the demo table.
var demoWidths = []float32{60, 100, 155, 400, 100}

func newColumns(widths ...float32) []*testColumn {
	cols := make([]*testColumn, len(widths))
	for i, w := range widths {
		cols[i] = &testColumn{ColumnSize: gui.NewColumnSize(w), title: fmt.Sprintf("C%d", i)}
	}
	return cols
}

func newRows(n int) []testRow {
	rows := make([]testRow, n)
	for i := range rows {
		rows[i] = testRow{name: "row", enabled: i%5 < 4}
	}
	return rows
}

// uiDriver runs GUI frames against a mock renderer.
type uiDriver struct {
	ui   *gui.GUI
	in   *gui.InputState
	size gui.Vec2
	ctx  *gui.Context
}

func newUIDriver(w, h float32) *uiDriver {
	return &uiDriver{ui: gui.New(&mockRenderer{}), in: gui.NewInputState(), size: gui.Vec2{X: w, Y: h}}
}

func (d *uiDriver) frame(t *testing.T, events func(in *gui.InputState), draw func(ctx *gui.Context)) {
	t.Helper()
	d.in.Reset()
	if events != nil {
		events(d.in)
	}
	d.ctx = d.ui.Begin(d.in, d.size, 1.0/60)
	draw(d.ctx)
	require.NoError(t, d.ui.End())
}

func mouseAt(x, y float32) func(*gui.InputState) {
	return func(in *gui.InputState) { in.SetMousePos(x, y) }
}

func mousePress(x, y float32) func(*gui.InputState) {
	return func(in *gui.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(gui.MouseButtonLeft, true)
	}
}

func mouseRelease(x, y float32) func(*gui.InputState) {
	return func(in *gui.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(gui.MouseButtonLeft, false)
	}
}

// resizeRecorder wires OnColumnResize to a set of columns the way an
// application would, recording every notification.
type resizeRecorder struct {
	cols     []*testColumn
	drags    [][2]float32
	releases int
}

func (r *resizeRecorder) drag(col int, delta float32) {
	r.drags = append(r.drags, [2]float32{float32(col), delta})
	r.cols[col].SetResizeOffset(delta)
}

func (r *resizeRecorder) release() {
	r.releases++
	for _, c := range r.cols {
		c.Commit()
	}
}

func TestTableWidthsWithoutFiller(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(1200, 600)

	var table *gui.Table[testRow, *testColumn]
	d.frame(t, nil, func(ctx *gui.Context) {
		table = gui.NewTable("a-header", "a-body", cols, newRows(10), nil)
		table.Render(ctx)
	})

	assert.Equal(t, demoWidths, table.EffectiveWidths())
	assert.Equal(t, float32(815), table.TotalWidth())
	assert.Zero(t, table.FillerWidth())

	body := gui.GetScrollableState(d.ctx, "a-body")
	require.NotNil(t, body)
	assert.Equal(t, float32(815), body.ContentWidth)
}

func TestTableMinWidthAddsFiller(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(1200, 600)

	var table *gui.Table[testRow, *testColumn]
	d.frame(t, nil, func(ctx *gui.Context) {
		table = gui.NewTable("c-header", "c-body", cols, newRows(10), nil).MinWidth(1000)
		table.Render(ctx)
	})

	assert.Equal(t, float32(185), table.FillerWidth())
	assert.Equal(t, float32(1000), table.TotalWidth())
	assert.Equal(t, float32(1000), gui.GetScrollableState(d.ctx, "c-body").ContentWidth)
	assert.Equal(t, float32(1000), gui.GetScrollableState(d.ctx, "c-header").ContentWidth)
}

func TestTableEffectiveWidthIncludesResizeOffset(t *testing.T) {
	cols := newColumns(60, 100)
	cols[0].SetResizeOffset(15)
	cols[1].SetResizeOffset(-200)

	table := gui.NewTable("e-header", "e-body", cols, []testRow{}, nil).MinColumnWidth(10)

	assert.Equal(t, []float32{75, 10}, table.EffectiveWidths())
	assert.Equal(t, float32(85), table.TotalWidth())
}

// In the demo geometry the divider of column 1 sits at x 158..160 in the
// 16 pixel tall header.
func TestTableDragResizesColumn(t *testing.T) {
	cols := newColumns(demoWidths...)
	rec := &resizeRecorder{cols: cols}
	d := newUIDriver(1200, 600)
	draw := func(ctx *gui.Context) {
		gui.NewTable("b-header", "b-body", cols, newRows(10), nil).
			OnColumnResize(rec.drag, rec.release).
			Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, mousePress(159, 8), draw)
	assert.Equal(t, gui.CursorResizeHorizontal, d.ui.MouseCursor())

	d.frame(t, mouseAt(189, 8), draw)
	require.Equal(t, [][2]float32{{1, 30}}, rec.drags)
	w, ok := cols[1].ResizeOffset()
	assert.True(t, ok)
	assert.Equal(t, float32(30), w)
	assert.Equal(t, float32(100), cols[1].Width(), "nothing is committed during the drag")

	d.frame(t, mouseRelease(189, 8), draw)
	assert.Equal(t, 1, rec.releases)
	assert.Equal(t, float32(130), cols[1].Width())
	_, ok = cols[1].ResizeOffset()
	assert.False(t, ok)
}

func TestTableDragDeltasReplaceEachOther(t *testing.T) {
	cols := newColumns(demoWidths...)
	rec := &resizeRecorder{cols: cols}
	d := newUIDriver(1200, 600)
	draw := func(ctx *gui.Context) {
		gui.NewTable("i-header", "i-body", cols, newRows(3), nil).
			OnColumnResize(rec.drag, rec.release).
			Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, mousePress(159, 8), draw)
	d.frame(t, mouseAt(169, 8), draw)
	d.frame(t, mouseAt(199, 8), draw)
	d.frame(t, mouseAt(179, 8), draw)
	d.frame(t, mouseRelease(179, 8), draw)

	assert.Equal(t, [][2]float32{{1, 10}, {1, 40}, {1, 20}}, rec.drags)
	assert.Equal(t, float32(120), cols[1].Width())
}

func TestTableDragClampsToMinColumnWidth(t *testing.T) {
	cols := newColumns(demoWidths...)
	rec := &resizeRecorder{cols: cols}
	d := newUIDriver(1200, 600)

	var table *gui.Table[testRow, *testColumn]
	draw := func(ctx *gui.Context) {
		table = gui.NewTable("d-header", "d-body", cols, newRows(3), nil).
			OnColumnResize(rec.drag, rec.release)
		table.Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, mousePress(159, 8), draw)
	d.frame(t, mouseAt(-341, 8), draw)

	require.Len(t, rec.drags, 1)
	assert.Equal(t, float32(-96), rec.drags[0][1])
	assert.Equal(t, float32(gui.DefaultMinColumnWidth), table.EffectiveWidths()[1])

	d.frame(t, mouseRelease(-341, 8), draw)
	assert.Equal(t, float32(4), cols[1].Width())
}

func TestTableFooterDividerResizesSameColumn(t *testing.T) {
	cols := newColumns(demoWidths...)
	cols[2].footer = true
	rec := &resizeRecorder{cols: cols}
	d := newUIDriver(1200, 600)
	draw := func(ctx *gui.Context) {
		gui.NewTable("f-header", "f-body", cols, newRows(10), nil).
			Footer("f-footer").
			Height(100).
			OnColumnResize(rec.drag, rec.release).
			Render(ctx)
	}

	// Header 16, body 100, footer from y 116.
	d.frame(t, nil, draw)
	d.frame(t, mousePress(159, 124), draw)
	d.frame(t, mouseAt(139, 124), draw)
	d.frame(t, mouseRelease(139, 124), draw)

	assert.Equal(t, [][2]float32{{1, -20}}, rec.drags)
	assert.Equal(t, float32(80), cols[1].Width())
	assert.Equal(t, 1, rec.releases)
}

func TestTableWithoutResizeHasNoDividers(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(1200, 600)
	draw := func(ctx *gui.Context) {
		gui.NewTable("g-header", "g-body", cols, newRows(3), nil).Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, mouseAt(159, 8), draw)
	assert.Equal(t, gui.CursorArrow, d.ui.MouseCursor())

	d.frame(t, mousePress(159, 8), draw)
	d.frame(t, mouseAt(189, 8), draw)
	assert.Equal(t, float32(100), cols[1].Width())
	assert.Equal(t, float32(815), gui.GetScrollableState(d.ctx, "g-header").ContentWidth)
}

func TestTableScrollSyncReportsHorizontalOnly(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(400, 300)

	var synced []gui.AbsoluteOffset
	draw := func(ctx *gui.Context) {
		gui.NewTable("s-header", "s-body", cols, newRows(50), func(off gui.AbsoluteOffset) {
			synced = append(synced, off)
		}).Height(100).Render(ctx)
	}

	d.frame(t, nil, draw)
	require.Empty(t, synced, "an unscrolled body reports nothing")

	d.frame(t, nil, func(ctx *gui.Context) {
		ctx.ScrollTo("s-body", gui.AbsoluteOffset{X: 37, Y: 120})
		draw(ctx)
	})
	d.frame(t, nil, draw)

	assert.Equal(t, []gui.AbsoluteOffset{{X: 37, Y: 0}}, synced)
	body := gui.GetScrollableState(d.ctx, "s-body")
	assert.Equal(t, gui.AbsoluteOffset{X: 37, Y: 120}, body.Offset)
}

func TestTableHeaderAndFooterFollowBody(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(400, 300)

	draw := func(ctx *gui.Context) {
		gui.NewTable("h-header", "h-body", cols, newRows(50), func(off gui.AbsoluteOffset) {
			ctx.ScrollTo("h-header", off)
			ctx.ScrollTo("h-footer", off)
		}).Footer("h-footer").Height(100).Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, nil, draw)
	d.frame(t, nil, func(ctx *gui.Context) {
		ctx.ScrollTo("h-body", gui.AbsoluteOffset{X: 10000, Y: 10000})
		draw(ctx)
	})
	d.frame(t, nil, draw)

	body := gui.GetScrollableState(d.ctx, "h-body")
	header := gui.GetScrollableState(d.ctx, "h-header")
	footer := gui.GetScrollableState(d.ctx, "h-footer")
	require.NotNil(t, header)
	require.NotNil(t, footer)

	// Body 400 wide minus a 12 pixel vertical scrollbar.
	assert.Equal(t, float32(388), body.ViewportWidth)
	assert.Equal(t, body.ViewportWidth, header.ViewportWidth)
	assert.Equal(t, body.ViewportWidth, footer.ViewportWidth)

	assert.Equal(t, float32(815-388), body.Offset.X)
	assert.Equal(t, body.Offset.X, header.Offset.X)
	assert.Equal(t, body.Offset.X, footer.Offset.X)
	assert.Zero(t, header.Offset.Y)
	assert.Zero(t, footer.Offset.Y)
}

func TestTableDeferredSyncMovesHeaderAndFooterTogether(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(400, 300)

	var offset gui.AbsoluteOffset
	draw := func(ctx *gui.Context) {
		gui.NewTable("q-header", "q-body", cols, newRows(50), func(off gui.AbsoluteOffset) {
			offset = off
		}).Footer("q-footer").Height(100).Render(ctx)
		ctx.ScrollTo("q-header", offset)
		ctx.ScrollTo("q-footer", offset)
	}

	d.frame(t, nil, draw)
	d.frame(t, nil, draw)
	d.frame(t, nil, func(ctx *gui.Context) {
		ctx.ScrollTo("q-body", gui.AbsoluteOffset{X: 100})
		draw(ctx)
	})
	assert.Zero(t, gui.GetScrollableState(d.ctx, "q-header").Offset.X)
	assert.Zero(t, gui.GetScrollableState(d.ctx, "q-footer").Offset.X)

	d.frame(t, nil, draw)
	assert.Equal(t, float32(100), gui.GetScrollableState(d.ctx, "q-header").Offset.X)
	assert.Equal(t, float32(100), gui.GetScrollableState(d.ctx, "q-footer").Offset.X)
}

func TestTableHeaderIgnoresWheel(t *testing.T) {
	cols := newColumns(demoWidths...)
	d := newUIDriver(400, 300)
	draw := func(ctx *gui.Context) {
		gui.NewTable("w-header", "w-body", cols, newRows(50), nil).Height(100).Render(ctx)
	}

	d.frame(t, nil, draw)
	d.frame(t, nil, draw)

	wheel := func(x, y float32) func(*gui.InputState) {
		return func(in *gui.InputState) {
			in.SetMousePos(x, y)
			in.SetMouseWheel(-2, -2)
		}
	}

	d.frame(t, wheel(50, 8), draw)
	assert.Equal(t, gui.AbsoluteOffset{}, gui.GetScrollableState(d.ctx, "w-header").Offset)
	assert.Equal(t, gui.AbsoluteOffset{}, gui.GetScrollableState(d.ctx, "w-body").Offset)

	d.frame(t, wheel(50, 50), draw)
	assert.Equal(t, gui.AbsoluteOffset{X: 60, Y: 60}, gui.GetScrollableState(d.ctx, "w-body").Offset)
	assert.Equal(t, gui.AbsoluteOffset{}, gui.GetScrollableState(d.ctx, "w-header").Offset)
}

func TestTableBodyFillsRemainingHeight(t *testing.T) {
	cols := newColumns(demoWidths...)
	cols[2].footer = true
	d := newUIDriver(1200, 600)
	draw := func(ctx *gui.Context) {
		gui.NewTable("r-header", "r-body", cols, newRows(100), nil).Footer("r-footer").Render(ctx)
	}

	// The footer height is only known after its first frame.
	d.frame(t, nil, draw)
	d.frame(t, nil, draw)

	body := gui.GetScrollableState(d.ctx, "r-body")
	assert.Equal(t, float32(600-16-16), body.ViewportHeight)
}

// layoutWidthColumn records the layout width its body cells are given.
type layoutWidthColumn struct {
	gui.ColumnSize
	gui.NoFooter[testRow]
	seen *[]float32
}

func (c *layoutWidthColumn) Header(int) gui.Component { return nil }

func (c *layoutWidthColumn) Cell(_, _ int, _ testRow) gui.Component {
	return gui.ComponentFunc(func(ctx *gui.Context) {
		*c.seen = append(*c.seen, ctx.CurrentLayoutWidth())
	})
}

func TestTableNarrowColumnGetsNoLayoutWidth(t *testing.T) {
	var seen []float32
	cols := []*layoutWidthColumn{
		{ColumnSize: gui.NewColumnSize(60), seen: &seen},
		{ColumnSize: gui.NewColumnSize(4), seen: &seen},
		{ColumnSize: gui.NewColumnSize(100), seen: &seen},
	}
	d := newUIDriver(800, 600)
	d.frame(t, nil, func(ctx *gui.Context) {
		gui.NewTable("n-header", "n-body", cols, newRows(1), nil).Render(ctx)
	})

	// Width minus the 2px divider and 4px padding on each side.
	assert.Equal(t, []float32{50, 0, 90}, seen)
}

func TestTableColumnsNarrowerThanDivider(t *testing.T) {
	cols := newColumns(4, 4, 4)
	cols[0].footer = true
	rec := &resizeRecorder{cols: cols}
	d := newUIDriver(800, 600)

	var table *gui.Table[testRow, *testColumn]
	d.frame(t, nil, func(ctx *gui.Context) {
		table = gui.NewTable("v-header", "v-body", cols, newRows(3), nil).
			Footer("v-footer").
			DividerWidth(10).
			MinWidth(30).
			OnColumnResize(rec.drag, rec.release)
		table.Render(ctx)
	})

	assert.Equal(t, float32(30), table.TotalWidth())
	assert.Equal(t, float32(18), table.FillerWidth())
	for _, name := range []string{"v-header", "v-body", "v-footer"} {
		assert.Equal(t, float32(30), gui.GetScrollableState(d.ctx, name).ContentWidth, name)
	}
}

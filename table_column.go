package gui

// Column describes one table column. Implement it once per column kind.
//
// The table calls Header, Cell and Footer every frame, so they should be
// cheap and side-effect free. Width and ResizeOffset report sizing state
// the caller owns; ColumnSize is a ready-made holder for it.
type Column[R any] interface {
	// Header returns the header cell content.
	Header(col int) Component
	// Cell returns the body cell for rows[row].
	Cell(col, row int, data R) Component
	// Footer returns the footer cell, given every row for aggregates.
	// nil leaves the slot blank.
	Footer(col int, rows []R) Component
	// Width is the committed width.
	Width() float32
	// ResizeOffset is the in-flight delta of a drag on this column, if any.
	ResizeOffset() (float32, bool)
}

// NoFooter can be embedded in a Column implementation that has no footer.
type NoFooter[R any] struct{}

// Footer returns nil.
func (NoFooter[R]) Footer(int, []R) Component { return nil }

// ColumnSize is the caller-owned sizing state of a column: a committed
// width plus the offset of a drag in progress.
//
// Typical wiring:
//
//	table.OnColumnResize(
//	    func(col int, delta float32) { sizes[col].SetResizeOffset(delta) },
//	    func() { for i := range sizes { sizes[i].Commit() } },
//	)
type ColumnSize struct {
	width     float32
	offset    float32
	hasOffset bool
}

// NewColumnSize returns a size with the given committed width.
func NewColumnSize(width float32) ColumnSize {
	return ColumnSize{width: width}
}

// Width returns the committed width.
func (s *ColumnSize) Width() float32 { return s.width }

// ResizeOffset returns the in-flight offset.
func (s *ColumnSize) ResizeOffset() (float32, bool) { return s.offset, s.hasOffset }

// SetResizeOffset records the latest drag delta, replacing the previous one.
func (s *ColumnSize) SetResizeOffset(delta float32) {
	s.offset = delta
	s.hasOffset = true
}

// Commit folds the in-flight offset into the width. No-op without one.
func (s *ColumnSize) Commit() {
	if !s.hasOffset {
		return
	}
	s.width += s.offset
	s.offset = 0
	s.hasOffset = false
}

// Cancel drops the in-flight offset.
func (s *ColumnSize) Cancel() {
	s.offset = 0
	s.hasOffset = false
}

// EffectiveWidth is the width a column is laid out with:
// width plus any in-flight offset, never below minWidth.
func EffectiveWidth(width, offset, minWidth float32) float32 {
	return maxf(width+offset, minWidth)
}

// columnEffectiveWidth applies EffectiveWidth to a Column.
func columnEffectiveWidth[R any](c Column[R], minWidth float32) float32 {
	offset, _ := c.ResizeOffset()
	return EffectiveWidth(c.Width(), offset, minWidth)
}

// FillerWidth is the width of the blank trailing cell that pads a table
// to minTotal. Zero when the columns are already wide enough.
func FillerWidth(widths []float32, minTotal float32) float32 {
	var sum float32
	for _, w := range widths {
		sum += w
	}
	return maxf(0, minTotal-sum)
}

// ResizedDelta converts a raw drag delta into the delta reported for a
// column: the new width is clamped to minWidth and the result is relative
// to the committed width. Calling it again with a later drag delta
// replaces, never accumulates.
func ResizedDelta(committed, dragDelta, minWidth float32) float32 {
	return EffectiveWidth(committed, dragDelta, minWidth) - committed
}

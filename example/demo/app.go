// Package demo is the table demo application without its window: the
// rows, the columns and the message loop that edits them. The GLFW
// program in the parent directory drives it once per frame.
package demo

import (
	"log/slog"
	"slices"

	gui "github.com/go-theft-auto/tablegui"
)

// Scrollable names of the three table regions.
const (
	HeaderScroll = "demo-header"
	BodyScroll   = "demo-body"
	FooterScroll = "demo-footer"
)

// Message is a state change requested by the view.
type Message interface{ isMessage() }

type (
	// HeaderSynced carries the body's new horizontal offset.
	HeaderSynced struct{ Offset gui.AbsoluteOffset }
	// ColumnResizing is a drag in progress on Column.
	ColumnResizing struct {
		Column int
		Offset float32
	}
	// ColumnsResized ends a drag.
	ColumnsResized struct{}
	// ResizeColumnsToggled turns column resizing on or off.
	ResizeColumnsToggled struct{ Enabled bool }
	// FooterToggled shows or hides the footer.
	FooterToggled struct{ Enabled bool }
	// MinWidthToggled makes the table fill the window width.
	MinWidthToggled struct{ Enabled bool }
	// DarkThemeToggled switches between the light and dark styles.
	DarkThemeToggled struct{ Enabled bool }
	// CategoryChanged sets the category of Row.
	CategoryChanged struct {
		Row      int
		Category Category
	}
	// NotesChanged replaces the notes of Row.
	NotesChanged struct {
		Row   int
		Notes string
	}
	// EnabledChanged sets the enabled flag of Row.
	EnabledChanged struct {
		Row     int
		Enabled bool
	}
	// RowDeleted removes Row.
	RowDeleted struct{ Row int }
)

func (HeaderSynced) isMessage()         {}
func (ColumnResizing) isMessage()       {}
func (ColumnsResized) isMessage()       {}
func (ResizeColumnsToggled) isMessage() {}
func (FooterToggled) isMessage()        {}
func (MinWidthToggled) isMessage()      {}
func (DarkThemeToggled) isMessage()     {}
func (CategoryChanged) isMessage()      {}
func (NotesChanged) isMessage()         {}
func (EnabledChanged) isMessage()       {}
func (RowDeleted) isMessage()           {}

// ScrollCommand asks the GUI to move the Scrollable Target.
type ScrollCommand struct {
	Target string
	Offset gui.AbsoluteOffset
}

// App is the demo state.
type App struct {
	Columns []*Column
	Rows    []Row

	ResizeColumns bool
	Footer        bool
	MinWidth      bool
	DarkTheme     bool
	Variant       gui.TableVariant

	inbox  []Message
	logger *slog.Logger
}

// NewApp builds the app from cfg.
func NewApp(cfg Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		Rows:          GenerateRows(cfg.Rows),
		ResizeColumns: cfg.ResizeColumns,
		Footer:        cfg.Footer,
		MinWidth:      cfg.MinWidth,
		DarkTheme:     cfg.DarkTheme,
		Variant:       gui.TableVariant(cfg.Variant),
		logger:        logger,
	}
	widths := cfg.Columns.widths()
	for k := ColumnIndex; k <= ColumnDelete; k++ {
		a.Columns = append(a.Columns, NewColumn(k, widths[k], a.Send))
	}
	return a
}

// Send queues msg for the next Flush.
func (a *App) Send(msg Message) {
	a.inbox = append(a.inbox, msg)
}

// Update applies msg and returns the scroll commands it produces.
// Row indices out of range are ignored.
func (a *App) Update(msg Message) []ScrollCommand {
	switch m := msg.(type) {
	case HeaderSynced:
		return []ScrollCommand{
			{Target: HeaderScroll, Offset: m.Offset},
			{Target: FooterScroll, Offset: m.Offset},
		}
	case ColumnResizing:
		if m.Column >= 0 && m.Column < len(a.Columns) {
			a.Columns[m.Column].SetResizeOffset(m.Offset)
		}
	case ColumnsResized:
		for _, c := range a.Columns {
			c.Commit()
		}
		a.logger.Debug("columns resized", "widths", a.widths())
	case ResizeColumnsToggled:
		a.ResizeColumns = m.Enabled
		if !m.Enabled {
			// A drag cut short by disabling resizing never gets its release.
			for _, c := range a.Columns {
				c.Cancel()
			}
		}
	case FooterToggled:
		a.Footer = m.Enabled
	case MinWidthToggled:
		a.MinWidth = m.Enabled
	case DarkThemeToggled:
		a.DarkTheme = m.Enabled
	case CategoryChanged:
		if a.validRow(m.Row) {
			a.Rows[m.Row].Category = m.Category
		}
	case NotesChanged:
		if a.validRow(m.Row) {
			a.Rows[m.Row].Notes = m.Notes
		}
	case EnabledChanged:
		if a.validRow(m.Row) {
			a.Rows[m.Row].Enabled = m.Enabled
		}
	case RowDeleted:
		if a.validRow(m.Row) {
			a.Rows = slices.Delete(a.Rows, m.Row, m.Row+1)
			a.logger.Debug("row deleted", "row", m.Row, "remaining", len(a.Rows))
		}
	}
	return nil
}

// Flush applies every queued message in order and issues the resulting
// scroll commands on ctx.
func (a *App) Flush(ctx *gui.Context) {
	inbox := a.inbox
	a.inbox = nil
	for _, msg := range inbox {
		for _, cmd := range a.Update(msg) {
			ctx.ScrollTo(cmd.Target, cmd.Offset)
		}
	}
}

// Style returns the GUI style matching the theme toggle.
func (a *App) Style() gui.Style {
	if a.DarkTheme {
		return gui.DarkStyle()
	}
	return gui.LightStyle()
}

// View draws the toggles and the table, then applies what they reported.
func (a *App) View(ctx *gui.Context) {
	ctx.VStack(gui.Gap(6))(func() {
		ctx.Panel("Options", gui.Gap(6), gui.Padding(8))(func() {
			ctx.HStack(gui.Gap(16))(func() {
				a.toggle(ctx, "Resize Columns", a.ResizeColumns, func(on bool) Message { return ResizeColumnsToggled{on} })
				a.toggle(ctx, "Footer", a.Footer, func(on bool) Message { return FooterToggled{on} })
				a.toggle(ctx, "Min Width", a.MinWidth, func(on bool) Message { return MinWidthToggled{on} })
				a.toggle(ctx, "Dark Theme", a.DarkTheme, func(on bool) Message { return DarkThemeToggled{on} })
			})
		})

		a.Table(ctx).Render(ctx)
	})
	a.Flush(ctx)
}

// Table builds this frame's table.
func (a *App) Table(ctx *gui.Context) *gui.Table[Row, *Column] {
	t := gui.NewTable(HeaderScroll, BodyScroll, a.Columns, a.Rows, func(off gui.AbsoluteOffset) {
		a.Send(HeaderSynced{Offset: off})
	}).Style(a.Variant)

	if a.ResizeColumns {
		t.OnColumnResize(
			func(col int, delta float32) { a.Send(ColumnResizing{Column: col, Offset: delta}) },
			func() { a.Send(ColumnsResized{}) },
		)
	}
	if a.Footer {
		t.Footer(FooterScroll)
	}
	if a.MinWidth {
		t.MinWidth(ctx.CurrentLayoutWidth())
	}
	return t
}

func (a *App) toggle(ctx *gui.Context, label string, value bool, msg func(bool) Message) {
	gui.CheckboxComponent{
		Label:    label,
		Checked:  value,
		OnToggle: func(on bool) { a.Send(msg(on)) },
	}.Render(ctx)
}

func (a *App) validRow(i int) bool {
	return i >= 0 && i < len(a.Rows)
}

func (a *App) widths() []float32 {
	w := make([]float32, len(a.Columns))
	for i, c := range a.Columns {
		w[i] = c.Width()
	}
	return w
}

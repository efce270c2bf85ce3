/*
Package gui is an immediate-mode GUI toolkit built around a resizable
multi-column table.

# Overview

The UI is rebuilt every frame. Widgets draw into a DrawList and return
interaction results directly; the little state they need between frames
(scroll offsets, drag origins) lives in FrameStores keyed by ID and is
dropped automatically once a widget stops being drawn.

The centrepiece is Table: a header, a scrolling body and an optional
footer, each in its own Scrollable. Column widths belong to the caller.
Header and footer cells carry draggable dividers that report width deltas;
the body reports its horizontal offset so the caller can scroll the header
and footer to match.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1024, 768)
	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	var offset gui.AbsoluteOffset

	// Frame loop
	for !window.ShouldClose() {
	    input.BeginFrame()

	    ctx := ui.Begin(input.Input(), gui.Vec2{X: 1024, Y: 768}, dt)
	    gui.NewTable("hdr", "body", columns, rows, func(off gui.AbsoluteOffset) {
	        offset = off
	    }).Render(ctx)
	    ctx.ScrollTo("hdr", offset)
	    ui.End()

	    input.ApplyCursor(ui.MouseCursor())
	    window.SwapBuffers()
	}

Call InputState.Reset before feeding a frame's events; the GLFW adapter
does this in BeginFrame.

# Tables

A column type implements Column[R] for a row type R:

	type nameColumn struct {
	    gui.ColumnSize
	    gui.NoFooter[Person]
	}

	func (c *nameColumn) Header(int) gui.Component { return gui.Label{Text: "Name"} }

	func (c *nameColumn) Cell(_, _ int, p Person) gui.Component {
	    return gui.Label{Text: p.Name, Truncate: true}
	}

Builder methods on Table:

	OnColumnResize(drag, release)  Enable dividers; drag gets (column, delta)
	Footer(name)                   Show the footer in Scrollable name
	MinWidth(w)                    Pad rows with a blank cell up to w
	MinColumnWidth(w)              Narrowest column width (default 4)
	DividerWidth(w)                Divider handle thickness (default 2)
	CellPadding(insets)            Padding inside every cell (default 4)
	Style(variant)                 Palette variant from the table catalog
	Scrollbar(appearance)          Body scrollbar size or HiddenScrollbar
	Height(h)                      Fixed body height (0 = fill)

A drag reports the column's new width relative to its committed width,
clamped to the minimum column width. Each report replaces the previous one.
Store it with ColumnSize.SetResizeOffset and fold it in with Commit when
release is called.

# Scrolling

	ctx.Scrollable(name string, height float32, opts ...Option) func(func())
	    Clipped region that scrolls its content. Height <= 0 shrinks the
	    region to its content and disables vertical scrolling.

	ctx.ScrollTo(name string, offset AbsoluteOffset)
	    Queues an offset, applied and clamped when name next renders.

	GetScrollableState(ctx, name) *ScrollableState
	    Last frame's offset and measurements, or nil.

Scrollable keys, active while the pointer is over the region:

	Mouse Wheel      Scroll vertically
	Shift+Wheel      Scroll horizontally (with EnableHorizontal)
	Page Up/Down     Scroll by 80% of the viewport
	Home/End         Jump to top/bottom
	Left/Right       Scroll horizontally (with EnableHorizontal)

Keys go to a text input instead while it is being edited.

# Widgets

	ctx.Text(text string)
	ctx.TextColored(text string, color uint32)
	ctx.TextTruncated(text string, maxWidth float32)
	ctx.Button(label string, opts ...Option) bool
	ctx.Checkbox(label string, value *bool, opts ...Option) bool
	ctx.InputText(label string, value *string, opts ...Option) bool
	ctx.ComboBox(label string, selected *int, items []string, opts ...Option) bool
	ctx.Divider(id ID, cfg DividerConfig) func(func())
	ctx.TableRegion(role RowRole, variant TableVariant) func(func())

Components wrap widgets for use as table cells: Label, Blank,
ButtonComponent, CheckboxComponent, TextInputComponent, ComboComponent
and ComponentFunc. A ComboBox draws its open list on the context's
ForegroundDrawList, which GUI.End renders after everything else.

# Options Reference

	WithID(id string)              Widget ID independent of call order
	WithDisabled(bool)             Disable interaction
	WithWidth(w) / WithHeight(h)   Fixed size
	WithScrollbar(appearance)      Scrollbar size, or HiddenScrollbar()
	EnableHorizontal()             Enable horizontal scroll
	WithUserScroll(false)          Ignore wheel, keys and scrollbar drags
	OnScroll(fn)                   Called once per offset change

# Layout

	ctx.VStack(opts ...LayoutOption) func(func())
	ctx.HStack(opts ...LayoutOption) func(func())
	ctx.Box(width float32, pad Insets) func(func())
	ctx.Panel(title string, opts ...LayoutOption) func(func())
	ctx.Spacer(w, h float32)

Layout options: Gap, GapX, GapY, Tight, Padding, PaddingXY, Width, Height.

# Table Themes

Table colors come from a TableCatalog. By default it is derived from the
Style; a YAML theme with named variants can replace it:

	theme, err := gui.LoadTableTheme(f)
	style.Tables = theme

# Logging

The package logs through log/slog. SetLogger replaces the handler and
SetVerbose enables per-frame debug records.
*/
package gui

package gui

// RowRole says which part of a table a region is, for styling.
type RowRole struct {
	kind  rowKind
	index int
}

type rowKind uint8

const (
	rowKindBody rowKind = iota
	rowKindHeader
	rowKindFooter
)

// HeaderRole styles a region as the table header.
func HeaderRole() RowRole { return RowRole{kind: rowKindHeader} }

// FooterRole styles a region as the table footer.
func FooterRole() RowRole { return RowRole{kind: rowKindFooter} }

// BodyRole styles a region as body row index, banded by parity.
func BodyRole(index int) RowRole { return RowRole{kind: rowKindBody, index: index} }

// appearance looks the role up in a catalog.
func (r RowRole) appearance(c TableCatalog, v TableVariant) TableAppearance {
	switch r.kind {
	case rowKindHeader:
		return c.Header(v)
	case rowKindFooter:
		return c.Footer(v)
	default:
		return c.Row(v, r.index)
	}
}

// TableRegion paints a table row background behind content laid out as a
// gap-free horizontal row, and draws the content with the role's text color.
// It adds no size of its own and handles no input.
//
// Usage:
//
//	ctx.TableRegion(gui.BodyRole(i), gui.DefaultVariant)(func() {
//	    ctx.Box(100, gui.UniformInsets(4))(func() { ctx.Text("cell") })
//	})
func (ctx *Context) TableRegion(role RowRole, variant TableVariant) func(func()) {
	return func(content func()) {
		a := role.appearance(ctx.tableCatalog(), variant)

		bg := ctx.DrawList.ReserveRect()
		if a.TextColor != 0 {
			ctx.PushStyleColor(StyleColorText, a.TextColor)
		}

		ctx.beginItem()
		ctx.pushLayoutWith(&Layout{Type: LayoutHorizontal, Tight: true})
		content()
		b := ctx.popLayout()

		if a.TextColor != 0 {
			ctx.PopStyle()
		}

		ctx.DrawList.FillReservedRect(bg, b.X, b.Y, b.W, b.H, a.Background)
		if a.BorderWidth > 0 {
			ctx.DrawList.AddRectOutline(b.X, b.Y, b.W, b.H, a.BorderColor, a.BorderWidth)
		}
	}
}

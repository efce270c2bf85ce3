package gui

// Component is the interface that all GUI components implement.
// Tables take their cell content as Components, and a Table is itself a
// Component, so it can be placed anywhere content is expected.
//
// Usage (custom component):
//
//	type Badge struct{ Label string }
//
//	func (b Badge) Render(ctx *gui.Context) {
//	    ctx.TextColored(b.Label, gui.ColorLightGray)
//	}
type Component interface {
	// Render draws the component using the provided context.
	Render(ctx *Context)
}

// ComponentFunc adapts a function to Component.
type ComponentFunc func(ctx *Context)

// Render implements Component.
func (f ComponentFunc) Render(ctx *Context) { f(ctx) }

// Label is a text Component.
type Label struct {
	Text  string
	Color uint32 // 0 = use the ambient text color
	// Truncate cuts the text to the layout width with an ellipsis.
	Truncate bool
}

// Render implements Component.
func (c Label) Render(ctx *Context) {
	switch {
	case c.Truncate:
		if c.Color != 0 {
			ctx.PushStyleColor(StyleColorText, c.Color)
			defer ctx.PopStyle()
		}
		ctx.TextTruncated(c.Text, 0)
	case c.Color != 0:
		ctx.TextColored(c.Text, c.Color)
	default:
		ctx.Text(c.Text)
	}
}

// Blank is an empty Component of a fixed size.
// A zero Height uses the line height, so blank cells line up with text.
type Blank struct {
	Width, Height float32
}

// Render implements Component.
func (c Blank) Render(ctx *Context) {
	h := c.Height
	if h == 0 {
		h = ctx.lineHeight()
	}
	ctx.Spacer(c.Width, h)
}

// ButtonComponent is a Button that calls OnClick when clicked.
// Small uses SmallButton, which fits a text row better.
type ButtonComponent struct {
	Label   string
	Options []Option
	OnClick func()
	Small   bool
}

// Render implements Component.
func (c ButtonComponent) Render(ctx *Context) {
	button := ctx.Button
	if c.Small {
		button = ctx.SmallButton
	}
	if button(c.Label, c.Options...) && c.OnClick != nil {
		c.OnClick()
	}
}

// CheckboxComponent is a Checkbox showing Checked that reports toggles
// through OnToggle instead of writing through a pointer, so the caller's
// state stays the single source of truth.
type CheckboxComponent struct {
	Label    string
	Checked  bool
	Options  []Option
	OnToggle func(checked bool)
}

// Render implements Component.
func (c CheckboxComponent) Render(ctx *Context) {
	v := c.Checked
	if ctx.Checkbox(c.Label, &v, c.Options...) && c.OnToggle != nil {
		c.OnToggle(v)
	}
}

// TextInputComponent is an InputText showing Value that reports edits
// through OnChange. ID keys the editing state; inside a table give every
// cell its own, since the label is usually empty.
type TextInputComponent struct {
	ID       string
	Label    string
	Value    string
	Options  []Option
	OnChange func(value string)
}

// Render implements Component.
func (c TextInputComponent) Render(ctx *Context) {
	v := c.Value
	opts := c.Options
	if c.ID != "" {
		opts = append([]Option{WithID(c.ID)}, opts...)
	}
	if ctx.InputText(c.Label, &v, opts...) && c.OnChange != nil {
		c.OnChange(v)
	}
}

// ComboComponent is a ComboBox over Items with Selected picked. A new
// pick is reported through OnSelect. ID works as in TextInputComponent.
type ComboComponent struct {
	ID       string
	Label    string
	Items    []string
	Selected int
	Options  []Option
	OnSelect func(index int)
}

// Render implements Component.
func (c ComboComponent) Render(ctx *Context) {
	sel := c.Selected
	opts := c.Options
	if c.ID != "" {
		opts = append([]Option{WithID(c.ID)}, opts...)
	}
	if ctx.ComboBox(c.Label, &sel, c.Items, opts...) && c.OnSelect != nil {
		c.OnSelect(sel)
	}
}

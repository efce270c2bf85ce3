package demo

import (
	"fmt"
	"strconv"

	gui "github.com/go-theft-auto/tablegui"
)

// ColumnKind selects what a column shows.
type ColumnKind int

const (
	ColumnIndex ColumnKind = iota
	ColumnCategory
	ColumnEnabled
	ColumnNotes
	ColumnDelete
)

// DefaultWidth is the initial width of a column of this kind.
func (k ColumnKind) DefaultWidth() float32 {
	switch k {
	case ColumnIndex:
		return 60
	case ColumnCategory:
		return 100
	case ColumnEnabled:
		return 155
	case ColumnNotes:
		return 400
	case ColumnDelete:
		return 100
	default:
		return 100
	}
}

func (k ColumnKind) title() string {
	switch k {
	case ColumnIndex:
		return "Index"
	case ColumnCategory:
		return "Category"
	case ColumnEnabled:
		return "Enabled"
	case ColumnNotes:
		return "Notes"
	default:
		return ""
	}
}

var categoryNames = CategoryNames()

// Column is a demo table column. Cell interactions are reported as
// messages through send; the column never changes rows itself.
type Column struct {
	gui.ColumnSize
	Kind ColumnKind

	send func(Message)
}

var _ gui.Column[Row] = (*Column)(nil)

// NewColumn returns a column of kind at width.
func NewColumn(kind ColumnKind, width float32, send func(Message)) *Column {
	return &Column{ColumnSize: gui.NewColumnSize(width), Kind: kind, send: send}
}

// Header implements gui.Column.
func (c *Column) Header(int) gui.Component {
	if c.Kind.title() == "" {
		return nil
	}
	return gui.Label{Text: c.Kind.title(), Truncate: true}
}

// Cell implements gui.Column.
func (c *Column) Cell(_, row int, data Row) gui.Component {
	switch c.Kind {
	case ColumnIndex:
		return gui.Label{Text: strconv.Itoa(row)}
	case ColumnCategory:
		return gui.ComboComponent{
			ID:       "category",
			Items:    categoryNames,
			Selected: int(data.Category),
			OnSelect: func(i int) { c.send(CategoryChanged{Row: row, Category: Category(i)}) },
		}
	case ColumnEnabled:
		return gui.CheckboxComponent{
			Checked:  data.Enabled,
			OnToggle: func(on bool) { c.send(EnabledChanged{Row: row, Enabled: on}) },
		}
	case ColumnNotes:
		return gui.TextInputComponent{
			ID:       "notes",
			Value:    data.Notes,
			OnChange: func(s string) { c.send(NotesChanged{Row: row, Notes: s}) },
		}
	case ColumnDelete:
		return gui.ButtonComponent{
			Label:   "Delete",
			Small:   true,
			OnClick: func() { c.send(RowDeleted{Row: row}) },
		}
	default:
		return nil
	}
}

// Footer implements gui.Column. Only the Enabled column has one.
func (c *Column) Footer(_ int, rows []Row) gui.Component {
	if c.Kind != ColumnEnabled {
		return nil
	}
	return gui.Label{Text: fmt.Sprintf("Total Enabled: %d", enabledCount(rows)), Truncate: true}
}

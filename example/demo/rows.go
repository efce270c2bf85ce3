package demo

import "fmt"

// Category is the category a row belongs to.
type Category int

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
	CategoryD
	CategoryE
	categoryCount
)

// String implements fmt.Stringer.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return string(rune('A' + c))
}

// CategoryNames lists every category name, indexed by Category.
func CategoryNames() []string {
	names := make([]string, categoryCount)
	for c := range categoryCount {
		names[c] = c.String()
	}
	return names
}

// Row is one record of the demo table.
type Row struct {
	Category Category
	Enabled  bool
	Notes    string
}

var sampleNotes = []string{
	"",
	"check again tomorrow",
	"imported from the old sheet, values may be stale",
	"",
	"needs review",
}

// GenerateRows returns n rows. Row i gets category i%5 and is enabled
// unless it falls in the last category.
func GenerateRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Category: Category(i % int(categoryCount)),
			Enabled:  i%int(categoryCount) < int(categoryCount)-1,
			Notes:    sampleNotes[i%len(sampleNotes)],
		}
	}
	return rows
}

// enabledCount counts the enabled rows.
func enabledCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Enabled {
			n++
		}
	}
	return n
}

package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// headerMargin is added to the measured header text when sizing columns.
const headerMargin float32 = 20

// TextTable is a read-only table of strings with a labelled header row and
// numbered rows. Column widths follow the header text.
type TextTable struct {
	table    *widget.Table
	headers  []string
	rows     [][]string
	selected int

	selectHandler func(row int)
}

// NewTextTable creates a table with the given column headers
func NewTextTable(headers []string) *TextTable {
	t := &TextTable{
		headers:  append([]string(nil), headers...),
		selected: -1,
	}
	t.createComponents()
	t.setupEventHandlers()
	return t
}

// createComponents builds the underlying fyne table
func (t *TextTable) createComponents() {
	t.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(t.rows), len(t.headers) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(t.cell(id.Row, id.Col))
		},
	)

	t.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	t.table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		label := cell.(*widget.Label)
		switch {
		case id.Row < 0 && id.Col >= 0 && id.Col < len(t.headers):
			label.SetText(t.headers[id.Col])
		case id.Col < 0 && id.Row >= 0:
			label.SetText(strconv.Itoa(id.Row + 1))
		default:
			label.SetText("")
		}
	}

	for col, header := range t.headers {
		size := fyne.MeasureText(header, theme.TextSize(), fyne.TextStyle{Bold: true})
		t.table.SetColumnWidth(col, size.Width+headerMargin+2*theme.Padding())
	}
}

// setupEventHandlers tracks the selected row
func (t *TextTable) setupEventHandlers() {
	t.table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(t.rows) {
			return
		}
		t.selected = id.Row
		if t.selectHandler != nil {
			t.selectHandler(id.Row)
		}
	}
}

func (t *TextTable) cell(row, col int) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	if col < 0 || col >= len(t.rows[row]) {
		return ""
	}
	return t.rows[row][col]
}

// SetRows replaces the table contents. A selection past the new end is dropped.
func (t *TextTable) SetRows(rows [][]string) {
	t.rows = rows
	if t.selected >= len(rows) {
		t.ClearSelection()
	}
	t.table.Refresh()
}

// Rows returns the rows currently displayed
func (t *TextTable) Rows() [][]string {
	return t.rows
}

// Headers returns the column headers
func (t *TextTable) Headers() []string {
	return t.headers
}

// ColumnWidth returns the width assigned to a column from its header
func (t *TextTable) ColumnWidth(col int) float32 {
	if col < 0 || col >= len(t.headers) {
		return 0
	}
	size := fyne.MeasureText(t.headers[col], theme.TextSize(), fyne.TextStyle{Bold: true})
	return size.Width + headerMargin + 2*theme.Padding()
}

// SelectedRow returns the selected row index or -1
func (t *TextTable) SelectedRow() int {
	return t.selected
}

// Select marks a row as selected
func (t *TextTable) Select(row int) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.selected = row
	t.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// ClearSelection removes any selection
func (t *TextTable) ClearSelection() {
	t.selected = -1
	t.table.UnselectAll()
}

// SetSelectHandler sets the handler invoked when a row is selected
func (t *TextTable) SetSelectHandler(handler func(row int)) {
	t.selectHandler = handler
}

// GetWidget returns the table widget
func (t *TextTable) GetWidget() *widget.Table {
	return t.table
}

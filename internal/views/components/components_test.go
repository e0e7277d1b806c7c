package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusBar(t *testing.T) {
	test.NewTempApp(t)
	sb := NewStatusBar()

	assert.Equal(t, "Готово", sb.GetStatus())
	assert.Equal(t, "Чеков: 0 | Организаций: 0", sb.GetCounts())

	sb.SetStatus("Чек сохранён")
	sb.SetCounts(3, 1)
	assert.Equal(t, "Чек сохранён", sb.GetStatus())
	assert.Equal(t, "Чеков: 3 | Организаций: 1", sb.GetCounts())

	sb.Reset()
	assert.Equal(t, "Готово", sb.GetStatus())
	assert.Equal(t, "Чеков: 0 | Организаций: 0", sb.GetCounts())
}

func TestToolbarHandlers(t *testing.T) {
	test.NewTempApp(t)
	tb := NewToolbar()

	created, deleted := 0, 0
	test.Tap(tb.createButton)
	tb.SetCreateHandler(func() { created++ })
	tb.SetDeleteHandler(func() { deleted++ })

	test.Tap(tb.createButton)
	test.Tap(tb.deleteButton)
	test.Tap(tb.deleteButton)

	assert.Equal(t, 1, created)
	assert.Equal(t, 2, deleted)
}

func TestTextTableSelection(t *testing.T) {
	test.NewTempApp(t)
	table := NewTextTable([]string{"Наименование", "Цена"})

	var picked []int
	table.SetSelectHandler(func(row int) { picked = append(picked, row) })

	assert.Equal(t, -1, table.SelectedRow())
	table.Select(0)
	assert.Equal(t, -1, table.SelectedRow(), "empty table has nothing to select")

	table.SetRows([][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}})
	table.Select(2)
	assert.Equal(t, 2, table.SelectedRow())
	assert.Equal(t, []int{2}, picked)

	table.SetRows([][]string{{"a", "1"}})
	assert.Equal(t, -1, table.SelectedRow())

	table.Select(0)
	table.ClearSelection()
	assert.Equal(t, -1, table.SelectedRow())
}

func TestTextTableCells(t *testing.T) {
	test.NewTempApp(t)
	table := NewTextTable([]string{"A", "Б"})
	table.SetRows([][]string{{"x"}, {"y", "z"}})

	assert.Equal(t, "x", table.cell(0, 0))
	assert.Equal(t, "", table.cell(0, 1))
	assert.Equal(t, "z", table.cell(1, 1))
	assert.Equal(t, "", table.cell(5, 0))
	assert.Equal(t, []string{"A", "Б"}, table.Headers())
}

func TestTextTableColumnWidthFollowsHeader(t *testing.T) {
	test.NewTempApp(t)
	table := NewTextTable([]string{"Н", "Наименование организации"})

	short := table.ColumnWidth(0)
	long := table.ColumnWidth(1)
	assert.Greater(t, short, headerMargin)
	assert.Greater(t, long, short)
	assert.Zero(t, table.ColumnWidth(2))
}

func TestContextMenuAreaShowsMenu(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	tapped := false
	menu := fyne.NewMenu("", fyne.NewMenuItem("Удалить чек", func() { tapped = true }))
	area := NewContextMenuArea(NewTextTable([]string{"A"}).GetWidget(), menu)
	w.SetContent(area)

	require.Same(t, menu, area.Menu())
	test.TapSecondary(area)
	assert.NotNil(t, w.Canvas().Overlays().Top())

	menu.Items[0].Action()
	assert.True(t, tapped)
}

package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ContextMenuArea wraps content and pops up a menu on secondary tap
type ContextMenuArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	menu    *fyne.Menu
}

// NewContextMenuArea creates a context menu wrapper around content
func NewContextMenuArea(content fyne.CanvasObject, menu *fyne.Menu) *ContextMenuArea {
	area := &ContextMenuArea{content: content, menu: menu}
	area.ExtendBaseWidget(area)
	return area
}

// CreateRenderer implements fyne.Widget
func (c *ContextMenuArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

// TappedSecondary shows the menu at the pointer position
func (c *ContextMenuArea) TappedSecondary(event *fyne.PointEvent) {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(c)
	if canvas == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(c.menu, canvas, event.AbsolutePosition)
}

// Menu returns the menu shown by the area
func (c *ContextMenuArea) Menu() *fyne.Menu {
	return c.menu
}

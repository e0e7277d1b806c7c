package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the ledger actions shown above the receipt table
type Toolbar struct {
	container    *fyne.Container
	createButton *widget.Button
	deleteButton *widget.Button

	// Event handlers
	createHandler func()
	deleteHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.createButton = widget.NewButtonWithIcon("Создать чек", theme.ContentAddIcon(), nil)
	t.createButton.Importance = widget.HighImportance

	t.deleteButton = widget.NewButtonWithIcon("Удалить чек", theme.DeleteIcon(), nil)
	t.deleteButton.Importance = widget.MediumImportance
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.createButton,
		widget.NewSeparator(),
		t.deleteButton,
	)
}

// setupEventHandlers connects button callbacks
func (t *Toolbar) setupEventHandlers() {
	t.createButton.OnTapped = func() {
		if t.createHandler != nil {
			t.createHandler()
		}
	}

	t.deleteButton.OnTapped = func() {
		if t.deleteHandler != nil {
			t.deleteHandler()
		}
	}
}

// SetCreateHandler sets the handler for the create button
func (t *Toolbar) SetCreateHandler(handler func()) {
	t.createHandler = handler
}

// SetDeleteHandler sets the handler for the delete button
func (t *Toolbar) SetDeleteHandler(handler func()) {
	t.deleteHandler = handler
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

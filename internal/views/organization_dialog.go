package views

import (
	"receipt-editor/internal/models"
	"receipt-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SelectionWarning is shown when "Выбрать" is pressed with no row selected
const SelectionWarning = "Пожалуйста, выберите организацию"

// OrganizationDialog lists registered organizations for selection
type OrganizationDialog struct {
	parent fyne.Window
	dialog *dialog.CustomDialog

	table        *components.TextTable
	createButton *widget.Button
	selectButton *widget.Button
	cancelButton *widget.Button

	createHandler func()
	selectHandler func(index int) error
}

// NewOrganizationDialog creates the organization list over parent
func NewOrganizationDialog(parent fyne.Window, rows [][]string) *OrganizationDialog {
	d := &OrganizationDialog{parent: parent}
	d.createComponents()
	d.buildLayout()
	d.setupEventHandlers()
	d.SetRows(rows)
	return d
}

func (d *OrganizationDialog) createComponents() {
	d.table = components.NewTextTable(models.OrganizationColumns)
	d.createButton = widget.NewButton("Создать", nil)
	d.selectButton = widget.NewButton("Выбрать", nil)
	d.selectButton.Importance = widget.HighImportance
	d.cancelButton = widget.NewButton("Отмена", nil)
}

func (d *OrganizationDialog) buildLayout() {
	buttons := container.NewHBox(
		d.createButton,
		layout.NewSpacer(),
		d.cancelButton,
		d.selectButton,
	)
	content := container.NewBorder(nil, buttons, nil, nil, d.table.GetWidget())

	d.dialog = dialog.NewCustomWithoutButtons("Список организаций", content, d.parent)
	d.dialog.Resize(fyne.NewSize(1100, 450))
}

func (d *OrganizationDialog) setupEventHandlers() {
	d.createButton.OnTapped = func() {
		if d.createHandler != nil {
			d.createHandler()
		}
	}
	d.selectButton.OnTapped = d.Choose
	d.cancelButton.OnTapped = d.Hide
}

// SetCreateHandler sets the handler for "Создать"
func (d *OrganizationDialog) SetCreateHandler(handler func()) {
	d.createHandler = handler
}

// SetSelectHandler sets the handler for "Выбрать". A non-nil error keeps
// the dialog open and shows a warning.
func (d *OrganizationDialog) SetSelectHandler(handler func(index int) error) {
	d.selectHandler = handler
}

// Choose hands the selected row to the select handler and closes the
// dialog on success
func (d *OrganizationDialog) Choose() {
	if d.selectHandler == nil {
		return
	}
	if err := d.selectHandler(d.table.SelectedRow()); err != nil {
		dialog.ShowInformation("Предупреждение", SelectionWarning, d.parent)
		return
	}
	d.Hide()
}

// SetRows replaces the organization table contents
func (d *OrganizationDialog) SetRows(rows [][]string) {
	d.table.SetRows(rows)
}

// Rows returns the organization table contents
func (d *OrganizationDialog) Rows() [][]string {
	return d.table.Rows()
}

// SelectRow selects an organization row
func (d *OrganizationDialog) SelectRow(row int) {
	d.table.Select(row)
}

// Show displays the dialog
func (d *OrganizationDialog) Show() {
	d.dialog.Show()
}

// Hide closes the dialog
func (d *OrganizationDialog) Hide() {
	d.dialog.Hide()
}

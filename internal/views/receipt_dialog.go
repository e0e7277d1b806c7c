package views

import (
	"receipt-editor/internal/models"
	"receipt-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	// DateLayout is the format of the receipt date field
	DateLayout = "2006-01-02"
	// TimeLayout is the format of the receipt time field
	TimeLayout = "15:04:05"

	organizationPlaceholder = "Выбрать"
)

// ReceiptFields is the text content of the receipt form
type ReceiptFields struct {
	Cashier         string
	Shift           string
	Number          string
	Date            string
	Time            string
	CalculationType string
}

// ReceiptDialogState seeds a new receipt dialog
type ReceiptDialogState struct {
	Cashiers         []string
	CalculationTypes []string
	Fields           ReceiptFields
}

// ReceiptDialog is the receipt entry form with its live preview
type ReceiptDialog struct {
	parent fyne.Window
	dialog *dialog.CustomDialog

	organizationButton *widget.Button
	cashierEntry       *widget.SelectEntry
	shiftEntry         *widget.Entry
	numberEntry        *widget.Entry
	dateEntry          *widget.Entry
	timeEntry          *widget.Entry
	calculationSelect  *widget.Select
	itemsTable         *components.TextTable
	addItemButton      *widget.Button
	printButton        *widget.Button
	okButton           *widget.Button
	cancelButton       *widget.Button
	previewLabel       *widget.Label

	// Event handlers - connected to controller
	fieldsChangedHandler      func(ReceiptFields)
	chooseOrganizationHandler func()
	addItemHandler            func()
	printHandler              func()
	confirmHandler            func()
}

// NewReceiptDialog creates the receipt form on top of parent
func NewReceiptDialog(parent fyne.Window, state ReceiptDialogState) *ReceiptDialog {
	d := &ReceiptDialog{parent: parent}
	d.createComponents(state)
	d.buildLayout()
	d.setupEventHandlers()
	return d
}

// createComponents initializes form widgets with the seed values
func (d *ReceiptDialog) createComponents(state ReceiptDialogState) {
	d.organizationButton = widget.NewButton(organizationPlaceholder, nil)

	d.cashierEntry = widget.NewSelectEntry(state.Cashiers)
	d.cashierEntry.SetText(state.Fields.Cashier)

	d.shiftEntry = widget.NewEntry()
	d.shiftEntry.SetText(state.Fields.Shift)

	d.numberEntry = widget.NewEntry()
	d.numberEntry.SetText(state.Fields.Number)

	d.dateEntry = widget.NewEntry()
	d.dateEntry.SetPlaceHolder(DateLayout)
	d.dateEntry.Validator = validation.NewTime(DateLayout)
	d.dateEntry.SetText(state.Fields.Date)

	d.timeEntry = widget.NewEntry()
	d.timeEntry.SetPlaceHolder(TimeLayout)
	d.timeEntry.Validator = validation.NewTime(TimeLayout)
	d.timeEntry.SetText(state.Fields.Time)

	d.calculationSelect = widget.NewSelect(state.CalculationTypes, nil)
	d.calculationSelect.SetSelected(state.Fields.CalculationType)

	d.itemsTable = components.NewTextTable(models.ItemColumns)

	d.addItemButton = widget.NewButton("Добавить товар/услугу", nil)
	d.printButton = widget.NewButton("Печать чека", nil)
	d.okButton = widget.NewButton("OK", nil)
	d.okButton.Importance = widget.HighImportance
	d.cancelButton = widget.NewButton("Отмена", nil)

	d.previewLabel = widget.NewLabel("")
	d.previewLabel.TextStyle = fyne.TextStyle{Monospace: true}
}

// buildLayout places the form and items on the left and the preview on the right
func (d *ReceiptDialog) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("Организация", d.organizationButton),
		widget.NewFormItem("Кассир", d.cashierEntry),
		widget.NewFormItem("Смена", d.shiftEntry),
		widget.NewFormItem("Номер чека", d.numberEntry),
		widget.NewFormItem("Дата", d.dateEntry),
		widget.NewFormItem("Время", d.timeEntry),
		widget.NewFormItem("Тип расчета", d.calculationSelect),
	)

	buttons := container.NewHBox(
		d.addItemButton,
		d.printButton,
		layout.NewSpacer(),
		d.cancelButton,
		d.okButton,
	)

	left := container.NewBorder(form, buttons, nil, nil, d.itemsTable.GetWidget())
	right := container.NewScroll(d.previewLabel)

	split := container.NewHSplit(left, right)
	split.SetOffset(0.55)

	d.dialog = dialog.NewCustomWithoutButtons("Чек", split, d.parent)
	d.dialog.Resize(fyne.NewSize(1000, 650))
}

// setupEventHandlers forwards widget events to the controller
func (d *ReceiptDialog) setupEventHandlers() {
	d.cashierEntry.OnChanged = func(string) { d.notifyFieldsChanged() }
	d.shiftEntry.OnChanged = func(string) { d.notifyFieldsChanged() }
	d.numberEntry.OnChanged = func(string) { d.notifyFieldsChanged() }
	d.dateEntry.OnChanged = func(string) { d.notifyFieldsChanged() }
	d.timeEntry.OnChanged = func(string) { d.notifyFieldsChanged() }
	d.calculationSelect.OnChanged = func(string) { d.notifyFieldsChanged() }

	d.organizationButton.OnTapped = func() {
		if d.chooseOrganizationHandler != nil {
			d.chooseOrganizationHandler()
		}
	}
	d.addItemButton.OnTapped = func() {
		if d.addItemHandler != nil {
			d.addItemHandler()
		}
	}
	d.printButton.OnTapped = func() {
		if d.printHandler != nil {
			d.printHandler()
		}
	}
	d.okButton.OnTapped = func() {
		if d.confirmHandler != nil {
			d.confirmHandler()
		}
	}
	d.cancelButton.OnTapped = d.Hide
}

func (d *ReceiptDialog) notifyFieldsChanged() {
	if d.fieldsChangedHandler != nil {
		d.fieldsChangedHandler(d.Fields())
	}
}

// SetFieldsChangedHandler sets the handler called after any field edit
func (d *ReceiptDialog) SetFieldsChangedHandler(handler func(ReceiptFields)) {
	d.fieldsChangedHandler = handler
}

// SetChooseOrganizationHandler sets the handler for the organization button
func (d *ReceiptDialog) SetChooseOrganizationHandler(handler func()) {
	d.chooseOrganizationHandler = handler
}

// SetAddItemHandler sets the handler for "Добавить товар/услугу"
func (d *ReceiptDialog) SetAddItemHandler(handler func()) {
	d.addItemHandler = handler
}

// SetPrintHandler sets the handler for "Печать чека"
func (d *ReceiptDialog) SetPrintHandler(handler func()) {
	d.printHandler = handler
}

// SetConfirmHandler sets the handler for "OK"
func (d *ReceiptDialog) SetConfirmHandler(handler func()) {
	d.confirmHandler = handler
}

// Fields returns the current form text
func (d *ReceiptDialog) Fields() ReceiptFields {
	return ReceiptFields{
		Cashier:         d.cashierEntry.Text,
		Shift:           d.shiftEntry.Text,
		Number:          d.numberEntry.Text,
		Date:            d.dateEntry.Text,
		Time:            d.timeEntry.Text,
		CalculationType: d.calculationSelect.Selected,
	}
}

// SetFields replaces the form text and notifies the controller once
func (d *ReceiptDialog) SetFields(fields ReceiptFields) {
	handler := d.fieldsChangedHandler
	d.fieldsChangedHandler = nil

	d.cashierEntry.SetText(fields.Cashier)
	d.shiftEntry.SetText(fields.Shift)
	d.numberEntry.SetText(fields.Number)
	d.dateEntry.SetText(fields.Date)
	d.timeEntry.SetText(fields.Time)
	d.calculationSelect.SetSelected(fields.CalculationType)

	d.fieldsChangedHandler = handler
	d.notifyFieldsChanged()
}

// SetOrganizationName shows the chosen organization on the button
func (d *ReceiptDialog) SetOrganizationName(name string) {
	if name == "" {
		name = organizationPlaceholder
	}
	d.organizationButton.SetText(name)
}

// OrganizationName returns the organization button label
func (d *ReceiptDialog) OrganizationName() string {
	return d.organizationButton.Text
}

// SetItems replaces the items table contents
func (d *ReceiptDialog) SetItems(rows [][]string) {
	d.itemsTable.SetRows(rows)
}

// Items returns the rows shown in the items table
func (d *ReceiptDialog) Items() [][]string {
	return d.itemsTable.Rows()
}

// SetPreview replaces the preview text
func (d *ReceiptDialog) SetPreview(text string) {
	d.previewLabel.SetText(text)
}

// Preview returns the preview text
func (d *ReceiptDialog) Preview() string {
	return d.previewLabel.Text
}

// ShowInformation displays an information dialog over the form
func (d *ReceiptDialog) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, d.parent)
}

// Show displays the form
func (d *ReceiptDialog) Show() {
	d.dialog.Show()
}

// Hide closes the form
func (d *ReceiptDialog) Hide() {
	d.dialog.Hide()
}

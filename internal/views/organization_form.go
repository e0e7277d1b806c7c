package views

import (
	"receipt-editor/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// OrganizationForm edits the properties of a new organization
type OrganizationForm struct {
	dialog *dialog.FormDialog

	categorySelect   *widget.Select
	nameEntry        *widget.Entry
	tradeObjectEntry *widget.Entry
	addressEntry     *widget.Entry
	contactEntry     *widget.Entry
	taxSystemEntry   *widget.Entry
	innEntry         *widget.Entry
	znkhtEntry       *widget.Entry
	rnkhtEntry       *widget.Entry

	confirmHandler func(models.Organization)
}

// NewOrganizationForm creates an empty organization form over parent
func NewOrganizationForm(parent fyne.Window) *OrganizationForm {
	f := &OrganizationForm{}
	f.createComponents()

	labels := models.OrganizationColumns
	items := []*widget.FormItem{
		widget.NewFormItem(labels[0], f.categorySelect),
		widget.NewFormItem(labels[1], f.nameEntry),
		widget.NewFormItem(labels[2], f.tradeObjectEntry),
		widget.NewFormItem(labels[3], f.addressEntry),
		widget.NewFormItem(labels[4], f.contactEntry),
		widget.NewFormItem(labels[5], f.taxSystemEntry),
		widget.NewFormItem(labels[6], f.innEntry),
		widget.NewFormItem(labels[7], f.znkhtEntry),
		widget.NewFormItem(labels[8], f.rnkhtEntry),
	}
	f.dialog = dialog.NewForm("Свойства организации", "OK", "Отмена", items, func(confirmed bool) {
		if confirmed && f.confirmHandler != nil {
			f.confirmHandler(f.Organization())
		}
	}, parent)

	return f
}

func (f *OrganizationForm) createComponents() {
	categories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = string(c)
	}
	f.categorySelect = widget.NewSelect(categories, nil)
	f.categorySelect.SetSelected(categories[0])

	f.nameEntry = widget.NewEntry()
	f.tradeObjectEntry = widget.NewEntry()
	f.addressEntry = widget.NewEntry()
	f.contactEntry = widget.NewEntry()
	f.taxSystemEntry = widget.NewEntry()
	f.innEntry = widget.NewEntry()
	f.znkhtEntry = widget.NewEntry()
	f.rnkhtEntry = widget.NewEntry()
}

// SetConfirmHandler sets the handler called with the new organization on OK
func (f *OrganizationForm) SetConfirmHandler(handler func(models.Organization)) {
	f.confirmHandler = handler
}

// Organization returns the organization described by the form
func (f *OrganizationForm) Organization() models.Organization {
	return models.Organization{
		Category:    models.Category(f.categorySelect.Selected),
		Name:        f.nameEntry.Text,
		TradeObject: f.tradeObjectEntry.Text,
		Address:     f.addressEntry.Text,
		Contact:     f.contactEntry.Text,
		TaxSystem:   f.taxSystemEntry.Text,
		INN:         f.innEntry.Text,
		ZNKHT:       f.znkhtEntry.Text,
		RNKHT:       f.rnkhtEntry.Text,
	}
}

// SetOrganization fills the form from org
func (f *OrganizationForm) SetOrganization(org models.Organization) {
	f.categorySelect.SetSelected(string(org.Category))
	f.nameEntry.SetText(org.Name)
	f.tradeObjectEntry.SetText(org.TradeObject)
	f.addressEntry.SetText(org.Address)
	f.contactEntry.SetText(org.Contact)
	f.taxSystemEntry.SetText(org.TaxSystem)
	f.innEntry.SetText(org.INN)
	f.znkhtEntry.SetText(org.ZNKHT)
	f.rnkhtEntry.SetText(org.RNKHT)
}

// Submit accepts the form as if OK was pressed
func (f *OrganizationForm) Submit() {
	f.dialog.Submit()
}

// Show displays the form
func (f *OrganizationForm) Show() {
	f.dialog.Show()
}

package views

import (
	"receipt-editor/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ItemDialog collects one item line
type ItemDialog struct {
	dialog *dialog.FormDialog

	nameEntry     *widget.Entry
	quantityEntry *widget.Entry
	priceEntry    *widget.Entry
	discountEntry *widget.Entry
	vatEntry      *widget.Entry

	confirmHandler func(models.ItemInput)
}

// NewItemDialog creates the item form pre-filled with initial
func NewItemDialog(parent fyne.Window, initial models.ItemInput) *ItemDialog {
	d := &ItemDialog{}
	d.createComponents()
	d.SetInput(initial)

	items := []*widget.FormItem{
		widget.NewFormItem("Наименование", d.nameEntry),
		widget.NewFormItem("Количество", d.quantityEntry),
		widget.NewFormItem("Цена", d.priceEntry),
		widget.NewFormItem("Скидка (%)", d.discountEntry),
		widget.NewFormItem("НДС (%)", d.vatEntry),
	}
	d.dialog = dialog.NewForm("Добавить товар/услугу", "OK", "Отмена", items, func(confirmed bool) {
		if confirmed {
			d.confirm()
		}
	}, parent)

	return d
}

func (d *ItemDialog) createComponents() {
	d.nameEntry = widget.NewEntry()
	d.quantityEntry = widget.NewEntry()
	d.priceEntry = widget.NewEntry()
	d.discountEntry = widget.NewEntry()
	d.vatEntry = widget.NewEntry()
}

func (d *ItemDialog) confirm() {
	if d.confirmHandler != nil {
		d.confirmHandler(d.Input())
	}
}

// SetConfirmHandler sets the handler called with the form text on OK
func (d *ItemDialog) SetConfirmHandler(handler func(models.ItemInput)) {
	d.confirmHandler = handler
}

// Input returns the current form text
func (d *ItemDialog) Input() models.ItemInput {
	return models.ItemInput{
		Name:     d.nameEntry.Text,
		Quantity: d.quantityEntry.Text,
		Price:    d.priceEntry.Text,
		Discount: d.discountEntry.Text,
		VAT:      d.vatEntry.Text,
	}
}

// SetInput replaces the form text
func (d *ItemDialog) SetInput(input models.ItemInput) {
	d.nameEntry.SetText(input.Name)
	d.quantityEntry.SetText(input.Quantity)
	d.priceEntry.SetText(input.Price)
	d.discountEntry.SetText(input.Discount)
	d.vatEntry.SetText(input.VAT)
}

// Submit accepts the form as if OK was pressed
func (d *ItemDialog) Submit() {
	d.dialog.Submit()
}

// Show displays the form
func (d *ItemDialog) Show() {
	d.dialog.Show()
}

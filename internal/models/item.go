package models

// ItemColumns are the headers of the item table in the receipt form.
var ItemColumns = []string{"Наименование", "Кол-во", "Цена", "Скидка (%)", "НДС (%)", "Стоимость"}

// ItemInput holds the raw text of the item form.
type ItemInput struct {
	Name     string
	Quantity string
	Price    string
	Discount string
	VAT      string
}

// Item is one purchasable line of a receipt. Items are immutable once built.
type Item struct {
	Name            string
	Quantity        float64
	Price           float64
	DiscountPercent float64
	VATPercent      float64

	// rejected marks an item whose numeric input failed to parse and was
	// zeroed. Such rows render the bare "0" instead of "0.0".
	rejected bool
}

// NewItem parses the form text into an Item. Blank numeric fields count as
// "0". If any of the four numbers fails to parse, all four are zeroed.
func NewItem(input ItemInput) Item {
	item := Item{Name: input.Name}

	values := make([]float64, 0, 4)
	for _, text := range []string{input.Quantity, input.Price, input.Discount, input.VAT} {
		if text == "" {
			text = "0"
		}
		v, err := ParseNumber(text)
		if err != nil {
			item.rejected = true
			return item
		}
		values = append(values, v)
	}

	item.Quantity = values[0]
	item.Price = values[1]
	item.DiscountPercent = values[2]
	item.VATPercent = values[3]
	return item
}

// Rejected reports whether the numeric input was discarded.
func (i Item) Rejected() bool {
	return i.rejected
}

// Cost is the discounted line cost. VAT is not applied.
func (i Item) Cost() float64 {
	return i.Quantity * i.Price * (1 - i.DiscountPercent/100)
}

// Amount is the undiscounted quantity times price shown on the preview.
func (i Item) Amount() float64 {
	// The conversion keeps the product from being fused into a caller's sum.
	return float64(i.Quantity * i.Price)
}

// Row returns the item as the six text cells of the item table.
func (i Item) Row() []string {
	number := FormatNumber
	if i.rejected {
		number = func(float64) string { return "0" }
	}
	return []string{
		i.Name,
		number(i.Quantity),
		number(i.Price),
		number(i.DiscountPercent),
		number(i.VATPercent),
		FormatAmount(i.Cost()),
	}
}

package services

import (
	"strings"
	"unicode/utf8"

	"receipt-editor/internal/idgen"
	"receipt-editor/internal/models"
)

const (
	organizationPlaceholder = "Не выбрано"
	cashierPlaceholder      = "Не указан"
	shiftPlaceholder        = "Не указана"

	receiptTitle = "Кассовый чек"
	totalLabel   = "ИТОГО"

	// amountWidth is the right-aligned column holding the total.
	amountWidth = 10
)

// DefaultPreviewWidth is the paper width of the preview in characters.
const DefaultPreviewWidth = 50

// DefaultContact fills the contact line of the preview.
const DefaultContact = "+7 (XXX) XXX-XX-XX"

// PreviewRenderer turns a draft into receipt text as it would come off a
// narrow cash-register printer.
type PreviewRenderer struct {
	ids     idgen.Generator
	width   int
	contact string
}

// NewPreviewRenderer creates a renderer. Widths below the amount column
// fall back to DefaultPreviewWidth.
func NewPreviewRenderer(ids idgen.Generator, width int, contact string) *PreviewRenderer {
	if width <= amountWidth {
		width = DefaultPreviewWidth
	}
	return &PreviewRenderer{
		ids:     ids,
		width:   width,
		contact: contact,
	}
}

// Render composes the preview text. An empty receipt number is replaced by
// a freshly generated one on every call; it is never written back to the
// draft. Line amounts and the total are quantity × price without discount.
func (r *PreviewRenderer) Render(draft *models.ReceiptDraft) string {
	organization := organizationPlaceholder
	if org, ok := draft.Organization(); ok && org.Name != "" {
		organization = org.Name
	}
	cashier := orDefault(draft.Cashier, cashierPlaceholder)
	shift := orDefault(draft.Shift, shiftPlaceholder)
	number := draft.Number
	if number == "" {
		number = r.ids.ReceiptNumber()
	}

	separator := strings.Repeat("=", r.width)

	var b strings.Builder
	b.WriteString(center(organization, r.width) + "\n")
	b.WriteString("Адрес расчета: " + organization + "\n")
	b.WriteString("Контактные данные: " + r.contact + "\n")
	b.WriteString("\n" + center(receiptTitle, r.width) + "\n")
	b.WriteString("Номер чека: " + number + "\n")
	b.WriteString("Смена: " + shift + "\n")
	b.WriteString("Кассир: " + cashier + "\n")
	b.WriteString(separator + "\n")

	var total float64
	for _, item := range draft.Items() {
		amount := item.Amount()
		total += amount

		b.WriteString(item.Name + ": " + models.FormatNumber(item.Quantity) +
			" x " + models.FormatAmount(item.Price) +
			" = " + models.FormatAmount(amount) + "\n")
	}

	b.WriteString(separator + "\n")
	b.WriteString(padRight(totalLabel, r.width-amountWidth) + padLeft(models.FormatAmount(total), amountWidth) + "\n")

	return b.String()
}

func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// center pads s to width characters. When the padding is odd the extra
// space goes left only for odd widths. Longer text is returned unchanged.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	margin := width - n
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

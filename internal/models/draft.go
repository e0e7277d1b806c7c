package models

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptDraft is the state of the receipt form while it is being filled
// in. Every field may still be empty; placeholders are applied at render
// time, not stored.
type ReceiptDraft struct {
	// ID correlates log lines of one form session. It is not part of the
	// receipt and is dropped on confirmation.
	ID uuid.UUID

	Cashier         string
	Shift           string
	Number          string
	CalculationType CalculationType
	Timestamp       time.Time

	organization *Organization
	items        []Item
}

// NewReceiptDraft starts a draft stamped with now, the default calculation
// type and the given cashier.
func NewReceiptDraft(now time.Time, cashier string) *ReceiptDraft {
	return &ReceiptDraft{
		ID:              uuid.New(),
		Cashier:         cashier,
		CalculationType: CalculationTypes[0],
		Timestamp:       now,
	}
}

// SelectOrganization stores a copy of org. Later changes to the caller's
// value do not reach the draft.
func (d *ReceiptDraft) SelectOrganization(org Organization) {
	d.organization = &org
}

// Organization returns the selected organization, if any.
func (d *ReceiptDraft) Organization() (Organization, bool) {
	if d.organization == nil {
		return Organization{}, false
	}
	return *d.organization, true
}

// AddItem appends item to the draft.
func (d *ReceiptDraft) AddItem(item Item) {
	d.items = append(d.items, item)
}

// Items returns the draft's items in insertion order.
func (d *ReceiptDraft) Items() []Item {
	items := make([]Item, len(d.items))
	copy(items, d.items)
	return items
}

// ItemRows returns the item table cells.
func (d *ReceiptDraft) ItemRows() [][]string {
	rows := make([][]string, 0, len(d.items))
	for _, item := range d.items {
		rows = append(rows, item.Row())
	}
	return rows
}

// Receipt freezes the draft. The receipt number is kept exactly as typed,
// so an empty number stays empty.
func (d *ReceiptDraft) Receipt() Receipt {
	receipt := Receipt{
		Cashier:         d.Cashier,
		Shift:           d.Shift,
		Number:          d.Number,
		CalculationType: d.CalculationType,
		Timestamp:       d.Timestamp,
		Items:           d.Items(),
	}
	if receipt.CalculationType == "" {
		receipt.CalculationType = CalculationTypes[0]
	}
	if d.organization != nil {
		org := *d.organization
		receipt.Organization = &org
	}
	return receipt
}

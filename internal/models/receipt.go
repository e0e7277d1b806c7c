package models

import "time"

// TimestampLayout is how receipt timestamps appear in the ledger.
const TimestampLayout = "2006-01-02 15:04:05"

// CalculationType is the kind of a cash transaction.
type CalculationType string

const (
	Income        CalculationType = "Приход"
	Expense       CalculationType = "Расход"
	IncomeReturn  CalculationType = "Возврат прихода"
	ExpenseReturn CalculationType = "Возврат расхода"
)

// CalculationTypes lists the calculation types in display order. The first
// one is the default.
var CalculationTypes = []CalculationType{Income, Expense, IncomeReturn, ExpenseReturn}

// ParseCalculationType maps display text back to a CalculationType,
// falling back to the default for unknown text.
func ParseCalculationType(text string) CalculationType {
	for _, ct := range CalculationTypes {
		if string(ct) == text {
			return ct
		}
	}
	return CalculationTypes[0]
}

// LedgerColumns are the headers of the receipt list in the main window.
var LedgerColumns = []string{
	"Категория", "Наименование", "Организация (ККМ)", "Кассир",
	"Смена", "Чек", "Признак", "Дата/Время", "Способ оплаты",
}

// Receipt is a confirmed receipt as stored in the ledger.
type Receipt struct {
	// Organization is a copy taken at selection time, nil if none was chosen.
	Organization    *Organization
	Cashier         string
	Shift           string
	Number          string
	CalculationType CalculationType
	Timestamp       time.Time
	Items           []Item
}

// Category is inherited from the selected organization.
func (r Receipt) Category() Category {
	if r.Organization == nil {
		return ""
	}
	return r.Organization.Category
}

// OrganizationName returns the selected organization's name or "".
func (r Receipt) OrganizationName() string {
	if r.Organization == nil {
		return ""
	}
	return r.Organization.Name
}

// TotalCost sums the discounted cost of every item.
func (r Receipt) TotalCost() float64 {
	var total float64
	for _, item := range r.Items {
		total += float64(item.Cost())
	}
	return total
}

// Row returns the receipt as the nine cells of the ledger table. The name
// and payment method columns have no source and stay empty.
func (r Receipt) Row() []string {
	return []string{
		string(r.Category()),
		"",
		r.OrganizationName(),
		r.Cashier,
		r.Shift,
		r.Number,
		string(r.CalculationType),
		r.Timestamp.Format(TimestampLayout),
		"",
	}
}

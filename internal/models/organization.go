package models

// Category classifies what an organization sells.
type Category string

const (
	CategoryParts    Category = "Запчасти"
	CategoryServices Category = "Работы"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryParts, CategoryServices}

// OrganizationColumns are the headers of the organization list.
var OrganizationColumns = []string{
	"Категория", "Наименование", "Торговый объект", "Адрес расчета", "Контактные данные",
	"Система налогообложения", "ИНН", "ЗН КХТ", "РН КХТ",
}

// Organization is a seller entity bound to a cash register. All fields
// are free text; ZNKHT and RNKHT are the register's serial and
// registration numbers.
type Organization struct {
	Category    Category
	Name        string
	TradeObject string
	Address     string
	Contact     string
	TaxSystem   string
	INN         string
	ZNKHT       string
	RNKHT       string
}

// Row returns the organization as the nine cells of the organization list.
func (o Organization) Row() []string {
	return []string{
		string(o.Category),
		o.Name,
		o.TradeObject,
		o.Address,
		o.Contact,
		o.TaxSystem,
		o.INN,
		o.ZNKHT,
		o.RNKHT,
	}
}

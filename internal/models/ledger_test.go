package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerWithNumbers(numbers ...string) *ReceiptLedger {
	ledger := NewReceiptLedger()
	for _, n := range numbers {
		ledger.Create(Receipt{Number: n, CalculationType: Income})
	}
	return ledger
}

func ledgerNumbers(l *ReceiptLedger) []string {
	numbers := make([]string, 0, l.Len())
	for _, row := range l.Rows() {
		numbers = append(numbers, row[5])
	}
	return numbers
}

func TestReceiptLedgerCreateAppends(t *testing.T) {
	ledger := NewReceiptLedger()

	assert.Equal(t, 0, ledger.Create(Receipt{Number: "1"}))
	assert.Equal(t, 1, ledger.Create(Receipt{Number: "2"}))
	assert.Equal(t, []string{"1", "2"}, ledgerNumbers(ledger))
}

func TestReceiptLedgerDelete(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		removed bool
		want    []string
	}{
		{"unselected", -1, false, []string{"1", "2", "3"}},
		{"past the end", 3, false, []string{"1", "2", "3"}},
		{"first", 0, true, []string{"2", "3"}},
		{"middle shifts later rows", 1, true, []string{"1", "3"}},
		{"last", 2, true, []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := ledgerWithNumbers("1", "2", "3")
			assert.Equal(t, tt.removed, ledger.Delete(tt.index))
			assert.Equal(t, tt.want, ledgerNumbers(ledger))
		})
	}
}

func TestReceiptLedgerGet(t *testing.T) {
	ledger := ledgerWithNumbers("1", "2")

	receipt, err := ledger.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "2", receipt.Number)

	_, err = ledger.Get(-1)
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = ledger.Get(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReceiptRow(t *testing.T) {
	org := Organization{Category: CategoryServices, Name: "ООО Ромашка"}
	receipt := Receipt{
		Organization:    &org,
		Cashier:         "Васильев Григорий Павлович",
		Shift:           "12",
		Number:          "",
		CalculationType: IncomeReturn,
		Timestamp:       time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC),
	}

	assert.Equal(t, []string{
		"Работы", "", "ООО Ромашка", "Васильев Григорий Павлович",
		"12", "", "Возврат прихода", "2024-03-05 14:07:09", "",
	}, receipt.Row())
}

func TestReceiptRowWithoutOrganization(t *testing.T) {
	row := Receipt{CalculationType: Income}.Row()

	assert.Equal(t, "", row[0])
	assert.Equal(t, "", row[2])
	assert.Len(t, row, len(LedgerColumns))
}

func TestParseCalculationType(t *testing.T) {
	assert.Equal(t, Expense, ParseCalculationType("Расход"))
	assert.Equal(t, ExpenseReturn, ParseCalculationType("Возврат расхода"))
	assert.Equal(t, Income, ParseCalculationType(""))
	assert.Equal(t, Income, ParseCalculationType("unknown"))
}

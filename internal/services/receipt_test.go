package services

import (
	"testing"
	"time"

	"receipt-editor/internal/idgen"
	"receipt-editor/internal/logger"
	"receipt-editor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEntry struct {
	level     string
	component string
	message   string
	fields    map[string]interface{}
}

type recordingLogger struct {
	entries []recordedEntry
}

func (r *recordingLogger) record(level, component, message string, fields map[string]interface{}) {
	r.entries = append(r.entries, recordedEntry{level, component, message, fields})
}

func (r *recordingLogger) Debug(c, m string, f map[string]interface{})   { r.record("debug", c, m, f) }
func (r *recordingLogger) Info(c, m string, f map[string]interface{})    { r.record("info", c, m, f) }
func (r *recordingLogger) Warning(c, m string, f map[string]interface{}) { r.record("warn", c, m, f) }
func (r *recordingLogger) Error(c string, err error, f map[string]interface{}) {
	r.record("error", c, err.Error(), f)
}

func (r *recordingLogger) messages(level string) []string {
	var out []string
	for _, e := range r.entries {
		if e.level == level {
			out = append(out, e.message)
		}
	}
	return out
}

type serviceFixture struct {
	service  *ReceiptService
	registry *models.OrganizationRegistry
	ledger   *models.ReceiptLedger
	log      *recordingLogger
}

func newServiceFixture() serviceFixture {
	registry := models.NewOrganizationRegistry()
	ledger := models.NewReceiptLedger()
	log := &recordingLogger{}
	ids := idgen.NewSequence([]string{"01234567"}, []string{"100200"})

	service := NewReceiptService(registry, ledger, ids, log, ServiceOptions{
		Cashiers: []string{"Первый", "Второй"},
		Now:      func() time.Time { return fixedNow },
	})
	return serviceFixture{service: service, registry: registry, ledger: ledger, log: log}
}

func TestNewDraftDefaults(t *testing.T) {
	f := newServiceFixture()

	draft := f.service.NewDraft()

	assert.Equal(t, "Первый", draft.Cashier)
	assert.Equal(t, models.Income, draft.CalculationType)
	assert.Equal(t, fixedNow, draft.Timestamp)
	assert.Equal(t, []string{"Первый", "Второй"}, f.service.Cashiers())
}

func TestNewItemInputUsesGeneratedName(t *testing.T) {
	f := newServiceFixture()

	input := f.service.NewItemInput()

	assert.Equal(t, "01234567", input.Name)
	assert.Empty(t, input.Quantity)
}

func TestAddItem(t *testing.T) {
	f := newServiceFixture()
	draft := f.service.NewDraft()

	item := f.service.AddItem(draft, models.ItemInput{Name: "A", Quantity: "2", Price: "10"})

	assert.Equal(t, []string{"A", "2.0", "10.0", "0.0", "0.0", "20.00"}, item.Row())
	assert.Len(t, draft.Items(), 1)
	assert.Contains(t, f.log.messages("debug"), "item added")
}

func TestAddItemMalformedIsNotAnError(t *testing.T) {
	f := newServiceFixture()
	draft := f.service.NewDraft()

	item := f.service.AddItem(draft, models.ItemInput{Name: "A", Quantity: "abc", Price: "10"})

	assert.Equal(t, []string{"A", "0", "0", "0", "0", "0.00"}, item.Row())
	assert.Len(t, draft.Items(), 1)
	assert.Contains(t, f.log.messages("warn"), "item numbers rejected, zeroed")
}

func TestSelectOrganization(t *testing.T) {
	f := newServiceFixture()
	draft := f.service.NewDraft()
	f.service.RegisterOrganization(models.Organization{Category: models.CategoryParts, Name: "Первая"})
	f.service.RegisterOrganization(models.Organization{Category: models.CategoryServices, Name: "Вторая"})

	org, err := f.service.SelectOrganization(draft, 1)
	require.NoError(t, err)
	assert.Equal(t, "Вторая", org.Name)

	selected, ok := draft.Organization()
	require.True(t, ok)
	assert.Equal(t, models.CategoryServices, selected.Category)
	assert.Len(t, f.service.Organizations(), 2)
}

func TestSelectOrganizationWithoutRow(t *testing.T) {
	f := newServiceFixture()
	draft := f.service.NewDraft()
	f.service.RegisterOrganization(models.Organization{Name: "Первая"})
	_, err := f.service.SelectOrganization(draft, 0)
	require.NoError(t, err)

	_, err = f.service.SelectOrganization(draft, -1)
	assert.ErrorIs(t, err, models.ErrNoSelection)

	selected, ok := draft.Organization()
	require.True(t, ok, "a failed selection keeps the previous one")
	assert.Equal(t, "Первая", selected.Name)
	assert.Contains(t, f.log.messages("warn"), "organization selection rejected")
}

func TestConfirmAppendsToLedger(t *testing.T) {
	f := newServiceFixture()
	draft := f.service.NewDraft()
	f.service.RegisterOrganization(models.Organization{Category: models.CategoryParts, Name: "Первая"})
	_, err := f.service.SelectOrganization(draft, 0)
	require.NoError(t, err)
	draft.Shift = "5"
	draft.CalculationType = models.Expense

	// A render with an empty number must not leak into the stored receipt.
	_ = f.service.Preview(draft)
	pos := f.service.Confirm(draft)

	assert.Equal(t, 0, pos)
	assert.Equal(t, [][]string{{
		"Запчасти", "", "Первая", "Первый", "5", "", "Расход", "2024-05-17 09:30:00", "",
	}}, f.service.Receipts())
	assert.Contains(t, f.log.messages("info"), "receipt created")
}

func TestDeleteReceipt(t *testing.T) {
	f := newServiceFixture()
	for _, n := range []string{"1", "2", "3"} {
		draft := f.service.NewDraft()
		draft.Number = n
		f.service.Confirm(draft)
	}

	assert.False(t, f.service.DeleteReceipt(-1))
	receipts, _ := f.service.Counts()
	assert.Equal(t, 3, receipts)

	assert.True(t, f.service.DeleteReceipt(0))
	rows := f.service.Receipts()
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0][5])
	assert.Equal(t, "3", rows[1][5])
}

func TestPrintIsNotImplemented(t *testing.T) {
	f := newServiceFixture()

	err := f.service.Print(f.service.NewDraft())
	assert.ErrorIs(t, err, ErrPrintNotImplemented)
}

func TestNewReceiptServiceDefaults(t *testing.T) {
	service := NewReceiptService(models.NewOrganizationRegistry(), models.NewReceiptLedger(),
		idgen.NewSequence(nil, []string{"777777"}), nil, ServiceOptions{})

	draft := service.NewDraft()
	assert.Equal(t, "", draft.Cashier)
	assert.WithinDuration(t, time.Now(), draft.Timestamp, time.Minute)
	assert.Contains(t, service.Preview(draft), "Контактные данные: "+DefaultContact+"\n")
}

var _ logger.Logger = (*recordingLogger)(nil)

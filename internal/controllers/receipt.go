package controllers

import (
	"errors"
	"time"

	"receipt-editor/internal/logger"
	"receipt-editor/internal/models"
	"receipt-editor/internal/services"
	"receipt-editor/internal/views"

	"fyne.io/fyne/v2"
)

const receiptComponent = "ReceiptController"

// ReceiptController drives one receipt form from opening to OK
type ReceiptController struct {
	receiptService *services.ReceiptService
	logger         logger.Logger
	window         fyne.Window

	draft    *models.ReceiptDraft
	openedAt time.Time
	view     *views.ReceiptDialog

	confirmedHandler              func(position int)
	organizationRegisteredHandler func(position int)
}

// NewReceiptController starts a draft and builds its form over window
func NewReceiptController(receiptService *services.ReceiptService, window fyne.Window, log logger.Logger) *ReceiptController {
	if log == nil {
		log = logger.NoOp{}
	}

	draft := receiptService.NewDraft()
	rc := &ReceiptController{
		receiptService: receiptService,
		logger:         log,
		window:         window,
		draft:          draft,
		openedAt:       draft.Timestamp,
	}

	calculationTypes := make([]string, len(models.CalculationTypes))
	for i, ct := range models.CalculationTypes {
		calculationTypes[i] = string(ct)
	}

	rc.view = views.NewReceiptDialog(window, views.ReceiptDialogState{
		Cashiers:         receiptService.Cashiers(),
		CalculationTypes: calculationTypes,
		Fields: views.ReceiptFields{
			Cashier:         draft.Cashier,
			Shift:           draft.Shift,
			Number:          draft.Number,
			Date:            draft.Timestamp.Format(views.DateLayout),
			Time:            draft.Timestamp.Format(views.TimeLayout),
			CalculationType: string(draft.CalculationType),
		},
	})
	rc.setupViewEventHandlers()
	rc.RefreshPreview()

	return rc
}

func (rc *ReceiptController) setupViewEventHandlers() {
	rc.view.SetFieldsChangedHandler(rc.ApplyFields)
	rc.view.SetChooseOrganizationHandler(func() { rc.ChooseOrganization() })
	rc.view.SetAddItemHandler(func() { rc.OpenItemDialog() })
	rc.view.SetPrintHandler(rc.Print)
	rc.view.SetConfirmHandler(rc.Confirm)
}

// SetConfirmedHandler sets the handler called with the ledger position of
// the stored receipt
func (rc *ReceiptController) SetConfirmedHandler(handler func(position int)) {
	rc.confirmedHandler = handler
}

// SetOrganizationRegisteredHandler sets the handler called after a new
// organization is added from this form
func (rc *ReceiptController) SetOrganizationRegisteredHandler(handler func(position int)) {
	rc.organizationRegisteredHandler = handler
}

// Draft returns the receipt being edited
func (rc *ReceiptController) Draft() *models.ReceiptDraft {
	return rc.draft
}

// View returns the receipt form
func (rc *ReceiptController) View() *views.ReceiptDialog {
	return rc.view
}

// Open shows the receipt form
func (rc *ReceiptController) Open() {
	rc.view.Show()
}

// ApplyFields copies the form text into the draft and re-renders the
// preview. A date or time that does not parse falls back to the moment
// the form was opened.
func (rc *ReceiptController) ApplyFields(fields views.ReceiptFields) {
	rc.draft.Cashier = fields.Cashier
	rc.draft.Shift = fields.Shift
	rc.draft.Number = fields.Number
	rc.draft.CalculationType = models.ParseCalculationType(fields.CalculationType)

	stamp, err := time.ParseInLocation(
		views.DateLayout+" "+views.TimeLayout,
		fields.Date+" "+fields.Time,
		rc.openedAt.Location(),
	)
	if err != nil {
		rc.logger.Debug(receiptComponent, "timestamp not parsed, using form opening time", map[string]interface{}{
			"draft_id": rc.draft.ID.String(),
			"date":     fields.Date,
			"time":     fields.Time,
		})
		stamp = rc.openedAt
	}
	rc.draft.Timestamp = stamp

	rc.RefreshPreview()
}

// OpenItemDialog shows the item form with a generated placeholder name
func (rc *ReceiptController) OpenItemDialog() *views.ItemDialog {
	dlg := views.NewItemDialog(rc.window, rc.receiptService.NewItemInput())
	dlg.SetConfirmHandler(rc.AddItem)
	dlg.Show()
	return dlg
}

// AddItem appends an item built from the item form text
func (rc *ReceiptController) AddItem(input models.ItemInput) {
	rc.receiptService.AddItem(rc.draft, input)
	rc.view.SetItems(rc.draft.ItemRows())
	rc.RefreshPreview()
}

// ChooseOrganization shows the organization list
func (rc *ReceiptController) ChooseOrganization() *views.OrganizationDialog {
	dlg := views.NewOrganizationDialog(rc.window, rc.receiptService.Organizations())
	dlg.SetSelectHandler(rc.SelectOrganization)
	dlg.SetCreateHandler(func() { rc.OpenOrganizationForm(dlg) })
	dlg.Show()
	return dlg
}

// OpenOrganizationForm shows an empty organization form. On OK the new
// organization is registered and the list is refreshed.
func (rc *ReceiptController) OpenOrganizationForm(list *views.OrganizationDialog) *views.OrganizationForm {
	form := views.NewOrganizationForm(rc.window)
	form.SetConfirmHandler(func(org models.Organization) {
		rc.RegisterOrganization(org)
		if list != nil {
			list.SetRows(rc.receiptService.Organizations())
		}
	})
	form.Show()
	return form
}

// RegisterOrganization adds org to the registry
func (rc *ReceiptController) RegisterOrganization(org models.Organization) int {
	position := rc.receiptService.RegisterOrganization(org)
	if rc.organizationRegisteredHandler != nil {
		rc.organizationRegisteredHandler(position)
	}
	return position
}

// SelectOrganization attaches the organization at index to the draft
func (rc *ReceiptController) SelectOrganization(index int) error {
	org, err := rc.receiptService.SelectOrganization(rc.draft, index)
	if err != nil {
		return err
	}

	rc.view.SetOrganizationName(org.Name)
	rc.RefreshPreview()
	return nil
}

// Print reports that fiscal printing is unavailable
func (rc *ReceiptController) Print() {
	err := rc.receiptService.Print(rc.draft)
	if errors.Is(err, services.ErrPrintNotImplemented) {
		rc.view.ShowInformation("Печать", "Функция печати пока не реализована")
		return
	}
	if err != nil {
		rc.logger.Error(receiptComponent, err, map[string]interface{}{
			"draft_id": rc.draft.ID.String(),
		})
	}
}

// Confirm stores the draft in the ledger and closes the form
func (rc *ReceiptController) Confirm() {
	position := rc.receiptService.Confirm(rc.draft)
	rc.view.Hide()

	if rc.confirmedHandler != nil {
		rc.confirmedHandler(position)
	}
}

// RefreshPreview re-renders the receipt preview
func (rc *ReceiptController) RefreshPreview() {
	rc.view.SetPreview(rc.receiptService.Preview(rc.draft))
}

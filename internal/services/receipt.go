package services

import (
	"errors"
	"time"

	"receipt-editor/internal/idgen"
	"receipt-editor/internal/logger"
	"receipt-editor/internal/models"
)

// ErrPrintNotImplemented is returned by Print. Fiscal printing is not
// supported.
var ErrPrintNotImplemented = errors.New("printing is not implemented")

const serviceComponent = "ReceiptService"

// ReceiptService carries out the operations behind the receipt forms.
// It owns no state besides the injected collections.
type ReceiptService struct {
	registry *models.OrganizationRegistry
	ledger   *models.ReceiptLedger
	ids      idgen.Generator
	preview  *PreviewRenderer
	logger   logger.Logger
	cashiers []string
	now      func() time.Time
}

// ServiceOptions tunes a ReceiptService. Zero values select defaults.
type ServiceOptions struct {
	Cashiers     []string
	PreviewWidth int
	Contact      string
	Now          func() time.Time
}

// NewReceiptService wires the service to the registry and ledger owned by
// the application.
func NewReceiptService(
	registry *models.OrganizationRegistry,
	ledger *models.ReceiptLedger,
	ids idgen.Generator,
	log logger.Logger,
	opts ServiceOptions,
) *ReceiptService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Contact == "" {
		opts.Contact = DefaultContact
	}
	if log == nil {
		log = logger.NoOp{}
	}

	return &ReceiptService{
		registry: registry,
		ledger:   ledger,
		ids:      ids,
		preview:  NewPreviewRenderer(ids, opts.PreviewWidth, opts.Contact),
		logger:   log,
		cashiers: opts.Cashiers,
		now:      opts.Now,
	}
}

// Cashiers returns the preset cashier names.
func (s *ReceiptService) Cashiers() []string {
	cashiers := make([]string, len(s.cashiers))
	copy(cashiers, s.cashiers)
	return cashiers
}

// NewDraft opens a receipt form session stamped with the current time.
func (s *ReceiptService) NewDraft() *models.ReceiptDraft {
	cashier := ""
	if len(s.cashiers) > 0 {
		cashier = s.cashiers[0]
	}
	draft := models.NewReceiptDraft(s.now(), cashier)

	s.logger.Debug(serviceComponent, "draft opened", map[string]interface{}{
		"draft_id": draft.ID.String(),
	})
	return draft
}

// NewItemInput returns the initial item form content. The placeholder name
// is generated here, when the form opens, so the user can still change it.
func (s *ReceiptService) NewItemInput() models.ItemInput {
	return models.ItemInput{Name: s.ids.ItemName()}
}

// AddItem builds an item from the form text and appends it to the draft.
// Malformed numbers never fail the operation; they zero the item instead.
func (s *ReceiptService) AddItem(draft *models.ReceiptDraft, input models.ItemInput) models.Item {
	item := models.NewItem(input)
	draft.AddItem(item)

	fields := map[string]interface{}{
		"draft_id": draft.ID.String(),
		"name":     item.Name,
		"cost":     models.FormatAmount(item.Cost()),
		"items":    len(draft.Items()),
	}
	if item.Rejected() {
		s.logger.Warning(serviceComponent, "item numbers rejected, zeroed", fields)
	} else {
		s.logger.Debug(serviceComponent, "item added", fields)
	}
	return item
}

// RegisterOrganization appends org to the registry and returns its position.
func (s *ReceiptService) RegisterOrganization(org models.Organization) int {
	pos := s.registry.Append(org)

	s.logger.Info(serviceComponent, "organization registered", map[string]interface{}{
		"position": pos,
		"name":     org.Name,
		"category": string(org.Category),
	})
	return pos
}

// Organizations returns the organization list cells.
func (s *ReceiptService) Organizations() [][]string {
	return s.registry.Rows()
}

// SelectOrganization copies the organization at index into the draft.
func (s *ReceiptService) SelectOrganization(draft *models.ReceiptDraft, index int) (models.Organization, error) {
	org, err := s.registry.Select(index)
	if err != nil {
		s.logger.Warning(serviceComponent, "organization selection rejected", map[string]interface{}{
			"draft_id": draft.ID.String(),
			"index":    index,
			"error":    err.Error(),
		})
		return models.Organization{}, err
	}

	draft.SelectOrganization(org)
	s.logger.Debug(serviceComponent, "organization selected", map[string]interface{}{
		"draft_id": draft.ID.String(),
		"index":    index,
	})
	return org, nil
}

// Preview renders the receipt text for the current draft state.
func (s *ReceiptService) Preview(draft *models.ReceiptDraft) string {
	return s.preview.Render(draft)
}

// Print is a placeholder for fiscal printing.
func (s *ReceiptService) Print(draft *models.ReceiptDraft) error {
	s.logger.Info(serviceComponent, "print requested", map[string]interface{}{
		"draft_id": draft.ID.String(),
	})
	return ErrPrintNotImplemented
}

// Confirm stores the draft as a receipt at the end of the ledger and
// returns its position.
func (s *ReceiptService) Confirm(draft *models.ReceiptDraft) int {
	receipt := draft.Receipt()
	pos := s.ledger.Create(receipt)

	s.logger.Info(serviceComponent, "receipt created", map[string]interface{}{
		"draft_id":         draft.ID.String(),
		"position":         pos,
		"items":            len(receipt.Items),
		"total":            models.FormatAmount(receipt.TotalCost()),
		"calculation_type": string(receipt.CalculationType),
	})
	return pos
}

// DeleteReceipt removes the receipt at index. A negative index means no row
// is selected and is ignored.
func (s *ReceiptService) DeleteReceipt(index int) bool {
	removed := s.ledger.Delete(index)

	s.logger.Info(serviceComponent, "receipt delete", map[string]interface{}{
		"index":   index,
		"removed": removed,
		"left":    s.ledger.Len(),
	})
	return removed
}

// Receipts returns the ledger table cells.
func (s *ReceiptService) Receipts() [][]string {
	return s.ledger.Rows()
}

// Counts reports the sizes of the ledger and the registry.
func (s *ReceiptService) Counts() (receipts, organizations int) {
	return s.ledger.Len(), s.registry.Len()
}

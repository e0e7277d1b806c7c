package controllers

import (
	"fmt"
	"sync"

	"receipt-editor/internal/logger"
	"receipt-editor/internal/services"
	"receipt-editor/internal/views"

	"fyne.io/fyne/v2"
)

const mainComponent = "MainController"

// Event types emitted by the main controller
const (
	EventReceiptCreated = "receipt_created"
	EventReceiptDeleted = "receipt_deleted"

	EventOrganizationRegistered = "organization_registered"
)

// MainController orchestrates the ledger window using MVC pattern
type MainController struct {
	// Services
	receiptService *services.ReceiptService
	logger         logger.Logger

	// Views
	mainView *views.MainView

	// State management
	mu            sync.RWMutex
	currentWindow fyne.Window
	activeReceipt *ReceiptController

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// NewMainController creates a new main controller
func NewMainController(receiptService *services.ReceiptService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOp{}
	}

	controller := &MainController{
		receiptService: receiptService,
		logger:         log,
		eventHandlers:  make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.currentWindow = view.GetWindow()
	mc.setupViewEventHandlers()
	mc.refreshLedger()
}

// CreateReceipt opens a blank receipt form
func (mc *MainController) CreateReceipt() {
	if mc.currentWindow == nil {
		mc.handleError("Create receipt", fmt.Errorf("main window not set"))
		return
	}

	rc := NewReceiptController(mc.receiptService, mc.currentWindow, mc.logger)
	rc.SetConfirmedHandler(func(position int) {
		mc.emitEvent(EventReceiptCreated, position)
	})
	rc.SetOrganizationRegisteredHandler(func(position int) {
		mc.emitEvent(EventOrganizationRegistered, position)
	})

	mc.mu.Lock()
	mc.activeReceipt = rc
	mc.mu.Unlock()

	rc.Open()
}

// EditReceipt opens the receipt form. Stored receipts are not editable in
// place, so the form starts blank and OK appends a new receipt.
func (mc *MainController) EditReceipt() {
	mc.logger.Debug(mainComponent, "edit requested", map[string]interface{}{
		"selected": mc.selectedReceipt(),
	})
	mc.CreateReceipt()
}

// DeleteReceipt removes the selected ledger row, if any
func (mc *MainController) DeleteReceipt() {
	index := mc.selectedReceipt()
	if !mc.receiptService.DeleteReceipt(index) {
		return
	}
	mc.emitEvent(EventReceiptDeleted, index)
}

// ActiveReceipt returns the controller of the most recently opened form
func (mc *MainController) ActiveReceipt() *ReceiptController {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.activeReceipt
}

// GetApplicationState returns the current application state
func (mc *MainController) GetApplicationState() ApplicationState {
	receipts, organizations := mc.receiptService.Counts()
	return ApplicationState{
		Receipts:        receipts,
		Organizations:   organizations,
		SelectedReceipt: mc.selectedReceipt(),
	}
}

// ApplicationState represents the current state of the application
type ApplicationState struct {
	Receipts        int
	Organizations   int
	SelectedReceipt int
}

func (mc *MainController) selectedReceipt() int {
	if mc.mainView == nil {
		return -1
	}
	return mc.mainView.SelectedReceipt()
}

// refreshLedger redraws the ledger table and counters
func (mc *MainController) refreshLedger() {
	if mc.mainView == nil {
		return
	}
	receipts, organizations := mc.receiptService.Counts()
	mc.mainView.SetReceipts(mc.receiptService.Receipts())
	mc.mainView.SetCounts(receipts, organizations)
}

// Event system methods

// initializeEventHandlers sets up default event handlers
func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener(EventReceiptCreated, mc.onReceiptCreated)
	mc.addEventListener(EventReceiptDeleted, mc.onReceiptDeleted)
	mc.addEventListener(EventOrganizationRegistered, mc.onOrganizationRegistered)
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetCreateReceiptHandler(mc.CreateReceipt)
	mc.mainView.SetDeleteReceiptHandler(mc.DeleteReceipt)
	mc.mainView.SetEditReceiptHandler(mc.EditReceipt)
}

// addEventListener adds an event handler for a specific event type
func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs all handlers for a specific event type. Handlers touch
// widgets, so they run on the caller's goroutine.
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.handleError(fmt.Sprintf("Event handler error (%s)", eventType), err)
		}
	}
}

// Event handlers

// onReceiptCreated refreshes the ledger after a receipt is stored
func (mc *MainController) onReceiptCreated(data interface{}) error {
	position, ok := data.(int)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventReceiptCreated)
	}

	mc.refreshLedger()
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(fmt.Sprintf("Чек %d сохранён", position+1))
	}
	return nil
}

// onReceiptDeleted refreshes the ledger after a receipt is removed
func (mc *MainController) onReceiptDeleted(data interface{}) error {
	position, ok := data.(int)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventReceiptDeleted)
	}

	if mc.mainView != nil {
		mc.mainView.ClearSelection()
	}
	mc.refreshLedger()
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(fmt.Sprintf("Чек %d удалён", position+1))
	}
	return nil
}

// onOrganizationRegistered updates the counters after the registry grows
func (mc *MainController) onOrganizationRegistered(data interface{}) error {
	if _, ok := data.(int); !ok {
		return fmt.Errorf("invalid data type for %s event", EventOrganizationRegistered)
	}

	mc.refreshLedger()
	return nil
}

// handleError logs an error and reports it in the main window
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(mainComponent, err, map[string]interface{}{
		"context": title,
	})

	if mc.mainView != nil {
		mc.mainView.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}

// Shutdown logs the final ledger state when the application closes
func (mc *MainController) Shutdown() {
	receipts, organizations := mc.receiptService.Counts()
	mc.logger.Info(mainComponent, "shutting down", map[string]interface{}{
		"receipts":      receipts,
		"organizations": organizations,
	})
}

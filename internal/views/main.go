package views

import (
	"receipt-editor/internal/models"
	"receipt-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// MainView is the ledger window: toolbar, receipt table and status bar
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	receiptTable  *components.TextTable
	tableArea     *components.ContextMenuArea
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	createReceiptHandler func()
	deleteReceiptHandler func()
	editReceiptHandler   func()
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.receiptTable = components.NewTextTable(models.LedgerColumns)
	mv.statusBar = components.NewStatusBar()

	menu := fyne.NewMenu("",
		fyne.NewMenuItem("Удалить чек", mv.onDeleteReceipt),
		fyne.NewMenuItem("Редактировать", mv.onEditReceipt),
	)
	mv.tableArea = components.NewContextMenuArea(mv.receiptTable.GetWidget(), menu)
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.tableArea,                // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetCreateHandler(mv.onCreateReceipt)
	mv.toolbar.SetDeleteHandler(mv.onDeleteReceipt)
}

func (mv *MainView) onCreateReceipt() {
	if mv.createReceiptHandler != nil {
		mv.createReceiptHandler()
	}
}

func (mv *MainView) onDeleteReceipt() {
	if mv.deleteReceiptHandler != nil {
		mv.deleteReceiptHandler()
	}
}

func (mv *MainView) onEditReceipt() {
	if mv.editReceiptHandler != nil {
		mv.editReceiptHandler()
	}
}

// Event handler setters - called by controller

// SetCreateReceiptHandler sets the handler for "Создать чек"
func (mv *MainView) SetCreateReceiptHandler(handler func()) {
	mv.createReceiptHandler = handler
}

// SetDeleteReceiptHandler sets the handler for "Удалить чек"
func (mv *MainView) SetDeleteReceiptHandler(handler func()) {
	mv.deleteReceiptHandler = handler
}

// SetEditReceiptHandler sets the handler for the "Редактировать" menu entry
func (mv *MainView) SetEditReceiptHandler(handler func()) {
	mv.editReceiptHandler = handler
}

// View update methods - called by controller

// SetReceipts replaces the ledger table contents
func (mv *MainView) SetReceipts(rows [][]string) {
	mv.receiptTable.SetRows(rows)
}

// Receipts returns the rows currently shown in the ledger table
func (mv *MainView) Receipts() [][]string {
	return mv.receiptTable.Rows()
}

// SelectedReceipt returns the selected ledger row or -1
func (mv *MainView) SelectedReceipt() int {
	return mv.receiptTable.SelectedRow()
}

// SelectReceipt selects a ledger row
func (mv *MainView) SelectReceipt(row int) {
	mv.receiptTable.Select(row)
}

// ClearSelection drops the ledger row selection
func (mv *MainView) ClearSelection() {
	mv.receiptTable.ClearSelection()
}

// UpdateStatus updates the status message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// Status returns the status message
func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// SetCounts updates the receipt and organization counters
func (mv *MainView) SetCounts(receipts, organizations int) {
	mv.statusBar.SetCounts(receipts, organizations)
}

// ContextMenu returns the menu shown on secondary tap over the table
func (mv *MainView) ContextMenu() *fyne.Menu {
	return mv.tableArea.Menu()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowInformation displays an information dialog
func (mv *MainView) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

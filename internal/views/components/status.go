package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Готово"

// StatusBar displays application status and ledger counters
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countsLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.countsLabel = widget.NewLabel(formatCounts(0, 0))
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countsLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCounts updates the receipt and organization counters
func (sb *StatusBar) SetCounts(receipts, organizations int) {
	sb.countsLabel.SetText(formatCounts(receipts, organizations))
}

// GetCounts returns the counter text as displayed
func (sb *StatusBar) GetCounts() string {
	return sb.countsLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText(readyStatus)
	sb.countsLabel.SetText(formatCounts(0, 0))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func formatCounts(receipts, organizations int) string {
	return fmt.Sprintf("Чеков: %d | Организаций: %d", receipts, organizations)
}

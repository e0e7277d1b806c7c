package models

import (
	"fmt"
	"sync"
)

// ReceiptLedger is the ordered list of confirmed receipts shown in the main
// window. A receipt is identified only by its current position.
type ReceiptLedger struct {
	mu       sync.RWMutex
	receipts []Receipt
}

// NewReceiptLedger creates an empty ledger.
func NewReceiptLedger() *ReceiptLedger {
	return &ReceiptLedger{
		receipts: make([]Receipt, 0),
	}
}

// Create appends receipt and returns its position.
func (l *ReceiptLedger) Create(receipt Receipt) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.receipts = append(l.receipts, receipt)
	return len(l.receipts) - 1
}

// Delete removes the receipt at index and shifts later receipts down by
// one. It reports whether anything was removed; an unselected (negative)
// or stale index is a no-op.
func (l *ReceiptLedger) Delete(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.receipts) {
		return false
	}
	l.receipts = append(l.receipts[:index], l.receipts[index+1:]...)
	return true
}

// Get returns the receipt at index.
func (l *ReceiptLedger) Get(index int) (Receipt, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 {
		return Receipt{}, ErrNoSelection
	}
	if index >= len(l.receipts) {
		return Receipt{}, fmt.Errorf("receipt %d of %d: %w", index, len(l.receipts), ErrOutOfRange)
	}
	return l.receipts[index], nil
}

// Len returns the number of receipts.
func (l *ReceiptLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.receipts)
}

// Rows returns the ledger table cells.
func (l *ReceiptLedger) Rows() [][]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rows := make([][]string, 0, len(l.receipts))
	for _, receipt := range l.receipts {
		rows = append(rows, receipt.Row())
	}
	return rows
}

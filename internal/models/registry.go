package models

import (
	"fmt"
	"sync"
)

// OrganizationRegistry is the ordered, append-only list of known
// organizations. Positions are stable because nothing is ever removed.
type OrganizationRegistry struct {
	mu            sync.RWMutex
	organizations []Organization
}

// NewOrganizationRegistry creates an empty registry.
func NewOrganizationRegistry() *OrganizationRegistry {
	return &OrganizationRegistry{
		organizations: make([]Organization, 0),
	}
}

// Append adds org at the end without validation or duplicate checks and
// returns its position.
func (r *OrganizationRegistry) Append(org Organization) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.organizations = append(r.organizations, org)
	return len(r.organizations) - 1
}

// Select returns a copy of the organization at index. A negative index
// means nothing was chosen.
func (r *OrganizationRegistry) Select(index int) (Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 {
		return Organization{}, ErrNoSelection
	}
	if index >= len(r.organizations) {
		return Organization{}, fmt.Errorf("organization %d of %d: %w", index, len(r.organizations), ErrOutOfRange)
	}
	return r.organizations[index], nil
}

// Len returns the number of organizations.
func (r *OrganizationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.organizations)
}

// All returns a copy of every organization in insertion order.
func (r *OrganizationRegistry) All() []Organization {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orgs := make([]Organization, len(r.organizations))
	copy(orgs, r.organizations)
	return orgs
}

// Rows returns the organization list cells.
func (r *OrganizationRegistry) Rows() [][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([][]string, 0, len(r.organizations))
	for _, org := range r.organizations {
		rows = append(rows, org.Row())
	}
	return rows
}

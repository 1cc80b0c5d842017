// Package waitlist owns the ordered collection of buyers waiting for a slot
// and the steals allowance that keeps them in it.
package waitlist

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"sab_waitlist/internal/models"
)

// AdmitRequest carries the fields captured when a buyer enters the waitlist.
type AdmitRequest struct {
	AccountID     string
	DisplayName   string
	CreditPaid    int
	InitialSteals int
}

// ConsumeResult is the outcome of ConsumeSteals. When Removed is true, Entry is
// the entry as it stood right before deletion.
type ConsumeResult struct {
	Removed bool
	Entry   models.WaitlistEntry
}

// RepositionResult carries the updated entry and the position it replaced.
type RepositionResult struct {
	Entry       models.WaitlistEntry
	OldPosition int
}

// Listing is a fresh partition of the waitlist. All is sorted by position,
// ties in admission order.
type Listing struct {
	All     []models.WaitlistEntry
	Active  []models.WaitlistEntry
	Waiting []models.WaitlistEntry
}

type record struct {
	entry models.WaitlistEntry
	seq   uint64
}

// Engine is the waitlist state machine. One coarse lock guards the whole
// collection; no operation blocks on I/O while holding it.
type Engine struct {
	mu      sync.Mutex
	entries map[string]*record
	nextSeq uint64
	now     func() time.Time
}

// NewEngine creates an empty waitlist.
func NewEngine() *Engine {
	return &Engine{
		entries: make(map[string]*record),
		now:     time.Now,
	}
}

// WithClock replaces the admission clock. Used by tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.mu.Lock()
	e.now = now
	e.mu.Unlock()
	return e
}

// Admit appends a new entry behind every current entry.
func (e *Engine) Admit(req AdmitRequest) (models.WaitlistEntry, error) {
	accountID := req.AccountID
	displayName := strings.TrimSpace(req.DisplayName)
	if strings.TrimSpace(accountID) == "" || displayName == "" {
		return models.WaitlistEntry{}, invalidArgument("discordId and discordUsername are required")
	}
	if req.CreditPaid < 0 {
		return models.WaitlistEntry{}, invalidArgument("brainrotPaid must be >= 0")
	}
	if req.InitialSteals < 0 {
		return models.WaitlistEntry{}, invalidArgument("steals must be >= 0")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.entries[accountID]; exists {
		return models.WaitlistEntry{}, alreadyExists()
	}

	maxPosition := 0
	for _, r := range e.entries {
		if r.entry.Position > maxPosition {
			maxPosition = r.entry.Position
		}
	}
	if maxPosition == math.MaxInt {
		return models.WaitlistEntry{}, invalidArgument("no position left behind the last entry")
	}

	entry := models.WaitlistEntry{
		AccountID:   accountID,
		DisplayName: displayName,
		Position:    maxPosition + 1,
		CreditPaid:  req.CreditPaid,
		Steals:      req.InitialSteals,
		AdmittedAt:  e.now(),
	}
	e.nextSeq++
	e.entries[accountID] = &record{entry: entry, seq: e.nextSeq}
	return entry, nil
}

// CreditSteals adds a positive amount to the entry's steals.
func (e *Engine) CreditSteals(accountID string, amount int) (models.WaitlistEntry, error) {
	if amount <= 0 {
		return models.WaitlistEntry{}, invalidArgument("amount must be a positive number")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.entries[accountID]
	if !ok {
		return models.WaitlistEntry{}, notFound()
	}
	if amount > math.MaxInt-r.entry.Steals {
		return models.WaitlistEntry{}, invalidArgument("amount would overflow steals")
	}
	updated := r.entry
	updated.Steals += amount
	r.entry = updated
	return updated, nil
}

// ConsumeSteals subtracts amount (1 when amount is 0), clamping at zero.
// Reaching zero deletes the entry.
func (e *Engine) ConsumeSteals(accountID string, amount int) (ConsumeResult, error) {
	if amount < 0 {
		return ConsumeResult{}, invalidArgument("amount must be a positive number")
	}
	if amount == 0 {
		amount = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.entries[accountID]
	if !ok {
		return ConsumeResult{}, notFound()
	}
	updated := r.entry
	updated.Steals = max(0, updated.Steals-amount)

	if updated.Steals == 0 {
		delete(e.entries, accountID)
		return ConsumeResult{Removed: true, Entry: updated}, nil
	}
	r.entry = updated
	return ConsumeResult{Entry: updated}, nil
}

// Reposition sets the entry's position. Other entries are left untouched, so
// positions may collide.
func (e *Engine) Reposition(accountID string, newPosition int) (RepositionResult, error) {
	if newPosition < 0 {
		return RepositionResult{}, invalidArgument("newPosition must be >= 0")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.entries[accountID]
	if !ok {
		return RepositionResult{}, notFound()
	}
	old := r.entry.Position
	updated := r.entry
	updated.Position = newPosition
	r.entry = updated
	return RepositionResult{Entry: updated, OldPosition: old}, nil
}

// Remove deletes the entry regardless of its steals.
func (e *Engine) Remove(accountID string) (models.WaitlistEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.entries[accountID]
	if !ok {
		return models.WaitlistEntry{}, notFound()
	}
	delete(e.entries, accountID)
	return r.entry, nil
}

// Get returns a copy of the entry.
func (e *Engine) Get(accountID string) (models.WaitlistEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.entries[accountID]
	if !ok {
		return models.WaitlistEntry{}, notFound()
	}
	return r.entry, nil
}

// Len returns the number of entries.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// List partitions the current collection into active (position > 1) and
// waiting (position <= 1) entries.
func (e *Engine) List() Listing {
	e.mu.Lock()
	records := make([]record, 0, len(e.entries))
	for _, r := range e.entries {
		records = append(records, *r)
	}
	e.mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].entry.Position != records[j].entry.Position {
			return records[i].entry.Position < records[j].entry.Position
		}
		return records[i].seq < records[j].seq
	})

	listing := Listing{
		All:     make([]models.WaitlistEntry, 0, len(records)),
		Active:  []models.WaitlistEntry{},
		Waiting: []models.WaitlistEntry{},
	}
	for _, r := range records {
		listing.All = append(listing.All, r.entry)
		if r.entry.Active() {
			listing.Active = append(listing.Active, r.entry)
		} else {
			listing.Waiting = append(listing.Waiting, r.entry)
		}
	}
	return listing
}

package inventory

import (
	"sort"

	"github.com/osse101/craftplanner/internal/domain"
)

// Ledger is the mutable on-hand inventory. A quantity of zero or less removes
// the entry, so the ledger never stores zeroes. Not safe for concurrent use;
// callers serialise access.
type Ledger struct {
	items map[string]int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{items: make(map[string]int)}
}

// Set stores quantity for itemID, removing the entry when quantity <= 0
func (l *Ledger) Set(itemID string, quantity int) {
	if quantity <= 0 {
		delete(l.items, itemID)
		return
	}
	l.items[itemID] = quantity
}

// Remove deletes itemID from the ledger
func (l *Ledger) Remove(itemID string) {
	delete(l.items, itemID)
}

// Clear empties the ledger
func (l *Ledger) Clear() {
	l.items = make(map[string]int)
}

// Quantity returns the owned amount of itemID
func (l *Ledger) Quantity(itemID string) int {
	return l.items[itemID]
}

// Len returns the number of distinct items owned
func (l *Ledger) Len() int {
	return len(l.items)
}

// Snapshot returns a copy the planner can read while the ledger keeps changing
func (l *Ledger) Snapshot() domain.Inventory {
	snap := make(domain.Inventory, len(l.items))
	for id, qty := range l.items {
		snap[id] = qty
	}
	return snap
}

// Entries returns the ledger as item/quantity pairs ordered by item id
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, 0, len(l.items))
	for id, qty := range l.items {
		entries = append(entries, Entry{ItemID: id, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ItemID < entries[j].ItemID
	})
	return entries
}

// Entry is one owned item
type Entry struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

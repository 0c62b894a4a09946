package session

import (
	"sync"
	"time"

	"github.com/osse101/craftplanner/internal/domain"
	"github.com/osse101/craftplanner/internal/inventory"
)

// Session holds one user's inventory and build list between requests
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	ledger    *inventory.Ledger
	buildList *inventory.BuildList
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		ledger:    inventory.NewLedger(),
		buildList: inventory.NewBuildList(),
	}
}

// Update runs fn with exclusive access to the session state
func (s *Session) Update(fn func(ledger *inventory.Ledger, build *inventory.BuildList) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ledger, s.buildList)
}

// Mutate is Update for changes that cannot fail
func (s *Session) Mutate(fn func(ledger *inventory.Ledger, build *inventory.BuildList)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger, s.buildList)
}

// Snapshot copies the inventory and build list so planner queries can run
// without holding the session lock
func (s *Session) Snapshot() (domain.Inventory, []domain.BuildDemand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot(), s.buildList.Demands()
}

// Entries returns the inventory entries sorted by item id
func (s *Session) Entries() []inventory.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Entries()
}

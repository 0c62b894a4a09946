package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/osse101/craftplanner/internal/domain"
)

// Suggestion is a candidate item for a free-text query
type Suggestion struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Source   string  `json:"source"`
	Score    float64 `json:"score"`
	Distance int     `json:"distance,omitempty"`
}

// Resolver maps player-typed item names to catalog ids
type Resolver interface {
	// Resolve returns the item id for an exact id or case-insensitive name
	Resolve(query string) (itemID string, ok bool)

	// Suggest ranks likely items for a query that may be misspelled
	Suggest(query string, limit int) []Suggestion

	// RegisterItem adds a name mapping; the first id registered for a name wins
	RegisterItem(itemID, name string)
}

type entry struct {
	itemID string
	name   string
	folded string
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: folded name -> item id
	nameToID map[string]string

	// Mapping: item id -> display name
	idToName map[string]string

	entries []entry
}

// NewResolver creates a resolver seeded with every item in catalog
func NewResolver(catalog *domain.Catalog) Resolver {
	r := &resolver{
		nameToID: make(map[string]string),
		idToName: make(map[string]string),
	}
	for _, id := range catalog.IDs() {
		item, _ := catalog.Item(id)
		r.RegisterItem(id, item.Name)
	}
	return r
}

// normalize collapses whitespace and case folds. Casers keep state between
// calls, so each call gets its own.
func normalize(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// RegisterItem adds a name -> id mapping
func (r *resolver) RegisterItem(itemID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return
	}
	folded := normalize(name)
	if _, exists := r.nameToID[folded]; !exists {
		r.nameToID[folded] = itemID
	}
	if _, exists := r.idToName[itemID]; !exists {
		r.entries = append(r.entries, entry{itemID: itemID, name: name, folded: folded})
	}
	r.idToName[itemID] = name
}

// Resolve converts an id or a display name to an item id
func (r *resolver) Resolve(query string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.TrimSpace(query)
	if _, ok := r.idToName[query]; ok {
		return query, true
	}
	id, ok := r.nameToID[normalize(query)]
	return id, ok
}

// Suggest ranks candidates by exact, prefix, substring and edit-distance matches
func (r *resolver) Suggest(query string, limit int) []Suggestion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	q := normalize(query)
	if q == "" {
		return nil
	}

	var cands []Suggestion
	for _, e := range r.entries {
		switch {
		case e.folded == q || e.itemID == query:
			source := SourceExact
			if e.itemID == query {
				source = SourceID
			}
			cands = append(cands, Suggestion{ItemID: e.itemID, Name: e.name, Source: source, Score: ScoreExact})
		case strings.HasPrefix(e.folded, q):
			cands = append(cands, Suggestion{ItemID: e.itemID, Name: e.name, Source: SourcePrefix, Score: ScorePrefix})
		case strings.Contains(e.folded, q):
			cands = append(cands, Suggestion{ItemID: e.itemID, Name: e.name, Source: SourceSubstr, Score: ScoreSubstr})
		default:
			if len(q) < MinFuzzyLength {
				continue
			}
			dist := levenshtein.ComputeDistance(q, e.folded)
			if dist > levenshteinLimit(len(e.folded)) {
				continue
			}
			cands = append(cands, Suggestion{
				ItemID:   e.itemID,
				Name:     e.name,
				Source:   SourceFuzzy,
				Score:    ScoreFuzzy - FuzzyPenalty*float64(dist),
				Distance: dist,
			})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Name == cands[j].Name {
				return cands[i].ItemID < cands[j].ItemID
			}
			return cands[i].Name < cands[j].Name
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

package planner

import "github.com/osse101/craftplanner/internal/domain"

// Diagnostics counts the places where a query silently degraded.
// Results are identical whether or not the caller looks at them.
type Diagnostics struct {
	CycleGuardHits int      `json:"cycle_guard_hits"`
	UnknownItems   int      `json:"unknown_items"`
	UnknownIDs     []string `json:"unknown_ids,omitempty"`
}

// Clean reports whether nothing was truncated or skipped
func (d Diagnostics) Clean() bool {
	return d.CycleGuardHits == 0 && d.UnknownItems == 0
}

// tracker collects diagnostics during a traversal; unknown ids are counted once
type tracker struct {
	cycleGuardHits int
	unknown        []string
	unknownSet     map[string]bool
}

func newTracker() *tracker {
	return &tracker{unknownSet: make(map[string]bool)}
}

func (t *tracker) cycleGuard() {
	t.cycleGuardHits++
}

func (t *tracker) unknownItem(itemID string) {
	if t.unknownSet[itemID] {
		return
	}
	t.unknownSet[itemID] = true
	t.unknown = append(t.unknown, itemID)
}

func (t *tracker) diagnostics() Diagnostics {
	return Diagnostics{
		CycleGuardHits: t.cycleGuardHits,
		UnknownItems:   len(t.unknown),
		UnknownIDs:     t.unknown,
	}
}

// Report bundles every build-list query for one consistent snapshot
type Report struct {
	Materials    []domain.MaterialRequirement `json:"materials"`
	AllMaterials []domain.MaterialRequirement `json:"all_materials"`
	Steps        []domain.CraftingStep        `json:"steps"`
	Diagnostics  Diagnostics                  `json:"diagnostics"`
}

// Analyze runs the material and step queries together and collects their diagnostics
func (p *planner) Analyze(stock domain.Stock, demands []domain.BuildDemand) *Report {
	tr := newTracker()
	report := &Report{
		Materials: p.materials(stock, demands, false, tr),
		Steps:     p.craftingSteps(stock, demands, tr),
	}
	// the all-levels pass walks the same graph, so its hits would only repeat
	report.AllMaterials = p.materials(stock, demands, true, newTracker())
	report.Diagnostics = tr.diagnostics()
	return report
}

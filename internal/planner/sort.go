package planner

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameOrder compares display names the way a player expects to read them:
// locale-aware and case-insensitive. Collators are not safe for concurrent
// use, so one is created per sort.
type nameOrder struct {
	collator *collate.Collator
}

func newNameOrder() *nameOrder {
	return &nameOrder{collator: collate.New(language.English, collate.IgnoreCase)}
}

// less orders by tier, then name, then id so equal names stay deterministic
func (o *nameOrder) less(tierA, tierB int, nameA, nameB, idA, idB string) bool {
	if tierA != tierB {
		return tierA < tierB
	}
	if c := o.collator.CompareString(nameA, nameB); c != 0 {
		return c < 0
	}
	return idA < idB
}

func sortByTierAndName[T any](rows []T, key func(T) (tier int, name, id string)) {
	order := newNameOrder()
	sort.SliceStable(rows, func(i, j int) bool {
		ti, ni, ii := key(rows[i])
		tj, nj, ij := key(rows[j])
		return order.less(ti, tj, ni, nj, ii, ij)
	})
}

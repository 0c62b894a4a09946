package planner

// path is the set of item ids on the current recursion path.
// Branches get their own copy so siblings never see each other's visits.
type path map[string]struct{}

func (p path) has(id string) bool {
	_, ok := p[id]
	return ok
}

// with returns a copy of p that also contains id
func (p path) with(id string) path {
	next := make(path, len(p)+1)
	for k := range p {
		next[k] = struct{}{}
	}
	next[id] = struct{}{}
	return next
}

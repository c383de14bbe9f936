package placement

// ReassignmentCost returns the number of (worker, shard) placements present
// in exactly one of given assignments. That is, the number of shard replicas
// to be created or destroyed to turn one assignment into another.
//
// ReassignmentCost is symmetric and returns zero if and only if assignments
// hold the same placements.
func ReassignmentCost(before, after Assignment) (cost int) {
	for w, a := range before {
		b := after[w]
		cost += a.Len() + b.Len() - 2*a.Intersection(b)
	}
	for w, b := range after {
		if _, has := before[w]; !has {
			cost += b.Len()
		}
	}
	return cost
}

// Diff returns placements to be created (added) and destroyed (removed) to
// turn before into after. Both slices are ordered by worker and then by
// shard.
//
// len(added)+len(removed) always equals ReassignmentCost(before, after).
func Diff(before, after Assignment) (added, removed []Placement) {
	return missing(after, before), missing(before, after)
}

// missing returns placements of a which are not in b.
func missing(a, b Assignment) (ps []Placement) {
	for _, w := range a.Workers() {
		other := b[w]
		a[w].Each(func(s Shard) bool {
			if !other.Has(s) {
				ps = append(ps, Placement{w, s})
			}
			return true
		})
	}
	return ps
}

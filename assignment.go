package placement

import (
	"strings"

	"github.com/gobwas/avl"
)

// Assignment is a mapping of worker to the set of shards it owns.
//
// Workers owning nothing are not required to be present in the mapping.
// Two assignments are compared as sets of (worker, shard) pairs, so an empty
// bucket is equal to an absent one.
type Assignment map[Worker]ShardSet

// Add puts shard s into worker's w bucket.
// It returns false if w already owns s.
// Unlike read-only methods, Add must be called on a non-nil Assignment,
// e.g. one built with make().
func (a Assignment) Add(w Worker, s Shard) bool {
	set, inserted := a[w].Insert(s)
	if inserted {
		a[w] = set
	}
	return inserted
}

// Shards returns shards owned by w in ascending order.
func (a Assignment) Shards(w Worker) []Shard {
	return a[w].Slice()
}

// Workers returns workers having a bucket in a, in ascending order.
func (a Assignment) Workers() []Worker {
	ws := make([]Worker, 0, len(a))
	for w := range a {
		ws = append(ws, w)
	}
	sortWorkers(ws)
	return ws
}

// Owners returns workers owning s in ascending order.
func (a Assignment) Owners(s Shard) (ws []Worker) {
	for w, set := range a {
		if set.Has(s) {
			ws = append(ws, w)
		}
	}
	sortWorkers(ws)
	return ws
}

// Placements returns total number of (worker, shard) pairs in a.
func (a Assignment) Placements() (n int) {
	for _, set := range a {
		n += set.Len()
	}
	return n
}

// Equal reports whether a and b hold the same (worker, shard) pairs.
func (a Assignment) Equal(b Assignment) bool {
	return ReassignmentCost(a, b) == 0
}

// String returns deterministic representation of a such as
// "100:[1 4] 200:[2]". Empty buckets are omitted.
func (a Assignment) String() string {
	var sb strings.Builder
	for _, w := range a.Workers() {
		set := a[w]
		if set.Len() == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.String())
		sb.WriteByte(':')
		sb.WriteString(set.String())
	}
	return sb.String()
}

// sortWorkers sorts distinct workers in ascending order.
func sortWorkers(ws []Worker) {
	var tree avl.Tree // tree<Worker>
	for _, w := range ws {
		tree = mustInsertTree(tree, w)
	}
	i := 0
	tree.InOrder(func(x avl.Item) bool {
		ws[i] = x.(Worker)
		i++
		return true
	})
}

package placement

import (
	"strings"

	"github.com/gobwas/avl"
)

// ShardSet is an immutable ordered set of shards.
// The zero value for ShardSet is an empty set ready to use.
type ShardSet struct {
	tree avl.Tree // tree<Shard>
}

// NewShardSet returns a set holding given shards. Duplicates are collapsed.
func NewShardSet(xs ...Shard) ShardSet {
	var s ShardSet
	for _, x := range xs {
		s, _ = s.Insert(x)
	}
	return s
}

// Insert returns a set with x added to it.
// Returned boolean is false when x was already in s.
func (s ShardSet) Insert(x Shard) (_ ShardSet, inserted bool) {
	if s.Has(x) {
		return s, false
	}
	tree, _ := s.tree.Insert(x)
	return ShardSet{tree}, true
}

// Has reports whether x is in s.
func (s ShardSet) Has(x Shard) bool {
	return s.tree.Search(x) != nil
}

// Len returns the number of shards in s.
func (s ShardSet) Len() int {
	return s.tree.Size()
}

// Each calls fn for every shard in ascending order until fn returns false.
func (s ShardSet) Each(fn func(Shard) bool) {
	// Tree traversal doesn't stop on false, so we skip the rest by hand.
	var stop bool
	s.tree.InOrder(func(x avl.Item) bool {
		if stop {
			return false
		}
		stop = !fn(x.(Shard))
		return !stop
	})
}

// Slice returns shards of s in ascending order.
func (s ShardSet) Slice() []Shard {
	xs := make([]Shard, 0, s.Len())
	s.Each(func(x Shard) bool {
		xs = append(xs, x)
		return true
	})
	return xs
}

// Intersection returns the number of shards present in both s and t.
func (s ShardSet) Intersection(t ShardSet) (n int) {
	if s.Len() > t.Len() {
		s, t = t, s
	}
	s.Each(func(x Shard) bool {
		if t.Has(x) {
			n++
		}
		return true
	})
	return n
}

// Equal reports whether s and t hold the same shards.
func (s ShardSet) Equal(t ShardSet) bool {
	return s.Len() == t.Len() && s.Intersection(t) == s.Len()
}

func (s ShardSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	s.Each(func(x Shard) bool {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(x.String())
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

package placement

import (
	"fmt"
	"sort"

	"github.com/gobwas/avl"
)

// Rendezvous assigns every shard to redundancy workers having the lowest
// scores Combine(Digest(shard), Digest(worker)). Ties are broken by worker
// identifier, lower first.
//
// Score of a worker doesn't depend on other workers, thus removal of a
// worker moves only shards that were owned by it.
// Order of workers doesn't affect the result.
//
// Duplicate workers are collapsed. It returns ErrNoWorkers if workers is
// empty and ErrRedundancy if redundancy is not within [1, number of distinct
// workers].
func (p *Placer) Rendezvous(workers []Worker, shards []Shard, redundancy int) (ret Assignment, err error) {
	p.init()
	trace := p.trace.onAssign(Rendezvous, len(workers), len(shards), redundancy)
	defer func() {
		trace.onDone(ret, err)
	}()

	workers, err = prepare(workers, redundancy)
	if err != nil {
		return nil, err
	}
	digests := p.digests(workers)

	ret = make(Assignment, len(workers))
	for _, s := range shards {
		owners := p.top(p.Digest(s), workers, digests, redundancy)
		trace.onShard(s, owners)
		for _, w := range owners {
			ret.Add(w, s)
		}
	}
	return ret, nil
}

// Rank returns all distinct workers ordered by their rendezvous score for
// shard s: the first worker is the most preferred owner.
func (p *Placer) Rank(s Shard, workers []Worker) []Worker {
	workers, err := prepare(workers, 1)
	if err != nil {
		return nil
	}
	var (
		d       = p.Digest(s)
		digests = p.digests(workers)
		cs      = make([]candidate, len(workers))
	)
	for i, w := range workers {
		cs[i] = candidate{
			score:  p.Combine(d, digests[i]),
			worker: w,
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].less(cs[j])
	})
	ret := make([]Worker, len(cs))
	for i, c := range cs {
		ret[i] = c.worker
	}
	return ret
}

func (p *Placer) digests(workers []Worker) []uint64 {
	ds := make([]uint64, len(workers))
	for i, w := range workers {
		ds[i] = p.Digest(w)
	}
	return ds
}

// top selects n best candidates for a shard with digest d.
// It holds at most n candidates in a tree, evicting the worst one each time
// better candidate appears.
func (p *Placer) top(d uint64, workers []Worker, digests []uint64, n int) []Worker {
	var tree avl.Tree // tree<candidate>, worst first.
	for i, w := range workers {
		c := candidate{
			score:  p.Combine(d, digests[i]),
			worker: w,
		}
		if tree.Size() == n {
			worst := tree.Min().(candidate)
			if !c.less(worst) {
				continue
			}
			tree = mustDeleteTree(tree, worst)
		}
		tree = mustInsertTree(tree, c)
	}
	ret := make([]Worker, tree.Size())
	i := len(ret)
	tree.InOrder(func(x avl.Item) bool {
		i--
		ret[i] = x.(candidate).worker
		return true
	})
	return ret
}

// candidate is a worker scored for some shard.
type candidate struct {
	score  uint64
	worker Worker
}

// less reports whether c is preferred over x.
func (c candidate) less(x candidate) bool {
	if c.score != x.score {
		return c.score < x.score
	}
	return c.worker < x.worker
}

// Compare implements avl.Item interface.
// Note that ordering is reversed: the least preferred candidate is the
// minimum of a tree.
func (c candidate) Compare(x avl.Item) int {
	d := x.(candidate)
	switch {
	case c.less(d):
		return 1
	case d.less(c):
		return -1
	default:
		return 0
	}
}

func mustInsertTree(tree avl.Tree, x avl.Item) avl.Tree {
	tree, existing := tree.Insert(x)
	if existing != nil {
		panic(fmt.Sprintf("placement: internal error: %v already exists", x))
	}
	return tree
}

func mustDeleteTree(tree avl.Tree, x avl.Item) avl.Tree {
	tree, existed := tree.Delete(x)
	if existed == nil {
		panic(fmt.Sprintf("placement: internal error: %v doesn't exist", x))
	}
	return tree
}

package placement

import (
	"fmt"
	"hash"
	"strings"
	"sync"
)

// Strategy identifies an assignment algorithm.
type Strategy uint8

const (
	// Modulo places a shard on a contiguous run of workers starting at
	// position derived from the shard's digest.
	Modulo Strategy = iota
	// Rendezvous places a shard on workers having the lowest
	// (shard, worker) scores.
	Rendezvous
)

// Strategies lists all known strategies.
var Strategies = []Strategy{Modulo, Rendezvous}

func (s Strategy) String() string {
	switch s {
	case Modulo:
		return "modulo"
	case Rendezvous:
		return "rendezvous"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy returns strategy by its name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Placer assigns shards to workers.
//
// Every call is a pure function of its arguments and Placer's hash
// configuration. Placer instances must not be copied after first use.
// The zero value for Placer is ready to use.
type Placer struct {
	// Hash is an optional function used to build up a new 64-bit hash
	// function for digests calculation. If nil, xxhash is used.
	//
	// Changing hash function changes every placement.
	Hash func() hash.Hash64

	// hashPool is a pool of reusable hash functions.
	hashPool sync.Pool

	once  sync.Once
	trace tracePlacer
}

// Assign computes assignment using given strategy.
func (p *Placer) Assign(s Strategy, workers []Worker, shards []Shard, redundancy int) (Assignment, error) {
	switch s {
	case Modulo:
		return p.Modulo(workers, shards, redundancy)
	case Rendezvous:
		return p.Rendezvous(workers, shards, redundancy)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

func (p *Placer) init() {
	p.once.Do(func() {
		setupPlacerTrace(p)
	})
}

// prepare validates arguments and returns workers with duplicates removed.
// Order of the first occurrences is preserved.
func prepare(workers []Worker, redundancy int) ([]Worker, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	if redundancy < 1 {
		return nil, fmt.Errorf(
			"%w: redundancy must be positive; got %d",
			ErrRedundancy, redundancy,
		)
	}
	seen := make(map[Worker]struct{}, len(workers))
	uniq := make([]Worker, 0, len(workers))
	for _, w := range workers {
		if _, has := seen[w]; has {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	if redundancy > len(uniq) {
		return nil, fmt.Errorf(
			"%w: redundancy %d exceeds number of workers %d",
			ErrRedundancy, redundancy, len(uniq),
		)
	}
	return uniq, nil
}

// AssignModulo is a shortcut for Modulo() method of zero Placer.
func AssignModulo(workers []Worker, shards []Shard, redundancy int) (Assignment, error) {
	return defaultPlacer.Modulo(workers, shards, redundancy)
}

// AssignRendezvous is a shortcut for Rendezvous() method of zero Placer.
func AssignRendezvous(workers []Worker, shards []Shard, redundancy int) (Assignment, error) {
	return defaultPlacer.Rendezvous(workers, shards, redundancy)
}

var defaultPlacer Placer

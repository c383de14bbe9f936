package placement

// Modulo assigns every shard to redundancy workers taken contiguously from
// the list of workers, starting at index digest(shard) mod len(workers) and
// wrapping around the end of the list.
//
// Positions of workers matter: removing any worker shifts the runs of most
// shards and changes the modulus, so that almost every shard moves.
//
// Duplicate workers are collapsed to their first occurrence. It returns
// ErrNoWorkers if workers is empty and ErrRedundancy if redundancy is not
// within [1, number of distinct workers].
func (p *Placer) Modulo(workers []Worker, shards []Shard, redundancy int) (ret Assignment, err error) {
	p.init()
	trace := p.trace.onAssign(Modulo, len(workers), len(shards), redundancy)
	defer func() {
		trace.onDone(ret, err)
	}()

	workers, err = prepare(workers, redundancy)
	if err != nil {
		return nil, err
	}
	var (
		n      = uint64(len(workers))
		owners = make([]Worker, redundancy)
	)
	ret = make(Assignment, len(workers))
	for _, s := range shards {
		idx := p.Digest(s) % n
		for i := range owners {
			owners[i] = workers[(idx+uint64(i))%n]
		}
		trace.onShard(s, owners)
		for _, w := range owners {
			ret.Add(w, s)
		}
	}
	return ret, nil
}

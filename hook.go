package placement

type tracePlacer struct {
	OnAssign func(tracePlacerAssignStart) tracePlacerAssign
}

type tracePlacerAssignStart struct {
	Strategy   Strategy
	Workers    int
	Shards     int
	Redundancy int
}

type tracePlacerAssign struct {
	// OnShard is called with owners of a shard in order of preference.
	// Callee must not retain owners slice.
	OnShard func(Shard, []Worker)
	OnDone  func(Assignment, error)
}

// Compose returns a new tracePlacer which has functional fields composed
// both from t and x.
func (t tracePlacer) Compose(x tracePlacer) (ret tracePlacer) {
	switch {
	case t.OnAssign == nil:
		ret.OnAssign = x.OnAssign
	case x.OnAssign == nil:
		ret.OnAssign = t.OnAssign
	default:
		h1 := t.OnAssign
		h2 := x.OnAssign
		ret.OnAssign = func(s tracePlacerAssignStart) tracePlacerAssign {
			return h1(s).Compose(h2(s))
		}
	}
	return ret
}

// Compose returns a new tracePlacerAssign which has functional fields
// composed both from t and x.
func (t tracePlacerAssign) Compose(x tracePlacerAssign) (ret tracePlacerAssign) {
	switch {
	case t.OnShard == nil:
		ret.OnShard = x.OnShard
	case x.OnShard == nil:
		ret.OnShard = t.OnShard
	default:
		h1 := t.OnShard
		h2 := x.OnShard
		ret.OnShard = func(s Shard, ws []Worker) {
			h1(s, ws)
			h2(s, ws)
		}
	}
	switch {
	case t.OnDone == nil:
		ret.OnDone = x.OnDone
	case x.OnDone == nil:
		ret.OnDone = t.OnDone
	default:
		h1 := t.OnDone
		h2 := x.OnDone
		ret.OnDone = func(a Assignment, err error) {
			h1(a, err)
			h2(a, err)
		}
	}
	return ret
}

func (t tracePlacer) onAssign(s Strategy, workers, shards, redundancy int) tracePlacerAssign {
	fn := t.OnAssign
	if fn == nil {
		return tracePlacerAssign{}
	}
	return fn(tracePlacerAssignStart{
		Strategy:   s,
		Workers:    workers,
		Shards:     shards,
		Redundancy: redundancy,
	})
}

func (t tracePlacerAssign) onShard(s Shard, ws []Worker) {
	if fn := t.OnShard; fn != nil {
		fn(s, ws)
	}
}

func (t tracePlacerAssign) onDone(a Assignment, err error) {
	if fn := t.OnDone; fn != nil {
		fn(a, err)
	}
}

package placement

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
)

// hasher returns a clean hash function from the pool.
// Caller must return it back with release().
func (p *Placer) hasher() hash.Hash64 {
	h, _ := p.hashPool.Get().(hash.Hash64)
	if h == nil {
		if p.Hash != nil {
			h = p.Hash()
		} else {
			h = xxhash.New()
		}
	}
	return h
}

func (p *Placer) release(h hash.Hash64) {
	h.Reset()
	p.hashPool.Put(h)
}

// Digest returns 64-bit hash of x.
// It is deterministic for equal items within the same Placer configuration.
func (p *Placer) Digest(x Item) uint64 {
	h := p.hasher()
	defer p.release(h)

	if _, err := x.WriteTo(h); err != nil {
		panic(fmt.Sprintf("placement: digest error: %v", err))
	}
	return h.Sum64()
}

// Combine folds two digests into one. It writes a and then b as 8-byte
// little-endian words into a fresh hash function and returns its sum.
//
// Combine is order sensitive: Combine(a, b) and Combine(b, a) are different
// in general. Rendezvous scores are computed as
// Combine(Digest(shard), Digest(worker)).
func (p *Placer) Combine(a, b uint64) uint64 {
	h := p.hasher()
	defer p.release(h)

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	if _, err := h.Write(buf[:]); err != nil {
		panic(fmt.Sprintf("placement: digest error: %v", err))
	}
	return h.Sum64()
}

package placement

import (
	"bytes"
	"encoding/binary"
	"hash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

// setupDigest makes p use hash function returning given values for given
// inputs. Keys of values are raw hash inputs, see encode() and le64().
// Digests of other inputs are calculated by xxhash.
func setupDigest(t testing.TB, p *Placer, values map[string]uint64) {
	p.Hash = func() hash.Hash64 {
		return &hash64{
			t:      t,
			values: values,
		}
	}
}

// encode returns bytes x writes into a hash function.
func encode(x Item) string {
	var buf bytes.Buffer
	if _, err := x.WriteTo(&buf); err != nil {
		panic(err)
	}
	return buf.String()
}

// setupConstDigest makes every digest and every score of p equal to v.
func setupConstDigest(p *Placer, v uint64) {
	p.Hash = func() hash.Hash64 {
		return &hash64{
			constant: true,
			value:    v,
		}
	}
}

type hash64 struct {
	t      testing.TB
	values map[string]uint64

	constant bool
	value    uint64

	buf bytes.Buffer
}

func (h *hash64) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

func (h *hash64) Sum(b []byte) []byte {
	panic("placement: hash Sum() must not be called")
}

func (h *hash64) Reset() {
	h.buf.Reset()
}

func (h *hash64) Size() int {
	return 8
}

func (h *hash64) BlockSize() int {
	return 1
}

func (h *hash64) Sum64() uint64 {
	if h.constant {
		return h.value
	}
	v, has := h.values[h.buf.String()]
	if has {
		h.t.Logf("using digest value for %x: %d", h.buf.Bytes(), v)
		return v
	}
	return xxhash.Sum64(h.buf.Bytes())
}

func workers(ids ...uint32) []Worker {
	ws := make([]Worker, len(ids))
	for i, id := range ids {
		ws[i] = Worker(id)
	}
	return ws
}

// workerRange returns n workers with identifiers 0, step, 2*step and so on.
func workerRange(n, step int) []Worker {
	ws := make([]Worker, n)
	for i := range ws {
		ws[i] = Worker(i * step)
	}
	return ws
}

// shardRange returns shards with identifiers from lo to hi inclusive.
func shardRange(lo, hi int) []Shard {
	ss := make([]Shard, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		ss = append(ss, Shard(i))
	}
	return ss
}

// parseAssignment builds assignment from worker-to-shards literal.
func parseAssignment(m map[uint32][]uint32) Assignment {
	a := make(Assignment, len(m))
	for w, ss := range m {
		for _, s := range ss {
			a.Add(Worker(w), Shard(s))
		}
	}
	return a
}

func without(ws []Worker, i int) []Worker {
	ret := append([]Worker(nil), ws[:i]...)
	return append(ret, ws[i+1:]...)
}

// le64 returns xs encoded as little-endian words, such as Combine() writes
// them.
func le64(xs ...uint64) string {
	p := make([]byte, 8*len(xs))
	for i, x := range xs {
		binary.LittleEndian.PutUint64(p[i*8:], x)
	}
	return string(p)
}

func assertCoverage(t *testing.T, a Assignment, shards []Shard, redundancy int) {
	t.Helper()
	for _, s := range shards {
		require.Len(t, a.Owners(s), redundancy, "owners of shard %s", s)
	}
	require.Equal(t, len(shards)*redundancy, a.Placements())
}

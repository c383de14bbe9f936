package placement

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/gobwas/avl"
)

// Item is anything that can be hashed by a Placer.
// WriteTo must write the same bytes for equal items.
type Item interface {
	io.WriterTo
}

// Worker is an identifier of a node capable of owning shards.
// Workers are ordered by their numeric value.
type Worker uint32

// WriteTo writes 4-byte little-endian representation of w.
func (w Worker) WriteTo(dst io.Writer) (int64, error) {
	return writeUint32(dst, uint32(w))
}

// Compare implements avl.Item interface.
func (w Worker) Compare(x avl.Item) int {
	return compare(uint64(w), uint64(x.(Worker)))
}

func (w Worker) String() string {
	return strconv.FormatUint(uint64(w), 10)
}

// Shard is an identifier of a unit of data placed on workers.
type Shard uint32

// WriteTo writes 4-byte little-endian representation of s.
func (s Shard) WriteTo(dst io.Writer) (int64, error) {
	return writeUint32(dst, uint32(s))
}

// Compare implements avl.Item interface.
func (s Shard) Compare(x avl.Item) int {
	return compare(uint64(s), uint64(x.(Shard)))
}

func (s Shard) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Placement is a single (worker, shard) ownership pair.
type Placement struct {
	Worker Worker
	Shard  Shard
}

func (p Placement) String() string {
	return p.Worker.String() + "/" + p.Shard.String()
}

func writeUint32(dst io.Writer, x uint32) (int64, error) {
	var p [4]byte
	binary.LittleEndian.PutUint32(p[:], x)
	n, err := dst.Write(p[:])
	return int64(n), err
}

func compare(x0, x1 uint64) int {
	if x0 < x1 {
		return -1
	}
	if x0 > x1 {
		return 1
	}
	return 0
}

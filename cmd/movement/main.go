// Command movement measures how many shard replicas move between workers
// when a single worker leaves the cluster.
package main

import (
	"crypto/md5"
	"encoding/binary"
	"flag"
	"fmt"
	"hash"
	"hash/fnv"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gobwas/avl"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"

	"github.com/gobwas/placement"
)

func main() {
	var (
		p        int    // Number of goroutines.
		w        int    // Number of workers.
		n        int    // Number of shards.
		lo       int    // Min redundancy.
		hi       int    // Max redundancy.
		rs       string // Comma-separated redundancy list.
		remove   int    // Index of removed worker.
		strategy string // Optional strategy name.
		csv      bool
		hashFunc string // Optional hash function name.

		verbose bool
		silent  bool
	)
	flag.IntVar(&p,
		"parallelism", runtime.NumCPU(),
		"number of concurrent processors",
	)
	flag.IntVar(&w,
		"workers", 100,
		"number of workers before removal",
	)
	flag.IntVar(&n,
		"shards", 800,
		"number of shards to assign",
	)
	flag.IntVar(&lo,
		"lo", 0,
		"redundancy to start from",
	)
	flag.IntVar(&hi,
		"hi", 0,
		"redundancy to end at",
	)
	flag.StringVar(&rs,
		"redundancy", "",
		"comma-separated list of redundancy factors",
	)
	flag.IntVar(&remove,
		"remove", 0,
		"index of the worker to remove",
	)
	flag.StringVar(&strategy,
		"strategy", "",
		"strategy to measure (all if empty)",
	)
	flag.StringVar(&hashFunc,
		"hash", "",
		"custom hash function to be used (xxh3, murmur3, fnv or md5)",
	)
	flag.BoolVar(&verbose,
		"v", false,
		"be verbose",
	)
	flag.BoolVar(&silent,
		"s", false,
		"be silent",
	)
	flag.BoolVar(&csv,
		"csv", true,
		"print csv to standard output",
	)

	flag.Parse()

	logf := func(f string, args ...interface{}) {
		if !verbose {
			return
		}
		log.Printf(f, args...)
	}
	printf := func(f string, args ...interface{}) {
		if silent {
			return
		}
		fmt.Fprintf(os.Stderr, f, args...)
	}

	if w < 2 {
		log.Fatalf("at least two workers are needed; got %d", w)
	}
	if remove < 0 || remove >= w {
		log.Fatalf("index of removed worker is out of range: %d", remove)
	}
	newHash, err := hashFunction(hashFunc)
	if err != nil {
		log.Fatal(err)
	}
	strategies := placement.Strategies
	if strategy != "" {
		s, err := placement.ParseStrategy(strategy)
		if err != nil {
			log.Fatal(err)
		}
		strategies = []placement.Strategy{s}
	}

	before := make([]placement.Worker, w)
	for i := range before {
		before[i] = placement.Worker(100 * i)
	}
	after := make([]placement.Worker, 0, w-1)
	after = append(after, before[:remove]...)
	after = append(after, before[remove+1:]...)
	logf("removing worker %s", before[remove])

	shards := make([]placement.Shard, n)
	for i := range shards {
		shards[i] = placement.Shard(i + 1)
	}
	if verbose && n > 0 {
		pl := placement.Placer{
			Hash: newHash,
		}
		rank := pl.Rank(shards[0], before)
		if len(rank) > 5 {
			rank = rank[:5]
		}
		logf("rendezvous preference of shard %s: %v", shards[0], rank)
	}

	// Prepare list of jobs. We merge here redundancy range (from `lo` to
	// `hi`) with manually specified factors in `rs`.
	var factors []int
	for _, s := range strings.Split(rs, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r, err := strconv.Atoi(s)
		if err != nil {
			log.Fatal(err)
		}
		factors = append(factors, r)
	}
	for r := lo; r < hi; r++ {
		factors = append(factors, r)
	}
	if len(factors) == 0 {
		factors = append(factors, 1)
	}
	// We use tree to autofix duplicates (if any).
	var jobs avl.Tree
	for _, s := range strategies {
		for _, r := range factors {
			if r < 1 || r > len(after) {
				logf("skipping redundancy %d: out of range", r)
				continue
			}
			jobs, _ = jobs.Insert(job{s, r})
		}
	}
	logf("%d jobs are ready", jobs.Size())

	var (
		work    = make(chan job)
		stop    = make(chan struct{})
		done    = make(chan struct{}, p)
		results = make(chan result, 1)
	)
	for i := 0; i < p; i++ {
		go func() {
			defer func() {
				done <- struct{}{}
			}()
			for {
				var j job
				select {
				case <-stop:
					return
				case j = <-work:
					// Process below.
				}

				pl := placement.Placer{
					Hash: newHash,
				}
				start := time.Now()
				a, err := pl.Assign(j.strategy, before, shards, j.redundancy)
				if err != nil {
					log.Fatal(err)
				}
				latency := time.Since(start)

				b, err := pl.Assign(j.strategy, after, shards, j.redundancy)
				if err != nil {
					log.Fatal(err)
				}
				added, removed := placement.Diff(a, b)
				moved := make(map[placement.Shard]bool)
				for _, x := range added {
					moved[x.Shard] = true
				}
				for _, x := range removed {
					moved[x.Shard] = true
				}
				results <- result{
					job:        j,
					latency:    latency,
					placements: a.Placements(),
					cost:       placement.ReassignmentCost(a, b),
					moved:      len(moved),
				}
			}
		}()
	}

	go func() {
		// Tree traversal can't be cut short, so every job is sent.
		jobs.InOrder(func(x avl.Item) bool {
			work <- x.(job)
			return true
		})
		close(stop)
		for i := 0; i < p; i++ {
			<-done
		}
		close(results)
	}()

	var t avl.Tree
	for r := range results {
		t, _ = t.Insert(r)
		printf(".")
		if n := t.Size(); n%80 == 0 {
			j := jobs.Size()
			printf(
				"%d/%d(%.1f%%)\n",
				n, j,
				float64(n)/float64(j)*100, // Progress percentage.
			)
		}
	}
	printf("\n")

	tw := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	t.InOrder(func(x avl.Item) bool {
		r := x.(result)
		var (
			costPct  = float64(r.cost) / float64(r.placements) * 100
			movedPct = float64(r.moved) / float64(n) * 100
		)
		logf(
			"%s/%d: cost=%d(%.2f%%) moved=%d(%.2f%%) latency=%s\n",
			r.strategy, r.redundancy,
			r.cost, costPct,
			r.moved, movedPct,
			r.latency,
		)
		if csv {
			fmt.Fprintf(tw,
				"%s,\t%d,\t%d,\t%.4f,\t%d,\t%.4f,\t%.2f\n",
				r.strategy, r.redundancy,
				r.cost, costPct,
				r.moved, movedPct,
				r.latency.Seconds()*1000,
			)
		}
		return true
	})
	tw.Flush()

	printf("OK")
}

type job struct {
	strategy   placement.Strategy
	redundancy int
}

func (j job) Compare(x avl.Item) int {
	y := x.(job)
	if j.strategy != y.strategy {
		return int(j.strategy) - int(y.strategy)
	}
	return j.redundancy - y.redundancy
}

type result struct {
	job
	latency    time.Duration
	placements int
	cost       int
	moved      int
}

func (r result) Compare(x avl.Item) int {
	return r.job.Compare(x.(result).job)
}

func hashFunction(name string) (func() hash.Hash64, error) {
	switch name {
	case "", "xxhash":
		return nil, nil
	case "xxh3":
		return func() hash.Hash64 {
			return xxh3.New()
		}, nil
	case "murmur3":
		return murmur3.New64, nil
	case "fnv":
		return fnv.New64a, nil
	case "md5":
		return func() hash.Hash64 {
			return newHash64(md5.New())
		}, nil
	default:
		return nil, fmt.Errorf("unexpected hash function: %q", name)
	}
}

type hash64 struct {
	hash.Hash
}

func newHash64(h hash.Hash) hash.Hash64 {
	return &hash64{Hash: h}
}

func (h *hash64) Sum64() uint64 {
	if h.Size() < 8 {
		panic("too small hash")
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum)
}

package placement_test

import (
	"fmt"

	"github.com/gobwas/placement"
)

func ExampleAssignRendezvous() {
	workers := []placement.Worker{100, 200, 300, 400}
	shards := []placement.Shard{1, 2, 3, 4, 5, 6, 7, 8}

	a, err := placement.AssignRendezvous(workers, shards, 2)
	if err != nil {
		panic(err)
	}
	for _, w := range a.Workers() {
		fmt.Println(w, a.Shards(w))
	}

	// Output:
	// 100 [2 3 4 5 6 8]
	// 200 [3 7]
	// 300 [1 7]
	// 400 [1 2 4 5 6 8]
}

func ExampleReassignmentCost() {
	var (
		before = []placement.Worker{100, 200, 300, 400}
		after  = []placement.Worker{100, 300, 400}
		shards = []placement.Shard{1, 2, 3, 4, 5, 6, 7, 8}
	)
	var p placement.Placer
	for _, s := range placement.Strategies {
		a, err := p.Assign(s, before, shards, 1)
		if err != nil {
			panic(err)
		}
		b, err := p.Assign(s, after, shards, 1)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %d\n", s, placement.ReassignmentCost(a, b))
	}

	// Output:
	// modulo: 12
	// rendezvous: 4
}

func ExampleDiff() {
	shards := []placement.Shard{1, 2, 3, 4, 5, 6, 7, 8}
	a, _ := placement.AssignRendezvous([]placement.Worker{100, 200, 300, 400}, shards, 1)
	b, _ := placement.AssignRendezvous([]placement.Worker{100, 300, 400}, shards, 1)

	added, removed := placement.Diff(a, b)
	fmt.Println("before:", a)
	fmt.Println("after:", b)
	fmt.Println("added:", added)
	fmt.Println("removed:", removed)

	// Output:
	// before: 200:[3 7] 400:[1 2 4 5 6 8]
	// after: 100:[3] 300:[7] 400:[1 2 4 5 6 8]
	// added: [100/3 300/7]
	// removed: [200/3 200/7]
}

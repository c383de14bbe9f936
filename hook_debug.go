//go:build placement_debug
// +build placement_debug

package placement

import (
	"log"
	"strings"
)

func setupPlacerTrace(p *Placer) {
	log.SetFlags(0)

	var depth int
	enter := func() {
		depth++
		log.SetPrefix(strings.Repeat(" ", depth*4))
	}
	leave := func() {
		depth--
		log.SetPrefix(strings.Repeat(" ", depth*4))
	}
	p.trace = p.trace.Compose(tracePlacer{
		OnAssign: func(s tracePlacerAssignStart) tracePlacerAssign {
			log.Printf(
				"assigning: %s %d shards to %d workers with redundancy %d",
				s.Strategy, s.Shards, s.Workers, s.Redundancy,
			)
			enter()
			return tracePlacerAssign{
				OnShard: func(s Shard, owners []Worker) {
					log.Printf("shard %s: %v", s, owners)
				},
				OnDone: func(a Assignment, err error) {
					leave()
					if err != nil {
						log.Printf("not assigned: %v", err)
					} else {
						log.Printf("assigned: %d placements", a.Placements())
					}
				},
			}
		},
	})
}
